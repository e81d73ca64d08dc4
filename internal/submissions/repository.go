package submissions

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RegistrationRepository stores festival submissions. Append plus read only;
// the application never mutates or deletes a landed record.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) (*Registration, error)
	GetByReference(ctx context.Context, reference string) (*Registration, error)
	List(ctx context.Context) ([]*Registration, error)
}

// MessageRepository stores contact-form messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *Message) (*Message, error)
	List(ctx context.Context) ([]*Message, error)
}

// NewRegistrationRepository creates a repository for Registration entities.
func NewRegistrationRepository(db *bun.DB) repository.Repository[*Registration] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Registration]{
		NewRecord: func() *Registration { return &Registration{} },
		GetID: func(r *Registration) uuid.UUID {
			return r.ID
		},
		SetID: func(r *Registration, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "reference"
		},
		GetIdentifierValue: func(r *Registration) string {
			return r.Reference
		},
	})
}

// NewMessageRepository creates a repository for Message entities.
func NewMessageRepository(db *bun.DB) repository.Repository[*Message] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Message]{
		NewRecord: func() *Message { return &Message{} },
		GetID: func(m *Message) uuid.UUID {
			return m.ID
		},
		SetID: func(m *Message, id uuid.UUID) {
			m.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(m *Message) string {
			return m.ID.String()
		},
	})
}
