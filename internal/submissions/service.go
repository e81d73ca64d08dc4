package submissions

import (
	"context"
	"sort"
	"strings"
	"time"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"

	"github.com/karafilm/go-sitecms/internal/logging"
	"github.com/karafilm/go-sitecms/pkg/interfaces"
)

// MessageInput is the contact-form payload as submitted by the public site.
type MessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// Service handles intake and admin reads for both submission collections.
//
// Intake is deliberately permissive: required-field checks happen in the
// form before submission, and the server appends whatever arrives with a
// server-assigned timestamp. Reads never fail the admin panel; a broken
// repository yields an empty listing and a log entry.
type Service struct {
	registrations RegistrationRepository
	messages      MessageRepository
	logger        interfaces.Logger
	clock         func() time.Time
}

// ServiceOption mutates the service during construction.
type ServiceOption func(*Service)

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService constructs the submissions service.
func NewService(registrations RegistrationRepository, messages MessageRepository, opts ...ServiceOption) *Service {
	svc := &Service{
		registrations: registrations,
		messages:      messages,
		logger:        logging.NoOp(),
		clock:         time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}
	return svc
}

// SubmitRegistration appends a festival submission. The record id, public
// reference code, and submission timestamp are assigned here; the record is
// immutable afterwards.
func (s *Service) SubmitRegistration(ctx context.Context, data RegistrationData) (*Registration, error) {
	now := s.clock().UTC()
	id := uuid.New()

	reg := &Registration{
		ID:          id,
		Reference:   registrationReference(id, now),
		Data:        data,
		SubmittedAt: now,
	}

	created, err := s.registrations.Create(ctx, reg)
	if err != nil {
		s.logger.Error("submissions.registration.create_failed", "error", err)
		return nil, err
	}
	s.logger.Info("submissions.registration.created", "reference", created.Reference)
	return created, nil
}

// SubmitMessage appends a contact message with a server-assigned timestamp.
func (s *Service) SubmitMessage(ctx context.Context, input MessageInput) (*Message, error) {
	now := s.clock().UTC()

	msg := &Message{
		ID:          uuid.New(),
		Name:        input.Name,
		Email:       input.Email,
		Body:        input.Message,
		Date:        input.Date,
		SubmittedAt: now,
	}
	if strings.TrimSpace(msg.Date) == "" {
		msg.Date = now.Format("2006-01-02")
	}

	created, err := s.messages.Create(ctx, msg)
	if err != nil {
		s.logger.Error("submissions.message.create_failed", "error", err)
		return nil, err
	}
	return created, nil
}

// ListRegistrations returns all submissions newest first. Repository errors
// are logged and swallowed; the admin panel gets an empty listing instead of
// a failure.
func (s *Service) ListRegistrations(ctx context.Context) []*Registration {
	records, err := s.registrations.List(ctx)
	if err != nil {
		s.logger.Error("submissions.registration.list_failed", "error", err)
		return []*Registration{}
	}
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].SubmittedAt.Equal(records[j].SubmittedAt) {
			return records[i].SubmittedAt.After(records[j].SubmittedAt)
		}
		return records[i].ID.String() > records[j].ID.String()
	})
	return records
}

// ListMessages returns all contact messages newest first, with the same
// never-fail contract as ListRegistrations.
func (s *Service) ListMessages(ctx context.Context) []*Message {
	records, err := s.messages.List(ctx)
	if err != nil {
		s.logger.Error("submissions.message.list_failed", "error", err)
		return []*Message{}
	}
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].SubmittedAt.Equal(records[j].SubmittedAt) {
			return records[i].SubmittedAt.After(records[j].SubmittedAt)
		}
		return records[i].ID.String() > records[j].ID.String()
	})
	return records
}

// GetRegistration looks a submission up by its public reference code.
func (s *Service) GetRegistration(ctx context.Context, reference string) (*Registration, error) {
	return s.registrations.GetByReference(ctx, strings.TrimSpace(reference))
}

// registrationReference derives the short public code from the record id and
// submission time. hashid keeps the derivation deterministic so re-running
// intake in tests yields stable codes.
func registrationReference(id uuid.UUID, at time.Time) string {
	key := "sitecms:registration:" + id.String() + ":" + at.Format(time.RFC3339)
	uid, err := hashid.NewUUID(key, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		uid = uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
	}
	compact := strings.ToUpper(strings.ReplaceAll(uid.String(), "-", ""))
	return "REG-" + compact[:10]
}
