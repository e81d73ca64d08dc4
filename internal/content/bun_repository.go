package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// BunDocumentRepository persists the content document in a single keyed row.
type BunDocumentRepository struct {
	db    *bun.DB
	clock func() time.Time
}

// NewBunDocumentRepository creates a document repository backed by bun.
func NewBunDocumentRepository(db *bun.DB) *BunDocumentRepository {
	return &BunDocumentRepository{db: db, clock: time.Now}
}

func (r *BunDocumentRepository) Get(ctx context.Context, key string) (*Document, error) {
	doc := new(Document)
	err := r.db.NewSelect().
		Model(doc).
		Where("sd.key = ?", key).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Resource: "document", Key: key}
		}
		return nil, fmt.Errorf("document repository error: %w", err)
	}
	return doc, nil
}

func (r *BunDocumentRepository) Put(ctx context.Context, doc *Document) error {
	doc.UpdatedAt = r.clock().UTC()
	_, err := r.db.NewInsert().
		Model(doc).
		On("CONFLICT (key) DO UPDATE").
		Set("payload = EXCLUDED.payload").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("document repository error: %w", err)
	}
	return nil
}
