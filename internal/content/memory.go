package content

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryDocumentRepository struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewMemoryDocumentRepository constructs an in-memory document repository.
func NewMemoryDocumentRepository() DocumentRepository {
	return &memoryDocumentRepository{docs: make(map[string]*Document)}
}

func (m *memoryDocumentRepository) Get(_ context.Context, key string) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[key]
	if !ok {
		return nil, &NotFoundError{Resource: "document", Key: key}
	}
	return cloneDocument(doc), nil
}

func (m *memoryDocumentRepository) Put(_ context.Context, doc *Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneDocument(doc)
	cloned.UpdatedAt = time.Now().UTC()
	m.docs[cloned.Key] = cloned
	return nil
}

// cloneDocument deep-copies through JSON so callers never share list slices
// with the stored record.
func cloneDocument(doc *Document) *Document {
	if doc == nil {
		return nil
	}
	raw, err := json.Marshal(doc.Payload)
	if err != nil {
		copied := *doc
		return &copied
	}
	copied := &Document{Key: doc.Key, UpdatedAt: doc.UpdatedAt}
	_ = json.Unmarshal(raw, &copied.Payload)
	return copied
}
