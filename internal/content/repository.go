package content

import "context"

// DocumentRepository is the remote side of the content store: a keyed
// document read and a whole-document replacement write. There is no
// versioning and no partial update; the last writer wins.
type DocumentRepository interface {
	Get(ctx context.Context, key string) (*Document, error)
	Put(ctx context.Context, doc *Document) error
}

// Cache is the local mirror of the content document. Reads and writes are
// synchronous; the mirror is the sole persistence layer when the remote
// store is unavailable.
type Cache interface {
	Load() (*SiteContent, error)
	Store(doc *SiteContent) error
}
