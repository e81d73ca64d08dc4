package content

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileCache mirrors the content document in a single JSON file next to the
// process. It is read synchronously at startup so the site never renders a
// blank state while the remote read is in flight, and it takes every save
// before the remote write is attempted.
type FileCache struct {
	mu   sync.Mutex
	path string
}

// NewFileCache constructs a mirror at the given path. The parent directory
// is created lazily on the first store.
func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

// Load reads the mirrored document. A missing file returns NotFoundError.
func (c *FileCache) Load() (*SiteContent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Resource: "cache", Key: c.path}
		}
		return nil, err
	}
	doc := new(SiteContent)
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Store replaces the mirror atomically: write to a temp file, then rename.
// A crashed write never corrupts the previous mirror.
func (c *FileCache) Store(doc *SiteContent) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}
