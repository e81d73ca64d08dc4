package content

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/karafilm/go-sitecms/internal/logging"
	"github.com/karafilm/go-sitecms/pkg/interfaces"
)

// Source reports where a fetched document came from.
type Source string

const (
	SourceRemote  Source = "remote"
	SourceCache   Source = "cache"
	SourceDefault Source = "default"
)

// SaveResult reports which layers accepted a save.
type SaveResult struct {
	Local  bool `json:"local"`
	Remote bool `json:"remote"`
}

// Service coordinates the remote document store and the local mirror.
//
// Reads prefer the remote store and degrade to the mirror, then to the
// hard-coded defaults; they never fail. Writes hit the mirror first,
// unconditionally, then attempt the remote store; a remote failure is
// recoverable and must not roll the mirror back. The document is replaced
// wholesale on every save, so concurrent admin sessions follow a
// last-writer-wins policy with no conflict detection.
type Service struct {
	repo   DocumentRepository
	cache  Cache
	logger interfaces.Logger
	clock  func() time.Time
	ids    idSequence
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

// WithClock overrides the time source, used by tests and deterministic ids.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService constructs a content service. Either repository or cache may be
// nil; the service degrades accordingly.
func NewService(repo DocumentRepository, cache Cache, opts ...ServiceOption) *Service {
	svc := &Service{
		repo:   repo,
		cache:  cache,
		logger: logging.NoOp(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}
	return svc
}

// RemoteConfigured reports whether a remote store is wired at all. The HTTP
// layer uses this to honour the "empty object when the store is unavailable"
// part of the public contract.
func (s *Service) RemoteConfigured() bool {
	return s != nil && s.repo != nil
}

// Fetch returns the current document and its source. It never returns an
// error: remote failures fall back to the mirror, and a missing mirror falls
// back to the hard-coded defaults with empty lists.
func (s *Service) Fetch(ctx context.Context) (*SiteContent, Source) {
	if s.repo != nil {
		doc, err := s.repo.Get(ctx, DocumentKey)
		if err == nil {
			return &doc.Payload, SourceRemote
		}
		s.logger.Warn("content.fetch.remote_failed", "error", err)
	}

	if s.cache != nil {
		doc, err := s.cache.Load()
		if err == nil {
			return doc, SourceCache
		}
		s.logger.Debug("content.fetch.cache_miss", "error", err)
	}

	return DefaultContent(), SourceDefault
}

// Save validates the document invariants, writes the local mirror, then
// attempts the remote store. When the remote write fails the returned error
// wraps ErrRemoteUnavailable and the result still reports the local save;
// the caller should treat the document as saved locally.
func (s *Service) Save(ctx context.Context, doc *SiteContent) (SaveResult, error) {
	result := SaveResult{}

	if err := ValidateDocument(doc); err != nil {
		return result, err
	}

	if s.cache != nil {
		if err := s.cache.Store(doc); err != nil {
			s.logger.Warn("content.save.cache_failed", "error", err)
		} else {
			result.Local = true
		}
	}

	if s.repo == nil {
		if result.Local {
			return result, ErrRemoteUnavailable
		}
		return result, fmt.Errorf("%w: no store configured", ErrRemoteUnavailable)
	}

	if err := s.repo.Put(ctx, &Document{Key: DocumentKey, Payload: *doc}); err != nil {
		s.logger.Error("content.save.remote_failed", "error", err)
		return result, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	result.Remote = true
	s.logger.Info("content.save.ok", "local", result.Local)
	return result, nil
}

// NewItemID mints a stable list-item id: the millisecond timestamp as a
// string, bumped on collision so ids within a process are strictly unique.
func (s *Service) NewItemID() string {
	return s.ids.next(s.clock())
}

type idSequence struct {
	mu   sync.Mutex
	last int64
}

func (seq *idSequence) next(now time.Time) string {
	seq.mu.Lock()
	defer seq.mu.Unlock()

	ms := now.UnixMilli()
	if ms <= seq.last {
		ms = seq.last + 1
	}
	seq.last = ms
	return strconv.FormatInt(ms, 10)
}
