package submissions

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/uptrace/bun"
)

const (
	registrationNamespace = "registration"
	messageNamespace      = "contact_message"
)

// BunRegistrationRepository implements RegistrationRepository with optional caching.
type BunRegistrationRepository struct {
	repo         repository.Repository[*Registration]
	cacheService cache.CacheService
	cachePrefix  string
}

// NewBunRegistrationRepository creates a registration repository without caching.
func NewBunRegistrationRepository(db *bun.DB) *BunRegistrationRepository {
	return NewBunRegistrationRepositoryWithCache(db, nil, nil)
}

// NewBunRegistrationRepositoryWithCache creates a registration repository with caching services.
func NewBunRegistrationRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRegistrationRepository {
	base := NewRegistrationRepository(db)
	var svc cache.CacheService
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
		svc = cacheService
	}
	prefix := ""
	if svc != nil {
		prefix = cachePrefix(registrationNamespace)
	}
	return &BunRegistrationRepository{repo: base, cacheService: svc, cachePrefix: prefix}
}

func (r *BunRegistrationRepository) Create(ctx context.Context, reg *Registration) (*Registration, error) {
	record, err := r.repo.Create(ctx, reg)
	if err != nil {
		return nil, err
	}
	if err := r.invalidateCache(ctx); err != nil {
		return record, err
	}
	return record, nil
}

func (r *BunRegistrationRepository) GetByReference(ctx context.Context, reference string) (*Registration, error) {
	record, err := r.repo.GetByIdentifier(ctx, reference)
	if err != nil {
		return nil, mapRepositoryError(err, "registration", reference)
	}
	return record, nil
}

func (r *BunRegistrationRepository) List(ctx context.Context) ([]*Registration, error) {
	records, _, err := r.repo.List(ctx)
	return records, err
}

func (r *BunRegistrationRepository) invalidateCache(ctx context.Context) error {
	if r.cacheService == nil || r.cachePrefix == "" {
		return nil
	}
	return r.cacheService.DeleteByPrefix(ctx, r.cachePrefix)
}

// BunMessageRepository implements MessageRepository with optional caching.
type BunMessageRepository struct {
	repo         repository.Repository[*Message]
	cacheService cache.CacheService
	cachePrefix  string
}

// NewBunMessageRepository creates a message repository without caching.
func NewBunMessageRepository(db *bun.DB) *BunMessageRepository {
	return NewBunMessageRepositoryWithCache(db, nil, nil)
}

// NewBunMessageRepositoryWithCache creates a message repository with caching services.
func NewBunMessageRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunMessageRepository {
	base := NewMessageRepository(db)
	var svc cache.CacheService
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
		svc = cacheService
	}
	prefix := ""
	if svc != nil {
		prefix = cachePrefix(messageNamespace)
	}
	return &BunMessageRepository{repo: base, cacheService: svc, cachePrefix: prefix}
}

func (r *BunMessageRepository) Create(ctx context.Context, msg *Message) (*Message, error) {
	record, err := r.repo.Create(ctx, msg)
	if err != nil {
		return nil, err
	}
	if err := r.invalidateCache(ctx); err != nil {
		return record, err
	}
	return record, nil
}

func (r *BunMessageRepository) List(ctx context.Context) ([]*Message, error) {
	records, _, err := r.repo.List(ctx)
	return records, err
}

func (r *BunMessageRepository) invalidateCache(ctx context.Context) error {
	if r.cacheService == nil || r.cachePrefix == "" {
		return nil
	}
	return r.cacheService.DeleteByPrefix(ctx, r.cachePrefix)
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}

	return fmt.Errorf("%s repository error: %w", resource, err)
}

func cachePrefix(namespace string) string {
	if namespace == "" {
		return ""
	}
	return namespace + cache.KeySeparator
}
