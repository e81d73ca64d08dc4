// Package di wires the site services from a runtime configuration. The
// container favours degradation over failure: absent collaborators produce
// memory or disabled implementations, never a nil service.
package di

import (
	nethttp "net/http"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/karafilm/go-sitecms/internal/admin"
	"github.com/karafilm/go-sitecms/internal/chat"
	"github.com/karafilm/go-sitecms/internal/content"
	"github.com/karafilm/go-sitecms/internal/logging"
	"github.com/karafilm/go-sitecms/internal/logging/gologger"
	"github.com/karafilm/go-sitecms/internal/runtimeconfig"
	"github.com/karafilm/go-sitecms/internal/submissions"
	"github.com/karafilm/go-sitecms/internal/uploads"
	"github.com/karafilm/go-sitecms/pkg/interfaces"
)

// Container wires module dependencies.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider interfaces.LoggerProvider
	httpClient     *nethttp.Client

	documentRepo     content.DocumentRepository
	contentCache     content.Cache
	registrationRepo submissions.RegistrationRepository
	messageRepo      submissions.MessageRepository

	contentSvc     *content.Service
	submissionsSvc *submissions.Service
	chatRelay      *chat.Relay
	uploadsSvc     *uploads.Service
	gate           *admin.Gate
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB attaches the document and submission store database.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithLoggerProvider overrides the default logging provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithCache overrides the default repository cache service.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithHTTPClient overrides the HTTP client used by the chat relay.
func WithHTTPClient(client *nethttp.Client) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

// WithContentService overrides the default content service binding.
func WithContentService(svc *content.Service) Option {
	return func(c *Container) {
		c.contentSvc = svc
	}
}

// WithSubmissionsService overrides the default submissions service binding.
func WithSubmissionsService(svc *submissions.Service) Option {
	return func(c *Container) {
		c.submissionsSvc = svc
	}
}

// WithChatRelay overrides the default chat relay binding.
func WithChatRelay(relay *chat.Relay) Option {
	return func(c *Container) {
		c.chatRelay = relay
	}
}

// WithUploadsService overrides the default upload relay binding.
func WithUploadsService(svc *uploads.Service) Option {
	return func(c *Container) {
		c.uploadsSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.RepositoryTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:           cfg,
		cacheTTL:         cacheTTL,
		registrationRepo: submissions.NewMemoryRegistrationRepository(),
		messageRepo:      submissions.NewMemoryMessageRepository(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureRepositories()
	if err := c.configureServices(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.RepositoryCache {
		return
	}

	if c.cacheService == nil {
		cacheCfg := repocache.DefaultConfig()
		cacheCfg.TTL = c.cacheTTL
		service, err := repocache.NewCacheService(cacheCfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.bunDB != nil {
		c.documentRepo = content.NewBunDocumentRepository(c.bunDB)
		c.registrationRepo = submissions.NewBunRegistrationRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		c.messageRepo = submissions.NewBunMessageRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	}

	if c.contentCache == nil && c.Config.Cache.Path != "" {
		c.contentCache = content.NewFileCache(c.Config.Cache.Path)
	}
}

func (c *Container) configureServices() error {
	if c.contentSvc == nil {
		c.contentSvc = content.NewService(
			c.documentRepo,
			c.contentCache,
			content.WithLogger(logging.ContentLogger(c.loggerProvider)),
		)
	}

	if c.submissionsSvc == nil {
		c.submissionsSvc = submissions.NewService(
			c.registrationRepo,
			c.messageRepo,
			submissions.WithLogger(logging.SubmissionsLogger(c.loggerProvider)),
		)
	}

	if c.chatRelay == nil {
		var client chat.CompletionClient
		if c.Config.Chat.Enabled() {
			client = chat.NewHTTPClient(c.Config.Chat.BaseURL, c.Config.Chat.APIKey, c.httpClient)
		}
		c.chatRelay = chat.NewRelay(
			client,
			c.Config.Chat.Models,
			chat.WithLogger(logging.ChatLogger(c.loggerProvider)),
			chat.WithAttemptTimeout(c.Config.Chat.AttemptTimeout),
		)
	}

	if c.uploadsSvc == nil {
		svc, err := uploads.NewService(
			c.Config.Uploads,
			uploads.WithLogger(logging.UploadsLogger(c.loggerProvider)),
		)
		if err != nil {
			return err
		}
		c.uploadsSvc = svc
	}

	if c.gate == nil {
		c.gate = admin.NewGate(c.Config.Admin.PanelKey, c.Config.Admin.DarkRoomKey)
	}

	return nil
}

// LoggerProvider exposes the configured logging provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// DocumentRepository exposes the configured document repository, nil when no
// remote store is wired.
func (c *Container) DocumentRepository() content.DocumentRepository {
	return c.documentRepo
}

// ContentService returns the configured content service.
func (c *Container) ContentService() *content.Service {
	return c.contentSvc
}

// SubmissionsService returns the configured submissions service.
func (c *Container) SubmissionsService() *submissions.Service {
	return c.submissionsSvc
}

// ChatRelay returns the configured chat relay.
func (c *Container) ChatRelay() *chat.Relay {
	return c.chatRelay
}

// UploadsService returns the configured upload relay.
func (c *Container) UploadsService() *uploads.Service {
	return c.uploadsSvc
}

// Gate returns the admin unlock gate.
func (c *Container) Gate() *admin.Gate {
	return c.gate
}
