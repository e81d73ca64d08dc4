package runtimeconfig

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrStorageDriverUnknown = errors.New("site config: storage driver is invalid")
var ErrStorageDSNRequired = errors.New("site config: storage dsn is required when a driver is set")
var ErrChatTimeoutInvalid = errors.New("site config: chat attempt timeout must be positive")
var ErrUploadsBucketRequired = errors.New("site config: uploads bucket is required when an endpoint is set")
var ErrLoggingLevelInvalid = errors.New("site config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("site config: logging format is invalid")

// Config aggregates the runtime settings for the site module. Every external
// collaborator is optional: a missing database degrades reads to the local
// mirror, missing chat credentials switch the relay to placeholder answers,
// and a missing storage endpoint disables uploads.
type Config struct {
	Storage StorageConfig
	Cache   CacheConfig
	Chat    ChatConfig
	Uploads UploadsConfig
	Admin   AdminConfig
	Logging LoggingConfig
}

// StorageConfig describes the document store connection.
type StorageConfig struct {
	// Driver is "sqlite3" or "postgres". Empty means no remote store.
	Driver string
	DSN    string
}

// CacheConfig captures the local content mirror and the repository read cache.
type CacheConfig struct {
	// Path is the local mirror file for the content document. Empty disables
	// the mirror, leaving only the hard-coded defaults as a read fallback.
	Path string
	// RepositoryCache toggles the read-through cache on submission repositories.
	RepositoryCache bool
	RepositoryTTL   time.Duration
}

// ChatConfig wires the completion provider behind the chat relay.
type ChatConfig struct {
	APIKey  string
	BaseURL string
	// Models is the prioritized fallback list tried in order.
	Models         []string
	AttemptTimeout time.Duration
}

// Enabled reports whether the relay can reach a provider at all.
func (c ChatConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// UploadsConfig wires the S3-compatible object storage behind the upload relay.
type UploadsConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	UseSSL        bool
}

// Enabled reports whether uploads are configured.
func (c UploadsConfig) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != ""
}

// AdminConfig holds the panel and dark-room unlock keys. These gates are
// obfuscation for a single-operator panel, not authentication; see the
// admin package documentation.
type AdminConfig struct {
	PanelKey    string
	DarkRoomKey string
}

// LoggingConfig selects the go-logger provider behaviour.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the baseline configuration used when the host
// application provides nothing: memory store, no mirror, chat and uploads
// disabled, info-level JSON logging.
func DefaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			RepositoryTTL: 5 * time.Minute,
		},
		Chat: ChatConfig{
			BaseURL:        "https://openrouter.ai/api/v1",
			AttemptTimeout: 20 * time.Second,
			Models: []string{
				"deepseek/deepseek-chat-v3-0324:free",
				"meta-llama/llama-3.3-70b-instruct:free",
				"google/gemini-2.0-flash-exp:free",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// FromEnv builds a configuration from the process environment, starting from
// DefaultConfig. Unset variables keep their defaults.
func FromEnv() Config {
	cfg := DefaultConfig()

	cfg.Storage.Driver = envString("SITE_DB_DRIVER", cfg.Storage.Driver)
	cfg.Storage.DSN = envString("SITE_DB_DSN", cfg.Storage.DSN)
	if cfg.Storage.Driver == "" && cfg.Storage.DSN != "" {
		cfg.Storage.Driver = "sqlite3"
	}

	cfg.Cache.Path = envString("SITE_CACHE_PATH", cfg.Cache.Path)
	cfg.Cache.RepositoryCache = envBool("SITE_REPO_CACHE", cfg.Cache.RepositoryCache)

	cfg.Chat.APIKey = envString("SITE_CHAT_API_KEY", cfg.Chat.APIKey)
	cfg.Chat.BaseURL = envString("SITE_CHAT_BASE_URL", cfg.Chat.BaseURL)
	if models := envString("SITE_CHAT_MODELS", ""); models != "" {
		cfg.Chat.Models = splitList(models)
	}

	cfg.Uploads.Endpoint = envString("SITE_STORAGE_ENDPOINT", cfg.Uploads.Endpoint)
	cfg.Uploads.AccessKey = envString("SITE_STORAGE_KEY", cfg.Uploads.AccessKey)
	cfg.Uploads.SecretKey = envString("SITE_STORAGE_SECRET", cfg.Uploads.SecretKey)
	cfg.Uploads.Bucket = envString("SITE_STORAGE_BUCKET", cfg.Uploads.Bucket)
	cfg.Uploads.PublicBaseURL = envString("SITE_STORAGE_PUBLIC_URL", cfg.Uploads.PublicBaseURL)
	cfg.Uploads.UseSSL = envBool("SITE_STORAGE_SSL", true)

	cfg.Admin.PanelKey = envString("SITE_ADMIN_KEY", cfg.Admin.PanelKey)
	cfg.Admin.DarkRoomKey = envString("SITE_DARKROOM_KEY", cfg.Admin.DarkRoomKey)

	cfg.Logging.Level = envString("SITE_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = envString("SITE_LOG_FORMAT", cfg.Logging.Format)

	return cfg
}

// Validate checks cross-field consistency. It is intentionally permissive:
// absent collaborators are valid, only contradictory settings fail.
func (c Config) Validate() error {
	switch strings.TrimSpace(c.Storage.Driver) {
	case "", "sqlite3", "postgres":
	default:
		return ErrStorageDriverUnknown
	}
	if strings.TrimSpace(c.Storage.Driver) != "" && strings.TrimSpace(c.Storage.DSN) == "" {
		return ErrStorageDSNRequired
	}
	if c.Chat.AttemptTimeout <= 0 {
		return ErrChatTimeoutInvalid
	}
	if c.Uploads.Enabled() && strings.TrimSpace(c.Uploads.Bucket) == "" {
		return ErrUploadsBucketRequired
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}
	return nil
}

func envString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
