package runtimeconfig_test

import (
	"errors"
	"testing"
	"time"

	"github.com/karafilm/go-sitecms/internal/runtimeconfig"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.Chat.Enabled() {
		t.Fatal("chat must be disabled without an api key")
	}
	if cfg.Uploads.Enabled() {
		t.Fatal("uploads must be disabled without an endpoint")
	}
	if len(cfg.Chat.Models) == 0 {
		t.Fatal("default model fallback list must not be empty")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SITE_DB_DRIVER", "postgres")
	t.Setenv("SITE_DB_DSN", "postgres://localhost/site")
	t.Setenv("SITE_CACHE_PATH", "/tmp/content.json")
	t.Setenv("SITE_CHAT_API_KEY", "sk-test")
	t.Setenv("SITE_CHAT_MODELS", "model/a, model/b ,")
	t.Setenv("SITE_ADMIN_KEY", "panel")
	t.Setenv("SITE_LOG_LEVEL", "debug")

	cfg := runtimeconfig.FromEnv()
	if cfg.Storage.Driver != "postgres" || cfg.Storage.DSN != "postgres://localhost/site" {
		t.Fatalf("storage = %+v", cfg.Storage)
	}
	if cfg.Cache.Path != "/tmp/content.json" {
		t.Fatalf("cache path = %q", cfg.Cache.Path)
	}
	if !cfg.Chat.Enabled() {
		t.Fatal("chat should be enabled with an api key")
	}
	if len(cfg.Chat.Models) != 2 || cfg.Chat.Models[1] != "model/b" {
		t.Fatalf("models = %v", cfg.Chat.Models)
	}
	if cfg.Admin.PanelKey != "panel" {
		t.Fatalf("panel key = %q", cfg.Admin.PanelKey)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level = %q", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestFromEnvInfersSqliteDriver(t *testing.T) {
	t.Setenv("SITE_DB_DSN", "file:site.db")

	cfg := runtimeconfig.FromEnv()
	if cfg.Storage.Driver != "sqlite3" {
		t.Fatalf("driver = %q, DSN without driver should default to sqlite3", cfg.Storage.Driver)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{"unknown driver", func(c *runtimeconfig.Config) { c.Storage.Driver = "oracle" }, runtimeconfig.ErrStorageDriverUnknown},
		{"driver without dsn", func(c *runtimeconfig.Config) { c.Storage.Driver = "sqlite3" }, runtimeconfig.ErrStorageDSNRequired},
		{"bad timeout", func(c *runtimeconfig.Config) { c.Chat.AttemptTimeout = -time.Second }, runtimeconfig.ErrChatTimeoutInvalid},
		{"endpoint without bucket", func(c *runtimeconfig.Config) { c.Uploads.Endpoint = "s3.example.com" }, runtimeconfig.ErrUploadsBucketRequired},
		{"bad level", func(c *runtimeconfig.Config) { c.Logging.Level = "loud" }, runtimeconfig.ErrLoggingLevelInvalid},
		{"bad format", func(c *runtimeconfig.Config) { c.Logging.Format = "xml" }, runtimeconfig.ErrLoggingFormatInvalid},
	}
	for _, tc := range cases {
		cfg := runtimeconfig.DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v want %v", tc.name, err, tc.want)
		}
	}
}
