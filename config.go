package sitecms

import "github.com/karafilm/go-sitecms/internal/runtimeconfig"

var (
	ErrStorageDriverUnknown  = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired    = runtimeconfig.ErrStorageDSNRequired
	ErrChatTimeoutInvalid    = runtimeconfig.ErrChatTimeoutInvalid
	ErrUploadsBucketRequired = runtimeconfig.ErrUploadsBucketRequired
	ErrLoggingLevelInvalid   = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid  = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	StorageConfig = runtimeconfig.StorageConfig
	CacheConfig   = runtimeconfig.CacheConfig
	ChatConfig    = runtimeconfig.ChatConfig
	UploadsConfig = runtimeconfig.UploadsConfig
	AdminConfig   = runtimeconfig.AdminConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the baseline configuration: memory store, no mirror,
// chat and uploads disabled.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// ConfigFromEnv builds a configuration from SITE_* environment variables.
func ConfigFromEnv() Config {
	return runtimeconfig.FromEnv()
}
