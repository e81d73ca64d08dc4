package logging

import (
	"context"

	"github.com/karafilm/go-sitecms/pkg/interfaces"
)

const (
	rootModule        = "site"
	contentModule     = "site.content"
	submissionsModule = "site.submissions"
	chatModule        = "site.chat"
	uploadsModule     = "site.uploads"
	httpModule        = "site.http"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ContentLogger returns the logger namespace reserved for the content service.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// SubmissionsLogger returns the logger namespace reserved for the intake service.
func SubmissionsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, submissionsModule)
}

// ChatLogger returns the logger namespace reserved for the chat relay.
func ChatLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, chatModule)
}

// UploadsLogger returns the logger namespace reserved for the upload relay.
func UploadsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, uploadsModule)
}

// HTTPLogger returns the logger namespace reserved for the HTTP surface.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
