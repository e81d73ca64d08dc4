// Package sitecms is the backend for the Kara Film production site: a single
// bilingual content document, festival registration and contact intake, an AI
// chat relay, and an upload relay to object storage.
package sitecms

import (
	nethttp "net/http"

	"github.com/karafilm/go-sitecms/internal/admin"
	"github.com/karafilm/go-sitecms/internal/chat"
	"github.com/karafilm/go-sitecms/internal/content"
	"github.com/karafilm/go-sitecms/internal/di"
	sitehttp "github.com/karafilm/go-sitecms/internal/http"
	"github.com/karafilm/go-sitecms/internal/logging"
	"github.com/karafilm/go-sitecms/internal/submissions"
	"github.com/karafilm/go-sitecms/internal/uploads"
)

// ContentService exports the content service for consumers of the package.
type ContentService = content.Service

// SubmissionsService exports the submissions service.
type SubmissionsService = submissions.Service

// ChatRelay exports the chat relay.
type ChatRelay = chat.Relay

// UploadsService exports the upload relay.
type UploadsService = uploads.Service

// Gate exports the admin unlock gate.
type Gate = admin.Gate

// Module is the top level runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a module from the provided configuration and optional DI
// overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Content returns the configured content service.
func (m *Module) Content() *ContentService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ContentService()
}

// Submissions returns the configured submissions service.
func (m *Module) Submissions() *SubmissionsService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.SubmissionsService()
}

// Chat returns the configured chat relay.
func (m *Module) Chat() *ChatRelay {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ChatRelay()
}

// Uploads returns the configured upload relay.
func (m *Module) Uploads() *UploadsService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.UploadsService()
}

// AdminGate returns the panel unlock gate.
func (m *Module) AdminGate() *Gate {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Gate()
}

// Handler returns the full JSON API as an http.Handler rooted at /api.
func (m *Module) Handler() nethttp.Handler {
	return m.API().Handler()
}

// API returns the configured HTTP surface for callers that want to mount the
// routes on their own mux.
func (m *Module) API() *sitehttp.API {
	return sitehttp.NewAPI(
		sitehttp.WithContentService(m.Content()),
		sitehttp.WithSubmissionsService(m.Submissions()),
		sitehttp.WithChatRelay(m.Chat()),
		sitehttp.WithUploadsService(m.Uploads()),
		sitehttp.WithGate(m.AdminGate()),
		sitehttp.WithLogger(logging.HTTPLogger(m.container.LoggerProvider())),
	)
}
