// Package http exposes the public JSON surface consumed by the site front
// end. The route set and response shapes are a fixed contract; see the
// individual handlers for the degradation rules.
package http

import (
	"net/http"
	"strings"

	"github.com/karafilm/go-sitecms/internal/admin"
	"github.com/karafilm/go-sitecms/internal/chat"
	"github.com/karafilm/go-sitecms/internal/content"
	"github.com/karafilm/go-sitecms/internal/logging"
	"github.com/karafilm/go-sitecms/internal/submissions"
	"github.com/karafilm/go-sitecms/internal/uploads"
	"github.com/karafilm/go-sitecms/pkg/interfaces"
)

// maxContentBody bounds the content document payload; documents are small
// JSON, anything larger is a mistake or abuse.
const maxContentBody = 10 << 20

// maxUploadMemory bounds the in-memory part of multipart parsing.
const maxUploadMemory = 32 << 20

// API registers the site endpoints.
type API struct {
	basePath    string
	content     *content.Service
	submissions *submissions.Service
	chat        *chat.Relay
	uploads     *uploads.Service
	gate        *admin.Gate
	logger      interfaces.Logger
}

// Option mutates the API configuration.
type Option func(*API)

// NewAPI constructs an API instance.
func NewAPI(opts ...Option) *API {
	api := &API{
		basePath: "/api",
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/api").
func WithBasePath(path string) Option {
	return func(api *API) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithContentService wires the content service.
func WithContentService(service *content.Service) Option {
	return func(api *API) { api.content = service }
}

// WithSubmissionsService wires the submissions service.
func WithSubmissionsService(service *submissions.Service) Option {
	return func(api *API) { api.submissions = service }
}

// WithChatRelay wires the chat relay.
func WithChatRelay(relay *chat.Relay) Option {
	return func(api *API) { api.chat = relay }
}

// WithUploadsService wires the upload relay.
func WithUploadsService(service *uploads.Service) Option {
	return func(api *API) { api.uploads = service }
}

// WithGate wires the admin unlock gate.
func WithGate(gate *admin.Gate) Option {
	return func(api *API) { api.gate = gate }
}

// WithLogger attaches a logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(api *API) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// Routes registers every endpoint on the mux.
func (api *API) Routes(mux *http.ServeMux) {
	if mux == nil {
		return
	}
	base := joinPath(api.basePath, "")

	mux.HandleFunc("GET "+base+"/content", api.handleContentGet)
	mux.HandleFunc("POST "+base+"/content", api.handleContentSave)

	mux.HandleFunc("POST "+base+"/registrations", api.handleRegistrationSubmit)
	mux.HandleFunc("GET "+base+"/registrations", api.handleRegistrationList)
	mux.HandleFunc("GET "+base+"/registrations/export", api.handleRegistrationExport)

	mux.HandleFunc("POST "+base+"/messages", api.handleMessageSubmit)
	mux.HandleFunc("GET "+base+"/messages", api.handleMessageList)

	mux.HandleFunc("POST "+base+"/chat", api.handleChat)
	mux.HandleFunc("POST "+base+"/upload", api.handleUpload)

	mux.HandleFunc("POST "+base+"/admin/unlock", api.handleAdminUnlock)
}

// Handler returns a mux with all routes registered.
func (api *API) Handler() http.Handler {
	mux := http.NewServeMux()
	api.Routes(mux)
	return mux
}
