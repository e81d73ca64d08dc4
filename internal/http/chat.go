package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/karafilm/go-sitecms/internal/chat"
)

type chatRequest struct {
	Message      string `json:"message"`
	CustomPrompt string `json:"customPrompt,omitempty"`
	Model        string `json:"model,omitempty"`
}

// handleChat relays a visitor message to the AI backends. The endpoint always
// answers 200 with a displayable body; availability is decided from the
// current document's event switch plus relay configuration, so disabling chat
// in the panel takes effect without a restart.
func (api *API) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "message is required"})
		return
	}

	if api.chat == nil {
		writeJSON(w, http.StatusOK, chat.Response{Text: chat.Placeholders[0], Status: chat.StatusManual})
		return
	}

	relayReq := chat.Request{
		Message:      req.Message,
		CustomPrompt: req.CustomPrompt,
		Model:        req.Model,
		Disabled:     !api.chat.Configured(),
	}
	if api.content != nil {
		doc, _ := api.content.Fetch(r.Context())
		// A prompt supplied with the request wins over the document's
		// panel-configured prompt.
		if strings.TrimSpace(relayReq.CustomPrompt) == "" {
			relayReq.CustomPrompt = doc.AIPrompt
		}
		if !doc.SpecialEvent.EnableChat {
			relayReq.Disabled = true
		}
	}

	writeJSON(w, http.StatusOK, api.chat.Ask(r.Context(), relayReq))
}
