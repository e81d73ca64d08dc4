package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/karafilm/go-sitecms/internal/content"
)

type saveResponse struct {
	Success bool  `json:"success"`
	Remote  *bool `json:"remote,omitempty"`
}

// handleContentGet serves the current document. When no remote store is
// configured and no local mirror exists the response is an empty object,
// per the public contract; the hard-coded defaults stay a client-side
// concern in that situation.
func (api *API) handleContentGet(w http.ResponseWriter, r *http.Request) {
	if api.content == nil {
		writeJSON(w, http.StatusOK, struct{}{})
		return
	}

	doc, source := api.content.Fetch(r.Context())
	// The empty object is reserved for a store that was never configured.
	// A configured store that is down still serves the defaults, so an
	// outage reads as a populated site rather than a blank one.
	if source == content.SourceDefault && !api.content.RemoteConfigured() {
		writeJSON(w, http.StatusOK, struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// handleContentSave replaces the document wholesale. The payload is checked
// against the document schema before decoding; invariant violations answer
// 400, schema violations 422. A save that only reached the local mirror is
// still a success, reported with remote:false.
func (api *API) handleContentSave(w http.ResponseWriter, r *http.Request) {
	if api.content == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxContentBody))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	defer r.Body.Close()

	if err := content.ValidatePayload(raw); err != nil {
		writeError(w, err)
		return
	}

	doc := new(content.SiteContent)
	if err := json.Unmarshal(raw, doc); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	result, err := api.content.Save(r.Context(), doc)
	if err != nil {
		if errors.Is(err, content.ErrRemoteUnavailable) && result.Local {
			remote := false
			writeJSON(w, http.StatusOK, saveResponse{Success: true, Remote: &remote})
			return
		}
		api.logger.Error("http.content.save_failed", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, saveResponse{Success: true})
}
