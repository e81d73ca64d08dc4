package http

import (
	"errors"
	"io"
	"net/http"
)

type unlockRequest struct {
	Key   string `json:"key"`
	Scope string `json:"scope,omitempty"`
}

type unlockResponse struct {
	OK bool `json:"ok"`
}

// handleAdminUnlock checks an unlock attempt against the configured gate
// keys. Scope "darkroom" targets the dark-room toggle, anything else the
// panel. A wrong key is a plain ok:false, not an auth failure; see the admin
// package for what this gate is and is not.
func (api *API) handleAdminUnlock(w http.ResponseWriter, r *http.Request) {
	var req unlockRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	if api.gate == nil {
		writeJSON(w, http.StatusOK, unlockResponse{OK: false})
		return
	}

	var ok bool
	switch req.Scope {
	case "darkroom":
		ok = api.gate.UnlockDarkRoom(req.Key)
	default:
		ok = api.gate.Unlock(req.Key)
	}
	writeJSON(w, http.StatusOK, unlockResponse{OK: ok})
}
