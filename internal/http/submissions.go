package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/karafilm/go-sitecms/internal/submissions"
)

type submitResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference,omitempty"`
}

func (api *API) handleRegistrationSubmit(w http.ResponseWriter, r *http.Request) {
	if api.submissions == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	var data submissions.RegistrationData
	if err := decodeJSON(r, &data); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	created, err := api.submissions.SubmitRegistration(r.Context(), data)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error", Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{Success: true, Reference: created.Reference})
}

// handleRegistrationList serves all submissions newest first. The listing is
// for the admin panel, but access control is the client-side gate described
// in the admin package; the endpoint itself is open by design.
func (api *API) handleRegistrationList(w http.ResponseWriter, r *http.Request) {
	if api.submissions == nil {
		writeJSON(w, http.StatusOK, []struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, api.submissions.ListRegistrations(r.Context()))
}

func (api *API) handleRegistrationExport(w http.ResponseWriter, r *http.Request) {
	if api.submissions == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	records := api.submissions.ListRegistrations(r.Context())

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="registrations.csv"`)
	if err := submissions.ExportCSV(w, records); err != nil {
		api.logger.Error("http.registrations.export_failed", "error", err)
	}
}

func (api *API) handleMessageSubmit(w http.ResponseWriter, r *http.Request) {
	if api.submissions == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	var input submissions.MessageInput
	if err := decodeJSON(r, &input); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	if _, err := api.submissions.SubmitMessage(r.Context(), input); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error", Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{Success: true})
}

func (api *API) handleMessageList(w http.ResponseWriter, r *http.Request) {
	if api.submissions == nil {
		writeJSON(w, http.StatusOK, []struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, api.submissions.ListMessages(r.Context()))
}
