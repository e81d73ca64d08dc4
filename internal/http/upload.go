package http

import (
	"net/http"

	"github.com/karafilm/go-sitecms/internal/uploads"
)

type uploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

// handleUpload relays one multipart file to object storage and answers with
// its public URL. The file is accepted as-is; the panel is the only intended
// caller and the store enforces its own limits.
func (api *API) handleUpload(w http.ResponseWriter, r *http.Request) {
	if api.uploads == nil || !api.uploads.Enabled() {
		writeError(w, uploads.ErrDisabled)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "file field is required"})
		return
	}
	defer file.Close()

	url, err := api.uploads.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		api.logger.Error("http.upload.failed", "filename", header.Filename, "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{Success: true, URL: url})
}
