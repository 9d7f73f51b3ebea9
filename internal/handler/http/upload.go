package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teampulse/teampulse-backend-go/internal/handler/http/response"
	"github.com/teampulse/teampulse-backend-go/internal/service/file"
)

const maxUploadMemory = 32 << 20 // 32 MiB

type UploadHandler interface {
	UploadImage(w http.ResponseWriter, r *http.Request)
	DeleteFile(w http.ResponseWriter, r *http.Request)
}

type UploadHandlerImpl struct {
	fileService file.FileService
}

func NewUploadHandler(fileService file.FileService) UploadHandler {
	return &UploadHandlerImpl{
		fileService: fileService,
	}
}

// UploadImage implements UploadHandler. Multipart form with a "file" entry;
// an optional "folder" field picks the destination.
func (h *UploadHandlerImpl) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		slog.Error("UploadImage parse multipart error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	f, fh, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "file is required", nil)
		return
	}
	defer f.Close()

	url, err := h.fileService.UploadImage(r.Context(), r.FormValue("folder"), f, fh.Filename)
	if err != nil {
		slog.Error("UploadImage service error", "filename", fh.Filename, "error", err)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	slog.Info("File uploaded", "filename", fh.Filename, "url", url)
	response.Created(w, "File uploaded successfully", map[string]string{
		"url":           url,
		"original_name": fh.Filename,
	})
}

// DeleteFile implements UploadHandler.
func (h *UploadHandlerImpl) DeleteFile(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	if path == "" {
		response.BadRequest(w, "file path is required", nil)
		return
	}

	if err := h.fileService.DeleteFile(r.Context(), path); err != nil {
		slog.Error("DeleteFile service error", "path", path, "error", err)
		response.NotFound(w, "File not found")
		return
	}

	slog.Info("File deleted", "path", path)
	response.SuccessWithMessage(w, "File deleted successfully", nil)
}
