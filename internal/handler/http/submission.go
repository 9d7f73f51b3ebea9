package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/teampulse/teampulse-backend-go/internal/domain/task"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/middleware"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/response"
)

const (
	maxSubmissionMemory = 32 << 20 // 32 MiB
	maxSubmissionFiles  = 5
)

type SubmissionHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
}

type SubmissionHandlerImpl struct {
	submissionService task.SubmissionService
}

func NewSubmissionHandler(submissionService task.SubmissionService) SubmissionHandler {
	return &SubmissionHandlerImpl{
		submissionService: submissionService,
	}
}

// Submit implements SubmissionHandler. The request is multipart: text fields
// plus up to five completion files under the "files" key.
func (h *SubmissionHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	requester, err := middleware.RequesterFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	taskID := chi.URLParam(r, "taskID")

	if err := r.ParseMultipartForm(maxSubmissionMemory); err != nil {
		slog.Error("Submit parse multipart error", "task_id", taskID, "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	skipUpload, _ := strconv.ParseBool(r.FormValue("skip_file_upload"))
	submitReq := task.SubmitRequest{
		Comment:        r.FormValue("comment"),
		Remarks:        r.FormValue("remarks"),
		SkipFileUpload: skipUpload,
	}

	if err := submitReq.Validate(); err != nil {
		slog.Error("Submit validate error", "task_id", taskID, "error", err)
		response.HandleError(w, err)
		return
	}

	var files []task.SubmissionUpload
	if r.MultipartForm != nil {
		headers := r.MultipartForm.File["files"]
		if len(headers) > maxSubmissionFiles {
			response.BadRequest(w, "Too many files", map[string]string{
				"files": "at most 5 files may be attached to a submission",
			})
			return
		}
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				slog.Error("Submit file open error", "task_id", taskID, "filename", fh.Filename, "error", err)
				response.BadRequest(w, "Unreadable file in form", nil)
				return
			}
			defer f.Close()
			files = append(files, task.SubmissionUpload{
				Filename: fh.Filename,
				Size:     fh.Size,
				Content:  f,
			})
		}
	}

	updated, report, err := h.submissionService.Submit(r.Context(), requester, taskID, submitReq, files)
	if err != nil {
		slog.Error("Submit service error", "task_id", taskID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task submitted successfully", map[string]interface{}{
		"task":    updated,
		"uploads": report,
	})
}
