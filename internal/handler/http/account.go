package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/middleware"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/response"
)

const maxAvatarMemory = 8 << 20 // 8 MiB

type AccountHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	UpdateAvatar(w http.ResponseWriter, r *http.Request)
}

type AccountHandlerImpl struct {
	accountService user.AccountService
}

func NewAccountHandler(accountService user.AccountService) AccountHandler {
	return &AccountHandlerImpl{
		accountService: accountService,
	}
}

// GetProfile implements AccountHandler.
func (h *AccountHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	requester, err := middleware.RequesterFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := h.accountService.GetProfile(r.Context(), requester.UserID)
	if err != nil {
		slog.Error("GetProfile service error", "user_id", requester.UserID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

// UpdateProfile implements AccountHandler.
func (h *AccountHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	requester, err := middleware.RequesterFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq user.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		slog.Error("UpdateProfile validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	profile, err := h.accountService.UpdateProfile(r.Context(), requester.UserID, updateReq)
	if err != nil {
		slog.Error("UpdateProfile service error", "user_id", requester.UserID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated successfully", profile)
}

// UpdateAvatar implements AccountHandler. Expects a multipart form with a
// single "avatar" file.
func (h *AccountHandlerImpl) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	requester, err := middleware.RequesterFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxAvatarMemory); err != nil {
		slog.Error("UpdateAvatar parse multipart error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	f, fh, err := r.FormFile("avatar")
	if err != nil {
		response.BadRequest(w, "avatar file is required", nil)
		return
	}
	defer f.Close()

	profile, err := h.accountService.UpdateAvatar(r.Context(), requester.UserID, f, fh.Filename)
	if err != nil {
		slog.Error("UpdateAvatar service error", "user_id", requester.UserID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Avatar updated successfully", profile)
}
