package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/teampulse/teampulse-backend-go/internal/domain/auth"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/response"
)

type AdminHandler interface {
	ListAdmins(w http.ResponseWriter, r *http.Request)
	AddAdminEmail(w http.ResponseWriter, r *http.Request)
	RemoveAdmin(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	authService auth.AuthService
}

func NewAdminHandler(authService auth.AuthService) AdminHandler {
	return &AdminHandlerImpl{
		authService: authService,
	}
}

// ListAdmins implements AdminHandler.
func (h *AdminHandlerImpl) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.authService.ListAdmins(r.Context())
	if err != nil {
		slog.Error("ListAdmins service error", "error", err)
		response.HandleError(w, err)
		return
	}

	profiles := make([]user.Profile, 0, len(admins))
	for _, a := range admins {
		profiles = append(profiles, user.ToProfile(a))
	}
	response.Success(w, profiles)
}

// AddAdminEmail implements AdminHandler. It provisions a placeholder admin
// account the given email can later claim through signup.
func (h *AdminHandlerImpl) AddAdminEmail(w http.ResponseWriter, r *http.Request) {
	var addReq auth.AddAdminEmailRequest

	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		slog.Error("AddAdminEmail decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := addReq.Validate(); err != nil {
		slog.Error("AddAdminEmail validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	provisioned, err := h.authService.ProvisionAdmin(r.Context(), addReq)
	if err != nil {
		slog.Error("AddAdminEmail service error", "email", addReq.Email, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Admin email provisioned", "email", addReq.Email, "user_id", provisioned.ID)
	response.Created(w, "Admin email added successfully", user.ToProfile(provisioned))
}

// RemoveAdmin implements AdminHandler.
func (h *AdminHandlerImpl) RemoveAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.authService.RemoveAdmin(r.Context(), id); err != nil {
		slog.Error("RemoveAdmin service error", "user_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Admin removed", "user_id", id)
	response.SuccessWithMessage(w, "Admin removed successfully", nil)
}
