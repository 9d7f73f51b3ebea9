package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/teampulse/teampulse-backend-go/internal/domain/auth"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	CheckAdminEmail(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}

// Signup implements AuthHandler.
func (a *AuthHandlerImpl) Signup(w http.ResponseWriter, r *http.Request) {
	var signupReq auth.SignupRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&signupReq); err != nil {
		slog.Error("Signup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := signupReq.Validate(); err != nil {
		slog.Error("Signup validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	token, err := a.authService.Signup(r.Context(), signupReq)
	if err != nil {
		slog.Error("Signup service error", "email", signupReq.Email, "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Account activated", "email", signupReq.Email, "role", signupReq.Role)
	response.Created(w, "Account created successfully", token)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	token, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "email", loginReq.Email, "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("User logged in", "email", loginReq.Email)
	response.SuccessWithMessage(w, "Login successful", token)
}

// CheckAdminEmail implements AuthHandler. Public endpoint; the signup form
// uses it to decide whether to offer the admin role.
func (a *AuthHandlerImpl) CheckAdminEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		response.BadRequest(w, "email query parameter is required", nil)
		return
	}

	authorized, err := a.authService.IsAdminEmailAuthorized(r.Context(), email)
	if err != nil {
		slog.Error("CheckAdminEmail service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]bool{"authorized": authorized})
}
