package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teampulse/teampulse-backend-go/internal/domain/auth"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
)

// stubAuthService returns canned results per method.
type stubAuthService struct {
	signupResult auth.TokenResponse
	signupErr    error
	loginResult  auth.TokenResponse
	loginErr     error
	authorized   bool
}

func (s *stubAuthService) Signup(ctx context.Context, req auth.SignupRequest) (auth.TokenResponse, error) {
	return s.signupResult, s.signupErr
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) ProvisionAdmin(ctx context.Context, req auth.AddAdminEmailRequest) (user.User, error) {
	return user.User{}, nil
}

func (s *stubAuthService) IsAdminEmailAuthorized(ctx context.Context, email string) (bool, error) {
	return s.authorized, nil
}

func (s *stubAuthService) ListAdmins(ctx context.Context) ([]user.User, error) {
	return nil, nil
}

func (s *stubAuthService) RemoveAdmin(ctx context.Context, id string) error {
	return nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		loginResult: auth.TokenResponse{
			Token:     "token-abc",
			ExpiresAt: 1700000000,
			User:      user.Profile{ID: "user-1", Email: "dina@teampulse.io", Role: user.RoleEmployee},
		},
	}
	handler := NewAuthHandler(svc)

	rec := postJSON(t, handler.Login, map[string]string{
		"email":    "dina@teampulse.io",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "token-abc", data["token"])
}

func TestAuthHandler_Login_NotActivated(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{loginErr: auth.ErrNotActivated})

	rec := postJSON(t, handler.Login, map[string]string{
		"email":    "new@teampulse.io",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	envelope := decodeEnvelope(t, rec)
	errDetail := envelope["error"].(map[string]interface{})
	assert.Equal(t, "NOT_ACTIVATED", errDetail["code"])
	details := errDetail["details"].(map[string]interface{})
	assert.Equal(t, "true", details["needs_signup"])
}

func TestAuthHandler_Login_AccountNotFound(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{loginErr: auth.ErrAccountNotFound})

	rec := postJSON(t, handler.Login, map[string]string{
		"email":    "ghost@teampulse.io",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthHandler_Login_ValidationFailure(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{})

	rec := postJSON(t, handler.Login, map[string]string{
		"email":    "not-an-email",
		"password": "123",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	envelope := decodeEnvelope(t, rec)
	errDetail := envelope["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errDetail["code"])
}

func TestAuthHandler_Signup_RoleMismatch(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		signupErr: &auth.RoleMismatchError{
			Email:     "emp@teampulse.io",
			Requested: user.RoleAdmin,
			Actual:    user.RoleEmployee,
		},
	})

	rec := postJSON(t, handler.Signup, map[string]string{
		"name":     "Emp",
		"email":    "emp@teampulse.io",
		"password": "secret123",
		"role":     "admin",
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	envelope := decodeEnvelope(t, rec)
	errDetail := envelope["error"].(map[string]interface{})
	assert.Equal(t, "ROLE_MISMATCH", errDetail["code"])
	details := errDetail["details"].(map[string]interface{})
	assert.Equal(t, "employee", details["actual_role"])
}

func TestAuthHandler_Signup_NotAuthorized(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{signupErr: auth.ErrNotAuthorized})

	rec := postJSON(t, handler.Signup, map[string]string{
		"name":     "Stranger",
		"email":    "stranger@teampulse.io",
		"password": "secret123",
		"role":     "admin",
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	envelope := decodeEnvelope(t, rec)
	errDetail := envelope["error"].(map[string]interface{})
	assert.Equal(t, "NOT_AUTHORIZED", errDetail["code"])
	details := errDetail["details"].(map[string]interface{})
	assert.Equal(t, "true", details["contact_admin"])
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		signupResult: auth.TokenResponse{Token: "token-new", User: user.Profile{ID: "user-2"}},
	})

	rec := postJSON(t, handler.Signup, map[string]string{
		"name":     "Dina",
		"email":    "dina@teampulse.io",
		"password": "secret123",
		"role":     "employee",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_CheckAdminEmail(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{authorized: true})

	req := httptest.NewRequest(http.MethodGet, "/?email=boss@teampulse.io", nil)
	rec := httptest.NewRecorder()
	handler.CheckAdminEmail(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, true, data["authorized"])

	// Missing email is a bad request.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	handler.CheckAdminEmail(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
