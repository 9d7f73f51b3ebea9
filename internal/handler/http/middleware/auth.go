package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/teampulse/teampulse-backend-go/internal/domain/auth"
	"github.com/teampulse/teampulse-backend-go/internal/domain/user"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// RequesterFromContext rebuilds the authenticated identity from verified
// token claims. It must only run behind AuthRequired.
func RequesterFromContext(r *http.Request) (auth.Requester, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Requester{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.Requester{}, auth.ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	name, _ := claims["name"].(string)

	return auth.Requester{
		UserID: userID,
		Email:  email,
		Role:   user.Role(role),
		Name:   name,
	}, nil
}
