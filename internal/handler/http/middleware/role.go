package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pontolabs/ponto-backend-go/internal/domain/auth"
	"github.com/pontolabs/ponto-backend-go/internal/handler/http/response"
)

// RequireRole allows only the listed roles through.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			role, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if _, ok := allowed[role]; !ok {
				response.Forbidden(w, "Insufficient permissions for this operation")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly requires the provider admin role
func AdminOnly(next http.Handler) http.Handler {
	return RequireRole(auth.RoleAdmin)(next)
}
