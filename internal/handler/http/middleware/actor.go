package middleware

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplehr/hr-backend-go/internal/domain/auth"
	"github.com/peoplehr/hr-backend-go/internal/domain/user"
	"github.com/peoplehr/hr-backend-go/internal/handler/http/response"
)

// ActorContext resolves the authenticated user from the user_id claim
// and threads it through the request context. The role is read from
// storage on every request, not from the token, so a role change takes
// effect immediately.
func ActorContext(userRepository user.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			actor, err := userRepository.GetByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					response.HandleError(w, auth.ErrInvalidToken)
					return
				}
				response.HandleError(w, err)
				return
			}

			ctx := auth.WithActor(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// RequirePermission rejects actors whose role lacks the permission.
// Fine-grained scoping (direct reports, ownership) stays in the
// services; this gate only covers the coarse role check.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := auth.ActorFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !user.HasPermission(actor.Role, permission) {
				response.HandleError(w, user.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
