package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/pulkitchauhan42/TGP/internal/domain"
	"github.com/pulkitchauhan42/TGP/internal/http/response"
	"github.com/pulkitchauhan42/TGP/pkg/logger"
)

type ctxKey string

const ctxUser ctxKey = "user"

// Authenticator resolves a bearer token to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// AuthGate attaches the bearer token's user to the request. A missing
// header, or one without the "Bearer " prefix, passes through anonymously.
// A token that fails verification or names an unknown user is rejected
// with 401 even on routes that do not need a user.
func AuthGate(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			user, err := a.Authenticate(r.Context(), strings.TrimPrefix(authz, "Bearer "))
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthorized) {
					logger.ErrorContext(r.Context(), "authentication lookup failed", "error", err)
				}
				response.Unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), ctxUser, user)
			ctx = context.WithValue(ctx, logger.UserEmailKey, user.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects anonymous requests with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if CurrentUser(r) == nil {
			response.Unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func CurrentUser(r *http.Request) *domain.User {
	u, _ := r.Context().Value(ctxUser).(*domain.User)
	return u
}

// WithUser returns a copy of ctx carrying u, as AuthGate does.
func WithUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, ctxUser, u)
}
