package http

import (
	"context"
	"net/http"

	"github.com/odonlab/cms/internal/cms/domain"
	"github.com/odonlab/cms/internal/cms/service"
	"github.com/odonlab/cms/pkg/httpx"
	"github.com/odonlab/cms/pkg/jwtx"
	"github.com/odonlab/cms/pkg/slogx"
)

type ctxKey string

const ctxKeyUser ctxKey = "user"

// UserFromContext returns the authenticated user attached by
// RequireAuthenticated. The second return is false outside guarded routes.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(ctxKeyUser).(domain.User)
	return user, ok
}

// RequireAuthenticated verifies the bearer token and resolves its subject to
// a stored user, which is attached to the request context. Any failure,
// including a valid token whose subject no longer exists, is a 401 with a
// bearer challenge.
func RequireAuthenticated(v jwtx.Verifier, auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := httpx.BearerToken(r)
			if !ok {
				httpx.WriteBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				httpx.WriteBearerError(w, "token verification failed")
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				httpx.WriteBearerError(w, "token expired")
				return
			}

			user, err := auth.ResolveUser(ctx, claims.Subject)
			if err != nil {
				log.Warn("token subject not found", "subject", claims.Subject)
				httpx.WriteBearerError(w, "unknown user")
				return
			}

			ctx = context.WithValue(ctx, ctxKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin allows only users whose stored record carries the admin flag.
// It must run after RequireAuthenticated.
func RequireAdmin() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				httpx.WriteBearerError(w, "missing bearer token")
				return
			}
			if !user.IsAdmin {
				writeError(w, http.StatusForbidden, "forbidden", "Admin privileges required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
