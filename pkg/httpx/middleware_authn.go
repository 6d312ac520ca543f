package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/assomusica/playroom/pkg/slogx"
	"github.com/assomusica/playroom/pkg/tokenx"
)

// Verifier checks a raw bearer token and returns its claims.
type Verifier interface {
	Verify(raw string) (tokenx.Claims, error)
}

// AuthnMiddleware verifies the Authorization bearer token and injects the
// acting member's identity and role into the request context.
func AuthnMiddleware(v Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("bearer token rejected", "err", err)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyMemberEmail, claims.Subject)
			ctx = context.WithValue(ctx, CtxKeyMemberRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
