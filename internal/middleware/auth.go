// Package middleware provides the HTTP middleware stack: session
// authentication, request logging, and metrics.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mmynk/fete/internal/auth"
)

// SessionCookie is the cookie the session token travels in. It carries no
// Max-Age, so the browser drops it when the session ends.
const SessionCookie = "fete_session"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const sessionKey contextKey = "session"

// GetSession extracts the validated session claims from the context.
// Returns nil if the request carried no valid session.
func GetSession(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(sessionKey).(*auth.Claims)
	return claims
}

// extractToken pulls the session token from the cookie or, failing that,
// from a Bearer Authorization header.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// RequireScope returns middleware that rejects requests without a valid
// session of the given scope. The guest and admin gates are independent:
// an admin session does not pass the guest gate, nor the reverse.
func RequireScope(sessions *auth.SessionManager, scope auth.Scope) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				unauthorized(w, auth.ErrMissingToken.Error())
				return
			}

			claims, err := sessions.Validate(token)
			if err != nil {
				unauthorized(w, auth.ErrInvalidToken.Error())
				return
			}
			if claims.Scope != scope {
				unauthorized(w, "wrong session scope")
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalSession returns middleware that attaches session claims to the
// context when a valid token is present, but never rejects. Used by the
// session-state endpoint, which must answer for locked-out visitors too.
func OptionalSession(sessions *auth.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := extractToken(r); token != "" {
				if claims, err := sessions.Validate(token); err == nil {
					ctx := context.WithValue(r.Context(), sessionKey, claims)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
