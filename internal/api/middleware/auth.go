package middleware

import (
	"context"
	"net/http"

	"bus_safety/internal/common"
	"bus_safety/internal/common/security"
)

type contextKey string

const SessionCtxKey contextKey = "session"

// RequireSession redirects to the login page when the request carries no
// valid session cookie, otherwise stores the decoded session in the
// request context.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := security.FromContext(r.Context())
		if !ok {
			common.SetFlash(w, common.FlashError, "Please log in first.")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), SessionCtxKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole guards a route for exactly one role. Missing session goes to
// login; a session with any other role goes back to the dashboard. There
// is no role hierarchy: an admin cannot pass a passenger-only guard.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := security.FromContext(r.Context())
			if !ok {
				common.SetFlash(w, common.FlashError, "Please log in first.")
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			if sess.Role != role {
				common.SetFlash(w, common.FlashError, "You are not authorized to view that page.")
				http.Redirect(w, r, "/dashboard", http.StatusFound)
				return
			}
			ctx := context.WithValue(r.Context(), SessionCtxKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session stored by RequireSession or
// RequireRole.
func SessionFromContext(ctx context.Context) (security.Session, bool) {
	sess, ok := ctx.Value(SessionCtxKey).(security.Session)
	return sess, ok
}
