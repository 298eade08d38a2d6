package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/skanda-m/estatedesk/internal/domain"
)

// SessionCookie is the name of the credential cookie.
const SessionCookie = "estatedesk_session"

type contextKey int

const sessionKey contextKey = 0

// /email-verified is deliberately not an auth route: verification auto-signs
// the user in, so the callback page renders behind the guard like any other.
var authRoutes = map[string]bool{
	"/sign-in": true,
	"/sign-up": true,
}

var passwordRoutes = map[string]bool{
	"/forgot-password": true,
	"/reset-password":  true,
}

// guardExempt reports whether the path bypasses session interception
// entirely: static assets and the verification endpoint reached from email
// links.
func guardExempt(path string) bool {
	return strings.HasPrefix(path, "/static/") || path == "/verify-email"
}

// sessionGuard resolves the session cookie on every navigable request and
// enforces the access table: unauthenticated requests may only reach auth and
// password routes (otherwise redirected to sign-in); authenticated requests
// are bounced from auth routes back to home. The resolved session is stored
// on the request context for handlers.
func (s *Server) sessionGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if guardExempt(path) {
			next.ServeHTTP(w, r)
			return
		}

		sess, err := s.auth.GetSession(r.Context(), cookieToken(r))
		if err != nil {
			s.logger.Error("session lookup failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		isAuthRoute := authRoutes[path] || passwordRoutes[path]

		if sess == nil {
			if !isAuthRoute {
				http.Redirect(w, r, "/sign-in", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if isAuthRoute {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, sess)))
	})
}

// sessionFrom returns the session the guard attached, or nil on auth routes.
func sessionFrom(r *http.Request) *domain.Session {
	sess, _ := r.Context().Value(sessionKey).(*domain.Session)
	return sess
}

func cookieToken(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
