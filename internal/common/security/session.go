package security

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the cookie jwtauth.Verifier reads the token from.
const SessionCookie = "jwt"

// Session is the decoded per-browser session state. It is the sole source
// of authorization truth for a request.
type Session struct {
	UserID string
	Role   string
	Name   string
}

// SessionManager signs sessions into the cookie and decodes them back.
// The payload travels entirely in the cookie; there is no server-side
// session table.
type SessionManager struct {
	tokenAuth *jwtauth.JWTAuth
	ttl       time.Duration
}

func NewSessionManager(key []byte, ttl time.Duration) *SessionManager {
	return &SessionManager{
		tokenAuth: jwtauth.New("HS256", key, nil),
		ttl:       ttl,
	}
}

// Verifier returns the middleware that validates the session cookie and
// puts its claims into the request context. Decoding into a Session
// happens later via FromContext.
func (m *SessionManager) Verifier() func(http.Handler) http.Handler {
	return jwtauth.Verifier(m.tokenAuth)
}

// Issue signs s and sets the session cookie on the response.
func (m *SessionManager) Issue(w http.ResponseWriter, s Session) error {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": s.UserID,
		"role":    s.Role,
		"name":    s.Name,
		"exp":     now.Add(m.ttl).Unix(),
		"iat":     now.Unix(),
	}
	_, tokenString, err := m.tokenAuth.Encode(claims)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    tokenString,
		Path:     "/",
		Expires:  now.Add(m.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie. Idempotent.
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromContext decodes the verified claims placed by Verifier into a typed
// Session. The second return is false when there is no valid session.
func FromContext(ctx context.Context) (Session, bool) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil {
		return Session{}, false
	}
	s := Session{}
	s.UserID, _ = claims["user_id"].(string)
	s.Role, _ = claims["role"].(string)
	s.Name, _ = claims["name"].(string)
	if s.UserID == "" || s.Role == "" {
		return Session{}, false
	}
	return s, true
}
