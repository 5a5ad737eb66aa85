package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/6394981696/Lecture-Scheduling/internal/session"
	"github.com/6394981696/Lecture-Scheduling/pkg/token"
)

// SessionCookie is the name of the signed session cookie.
const SessionCookie = "lecture_session"

const (
	principalKey = "principal"
	sessionIDKey = "session_id"
)

// WithPrincipal resolves the visitor's principal from the session
// cookie and injects it into the context. Any failure along the way
// (no cookie, bad token, expired or cleared session) resolves to
// anonymous; absent is always a valid state, never an error.
func WithPrincipal(store session.Store, tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil || cookie == "" {
			c.Next()
			return
		}

		sid, err := tokens.Parse(cookie)
		if err != nil {
			c.Next()
			return
		}

		p, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			c.Next()
			return
		}

		c.Set(principalKey, p)
		c.Set(sessionIDKey, sid)

		c.Next()
	}
}

// PrincipalFrom returns the resolved principal, or nil for anonymous.
func PrincipalFrom(c *gin.Context) *session.Principal {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	p, ok := v.(*session.Principal)
	if !ok {
		return nil
	}
	return p
}

// SessionIDFrom returns the resolved session ID, or "" for anonymous.
func SessionIDFrom(c *gin.Context) string {
	v, exists := c.Get(sessionIDKey)
	if !exists {
		return ""
	}
	s, _ := v.(string)
	return s
}

// RoleFrom resolves the visitor's role from the context.
func RoleFrom(c *gin.Context) session.Role {
	return session.RoleOf(PrincipalFrom(c))
}

// HomePath is the canonical page for each role: admins land on the
// admin dashboard, instructors on their schedule, everyone else on
// the public landing page.
func HomePath(role session.Role) string {
	switch role {
	case session.RoleAdmin:
		return "/admin"
	case session.RoleInstructor:
		return "/instructor"
	default:
		return "/"
	}
}

// RequireRole guards a view for one role. On mismatch the visitor is
// redirected to the canonical page of the role they actually have,
// mirroring the mount-time redirect of the source client but
// evaluated on every request.
func RequireRole(role session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolved := RoleFrom(c)
		if resolved != role {
			c.Redirect(http.StatusSeeOther, HomePath(resolved))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectAuthenticated sends already-authenticated visitors from the
// login/register pages to their dashboard.
func RedirectAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role := RoleFrom(c); role != session.RoleAnonymous {
			c.Redirect(http.StatusSeeOther, HomePath(role))
			c.Abort()
			return
		}
		c.Next()
	}
}
