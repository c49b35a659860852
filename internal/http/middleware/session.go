package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jasmitsingh01/school-management/domain"
)

// SessionGuard reads the session cookie on incoming requests. It never
// rejects a request by itself: a missing or invalid token just leaves
// the request anonymous, and each protected route decides whether that
// matters.
type SessionGuard struct {
	tokenSvc   domain.TokenService
	cookieName string
}

// NewSessionGuard creates a new session guard
func NewSessionGuard(tokenSvc domain.TokenService, cookieName string) *SessionGuard {
	return &SessionGuard{
		tokenSvc:   tokenSvc,
		cookieName: cookieName,
	}
}

// Identify resolves the caller's identity into the Gin context.
// The cookie is the primary carrier; a Bearer header works for API
// clients without a cookie jar.
func (g *SessionGuard) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := g.extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := g.tokenSvc.Validate(token)
		if err != nil {
			// Invalid or expired session fails open to anonymous.
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)
		c.Next()
	}
}

// RequireAuth rejects anonymous callers.
func (g *SessionGuard) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("user_id"); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (g *SessionGuard) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(g.cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// CallerID returns the authenticated user's ID from the context.
func CallerID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
