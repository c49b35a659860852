package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"

	"github.com/Jasmitsingh01/school-management/domain"
)

// CasbinMW enforces route-level policy for authenticated callers. The
// subject role comes from the user record, not the token, so a role
// change takes effect without reissuing sessions.
type CasbinMW struct {
	enforcer *casbin.Enforcer
	userRepo domain.UserRepository
}

// NewCasbinMW creates new casbin middleware wrapper
func NewCasbinMW(enforcer *casbin.Enforcer, userRepo domain.UserRepository) *CasbinMW {
	return &CasbinMW{enforcer: enforcer, userRepo: userRepo}
}

// Enforce returns the casbin authorization middleware. It assumes
// RequireAuth already ran.
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		user, err := mw.userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		role := user.Role
		if role == "" {
			role = "user"
		}

		allowed, err := mw.enforcer.Enforce("role_"+role, c.Request.URL.Path, c.Request.Method)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authorization check failed"})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		c.Next()
	}
}
