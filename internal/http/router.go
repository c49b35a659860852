package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Jasmitsingh01/school-management/internal/http/handlers"
	"github.com/Jasmitsingh01/school-management/internal/http/middleware"
)

// BuildRouter wires all routes. The session guard runs globally and
// fails open to anonymous; RequireAuth plus casbin enforcement gate the
// mutating routes.
func BuildRouter(ah *handlers.AuthHandlers, sh *handlers.SchoolHandlers, uh *handlers.UploadHandlers, guard *middleware.SessionGuard, cb *middleware.CasbinMW) *gin.Engine {
	handlers.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery(), guard.Identify())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/send-otp", ah.SendOTP)
	auth.POST("/verify-otp", ah.VerifyOTP)

	// Reading the directory needs no account.
	r.GET("/schools", sh.List)
	r.GET("/schools/:id", sh.Get)

	v := r.Group("/").Use(guard.RequireAuth(), cb.Enforce())
	v.GET("/auth/me", ah.Me)
	v.POST("/auth/logout", ah.Logout)
	v.POST("/schools", sh.Create)
	v.PUT("/schools", sh.Update)
	v.PUT("/schools/:id", sh.Update)
	v.DELETE("/schools", sh.Delete)
	v.DELETE("/schools/:id", sh.Delete)
	v.POST("/upload", uh.Upload)

	return r
}
