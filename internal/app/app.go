package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jasmitsingh01/school-management/internal/config"
	httpx "github.com/Jasmitsingh01/school-management/internal/http"
	"github.com/Jasmitsingh01/school-management/internal/http/handlers"
	"github.com/Jasmitsingh01/school-management/internal/http/middleware"
	"github.com/Jasmitsingh01/school-management/internal/infrastructure/auth"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(c.DB, cfg.CasbinModelPath)
	if err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc, cfg.CookieName, cfg.CookieSecure, cfg.SessionTTL, cfg.OTP_TTL)
	schoolH := handlers.NewSchoolHandlers(c.SchoolSvc)
	uploadH := handlers.NewUploadHandlers(c.Storage)

	guard := middleware.NewSessionGuard(c.TokenSvc, cfg.CookieName)
	casbinMW := middleware.NewCasbinMW(cas.E, c.UserRepo)

	r := httpx.BuildRouter(authH, schoolH, uploadH, guard, casbinMW)

	if cfg.StorageBackend != "s3" {
		r.Static("/uploads", cfg.StorageLocalDir)
	}

	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		cas.E.AddPolicy("role_user", "/auth/me", "GET")
		cas.E.AddPolicy("role_user", "/auth/logout", "POST")
		cas.E.AddPolicy("role_user", "/schools", "(POST|PUT|DELETE)")
		cas.E.AddPolicy("role_user", "/schools/*", "(PUT|DELETE)")
		cas.E.AddPolicy("role_user", "/upload", "POST")
		cas.E.AddPolicy("role_admin", "/*", "(GET|POST|PUT|DELETE)")
		_ = cas.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Printf("shutting down: %v", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
