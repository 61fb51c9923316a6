package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MischieS/agenta-sub001/internal/di"
	"github.com/MischieS/agenta-sub001/internal/domain"
	"github.com/MischieS/agenta-sub001/internal/middleware"
	"github.com/MischieS/agenta-sub001/pkg/config"
	"github.com/MischieS/agenta-sub001/pkg/logger"
	"github.com/MischieS/agenta-sub001/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&logger.Config{
		Level:       "info",
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Get()
	defer log.Sync()

	if cfg.JWT.Secret == config.DevJWTSecret {
		log.Warn("using development JWT secret, tokens are not secure")
	}

	ctx := context.Background()

	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}); err != nil {
		log.Fatal("failed to init telemetry", zap.Error(err))
	}

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatal("failed to build container", zap.Error(err))
	}
	defer container.Close()

	router := setupRouter(cfg, container)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.App.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		log.Error("telemetry shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}

func setupRouter(cfg *config.Config, c *di.Container) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger.Get()))
	router.Use(middleware.CORS())
	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware(cfg.App.Name))
	}

	router.GET("/health", c.HealthHandler.Health)
	router.GET("/ready", c.HealthHandler.Ready)

	v1 := router.Group("/api/v1")

	// Public surface
	v1.POST("/auth/login", c.AuthHandler.Login)
	v1.POST("/applications", c.StudentHandler.Apply)
	v1.GET("/universities", c.UniversityHandler.List)
	v1.GET("/universities/:id", c.UniversityHandler.Get)

	// Any authenticated principal
	authed := v1.Group("")
	authed.Use(middleware.RequireAuth(c.AuthService))
	{
		authed.GET("/users/profile", c.UserHandler.Profile)
		authed.PATCH("/users/profile", c.UserHandler.UpdateProfile)
		authed.PATCH("/users/student", c.UserHandler.UpdateStudentSelf)

		authed.POST("/messages", c.MessageHandler.Send)
		authed.GET("/messages", c.MessageHandler.ListConversation)

		authed.GET("/notifications", c.NotificationHandler.List)
		authed.POST("/notifications/:id/read", c.NotificationHandler.MarkRead)
	}

	// Staff surface. Document routes allow students too, with ownership
	// enforced in the service, so they hang off the authed group.
	authed.POST("/students/:id/documents", c.DocumentHandler.Create)
	authed.GET("/students/:id/documents", c.DocumentHandler.ListByStudent)

	staff := v1.Group("/students")
	staff.Use(middleware.RequireAuth(c.AuthService))
	staff.Use(middleware.RequireStaff(domain.RoleAdmin, domain.RoleStaff))
	{
		staff.GET("", c.StudentHandler.List)
		staff.POST("", c.StudentHandler.Apply)
		staff.GET("/:id", c.StudentHandler.Get)
		staff.PATCH("/:id", c.StudentHandler.Update)
		staff.DELETE("/:id", c.StudentHandler.Delete)
		staff.POST("/:id/assign", c.StudentHandler.Assign)
	}

	// Admin surface
	admin := v1.Group("/admin")
	admin.Use(middleware.RequireAuth(c.AuthService))
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("/users", c.UserHandler.Create)
		admin.GET("/users", c.UserHandler.List)
		admin.GET("/users/:id", c.UserHandler.Get)
		admin.PATCH("/users/:id", c.UserHandler.Update)
		admin.DELETE("/users/:id", c.UserHandler.Delete)

		admin.POST("/universities", c.UniversityHandler.Create)
		admin.PATCH("/universities/:id", c.UniversityHandler.Update)
		admin.DELETE("/universities/:id", c.UniversityHandler.Delete)
	}

	return router
}
