// Package main runs the conference feedback survey HTTP server with
// graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nam-conference/backend/config"
	"github.com/nam-conference/backend/internal/admin"
	"github.com/nam-conference/backend/internal/middleware"
	"github.com/nam-conference/backend/internal/survey"
	"github.com/nam-conference/backend/internal/webhook"
	"github.com/nam-conference/backend/pkg/database"
	"github.com/nam-conference/backend/pkg/redis"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	// Redis only backs the submission rate limiter; run without it if
	// unconfigured or unreachable.
	var rdb *goredis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
		if err != nil {
			logger.Warn("rate limiting disabled", zap.Error(err))
			rdb = nil
		}
	}

	surveyRepo := survey.NewRepository(pool)
	adminRepo := admin.NewRepository(pool)
	notifier := webhook.NewNotifier(surveyRepo, cfg.Webhook.URL, cfg.Frontend.BaseURL, logger)
	surveyHandler := survey.NewHandler(surveyRepo, notifier, logger)
	adminHandler := admin.NewHandler(adminRepo, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		submitLimiter := middleware.RateLimit(rdb, cfg.RateLimit.Limit,
			time.Duration(cfg.RateLimit.WindowSec)*time.Second, logger)
		api.POST("/survey/submit", submitLimiter, surveyHandler.Submit)

		api.GET("/admin/metrics", adminHandler.GetMetrics)
		api.GET("/admin/recent-responses", adminHandler.GetRecentResponses)
		api.GET("/admin/responses/:id", adminHandler.GetResponseDetail)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
