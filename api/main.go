package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/inventory-form/internal/config"
	"github.com/rogerio-castellano/inventory-form/internal/csrf"
	"github.com/rogerio-castellano/inventory-form/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-form/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-form/internal/http/router"
	"github.com/rogerio-castellano/inventory-form/internal/logger"
	"github.com/rogerio-castellano/inventory-form/internal/redissvc"
	"github.com/rogerio-castellano/inventory-form/internal/render"
	"go.uber.org/zap"
)

const (
	visitorCleanupInterval = time.Minute
	visitorIdleTimeout     = 5 * time.Minute
)

func main() {
	if err := config.LoadEnvFile(".env"); err != nil {
		log.Fatalf("❌ Could not load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("❌ Could not build logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer, err := render.New()
	if err != nil {
		zl.Fatal("could not parse templates", zap.Error(err))
	}
	handlers.SetLogger(zl)
	handlers.SetRenderer(renderer)

	if cfg.Security.CSRFEnabled {
		if cfg.Security.Secret == "" {
			zl.Warn("no form token secret configured, using a random one; tokens will not survive restarts")
		}
		tokens, err := csrf.New([]byte(cfg.Security.Secret), cfg.Security.TokenTTL)
		if err != nil {
			zl.Fatal("could not set up form tokens", zap.Error(err))
		}
		handlers.SetFormTokens(tokens)
	}

	var limiter rl.Limiter
	if cfg.RateLimit.Enabled {
		switch cfg.RateLimit.Backend {
		case "redis":
			rs := redissvc.NewRedisService(cfg.RateLimit.RedisAddr)
			if err := rs.Ping(ctx); err != nil {
				zl.Fatal("could not connect to redis", zap.String("addr", cfg.RateLimit.RedisAddr), zap.Error(err))
			}
			defer rs.Close()
			limiter = rl.NewRedisLimiter(rs.Rdb(), cfg.RateLimit.Burst, cfg.RateLimit.Window)
		default:
			ml := rl.NewMemoryLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
			go ml.StartVisitorCleanupLoop(ctx, visitorCleanupInterval, visitorIdleTimeout)
			limiter = ml
		}
		zl.Info("rate limiting enabled", zap.String("backend", cfg.RateLimit.Backend))
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr(),
		Handler: router.NewRouter(router.Options{
			Logger:         zl,
			Limiter:        limiter,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			RequestTimeout: cfg.Server.RequestTimeout,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zl.Info("✅ server running", zap.String("addr", srv.Addr), zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("server forced to shutdown", zap.Error(err))
		return
	}
	zl.Info("server stopped gracefully")
}
