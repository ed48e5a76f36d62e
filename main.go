package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forumhub/backend/internal/config"
	"github.com/forumhub/backend/internal/db"
	"github.com/forumhub/backend/internal/handler"
	"github.com/forumhub/backend/internal/logger"
	"github.com/forumhub/backend/internal/ratelimit"
	"github.com/forumhub/backend/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// @title Forum Backend API
// @version 1.0
// @description Posts, comments and communities behind JWT access/refresh authentication.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log.Level, cfg.Server.Production())
	defer func() { _ = log.Sync() }()

	if cfg.Server.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// bad token config fails before any DB work
	tokens, err := service.NewTokenService(service.TokenConfig{
		AccessSecret:  cfg.Auth.AccessTokenSecret,
		RefreshSecret: cfg.Auth.RefreshTokenSecret,
		AccessTTL:     cfg.Auth.AccessTokenTTL,
		RefreshTTL:    cfg.Auth.RefreshTokenTTL,
	})
	if err != nil {
		return err
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	pg := db.NewPostgres(pool)
	if err := pg.Migrate(ctx); err != nil {
		return err
	}
	if err := service.NewSeeder(pg, cfg.Seed.Communities, log).Seed(ctx); err != nil {
		return err
	}

	limiter, closeLimiter, err := ratelimit.New(ctx, cfg.Redis, cfg.RateLimit, log)
	if err != nil {
		return fmt.Errorf("init rate limiter: %w", err)
	}
	defer func() { _ = closeLimiter() }()

	authSvc := service.NewAuthService(pg, tokens, cfg.Server.Production(), log)
	router, err := handler.NewRouter(handler.RouterDeps{
		Auth:           handler.NewAuthHandler(authSvc, log),
		Post:           handler.NewPostHandler(service.NewPostService(pg, log), authSvc, log),
		Comment:        handler.NewCommentHandler(service.NewCommentService(pg, log), authSvc, log),
		LoginLimiter:   limiter,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		TrustedProxies: cfg.Server.TrustedProxies,
		Log:            log,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Server.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
