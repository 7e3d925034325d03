package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/postgres"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/postgres/application"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/postgres/counter"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/postgres/history"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/postgres/job"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/postgres/notification"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/postgres/user"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/adapter/redis"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/auth"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/config"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
	applicationsvc "github.com/Immonkei/Backend-Mobile-MAD/internal/service/application"
	authsvc "github.com/Immonkei/Backend-Mobile-MAD/internal/service/auth"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/service/notify"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/service/reconcile"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/transport/dataloader"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/transport/middleware"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// Postgres (and Redis when configured), wires services and serves HTTP until
// ctx is canceled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// Infrastructure
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	health := rest.NewHealthHandler(pool, Version)

	var publisher interface {
		Publish(ctx context.Context, n domain.Notification) error
	}
	if cfg.Notify.RedisEnabled() {
		rdb, err := redis.NewClient(ctx, cfg.Notify)
		if err != nil {
			return err
		}
		defer rdb.Close()
		publisher = redis.NewPublisher(rdb, cfg.Notify.ChannelPrefix)
		health.WithOptional("redis", redis.NewPinger(rdb))
		logger.Info("notification fan-out enabled", slog.String("redis_addr", cfg.Notify.RedisAddr))
	}

	// Repositories
	appRepo := application.New(pool)
	historyRepo := history.New(pool)
	jobRepo := job.New(pool)
	userRepo := user.New(pool)
	notificationRepo := notification.New(pool)
	counterRepo := counter.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, userRepo, jwtManager, cfg.Auth)
	notifyService := notify.NewService(logger, notificationRepo, publisher, cfg.Notify)
	applicationService := applicationsvc.NewService(logger, appRepo, historyRepo, jobRepo, userRepo, notifyService, cfg.Applications)
	reconcileService := reconcile.NewService(logger, counterRepo, txm)

	// HTTP
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := NewRouter(logger, *cfg, Handlers{
		Health:        health,
		Auth:          rest.NewAuthHandler(authService, logger),
		Application:   rest.NewApplicationHandler(applicationService, logger),
		Admin:         rest.NewAdminHandler(applicationService, reconcileService, logger),
		Notification:  rest.NewNotificationHandler(notifyService, logger),
		TokenVerifier: authService,
		Loaders:       &dataloader.Repos{Job: jobRepo, User: userRepo},
	}, limiter)

	var scheduler *Scheduler
	if cfg.Reconcile.Schedule != "" {
		if scheduler, err = NewScheduler(logger, cfg.Reconcile, reconcileService); err != nil {
			return err
		}
		scheduler.Start()
	}

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", slog.String("error", err.Error()))
	}
	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}
	waitNotifications(shutdownCtx, logger, notifyService)

	logger.Info("stopped")
	return nil
}

// waitNotifications lets in-flight notification deliveries finish before the
// pool closes.
func waitNotifications(ctx context.Context, logger *slog.Logger, svc *notify.Service) {
	done := make(chan struct{})
	go func() {
		svc.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn("notification deliveries still in flight at shutdown")
	}
}
