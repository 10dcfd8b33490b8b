package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	application "github.com/tarekkanon/nightshift-logistics/internal/app"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/auth_login_post"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/auth_logout_post"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/deliveries_get"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/deliveries_post"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/delivery_actions_post"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/delivery_get"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/delivery_photos_post"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/delivery_signature_post"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/healthcheck_head"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/ping_get"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/stats_daily_get"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/sync_batch_post"
	"github.com/tarekkanon/nightshift-logistics/internal/handlers/rest/sync_pending_get"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/config"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/dotenv"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/grpcserver"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/kafka"
	metrics_system "github.com/tarekkanon/nightshift-logistics/internal/pkg/metrics"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/middlewares/driver_auth"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/middlewares/graceful_shutdown"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/middlewares/metrics"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/middlewares/rate_limiter"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/middlewares/timeout"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/postgres"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/redis"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger/zap_adapter"
	"github.com/tarekkanon/nightshift-logistics/pkg/token_bucket"
)

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Logger.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting nightshift-logistics application")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis connection", logger.NewField("error", err))
		}
	}()

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer businessApp.BackgroundWorkers.Stop()

	metrics_system.StartSystemMetricsCollector(ctx)

	// gRPC health для оркестратора
	healthServer := grpcserver.NewHealthServer(log)
	healthServerErr := make(chan error, 1)
	go func() {
		defer close(healthServerErr)
		if err := healthServer.Serve(ctx, cfg.Server.GRPCPort); err != nil {
			healthServerErr <- err
		}
	}()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	probes := map[string]healthcheck_head.Probe{
		"postgres": pool,
		"redis":    redisProbe{client: redisClient},
	}

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, probes, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	healthServer.SetServing()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	case err := <-pprofServerErr: // nil канал при выключенном pprof, кейс не сработает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	healthServer.Shutdown()

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	probes map[string]healthcheck_head.Probe,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, probes)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/auth/login", auth_login_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/auth/logout", auth_logout_post.New(log, app.ServiceAuth)).Methods("POST")

	driver := router.NewRoute().Subrouter()
	driver.Use(driver_auth.Middleware(log, app.ServiceAuth))

	driver.Handle("/deliveries", deliveries_post.New(log, app.ServiceDelivery)).Methods("POST")
	driver.Handle("/deliveries", deliveries_get.New(log, app.ServiceDelivery)).Methods("GET")
	driver.Handle("/deliveries/{id}", delivery_get.New(log, app.ServiceDelivery)).Methods("GET")
	driver.Handle("/deliveries/{id}/actions", delivery_actions_post.New(log, app.ServiceDelivery)).Methods("POST")
	driver.Handle("/deliveries/{id}/photos", delivery_photos_post.New(log, app.ServiceDelivery)).Methods("POST")
	driver.Handle("/deliveries/{id}/signature", delivery_signature_post.New(log, app.ServiceDelivery)).Methods("POST")

	driver.Handle("/sync/batch", sync_batch_post.New(log, app.ServiceSync)).Methods("POST")
	driver.Handle("/sync/pending", sync_pending_get.New(log, app.ServiceOutbox)).Methods("GET")

	driver.Handle("/stats/daily", stats_daily_get.New(log, app.ServiceStats)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

type redisProbe struct {
	client *goredis.Client
}

func (p redisProbe) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
