package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "loadhive/internal/app"
	"loadhive/internal/handlers/rest/ai_matching_post"
	"loadhive/internal/handlers/rest/healthcheck_head"
	"loadhive/internal/handlers/rest/match_contact_post"
	"loadhive/internal/handlers/rest/match_view_post"
	"loadhive/internal/handlers/rest/matches_get"
	"loadhive/internal/handlers/rest/matches_post"
	"loadhive/internal/handlers/rest/matches_preview_get"
	"loadhive/internal/handlers/rest/ping_get"
	"loadhive/internal/pkg/config"
	"loadhive/internal/pkg/dotenv"
	"loadhive/internal/pkg/grpchealth"
	metrics_system "loadhive/internal/pkg/metrics"
	"loadhive/internal/pkg/middlewares/auth"
	"loadhive/internal/pkg/middlewares/cors"
	"loadhive/internal/pkg/middlewares/graceful_shutdown"
	"loadhive/internal/pkg/middlewares/metrics"
	"loadhive/internal/pkg/middlewares/rate_limiter"
	"loadhive/internal/pkg/middlewares/timeout"
	"loadhive/internal/pkg/postgres"
	"loadhive/internal/pkg/redis"
	"loadhive/pkg/logger"
	"loadhive/pkg/logger/zap_adapter"
	"loadhive/pkg/token_bucket"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const grpcHealthService = "loadhive.matching"

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
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

	mainLog.Info("starting loadhive matching service")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(os.Args[1:]); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdown contexts derive from context.Background() on purpose
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

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	redisClient, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		err := redisClient.Close()
		if err != nil {
			runLog.Error("failed to close redis connection",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// ongoingCtx backs BaseContext and must survive SIGTERM.
	// It is cancelled only after server.Shutdown() so in-flight requests can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	metrics_system.StartSystemMetricsCollector(ongoingCtx, metrics_system.DefaultCollectInterval)

	readinessChecks := []healthcheck_head.Check{
		pool.Ping,
		func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, readinessChecks, businessApp, cfg),
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
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

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
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	var healthServer *grpchealth.Server
	var healthServerErr chan error
	if cfg.Server.GRPCHealthPort != "" {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Server.GRPCHealthPort))
		if err != nil {
			return fmt.Errorf("grpc health listen: %w", err)
		}

		healthServer = grpchealth.New(log, grpcHealthService)
		healthServerErr = make(chan error, 1)
		go func() {
			defer close(healthServerErr)
			if err := healthServer.Serve(lis); err != nil {
				healthServerErr <- err
			}
		}()
	}

	// nil channels never fire when the optional servers are disabled
	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr:
		return fmt.Errorf("pprof server: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	if healthServer != nil {
		healthServer.Drain()
	}

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must not derive from ctx, which is already cancelled here.
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
	if healthServer != nil {
		healthServer.Stop()
	}

	stopOngoingGracefully()
	businessApp.BackgroundWorkers.Wait()

	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, checks []healthcheck_head.Check, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, checks...)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)
	router.Methods(http.MethodOptions).HandlerFunc(cors.Options)

	api := router.NewRoute().Subrouter()
	api.Use(auth.Middleware(log, []byte(cfg.Auth.JWTSecret)))

	api.Handle("/functions/v1/ai-matching", ai_matching_post.New(log, app.ServiceMatching)).Methods(http.MethodPost)
	api.Handle("/shipments/{id}/matches", matches_post.New(log, app.ServiceMatching)).Methods(http.MethodPost)
	api.Handle("/shipments/{id}/matches", matches_get.New(log, app.ServiceMatching)).Methods(http.MethodGet)
	api.Handle("/shipments/{id}/matches/preview", matches_preview_get.New(log, app.ServiceMatching)).Methods(http.MethodGet)
	api.Handle("/matches/{id}/view", match_view_post.New(log, app.ServiceMatching)).Methods(http.MethodPost)
	api.Handle("/matches/{id}/contact", match_contact_post.New(log, app.ServiceMatching)).Methods(http.MethodPost)

	return cors.Middleware(cfg.CORS.AllowedOrigins)(router)
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
