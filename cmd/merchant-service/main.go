package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/LavaJover/shvark-merchant-service/internal/app/background"
	"github.com/LavaJover/shvark-merchant-service/internal/app/setup"
	"github.com/LavaJover/shvark-merchant-service/internal/config"
	httpapi "github.com/LavaJover/shvark-merchant-service/internal/delivery/http"
	"github.com/LavaJover/shvark-merchant-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/metrics"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	appLogger := logger.New(cfg.LogConfig)
	slog.SetDefault(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.InitializeDependencies(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.Publisher.Close()

	discoveryMetrics := metrics.NewDiscoveryMetrics()
	useCases, err := setup.InitializeUseCases(deps, discoveryMetrics)
	if err != nil {
		log.Fatalf("failed to init usecases: %v", err)
	}

	sqlDB, err := deps.DB.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	// gRPC health
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	if err := sqlDB.PingContext(ctx); err != nil {
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		appLogger.Warn("database is not reachable yet", "error", err)
	} else {
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.GRPCServer.Host, cfg.GRPCServer.Port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	go func() {
		appLogger.Info("gRPC health server started", "host", cfg.GRPCServer.Host, "port", cfg.GRPCServer.Port)
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Error("gRPC server stopped", "error", err)
		}
	}()

	// Store events
	tasks := background.NewBackgroundTasks(
		useCases.StoreEventUsecase,
		deps.Subscriber,
		cfg.KafkaService.StoreEventsTopic,
		cfg.KafkaService.GroupID,
		appLogger,
	)
	if err := tasks.StartAll(ctx); err != nil {
		log.Fatalf("failed to start store event consumer: %v", err)
	}

	router := httpapi.NewRouter(httpapi.RouterConfig{
		Discovery: handlers.NewDiscoveryHandler(useCases.StoreDiscoveryUsecase, appLogger, cfg.HTTPServer.WriteTimeout),
		Health:    handlers.NewHealthHandler(sqlDB, appLogger),
		Gatherer:  prometheus.DefaultGatherer,
		Logger:    appLogger,
	})
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}
	go func() {
		appLogger.Info("HTTP server started", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to serve http: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutting down")
	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("http shutdown failed", "error", err)
	}
	grpcServer.GracefulStop()
}
