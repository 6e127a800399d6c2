package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	fupv1 "github.com/pvillanueva/fup-consult/gen/proto/fup/v1"
	"github.com/pvillanueva/fup-consult/internal/batch"
	"github.com/pvillanueva/fup-consult/internal/common"
	"github.com/pvillanueva/fup-consult/internal/export"
	"github.com/pvillanueva/fup-consult/internal/osce"
	"github.com/pvillanueva/fup-consult/internal/provider"
	"github.com/pvillanueva/fup-consult/internal/repository"
	"github.com/pvillanueva/fup-consult/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	logger := common.NewLogger(common.ParseLogLevel(os.Getenv("LOG_LEVEL")))
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "err", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "err", err)
		os.Exit(1)
	}

	jobs := repository.NewBatchJobRepository(entc, logger)
	items := repository.NewBatchItemRepository(entc, logger)
	client := osce.NewClient(cfg.OSCE, logger)
	lookup := provider.NewService(client, logger)
	exports := export.NewService(cfg.Batch.ResultsDir, logger)
	svc := batch.NewService(jobs, items, lookup, exports, cfg.Batch, logger)
	runner := batch.NewRunner(svc, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	fupv1.RegisterBatchServiceServer(grpcServer, server.NewBatchServer(svc, runner, items, exports, logger))
	fupv1.RegisterProviderServiceServer(grpcServer, server.NewProviderServer(lookup, exports, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "err", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	runner.Shutdown(drainCtx)
	logger.Info("stopped")
}
