package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/oguzakin/eligibility-tracker/internal/analyzer"
	"github.com/oguzakin/eligibility-tracker/internal/classify"
	"github.com/oguzakin/eligibility-tracker/internal/common"
	"github.com/oguzakin/eligibility-tracker/internal/extract"
	"github.com/oguzakin/eligibility-tracker/internal/llm/ollama"
	"github.com/oguzakin/eligibility-tracker/internal/pipeline"
	"github.com/oguzakin/eligibility-tracker/internal/recon"
	"github.com/oguzakin/eligibility-tracker/internal/repository"
)

// analyzerd is the long-running analysis daemon: it polls for pending
// applications, runs them through the reconciliation engine and serves a
// gRPC health endpoint for the platform probes.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
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
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	extractor := ollama.NewClient(ollama.Config{
		BaseURL:     cfg.Ollama.Host,
		Model:       cfg.Ollama.Model,
		Timeout:     cfg.Ollama.Timeout,
		MaxRetries:  cfg.Ollama.MaxRetries,
		Temperature: float64(cfg.Ollama.Temperature),
	}, logger)
	if err := extractor.CheckHealth(ctx); err != nil {
		// The daemon still starts; extraction retries per document.
		logger.Warn("ollama not reachable at startup", "host", cfg.Ollama.Host, "error", err)
	}

	apps := repository.NewApplicationRepository(entc, logger)
	docs := repository.NewDocumentRepository(entc, logger)
	results := repository.NewResultRepository(entc, logger)

	texts := pipeline.NewStagedTextProvider(extract.NewRouter(logger), cfg.Pipeline.WorkDir, logger)
	engine := recon.NewEngine(analyzer.NewRegistry(extractor, logger), classify.New(), texts, logger)
	processor := pipeline.NewProcessor(apps, docs, results, engine, logger)
	poller := pipeline.NewPoller(apps, processor, cfg.Pipeline.PollInterval, cfg.Pipeline.BatchLimit, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	go func() {
		logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	go func() {
		_ = poller.Run(ctx)
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
