package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/prasetyo-adi/kas-keluarga/gen/proto/kaskeluarga/v1"
	"github.com/prasetyo-adi/kas-keluarga/internal/async"
	"github.com/prasetyo-adi/kas-keluarga/internal/common"
	"github.com/prasetyo-adi/kas-keluarga/internal/export"
	"github.com/prasetyo-adi/kas-keluarga/internal/extract"
	"github.com/prasetyo-adi/kas-keluarga/internal/ingest"
	"github.com/prasetyo-adi/kas-keluarga/internal/ledger"
	"github.com/prasetyo-adi/kas-keluarga/internal/pipeline"
	"github.com/prasetyo-adi/kas-keluarga/internal/storage"
	"github.com/prasetyo-adi/kas-keluarga/internal/suggest"

	repo "github.com/prasetyo-adi/kas-keluarga/internal/repository"
	svc "github.com/prasetyo-adi/kas-keluarga/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
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
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewStore(cfg.Storage.RootDir, logger)
	if err != nil {
		logger.Error("failed to open document store", "root", cfg.Storage.RootDir, "error", err)
		os.Exit(1)
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)
	resultsRepo := repo.NewOCRResultRepository(entc, logger)
	suggsRepo := repo.NewSuggestionRepository(entc, logger)
	householdsRepo := repo.NewHouseholdRepository(entc, logger)
	accountsRepo := repo.NewAccountRepository(entc, logger)
	categoriesRepo := repo.NewCategoryRepository(entc, logger)
	transactionsRepo := repo.NewTransactionRepository(entc, logger)

	// OCR and text extraction backends
	recognizer := extract.NewMIMERecognizer(
		extract.NewPDFTextRecognizer(),
		extract.NewTesseractRecognizer(cfg.Pipeline.OCRLanguages),
	)
	engines := pipeline.Engines{
		Receipt:       extract.NewReceiptEngine(recognizer, logger),
		BankStatement: extract.NewBankStatementEngine(recognizer, logger),
	}

	history := repo.NewTransactionHistory(entc, logger)
	generator := suggest.NewGenerator(history, logger)

	orchestrator, err := pipeline.NewOrchestrator(
		docsRepo, resultsRepo, suggsRepo, householdsRepo,
		store, engines, generator, cfg.Pipeline, logger)
	if err != nil {
		logger.Error("failed to build pipeline", "error", err)
		os.Exit(1)
	}

	queue := async.NewPipelineQueue(orchestrator, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
	)

	ingestService := ingest.NewService(store, docsRepo, householdsRepo, queue, logger)
	writer := ledger.NewWriter(entc, logger)
	exportService := export.NewService(transactionsRepo, accountsRepo, categoriesRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	v1.RegisterDocumentServiceServer(grpcServer,
		svc.NewDocumentService(ingestService, docsRepo, suggsRepo, queue, logger))
	v1.RegisterApprovalServiceServer(grpcServer,
		svc.NewApprovalService(writer, transactionsRepo, logger))
	v1.RegisterExportServiceServer(grpcServer,
		svc.NewExportService(exportService, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("kaskeluargad listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
