package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/finhogar/loan-engine/internal/application/usecase"
	"github.com/finhogar/loan-engine/internal/infrastructure/config"
	"github.com/finhogar/loan-engine/internal/infrastructure/messaging"
	pgRepo "github.com/finhogar/loan-engine/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/finhogar/loan-engine/internal/presentation/grpc"
	"github.com/finhogar/loan-engine/internal/presentation/rest"
	"github.com/finhogar/loan-engine/pkg/postgres"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.Load()
	cfg.Validate()
	logger.Info("starting loan engine",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	// --- Database -----------------------------------------------------------
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pgRepo.EnsureSchema(ctx, pool); err != nil {
		logger.Error("failed to ensure database schema", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// --- Infrastructure adapters -------------------------------------------
	loanRepo := pgRepo.NewLoanAccountRepo(pool)
	publisher := messaging.NewKafkaEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
	defer publisher.Close() //nolint:errcheck

	// --- Use cases ----------------------------------------------------------
	setupUC := usecase.NewSetupLoanUseCase(loanRepo, publisher)
	importUC := usecase.NewImportScheduleUseCase(loanRepo, publisher)
	getLoanUC := usecase.NewGetLoanUseCase(loanRepo)
	listLoansUC := usecase.NewListLoansUseCase(loanRepo)
	recordUC := usecase.NewRecordPaymentUseCase(loanRepo, publisher)
	reverseUC := usecase.NewReversePaymentUseCase(loanRepo, publisher)
	simulateUC := usecase.NewSimulatePrepaymentUseCase(loanRepo)
	applyUC := usecase.NewApplyPrepaymentUseCase(loanRepo, publisher)
	clearUC := usecase.NewClearLoanUseCase(loanRepo, publisher)

	// --- gRPC server --------------------------------------------------------
	handler := grpcPresentation.NewLoanEngineHandler(
		setupUC, importUC, getLoanUC, listLoansUC,
		recordUC, reverseUC, simulateUC, applyUC, clearUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP health server -------------------------------------------------
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP health server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("loan engine stopped")
}
