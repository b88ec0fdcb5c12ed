package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"boughtleaf/internal/config"
	"boughtleaf/internal/handler"
	"boughtleaf/internal/logger"
	"boughtleaf/internal/repository/postgres"
	"boughtleaf/internal/router"
	"boughtleaf/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log))
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	supplierRepo := postgres.NewSupplierRepo(db)
	collectionRepo := postgres.NewCollectionRepo(db)
	leafCountRepo := postgres.NewLeafCountRepo(db)

	// Initialize services
	supplierSvc := service.NewSupplierService(supplierRepo, collectionRepo)
	deductionSvc := service.NewDeductionService(collectionRepo)
	collectionSvc := service.NewCollectionService(collectionRepo)
	leafCountSvc := service.NewLeafCountService(leafCountRepo, collectionRepo)

	// Initialize handlers
	supplierH := handler.NewSupplierHandler(supplierSvc)
	deductionH := handler.NewDeductionHandler(deductionSvc)
	collectionH := handler.NewCollectionHandler(collectionSvc)
	leafCountH := handler.NewLeafCountHandler(leafCountSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, baseLogger, supplierH, deductionH, collectionH, leafCountH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		baseLogger.Info("server starting", zap.String("addr", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		baseLogger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}
