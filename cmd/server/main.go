package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/config"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/handler"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/repository"
	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err.Error())
		os.Exit(1)
	}

	// Initialise logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	// Money is rendered as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	// Connect to the database
	db, err := connectDB(cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("connected to database successfully")

	// Initialise repo
	customerRepo := repository.NewCustomerRepository(db)
	depositoTypeRepo := repository.NewDepositoTypeRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// Initialise services
	customerService := service.NewCustomerService(customerRepo, logger)
	depositoTypeService := service.NewDepositoTypeService(depositoTypeRepo, logger)
	accountService := service.NewAccountService(accountRepo, customerRepo, depositoTypeRepo, logger)
	transactionService := service.NewTransactionService(db, accountRepo, transactionRepo, logger)

	// Setup router
	router := handler.NewRouter(logger,
		handler.NewHealthHandler(db, logger),
		handler.NewCustomerHandler(customerService, logger),
		handler.NewDepositoTypeHandler(depositoTypeService, logger),
		handler.NewAccountHandler(accountService, logger),
		handler.NewTransactionHandler(transactionService, logger),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a go routine
	go func() {
		logger.Info("starting server on port " + cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", "error", err.Error())
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err.Error())
	}

	logger.Info("server exited gracefully")
}

// connectDB establishes a connection to the Postgres database
func connectDB(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
