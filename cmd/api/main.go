package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/bolsofacil/api/internal/bill"
	billStore "github.com/bolsofacil/api/internal/bill/store"
	"github.com/bolsofacil/api/internal/config"
	"github.com/bolsofacil/api/internal/database"
	"github.com/bolsofacil/api/internal/feed"
	bolsoHttp "github.com/bolsofacil/api/internal/http"
	billHandler "github.com/bolsofacil/api/internal/http/bill"
	feedHandler "github.com/bolsofacil/api/internal/http/feed"
	importHandler "github.com/bolsofacil/api/internal/http/importcsv"
	summaryHandler "github.com/bolsofacil/api/internal/http/summary"
	txHandler "github.com/bolsofacil/api/internal/http/transaction"
	"github.com/bolsofacil/api/internal/importer"
	"github.com/bolsofacil/api/internal/summary"
	summaryStore "github.com/bolsofacil/api/internal/summary/store"
	"github.com/bolsofacil/api/internal/transaction"
	txStore "github.com/bolsofacil/api/internal/transaction/store"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.ConnectionString()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		bills        = billStore.New(db)
		transactions = txStore.New(db)
		summaries    = summaryStore.New(db)
	)

	var (
		summaryService     = summary.NewService(summaries, bills)
		transactionService = transaction.NewService(transactions, summaryService)
		billService        = bill.NewService(bills, summaryService, transactionService)
		feedService        = feed.NewService(transactionService, billService)
		importService      = importer.NewService()
	)

	var (
		billH    = billHandler.NewHandler(billService)
		txH      = txHandler.NewHandler(transactionService)
		feedH    = feedHandler.NewHandler(feedService)
		summaryH = summaryHandler.NewHandler(summaryService)
		importH  = importHandler.NewHandler(importService, transactionService)
	)

	router := bolsoHttp.New(bolsoHttp.Config{
		JWTSecret:      cfg.Auth.JWTSecret,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}, billH, txH, feedH, summaryH, importH)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	slog.Info("starting server", "addr", addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
