package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/plaincents/plaincents/internal/bank"
	"github.com/plaincents/plaincents/internal/category"
	"github.com/plaincents/plaincents/internal/config"
	pcHttp "github.com/plaincents/plaincents/internal/http"
	categoryHandler "github.com/plaincents/plaincents/internal/http/category"
	ingestHandler "github.com/plaincents/plaincents/internal/http/ingestcsv"
	"github.com/plaincents/plaincents/internal/ingest"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	banks, err := bank.Load(cfg.Banks.File)
	if err != nil {
		slog.Error("failed to load bank registry", "error", err)
		os.Exit(1)
	}

	ingestService := ingest.NewService(banks, cfg.Data.RawDir)

	var (
		ingestH   = ingestHandler.NewHandler(ingestService, banks, cfg.Server.MaxUploadBytes)
		categoryH = categoryHandler.NewHandler(category.DefaultPalette())
	)

	router := pcHttp.New(pcHttp.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Timeout:        cfg.Server.Timeout,
	}, ingestH, categoryH)

	slog.Info("starting server", "app", cfg.App.Name, "addr", cfg.Addr(), "banks", banks.Names())

	if err := newServer(cfg, router).ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// newServer bounds reading the upload and writing the response by the
// configured timeout, so a stalled ingest cannot hold a connection open.
func newServer(cfg *config.Config, handler http.Handler) *http.Server {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if cfg.Server.Timeout > 0 {
		srv.ReadTimeout = cfg.Server.Timeout
		srv.WriteTimeout = cfg.Server.Timeout
	}

	return srv
}
