package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	pgRepo "promo-studio/internal/infra/adapter/persistence/postgres"
	"promo-studio/internal/infra/db"
	"promo-studio/internal/infra/downloader"
	"promo-studio/internal/infra/scraper"
	"promo-studio/internal/observability/logging"
	"promo-studio/internal/pkg/config"

	exportUC "promo-studio/internal/usecase/export"
	prodUC "promo-studio/internal/usecase/product"
	settingsUC "promo-studio/internal/usecase/settings"
	videoUC "promo-studio/internal/usecase/video"

	hhttp "promo-studio/internal/handler/http"
	hproduct "promo-studio/internal/handler/http/product"
	"promo-studio/internal/handler/http/requestid"
	hsettings "promo-studio/internal/handler/http/settings"
	hvideo "promo-studio/internal/handler/http/video"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, database, version)

	runServer(logger, handler, version)
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires the repositories, use cases and handlers into a single
// HTTP handler with the middleware chain applied.
func setupServer(logger *slog.Logger, database *sql.DB, version string) http.Handler {
	productRepo := pgRepo.NewProductRepo(database)
	settingsRepo := pgRepo.NewSettingsRepo(database)
	videoRepo := pgRepo.NewVideoRepo(database)

	extractorClient := &http.Client{
		Timeout: config.LoadEnvDuration("EXTRACTOR_TIMEOUT", 20*time.Second),
	}
	extractor := scraper.NewShopeeExtractor(extractorClient)

	downloaderClient := &http.Client{
		Timeout: config.LoadEnvDuration("IMAGE_DOWNLOAD_TIMEOUT", 30*time.Second),
	}
	images := downloader.New(downloaderClient, downloader.ConfigFromEnv())

	productSvc := &prodUC.Service{
		Repo:      productRepo,
		Settings:  settingsRepo,
		Extractor: extractor,
	}
	settingsSvc := &settingsUC.Service{Repo: settingsRepo}
	videoSvc := &videoUC.Service{Repo: videoRepo}
	exportSvc := &exportUC.Service{
		Products: productRepo,
		Settings: settingsRepo,
		Images:   images,
	}

	// imports trigger an outbound page fetch each, keep them slow
	importLimiter := hhttp.NewRateLimiter(
		config.LoadEnvInt("IMPORT_RATE_LIMIT", 10, config.ValidatePositiveInt),
		time.Minute,
	)

	mux := http.NewServeMux()
	mux.Handle("GET /healthz", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /readyz", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /livez", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /stats", hhttp.StatsHandler{Products: productSvc})

	hproduct.Register(mux, productSvc, exportSvc, importLimiter.Limit)
	hsettings.Register(mux, settingsSvc)
	hvideo.Register(mux, videoSvc)

	return applyMiddleware(logger, mux)
}

// applyMiddleware builds the middleware chain, innermost first: metrics,
// body limit, logging, recovery, request ID.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler
	chain = hhttp.Metrics(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := config.LoadEnvString("HTTP_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
