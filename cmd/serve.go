package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/legacy-golf/handlers"
	"github.com/Dosada05/legacy-golf/middleware"
	"github.com/Dosada05/legacy-golf/repositories"
	api "github.com/Dosada05/legacy-golf/routes"
	"github.com/Dosada05/legacy-golf/services"
	"github.com/Dosada05/legacy-golf/storage"
	"github.com/Dosada05/legacy-golf/web"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Каталог читается один раз: при ошибке сервер не стартует
	catalog, err := repositories.LoadCatalogFile(cfg.CatalogPath)
	if err != nil {
		return err
	}
	tournamentRepo, err := repositories.NewCatalogTournamentRepository(catalog)
	if err != nil {
		return err
	}
	middleware.SetCatalogSize(len(catalog.Tournaments))
	logger.Info("catalog loaded",
		slog.String("path", catalogSource(cfg.CatalogPath)),
		slog.Int("tournaments", len(catalog.Tournaments)),
		slog.Int("testimonials", len(catalog.Testimonials)),
	)

	assets := storage.NewLocalURLResolver()
	if cfg.AssetBaseURL != "" {
		assets = storage.NewPublicURLResolver(cfg.AssetBaseURL)
		logger.Info("serving images from public asset URL", slog.String("base_url", cfg.AssetBaseURL))
	}

	tournamentService := services.NewTournamentService(tournamentRepo, assets, logger)

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}

	pageHandler := handlers.NewPageHandler(tournamentService, renderer)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)

	router := chi.NewRouter()
	api.SetupRoutes(router, pageHandler, tournamentHandler, api.Options{
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		StaticFS:           web.StaticFS(),
		ImagesDir:          cfg.StaticDir,
	})
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", cfg.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server shutdown complete")
	}

	logger.Info("application exited")
	return nil
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
