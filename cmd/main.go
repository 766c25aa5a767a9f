package main

import (
	"log/slog"
	"os"

	"github.com/Dosada05/legacy-golf/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "legacygolf",
	Short:         "Legacy Golf Association website",
	Long:          "Serves the Legacy Golf Association marketing site and its tournament catalog API.",
	SilenceUsage:  true,
	SilenceErrors: true,
	// Без подкоманды запускается сервер
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, catalogCmd, assetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// setup загружает конфигурацию и настраивает JSON-логгер с уровнем из LOG_LEVEL.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	return cfg, logger, nil
}
