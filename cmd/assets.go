package main

import (
	"fmt"
	"log/slog"

	"github.com/Dosada05/legacy-golf/storage"
	"github.com/spf13/cobra"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Manage site assets in Cloudflare R2",
}

var assetsSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Upload a local image directory to the R2 bucket",
	Long: `Uploads every file under --dir to the configured R2 bucket, keyed by its relative path
under --prefix. Set ASSET_BASE_URL to the bucket's public URL to serve the uploaded images.`,
	Args: cobra.NoArgs,
	RunE: runAssetsSync,
}

func init() {
	flags := assetsSyncCmd.Flags()
	flags.String("dir", "", "local directory to upload (default: STATIC_DIR)")
	flags.String("prefix", "images", "object key prefix in the bucket")
	flags.Int("concurrency", 4, "number of parallel uploads")
	assetsCmd.AddCommand(assetsSyncCmd)
}

func runAssetsSync(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	dir, _ := flags.GetString("dir")
	prefix, _ := flags.GetString("prefix")
	concurrency, _ := flags.GetInt("concurrency")
	if dir == "" {
		dir = cfg.StaticDir
	}
	if dir == "" {
		return fmt.Errorf("no directory to sync: pass --dir or set STATIC_DIR")
	}

	store, err := storage.NewCloudflareR2Store(cmd.Context(), storage.CloudflareR2Config{
		AccountID:       cfg.R2.AccountID,
		AccessKeyID:     cfg.R2.AccessKeyID,
		SecretAccessKey: cfg.R2.SecretAccessKey,
		BucketName:      cfg.R2.BucketName,
		PublicBaseURL:   cfg.R2.PublicBaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize Cloudflare R2 store: %w", err)
	}
	logger.Info("Cloudflare R2 store initialized", slog.String("bucket", cfg.R2.BucketName))

	results, err := storage.SyncDirectory(cmd.Context(), store, dir, prefix, concurrency)
	if err != nil {
		return err
	}

	for _, res := range results {
		logger.Info("asset uploaded", slog.String("key", res.Key), slog.String("url", res.Location))
	}
	logger.Info("asset sync complete", slog.String("dir", dir), slog.Int("files", len(results)))
	return nil
}
