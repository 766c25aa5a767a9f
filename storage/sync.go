package storage

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

const defaultSyncConcurrency = 4

// SyncDirectory загружает все файлы из dir в хранилище под префиксом prefix.
// Возвращает результаты в порядке обхода каталога. Первая ошибка останавливает остальные загрузки.
func SyncDirectory(ctx context.Context, store AssetStore, dir, prefix string, concurrency int) ([]UploadResult, error) {
	if concurrency <= 0 {
		concurrency = defaultSyncConcurrency
	}

	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && !strings.HasPrefix(d.Name(), ".") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk asset directory %s: %w", dir, err)
	}

	results := make([]UploadResult, len(files))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, p := range files {
		g.Go(func() error {
			rel, err := filepath.Rel(dir, p)
			if err != nil {
				return fmt.Errorf("failed to resolve asset path %s: %w", p, err)
			}
			key := path.Join(strings.Trim(prefix, "/"), filepath.ToSlash(rel))

			f, err := os.Open(p)
			if err != nil {
				return fmt.Errorf("failed to open asset %s: %w", p, err)
			}
			defer f.Close()

			res, err := store.Upload(gCtx, key, contentTypeFor(p), f)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func contentTypeFor(p string) string {
	if ct := mime.TypeByExtension(filepath.Ext(p)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
