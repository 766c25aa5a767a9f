package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// AssetStore - внешнее хранилище статических ассетов сайта (изображения турниров и т.п.).
type AssetStore interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

// URLResolver превращает ссылку на ассет из каталога в URL для страницы.
// Содержимое ассета никогда не читается и не проверяется.
type URLResolver interface {
	ResolveURL(ref string) string
}
