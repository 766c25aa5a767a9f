package storage

import (
	"net/url"
	"strings"
)

type localURLResolver struct{}

// NewLocalURLResolver возвращает ссылки как есть: изображения отдаются самим сайтом.
func NewLocalURLResolver() URLResolver {
	return localURLResolver{}
}

func (localURLResolver) ResolveURL(ref string) string {
	return ref
}

type publicURLResolver struct {
	baseURL string
}

// NewPublicURLResolver переписывает относительные ссылки на ассеты на публичный базовый URL (CDN, бакет R2).
func NewPublicURLResolver(baseURL string) URLResolver {
	return publicURLResolver{baseURL: baseURL}
}

func (r publicURLResolver) ResolveURL(ref string) string {
	if ref == "" || isAbsoluteURL(ref) {
		return ref
	}
	if u := JoinPublicURL(r.baseURL, strings.TrimPrefix(ref, "/")); u != "" {
		return u
	}
	return ref
}

func isAbsoluteURL(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && u.IsAbs()
}

// JoinPublicURL собирает публичный URL объекта по базовому URL и ключу.
// Возвращает пустую строку, если URL собрать нельзя.
func JoinPublicURL(base, key string) string {
	if base == "" || key == "" {
		return ""
	}

	baseURL, err := url.Parse(base)
	if err != nil || !baseURL.IsAbs() {
		return ""
	}
	// ResolveReference отбрасывает последний сегмент пути без завершающего слеша
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	pathURL, err := url.Parse(strings.TrimPrefix(key, "/"))
	if err != nil {
		return ""
	}

	return baseURL.ResolveReference(pathURL).String()
}
