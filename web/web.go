// Package web содержит HTML-шаблоны и статические файлы сайта, встроенные в бинарник.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed all:static
var staticFS embed.FS

// Страницы сайта. Каждая рендерится внутри layout.html.
const (
	PageHome        = "home.html"
	PageTournaments = "tournaments.html"
	PageTournament  = "tournament.html"
	PageNotFound    = "not_found.html"
)

var pages = []string{PageHome, PageTournaments, PageTournament, PageNotFound}

// PageData - общие данные для layout и конкретной страницы.
type PageData struct {
	Title       string
	Description string
	// ActiveNav подсвечивает пункт меню ("home", "tournaments").
	ActiveNav string
	Data      any
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"dollars": func(amount int) string { return "$" + humanize.Comma(int64(amount)) },
		"lower":   strings.ToLower,
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

// Render выполняет шаблон целиком в буфер, чтобы при ошибке не отдать клиенту половину страницы.
func (r *Renderer) Render(w io.Writer, page string, data PageData) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

// StaticFS - файловая система со стилями и скриптами (корень - каталог static).
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // каталог встроен при компиляции
	}
	return sub
}
