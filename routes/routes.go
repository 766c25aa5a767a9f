package routes

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/Dosada05/legacy-golf/handlers"
	"github.com/Dosada05/legacy-golf/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	Logger             *slog.Logger
	CORSAllowedOrigins []string
	// StaticFS - стили и скрипты, отдаются по /static/*.
	StaticFS fs.FS
	// ImagesDir - локальный каталог изображений для /images/*. Пусто - маршрут не регистрируется.
	ImagesDir string
}

func SetupRoutes(
	router chi.Router,
	pageHandler *handlers.PageHandler,
	tournamentHandler *handlers.TournamentHandler,
	opts Options,
) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Metrics)
	router.Use(chiMiddleware.Recoverer)

	router.NotFound(pageHandler.NotFound)

	// Публичные страницы
	router.Get("/", pageHandler.Home)
	router.Get("/tournaments", pageHandler.ListTournaments)
	router.Get("/tournaments/{id}", pageHandler.TournamentDetail)

	// JSON API каталога
	router.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.NotFound(tournamentHandler.NotFound)
		r.MethodNotAllowed(tournamentHandler.MethodNotAllowed)

		r.Get("/tournaments", tournamentHandler.ListHandler)
		r.Get("/tournaments/{id}", tournamentHandler.GetByIDHandler)
	})

	router.Get("/healthz", handlers.Health)
	router.Handle("/metrics", promhttp.Handler())

	if opts.StaticFS != nil {
		router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(opts.StaticFS))))
	}
	if opts.ImagesDir != "" {
		router.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(opts.ImagesDir))))
	}
}
