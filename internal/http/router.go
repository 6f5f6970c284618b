package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/SK-Digital/Note-App/internal/export"
	"github.com/SK-Digital/Note-App/internal/handlers"
	"github.com/SK-Digital/Note-App/internal/repository"
	"github.com/SK-Digital/Note-App/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Repo     *repository.Repository
	Store    storage.Store
	Importer *export.MarkdownImporter
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	notes := handlers.NewNotesHandler(deps.Repo)
	folders := handlers.NewFoldersHandler(deps.Repo)
	exporter := handlers.NewExportHandler(deps.Repo, deps.Importer)
	health := handlers.NewHealthHandler(deps.Store)

	r.Route("/api", func(r chi.Router) {
		r.Route("/notes", func(r chi.Router) {
			r.Get("/", notes.List)
			r.Post("/", notes.Create)
			r.Post("/import", exporter.Import)
			r.Put("/{id}", notes.Save)
			r.Delete("/{id}", notes.Delete)
			r.Post("/{id}/move", notes.Move)
			r.Get("/{id}/export", exporter.Export)
		})
		r.Route("/folders", func(r chi.Router) {
			r.Get("/", folders.List)
			r.Post("/", folders.Create)
			r.Put("/{id}", folders.Rename)
			r.Delete("/{id}", folders.Delete)
		})
		r.Method(http.MethodGet, "/health", health)
	})

	return r
}
