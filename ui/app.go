// Package ui serves the histogram page and JSON API over HTTP.
package ui

import (
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"solvestats/adapters/cstimer"
	"solvestats/app"
	"solvestats/internal/config"
)

// App represents the web application
type App struct {
	router    *chi.Mux
	service   *app.AnalysisService
	cfg       *config.Config
	templates *template.Template
}

// NewApp creates a new web application around the analysis service.
func NewApp(service *app.AnalysisService, cfg *config.Config) (*App, error) {
	templates, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, err
	}

	a := &App{
		router:    chi.NewRouter(),
		service:   service,
		cfg:       cfg,
		templates: templates,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the route table
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/api/summary", a.handleSummary)
	a.router.Get("/api/histogram", a.handleHistogram)
}

// Run starts the HTTP server. Blocks until the server stops.
func (a *App) Run(port string) error {
	log.Printf("[UI] Serving solve statistics on :%s (source: %s)", port, a.cfg.Data.SolvesFile)
	return http.ListenAndServe(":"+port, a.router)
}

// ServeHTTP exposes the router, making the app mountable and testable.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// analyze recomputes the session from the configured export. Every request
// reads the file fresh so an updated export shows up without a restart.
func (a *App) analyze() (*app.Analysis, error) {
	opts := cstimer.Options{
		Delimiter:     rune(a.cfg.Data.Delimiter[0]),
		SkipMalformed: a.cfg.Data.SkipMalformed,
	}
	return a.service.AnalyzeFile(a.cfg.Data.SolvesFile, opts)
}
