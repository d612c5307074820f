package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"canoesite/internal/http/handlers"
	"canoesite/internal/infra"
	"canoesite/internal/middleware"
	"canoesite/web"
)

// NewRouter wires the donation API and the embedded promotional site.
func NewRouter(app *handlers.App, cfg *infra.Config, log infra.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.RequestID, middleware.Logger(log))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	}

	// Must be set before the /api subrouter so it propagates into it.
	r.MethodNotAllowed(app.MethodNotAllowed)

	r.Get("/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
		r.With(middleware.Idempotency(cfg.IdempotencyWindow)).Post("/submit-donation", app.SubmitDonation)
		r.Post("/initialize-sheet", app.InitializeSheet)
	})

	pages := handlers.NewPages(web.PagesFS())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.StaticFS()))))
	r.Get("/", pages.Serve("index.html"))
	r.Get("/about", pages.Serve("about.html"))
	r.Get("/team", pages.Serve("team.html"))
	r.Get("/competitions", pages.Serve("competitions.html"))
	r.Get("/contact", pages.Serve("contact.html"))
	r.Get("/donate", pages.Serve("donate.html"))
	r.NotFound(pages.NotFound)

	return r
}
