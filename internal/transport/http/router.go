package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/portfolio-api/internal/application/contact"
	"github.com/portfolio-api/internal/config"
	"github.com/portfolio-api/internal/transport/http/handler"
	appmiddleware "github.com/portfolio-api/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(appmiddleware.RequestLogger(nil))
	r.Use(appmiddleware.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	svcDeps := contact.ServiceDeps{
		Store:   deps.ContactRepo,
		Profile: deps.Profile,
	}
	// Typed nils must not reach the service's interface fields.
	if deps.Notifier != nil {
		svcDeps.Notifier = deps.Notifier
	}
	if deps.Alerter != nil {
		svcDeps.Alerter = deps.Alerter
	}
	contactSvc := contact.NewService(svcDeps)

	healthH := handler.NewHealthHandler(deps.DB)
	contactH := handler.NewContactHandler(contactSvc)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Check)
		r.Post("/contact", contactH.Submit)
	})

	return r
}
