package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/leadflow-backend/internal/transport/middleware"
)

// RouterDeps holds everything the HTTP surface is built from.
type RouterDeps struct {
	Logger     *slog.Logger
	Pipeline   *PipelineHandler
	Tasks      *TaskHandler
	Properties *PropertyHandler
	Health     *HealthHandler

	// Middleware runs before Auth, in order (CORS, rate limiting).
	Middleware []middleware.Middleware
	// Auth resolves the caller identity. Nil leaves every request anonymous.
	Auth middleware.Middleware
}

// NewRouter builds the chi router. Recovery and request id wrap everything;
// the request log runs after Auth so it carries the user id.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Chain(deps.Middleware...))
	if deps.Auth != nil {
		r.Use(deps.Auth)
	}
	r.Use(middleware.Logger(deps.Logger))

	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/health", deps.Health.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/pipeline", deps.Pipeline.Board)
		r.Post("/pipeline/reload", deps.Pipeline.Reload)

		r.Route("/leads", func(r chi.Router) {
			r.Post("/", deps.Pipeline.CreateLead)
			r.Get("/inactive", deps.Pipeline.Inactive)
			r.Get("/search", deps.Pipeline.Search)
			r.Route("/{id}", func(r chi.Router) {
				r.Patch("/stage", deps.Pipeline.MoveLead)
				r.Post("/outcome", deps.Pipeline.ResolveOutcome)
				r.Post("/notes", deps.Pipeline.AddNote)
				r.Get("/events", deps.Pipeline.ListEvents)
			})
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", deps.Tasks.Board)
			r.Post("/", deps.Tasks.Create)
			r.Post("/{id}/complete", deps.Tasks.Complete)
			r.Post("/{id}/reopen", deps.Tasks.Reopen)
		})

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", deps.Properties.List)
			r.Post("/", deps.Properties.Create)
			r.Get("/search", deps.Properties.Search)
			r.Get("/{id}", deps.Properties.Get)
			r.Patch("/{id}", deps.Properties.Update)
		})
	})

	return r
}
