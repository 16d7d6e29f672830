// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/DanielA2212/ServerSideProject/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(costHandler *handler.CostHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Post("/costs", costHandler.AddCost)
	r.Get("/report", costHandler.Report)
	r.Get("/users/{id}", costHandler.UserSummary)
	r.Get("/about", costHandler.About)

	return r
}
