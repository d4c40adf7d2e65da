// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"

	"github.com/hueforge/hueforge/internal/api"
	"github.com/hueforge/hueforge/internal/api/apiutil"
	"github.com/hueforge/hueforge/internal/api/palette"
	"github.com/hueforge/hueforge/internal/config"
)

func newServer(cfg *config.Config) *http.Server {
	palette.InitHandlers(cfg.CustomColors())

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      newRouter(cfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func newRouter(cfg *config.Config) *chi.Mux {
	router := chi.NewRouter()

	// Middleware chain; the span opened by WithTracing wraps everything
	// downstream, success or failure.
	router.Use(
		api.WithRequestID,
		api.WithTracing(otel.Tracer(cfg.App.Name)),
		api.WithLogging,
		api.WithRecovery,
	)

	// Liveness probe
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_ = apiutil.WriteText(w, http.StatusOK, "Hello, world!")
	})

	router.Get("/getPalette", apiutil.Handle(palette.HandleGetPalette))

	return router
}
