/*
Package handler provides the HTTP handlers of the read-only status API.

This file defines the Router, applying CORS, request ids, request logging, panic recovery
and per-IP rate limiting before delegating to the status handlers.
*/
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"roombot/internal/pkg/limiter"
	"roombot/internal/pkg/logx"
	"roombot/internal/pkg/resp"
)

const (
	APIRate  = 5
	APIBurst = 20
)

// Router sets up the status API routing table. The rate limiter's cleanup loop stops with ctx.
func Router(ctx context.Context, deps *AppDeps) http.Handler {
	apiLimiter := limiter.NewIPRateLimiter(ctx, rate.Limit(APIRate), APIBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins: corsAllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept"},
		MaxAge:         300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]string{
			"status":  "ok",
			"service": "roombot",
		})
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(apiLimiter.Middleware)

		api.Get("/session", HandleGetSession(deps))
		api.Get("/roster", HandleListRoster(deps))
		api.Get("/roster/{id}", HandleGetRosterUser(deps))
	})

	return r
}
