package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	dialogHandler "github.com/zhalobnik/backend/internal/handler/dialog"
	suggestHandler "github.com/zhalobnik/backend/internal/handler/suggest"
	middlewarePkg "github.com/zhalobnik/backend/internal/middleware"
	dialogService "github.com/zhalobnik/backend/internal/service/dialog"
	"github.com/zhalobnik/backend/internal/service/flow"
	suggestService "github.com/zhalobnik/backend/internal/service/suggest"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(sessions *dialogService.Service, machine *flow.Machine, suggestClient *suggestService.Client) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	conversation := dialogHandler.New(sessions, machine)
	suggestions := suggestHandler.New(suggestClient)

	r.Route("/api", func(api chi.Router) {
		conversation.RegisterRoutes(api)
		suggestions.RegisterRoutes(api)
	})

	return r
}
