package router

import (
	"lemon/config"
	"lemon/internal/handlers/auth"
	"lemon/internal/handlers/content"
	"lemon/internal/handlers/health"
	"lemon/internal/handlers/reservation"
	"lemon/shared/i18n"
	"lemon/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Content     content.Handler
	Reservation reservation.Handler
	Health      health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	translator     i18n.Translator
	cfg            *config.Config
}

// SetupRoutes mounts everything under /v1/{locale} except the health probe.
// The locale middleware resolves the path segment before any handler runs.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1/{locale}", func(routerGroup chi.Router) {
		routerGroup.Use(middleware.Locale(r.translator, r.cfg))

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Content.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, translator i18n.Translator, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		translator:     translator,
		cfg:            cfg,
	}
}
