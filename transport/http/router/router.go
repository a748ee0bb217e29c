package router

import (
	"reziro/internal/handlers/hotel"
	"reziro/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Hotel hotel.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	auth           middleware.Auth
	app            middleware.AppMiddleware
}

// SetupRoutes mounts the API under /v1. The limiter runs after auth so it can
// count per account.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.auth.Auth)
		routerGroup.Use(r.app.RateLimit())

		r.DomainHandlers.Hotel.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth, app middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		auth:           auth,
		app:            app,
	}
}
