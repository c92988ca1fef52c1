package router

import (
	"eikaiwa/internal/handlers/auth"
	"eikaiwa/internal/handlers/availability"
	"eikaiwa/internal/handlers/booking"
	"eikaiwa/internal/handlers/content"
	"eikaiwa/internal/handlers/test"
	"eikaiwa/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Availability availability.Handler
	Content      content.Handler
	Booking      booking.Handler
	Test         test.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Content.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Test.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
