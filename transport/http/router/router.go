package router

import (
	"parkside/internal/handlers/account"
	"parkside/internal/handlers/booking"
	"parkside/internal/handlers/catalog"
	"parkside/internal/handlers/contact"
	"parkside/internal/handlers/hours"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Catalog catalog.Handler
	Hours   hours.Handler
	Booking booking.Handler
	Contact contact.Handler
	Account account.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Hours.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.Account.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
