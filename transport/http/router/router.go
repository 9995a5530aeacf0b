package router

import (
	"dost/internal/handlers/auth"
	"dost/internal/handlers/booking"
	"dost/internal/handlers/notification"
	"dost/internal/handlers/payment"
	"dost/internal/handlers/room"
	"dost/internal/handlers/settings"
	"dost/internal/handlers/stats"
	"dost/internal/handlers/user"
	"dost/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Room         room.Handler
	Booking      booking.Handler
	Payment      payment.Handler
	Stats        stats.Handler
	Notification notification.Handler
	Settings     settings.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Stats.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
