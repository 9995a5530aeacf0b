//go:build wireinject
// +build wireinject

package di

import (
	"dost/config"
	"dost/infras/jwt"
	"dost/infras/otel"
	"dost/infras/s3"
	"dost/internal/events"
	"dost/internal/session"
	"dost/permissions"
	"dost/transport/http"
	"dost/transport/http/middleware"
	"dost/transport/http/router"

	authService "dost/internal/domains/auth/service"
	bookingRepository "dost/internal/domains/booking/repository"
	bookingService "dost/internal/domains/booking/service"
	paymentRepository "dost/internal/domains/payment/repository"
	paymentService "dost/internal/domains/payment/service"
	roomRepository "dost/internal/domains/room/repository"
	roomService "dost/internal/domains/room/service"
	settingsRepository "dost/internal/domains/settings/repository"
	settingsService "dost/internal/domains/settings/service"
	statsService "dost/internal/domains/stats/service"
	userRepository "dost/internal/domains/user/repository"
	userService "dost/internal/domains/user/service"

	authHandler "dost/internal/handlers/auth"
	bookingHandler "dost/internal/handlers/booking"
	notificationHandler "dost/internal/handlers/notification"
	paymentHandler "dost/internal/handlers/payment"
	roomHandler "dost/internal/handlers/room"
	settingsHandler "dost/internal/handlers/settings"
	statsHandler "dost/internal/handlers/stats"
	userHandler "dost/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	ProvidePostgres,
	ProvideCache,
	ProvideKafka,
	otel.New,
	jwt.New,
	s3.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var stores = wire.NewSet(
	ProvideNotifyStore,
	session.NewStore,
	events.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var statsDomain = wire.NewSet(
	statsService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	roomDomain,
	bookingDomain,
	paymentDomain,
	statsDomain,
	settingsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	statsHandler.New,
	notificationHandler.New,
	settingsHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		stores,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
