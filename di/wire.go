//go:build wireinject
// +build wireinject

package di

import (
	"parkside/config"
	"parkside/infras/commerce"
	"parkside/infras/jwt"
	"parkside/infras/kafka"
	"parkside/infras/otel"
	"parkside/infras/redis"
	"parkside/shared/cache"
	"parkside/transport/http"
	"parkside/transport/http/middleware"
	"parkside/transport/http/router"

	accountService "parkside/internal/domains/account/service"
	bookingService "parkside/internal/domains/booking/service"
	catalogService "parkside/internal/domains/catalog/service"
	contactService "parkside/internal/domains/contact/service"
	hoursService "parkside/internal/domains/hours/service"

	accountHandler "parkside/internal/handlers/account"
	bookingHandler "parkside/internal/handlers/booking"
	catalogHandler "parkside/internal/handlers/catalog"
	contactHandler "parkside/internal/handlers/contact"
	hoursHandler "parkside/internal/handlers/hours"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	commerce.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var domains = wire.NewSet(
	catalogService.New,
	hoursService.New,
	bookingService.New,
	contactService.New,
	accountService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	hoursHandler.New,
	bookingHandler.New,
	contactHandler.New,
	accountHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
