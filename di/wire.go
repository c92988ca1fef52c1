//go:build wireinject
// +build wireinject

package di

import (
	"eikaiwa/config"
	"eikaiwa/infras/cms"
	"eikaiwa/infras/jwt"
	"eikaiwa/infras/kafka"
	"eikaiwa/infras/mailer"
	"eikaiwa/infras/otel"
	"eikaiwa/infras/payment"
	"eikaiwa/infras/postgres"
	"eikaiwa/infras/redis"
	"eikaiwa/internal/events"
	"eikaiwa/permissions"
	"eikaiwa/shared/cache"
	"eikaiwa/transport/http"
	"eikaiwa/transport/http/middleware"
	"eikaiwa/transport/http/router"

	"github.com/google/wire"

	availabilityService "eikaiwa/internal/domains/availability/service"
	authService "eikaiwa/internal/domains/auth/service"
	bookingRepository "eikaiwa/internal/domains/booking/repository"
	bookingService "eikaiwa/internal/domains/booking/service"
	contentService "eikaiwa/internal/domains/content/service"
	userRepository "eikaiwa/internal/domains/user/repository"
	userService "eikaiwa/internal/domains/user/service"

	authHandler "eikaiwa/internal/handlers/auth"
	availabilityHandler "eikaiwa/internal/handlers/availability"
	bookingHandler "eikaiwa/internal/handlers/booking"
	contentHandler "eikaiwa/internal/handlers/content"
	testHandler "eikaiwa/internal/handlers/test"
	userHandler "eikaiwa/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	cms.New,
	payment.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var availabilityDomain = wire.NewSet(
	bookingRepository.New,
	availabilityService.New,
)

var contentDomain = wire.NewSet(
	contentService.New,
)

var bookingDomain = wire.NewSet(
	bookingService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var domains = wire.NewSet(
	availabilityDomain,
	contentDomain,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	availabilityHandler.New,
	contentHandler.New,
	bookingHandler.New,
	testHandler.New,
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

func InitializeNotifier() *events.Notifier {
	wire.Build(
		configurations,
		otel.New,
		kafka.New,
		mailer.New,
		events.NewNotifier,
	)

	return &events.Notifier{}
}
