//go:build wireinject
// +build wireinject

package di

import (
	"lemon/config"
	"lemon/infras/jwt"
	"lemon/infras/kafka"
	"lemon/infras/otel"
	"lemon/infras/postgres"
	"lemon/infras/redis"
	"lemon/shared/cache"
	"lemon/shared/i18n"
	"lemon/transport/http"
	"lemon/transport/http/middleware"
	"lemon/transport/http/router"

	authService "lemon/internal/domains/auth/service"
	contentRepository "lemon/internal/domains/content/repository"
	contentService "lemon/internal/domains/content/service"
	reservationRepository "lemon/internal/domains/reservation/repository"
	reservationService "lemon/internal/domains/reservation/service"
	tableRepository "lemon/internal/domains/table/repository"
	tableService "lemon/internal/domains/table/service"
	userRepository "lemon/internal/domains/user/repository"

	authHandler "lemon/internal/handlers/auth"
	contentHandler "lemon/internal/handlers/content"
	healthHandler "lemon/internal/handlers/health"
	reservationHandler "lemon/internal/handlers/reservation"

	"github.com/google/wire"
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
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	i18n.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
	tableRepository.New,
	tableService.New,
)

var contentDomain = wire.NewSet(
	contentRepository.New,
	contentService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	reservationDomain,
	contentDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	reservationHandler.New,
	contentHandler.New,
	authHandler.New,
	healthHandler.New,
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
