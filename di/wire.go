//go:build wireinject
// +build wireinject

package di

import (
	"reziro/config"
	"reziro/infras/jwt"
	"reziro/infras/otel"
	"reziro/infras/redis"
	hotelService "reziro/internal/domains/hotel/service"
	hotelHandler "reziro/internal/handlers/hotel"
	"reziro/transport/http"
	"reziro/transport/http/middleware"
	"reziro/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.NewCache,
	jwt.New,
	ProvideTableStore,
	ProvideStorage,
	ProvideReportPublisher,
	ProvideScheduler,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var hotelDomain = wire.NewSet(
	hotelService.DefaultEnv,
	hotelService.NewNotifier,
	ProvideAdapterFactory,
	hotelService.NewSessions,
	hotelService.NewExporter,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	hotelHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		hotelDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
