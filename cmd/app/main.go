package main

import (
	"reziro/config"
	"reziro/di"
	"reziro/helper"
	"reziro/shared/logger"
	"reziro/shared/timezone"

	"github.com/rs/zerolog/log"
)

//go:generate swag init -g cmd/app/main.go -o docs --parseDependency

// @title Reziro API
// @version 1.0
// @description Hotel back-office CRM: rooms, bookings, costs, partners and monthly finance.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	logger.InitLogger()

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if err := timezone.Configure(cfg.App.Timezone); err != nil {
		log.Warn().Err(err).Msg("falling back to UTC")
	}

	if cfg.DB.Postgres.Enabled && cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize service")
	}

	http.Serve()
}
