package main

import (
	"os"
	"reziro/config"
	"reziro/helper"
	"reziro/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, step-up, drop or version")
	}

	action := helper.Action(os.Args[1])

	if err := helper.Run(config.Get(), action); err != nil {
		log.Fatal().Err(err).Str("action", string(action)).Msg("Migration failed")
	}
}
