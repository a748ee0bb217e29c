package handler

import (
	"net/http"
	"reziro/config"
	"reziro/di"
	"reziro/shared/logger"
	"reziro/shared/timezone"
	reziroHTTP "reziro/transport/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	server  *reziroHTTP.HTTP
	initErr error
)

// Handler is the serverless entrypoint. The container is built once per
// instance so open sessions survive between invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()

		cfg := config.Get()
		logger.SetLogLevel(cfg)

		if err := timezone.Configure(cfg.App.Timezone); err != nil {
			log.Warn().Err(err).Msg("falling back to UTC")
		}

		server, initErr = di.InitializeService()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("failed to initialize service")
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)

		return
	}

	server.ServeHTTP(w, r)
}
