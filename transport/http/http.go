package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"reziro/config"
	_ "reziro/docs"
	"reziro/infras/otel"
	"reziro/infras/scheduler"
	"reziro/internal/domains/hotel/service"
	"reziro/shared/constant"
	"reziro/transport/http/middleware"
	"reziro/transport/http/response"
	"reziro/transport/http/router"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const readHeaderTimeout = 10 * time.Second

type HTTP struct {
	Config    *config.Config
	Router    router.Router
	App       middleware.AppMiddleware
	Sessions  service.Sessions
	Scheduler *scheduler.Service
	Otel      otel.Otel

	state     atomic.Int32
	setupOnce sync.Once
	mux       *chi.Mux
	server    *http.Server
	drained   chan struct{}
}

func New(
	cfg *config.Config,
	r router.Router,
	app middleware.AppMiddleware,
	sessions service.Sessions,
	sched *scheduler.Service,
	otl otel.Otel,
) *HTTP {
	return &HTTP{
		Config:    cfg,
		Router:    r,
		App:       app,
		Sessions:  sessions,
		Scheduler: sched,
		Otel:      otl,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Serve runs the server until SIGTERM and then drains it: grace period,
// HTTP shutdown, session flush, scheduler stop, trace flush.
func (h *HTTP) Serve() {
	h.setup()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	h.drained = make(chan struct{})

	h.Scheduler.Start()
	go h.respondToSigterm()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-h.drained
}

// ServeHTTP lets the server run behind a serverless entry point.
func (h *HTTP) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	h.setup()
	h.mux.ServeHTTP(writer, request)
}

func (h *HTTP) setup() {
	h.setupOnce.Do(func() {
		h.mux = chi.NewRouter()

		h.mux.Use(chiMiddleware.RequestID)
		h.mux.Use(chiMiddleware.Recoverer)
		h.mux.Use(h.App.Tracing)

		if h.Config.App.CORS.Enable {
			h.mux.Use(cors.Handler(cors.Options{
				AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
				AllowedMethods:   h.Config.App.CORS.AllowedMethods,
				AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
				AllowCredentials: h.Config.App.CORS.AllowCredentials,
				MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
			}))
		}

		h.mux.Get("/health", h.health)
		mountDocs(h.mux)
		h.Router.SetupRoutes(h.mux)

		h.state.Store(int32(ServerStateReady))
	})
}

func mountDocs(mux chi.Router) {
	mux.Get("/swagger/*", httpSwagger.WrapHandler)
}

func (h *HTTP) health(writer http.ResponseWriter, _ *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(writer)

		return
	}

	response.WithMessage(writer, http.StatusOK, "OK")
}

func (h *HTTP) respondToSigterm() {
	defer close(h.drained)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	<-done

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")

	if h.Config.Server.Env != constant.ServerEnvDevelopment {
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

		h.state.Store(int32(ServerStateInGracePeriod))

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
	}

	h.state.Store(int32(ServerStateInCleanupPeriod))

	cleanup := time.Duration(max(shutdownConfig.CleanupPeriodSeconds, int64(h.Config.Sync.SaveTimeoutSeconds))) * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), cleanup)
	defer cancel()

	log.Info().Dur("timeout", cleanup).Msg("Entering cleanup period.")

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server")
	}

	if err := h.Sessions.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Some sessions failed to flush")
	}

	if err := h.Scheduler.Stop(); err != nil {
		log.Error().Err(err).Msg("Failed to stop scheduler")
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
