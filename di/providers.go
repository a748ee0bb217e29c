package di

import (
	"errors"
	"reziro/config"
	"reziro/infras/kafka"
	"reziro/infras/otel"
	"reziro/infras/postgres"
	"reziro/infras/s3"
	"reziro/infras/scheduler"
	"reziro/internal/domains/hotel/repository"
	"reziro/internal/domains/hotel/service"
	"reziro/shared/cache"
	gRepo "reziro/shared/repository"
	"reziro/shared/repository/memory"

	"github.com/rs/zerolog/log"
)

var ErrDatabaseUnavailable = errors.New("database unavailable")

// ProvideTableStore falls back to an in-process store when Postgres is
// disabled, so state survives only as long as the process.
func ProvideTableStore(cfg *config.Config, otl otel.Otel) (gRepo.TableStore, error) {
	if !cfg.DB.Postgres.Enabled {
		log.Warn().Msg("Postgres disabled, using in-memory table store")

		return memory.New(), nil
	}

	conn := postgres.New(cfg)
	if conn.Read == nil || conn.Write == nil {
		return nil, ErrDatabaseUnavailable
	}

	return gRepo.NewRepository(conn, otl), nil
}

func ProvideStorage(cfg *config.Config, otl otel.Otel) s3.S3 {
	if !cfg.External.S3.Enabled {
		return nil
	}

	return s3.New(cfg, otl)
}

// ProvideReportPublisher returns an untyped nil when Kafka is off.
func ProvideReportPublisher(cfg *config.Config) service.ReportPublisher {
	if !cfg.Kafka.Enabled {
		return nil
	}

	publisher := kafka.NewSyncReportPublisher(cfg, kafka.New(cfg))
	if publisher == nil {
		return nil
	}

	return publisher
}

func ProvideAdapterFactory(
	cfg *config.Config,
	store gRepo.TableStore,
	redisCache cache.RedisCache,
	otl otel.Otel,
) service.AdapterFactory {
	return func(userID string, onReport func(repository.SaveReport)) repository.Adapter {
		return repository.New(cfg, store, redisCache, otl, userID, onReport)
	}
}

// ProvideScheduler registers the background jobs; Serve starts it.
func ProvideScheduler(cfg *config.Config, sessions service.Sessions) (*scheduler.Service, error) {
	sched, err := scheduler.New()
	if err != nil {
		return nil, err
	}

	if err := service.RegisterSessionReaper(cfg, sched, sessions); err != nil {
		_ = sched.Stop()

		return nil, err
	}

	return sched, nil
}
