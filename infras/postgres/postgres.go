package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"reziro/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection splits reads and writes. Loads go to Read, sync writes to Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  connect(cfg, "read", cfg.DB.Postgres.Read),
		Write: connect(cfg, "write", cfg.DB.Postgres.Write),
	}
}

// DSN builds the lib/pq URL for endpoint. extra is appended to the query,
// e.g. golang-migrate's x-migrations-table.
func DSN(cfg *config.Config, endpoint config.PostgresEndpoint, extra url.Values) string {
	query := url.Values{}

	if endpoint.SSLMode != "" {
		query.Set("sslmode", endpoint.SSLMode)
	}

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	for key, values := range extra {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     "/" + DatabaseName(cfg, endpoint),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// DatabaseName applies DB_POSTGRES_PREFIX, used to run several environments
// on one server.
func DatabaseName(cfg *config.Config, endpoint config.PostgresEndpoint) string {
	return cfg.DB.Postgres.Prefix + endpoint.Name
}

// connect retries DB_POSTGRES_MAX_RETRY times and returns nil when every
// attempt fails.
func connect(cfg *config.Config, name string, endpoint config.PostgresEndpoint) *sqlx.DB {
	dsn := DSN(cfg, endpoint, nil)
	wait := time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second

	connLog := log.With().
		Str("name", name).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", DatabaseName(cfg, endpoint)).
		Logger()

	for attempt := 1; attempt <= cfg.DB.Postgres.MaxRetry; attempt++ {
		db, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxOpenConns(cfg.DB.Postgres.MaxOpenConns)
			db.SetMaxIdleConns(cfg.DB.Postgres.MaxIdleConns)

			connLog.Info().Msg("Connected to database")

			return db
		}

		connLog.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		time.Sleep(wait)
	}

	connLog.Error().Int("attempts", cfg.DB.Postgres.MaxRetry).Msg("Giving up on database")

	return nil
}
