package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST" default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"reziro"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Enabled bool `envconfig:"ENABLED"`
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL" default:"3600"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret    string `envconfig:"ACCESS_SECRET"`
		AccessExpireMin int    `envconfig:"ACCESS_EXPIRE_MIN" default:"60"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			Enabled        bool             `envconfig:"ENABLED" default:"true"`
			MaxRetry       int              `envconfig:"MAX_RETRY" default:"3"`
			RetryWaitTime  int              `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MaxOpenConns   int              `envconfig:"MAX_OPEN_CONNS" default:"10"`
			MaxIdleConns   int              `envconfig:"MAX_IDLE_CONNS" default:"10"`
			MigrationTable string           `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			MigrationsPath string           `envconfig:"MIGRATIONS_PATH" default:"file://migrations/postgres"`
			AutoMigrate    bool             `envconfig:"AUTO_MIGRATE"`
			Prefix         string           `envconfig:"PREFIX"`
			Read           PostgresEndpoint `envconfig:"READ"`
			Write          PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Sync struct {
		DebounceMillis       int    `envconfig:"DEBOUNCE_MILLIS" default:"300"`
		SaveTimeoutSeconds   int    `envconfig:"SAVE_TIMEOUT_SECONDS" default:"30"`
		SessionIdleMinutes   int    `envconfig:"SESSION_IDLE_MINUTES" default:"30"`
		ReaperCron           string `envconfig:"REAPER_CRON" default:"*/5 * * * *"`
		SuppressSchemaErrors bool   `envconfig:"SUPPRESS_SCHEMA_ERRORS" default:"true"`
		SeedDefaultCatalog   bool   `envconfig:"SEED_DEFAULT_CATALOG" default:"true"`
	} `envconfig:"SYNC"`

	Kafka struct {
		Enabled bool     `envconfig:"ENABLED"`
		Brokers []string `envconfig:"BROKERS"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		SyncReportTopic string `envconfig:"SYNC_REPORT_TOPIC" default:"reziro.sync-reports"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			Enabled         bool   `envconfig:"ENABLED"`
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

// PostgresEndpoint is one side of the read/write split.
type PostgresEndpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	Timezone string `envconfig:"TIMEZONE"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

const envFile = ".env"

var (
	conf    *Config
	confErr error
	once    sync.Once
)

// Load reads the optional env files into the process environment and then
// decodes and validates the configuration. A missing file is not an error.
func Load(files ...string) (*Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			log.Warn().Err(err).Str("file", file).Msg("Env file not loaded, using process environment")
		}
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every setting an enabled integration is missing.
func (c *Config) Validate() error {
	var errs []error

	require := func(value, name string) {
		if value == "" {
			errs = append(errs, fmt.Errorf("%s is required", name))
		}
	}

	require(c.JWT.AccessSecret, "JWT_ACCESS_SECRET")

	if c.DB.Postgres.Enabled {
		require(c.DB.Postgres.Write.Host, "DB_POSTGRES_WRITE_HOST")
		require(c.DB.Postgres.Read.Host, "DB_POSTGRES_READ_HOST")
	}

	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		errs = append(errs, errors.New("KAFKA_BROKERS is required when Kafka is enabled"))
	}

	if c.External.S3.Enabled {
		require(c.External.S3.BucketName, "EXTERNAL_S3_BUCKET_NAME")
		require(c.External.S3.PublicDomain, "EXTERNAL_S3_PUBLIC_DOMAIN")
	}

	return errors.Join(errs...)
}

// Get loads the configuration once from .env and the environment. An invalid
// configuration stops the process.
func Get() *Config {
	once.Do(func() {
		conf, confErr = Load(envFile)
		if confErr == nil {
			log.Info().Str("env", conf.Server.Env).Msg("Service configuration loaded")
		}
	})

	if confErr != nil {
		log.Fatal().Err(confErr).Msg("Invalid service configuration")
	}

	return conf
}
