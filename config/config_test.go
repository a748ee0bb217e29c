package config_test

import (
	"os"
	"path/filepath"
	"reziro/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults and env file", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "test.env")
		require.NoError(t, os.WriteFile(file, []byte("JWT_ACCESS_SECRET=secret\nDB_POSTGRES_ENABLED=false\n"), 0o600))

		t.Setenv("JWT_ACCESS_SECRET", "")
		t.Setenv("DB_POSTGRES_ENABLED", "")
		require.NoError(t, os.Unsetenv("JWT_ACCESS_SECRET"))
		require.NoError(t, os.Unsetenv("DB_POSTGRES_ENABLED"))

		cfg, err := config.Load(file)
		require.NoError(t, err)

		assert.Equal(t, "secret", cfg.JWT.AccessSecret)
		assert.False(t, cfg.DB.Postgres.Enabled)
		assert.Equal(t, 300, cfg.Sync.DebounceMillis)
		assert.Equal(t, "file://migrations/postgres", cfg.DB.Postgres.MigrationsPath)
		assert.Equal(t, "reziro.sync-reports", cfg.Kafka.SyncReportTopic)
	})

	t.Run("missing env file is tolerated", func(t *testing.T) {
		t.Setenv("JWT_ACCESS_SECRET", "secret")
		t.Setenv("DB_POSTGRES_ENABLED", "false")

		_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
		assert.NoError(t, err)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("JWT_ACCESS_SECRET", "secret")
		t.Setenv("SYNC_DEBOUNCE_MILLIS", "soon")

		_, err := config.Load()
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *config.Config {
		cfg := &config.Config{}
		cfg.JWT.AccessSecret = "secret"

		return cfg
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.JWT.AccessSecret = ""
	cfg.DB.Postgres.Enabled = true
	cfg.Kafka.Enabled = true
	cfg.External.S3.Enabled = true

	err := cfg.Validate()
	require.Error(t, err)

	for _, name := range []string{
		"JWT_ACCESS_SECRET",
		"DB_POSTGRES_WRITE_HOST",
		"DB_POSTGRES_READ_HOST",
		"KAFKA_BROKERS",
		"EXTERNAL_S3_BUCKET_NAME",
		"EXTERNAL_S3_PUBLIC_DOMAIN",
	} {
		assert.ErrorContains(t, err, name)
	}
}
