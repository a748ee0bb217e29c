package di_test

import (
	"reziro/config"
	"reziro/di"
	otelMocks "reziro/infras/otel/mocks"
	"reziro/internal/domains/hotel/service"
	"reziro/shared/cache"
	"reziro/shared/repository/memory"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "reziro"
	cfg.Sync.DebounceMillis = 10
	cfg.Sync.SaveTimeoutSeconds = 5
	cfg.Sync.SessionIdleMinutes = 30
	cfg.Sync.ReaperCron = "*/5 * * * *"

	return cfg
}

func TestProvideTableStore_FallsBackToMemory(t *testing.T) {
	store, err := di.ProvideTableStore(localConfig(), otelMocks.NewOtel())
	require.NoError(t, err)

	assert.IsType(t, &memory.Store{}, store)
}

func TestProvideStorage_DisabledIsNil(t *testing.T) {
	assert.Nil(t, di.ProvideStorage(localConfig(), otelMocks.NewOtel()))
}

func TestProvideReportPublisher_DisabledIsUntypedNil(t *testing.T) {
	publisher := di.ProvideReportPublisher(localConfig())

	assert.True(t, publisher == nil)
}

func TestProvideAdapterFactory(t *testing.T) {
	cfg := localConfig()
	factory := di.ProvideAdapterFactory(cfg, memory.New(), cache.NewNoopCache(), otelMocks.NewOtel())

	adapter := factory("u-1", nil)
	require.NotNil(t, adapter)
	assert.False(t, adapter.Pending())
}

func TestProvideScheduler_RegistersReaper(t *testing.T) {
	cfg := localConfig()
	notifier := service.NewNotifier(cfg, nil)
	sessions := service.NewSessions(cfg, di.ProvideAdapterFactory(cfg, memory.New(), cache.NewNoopCache(), otelMocks.NewOtel()), otelMocks.NewOtel(), notifier, service.DefaultEnv())

	sched, err := di.ProvideScheduler(cfg, sessions)
	require.NoError(t, err)

	require.Len(t, sched.Jobs(), 1)
	assert.Equal(t, "session_reaper", sched.Jobs()[0].Name())

	sched.Start()
	require.NoError(t, sched.Stop())

	cfg.Sync.ReaperCron = ""

	_, err = di.ProvideScheduler(cfg, sessions)
	assert.Error(t, err)
}
