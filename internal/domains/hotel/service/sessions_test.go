package service_test

import (
	"context"
	"errors"
	otelMocks "reziro/infras/otel/mocks"
	"reziro/internal/domains/hotel/mocks"
	"reziro/internal/domains/hotel/model"
	"reziro/internal/domains/hotel/repository"
	"reziro/internal/domains/hotel/service"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingPublisher struct {
	mu        sync.Mutex
	published []repository.SaveReport
	err       error
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, value any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.published = append(p.published, value.(repository.SaveReport))

	return p.err
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.published)
}

func newSessions(t *testing.T, clock *testClock, adapters map[string]*mocks.MockAdapter) service.Sessions {
	t.Helper()

	factory := func(userID string, _ func(repository.SaveReport)) repository.Adapter {
		adapter, ok := adapters[userID]
		require.True(t, ok, "unexpected account %s", userID)

		return adapter
	}

	return service.NewSessions(testConfig(), factory, otelMocks.NewOtel(), service.NewNotifier(testConfig(), nil), clock.env())
}

func TestSessions_Get(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	adapter := mocks.NewMockAdapter(ctrl)
	adapter.EXPECT().LoadState(gomock.Any()).Return(model.EmptyState(), nil).Times(1)

	sessions := newSessions(t, newClock(), map[string]*mocks.MockAdapter{"u-1": adapter})

	first, err := sessions.Get(ctx, "u-1")
	require.NoError(t, err)

	second, err := sessions.Get(ctx, "u-1")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, "u-1", first.UserID())
	assert.True(t, first.UI().IsHydrated)

	_, err = sessions.Get(ctx, "")
	assert.ErrorIs(t, err, repository.ErrNotAuthenticated)
}

func TestSessions_End(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	adapter := mocks.NewMockAdapter(ctrl)
	adapter.EXPECT().LoadState(gomock.Any()).Return(model.EmptyState(), nil).Times(2)
	adapter.EXPECT().Close(gomock.Any()).Return(nil)

	sessions := newSessions(t, newClock(), map[string]*mocks.MockAdapter{"u-1": adapter})

	first, err := sessions.Get(ctx, "u-1")
	require.NoError(t, err)

	require.NoError(t, sessions.End(ctx, "u-1"))
	require.NoError(t, sessions.End(ctx, "u-1"), "ending twice is a no-op")

	second, err := sessions.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestSessions_ReapIdle(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	clock := newClock()

	idle := mocks.NewMockAdapter(ctrl)
	idle.EXPECT().LoadState(gomock.Any()).Return(model.EmptyState(), nil)
	idle.EXPECT().Close(gomock.Any()).Return(nil)

	active := mocks.NewMockAdapter(ctrl)
	active.EXPECT().LoadState(gomock.Any()).Return(model.EmptyState(), nil)

	sessions := newSessions(t, clock, map[string]*mocks.MockAdapter{"idle": idle, "active": active})

	_, err := sessions.Get(ctx, "idle")
	require.NoError(t, err)

	clock.now = clock.now.Add(20 * time.Minute)

	store, err := sessions.Get(ctx, "active")
	require.NoError(t, err)

	clock.now = clock.now.Add(15 * time.Minute)
	store.State()

	assert.Equal(t, 1, sessions.ReapIdle(ctx))
	assert.Equal(t, 0, sessions.ReapIdle(ctx))
}

func TestSessions_Shutdown(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	healthy := mocks.NewMockAdapter(ctrl)
	healthy.EXPECT().LoadState(gomock.Any()).Return(model.EmptyState(), nil)
	healthy.EXPECT().Close(gomock.Any()).Return(nil)

	broken := mocks.NewMockAdapter(ctrl)
	broken.EXPECT().LoadState(gomock.Any()).Return(model.EmptyState(), nil)
	broken.EXPECT().Close(gomock.Any()).Return(errors.New("failed to save: rooms"))

	sessions := newSessions(t, newClock(), map[string]*mocks.MockAdapter{"u-1": healthy, "u-2": broken})

	for _, userID := range []string{"u-1", "u-2"} {
		_, err := sessions.Get(ctx, userID)
		require.NoError(t, err)
	}

	err := sessions.Shutdown(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "u-2")
	assert.NotContains(t, err.Error(), "u-1")
}

func TestNotifier(t *testing.T) {
	failed := repository.SaveReport{
		UserID: "u-1",
		Saved:  []string{"rooms"},
		Failed: []string{"partners"},
		Errors: map[string]string{"partners": "missing key"},
	}

	schemaOnly := failed
	schemaOnly.SchemaOnly = true

	tests := []struct {
		name      string
		suppress  bool
		report    repository.SaveReport
		published int
	}{
		{name: "success is recorded only", report: repository.SaveReport{UserID: "u-1", Saved: []string{"rooms"}}},
		{name: "failure is published", report: failed, published: 1},
		{name: "schema mismatch is suppressed", suppress: true, report: schemaOnly},
		{name: "schema mismatch without suppression", report: schemaOnly, published: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Sync.SuppressSchemaErrors = tt.suppress

			publisher := &recordingPublisher{}
			notifier := service.NewNotifier(cfg, publisher)

			notifier.Report(tt.report)

			assert.Equal(t, tt.published, publisher.count())

			last, ok := notifier.Last("u-1")
			require.True(t, ok)
			assert.Equal(t, tt.report, last)

			notifier.Forget("u-1")

			_, ok = notifier.Last("u-1")
			assert.False(t, ok)
		})
	}

	t.Run("publish errors are swallowed", func(t *testing.T) {
		publisher := &recordingPublisher{err: errors.New("broker down")}
		notifier := service.NewNotifier(testConfig(), publisher)

		assert.NotPanics(t, func() { notifier.Report(failed) })
		assert.Equal(t, 1, publisher.count())
	})
}
