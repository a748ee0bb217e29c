package service_test

import (
	"context"
	"errors"
	"reziro/internal/domains/hotel/mocks"
	"reziro/internal/domains/hotel/service"
	"testing"

	"github.com/go-co-op/gocron/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeScheduler struct {
	name, cron string
	task       func()
	err        error
}

func (f *fakeScheduler) AddJob(name, cronExpr string, task func()) (gocron.Job, error) {
	f.name, f.cron, f.task = name, cronExpr, task

	return nil, f.err
}

func TestRegisterSessionReaper(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockSessions(ctrl)

	cfg := testConfig()
	cfg.Sync.ReaperCron = "*/5 * * * *"

	scheduler := &fakeScheduler{}
	require.NoError(t, service.RegisterSessionReaper(cfg, scheduler, sessions))

	assert.Equal(t, "session_reaper", scheduler.name)
	assert.Equal(t, "*/5 * * * *", scheduler.cron)

	sessions.EXPECT().ReapIdle(gomock.Any()).DoAndReturn(func(ctx context.Context) int {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)

		return 2
	})

	scheduler.task()

	failing := &fakeScheduler{err: errors.New("bad cron")}
	assert.Error(t, service.RegisterSessionReaper(cfg, failing, sessions))
}
