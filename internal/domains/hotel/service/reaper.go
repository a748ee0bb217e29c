package service

import (
	"context"
	"reziro/config"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

const reaperJobName = "session_reaper"

type JobScheduler interface {
	AddJob(name, cronExpr string, task func()) (gocron.Job, error)
}

// RegisterSessionReaper ends idle sessions on cfg.Sync.ReaperCron. Ending a
// session flushes its pending save first.
func RegisterSessionReaper(cfg *config.Config, scheduler JobScheduler, sessions Sessions) error {
	timeout := time.Duration(cfg.Sync.SaveTimeoutSeconds) * time.Second

	_, err := scheduler.AddJob(reaperJobName, cfg.Sync.ReaperCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if reaped := sessions.ReapIdle(ctx); reaped > 0 {
			log.Debug().Int("sessions", reaped).Msg("reaper pass finished")
		}
	})

	return err
}
