package service

import (
	"context"
	"reziro/config"
	"reziro/internal/domains/hotel/repository"
	"reziro/shared/logger"
	"sync"
	"time"
)

// ReportPublisher ships a save report to whoever tells the user about it.
type ReportPublisher interface {
	Publish(ctx context.Context, key string, value any) error
}

// Notifier receives every full-state save outcome. It keeps the latest report
// per account and publishes the failures a user should hear about.
type Notifier struct {
	cfg       *config.Config
	publisher ReportPublisher

	mu   sync.RWMutex
	last map[string]repository.SaveReport
}

// NewNotifier accepts a nil publisher; reports are then only logged.
func NewNotifier(cfg *config.Config, publisher ReportPublisher) *Notifier {
	return &Notifier{
		cfg:       cfg,
		publisher: publisher,
		last:      map[string]repository.SaveReport{},
	}
}

// Report is the adapter's onReport callback.
func (n *Notifier) Report(report repository.SaveReport) {
	n.mu.Lock()
	n.last[report.UserID] = report
	n.mu.Unlock()

	accountLog := logger.ForAccount(report.UserID)

	if report.OK() {
		accountLog.Debug().Strs("tables", report.Saved).Msg("state saved")

		return
	}

	if report.SchemaOnly && n.cfg.Sync.SuppressSchemaErrors {
		accountLog.Warn().Strs("failed", report.Failed).Msg("save hit schema mismatches, not notifying")

		return
	}

	accountLog.Error().Strs("failed", report.Failed).Strs("saved", report.Saved).Msg("state saved partially")

	if n.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(n.cfg.Sync.SaveTimeoutSeconds)*time.Second)
	defer cancel()

	if err := n.publisher.Publish(ctx, report.UserID, report); err != nil {
		accountLog.Error().Err(err).Msg("failed to publish sync report")
	}
}

func (n *Notifier) Last(userID string) (repository.SaveReport, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	report, ok := n.last[userID]

	return report, ok
}

func (n *Notifier) Forget(userID string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.last, userID)
}
