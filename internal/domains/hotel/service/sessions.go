package service

//go:generate go run go.uber.org/mock/mockgen -source=./sessions.go -destination=../mocks/sessions_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"reziro/config"
	"reziro/infras/otel"
	"reziro/internal/domains/hotel/repository"
	"reziro/shared/constant"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// AdapterFactory builds the storage adapter of one account. onReport receives
// the outcome of every full-state save.
type AdapterFactory func(userID string, onReport func(repository.SaveReport)) repository.Adapter

// Sessions owns one Store per signed-in account. A store is built and
// hydrated on first use and torn down at sign-out or after sitting idle.
type Sessions interface {
	Get(ctx context.Context, userID string) (*Store, error)
	End(ctx context.Context, userID string) error
	ReapIdle(ctx context.Context) int
	LastReport(userID string) (repository.SaveReport, bool)
	Shutdown(ctx context.Context) error
}

type sessionsImpl struct {
	cfg      *config.Config
	factory  AdapterFactory
	otel     otel.Otel
	notifier *Notifier
	env      Env

	mu     sync.Mutex
	stores map[string]*Store
}

func NewSessions(cfg *config.Config, factory AdapterFactory, otl otel.Otel, notifier *Notifier, env Env) Sessions {
	return &sessionsImpl{
		cfg:      cfg,
		factory:  factory,
		otel:     otl,
		notifier: notifier,
		env:      env,
		stores:   map[string]*Store{},
	}
}

func (s *sessionsImpl) Get(ctx context.Context, userID string) (*Store, error) {
	if userID == constant.Empty {
		return nil, repository.ErrNotAuthenticated
	}

	s.mu.Lock()

	store, ok := s.stores[userID]
	if !ok {
		store = NewStore(s.cfg, s.factory(userID, s.notifier.Report), s.otel, userID, s.env)
		s.stores[userID] = store

		log.Info().Str("userId", userID).Msg("session started")
	}

	s.mu.Unlock()

	// Open is idempotent; concurrent first requests wait for the same load.
	store.Open(ctx)
	store.touch()

	return store, nil
}

func (s *sessionsImpl) take(userID string) (*Store, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, ok := s.stores[userID]
	if ok {
		delete(s.stores, userID)
	}

	return store, ok
}

// End flushes and drops the account's store. Ending a session that does not
// exist is not an error.
func (s *sessionsImpl) End(ctx context.Context, userID string) error {
	store, ok := s.take(userID)
	if !ok {
		return nil
	}

	s.notifier.Forget(userID)

	if err := store.Close(ctx); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}

	log.Info().Str("userId", userID).Msg("session ended")

	return nil
}

// ReapIdle ends every session unused for longer than the configured idle
// window and returns how many were ended.
func (s *sessionsImpl) ReapIdle(ctx context.Context) int {
	idle := time.Duration(s.cfg.Sync.SessionIdleMinutes) * time.Minute
	now := s.env.Now()

	s.mu.Lock()

	var stale []string

	for userID, store := range s.stores {
		if store.idleSince(now) > idle {
			stale = append(stale, userID)
		}
	}

	s.mu.Unlock()

	reaped := 0

	for _, userID := range stale {
		if err := s.End(ctx, userID); err != nil {
			log.Error().Err(err).Str("userId", userID).Msg("failed to reap idle session")

			continue
		}

		reaped++
	}

	if reaped > 0 {
		log.Info().Int("sessions", reaped).Msg("reaped idle sessions")
	}

	return reaped
}

func (s *sessionsImpl) LastReport(userID string) (repository.SaveReport, bool) {
	return s.notifier.Last(userID)
}

// Shutdown ends every session, flushing pending saves.
func (s *sessionsImpl) Shutdown(ctx context.Context) error {
	s.mu.Lock()

	userIDs := make([]string, 0, len(s.stores))
	for userID := range s.stores {
		userIDs = append(userIDs, userID)
	}

	s.mu.Unlock()

	var errs []error

	for _, userID := range userIDs {
		if err := s.End(ctx, userID); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", userID, err))
		}
	}

	return errors.Join(errs...)
}
