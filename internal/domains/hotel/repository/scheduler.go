package repository

import (
	"context"
	"reziro/internal/domains/hotel/model"
	"sync"
	"time"
)

// Scheduler collapses bursts of full-state saves into one write of the latest
// state. There is at most one timer and one pending state, and writes never
// overlap.
type Scheduler struct {
	mu      sync.Mutex
	writeMu sync.Mutex
	delay   time.Duration
	timeout time.Duration
	timer   *time.Timer
	pending *model.AppState
	save    func(ctx context.Context, state model.AppState) error
}

func NewScheduler(delay, timeout time.Duration, save func(ctx context.Context, state model.AppState) error) *Scheduler {
	return &Scheduler{
		delay:   delay,
		timeout: timeout,
		save:    save,
	}
}

// Schedule replaces the pending state and restarts the delay.
func (s *Scheduler) Schedule(state model.AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}

	s.pending = &state
	s.timer = time.AfterFunc(s.delay, s.fire)
}

// Flush writes the pending state now, if any.
func (s *Scheduler) Flush(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	state, ok := s.take()
	if !ok {
		return nil
	}

	return s.save(ctx, state)
}

// CancelPending drops the pending state without writing it.
func (s *Scheduler) CancelPending() bool {
	_, ok := s.take()

	return ok
}

func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pending != nil
}

func (s *Scheduler) take() (model.AppState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if s.pending == nil {
		return model.AppState{}, false
	}

	state := *s.pending
	s.pending = nil

	return state, true
}

func (s *Scheduler) fire() {
	ctx := context.Background()

	if s.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	// save reports its own failures.
	_ = s.Flush(ctx)
}
