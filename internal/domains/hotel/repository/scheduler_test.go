package repository_test

import (
	"context"
	"errors"
	"reziro/internal/domains/hotel/model"
	"reziro/internal/domains/hotel/repository"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	mu    sync.Mutex
	saved []model.AppState
	err   error
}

func (r *recordingSaver) save(_ context.Context, state model.AppState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saved = append(r.saved, state)

	return r.err
}

func (r *recordingSaver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.saved)
}

func (r *recordingSaver) last() model.AppState {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.saved[len(r.saved)-1]
}

func stateWithRooms(names ...string) model.AppState {
	state := model.EmptyState()
	for _, name := range names {
		state.Rooms = append(state.Rooms, model.Room{ID: "id-" + name, Name: name})
	}

	return state
}

func TestScheduler_CollapsesBursts(t *testing.T) {
	saver := &recordingSaver{}
	scheduler := repository.NewScheduler(30*time.Millisecond, time.Second, saver.save)

	scheduler.Schedule(stateWithRooms("a"))
	scheduler.Schedule(stateWithRooms("a", "b"))
	scheduler.Schedule(stateWithRooms("a", "b", "c"))

	assert.True(t, scheduler.Pending())

	assert.Eventually(t, func() bool { return saver.count() == 1 }, time.Second, 5*time.Millisecond)

	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, 1, saver.count())
	assert.Len(t, saver.last().Rooms, 3)
	assert.False(t, scheduler.Pending())
}

func TestScheduler_Flush(t *testing.T) {
	saver := &recordingSaver{}
	scheduler := repository.NewScheduler(time.Hour, time.Second, saver.save)

	require.NoError(t, scheduler.Flush(context.Background()))
	assert.Equal(t, 0, saver.count())

	scheduler.Schedule(stateWithRooms("a"))
	require.NoError(t, scheduler.Flush(context.Background()))

	assert.Equal(t, 1, saver.count())
	assert.False(t, scheduler.Pending())

	saver.err = errors.New("store offline")
	scheduler.Schedule(stateWithRooms("b"))
	assert.EqualError(t, scheduler.Flush(context.Background()), "store offline")
}

func TestScheduler_CancelPending(t *testing.T) {
	saver := &recordingSaver{}
	scheduler := repository.NewScheduler(20*time.Millisecond, time.Second, saver.save)

	assert.False(t, scheduler.CancelPending())

	scheduler.Schedule(stateWithRooms("a"))
	assert.True(t, scheduler.CancelPending())

	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, 0, saver.count())
	assert.False(t, scheduler.Pending())
}
