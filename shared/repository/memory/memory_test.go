package memory_test

import (
	"context"
	"errors"
	"reziro/shared/dto"
	"reziro/shared/repository"
	"reziro/shared/repository/memory"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_UpsertMergesOnConflictKey(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	require.NoError(t, store.Upsert(ctx, "rooms", []string{"id"}, []repository.Row{
		{"id": "a", "user_id": "u-1", "name": "Old"},
	}))
	require.NoError(t, store.Upsert(ctx, "rooms", []string{"id"}, []repository.Row{
		{"id": "a", "user_id": "u-1", "name": "New"},
		{"id": "b", "user_id": "u-2", "name": "Other"},
	}))

	rows, err := store.Select(ctx, "rooms", dto.And(dto.Eq("user_id", "u-1")))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "New", rows[0]["name"])

	ids, err := store.SelectIDs(ctx, "rooms", dto.FilterGroup{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestStore_UpsertKeepsOwner(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	require.NoError(t, store.Upsert(ctx, "rooms", []string{"id"}, []repository.Row{
		{"id": "a", "user_id": "u-1", "name": "Mine"},
	}))
	require.NoError(t, store.Upsert(ctx, "rooms", []string{"id"}, []repository.Row{
		{"id": "a", "user_id": "u-2", "name": "Taken"},
	}))

	rows := store.Rows("rooms")
	require.Len(t, rows, 1)
	assert.Equal(t, "u-1", rows[0]["user_id"])
	assert.Equal(t, "Mine", rows[0]["name"])
}

func TestStore_CompositeKey(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	key := []string{"user_id", "month_key"}

	require.NoError(t, store.Upsert(ctx, "monthly_controls", key, []repository.Row{{"user_id": "u-1", "month_key": "2024-03", "is_locked": true}}))
	require.NoError(t, store.Upsert(ctx, "monthly_controls", key, []repository.Row{{"user_id": "u-1", "month_key": "2024-03", "is_locked": false}}))

	rows := store.Rows("monthly_controls")
	require.Len(t, rows, 1)
	assert.Equal(t, false, rows[0]["is_locked"])
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	store.Seed("transactions",
		repository.Row{"id": "1", "user_id": "u-1", "type": "manual_referral"},
		repository.Row{"id": "2", "user_id": "u-1", "type": "expense"},
		repository.Row{"id": "3", "user_id": "u-2", "type": "manual_referral"},
	)

	err := store.Delete(ctx, "transactions", dto.And(dto.Eq("user_id", "u-1"), dto.Eq("type", "manual_referral")))
	require.NoError(t, err)

	rows := store.Rows("transactions")
	require.Len(t, rows, 2)
	assert.Equal(t, "2", rows[0]["id"])
	assert.Equal(t, "3", rows[1]["id"])

	assert.Error(t, store.Delete(ctx, "transactions", dto.FilterGroup{}))
}

func TestStore_FailuresAndColumns(t *testing.T) {
	ctx := context.Background()
	store := memory.New().WithColumns("partners", "id", "user_id", "name")

	err := store.Upsert(ctx, "partners", []string{"id"}, []repository.Row{{"id": "p", "phone": "1"}})

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("42703"), pqErr.Code)

	boom := errors.New("boom")
	store.FailOn(memory.OpSelect, "partners", boom)

	_, err = store.Select(ctx, "partners", dto.FilterGroup{})
	assert.ErrorIs(t, err, boom)

	store.FailOn(memory.OpSelect, "partners", nil)

	_, err = store.Select(ctx, "partners", dto.FilterGroup{})
	assert.NoError(t, err)

	calls := store.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, memory.Call{Op: memory.OpUpsert, Table: "partners", Rows: 1}, calls[0])
}
