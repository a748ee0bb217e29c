package repository_test

import (
	"reziro/shared/dto"
	"reziro/shared/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUpsertQuery(t *testing.T) {
	rows := []repository.Row{
		{"id": "a", "user_id": "u-1", "name": "Room A"},
		{"id": "b", "user_id": "u-1", "number": "12"},
	}

	query, args := repository.BuildUpsertQuery("rooms", []string{"id"}, rows)

	assert.Equal(t,
		"INSERT INTO rooms (id, name, number, user_id) VALUES (?, ?, ?, ?), (?, ?, ?, ?) "+
			"ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, number = EXCLUDED.number WHERE rooms.user_id = EXCLUDED.user_id",
		query,
	)
	assert.Equal(t, []any{"a", "Room A", nil, "u-1", "b", nil, "12", "u-1"}, args)
}

func TestBuildUpsertQuery_WithoutOwner(t *testing.T) {
	rows := []repository.Row{{"id": "a", "name": "Room A"}}

	query, _ := repository.BuildUpsertQuery("rooms", []string{"id"}, rows)

	assert.Equal(t, "INSERT INTO rooms (id, name) VALUES (?, ?) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name", query)
}

func TestOwnedByAccount(t *testing.T) {
	assert.True(t, repository.OwnedByAccount([]string{"id", "user_id"}, []string{"id"}))
	assert.False(t, repository.OwnedByAccount([]string{"month_key", "user_id"}, []string{"user_id", "month_key"}))
	assert.False(t, repository.OwnedByAccount([]string{"id", "name"}, []string{"id"}))
}

func TestBuildUpsertQuery_CompositeKey(t *testing.T) {
	rows := []repository.Row{{"user_id": "u-1", "month_key": "2024-03"}}

	query, args := repository.BuildUpsertQuery("monthly_controls", []string{"user_id", "month_key"}, rows)

	assert.Equal(t, "INSERT INTO monthly_controls (month_key, user_id) VALUES (?, ?) ON CONFLICT (user_id, month_key) DO NOTHING", query)
	assert.Equal(t, []any{"2024-03", "u-1"}, args)
}

func TestBuildWhereClause(t *testing.T) {
	where, args := repository.BuildWhereClause(dto.And(dto.Eq("user_id", "u-1")))

	assert.Equal(t, " WHERE (user_id = :user_id) ", where)
	assert.Equal(t, map[string]any{"user_id": "u-1"}, args)

	where, args = repository.BuildWhereClause(dto.FilterGroup{})

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestColumns(t *testing.T) {
	columns := repository.Columns([]repository.Row{{"b": 1, "a": 2}, {"c": 3, "a": 4}})

	assert.Equal(t, []string{"a", "b", "c"}, columns)
}
