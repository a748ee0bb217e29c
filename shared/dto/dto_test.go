package dto_test

import (
	"reziro/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equal",
			filter:    dto.Filter{Field: "user_id", Value: "u-1", Operator: dto.FilterOperatorEq},
			wantWhere: "user_id = :user_id",
			wantArgs:  map[string]any{"user_id": "u-1"},
		},
		{
			name:      "equal with table and arg name",
			filter:    dto.Filter{Field: "type", ArgName: "kind", Table: "transactions", Value: "manual_referral", Operator: dto.FilterOperatorEq},
			wantWhere: "transactions.type = :kind",
			wantArgs:  map[string]any{"kind": "manual_referral"},
		},
		{
			name:      "in slice",
			filter:    dto.Filter{Field: "id", Value: []string{"a", "b"}, Operator: dto.FilterOperatorIn},
			wantWhere: "id IN (:id_0, :id_1) ",
			wantArgs:  map[string]any{"id_0": "a", "id_1": "b"},
		},
		{
			name:      "in helper",
			filter:    dto.In("type", []string{"expense"}),
			wantWhere: "type IN (:type_0) ",
			wantArgs:  map[string]any{"type_0": "expense"},
		},
		{
			name:      "empty in",
			filter:    dto.In("id", []string{}),
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "in scalar",
			filter:    dto.Filter{Field: "id", Value: "a", Operator: dto.FilterOperatorIn},
			wantWhere: "id IN (:id_0) ",
			wantArgs:  map[string]any{"id_0": "a"},
		},
		{
			name:      "not equal",
			filter:    dto.Filter{Field: "entity_type", Value: "room", Operator: dto.FilterOperatorNotEq},
			wantWhere: "entity_type != :entity_type",
			wantArgs:  map[string]any{"entity_type": "room"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "locked_at", Operator: dto.FilterIsNull},
			wantWhere: "locked_at IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Operator: "nope"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.And(
		dto.Eq("user_id", "u-1"),
		dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Eq("entity_type", "room"),
				dto.Filter{Field: "entity_type", ArgName: "entity_type_hotel", Value: "hotel", Operator: dto.FilterOperatorEq},
			},
		},
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(user_id = :user_id AND (entity_type = :entity_type OR entity_type = :entity_type_hotel))", where)
	assert.Equal(t, map[string]any{"user_id": "u-1", "entity_type": "room", "entity_type_hotel": "hotel"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilterGroup_Match(t *testing.T) {
	row := map[string]any{"user_id": "u-1", "type": "manual_referral", "amount": 12.5, "notes": nil}

	tests := []struct {
		name  string
		group dto.FilterGroup
		want  bool
	}{
		{name: "empty matches all", group: dto.FilterGroup{}, want: true},
		{name: "and all match", group: dto.And(dto.Eq("user_id", "u-1"), dto.Eq("type", "manual_referral")), want: true},
		{name: "and one misses", group: dto.And(dto.Eq("user_id", "u-1"), dto.Eq("type", "expense")), want: false},
		{
			name: "or one matches",
			group: dto.FilterGroup{Operator: dto.FilterGroupOperatorOr, Filters: []any{
				dto.Eq("user_id", "u-2"),
				dto.Eq("type", "manual_referral"),
			}},
			want: true,
		},
		{name: "numeric compares by string form", group: dto.And(dto.Eq("amount", "12.5")), want: true},
		{name: "in", group: dto.And(dto.Filter{Field: "user_id", Value: []string{"u-3", "u-1"}, Operator: dto.FilterOperatorIn}), want: true},
		{name: "empty in", group: dto.And(dto.In("user_id", []string{})), want: false},
		{name: "in misses", group: dto.And(dto.Filter{Field: "user_id", Value: []string{"u-3"}, Operator: dto.FilterOperatorIn}), want: false},
		{name: "not equal on missing column", group: dto.And(dto.Filter{Field: "missing", Value: "x", Operator: dto.FilterOperatorNotEq}), want: true},
		{name: "is null", group: dto.And(dto.Filter{Field: "notes", Operator: dto.FilterIsNull}), want: true},
		{name: "is not null", group: dto.And(dto.Filter{Field: "user_id", Operator: dto.FilterIsNotNull}), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.group.Match(row))
		})
	}
}
