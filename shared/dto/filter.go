package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq    = "eq"
	FilterOperatorNotEq = "not_eq"
	FilterOperatorIn    = "in"
	FilterIsNotNull     = "is_not_null"
	FilterIsNull        = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// comparisons maps the binary operators onto SQL.
var comparisons = map[string]string{
	FilterOperatorEq:    "=",
	FilterOperatorNotEq: "!=",
}

// Filter is one predicate on a column. ArgName overrides the named parameter
// when the same column appears twice in a group.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

// values spreads a slice or array Value; any other Value is a single element.
func (f *Filter) values() []any {
	val := reflect.ValueOf(f.Value)
	if val.Kind() != reflect.Array && val.Kind() != reflect.Slice {
		return []any{f.Value}
	}

	out := make([]any, val.Len())
	for idx := range val.Len() {
		out[idx] = val.Index(idx).Interface()
	}

	return out
}

// GetWhereClause renders the predicate with sqlx named parameters. An unknown
// operator renders nothing; an empty IN list renders FALSE.
func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	column, name := f.column(), f.argName()

	if op, ok := comparisons[f.Operator]; ok {
		args[name] = f.Value

		return fmt.Sprintf("%s %s :%s", column, op, name), args
	}

	switch f.Operator {
	case FilterOperatorIn:
		values := f.values()
		if len(values) == 0 {
			return "FALSE", args
		}

		named := make([]string, len(values))
		for idx, value := range values {
			key := fmt.Sprintf("%s_%d", name, idx)
			args[key] = value
			named[idx] = ":" + key
		}

		return fmt.Sprintf("%s IN (%s) ", column, strings.Join(named, ", ")), args
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	case FilterIsNull:
		return column + " IS NULL", args
	default:
		return "", args
	}
}

// Match evaluates the filter against an in-memory row. Values are compared by
// their string form so driver types and Go types line up.
func (f *Filter) Match(row map[string]any) bool {
	value, present := row[f.Field]

	switch f.Operator {
	case FilterOperatorEq:
		return present && sameValue(value, f.Value)
	case FilterOperatorNotEq:
		return !present || !sameValue(value, f.Value)
	case FilterOperatorIn:
		if !present {
			return false
		}

		for _, candidate := range f.values() {
			if sameValue(value, candidate) {
				return true
			}
		}

		return false
	case FilterIsNotNull:
		return present && value != nil
	case FilterIsNull:
		return !present || value == nil
	default:
		return false
	}
}

// FilterGroup joins Filters and nested FilterGroups with Operator.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, filter := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	return "(" + strings.Join(clauses, " "+f.Operator+" ") + ")", args
}

// Match evaluates the group against an in-memory row. An empty group matches
// everything, mirroring a query without a WHERE clause.
func (f *FilterGroup) Match(row map[string]any) bool {
	if len(f.Filters) == 0 {
		return true
	}

	anyMatched := false
	allMatched := true

	for _, filter := range f.Filters {
		var matched bool

		switch fill := filter.(type) {
		case Filter:
			matched = fill.Match(row)
		case FilterGroup:
			matched = fill.Match(row)
		default:
			continue
		}

		anyMatched = anyMatched || matched
		allMatched = allMatched && matched
	}

	if f.Operator == FilterGroupOperatorOr {
		return anyMatched
	}

	return allMatched
}

func sameValue(left, right any) bool {
	return fmt.Sprint(left) == fmt.Sprint(right)
}

// Eq builds the common single-column equality filter.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Value: value, Operator: FilterOperatorEq}
}

// In matches any of values.
func In[T any](field string, values []T) Filter {
	return Filter{Field: field, Value: values, Operator: FilterOperatorIn}
}

// And joins filters with AND.
func And(filters ...any) FilterGroup {
	return FilterGroup{Filters: filters, Operator: FilterGroupOperatorAnd}
}
