// Package memory is an in-process TableStore. It backs local runs without
// Postgres and lets tests inject per-table failures.
package memory

import (
	"context"
	"fmt"
	"maps"
	"reziro/shared/constant"
	"reziro/shared/dto"
	"reziro/shared/repository"
	"slices"
	"strings"
	"sync"

	"github.com/lib/pq"
)

const (
	OpSelect = "select"
	OpUpsert = "upsert"
	OpDelete = "delete"
)

// Call records one store operation, in order.
type Call struct {
	Op    string
	Table string
	Rows  int
}

type Store struct {
	mu       sync.Mutex
	tables   map[string][]repository.Row
	columns  map[string][]string
	failures map[string]error
	calls    []Call
}

func New() *Store {
	return &Store{
		tables:   map[string][]repository.Row{},
		columns:  map[string][]string{},
		failures: map[string]error{},
	}
}

// WithColumns restricts a table to known columns. Writing any other column
// fails with the same undefined-column error Postgres reports.
func (s *Store) WithColumns(table string, columns ...string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.columns[table] = columns

	return s
}

// FailOn makes every op on table fail with err until cleared with a nil err.
func (s *Store) FailOn(op, table string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := op + ":" + table
	if err == nil {
		delete(s.failures, key)

		return
	}

	s.failures[key] = err
}

func (s *Store) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.calls)
}

// Rows returns a copy of everything stored in table.
func (s *Store) Rows(table string) []repository.Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneRows(s.tables[table])
}

// Seed replaces table contents without recording a call.
func (s *Store) Seed(table string, rows ...repository.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tables[table] = cloneRows(rows)
}

func (s *Store) Select(_ context.Context, table string, filter dto.FilterGroup) ([]repository.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, Call{Op: OpSelect, Table: table})

	if err := s.failures[OpSelect+":"+table]; err != nil {
		return nil, err
	}

	result := []repository.Row{}

	for _, row := range s.tables[table] {
		if filter.Match(row) {
			result = append(result, maps.Clone(row))
		}
	}

	return result, nil
}

func (s *Store) SelectIDs(ctx context.Context, table string, filter dto.FilterGroup) ([]string, error) {
	rows, err := s.Select(ctx, table, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, fmt.Sprint(row[constant.FieldID]))
	}

	return ids, nil
}

func (s *Store) Upsert(_ context.Context, table string, conflictColumns []string, rows []repository.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, Call{Op: OpUpsert, Table: table, Rows: len(rows)})

	if err := s.failures[OpUpsert+":"+table]; err != nil {
		return err
	}

	if known, ok := s.columns[table]; ok {
		for _, column := range repository.Columns(rows) {
			if !slices.Contains(known, column) {
				return &pq.Error{
					Code:    pq.ErrorCode(constant.PqErrorCodeUndefinedColumn),
					Message: fmt.Sprintf("column %q of relation %q does not exist", column, table),
				}
			}
		}
	}

	stored := s.tables[table]
	owned := repository.OwnedByAccount(repository.Columns(rows), conflictColumns)

	for _, row := range rows {
		key := conflictKey(row, conflictColumns)
		idx := slices.IndexFunc(stored, func(existing repository.Row) bool {
			return conflictKey(existing, conflictColumns) == key
		})

		if idx < 0 {
			stored = append(stored, maps.Clone(row))

			continue
		}

		if owned && fmt.Sprint(stored[idx][constant.FieldUserID]) != fmt.Sprint(row[constant.FieldUserID]) {
			continue
		}

		merged := maps.Clone(stored[idx])
		maps.Copy(merged, row)
		stored[idx] = merged
	}

	s.tables[table] = stored

	return nil
}

func (s *Store) Delete(_ context.Context, table string, filter dto.FilterGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, Call{Op: OpDelete, Table: table})

	if err := s.failures[OpDelete+":"+table]; err != nil {
		return err
	}

	if len(filter.Filters) == 0 {
		return fmt.Errorf("failed to delete data (%s): required filter", table)
	}

	s.tables[table] = slices.DeleteFunc(s.tables[table], func(row repository.Row) bool {
		return filter.Match(row)
	})

	return nil
}

func conflictKey(row repository.Row, columns []string) string {
	parts := make([]string, len(columns))
	for idx, column := range columns {
		parts[idx] = fmt.Sprint(row[column])
	}

	return strings.Join(parts, "\x00")
}

func cloneRows(rows []repository.Row) []repository.Row {
	cloned := make([]repository.Row, 0, len(rows))
	for _, row := range rows {
		cloned = append(cloned, maps.Clone(row))
	}

	return cloned
}

var _ repository.TableStore = (*Store)(nil)
