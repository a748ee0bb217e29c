package repository

import (
	"context"
	"errors"
	"fmt"
	"reziro/infras/otel"
	"reziro/infras/postgres"
	"reziro/shared/constant"
	"reziro/shared/dto"
	"reziro/shared/logger"
	"slices"
	"strings"
)

var (
	errRequiredFilter   = errors.New("required filter")
	errRequiredConflict = errors.New("required conflict columns")
)

// Row is one table row keyed by column name.
type Row map[string]any

// TableStore is the remote table API the storage adapter talks to. Rows are
// plain column maps so callers decide which columns exist.
type TableStore interface {
	Select(ctx context.Context, table string, filter dto.FilterGroup) ([]Row, error)
	SelectIDs(ctx context.Context, table string, filter dto.FilterGroup) ([]string, error)
	Upsert(ctx context.Context, table string, conflictColumns []string, rows []Row) error
	Delete(ctx context.Context, table string, filter dto.FilterGroup) error
}

type Repository struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewRepository(dbConnection *postgres.Connection, otl otel.Otel) TableStore {
	return &Repository{
		db:   dbConnection,
		otel: otl,
	}
}

func (repo *Repository) Select(ctx context.Context, table string, filter dto.FilterGroup) ([]Row, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Select", constant.OtelRepositoryScopeName, table))
	defer scope.End()

	where, args := BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT * FROM %s %s", table, where)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	scope.SetAttribute(constant.OtelTableAttributeKey, table)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", table, err)
	}
	defer prepare.Close()

	rows, err := prepare.QueryxContext(ctx, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to select data (%s): %w", table, err)
	}
	defer rows.Close()

	result := []Row{}

	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			scope.TraceError(err)

			return nil, fmt.Errorf("failed to scan data (%s): %w", table, err)
		}

		result = append(result, normalize(row))
	}

	if err := rows.Err(); err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to iterate data (%s): %w", table, err)
	}

	return result, nil
}

func (repo *Repository) SelectIDs(ctx context.Context, table string, filter dto.FilterGroup) ([]string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.SelectIDs", constant.OtelRepositoryScopeName, table))
	defer scope.End()

	where, args := BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s", constant.FieldID, table, where)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", table, err)
	}
	defer prepare.Close()

	ids := []string{}

	err = prepare.SelectContext(ctx, &ids, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to select ids (%s): %w", table, err)
	}

	return ids, nil
}

// Upsert writes rows in one statement, updating every non-key column on
// conflict. Rows may carry different column sets; absent columns are sent as
// NULL.
func (repo *Repository) Upsert(ctx context.Context, table string, conflictColumns []string, rows []Row) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Upsert", constant.OtelRepositoryScopeName, table))
	defer scope.End()

	if len(rows) == 0 {
		return nil
	}

	if len(conflictColumns) == 0 {
		return errRequiredConflict
	}

	query, args := BuildUpsertQuery(table, conflictColumns, rows)
	query = repo.db.Write.Rebind(query)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	scope.SetAttribute(constant.OtelTableAttributeKey, table)

	_, err := repo.db.Write.ExecContext(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert data (%s): %w", table, err)
	}

	return nil
}

func (repo *Repository) Delete(ctx context.Context, table string, filter dto.FilterGroup) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, table))
	defer scope.End()

	where, args := BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s %s", table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", table, err)
	}

	return nil
}

func BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

// BuildUpsertQuery renders INSERT ... ON CONFLICT DO UPDATE with "?" bind
// vars over the sorted union of the rows' columns. When user_id is not part
// of the conflict key a row never changes owner: the update only applies to
// a conflicting row of the same account.
func BuildUpsertQuery(table string, conflictColumns []string, rows []Row) (string, []any) {
	columns := Columns(rows)

	args := make([]any, 0, len(columns)*len(rows))
	values := make([]string, 0, len(rows))

	for _, row := range rows {
		placeholders := make([]string, len(columns))
		for idx, column := range columns {
			placeholders[idx] = "?"
			args = append(args, row[column])
		}

		values = append(values, "("+strings.Join(placeholders, ", ")+")")
	}

	owned := OwnedByAccount(columns, conflictColumns)
	updates := []string{}

	for _, column := range columns {
		if slices.Contains(conflictColumns, column) || (owned && column == constant.FieldUserID) {
			continue
		}

		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
	}

	action := "DO NOTHING"
	if len(updates) > 0 {
		action = "DO UPDATE SET " + strings.Join(updates, ", ")

		if owned {
			action += fmt.Sprintf(" WHERE %s.%s = EXCLUDED.%s", table, constant.FieldUserID, constant.FieldUserID)
		}
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES %s ON CONFLICT (%s) %s",
		table,
		strings.Join(columns, ", "),
		strings.Join(values, ", "),
		strings.Join(conflictColumns, ", "),
		action,
	)

	return query, args
}

// OwnedByAccount reports whether rows carry user_id outside the conflict key,
// which makes the upsert guard against taking over another account's row.
func OwnedByAccount(columns, conflictColumns []string) bool {
	return slices.Contains(columns, constant.FieldUserID) && !slices.Contains(conflictColumns, constant.FieldUserID)
}

// Columns returns the sorted union of column names across rows.
func Columns(rows []Row) []string {
	seen := map[string]struct{}{}

	for _, row := range rows {
		for column := range row {
			seen[column] = struct{}{}
		}
	}

	columns := make([]string, 0, len(seen))
	for column := range seen {
		columns = append(columns, column)
	}

	slices.Sort(columns)

	return columns
}

// normalize turns driver byte slices (json, numeric) into strings.
func normalize(row map[string]any) Row {
	for column, value := range row {
		if raw, ok := value.([]byte); ok {
			row[column] = string(raw)
		}
	}

	return row
}
