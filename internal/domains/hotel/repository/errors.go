package repository

import (
	"errors"
	"fmt"
	"reziro/shared/constant"
	"strings"
	"time"

	"github.com/lib/pq"
)

var (
	ErrNotAuthenticated = errors.New("no authenticated account")
	ErrMissingKey       = errors.New("row is missing its conflict key")
)

// TableError ties a failure to the table that produced it.
type TableError struct {
	Table string
	Err   error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("%s: %v", e.Table, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// SaveError aggregates the tables that failed during one save. Tables that
// succeeded in the same save stay persisted.
type SaveError struct {
	Failures []*TableError
}

func (e *SaveError) Error() string {
	return "failed to save: " + strings.Join(e.Tables(), ", ")
}

func (e *SaveError) Tables() []string {
	tables := make([]string, 0, len(e.Failures))
	for _, failure := range e.Failures {
		tables = append(tables, failure.Table)
	}

	return tables
}

func (e *SaveError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, failure := range e.Failures {
		errs = append(errs, failure)
	}

	return errs
}

// IsSchemaError reports whether err comes from a mismatch between the rows we
// send and the remote schema (unknown column or table, unparsable value).
func IsSchemaError(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeUndefinedColumn,
		constant.PqErrorCodeUndefinedTable,
		constant.PqErrorCodeInvalidTextRepr,
		constant.PqErrorCodeDatatypeMismatch,
		constant.PqErrorCodeInvalidColumnRefer:
		return true
	default:
		return false
	}
}

// SaveReport is the outcome of one full-state save.
type SaveReport struct {
	UserID     string            `json:"userId"`
	Saved      []string          `json:"saved"`
	Failed     []string          `json:"failed"`
	Errors     map[string]string `json:"errors,omitempty"`
	SchemaOnly bool              `json:"schemaOnly"`
	StartedAt  time.Time         `json:"startedAt"`
	FinishedAt time.Time         `json:"finishedAt"`
}

func (r SaveReport) OK() bool {
	return len(r.Failed) == 0
}
