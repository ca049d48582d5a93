package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingColumn is returned when a critical column cannot be resolved
	// in a required report. Wrapped by MissingColumnError.
	ErrMissingColumn = errors.New("critical column not found")

	// ErrEmptyReport is returned when an uploaded report has no data rows
	ErrEmptyReport = errors.New("report contains no data rows")

	// ErrUnsupportedFormat is returned when a report file cannot be decoded
	// as CSV, TSV or a workbook
	ErrUnsupportedFormat = errors.New("unsupported report format")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)

// MissingColumnError is the fatal failure for a report whose join key (or
// other critical column) could not be discovered. It carries the keywords
// searched and every header actually seen, so the operator can diagnose an
// upstream format change instead of guessing. Proceeding with a guessed key
// would silently corrupt the merge, which is strictly worse than stopping.
type MissingColumnError struct {
	Source   SourceKind
	Role     ColumnRole
	Keywords []string
	Headers  []string
}

// Error implements the error interface
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: no %s column matched keywords [%s]; headers seen: [%s]",
		e.Source, e.Role,
		strings.Join(e.Keywords, ", "),
		strings.Join(e.Headers, ", "))
}

// Unwrap lets callers test with errors.Is(err, ErrMissingColumn)
func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}
