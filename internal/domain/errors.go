package domain

import "fmt"

// InvalidInputError reports a caller contract violation on a single input
// field. Loan-side calculators fail hard with this error; callers are
// expected to catch it and surface the message inline.
type InvalidInputError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// NewInvalidInput creates an InvalidInputError for the given field.
func NewInvalidInput(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}

// ValidationResult collects soft validation output for the projection
// engines. Errors gate calculation; warnings (unusually high values) do not.
type ValidationResult struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Valid reports whether calculation may proceed.
func (vr ValidationResult) Valid() bool {
	return len(vr.Errors) == 0
}

// AddError appends a blocking error message.
func (vr *ValidationResult) AddError(format string, args ...any) {
	vr.Errors = append(vr.Errors, fmt.Sprintf(format, args...))
}

// AddWarning appends a non-blocking warning message.
func (vr *ValidationResult) AddWarning(format string, args ...any) {
	vr.Warnings = append(vr.Warnings, fmt.Sprintf(format, args...))
}
