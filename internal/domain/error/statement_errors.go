// Package error defines domain-specific errors for the BizSuite application.
package error

import "errors"

// Statement engine domain errors.
var (
	// ErrUnknownCategory is returned when an entry references a category
	// code absent from the taxonomy.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidDateRange is returned when the end date is before the start date.
	ErrInvalidDateRange = errors.New("end date must not be before start date")

	// ErrInvalidStatementType is returned when the statement type is not pl, bs, or cf.
	ErrInvalidStatementType = errors.New("statement type must be: pl, bs, or cf")

	// ErrSourceUnavailable is returned by a source adapter whose underlying
	// fetch failed. The aggregation continues without it.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// StatementErrorCode defines error codes for statement engine errors.
// Format: STM-XXYYYY where XX is category and YYYY is specific error.
type StatementErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStartDate     StatementErrorCode = "STM-010001"
	ErrCodeMissingEndDate       StatementErrorCode = "STM-010002"
	ErrCodeInvalidDateRange     StatementErrorCode = "STM-010003"
	ErrCodeInvalidStatementType StatementErrorCode = "STM-010004"
	ErrCodeInvalidDateFormat    StatementErrorCode = "STM-010005"
	ErrCodeUnknownCategory      StatementErrorCode = "STM-010006"

	// Source errors (02XXXX)
	ErrCodeSourceUnavailable StatementErrorCode = "STM-020001"

	// Internal errors (99XXXX)
	ErrCodeStatementInternalError StatementErrorCode = "STM-990001"
)

// StatementError represents a statement engine error with code and message.
type StatementError struct {
	Code    StatementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatementError) Unwrap() error {
	return e.Err
}

// NewStatementError creates a new StatementError with the given code and message.
func NewStatementError(code StatementErrorCode, message string, err error) *StatementError {
	return &StatementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
