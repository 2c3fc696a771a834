// Package error defines domain-specific errors for the BizSuite application.
package error

import "errors"

// Manual statement-entry domain errors.
var (
	// ErrManualEntryNotFound is returned when a manual entry is not found.
	ErrManualEntryNotFound = errors.New("manual entry not found")

	// ErrManualEntryCategoryUnknown is returned when a manual entry names a
	// category outside the taxonomy.
	ErrManualEntryCategoryUnknown = errors.New("category is not part of the taxonomy")

	// ErrManualEntryCategoryMismatch is returned when the entry's statement
	// type disagrees with the category's declared statement type.
	ErrManualEntryCategoryMismatch = errors.New("category does not belong to the given statement type")

	// ErrManualEntryAmountInvalid is returned when the amount is zero or negative.
	ErrManualEntryAmountInvalid = errors.New("amount must be a positive magnitude")

	// ErrManualEntryDateMissing is returned when the entry date is not provided.
	ErrManualEntryDateMissing = errors.New("date is required")

	// ErrManualEntryDescriptionTooLong is returned when the description exceeds the limit.
	ErrManualEntryDescriptionTooLong = errors.New("description is too long")
)

// ManualEntryErrorCode defines error codes for manual entry errors.
// Format: MNE-XXYYYY where XX is category and YYYY is specific error.
type ManualEntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeManualEntryCategoryUnknown  ManualEntryErrorCode = "MNE-010001"
	ErrCodeManualEntryCategoryMismatch ManualEntryErrorCode = "MNE-010002"
	ErrCodeManualEntryAmountInvalid    ManualEntryErrorCode = "MNE-010003"
	ErrCodeManualEntryDateMissing      ManualEntryErrorCode = "MNE-010004"
	ErrCodeManualEntryNotFound         ManualEntryErrorCode = "MNE-010005"
	ErrCodeManualEntryDescriptionLong  ManualEntryErrorCode = "MNE-010006"

	// Internal errors (99XXXX)
	ErrCodeManualEntryInternalError ManualEntryErrorCode = "MNE-990001"
)

// ManualEntryError represents a manual entry error with code and message.
type ManualEntryError struct {
	Code    ManualEntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ManualEntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ManualEntryError) Unwrap() error {
	return e.Err
}

// NewManualEntryError creates a new ManualEntryError with the given code and message.
func NewManualEntryError(code ManualEntryErrorCode, message string, err error) *ManualEntryError {
	return &ManualEntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
