package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ErrorCode classifies a field-level validation failure
type ErrorCode string

const (
	CodeRequiredFieldMissing ErrorCode = "RequiredFieldMissing"
	CodeInvalidFormat        ErrorCode = "InvalidFormat"
)

// ValidationError represents a validation error on a single field
type ValidationError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is the ordered list of field failures produced for one input
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Field returns the failure recorded for the named field, or nil
func (e ValidationErrors) Field(name string) *ValidationError {
	for _, fe := range e {
		if fe.Field == name {
			return fe
		}
	}
	return nil
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrEmployeeNotFound = &NotFoundError{Entity: "employee"}
)

// Upload Errors
var (
	ErrNoFileSupplied    = errors.New("no file part")
	ErrEmptyFilename     = errors.New("no selected file")
	ErrUnsupportedFormat = errors.New("invalid file format, please upload a CSV")
	ErrMalformedCSV      = errors.New("malformed CSV file")
	ErrFileTooLarge      = errors.New("uploaded file is too large")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError or a list of them
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var validationErrs ValidationErrors
	return errors.As(err, &validationErr) || errors.As(err, &validationErrs)
}

// AsValidationErrors extracts field failures from err. A single ValidationError is
// returned as a one-element list.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs, true
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ValidationErrors{validationErr}, true
	}
	return nil, false
}

// IsUpload checks if an error was raised while accepting an uploaded file
func IsUpload(err error) bool {
	return errors.Is(err, ErrNoFileSupplied) ||
		errors.Is(err, ErrEmptyFilename) ||
		errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrMalformedCSV) ||
		errors.Is(err, ErrFileTooLarge)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, code ErrorCode, message string) *ValidationError {
	return &ValidationError{Field: field, Code: code, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
