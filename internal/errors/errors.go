package errors

import (
	"errors"
	"fmt"
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

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ExternalError represents a failed call to a remote collaborator (document
// intelligence, file storage). Nothing is retried; the failure is surfaced
// to the caller as-is.
type ExternalError struct {
	Service string
	Message string
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

// Entity Not Found Errors
var (
	ErrProjectNotFound       = &NotFoundError{Entity: "project"}
	ErrRoomNotFound          = &NotFoundError{Entity: "room"}
	ErrFurnitureNotFound     = &NotFoundError{Entity: "furniture record"}
	ErrFurnitureItemNotFound = &NotFoundError{Entity: "furniture item"}
)

// Business Logic Errors
var (
	ErrRaggedFloorMapping = errors.New("floor mapping rows must share the same floor columns")
	ErrEmptyFloorMapping  = errors.New("floor mapping requires at least one room type and one floor")
	ErrNegativeFloorCount = errors.New("floor mapping counts cannot be negative")
)

// Document Intelligence Errors
var (
	ErrDocIntelAPIKeyNotSet   = &ConfigurationError{Message: "DOCINTEL_API_KEY environment variable not set"}
	ErrNoJSONInResponse       = errors.New("no valid JSON found in analysis response")
	ErrInvalidFurnitureShape  = errors.New("analysis response missing furniture array")
	ErrInvalidRoomMatrixShape = errors.New("analysis response missing room array")
	ErrFileProcessingFailed   = errors.New("uploaded file failed to process")
)

// File Storage Errors
var (
	ErrStorageNotConfigured = &ConfigurationError{Message: "file storage URL or key not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsExternal checks if an error is an ExternalError
func IsExternal(err error) bool {
	var extErr *ExternalError
	return errors.As(err, &extErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewExternalError creates a new ExternalError
func NewExternalError(service, message string) error {
	return &ExternalError{Service: service, Message: message}
}
