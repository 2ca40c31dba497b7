package apperrors

import "errors"

// Resource errors
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrInvalidFormat      = errors.New("invalid token format")
)

// Authorization errors
var (
	ErrPermissionDenied = errors.New("permission denied")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Domain errors. Each not-found error wraps ErrResourceNotFound so the
// HTTP layer can map all of them to 404.
var (
	ErrUserNotFound       = &CustomError{Err: ErrResourceNotFound, Message: "User not found"}
	ErrCourseNotFound     = &CustomError{Err: ErrResourceNotFound, Message: "Course not found"}
	ErrLectureNotFound    = &CustomError{Err: ErrResourceNotFound, Message: "Lecture not found"}
	ErrEnrollmentNotFound = &CustomError{Err: ErrResourceNotFound, Message: "User is not enrolled in this course"}
	ErrFinalTestNotFound  = &CustomError{Err: ErrResourceNotFound, Message: "Final test not found"}

	ErrEmailAlreadyExists = &CustomError{Err: ErrResourceAlreadyExists, Message: "Email already exists"}
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewValidationError reports a missing or malformed input field.
func NewValidationError(field, message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message, Field: field}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// Message extracts the user-facing message of the first CustomError in the
// chain, or returns fallback.
func Message(err error, fallback string) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}

// Field extracts the offending field name, if any.
func Field(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Field
	}
	return ""
}
