package writefreely

import (
	"errors"
	"fmt"
	"strings"
)

// AuthenticationRequiredError is returned before any network I/O when an
// operation that needs credentials is called on an anonymous client.
type AuthenticationRequiredError struct {
	Operation string
}

func (e *AuthenticationRequiredError) Error() string {
	if e.Operation == "" {
		return "authentication required: client has no access token"
	}
	return fmt.Sprintf("authentication required for %s: client has no access token", e.Operation)
}

// ValidationError indicates invalid input caught locally, without a request.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// HTTPError is returned when the instance answers with a 4xx or 5xx status.
// Body holds the raw response; it is not interpreted as an envelope.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s %s returned status %d", e.Method, e.Path, e.StatusCode)
	if body := strings.TrimSpace(string(e.Body)); body != "" {
		if len(body) > 200 {
			body = body[:200] + "..."
		}
		msg += ": " + body
	}
	return msg
}

// MalformedResponseError is returned when a success response cannot be
// unwrapped: the body is not JSON, lacks the "data" field, or the data does
// not have the shape the operation expects.
type MalformedResponseError struct {
	Path   string
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response from %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed response from %s: %s", e.Path, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// IsAuthRequired returns true if err is or wraps an AuthenticationRequiredError.
func IsAuthRequired(err error) bool {
	var target *AuthenticationRequiredError
	return errors.As(err, &target)
}

// IsValidation returns true if err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsMalformed returns true if err is or wraps a MalformedResponseError.
func IsMalformed(err error) bool {
	var target *MalformedResponseError
	return errors.As(err, &target)
}

// IsHTTPStatus returns true if err is or wraps an HTTPError with the given status code.
func IsHTTPStatus(err error, code int) bool {
	var target *HTTPError
	return errors.As(err, &target) && target.StatusCode == code
}
