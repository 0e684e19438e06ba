package upstream

import (
	"errors"
	"fmt"

	"lexi/pkg/platform/sentinel"
)

// ErrorCategory normalises the ways an upstream call can fail.
type ErrorCategory string

const (
	// ErrorTimeout indicates the call exceeded the per-call deadline
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorTransport indicates the request never produced an HTTP response
	ErrorTransport ErrorCategory = "transport"

	// ErrorBadStatus indicates a non-2xx HTTP response
	ErrorBadStatus ErrorCategory = "bad_status"

	// ErrorBadData indicates a body that is not the expected JSON
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorEnvelope indicates a well-formed envelope reporting failure
	ErrorEnvelope ErrorCategory = "envelope"
)

// Error is returned for every failed upstream call.
type Error struct {
	Category   ErrorCategory
	Endpoint   string
	StatusCode int
	Message    string
	Underlying error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("upstream %s [%s]: %s", e.Endpoint, e.Category, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Underlying != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Underlying)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

// Is makes transport-level failures match sentinel.ErrUnavailable.
func (e *Error) Is(target error) bool {
	if target != sentinel.ErrUnavailable {
		return false
	}
	switch e.Category {
	case ErrorTimeout, ErrorTransport, ErrorBadStatus:
		return true
	}
	return false
}

// GetCategory extracts the category from err, or "" when err is not an upstream error.
func GetCategory(err error) ErrorCategory {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Category
	}
	return ""
}
