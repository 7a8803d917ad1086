package advisor

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse reports that the generative service answered without
// any text. Fatal for the current request.
var ErrEmptyResponse = errors.New("empty response from generative service")

// ServiceUnavailableError reports a transport- or service-level failure
// of the generative call. Recoverable: the caller substitutes
// AdvisoryText for the advice content and increments the session error
// counter.
type ServiceUnavailableError struct {
	Err error
}

func (e *ServiceUnavailableError) Error() string {
	return fmt.Sprintf("generative service unavailable: %v", e.Err)
}

func (e *ServiceUnavailableError) Unwrap() error { return e.Err }

// AdvisoryText is the user-facing message shown in place of the advice
// document when the service is unavailable.
func (e *ServiceUnavailableError) AdvisoryText() string {
	return fmt.Sprintf("API Error: Service unavailable. Please try again later. Details: %v", e.Err)
}

// UnexpectedError wraps any failure outside the known taxonomy. Fatal for
// the current request; the caller sets the session error flag and renders
// a generic error panel.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected advisor error: %v", e.Err)
}

func (e *UnexpectedError) Unwrap() error { return e.Err }
