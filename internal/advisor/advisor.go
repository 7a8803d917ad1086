// Package advisor wraps the external generative service behind a fixed
// career-counselor prompt and a typed error taxonomy.
package advisor

import "context"

// Temperature is the fixed sampling temperature for every advice request.
const Temperature = 0.7

// Advisor generates a career advice document from a validated profile.
// Implementations return the raw markdown-formatted text on success, or
// one of the package error types: *ServiceUnavailableError when the
// service itself fails, ErrEmptyResponse when it returns no text, and
// *UnexpectedError for anything else.
type Advisor interface {
	RequestAdvice(ctx context.Context, interests, skills, education, goals string) (string, error)
}
