// Package throttle gates advice requests on a minimum inter-request
// interval and a session error-count ceiling.
package throttle

import "time"

const (
	// MinInterval is the minimum gap between two advice requests in the
	// same session.
	MinInterval = 5 * time.Second

	// MaxErrors is the number of service errors a session may accumulate
	// before requests are blocked.
	MaxErrors = 3

	// ErrorCooldown is how long a session stays blocked after exceeding
	// MaxErrors. Once it elapses the caller resets the counter.
	ErrorCooldown = 15 * time.Minute
)

// State is the per-session throttle bookkeeping. The zero value means no
// requests and no errors yet. Check never mutates it; the caller stamps
// LastRequest after a successful request and ErrorCount/LastError after a
// service failure.
type State struct {
	ErrorCount  int       `json:"error_count"`
	LastRequest time.Time `json:"last_request"`
	LastError   time.Time `json:"last_error"`
}

// Decision is the outcome of a throttle check.
type Decision struct {
	Allowed bool

	// Reason is set on denial: "too many errors" or "rate limited".
	Reason string

	// RetryAfter is how long the caller should wait before retrying.
	// Zero when Allowed.
	RetryAfter time.Duration

	// ResetErrors signals that the error cooldown has elapsed and the
	// caller should zero State.ErrorCount before proceeding.
	ResetErrors bool
}

// Check decides whether a new advice request may proceed. It is a pure
// function of the state and the supplied clock reading.
func Check(st State, now time.Time) Decision {
	var reset bool
	if st.ErrorCount > MaxErrors {
		if st.LastError.IsZero() {
			// No failure timestamp to anchor the cooldown on; stay
			// blocked until the session ends.
			return Decision{Reason: "too many errors", RetryAfter: ErrorCooldown}
		}
		elapsed := now.Sub(st.LastError)
		if elapsed < ErrorCooldown {
			return Decision{Reason: "too many errors", RetryAfter: ErrorCooldown - elapsed}
		}
		reset = true
	}

	if !st.LastRequest.IsZero() {
		if elapsed := now.Sub(st.LastRequest); elapsed < MinInterval {
			return Decision{Reason: "rate limited", RetryAfter: MinInterval - elapsed, ResetErrors: reset}
		}
	}

	return Decision{Allowed: true, ResetErrors: reset}
}
