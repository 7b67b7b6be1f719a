package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrMalformed marks responses that arrived but could not be parsed into
// the expected JSON shape. Malformed calls are retried on the same budget
// as transient transport failures.
var ErrMalformed = errors.New("malformed LLM response")

// Error is a typed transport-level failure from the LLM endpoint.
type Error struct {
	// StatusCode is the HTTP status, or 0 for network-level failures.
	StatusCode int
	Message    string
	Retryable  bool
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("LLM request failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("LLM request failed: %s", e.Message)
}

// newStatusError classifies an HTTP status. 408, 429 and every 5xx are
// transient; other non-2xx codes fail the call immediately.
func newStatusError(statusCode int, body string) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    body,
		Retryable: statusCode == http.StatusRequestTimeout ||
			statusCode == http.StatusTooManyRequests ||
			statusCode >= 500,
	}
}

// IsTransient reports whether err is worth another attempt: rate limits,
// 5xx responses, network errors, and per-call timeouts.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr.Retryable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// A per-call deadline is transient; callers that hit their own
	// context deadline stop at the retry loop instead.
	return errors.Is(err, context.DeadlineExceeded)
}

// IsMalformed reports whether err came from an unparseable response body.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}
