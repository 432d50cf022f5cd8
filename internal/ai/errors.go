package ai

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned before any network call is attempted when no
// Gemini credential is configured.
var ErrMissingAPIKey = errors.New("ai: missing Gemini API key")

// UpstreamError reports a non-success HTTP status from the generation endpoint.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ai: upstream error: %d - %s", e.StatusCode, e.Body)
}

// MalformedResponseError reports a response that could not be parsed against
// the expected JSON contract. Raw holds the cleaned response text for
// diagnosis; it is logged by the provider, never silently coerced.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ai: malformed response: %v", e.Err)
	}
	return "ai: malformed response"
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
