package seo

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no analysis exists for the requested id.
var ErrNotFound = errors.New("analysis not found")

// ErrProviderNotConfigured is returned from Analyze when no
// language-analysis provider was wired at startup. The caller should treat
// this as a configuration problem, not a transient failure.
var ErrProviderNotConfigured = errors.New("Gemini API key not configured. Please set GEMINI_API_KEY environment variable.")

// ValidationError rejects a request before any provider call. It is never
// worth retrying.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ProviderError reports a failed call to the language-analysis provider:
// network failure, non-2xx status, or a refused generation. The request may
// be retried by the caller; the service itself never retries.
type ProviderError struct {
	Provider   string
	StatusCode int
	Detail     string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error: %d - %s", e.Provider, e.StatusCode, e.Detail)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s provider error: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s provider error: %s", e.Provider, e.Detail)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
