package providers

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingAPIKey means neither the caller nor the server config supplied
// a credential. Callers check it with errors.Is.
var ErrMissingAPIKey = errors.New("no api key available")

// ErrorKind buckets upstream failures so the handlers can pick a
// human-readable message without inspecting provider internals.
type ErrorKind string

const (
	KindCredential   ErrorKind = "credential"
	KindNetwork      ErrorKind = "network"
	KindModel        ErrorKind = "model"
	KindUnclassified ErrorKind = "unclassified"
)

type ProviderError struct {
	Kind   ErrorKind
	Status string
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini %s: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("gemini: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Classify returns the failure bucket for err, KindUnclassified when err
// is not a ProviderError.
func Classify(err error) ErrorKind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnclassified
}

// kindFromStatus maps an HTTP status code plus response body to a bucket.
// Gemini reports bad keys as 400 INVALID_ARGUMENT with "API key" in the
// message, so the body text participates too.
func kindFromStatus(code int, body string) ErrorKind {
	lower := strings.ToLower(body)
	switch {
	case code == 401 || code == 403:
		return KindCredential
	case strings.Contains(lower, "api key") || strings.Contains(lower, "api_key"):
		return KindCredential
	case code == 404 || strings.Contains(lower, "model"):
		return KindModel
	default:
		return KindUnclassified
	}
}
