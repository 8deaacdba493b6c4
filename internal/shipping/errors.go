package shipping

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential is returned when a required API key is not configured.
	ErrMissingCredential = errors.New("language model API key is missing")

	// ErrEmptyResult is the error for a successful rate call that returned no rates.
	ErrEmptyResult = errors.New("No rates found for this shipment configuration.") //nolint:staticcheck // shown to the user verbatim

	// ErrUnknownField is returned for field edits naming a field that does not exist.
	ErrUnknownField = errors.New("unknown field")

	// ErrBlankText is returned when extraction is requested for blank input.
	ErrBlankText = errors.New("address text is required")
)

// ConfigError reports a configuration problem detected before any network call.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }

// TransportError wraps a network-level failure talking to an upstream.
type TransportError struct {
	Service string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s request: %v", e.Service, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RateRetrievalError is returned when the rates endpoint answers with a
// non-success status. Body holds the upstream error payload.
type RateRetrievalError struct {
	StatusCode int
	Body       string
}

func (e *RateRetrievalError) Error() string {
	return "shippo error: " + e.Body
}

// MalformedResponseError reports a body that is not valid JSON or lacks
// required fields.
type MalformedResponseError struct {
	Service string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s response malformed: %v", e.Service, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// ExtractionMessage is the single user-facing message for failed extractions.
const ExtractionMessage = "could not understand the address"

// ExtractionError normalizes every non-config extraction failure. The cause is
// kept for logs.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string { return ExtractionMessage }
func (e *ExtractionError) Unwrap() error { return e.Err }

type UnknownTargetError struct {
	Name string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown address target %q: must be sender or receiver", e.Name)
}
