package application

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Sentinel errors for common conditions
var (
	ErrNotFound         = errors.New("not found")
	ErrModelUnavailable = errors.New("model unavailable: no API key configured")
	ErrEmptyInput       = errors.New("empty input")
	ErrEmptyResponse    = errors.New("empty model response")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// TransportError is a failed call to the model service: network, auth,
// timeout, or rate-limit wait failure.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError is a model response that is not the JSON shape the
// operation asked for.
type MalformedResponseError struct {
	Op      string
	Payload string // truncated excerpt
	Err     error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: malformed response: %v (payload: %q)", e.Op, e.Err, e.Payload)
	}
	return fmt.Sprintf("%s: malformed response (payload: %q)", e.Op, e.Payload)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// ReferentialIntegrityError is a placement that names an anchor which does
// not exist. It is logged and the placement dropped, never surfaced.
type ReferentialIntegrityError struct {
	Placement string
	AnchorID  string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("placement %q references unknown anchor %q", e.Placement, e.AnchorID)
}

func (e *ReferentialIntegrityError) Is(target error) bool {
	return target == ErrNotFound
}

// NewMalformed builds a MalformedResponseError, truncating the payload
func NewMalformed(op, payload string, err error) *MalformedResponseError {
	const maxPayload = 200
	if len(payload) > maxPayload {
		cut := maxPayload
		for cut > 0 && !utf8.RuneStart(payload[cut]) {
			cut--
		}
		payload = payload[:cut] + "..."
	}
	return &MalformedResponseError{Op: op, Payload: payload, Err: err}
}
