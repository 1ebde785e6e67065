// Package apperr defines the closed set of error kinds the API surfaces.
// Handlers map each kind to a status code and response shape.
package apperr

import "fmt"

type Kind int

const (
	// Validation: malformed or missing required fields.
	Validation Kind = iota
	// NotFound: unknown blog id.
	NotFound
	// Policy: request violates a business rule, e.g. missing author image.
	Policy
	// Upstream: media store or document store failure.
	Upstream
)

type Error struct {
	Kind    Kind
	Message string
	// Fields maps field name to violation message. Set for Validation only.
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidation(fields map[string]string) *Error {
	return &Error{Kind: Validation, Message: "validation failed", Fields: fields}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

func NewPolicy(message string) *Error {
	return &Error{Kind: Policy, Message: message}
}

func NewUpstream(message string, err error) *Error {
	return &Error{Kind: Upstream, Message: message, Err: err}
}
