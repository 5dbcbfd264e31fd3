package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// FieldIssue is a single machine-usable validation failure.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Status int
	Code   string
	Err    error
	Issues []FieldIssue
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Issues) > 0 {
		return e.Issues[0].Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Validation wraps field-level issues; the first issue's message becomes the
// error string surfaced to callers.
func Validation(issues []FieldIssue) *Error {
	return &Error{Status: http.StatusBadRequest, Code: "validation_failed", Issues: issues}
}

// Conflict reports a uniqueness violation. The original API used 400 rather
// than 409 for duplicate usernames, and clients depend on that.
func Conflict(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: "conflict", Err: errors.New(msg)}
}

// Unauthorized carries a fixed message so a failed login never reveals whether
// the username exists.
func Unauthorized() *Error {
	return &Error{Status: http.StatusUnauthorized, Code: "unauthorized", Err: errors.New("Unauthorized")}
}

// NotFound covers both a genuinely missing row and a row owned by another
// tenant. The two cases are indistinguishable on the wire.
func NotFound(entity string) *Error {
	return &Error{Status: http.StatusNotFound, Code: "not_found", Err: fmt.Errorf("%s not found", entity)}
}

// From extracts an *Error from err, or nil when err carries no API status.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
