package domain

import (
	"errors"
	"net/http"
)

// ErrorKind classifies a failure for branching, independent of the human
// message carried alongside it.
type ErrorKind int

const (
	// KindValidation marks caller-correctable input errors.
	KindValidation ErrorKind = iota
	// KindAuth marks missing, malformed, invalid or expired credentials.
	KindAuth
	// KindEmailUnconfirmed marks a login attempt before email confirmation.
	KindEmailUnconfirmed
	// KindNotFound marks a resource that is absent or not owned by the
	// caller; the two are deliberately conflated.
	KindNotFound
	// KindUpstream marks a failed provider call.
	KindUpstream
	// KindConfig marks a missing deployment prerequisite.
	KindConfig
)

// Error is a domain error carrying both an HTTP status for the response and
// a kind for branching. Err, when set, holds the underlying cause for logs.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message}
}

func NewAuth(message string, err error) *Error {
	return &Error{Kind: KindAuth, Status: http.StatusUnauthorized, Message: message, Err: err}
}

func NewEmailUnconfirmed(message string) *Error {
	return &Error{Kind: KindEmailUnconfirmed, Status: http.StatusForbidden, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

func NewUpstream(status int, message string, err error) *Error {
	return &Error{Kind: KindUpstream, Status: status, Message: message, Err: err}
}

func NewConfig(message string, err error) *Error {
	return &Error{Kind: KindConfig, Status: http.StatusInternalServerError, Message: message, Err: err}
}

// StatusOf extracts the HTTP status carried by err, or fallback when err is
// not a domain error or carries no usable status.
func StatusOf(err error, fallback int) int {
	var de *Error
	if errors.As(err, &de) && de.Status != 0 {
		return de.Status
	}
	return fallback
}

// MessageOf extracts the human message carried by err, or fallback.
func MessageOf(err error, fallback string) string {
	var de *Error
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return fallback
}
