package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrTimeout      = errors.New("request timeout")
	ErrTransport    = errors.New("transport error")
)

// Fixed codes of the specialised errors.
const (
	ConflictCode = http.StatusConflict
	NotFoundCode = http.StatusForbidden
)

// Error is a failed GameStack API call.
type Error struct {
	Code    int64
	Message string
	kind    error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gamestack error %d: %s", e.Code, e.kind)
	}
	return fmt.Sprintf("gamestack error %d: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.kind }

// NewError classifies code into a kind. 401 is ErrUnauthorized and 408 is
// ErrTimeout; every other code is ErrTransport.
func NewError(code int64, message string) *Error {
	kind := ErrTransport
	switch code {
	case http.StatusUnauthorized:
		kind = ErrUnauthorized
	case http.StatusRequestTimeout:
		kind = ErrTimeout
	}
	return &Error{Code: code, Message: message, kind: kind}
}

func NewUnauthorizedError(message string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: message, kind: ErrUnauthorized}
}

func NewConflictError(message string) *Error {
	return &Error{Code: ConflictCode, Message: message, kind: ErrConflict}
}

func NewNotFoundError(message string) *Error {
	return &Error{Code: NotFoundCode, Message: message, kind: ErrNotFound}
}

// WrapError gives err the wire shape with code. errors.Is still matches err
// and anything it wraps.
func WrapError(code int64, err error) *Error {
	return &Error{Code: code, Message: err.Error(), kind: err}
}

// StatusCode returns the code of an *Error anywhere in err's chain.
func StatusCode(err error) (int64, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}
