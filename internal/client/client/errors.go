package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// DefaultMessage is shown when neither the server nor the caller supplied
// anything better.
const DefaultMessage = "connection error"

type Kind int

const (
	// KindTransport: the request never produced a response (network, timeout).
	KindTransport Kind = iota + 1
	// KindHTTP: the server answered with a non-2xx status.
	KindHTTP
	// KindDecode: a 2xx body could not be decoded.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	}
	return "unknown"
}

// ErrorPayload is the loosely shaped error body sent by the API.
type ErrorPayload struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Text returns message, then error, then "".
func (p *ErrorPayload) Text() string {
	if p == nil {
		return ""
	}
	if p.Message != "" {
		return p.Message
	}
	return p.Error
}

// Error describes a failed request.
type Error struct {
	Op      string // e.g. "POST /login"
	Kind    Kind
	Status  int
	Payload *ErrorPayload
	// Message is the user-facing text, filled in by Normalize.
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "request error"
	}
	if text := e.Payload.Text(); text != "" {
		return fmt.Sprintf("%s: %s error: %s", e.Op, e.Kind, text)
	}
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func transportError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindTransport, Err: fmt.Errorf("%w: %w", ErrUnavailable, err)}
}

func statusError(op string, status int, payload *ErrorPayload) *Error {
	var cause error
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		cause = ErrUnauthorized
	case http.StatusNotFound:
		cause = ErrNotFound
	default:
		cause = fmt.Errorf("%w %d", ErrUnexpectedStatus, status)
	}
	return &Error{Op: op, Kind: KindHTTP, Status: status, Payload: payload, Err: cause}
}

// Normalize returns err as an *Error whose Message is the server payload
// text when present and fallback otherwise. Errors that did not come from
// this package (e.g. a cancelled context) become transport errors.
// Normalize(nil, ...) is nil.
func Normalize(err error, fallback string) error {
	if err == nil {
		return nil
	}
	if fallback == "" {
		fallback = DefaultMessage
	}

	var e *Error
	if !errors.As(err, &e) {
		e = &Error{Kind: KindTransport, Err: err}
		if !errors.Is(err, context.Canceled) {
			e.Err = fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
	}

	out := *e
	if text := e.Payload.Text(); text != "" {
		out.Message = text
	} else {
		out.Message = fallback
	}
	return &out
}

// Message returns the user-facing text of err, or "" when err carries none.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Message != "" {
			return e.Message
		}
		return e.Payload.Text()
	}
	return ""
}
