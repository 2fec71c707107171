package client

import (
	"errors"
	"fmt"
)

// Kind classifies a client failure. The set is closed: every error
// produced by this module carries exactly one of these kinds.
type Kind string

const (
	// KindTransport represents network-level failures (DNS, connection,
	// timeout) before an HTTP status was received.
	KindTransport Kind = "transport"

	// KindHTTPStatus represents a non-2xx HTTP response. The body is not
	// inspected for these.
	KindHTTPStatus Kind = "http_status"

	// KindDecode represents a response body that is not valid JSON, does
	// not match the envelope shape, or violates the envelope contract
	// (success without a result payload).
	KindDecode Kind = "decode"

	// KindAPI represents a well-formed envelope reporting an
	// application-level failure. Message carries the server's text.
	KindAPI Kind = "api"

	// KindConfiguration represents invalid client setup, such as a
	// missing access token or an invalid page size.
	KindConfiguration Kind = "configuration"
)

// Error is the error type returned by all client operations.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("bonusly: request failed: %v", e.Err)
	case KindHTTPStatus:
		return fmt.Sprintf("bonusly: unexpected status %d: %s", e.StatusCode, e.Message)
	case KindDecode:
		if e.Err != nil {
			return fmt.Sprintf("bonusly: malformed response: %v", e.Err)
		}
		return fmt.Sprintf("bonusly: malformed response: %s", e.Message)
	case KindAPI:
		return fmt.Sprintf("bonusly: api error: %s", e.Message)
	case KindConfiguration:
		return fmt.Sprintf("bonusly: invalid configuration: %s", e.Message)
	default:
		return fmt.Sprintf("bonusly: %s", e.Message)
	}
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or the empty string when err was not
// produced by this package.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

func newTransportError(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

func newStatusError(code int, status string) *Error {
	return &Error{Kind: KindHTTPStatus, StatusCode: code, Message: status}
}

func newDecodeError(err error, message string) *Error {
	return &Error{Kind: KindDecode, Err: err, Message: message}
}

func newAPIError(message string) *Error {
	return &Error{Kind: KindAPI, Message: message}
}

// NewConfigurationError builds a configuration-kind error. Exported for
// the config loader and the pagination package, which report setup
// problems in the same taxonomy.
func NewConfigurationError(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}
