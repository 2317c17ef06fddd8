package client

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an API failure by its cause
type ErrorKind int

const (
	// KindValidation covers 4xx responses, the request was rejected
	KindValidation ErrorKind = iota
	// KindServer covers 5xx responses, the request may or may not have
	// taken effect
	KindServer
	// KindNetwork covers transport failures before a response arrived
	KindNetwork
)

// String returns a human readable name for the kind
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Error represents a failed API call. Detail carries the server's detail
// string verbatim when one was provided, or a generic summary otherwise.
// Fields holds per-field messages when the server returned a field map.
type Error struct {
	Op     string
	Kind   ErrorKind
	Status int
	Detail string
	Fields map[string]string
}

// Error renders the failure as "<op>: <detail>"
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

// IsValidation reports whether err is an API error caused by a rejected
// request (4xx)
func IsValidation(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindValidation
}

// IsServer reports whether err is an API error caused by a server-side
// failure (5xx)
func IsServer(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindServer
}

// IsNetwork reports whether err is an API error caused by a transport
// failure
func IsNetwork(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNetwork
}
