package errs

import (
	"fmt"
	"net/http"
)

// Code classifies an error for transport mapping.
type Code int

// Set of possible error codes.
const (
	OK Code = iota
	Unknown
	InvalidArgument
	NotFound
	AlreadyExists
	PermissionDenied
	FailedPrecondition
	Unauthenticated
	Unavailable
	Internal
	// InternalOnlyLog carries detail that must reach the logs but never
	// the client; the error middleware rewrites it to a plain Internal.
	InternalOnlyLog
)

var codeNames = map[Code]string{
	OK:                 "ok",
	Unknown:            "unknown",
	InvalidArgument:    "invalid_argument",
	NotFound:           "not_found",
	AlreadyExists:      "already_exists",
	PermissionDenied:   "permission_denied",
	FailedPrecondition: "failed_precondition",
	Unauthenticated:    "unauthenticated",
	Unavailable:        "unavailable",
	Internal:           "internal",
	InternalOnlyLog:    "internal",
}

// String returns the code name used on the wire.
func (c Code) String() string {
	name, ok := codeNames[c]
	if !ok {
		return fmt.Sprintf("code(%d)", int(c))
	}
	return name
}

// MarshalText implements encoding.TextMarshaler so responses carry the
// code name rather than the number.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func httpStatus(c Code) int {
	switch c {
	case OK:
		return http.StatusOK
	case InvalidArgument, FailedPrecondition:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case AlreadyExists:
		return http.StatusConflict
	case PermissionDenied:
		return http.StatusForbidden
	case Unauthenticated:
		return http.StatusUnauthorized
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
