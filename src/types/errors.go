package types

import (
	"errors"
	"fmt"
)

// Error taxonomy for the service layer. Handlers pick the response code
// with errors.Is; the wrapped message is safe to return to clients.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
	ErrNotFound        = errors.New("not found")
	ErrInvalidIdentity = errors.New("invalid identity")
	ErrUnsupportedRole = errors.New("unsupported role")
)

func InvalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

func InvalidState(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, msg)
}

func NotFound(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

func UnsupportedRole(value string) error {
	return fmt.Errorf("%w: Unsupported role: %s", ErrUnsupportedRole, value)
}

// ClientError reports whether err belongs to the taxonomy, i.e. whether
// its message may be shown to the caller. Anything else renders as a
// generic 5xx with the detail kept in the logs.
func ClientError(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidIdentity) ||
		errors.Is(err, ErrUnsupportedRole)
}

// ClientMessage strips the taxonomy prefix so responses carry only the
// human-readable part, e.g. "Trip not found".
func ClientMessage(err error) string {
	for _, sentinel := range []error{ErrInvalidArgument, ErrInvalidState, ErrNotFound, ErrUnsupportedRole} {
		if errors.Is(err, sentinel) {
			return trimPrefix(err.Error(), sentinel.Error()+": ")
		}
	}
	if errors.Is(err, ErrInvalidIdentity) {
		return "Authentication required"
	}
	return err.Error()
}

func trimPrefix(s, prefix string) string {
	if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):]
	}
	return s
}
