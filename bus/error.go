package bus

import (
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
)

var (
	// ErrMissingDestination is returned by calls on handles that
	// have no bus name. Such calls fail before anything is sent.
	ErrMissingDestination = errors.New("no destination bus name")

	// ErrUnsupportedMethod matches errors from peers that do not
	// implement the requested method or property.
	ErrUnsupportedMethod = errors.New("method not supported by peer")
)

// Error is the error returned when a call fails.
//
// The cause is available via Unwrap. It is a [CallError] when the
// peer replied with an error.
type Error struct {
	// Destination is the bus name the call was addressed to.
	Destination string
	// Path is the object the call was addressed to.
	Path dbus.ObjectPath
	// Member is the fully qualified method name, e.g.
	// "org.freedesktop.NetworkManager.Device.Disconnect".
	Member string
	// Err is the cause of the failure.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("calling %s on %s%s: %v", e.Member, e.Destination, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CallError is the error returned from failed method calls, when the
// peer replies with an error.
type CallError struct {
	// Name is the error name provided by the remote peer.
	Name string
	// Detail is the human-readable explanation of what went wrong.
	Detail string
}

func (e CallError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("call error %s", e.Name)
	}
	return fmt.Sprintf("call error %s: %s", e.Name, e.Detail)
}

// Is reports whether e is an "unknown method" style error, for
// errors.Is(err, ErrUnsupportedMethod).
func (e CallError) Is(target error) bool {
	if target != ErrUnsupportedMethod {
		return false
	}
	switch e.Name {
	case "org.freedesktop.DBus.Error.UnknownMethod",
		"org.freedesktop.DBus.Error.UnknownInterface",
		"org.freedesktop.DBus.Error.UnknownProperty",
		"org.freedesktop.DBus.Error.NotSupported":
		return true
	}
	return false
}

// remoteError converts godbus error replies into CallErrors, and
// passes other errors through.
func remoteError(err error) error {
	var de dbus.Error
	if errors.As(err, &de) {
		return callError(de)
	}
	var pde *dbus.Error
	if errors.As(err, &pde) && pde != nil {
		return callError(*pde)
	}
	return err
}

func callError(e dbus.Error) CallError {
	ret := CallError{Name: e.Name}
	if len(e.Body) > 0 {
		if s, ok := e.Body[0].(string); ok {
			ret.Detail = s
		}
	}
	return ret
}
