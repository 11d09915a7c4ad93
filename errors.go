package networkmanager

import (
	"errors"
	"fmt"

	"github.com/danderson/networkmanager/bus"
)

var (
	// ErrUnsupportedType matches errors for numeric codes that are
	// missing from this package's tables, usually because
	// NetworkManager is newer than this package.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrMissingDestination is returned by calls on handles
	// constructed without a bus name.
	ErrMissingDestination = bus.ErrMissingDestination

	// ErrUnsupportedMethod matches errors for operations the peer
	// does not implement.
	ErrUnsupportedMethod = bus.ErrUnsupportedMethod

	// ErrInvalidUUID is returned by [Settings.ConnectionByUUID] for
	// strings that are not UUIDs. No call is made in that case, so
	// the error is not a bus error.
	ErrInvalidUUID = errors.New("invalid connection UUID")
)

// UnsupportedTypeError is the error returned when NetworkManager
// reports an enumerated value that this package does not know.
type UnsupportedTypeError struct {
	// Type is the Go type that could not represent Value, for
	// example "DeviceType".
	Type string
	// Value is the raw code sent by NetworkManager.
	Value uint32
}

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported %s value %d", e.Type, e.Value)
}

func (e UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}
