package bus

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/godbus/dbus/v5"
)

const ifaceProps = "org.freedesktop.DBus.Properties"

// Interface is one named interface of an [Object], such as
// org.freedesktop.NetworkManager.Device on a device object.
type Interface struct {
	o    Object
	name string
}

// Conn returns the connection the interface is reached through.
func (i Interface) Conn() *Conn { return i.o.Conn() }

// Peer returns the peer offering the interface.
func (i Interface) Peer() Peer { return i.o.Peer() }

// Object returns the object implementing the interface.
func (i Interface) Object() Object { return i.o }

// Name returns the interface name.
func (i Interface) Name() string { return i.name }

func (i Interface) String() string {
	name := i.name
	if name == "" {
		name = "<no interface>"
	}
	return i.o.String() + ":" + name
}

func (i Interface) props() Interface { return i.o.Interface(ifaceProps) }

// Call invokes method with args, and stores its return values in
// ret, which must be pointers matching the method's out arguments.
func (i Interface) Call(ctx context.Context, method string, args []any, ret ...any) error {
	return i.Conn().call(ctx, i.o.p.name, i.o.path, i.name, method, args, ret)
}

// storeTarget checks that ptr can receive a decoded value.
func storeTarget(ptr any) (reflect.Type, error) {
	v := reflect.ValueOf(ptr)
	switch {
	case !v.IsValid():
		return nil, errors.New("property target is nil")
	case v.Kind() != reflect.Pointer:
		return nil, fmt.Errorf("property target %s is not a pointer", v.Type())
	case v.IsNil():
		return nil, fmt.Errorf("property target %s is a nil pointer", v.Type())
	}
	return v.Type().Elem(), nil
}

// GetProperty reads property name into ptr. ptr's element type must
// be convertible from the property's wire type. A *any receives the
// value as decoded.
func (i Interface) GetProperty(ctx context.Context, name string, ptr any) error {
	want, err := storeTarget(ptr)
	if err != nil {
		return err
	}

	var v dbus.Variant
	if err := i.props().Call(ctx, "Get", []any{i.name, name}, &v); err != nil {
		return err
	}
	if p, ok := ptr.(*any); ok {
		*p = v.Value()
		return nil
	}
	if err := dbus.Store([]any{v.Value()}, ptr); err != nil {
		return &Error{
			Destination: i.o.p.name,
			Path:        i.o.path,
			Member:      i.name + "." + name,
			Err:         fmt.Errorf("cannot store %s property in %s: %w", v.Signature(), want, err),
		}
	}
	return nil
}

// SetProperty writes value to property name.
func (i Interface) SetProperty(ctx context.Context, name string, value any) error {
	return i.props().Call(ctx, "Set", []any{i.name, name, dbus.MakeVariant(value)})
}

// GetAllProperties returns every property of the interface, keyed
// by name.
func (i Interface) GetAllProperties(ctx context.Context) (map[string]any, error) {
	var all map[string]dbus.Variant
	if err := i.props().Call(ctx, "GetAll", []any{i.name}, &all); err != nil {
		return nil, err
	}
	ret := make(map[string]any, len(all))
	for k, v := range all {
		ret[k] = v.Value()
	}
	return ret, nil
}

// GetProperty reads property name of iface as a T.
func GetProperty[T any](ctx context.Context, iface Interface, name string) (T, error) {
	var ret T
	if err := iface.GetProperty(ctx, name, &ret); err != nil {
		var zero T
		return zero, err
	}
	return ret, nil
}
