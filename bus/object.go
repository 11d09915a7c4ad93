package bus

import (
	"cmp"
	"context"
	"encoding/xml"
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
)

// Object is an object exposed by a [Peer].
type Object struct {
	p    Peer
	path dbus.ObjectPath
}

// Conn returns the connection the object is reached through.
func (o Object) Conn() *Conn { return o.p.Conn() }

// Peer returns the peer offering the object.
func (o Object) Peer() Peer { return o.p }

// Path returns the object's path.
func (o Object) Path() dbus.ObjectPath { return o.path }

func (o Object) String() string {
	if o.path == "" {
		return fmt.Sprintf("%s:<no path>", o.p)
	}
	return fmt.Sprintf("%s:%s", o.p, o.path)
}

// Compare orders objects by peer name, then path.
func (o Object) Compare(other Object) int {
	if c := cmp.Compare(o.p.name, other.p.name); c != 0 {
		return c
	}
	return cmp.Compare(o.path, other.path)
}

// Child returns the object called name beneath o, as listed in
// the Children of o's introspection data.
func (o Object) Child(name string) Object {
	if o.path == "/" {
		return o.p.Object(dbus.ObjectPath("/" + name))
	}
	return o.p.Object(o.path + dbus.ObjectPath("/"+name))
}

// Interface returns the named interface on the object.
func (o Object) Interface(name string) Interface {
	return Interface{
		o:    o,
		name: name,
	}
}

// Introspect returns the object's introspection data.
func (o Object) Introspect(ctx context.Context) (*introspect.Node, error) {
	var resp string
	if err := o.Conn().call(ctx, o.p.name, o.path, "org.freedesktop.DBus.Introspectable", "Introspect", nil, []any{&resp}); err != nil {
		return nil, err
	}
	var ret introspect.Node
	if err := xml.Unmarshal([]byte(resp), &ret); err != nil {
		return nil, fmt.Errorf("parsing introspection data of %s: %w", o, err)
	}
	return &ret, nil
}
