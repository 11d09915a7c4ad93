package networkmanager_test

import (
	"context"
	"fmt"
	"iter"
	"testing"

	"github.com/danderson/networkmanager"
	"github.com/danderson/networkmanager/bus"
	"github.com/danderson/networkmanager/nmtest"
	"github.com/godbus/dbus/v5"
)

// newClient returns a fake NetworkManager and a Client talking to
// it in-process.
func newClient(t *testing.T) (*nmtest.NetworkManager, networkmanager.Client) {
	t.Helper()
	fake := nmtest.New()
	conn := bus.New(fake, bus.Options{})
	return fake, networkmanager.New(conn)
}

type pathed interface {
	Path() dbus.ObjectPath
}

func paths[T pathed](seq iter.Seq[T]) []dbus.ObjectPath {
	ret := []dbus.ObjectPath{}
	for v := range seq {
		ret = append(ret, v.Path())
	}
	return ret
}

// must returns v, and panics if err is non-nil. The test binary
// reports the panic as a failure of the running test.
func must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("unexpected error: %v", err))
	}
	return v
}

func settings(id, typ, uuid string) nmtest.Settings {
	return nmtest.Settings{
		"connection": {
			"id":   dbus.MakeVariant(id),
			"type": dbus.MakeVariant(typ),
			"uuid": dbus.MakeVariant(uuid),
		},
	}
}

var ctx = context.Background()
