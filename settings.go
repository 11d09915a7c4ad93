package networkmanager

import (
	"context"
	"fmt"
	"iter"

	"github.com/danderson/networkmanager/bus"
	"github.com/danderson/networkmanager/internal/nmdbus"
	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
)

// Settings is NetworkManager's store of connection profiles.
type Settings struct{ obj bus.Object }

func (s Settings) iface() nmdbus.Settings { return nmdbus.NewSettings(s.obj) }

// Object returns the bus object behind s.
func (s Settings) Object() bus.Object { return s.obj }

func connections(obj bus.Object, paths []dbus.ObjectPath) iter.Seq[Connection] {
	return func(yield func(Connection) bool) {
		for _, p := range paths {
			if !yield(Connection{obj: obj.Peer().Object(p)}) {
				return
			}
		}
	}
}

// Connections returns all connection profiles.
func (s Settings) Connections(ctx context.Context) (iter.Seq[Connection], error) {
	paths, err := s.iface().ListConnections(ctx)
	if err != nil {
		return nil, err
	}
	return connections(s.obj, paths), nil
}

// ConnectionByUUID returns the connection profile with the given
// UUID.
//
// id is checked locally first. If it is not a UUID, the returned
// error matches [ErrInvalidUUID] and nothing is sent to
// NetworkManager. Otherwise errors come from the bus.
func (s Settings) ConnectionByUUID(ctx context.Context, id string) (Connection, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Connection{}, fmt.Errorf("%w %q: %v", ErrInvalidUUID, id, err)
	}
	p, err := s.iface().GetConnectionByUuid(ctx, id)
	if err != nil {
		return Connection{}, err
	}
	return Connection{obj: s.obj.Peer().Object(p)}, nil
}

// AddConnection adds a connection profile and saves it to disk.
func (s Settings) AddConnection(ctx context.Context, settings ConnectionSettings) (Connection, error) {
	p, err := s.iface().AddConnection(ctx, settings)
	if err != nil {
		return Connection{}, err
	}
	return Connection{obj: s.obj.Peer().Object(p)}, nil
}

// AddConnectionUnsaved adds a connection profile without saving it
// to disk.
func (s Settings) AddConnectionUnsaved(ctx context.Context, settings ConnectionSettings) (Connection, error) {
	p, err := s.iface().AddConnectionUnsaved(ctx, settings)
	if err != nil {
		return Connection{}, err
	}
	return Connection{obj: s.obj.Peer().Object(p)}, nil
}

// ReloadConnections reloads all connection profiles from disk.
func (s Settings) ReloadConnections(ctx context.Context) error {
	ok, err := s.iface().ReloadConnections(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("reloading connections of %s failed", s.obj)
	}
	return nil
}

// Hostname returns the persistent hostname.
func (s Settings) Hostname(ctx context.Context) (string, error) {
	return s.iface().Hostname(ctx)
}

// SaveHostname saves the persistent hostname. An empty hostname
// clears it.
func (s Settings) SaveHostname(ctx context.Context, hostname string) error {
	return s.iface().SaveHostname(ctx, hostname)
}

// CanModify reports whether connection profiles can be added or
// modified.
func (s Settings) CanModify(ctx context.Context) (bool, error) {
	return s.iface().CanModify(ctx)
}
