package networkmanager

import (
	"context"

	"github.com/danderson/networkmanager/bus"
	"github.com/danderson/networkmanager/internal/nmdbus"
	"github.com/godbus/dbus/v5"
)

// Connection is a connection profile: a set of settings that can be
// applied to a device.
type Connection struct{ obj bus.Object }

func (c Connection) iface() nmdbus.SettingsConnection { return nmdbus.NewSettingsConnection(c.obj) }

// Object returns the bus object behind c.
func (c Connection) Object() bus.Object { return c.obj }

// Path returns the profile's object path.
func (c Connection) Path() dbus.ObjectPath { return c.obj.Path() }

func (c Connection) String() string { return c.obj.String() }

// Settings returns the connection's settings. Secrets are never
// included, use [Connection.Secrets] to get them.
func (c Connection) Settings(ctx context.Context) (ConnectionSettings, error) {
	s, err := c.iface().GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return ConnectionSettings(s), nil
}

// Secrets returns all of the connection's secrets.
func (c Connection) Secrets(ctx context.Context) (ConnectionSettings, error) {
	return c.SecretsFor(ctx, "")
}

// SecretsFor returns the connection's secrets in the named setting
// group. An empty group returns all secrets.
func (c Connection) SecretsFor(ctx context.Context, group string) (ConnectionSettings, error) {
	s, err := c.iface().GetSecrets(ctx, group)
	if err != nil {
		return nil, err
	}
	return ConnectionSettings(s), nil
}

// ClearSecrets deletes the connection's secrets from storage.
func (c Connection) ClearSecrets(ctx context.Context) error {
	return c.iface().ClearSecrets(ctx)
}

// Update replaces the connection's settings, and saves them to
// disk. Secrets missing from settings are kept.
func (c Connection) Update(ctx context.Context, settings ConnectionSettings) error {
	return c.iface().Update(ctx, settings)
}

// UpdateUnsaved replaces the connection's settings without saving
// them to disk.
func (c Connection) UpdateUnsaved(ctx context.Context, settings ConnectionSettings) error {
	return c.iface().UpdateUnsaved(ctx, settings)
}

// Update2 replaces the connection's settings according to flags. A
// nil settings leaves the settings unchanged, which with
// [UpdateToDisk] saves the current settings.
func (c Connection) Update2(ctx context.Context, settings ConnectionSettings, flags UpdateFlags, args map[string]dbus.Variant) (map[string]dbus.Variant, error) {
	if settings == nil {
		settings = ConnectionSettings{}
	}
	if args == nil {
		args = map[string]dbus.Variant{}
	}
	return c.iface().Update2(ctx, settings, uint32(flags), args)
}

// Save saves the connection's current settings to disk.
func (c Connection) Save(ctx context.Context) error {
	return c.iface().Save(ctx)
}

// Delete deletes the connection profile.
func (c Connection) Delete(ctx context.Context) error {
	return c.iface().Delete(ctx)
}

// IsSaved reports whether the connection's current settings are
// saved to disk.
func (c Connection) IsSaved(ctx context.Context) (bool, error) {
	unsaved, err := c.iface().Unsaved(ctx)
	if err != nil {
		return false, err
	}
	return !unsaved, nil
}

// Flags returns the profile's flags, such as whether it is unsaved.
func (c Connection) Flags(ctx context.Context) (ConnectionFlags, error) {
	v, err := c.iface().Flags(ctx)
	return ConnectionFlags(v), err
}

// Filename returns the file the connection is stored in, or "" if
// it is not stored on disk.
func (c Connection) Filename(ctx context.Context) (string, error) {
	return c.iface().Filename(ctx)
}
