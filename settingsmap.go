package networkmanager

import (
	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
)

// ConnectionSettings are the settings of a connection profile,
// grouped into named settings such as "connection", "ipv4" or
// "802-11-wireless".
type ConnectionSettings map[string]map[string]dbus.Variant

// NewConnectionSettings returns settings for a new connection
// profile with the given name and connection type, and a freshly
// generated UUID.
func NewConnectionSettings(id, typ string) ConnectionSettings {
	ret := ConnectionSettings{}
	ret.Set("connection", "id", id)
	ret.Set("connection", "type", typ)
	ret.Set("connection", "uuid", uuid.NewString())
	return ret
}

// Get returns the value of key in group.
func (s ConnectionSettings) Get(group, key string) (any, bool) {
	v, ok := s[group][key]
	if !ok {
		return nil, false
	}
	return v.Value(), true
}

// Set sets key in group to value, creating group if needed.
func (s ConnectionSettings) Set(group, key string, value any) {
	g := s[group]
	if g == nil {
		g = map[string]dbus.Variant{}
		s[group] = g
	}
	g[key] = dbus.MakeVariant(value)
}

func (s ConnectionSettings) str(group, key string) string {
	v, _ := s.Get(group, key)
	ret, _ := v.(string)
	return ret
}

// ID returns the connection's human-readable name.
func (s ConnectionSettings) ID() string { return s.str("connection", "id") }

// UUID returns the connection's UUID.
func (s ConnectionSettings) UUID() string { return s.str("connection", "uuid") }

// Type returns the connection's type, for example "802-3-ethernet".
func (s ConnectionSettings) Type() string { return s.str("connection", "type") }

// Clone returns a deep copy of the setting groups of s. Values are
// shared.
func (s ConnectionSettings) Clone() ConnectionSettings {
	if s == nil {
		return nil
	}
	ret := make(ConnectionSettings, len(s))
	for group, vals := range s {
		g := make(map[string]dbus.Variant, len(vals))
		for k, v := range vals {
			g[k] = v
		}
		ret[group] = g
	}
	return ret
}

// AppliedConnection is the configuration applied to a device, as
// returned by [Device.AppliedConnection].
type AppliedConnection struct {
	Settings ConnectionSettings
	// Version identifies the applied configuration, for use with
	// [Device.Reapply].
	Version uint64
}
