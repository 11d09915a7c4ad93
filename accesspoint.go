package networkmanager

import (
	"context"

	"github.com/danderson/networkmanager/bus"
	"github.com/danderson/networkmanager/internal/nmdbus"
	"github.com/godbus/dbus/v5"
)

// AccessPoint is a Wi-Fi access point seen by a [WirelessDevice].
type AccessPoint struct{ obj bus.Object }

func (a AccessPoint) iface() nmdbus.AccessPoint { return nmdbus.NewAccessPoint(a.obj) }

// Object returns the bus object behind a.
func (a AccessPoint) Object() bus.Object { return a.obj }

// Path returns the access point's object path.
func (a AccessPoint) Path() dbus.ObjectPath { return a.obj.Path() }

func (a AccessPoint) String() string { return a.obj.String() }

// Flags returns the access point's basic capability flags.
func (a AccessPoint) Flags(ctx context.Context) (AccessPointFlags, error) {
	v, err := a.iface().Flags(ctx)
	return AccessPointFlags(v), err
}

// WPAFlags returns the access point's WPA security capabilities.
func (a AccessPoint) WPAFlags(ctx context.Context) (AccessPointSecurityFlags, error) {
	v, err := a.iface().WpaFlags(ctx)
	return AccessPointSecurityFlags(v), err
}

// RSNFlags returns the access point's WPA2/RSN security
// capabilities.
func (a AccessPoint) RSNFlags(ctx context.Context) (AccessPointSecurityFlags, error) {
	v, err := a.iface().RsnFlags(ctx)
	return AccessPointSecurityFlags(v), err
}

// SSID returns the access point's network name. SSIDs are raw
// bytes, and need not be valid UTF-8. Hidden networks have an empty
// SSID.
func (a AccessPoint) SSID(ctx context.Context) ([]byte, error) {
	v, err := a.iface().Ssid(ctx)
	if err != nil {
		return nil, err
	}
	if v == nil {
		v = []byte{}
	}
	return v, nil
}

// Frequency returns the access point's radio frequency, in MHz.
func (a AccessPoint) Frequency(ctx context.Context) (uint32, error) {
	return a.iface().Frequency(ctx)
}

// HardwareAddress returns the access point's BSSID.
func (a AccessPoint) HardwareAddress(ctx context.Context) (string, error) {
	return a.iface().HwAddress(ctx)
}

// Mode returns the mode the access point operates in.
func (a AccessPoint) Mode(ctx context.Context) (WifiMode, error) {
	v, err := a.iface().Mode(ctx)
	if err != nil {
		return 0, err
	}
	return decode("WifiMode", wifiModeNames, v)
}

// MaxBitrate returns the maximum bitrate the access point supports,
// in kilobits per second.
func (a AccessPoint) MaxBitrate(ctx context.Context) (uint32, error) {
	return a.iface().MaxBitrate(ctx)
}

// Strength returns the access point's signal quality, in percent.
func (a AccessPoint) Strength(ctx context.Context) (uint8, error) {
	return a.iface().Strength(ctx)
}

// LastSeen returns the time the access point was last seen in a
// scan. It reports false if the access point has never been seen.
func (a AccessPoint) LastSeen(ctx context.Context) (BootTime, bool, error) {
	v, err := a.iface().LastSeen(ctx)
	if err != nil {
		return 0, false, err
	}
	t, ok := bootSeconds(int64(v))
	return t, ok, nil
}
