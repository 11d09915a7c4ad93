package networkmanager

import (
	"context"
	"iter"

	"github.com/danderson/networkmanager/bus"
	"github.com/danderson/networkmanager/internal/nmdbus"
	"github.com/godbus/dbus/v5"
)

// WirelessDevice is a Wi-Fi device.
type WirelessDevice struct{ Device }

func (d WirelessDevice) wifi() nmdbus.DeviceWireless { return nmdbus.NewDeviceWireless(d.obj) }

// Bitrate returns the device's current bitrate, in kilobits per
// second.
func (d WirelessDevice) Bitrate(ctx context.Context) (uint32, error) {
	return d.wifi().Bitrate(ctx)
}

// Mode returns the device's operating mode.
func (d WirelessDevice) Mode(ctx context.Context) (WifiMode, error) {
	v, err := d.wifi().Mode(ctx)
	if err != nil {
		return 0, err
	}
	return decode("WifiMode", wifiModeNames, v)
}

// Capabilities returns the device's Wi-Fi capabilities.
func (d WirelessDevice) Capabilities(ctx context.Context) (WirelessCapabilities, error) {
	v, err := d.wifi().WirelessCapabilities(ctx)
	return WirelessCapabilities(v), err
}

// HardwareAddress returns the device's current MAC address.
func (d WirelessDevice) HardwareAddress(ctx context.Context) (string, error) {
	return d.wifi().HwAddress(ctx)
}

// PermanentHardwareAddress returns the device's factory hardware
// address.
func (d WirelessDevice) PermanentHardwareAddress(ctx context.Context) (string, error) {
	return d.wifi().PermHwAddress(ctx)
}

// RequestScan asks the device to scan for access points.
func (d WirelessDevice) RequestScan(ctx context.Context) error {
	return d.wifi().RequestScan(ctx, map[string]dbus.Variant{})
}

// RequestScanSSIDs asks the device to scan for access points,
// actively probing for the given SSIDs. SSIDs are raw bytes, and
// need not be valid UTF-8.
func (d WirelessDevice) RequestScanSSIDs(ctx context.Context, ssids ...[]byte) error {
	opts := map[string]dbus.Variant{}
	if len(ssids) > 0 {
		opts["ssids"] = dbus.MakeVariant(ssids)
	}
	return d.wifi().RequestScan(ctx, opts)
}

func accessPoints(obj bus.Object, paths []dbus.ObjectPath) iter.Seq[AccessPoint] {
	return func(yield func(AccessPoint) bool) {
		for _, p := range paths {
			if !yield(AccessPoint{obj: obj.Peer().Object(p)}) {
				return
			}
		}
	}
}

// AccessPoints returns the access points visible to the device,
// excluding those that hide their SSID.
func (d WirelessDevice) AccessPoints(ctx context.Context) (iter.Seq[AccessPoint], error) {
	paths, err := d.wifi().GetAccessPoints(ctx)
	if err != nil {
		return nil, err
	}
	return accessPoints(d.obj, paths), nil
}

// AllAccessPoints returns all access points visible to the device,
// including hidden networks.
func (d WirelessDevice) AllAccessPoints(ctx context.Context) (iter.Seq[AccessPoint], error) {
	paths, err := d.wifi().GetAllAccessPoints(ctx)
	if err != nil {
		return nil, err
	}
	return accessPoints(d.obj, paths), nil
}

// ActiveAccessPoint returns the access point the device is
// associated with. It reports false if the device is not
// associated.
func (d WirelessDevice) ActiveAccessPoint(ctx context.Context) (AccessPoint, bool, error) {
	p, err := d.wifi().ActiveAccessPoint(ctx)
	if err != nil || p == "/" {
		return AccessPoint{}, false, err
	}
	return AccessPoint{obj: d.obj.Peer().Object(p)}, true, nil
}

// LastScan returns the time of the device's last completed scan. It
// reports false if the device has never scanned.
func (d WirelessDevice) LastScan(ctx context.Context) (BootTime, bool, error) {
	v, err := d.wifi().LastScan(ctx)
	if err != nil {
		return 0, false, err
	}
	t, ok := bootMillis(v)
	return t, ok, nil
}
