package networkmanager

import (
	"context"
	"iter"

	"github.com/danderson/networkmanager/internal/nmdbus"
)

// WiredDevice is an Ethernet device.
type WiredDevice struct{ Device }

func (d WiredDevice) wired() nmdbus.DeviceWired { return nmdbus.NewDeviceWired(d.obj) }

// Carrier reports whether the device has a link.
func (d WiredDevice) Carrier(ctx context.Context) (bool, error) {
	return d.wired().Carrier(ctx)
}

// HardwareAddress returns the device's current MAC address.
func (d WiredDevice) HardwareAddress(ctx context.Context) (string, error) {
	return d.wired().HwAddress(ctx)
}

// PermanentHardwareAddress returns the device's factory hardware
// address.
func (d WiredDevice) PermanentHardwareAddress(ctx context.Context) (string, error) {
	return d.wired().PermHwAddress(ctx)
}

// Speed returns the device's link speed, in megabits per second.
func (d WiredDevice) Speed(ctx context.Context) (uint32, error) {
	return d.wired().Speed(ctx)
}

// S390Subchannels returns the IBM s390 subchannels of the device,
// if any.
func (d WiredDevice) S390Subchannels(ctx context.Context) ([]string, error) {
	return d.wired().S390Subchannels(ctx)
}

// GenericDevice is a device that NetworkManager does not manage in
// detail.
type GenericDevice struct{ Device }

func (d GenericDevice) generic() nmdbus.DeviceGeneric { return nmdbus.NewDeviceGeneric(d.obj) }

// HardwareAddress returns the device's hardware address.
func (d GenericDevice) HardwareAddress(ctx context.Context) (string, error) {
	return d.generic().HwAddress(ctx)
}

// TypeDescription returns a human-readable description of the
// device's kind.
func (d GenericDevice) TypeDescription(ctx context.Context) (string, error) {
	return d.generic().TypeDescription(ctx)
}

// BridgeDevice is a network bridge.
type BridgeDevice struct{ Device }

func (d BridgeDevice) bridge() nmdbus.DeviceBridge { return nmdbus.NewDeviceBridge(d.obj) }

// Carrier reports whether the bridge has carrier.
func (d BridgeDevice) Carrier(ctx context.Context) (bool, error) {
	return d.bridge().Carrier(ctx)
}

// HardwareAddress returns the bridge's MAC address.
func (d BridgeDevice) HardwareAddress(ctx context.Context) (string, error) {
	return d.bridge().HwAddress(ctx)
}

// Ports returns the devices attached to the bridge.
func (d BridgeDevice) Ports(ctx context.Context) (iter.Seq[Device], error) {
	paths, err := d.bridge().Slaves(ctx)
	if err != nil {
		return nil, err
	}
	return devices(d.obj, paths), nil
}

// VethDevice is one end of a virtual Ethernet pair.
type VethDevice struct{ Device }

// Peer returns the other end of the veth pair. It reports false if
// the peer is not known to NetworkManager.
func (d VethDevice) Peer(ctx context.Context) (Device, bool, error) {
	p, err := nmdbus.NewDeviceVeth(d.obj).Peer(ctx)
	if err != nil || p == "/" {
		return Device{}, false, err
	}
	return Device{obj: d.obj.Peer().Object(p)}, true, nil
}

// TeamDevice is a team of aggregated devices.
type TeamDevice struct{ Device }

func (d TeamDevice) team() nmdbus.DeviceTeam { return nmdbus.NewDeviceTeam(d.obj) }

// Carrier reports whether the team has carrier.
func (d TeamDevice) Carrier(ctx context.Context) (bool, error) {
	return d.team().Carrier(ctx)
}

// HardwareAddress returns the team's MAC address.
func (d TeamDevice) HardwareAddress(ctx context.Context) (string, error) {
	return d.team().HwAddress(ctx)
}

// Config returns the team's teamd configuration, as JSON.
func (d TeamDevice) Config(ctx context.Context) (string, error) {
	return d.team().Config(ctx)
}

// Ports returns the devices that are members of the team.
func (d TeamDevice) Ports(ctx context.Context) (iter.Seq[Device], error) {
	paths, err := d.team().Slaves(ctx)
	if err != nil {
		return nil, err
	}
	return devices(d.obj, paths), nil
}

// ModemDevice is a mobile broadband modem.
type ModemDevice struct{ Device }

func (d ModemDevice) modem() nmdbus.DeviceModem { return nmdbus.NewDeviceModem(d.obj) }

// ModemCapabilities returns the radio technologies the modem
// supports.
func (d ModemDevice) ModemCapabilities(ctx context.Context) (ModemCapabilities, error) {
	v, err := d.modem().ModemCapabilities(ctx)
	return ModemCapabilities(v), err
}

// CurrentCapabilities returns the radio technologies the modem
// supports without a firmware reload or reinitialization.
func (d ModemDevice) CurrentCapabilities(ctx context.Context) (ModemCapabilities, error) {
	v, err := d.modem().CurrentCapabilities(ctx)
	return ModemCapabilities(v), err
}

// DeviceID returns the modem's identifier, as reported by
// ModemManager.
func (d ModemDevice) DeviceID(ctx context.Context) (string, error) {
	return d.modem().DeviceId(ctx)
}

// OperatorCode returns the MCC-MNC code of the modem's network
// operator.
func (d ModemDevice) OperatorCode(ctx context.Context) (string, error) {
	return d.modem().OperatorCode(ctx)
}

// APN returns the access point name the modem is connected to.
func (d ModemDevice) APN(ctx context.Context) (string, error) {
	return d.modem().Apn(ctx)
}
