package networkmanager

import (
	"context"
)

// TypedDevice is a device specialized to its kind. It is one of
// [WirelessDevice], [WiredDevice], [GenericDevice], [BridgeDevice],
// [VethDevice], [TeamDevice], [ModemDevice] or [UnsupportedDevice].
type TypedDevice interface {
	// Generic returns the device's common functionality.
	Generic() Device
	// Kind returns the device type that selected this
	// specialization.
	Kind() DeviceType
}

// Generic returns d.
func (d Device) Generic() Device { return d }

// UnsupportedDevice is a device of a known kind for which this
// package has no specialized type.
type UnsupportedDevice struct {
	Device
	kind DeviceType
}

// Kind returns the device's type.
func (d UnsupportedDevice) Kind() DeviceType { return d.kind }

func (WirelessDevice) Kind() DeviceType { return DeviceTypeWifi }
func (WiredDevice) Kind() DeviceType    { return DeviceTypeEthernet }
func (GenericDevice) Kind() DeviceType  { return DeviceTypeGeneric }
func (BridgeDevice) Kind() DeviceType   { return DeviceTypeBridge }
func (VethDevice) Kind() DeviceType     { return DeviceTypeVeth }
func (TeamDevice) Kind() DeviceType     { return DeviceTypeTeam }
func (ModemDevice) Kind() DeviceType    { return DeviceTypeModem }

// Specialize returns d specialized according to its device type.
//
// Known device types without a specialized type yield an
// [UnsupportedDevice]. Device types unknown to this package yield
// an [UnsupportedTypeError].
func (d Device) Specialize(ctx context.Context) (TypedDevice, error) {
	t, err := d.Type(ctx)
	if err != nil {
		return nil, err
	}
	switch t {
	case DeviceTypeWifi:
		return WirelessDevice{d}, nil
	case DeviceTypeEthernet:
		return WiredDevice{d}, nil
	case DeviceTypeGeneric:
		return GenericDevice{d}, nil
	case DeviceTypeBridge:
		return BridgeDevice{d}, nil
	case DeviceTypeVeth:
		return VethDevice{d}, nil
	case DeviceTypeTeam:
		return TeamDevice{d}, nil
	case DeviceTypeModem:
		return ModemDevice{d}, nil
	default:
		return UnsupportedDevice{d, t}, nil
	}
}

// is reports whether d's raw device type code is want. Codes
// unknown to this package never match.
func (d Device) is(ctx context.Context, want DeviceType) (bool, error) {
	v, err := d.iface().DeviceType(ctx)
	if err != nil {
		return false, err
	}
	return DeviceType(v) == want, nil
}

// AsWireless returns d as a WirelessDevice. It reports false if d
// is not a Wi-Fi device.
func (d Device) AsWireless(ctx context.Context) (WirelessDevice, bool, error) {
	ok, err := d.is(ctx, DeviceTypeWifi)
	if !ok {
		return WirelessDevice{}, false, err
	}
	return WirelessDevice{d}, true, nil
}

// AsWired returns d as a WiredDevice. It reports false if d is not
// an Ethernet device.
func (d Device) AsWired(ctx context.Context) (WiredDevice, bool, error) {
	ok, err := d.is(ctx, DeviceTypeEthernet)
	if !ok {
		return WiredDevice{}, false, err
	}
	return WiredDevice{d}, true, nil
}

// AsGeneric returns d as a GenericDevice, if it is one.
func (d Device) AsGeneric(ctx context.Context) (GenericDevice, bool, error) {
	ok, err := d.is(ctx, DeviceTypeGeneric)
	if !ok {
		return GenericDevice{}, false, err
	}
	return GenericDevice{d}, true, nil
}

// AsBridge returns d as a BridgeDevice, if it is one.
func (d Device) AsBridge(ctx context.Context) (BridgeDevice, bool, error) {
	ok, err := d.is(ctx, DeviceTypeBridge)
	if !ok {
		return BridgeDevice{}, false, err
	}
	return BridgeDevice{d}, true, nil
}

// AsVeth returns d as a VethDevice, if it is one.
func (d Device) AsVeth(ctx context.Context) (VethDevice, bool, error) {
	ok, err := d.is(ctx, DeviceTypeVeth)
	if !ok {
		return VethDevice{}, false, err
	}
	return VethDevice{d}, true, nil
}

// AsTeam returns d as a TeamDevice, if it is one.
func (d Device) AsTeam(ctx context.Context) (TeamDevice, bool, error) {
	ok, err := d.is(ctx, DeviceTypeTeam)
	if !ok {
		return TeamDevice{}, false, err
	}
	return TeamDevice{d}, true, nil
}

// AsModem returns d as a ModemDevice, if it is one.
func (d Device) AsModem(ctx context.Context) (ModemDevice, bool, error) {
	ok, err := d.is(ctx, DeviceTypeModem)
	if !ok {
		return ModemDevice{}, false, err
	}
	return ModemDevice{d}, true, nil
}
