package networkmanager

import (
	"context"
	"iter"

	"github.com/danderson/networkmanager/bus"
	"github.com/danderson/networkmanager/internal/nmdbus"
	"github.com/godbus/dbus/v5"
)

// Device is a network device managed by NetworkManager.
//
// Device provides the properties and methods common to all
// devices. Use [Device.Specialize] or one of the As methods to
// access kind-specific functionality.
type Device struct{ obj bus.Object }

// DeviceAt returns the Device at path on the same NetworkManager
// instance as c.
func (c Client) DeviceAt(path dbus.ObjectPath) Device {
	return Device{obj: c.obj.Peer().Object(path)}
}

func (d Device) iface() nmdbus.Device { return nmdbus.NewDevice(d.obj) }

// Object returns the bus object backing d.
func (d Device) Object() bus.Object { return d.obj }

// Path returns the object path of d.
func (d Device) Path() dbus.ObjectPath { return d.obj.Path() }

func (d Device) String() string { return d.obj.String() }

// Type returns the kind of device.
func (d Device) Type(ctx context.Context) (DeviceType, error) {
	v, err := d.iface().DeviceType(ctx)
	if err != nil {
		return 0, err
	}
	return decode("DeviceType", deviceTypeNames, v)
}

// State returns the current state of the device.
func (d Device) State(ctx context.Context) (DeviceState, error) {
	v, err := d.iface().State(ctx)
	if err != nil {
		return 0, err
	}
	return decode("DeviceState", deviceStateNames, v)
}

// StateAndReason is a device state, and the reason the device
// entered that state.
type StateAndReason struct {
	State  DeviceState
	Reason DeviceStateReason
}

// StateReason returns the device's current state and the reason for
// the most recent state change, as a consistent pair.
func (d Device) StateReason(ctx context.Context) (StateAndReason, error) {
	v, err := d.iface().StateReason(ctx)
	if err != nil {
		return StateAndReason{}, err
	}
	st, err := decode("DeviceState", deviceStateNames, v.F0)
	if err != nil {
		return StateAndReason{}, err
	}
	r, err := decode("DeviceStateReason", deviceStateReasonNames, v.F1)
	if err != nil {
		return StateAndReason{}, err
	}
	return StateAndReason{st, r}, nil
}

// Reapply attempts to update the device's active connection with
// settings, without deactivating the device.
//
// version must be the version returned by
// [Device.AppliedConnection]. If the applied connection changed
// since then, NetworkManager rejects the update. Version 0 skips
// the check.
func (d Device) Reapply(ctx context.Context, settings ConnectionSettings, version uint64) error {
	return d.iface().Reapply(ctx, settings, version, 0)
}

// AppliedConnection returns the settings currently applied to the
// device, which may differ from the connection profile they came
// from.
func (d Device) AppliedConnection(ctx context.Context) (AppliedConnection, error) {
	s, v, err := d.iface().GetAppliedConnection(ctx, 0)
	if err != nil {
		return AppliedConnection{}, err
	}
	return AppliedConnection{Settings: ConnectionSettings(s), Version: v}, nil
}

// Disconnect deactivates the device, and blocks automatic
// reactivation until the user or an application activates it
// again.
func (d Device) Disconnect(ctx context.Context) error {
	return d.iface().Disconnect(ctx)
}

// Delete deletes a software device. Hardware devices cannot be
// deleted.
func (d Device) Delete(ctx context.Context) error {
	return d.iface().Delete(ctx)
}

// Udi returns the operating-system specific identifier of the
// device.
func (d Device) Udi(ctx context.Context) (string, error) {
	return d.iface().Udi(ctx)
}

// UdevPath returns the device's path as exposed by the udev ID_PATH
// property.
func (d Device) UdevPath(ctx context.Context) (string, error) {
	return d.iface().Path(ctx)
}

// Interface returns the name of the device's control interface.
func (d Device) Interface(ctx context.Context) (string, error) {
	return d.iface().Interface(ctx)
}

// IPInterface returns the name of the device's data interface, if
// it has one.
func (d Device) IPInterface(ctx context.Context) (string, error) {
	return d.iface().IpInterface(ctx)
}

// Driver returns the name of the device's kernel driver.
func (d Device) Driver(ctx context.Context) (string, error) {
	return d.iface().Driver(ctx)
}

// DriverVersion returns the version of the device's driver.
func (d Device) DriverVersion(ctx context.Context) (string, error) {
	return d.iface().DriverVersion(ctx)
}

// FirmwareVersion returns the version of the device's firmware.
func (d Device) FirmwareVersion(ctx context.Context) (string, error) {
	return d.iface().FirmwareVersion(ctx)
}

// Capabilities returns the device's generic capabilities.
func (d Device) Capabilities(ctx context.Context) (DeviceCapabilities, error) {
	v, err := d.iface().Capabilities(ctx)
	return DeviceCapabilities(v), err
}

// IP4Config returns the device's current IPv4 configuration. It
// reports false if the device has no IPv4 configuration.
func (d Device) IP4Config(ctx context.Context) (IP4Config, bool, error) {
	p, err := d.iface().Ip4Config(ctx)
	if err != nil || p == "/" {
		return IP4Config{}, false, err
	}
	return IP4Config{obj: d.obj.Peer().Object(p)}, true, nil
}

// DHCP4Config returns the device's DHCPv4 lease information. It
// reports false if the device has no DHCPv4 lease.
func (d Device) DHCP4Config(ctx context.Context) (DHCP4Config, bool, error) {
	p, err := d.iface().Dhcp4Config(ctx)
	if err != nil || p == "/" {
		return DHCP4Config{}, false, err
	}
	return DHCP4Config{obj: d.obj.Peer().Object(p)}, true, nil
}

// DHCP6Config returns the device's DHCPv6 lease information. It
// reports false if the device has no DHCPv6 lease.
func (d Device) DHCP6Config(ctx context.Context) (DHCP6Config, bool, error) {
	p, err := d.iface().Dhcp6Config(ctx)
	if err != nil || p == "/" {
		return DHCP6Config{}, false, err
	}
	return DHCP6Config{obj: d.obj.Peer().Object(p)}, true, nil
}

// Managed reports whether NetworkManager manages the device.
func (d Device) Managed(ctx context.Context) (bool, error) {
	return d.iface().Managed(ctx)
}

// SetManaged sets whether NetworkManager manages the device.
func (d Device) SetManaged(ctx context.Context, managed bool) error {
	return d.iface().SetManaged(ctx, managed)
}

// Autoconnect reports whether the device may activate connections
// automatically.
func (d Device) Autoconnect(ctx context.Context) (bool, error) {
	return d.iface().Autoconnect(ctx)
}

// SetAutoconnect sets whether the device may activate connections on its own.
func (d Device) SetAutoconnect(ctx context.Context, autoconnect bool) error {
	return d.iface().SetAutoconnect(ctx, autoconnect)
}

// FirmwareMissing reports whether the device failed to start
// because its firmware is missing.
func (d Device) FirmwareMissing(ctx context.Context) (bool, error) {
	return d.iface().FirmwareMissing(ctx)
}

// PluginMissing reports whether the NetworkManager plugin for the
// device's kind is not installed.
func (d Device) PluginMissing(ctx context.Context) (bool, error) {
	return d.iface().NmPluginMissing(ctx)
}

// AvailableConnections returns the connection profiles that could
// be activated on the device.
func (d Device) AvailableConnections(ctx context.Context) (iter.Seq[Connection], error) {
	paths, err := d.iface().AvailableConnections(ctx)
	if err != nil {
		return nil, err
	}
	return connections(d.obj, paths), nil
}

// PhysicalPortID returns the identifier of the physical port the
// device is attached to. It reports false if the device does not
// expose one.
func (d Device) PhysicalPortID(ctx context.Context) (string, bool, error) {
	v, err := d.iface().PhysicalPortId(ctx)
	if err != nil || v == "" {
		return "", false, err
	}
	return v, true, nil
}

// MTU returns the device's current MTU.
func (d Device) MTU(ctx context.Context) (uint32, error) {
	return d.iface().Mtu(ctx)
}

// Metered reports whether traffic through the device is metered.
func (d Device) Metered(ctx context.Context) (Metered, error) {
	v, err := d.iface().Metered(ctx)
	if err != nil {
		return 0, err
	}
	return decode("Metered", meteredNames, v)
}

// LLDPNeighbors returns the LLDP neighbors seen on the device. Each
// neighbor is a map of LLDP attribute names to values.
func (d Device) LLDPNeighbors(ctx context.Context) ([]map[string]dbus.Variant, error) {
	return d.iface().LldpNeighbors(ctx)
}

// Real reports whether the device exists, as opposed to being a
// placeholder for a software device that has not been created yet.
func (d Device) Real(ctx context.Context) (bool, error) {
	return d.iface().Real(ctx)
}

// IP4Connectivity returns the device's IPv4 connectivity state.
func (d Device) IP4Connectivity(ctx context.Context) (ConnectivityState, error) {
	v, err := d.iface().Ip4Connectivity(ctx)
	if err != nil {
		return 0, err
	}
	return decode("ConnectivityState", connectivityNames, v)
}

// IP6Connectivity returns the device's IPv6 connectivity state.
func (d Device) IP6Connectivity(ctx context.Context) (ConnectivityState, error) {
	v, err := d.iface().Ip6Connectivity(ctx)
	if err != nil {
		return 0, err
	}
	return decode("ConnectivityState", connectivityNames, v)
}

// InterfaceFlags returns the kernel interface flags of the device.
func (d Device) InterfaceFlags(ctx context.Context) (DeviceInterfaceFlags, error) {
	v, err := d.iface().InterfaceFlags(ctx)
	return DeviceInterfaceFlags(v), err
}

// HardwareAddress returns the device's current hardware address.
func (d Device) HardwareAddress(ctx context.Context) (string, error) {
	return d.iface().HwAddress(ctx)
}
