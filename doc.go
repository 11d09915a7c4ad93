// Package networkmanager is a typed client for NetworkManager's D-Bus
// API.
//
// A [Client] is the entry point. Construct one with [New] on a
// [bus.Conn], usually the system bus:
//
//	conn, err := bus.SystemBus(ctx, bus.Options{})
//	if err != nil {
//		return err
//	}
//	defer conn.Close()
//	nm := networkmanager.New(conn)
//
// Everything NetworkManager exports is reached from the Client:
// devices, access points, IP configuration, DHCP leases and saved
// connection profiles. Each is represented by a small comparable
// handle, such as [Device] or [Connection], that names a bus object.
// Handles hold no state. Every method makes a bus call and returns
// NetworkManager's current answer, so two calls may disagree if the
// system changed in between.
//
// Numeric codes are decoded into named types like [DeviceState] and
// [DeviceCapabilities]. Codes this package does not know produce an
// [UnsupportedTypeError], which matches [ErrUnsupportedType].
// Optional references, such as a device with no IPv4 configuration,
// are returned with an extra boolean that reports whether the value
// is present.
//
// Devices come in many kinds. [Device] exposes the properties all
// devices share. [Device.Specialize] returns a [TypedDevice] that
// adds the kind-specific ones, and the As methods such as
// [Device.AsWireless] check for one kind in particular.
//
// Connection profiles are managed through [Settings]. Profile
// contents are a [ConnectionSettings], a map of setting groups to
// key/value pairs in NetworkManager's own schema.
package networkmanager
