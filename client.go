package networkmanager

import (
	"context"
	"iter"
	"strings"

	"github.com/danderson/networkmanager/bus"
	"github.com/danderson/networkmanager/internal/nmdbus"
	"github.com/godbus/dbus/v5"
)

const (
	// BusName is the well-known bus name of NetworkManager.
	BusName = "org.freedesktop.NetworkManager"
	// Path is the object path of the NetworkManager manager object.
	Path dbus.ObjectPath = "/org/freedesktop/NetworkManager"
	// SettingsPath is the object path of the connection settings
	// service.
	SettingsPath dbus.ObjectPath = "/org/freedesktop/NetworkManager/Settings"
)

// Client is the NetworkManager manager object, the root of all
// other lookups.
type Client struct{ obj bus.Object }

// New returns a Client for the NetworkManager instance on conn.
func New(conn *bus.Conn) Client {
	return Interface(conn.Peer(BusName).Object(Path))
}

// Interface returns a Client for the manager interface on obj.
func Interface(obj bus.Object) Client {
	return Client{obj: obj}
}

func (c Client) iface() nmdbus.Manager { return nmdbus.NewManager(c.obj) }

// Object returns the bus object backing c.
func (c Client) Object() bus.Object { return c.obj }

// devices returns a sequence of Devices at paths, on the same peer
// as obj.
func devices(obj bus.Object, paths []dbus.ObjectPath) iter.Seq[Device] {
	return func(yield func(Device) bool) {
		for _, p := range paths {
			if !yield(Device{obj: obj.Peer().Object(p)}) {
				return
			}
		}
	}
}

// Devices returns the realized network devices known to
// NetworkManager.
func (c Client) Devices(ctx context.Context) (iter.Seq[Device], error) {
	paths, err := c.iface().GetDevices(ctx)
	if err != nil {
		return nil, err
	}
	return devices(c.obj, paths), nil
}

// AllDevices returns all network devices known to NetworkManager,
// including placeholders for software devices that do not exist
// yet.
func (c Client) AllDevices(ctx context.Context) (iter.Seq[Device], error) {
	paths, err := c.iface().GetAllDevices(ctx)
	if err != nil {
		return nil, err
	}
	return devices(c.obj, paths), nil
}

// DeviceByIPInterface returns the device whose IP interface is
// name.
func (c Client) DeviceByIPInterface(ctx context.Context, name string) (Device, error) {
	p, err := c.iface().GetDeviceByIpIface(ctx, name)
	if err != nil {
		return Device{}, err
	}
	return Device{obj: c.obj.Peer().Object(p)}, nil
}

// Reload reloads NetworkManager's configuration. ReloadAll reloads
// everything.
func (c Client) Reload(ctx context.Context, flags ReloadFlags) error {
	return c.iface().Reload(ctx, uint32(flags))
}

// NetworkingEnabled reports whether networking is enabled. When
// disabled, all interfaces are deactivated.
func (c Client) NetworkingEnabled(ctx context.Context) (bool, error) {
	return c.iface().NetworkingEnabled(ctx)
}

// Enable enables or disables networking.
func (c Client) Enable(ctx context.Context, enable bool) error {
	return c.iface().Enable(ctx, enable)
}

// Sleep puts NetworkManager to sleep or wakes it up.
func (c Client) Sleep(ctx context.Context, sleep bool) error {
	return c.iface().Sleep(ctx, sleep)
}

// WirelessEnabled reports whether Wi-Fi is enabled in software.
func (c Client) WirelessEnabled(ctx context.Context) (bool, error) {
	return c.iface().WirelessEnabled(ctx)
}

// SetWirelessEnabled enables or disables Wi-Fi in software.
func (c Client) SetWirelessEnabled(ctx context.Context, enabled bool) error {
	return c.iface().SetWirelessEnabled(ctx, enabled)
}

// WirelessHardwareEnabled reports the state of the wireless
// hardware switch.
func (c Client) WirelessHardwareEnabled(ctx context.Context) (bool, error) {
	return c.iface().WirelessHardwareEnabled(ctx)
}

// WWANEnabled reports whether mobile broadband is enabled in software.
func (c Client) WWANEnabled(ctx context.Context) (bool, error) {
	return c.iface().WwanEnabled(ctx)
}

// SetWWANEnabled enables or disables mobile broadband in software.
func (c Client) SetWWANEnabled(ctx context.Context, enabled bool) error {
	return c.iface().SetWwanEnabled(ctx, enabled)
}

// WWANHardwareEnabled reports the state of the mobile broadband
// hardware switch.
func (c Client) WWANHardwareEnabled(ctx context.Context) (bool, error) {
	return c.iface().WwanHardwareEnabled(ctx)
}

// Startup reports whether NetworkManager is still starting up.
func (c Client) Startup(ctx context.Context) (bool, error) {
	return c.iface().Startup(ctx)
}

// Version returns NetworkManager's version string, for example "1.46.0".
func (c Client) Version(ctx context.Context) (string, error) {
	return c.iface().Version(ctx)
}

// State returns NetworkManager's overall networking state.
func (c Client) State(ctx context.Context) (State, error) {
	v, err := c.iface().State(ctx)
	if err != nil {
		return 0, err
	}
	return decode("State", stateNames, v)
}

// Connectivity returns the last known network connectivity state.
func (c Client) Connectivity(ctx context.Context) (ConnectivityState, error) {
	v, err := c.iface().Connectivity(ctx)
	if err != nil {
		return 0, err
	}
	return decode("ConnectivityState", connectivityNames, v)
}

// CheckConnectivity rechecks connectivity and returns the result.
func (c Client) CheckConnectivity(ctx context.Context) (ConnectivityState, error) {
	v, err := c.iface().CheckConnectivity(ctx)
	if err != nil {
		return 0, err
	}
	return decode("ConnectivityState", connectivityNames, v)
}

// ConnectivityCheckEnabled reports whether connectivity checking is on.
func (c Client) ConnectivityCheckEnabled(ctx context.Context) (bool, error) {
	return c.iface().ConnectivityCheckEnabled(ctx)
}

// SetConnectivityCheckEnabled turns connectivity checking on or off.
func (c Client) SetConnectivityCheckEnabled(ctx context.Context, enabled bool) error {
	return c.iface().SetConnectivityCheckEnabled(ctx, enabled)
}

// Metered reports whether the primary connection is metered.
func (c Client) Metered(ctx context.Context) (Metered, error) {
	v, err := c.iface().Metered(ctx)
	if err != nil {
		return 0, err
	}
	return decode("Metered", meteredNames, v)
}

// PrimaryConnectionType returns the connection type of the primary
// connection, for example "802-11-wireless", or "" if there is no
// primary connection.
func (c Client) PrimaryConnectionType(ctx context.Context) (string, error) {
	return c.iface().PrimaryConnectionType(ctx)
}

// Permissions returns the caller's permissions for privileged
// operations, keyed by permission name. Values are "yes", "no" or
// "auth".
func (c Client) Permissions(ctx context.Context) (map[string]string, error) {
	return c.iface().GetPermissions(ctx)
}

// Logging returns NetworkManager's log level and enabled log
// domains.
func (c Client) Logging(ctx context.Context) (level string, domains []string, err error) {
	level, ds, err := c.iface().GetLogging(ctx)
	if err != nil {
		return "", nil, err
	}
	if ds != "" {
		domains = strings.Split(ds, ",")
	}
	return level, domains, nil
}

// SetLogging sets NetworkManager's log level and domains. An empty
// level leaves the level unchanged, and no domains leaves the
// domains unchanged.
func (c Client) SetLogging(ctx context.Context, level string, domains ...string) error {
	return c.iface().SetLogging(ctx, level, strings.Join(domains, ","))
}

// Settings returns the connection settings service of the same
// NetworkManager instance.
func (c Client) Settings() Settings {
	return Settings{obj: c.obj.Peer().Object(SettingsPath)}
}
