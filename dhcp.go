package networkmanager

import (
	"context"
	"fmt"

	"github.com/danderson/networkmanager/bus"
	"github.com/danderson/networkmanager/internal/nmdbus"
	"github.com/godbus/dbus/v5"
)

// DHCP4Config is the DHCPv4 lease of a device.
type DHCP4Config struct{ obj bus.Object }

// Object returns the bus object behind c.
func (c DHCP4Config) Object() bus.Object { return c.obj }

// Options returns the options of the lease, keyed by option name.
func (c DHCP4Config) Options(ctx context.Context) (map[string]string, error) {
	raw, err := nmdbus.NewDHCP4Config(c.obj).Options(ctx)
	if err != nil {
		return nil, err
	}
	return dhcpOptions(raw), nil
}

// DHCP6Config is the DHCPv6 lease of a device.
type DHCP6Config struct{ obj bus.Object }

// Object returns the bus object behind c.
func (c DHCP6Config) Object() bus.Object { return c.obj }

// Options returns the options of the lease, keyed by option name.
func (c DHCP6Config) Options(ctx context.Context) (map[string]string, error) {
	raw, err := nmdbus.NewDHCP6Config(c.obj).Options(ctx)
	if err != nil {
		return nil, err
	}
	return dhcpOptions(raw), nil
}

// dhcpOptions flattens lease options to strings. NetworkManager
// sends all options as strings, other types are formatted.
func dhcpOptions(raw map[string]dbus.Variant) map[string]string {
	ret := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.Value().(string); ok {
			ret[k] = s
		} else {
			ret[k] = fmt.Sprint(v.Value())
		}
	}
	return ret
}
