package networkmanager

import (
	"context"
	"encoding/binary"
	"fmt"
	"net/netip"

	"github.com/danderson/networkmanager/bus"
	"github.com/danderson/networkmanager/internal/nmdbus"
	"github.com/godbus/dbus/v5"
)

// IP4Config is the IPv4 configuration of a device.
type IP4Config struct{ obj bus.Object }

func (c IP4Config) iface() nmdbus.IP4Config { return nmdbus.NewIP4Config(c.obj) }

// Object returns the bus object behind c.
func (c IP4Config) Object() bus.Object { return c.obj }

// IP4Address is an address assigned to a device.
type IP4Address struct {
	Prefix netip.Prefix
	// Attrs are the address's other attributes, keyed by name.
	Attrs map[string]dbus.Variant
}

// IP4Route is a route configured on a device.
type IP4Route struct {
	Dest netip.Prefix
	// NextHop is the route's gateway. It is the zero Addr for
	// directly connected routes.
	NextHop netip.Addr
	Metric  uint32
	// Attrs are the route's other attributes, keyed by name. They
	// are always empty for routes read with [IP4Config.Routes].
	Attrs map[string]dbus.Variant
}

// LegacyIP4Address is an address in NetworkManager's deprecated
// address format.
type LegacyIP4Address struct {
	Prefix  netip.Prefix
	Gateway netip.Addr
}

// unpackAddr decodes a legacy IPv4 address: network-order bytes
// read as a native-endian integer.
func unpackAddr(v uint32) netip.Addr {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

func unpackOptAddr(v uint32) netip.Addr {
	if v == 0 {
		return netip.Addr{}
	}
	return unpackAddr(v)
}

func prefixLen(v uint32) (int, error) {
	if v > 32 {
		return 0, fmt.Errorf("invalid IPv4 prefix length %d", v)
	}
	return int(v), nil
}

// attr pops the named attribute from m and stores it in ptr.
func attr(m map[string]dbus.Variant, name string, ptr any) (bool, error) {
	v, ok := m[name]
	if !ok {
		return false, nil
	}
	delete(m, name)
	if err := dbus.Store([]any{v.Value()}, ptr); err != nil {
		return false, fmt.Errorf("attribute %q: %w", name, err)
	}
	return true, nil
}

func parseAddrAttr(m map[string]dbus.Variant, name string) (netip.Addr, bool, error) {
	var s string
	ok, err := attr(m, name, &s)
	if err != nil || !ok {
		return netip.Addr{}, false, err
	}
	a, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false, fmt.Errorf("attribute %q: %w", name, err)
	}
	return a, true, nil
}

func parsePrefixAttrs(m map[string]dbus.Variant, addrKey string) (netip.Prefix, error) {
	a, ok, err := parseAddrAttr(m, addrKey)
	if err != nil {
		return netip.Prefix{}, err
	}
	if !ok {
		return netip.Prefix{}, fmt.Errorf("missing %q attribute", addrKey)
	}
	var bits uint32
	if ok, err := attr(m, "prefix", &bits); err != nil {
		return netip.Prefix{}, err
	} else if !ok {
		return netip.Prefix{}, fmt.Errorf("missing %q attribute", "prefix")
	}
	n, err := prefixLen(bits)
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(a, n), nil
}

func cloneAttrs(m map[string]dbus.Variant) map[string]dbus.Variant {
	ret := make(map[string]dbus.Variant, len(m))
	for k, v := range m {
		ret[k] = v
	}
	return ret
}

// AddressData returns the configuration's addresses.
func (c IP4Config) AddressData(ctx context.Context) ([]IP4Address, error) {
	raw, err := c.iface().AddressData(ctx)
	if err != nil {
		return nil, err
	}
	ret := make([]IP4Address, 0, len(raw))
	for _, m := range raw {
		attrs := cloneAttrs(m)
		p, err := parsePrefixAttrs(attrs, "address")
		if err != nil {
			return nil, fmt.Errorf("address data of %s: %w", c.obj, err)
		}
		ret = append(ret, IP4Address{Prefix: p, Attrs: attrs})
	}
	return ret, nil
}

// Addresses returns the configuration's addresses in the legacy
// format.
func (c IP4Config) Addresses(ctx context.Context) ([]LegacyIP4Address, error) {
	raw, err := c.iface().Addresses(ctx)
	if err != nil {
		return nil, err
	}
	ret := make([]LegacyIP4Address, 0, len(raw))
	for _, a := range raw {
		if len(a) != 3 {
			return nil, fmt.Errorf("addresses of %s: got %d fields, want 3", c.obj, len(a))
		}
		n, err := prefixLen(a[1])
		if err != nil {
			return nil, fmt.Errorf("addresses of %s: %w", c.obj, err)
		}
		ret = append(ret, LegacyIP4Address{
			Prefix:  netip.PrefixFrom(unpackAddr(a[0]), n),
			Gateway: unpackOptAddr(a[2]),
		})
	}
	return ret, nil
}

// Gateway returns the configuration's default gateway. It reports
// false if there is no gateway.
func (c IP4Config) Gateway(ctx context.Context) (netip.Addr, bool, error) {
	s, err := c.iface().Gateway(ctx)
	if err != nil || s == "" {
		return netip.Addr{}, false, err
	}
	a, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false, fmt.Errorf("gateway of %s: %w", c.obj, err)
	}
	return a, true, nil
}

// RouteData returns the configuration's routes.
func (c IP4Config) RouteData(ctx context.Context) ([]IP4Route, error) {
	raw, err := c.iface().RouteData(ctx)
	if err != nil {
		return nil, err
	}
	ret := make([]IP4Route, 0, len(raw))
	for _, m := range raw {
		attrs := cloneAttrs(m)
		p, err := parsePrefixAttrs(attrs, "dest")
		if err != nil {
			return nil, fmt.Errorf("route data of %s: %w", c.obj, err)
		}
		r := IP4Route{Dest: p, Attrs: attrs}
		if r.NextHop, _, err = parseAddrAttr(attrs, "next-hop"); err != nil {
			return nil, fmt.Errorf("route data of %s: %w", c.obj, err)
		}
		if _, err = attr(attrs, "metric", &r.Metric); err != nil {
			return nil, fmt.Errorf("route data of %s: %w", c.obj, err)
		}
		ret = append(ret, r)
	}
	return ret, nil
}

// Routes returns the configuration's routes in the legacy format.
func (c IP4Config) Routes(ctx context.Context) ([]IP4Route, error) {
	raw, err := c.iface().Routes(ctx)
	if err != nil {
		return nil, err
	}
	ret := make([]IP4Route, 0, len(raw))
	for _, r := range raw {
		if len(r) != 4 {
			return nil, fmt.Errorf("routes of %s: got %d fields, want 4", c.obj, len(r))
		}
		n, err := prefixLen(r[1])
		if err != nil {
			return nil, fmt.Errorf("routes of %s: %w", c.obj, err)
		}
		ret = append(ret, IP4Route{
			Dest:    netip.PrefixFrom(unpackAddr(r[0]), n),
			NextHop: unpackOptAddr(r[2]),
			Metric:  r[3],
			Attrs:   map[string]dbus.Variant{},
		})
	}
	return ret, nil
}

func unpackAddrs(raw []uint32) []netip.Addr {
	ret := make([]netip.Addr, 0, len(raw))
	for _, v := range raw {
		ret = append(ret, unpackAddr(v))
	}
	return ret
}

// Nameservers returns the configuration's DNS servers, read from
// the legacy format.
func (c IP4Config) Nameservers(ctx context.Context) ([]netip.Addr, error) {
	raw, err := c.iface().Nameservers(ctx)
	if err != nil {
		return nil, err
	}
	return unpackAddrs(raw), nil
}

// NameserverData returns the configuration's DNS servers.
func (c IP4Config) NameserverData(ctx context.Context) ([]netip.Addr, error) {
	raw, err := c.iface().NameserverData(ctx)
	if err != nil {
		return nil, err
	}
	ret := make([]netip.Addr, 0, len(raw))
	for _, m := range raw {
		a, ok, err := parseAddrAttr(cloneAttrs(m), "address")
		if err != nil {
			return nil, fmt.Errorf("nameserver data of %s: %w", c.obj, err)
		}
		if !ok {
			return nil, fmt.Errorf("nameserver data of %s: missing %q attribute", c.obj, "address")
		}
		ret = append(ret, a)
	}
	return ret, nil
}

// Domains returns the DNS domains the configuration's nameservers
// are authoritative for.
func (c IP4Config) Domains(ctx context.Context) ([]string, error) {
	return c.iface().Domains(ctx)
}

// Searches returns the configuration's DNS search domains.
func (c IP4Config) Searches(ctx context.Context) ([]string, error) {
	return c.iface().Searches(ctx)
}

// DNSOptions returns the configuration's resolver options.
func (c IP4Config) DNSOptions(ctx context.Context) ([]string, error) {
	return c.iface().DnsOptions(ctx)
}

// DNSPriority returns the relative priority of the configuration's
// DNS servers. Lower values are preferred.
func (c IP4Config) DNSPriority(ctx context.Context) (int32, error) {
	return c.iface().DnsPriority(ctx)
}

// WINSServers returns the configuration's WINS servers, read from
// the legacy format.
func (c IP4Config) WINSServers(ctx context.Context) ([]netip.Addr, error) {
	raw, err := c.iface().WinsServers(ctx)
	if err != nil {
		return nil, err
	}
	return unpackAddrs(raw), nil
}

// WINSServerData returns the configuration's WINS servers.
func (c IP4Config) WINSServerData(ctx context.Context) ([]netip.Addr, error) {
	raw, err := c.iface().WinsServerData(ctx)
	if err != nil {
		return nil, err
	}
	ret := make([]netip.Addr, 0, len(raw))
	for _, s := range raw {
		a, err := netip.ParseAddr(s)
		if err != nil {
			return nil, fmt.Errorf("WINS server data of %s: %w", c.obj, err)
		}
		ret = append(ret, a)
	}
	return ret, nil
}
