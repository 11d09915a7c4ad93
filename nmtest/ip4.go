package nmtest

import (
	"encoding/binary"
	"fmt"
	"net/netip"

	"github.com/godbus/dbus/v5"
)

// packAddr returns addr in the legacy IPv4 wire form: the address
// bytes in network order, read as a native-endian uint32.
func packAddr(addr string) uint32 {
	if addr == "" {
		return 0
	}
	a := netip.MustParseAddr(addr).As4()
	return binary.NativeEndian.Uint32(a[:])
}

func ip4Props(cfg IP4Config) map[string]any {
	var (
		addrs     = [][]uint32{}
		addrData  = []map[string]dbus.Variant{}
		routes    = [][]uint32{}
		routeData = []map[string]dbus.Variant{}
		ns        = []uint32{}
		nsData    = []map[string]dbus.Variant{}
		wins      = []uint32{}
	)
	for _, a := range cfg.Addresses {
		p := netip.MustParsePrefix(a)
		addrs = append(addrs, []uint32{packAddr(p.Addr().String()), uint32(p.Bits()), packAddr(cfg.Gateway)})
		addrData = append(addrData, map[string]dbus.Variant{
			"address": dbus.MakeVariant(p.Addr().String()),
			"prefix":  dbus.MakeVariant(uint32(p.Bits())),
		})
	}
	for _, r := range cfg.Routes {
		routes = append(routes, []uint32{packAddr(r.Dest), r.Prefix, packAddr(r.NextHop), r.Metric})
		d := map[string]dbus.Variant{
			"dest":   dbus.MakeVariant(r.Dest),
			"prefix": dbus.MakeVariant(r.Prefix),
			"metric": dbus.MakeVariant(r.Metric),
		}
		if r.NextHop != "" {
			d["next-hop"] = dbus.MakeVariant(r.NextHop)
		}
		routeData = append(routeData, d)
	}
	for _, n := range cfg.Nameservers {
		ns = append(ns, packAddr(n))
		nsData = append(nsData, map[string]dbus.Variant{"address": dbus.MakeVariant(n)})
	}
	for _, w := range cfg.WINSServers {
		wins = append(wins, packAddr(w))
	}
	orEmpty := func(s []string) []string {
		if s == nil {
			return []string{}
		}
		return s
	}
	return map[string]any{
		"Addresses":      addrs,
		"AddressData":    addrData,
		"Gateway":        cfg.Gateway,
		"Routes":         routes,
		"RouteData":      routeData,
		"Nameservers":    ns,
		"NameserverData": nsData,
		"Domains":        orEmpty(cfg.Domains),
		"Searches":       orEmpty(cfg.Searches),
		"DnsOptions":     orEmpty(cfg.DNSOptions),
		"DnsPriority":    cfg.DNSPriority,
		"WinsServers":    wins,
		"WinsServerData": orEmpty(cfg.WINSServers),
	}
}

// String implements fmt.Stringer, for test failure messages.
func (r Route) String() string {
	if r.NextHop == "" {
		return fmt.Sprintf("%s/%d metric %d", r.Dest, r.Prefix, r.Metric)
	}
	return fmt.Sprintf("%s/%d via %s metric %d", r.Dest, r.Prefix, r.NextHop, r.Metric)
}
