package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/creachadair/command"
	"github.com/creachadair/mds/slice"
	"github.com/danderson/networkmanager"
)

// orNone formats an optional value.
func orNone[T any](v T, ok bool) any {
	if !ok {
		return "none"
	}
	return v
}

func runStatus(env *command.Env) error {
	return withClient(env, func(ctx context.Context, c networkmanager.Client, p *printer) error {
		version, err := c.Version(ctx)
		if err != nil {
			return err
		}
		state, err := c.State(ctx)
		if err != nil {
			return err
		}
		conn, err := c.Connectivity(ctx)
		if err != nil {
			return err
		}
		networking, err := c.NetworkingEnabled(ctx)
		if err != nil {
			return err
		}
		wifi, err := c.WirelessEnabled(ctx)
		if err != nil {
			return err
		}
		wifiHW, err := c.WirelessHardwareEnabled(ctx)
		if err != nil {
			return err
		}
		wwan, err := c.WWANEnabled(ctx)
		if err != nil {
			return err
		}
		metered, err := c.Metered(ctx)
		if err != nil {
			return err
		}
		primary, err := c.PrimaryConnectionType(ctx)
		if err != nil {
			return err
		}
		startup, err := c.Startup(ctx)
		if err != nil {
			return err
		}
		hostname, err := c.Settings().Hostname(ctx)
		if err != nil {
			return err
		}
		p.Record(
			Field{"Version", version},
			Field{"State", state},
			Field{"Connectivity", conn},
			Field{"Networking", networking},
			Field{"Wi-Fi", wifi},
			Field{"Wi-Fi hardware", wifiHW},
			Field{"WWAN", wwan},
			Field{"Metered", metered},
			Field{"Primary connection", orNone(primary, primary != "")},
			Field{"Starting up", startup},
			Field{"Hostname", hostname},
		)
		return nil
	})
}

var devicesArgs struct {
	All  bool   `flag:"all,Include placeholder devices that do not exist yet"`
	Type string `flag:"type,Only list devices of this type (for example wifi)"`
}

type deviceRow struct {
	iface string
	typ   networkmanager.DeviceType
	state networkmanager.DeviceState
	hw    string
	real  bool
}

func readDevice(ctx context.Context, d networkmanager.Device) (deviceRow, error) {
	var (
		r   deviceRow
		err error
	)
	if r.iface, err = d.Interface(ctx); err != nil {
		return r, err
	}
	if r.typ, err = d.Type(ctx); err != nil && !errors.Is(err, networkmanager.ErrUnsupportedType) {
		return r, err
	}
	if r.state, err = d.State(ctx); err != nil && !errors.Is(err, networkmanager.ErrUnsupportedType) {
		return r, err
	}
	if r.hw, err = d.HardwareAddress(ctx); err != nil {
		return r, err
	}
	if r.real, err = d.Real(ctx); err != nil {
		return r, err
	}
	return r, nil
}

func runDevices(env *command.Env) error {
	return withClient(env, func(ctx context.Context, c networkmanager.Client, p *printer) error {
		list := c.Devices
		if devicesArgs.All {
			list = c.AllDevices
		}
		devs, err := list(ctx)
		if err != nil {
			return err
		}
		var rows []deviceRow
		for d := range devs {
			r, err := readDevice(ctx, d)
			if err != nil {
				return fmt.Errorf("reading %s: %w", d, err)
			}
			rows = append(rows, r)
		}
		if devicesArgs.Type != "" {
			rows = slices.Collect(slice.Select(rows, func(r deviceRow) bool {
				return r.typ.String() == devicesArgs.Type
			}))
		}
		slices.SortFunc(rows, func(a, b deviceRow) int { return cmp.Compare(a.iface, b.iface) })

		p.Table("DEVICE", "TYPE", "STATE", "HWADDR", "REAL")
		for _, r := range rows {
			p.Row(r.iface, r.typ, r.state, r.hw, r.real)
		}
		return nil
	})
}

func deviceByName(ctx context.Context, c networkmanager.Client, name string) (networkmanager.Device, error) {
	d, err := c.DeviceByIPInterface(ctx, name)
	if err != nil {
		return networkmanager.Device{}, fmt.Errorf("finding device %q: %w", name, err)
	}
	return d, nil
}

func runDeviceShow(env *command.Env, name string) error {
	return withClient(env, func(ctx context.Context, c networkmanager.Client, p *printer) error {
		d, err := deviceByName(ctx, c, name)
		if err != nil {
			return err
		}
		r, err := readDevice(ctx, d)
		if err != nil {
			return err
		}
		sr, err := d.StateReason(ctx)
		if err != nil && !errors.Is(err, networkmanager.ErrUnsupportedType) {
			return err
		}
		driver, err := d.Driver(ctx)
		if err != nil {
			return err
		}
		caps, err := d.Capabilities(ctx)
		if err != nil {
			return err
		}
		mtu, err := d.MTU(ctx)
		if err != nil {
			return err
		}
		managed, err := d.Managed(ctx)
		if err != nil {
			return err
		}
		flags, err := d.InterfaceFlags(ctx)
		if err != nil {
			return err
		}
		port, hasPort, err := d.PhysicalPortID(ctx)
		if err != nil {
			return err
		}
		fields := []Field{
			{"Device", r.iface},
			{"Object", d.Path()},
			{"Type", r.typ},
			{"State", r.state},
			{"Reason", sr.Reason},
			{"Driver", driver},
			{"Hardware address", r.hw},
			{"MTU", mtu},
			{"Capabilities", caps},
			{"Interface flags", flags},
			{"Managed", managed},
			{"Physical port", orNone(port, hasPort)},
		}

		cfg, ok, err := d.IP4Config(ctx)
		if err != nil {
			return err
		}
		if ok {
			addrs, err := cfg.AddressData(ctx)
			if err != nil {
				return err
			}
			for _, a := range addrs {
				fields = append(fields, Field{"IPv4 address", a.Prefix})
			}
			gw, ok, err := cfg.Gateway(ctx)
			if err != nil {
				return err
			}
			fields = append(fields, Field{"IPv4 gateway", orNone(gw, ok)})
			dns, err := cfg.NameserverData(ctx)
			if err != nil {
				return err
			}
			for _, a := range dns {
				fields = append(fields, Field{"IPv4 DNS", a})
			}
		}
		if lease, ok, err := d.DHCP4Config(ctx); err != nil {
			return err
		} else if ok {
			opts, err := lease.Options(ctx)
			if err != nil {
				return err
			}
			for _, k := range slices.Sorted(maps.Keys(opts)) {
				fields = append(fields, Field{"DHCPv4 " + k, opts[k]})
			}
		}

		typed, err := d.Specialize(ctx)
		if err != nil && !errors.Is(err, networkmanager.ErrUnsupportedType) {
			return err
		}
		switch v := typed.(type) {
		case networkmanager.WirelessDevice:
			mode, err := v.Mode(ctx)
			if err != nil {
				return err
			}
			fields = append(fields, Field{"Wi-Fi mode", mode})
			ap, ok, err := v.ActiveAccessPoint(ctx)
			if err != nil {
				return err
			}
			if ok {
				ssid, err := ap.SSID(ctx)
				if err != nil {
					return err
				}
				fields = append(fields, Field{"Access point", fmt.Sprintf("%q (%s)", ssid, ap.Path())})
			}
			last, ok, err := v.LastScan(ctx)
			if err != nil {
				return err
			}
			fields = append(fields, Field{"Last scan", orNone(last, ok)})
		case networkmanager.WiredDevice:
			speed, err := v.Speed(ctx)
			if err != nil {
				return err
			}
			carrier, err := v.Carrier(ctx)
			if err != nil {
				return err
			}
			fields = append(fields, Field{"Speed (Mb/s)", speed}, Field{"Carrier", carrier})
		case networkmanager.VethDevice:
			peer, ok, err := v.Peer(ctx)
			if err != nil {
				return err
			}
			fields = append(fields, Field{"Peer", orNone(peer, ok)})
		case networkmanager.BridgeDevice:
			ports, err := v.Ports(ctx)
			if err != nil {
				return err
			}
			for port := range ports {
				fields = append(fields, Field{"Port", port})
			}
		}
		p.Record(fields...)
		return nil
	})
}

func runDeviceReapply(env *command.Env, name string) error {
	return withClient(env, func(ctx context.Context, c networkmanager.Client, p *printer) error {
		d, err := deviceByName(ctx, c, name)
		if err != nil {
			return err
		}
		applied, err := d.AppliedConnection(ctx)
		if err != nil {
			return fmt.Errorf("getting applied connection of %s: %w", name, err)
		}
		if err := d.Reapply(ctx, applied.Settings, applied.Version); err != nil {
			return fmt.Errorf("reapplying %s: %w", name, err)
		}
		return nil
	})
}

func runDeviceDisconnect(env *command.Env, name string) error {
	return withClient(env, func(ctx context.Context, c networkmanager.Client, p *printer) error {
		d, err := deviceByName(ctx, c, name)
		if err != nil {
			return err
		}
		return d.Disconnect(ctx)
	})
}

// wifiDevices returns the Wi-Fi device named iface, or all Wi-Fi
// devices if iface is empty.
func wifiDevices(ctx context.Context, c networkmanager.Client, iface string) ([]networkmanager.WirelessDevice, error) {
	if iface != "" {
		d, err := deviceByName(ctx, c, iface)
		if err != nil {
			return nil, err
		}
		w, ok, err := d.AsWireless(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%s is not a Wi-Fi device", iface)
		}
		return []networkmanager.WirelessDevice{w}, nil
	}

	devs, err := c.Devices(ctx)
	if err != nil {
		return nil, err
	}
	var ret []networkmanager.WirelessDevice
	for d := range devs {
		w, ok, err := d.AsWireless(ctx)
		if err != nil {
			return nil, err
		}
		if ok {
			ret = append(ret, w)
		}
	}
	return ret, nil
}

var wifiListArgs struct {
	MinStrength uint `flag:"min-strength,Hide access points weaker than this percentage"`
}

type apRow struct {
	dev      string
	ssid     string
	bssid    string
	freq     uint32
	strength uint8
	security string
}

func security(ctx context.Context, ap networkmanager.AccessPoint) (string, error) {
	flags, err := ap.Flags(ctx)
	if err != nil {
		return "", err
	}
	wpa, err := ap.WPAFlags(ctx)
	if err != nil {
		return "", err
	}
	rsn, err := ap.RSNFlags(ctx)
	if err != nil {
		return "", err
	}
	var ret []string
	if wpa != 0 {
		ret = append(ret, "WPA1")
	}
	if rsn != 0 {
		ret = append(ret, "WPA2")
	}
	if len(ret) == 0 && flags.Has(networkmanager.APFlagPrivacy) {
		ret = append(ret, "WEP")
	}
	if len(ret) == 0 {
		return "open", nil
	}
	return strings.Join(ret, " "), nil
}

func runWifiList(env *command.Env) error {
	if len(env.Args) > 1 {
		return env.Usagef("too many arguments")
	}
	iface := ""
	if len(env.Args) == 1 {
		iface = env.Args[0]
	}
	return withClient(env, func(ctx context.Context, c networkmanager.Client, p *printer) error {
		devs, err := wifiDevices(ctx, c, iface)
		if err != nil {
			return err
		}
		var rows []apRow
		for _, w := range devs {
			name, err := w.Interface(ctx)
			if err != nil {
				return err
			}
			aps, err := w.AccessPoints(ctx)
			if err != nil {
				return err
			}
			for ap := range aps {
				r := apRow{dev: name}
				ssid, err := ap.SSID(ctx)
				if err != nil {
					return err
				}
				r.ssid = string(ssid)
				if r.bssid, err = ap.HardwareAddress(ctx); err != nil {
					return err
				}
				if r.freq, err = ap.Frequency(ctx); err != nil {
					return err
				}
				if r.strength, err = ap.Strength(ctx); err != nil {
					return err
				}
				if r.security, err = security(ctx, ap); err != nil {
					return err
				}
				rows = append(rows, r)
			}
		}
		rows = slices.Collect(slice.Select(rows, func(r apRow) bool {
			return uint(r.strength) >= wifiListArgs.MinStrength
		}))
		slices.SortStableFunc(rows, func(a, b apRow) int { return cmp.Compare(b.strength, a.strength) })

		p.Table("DEVICE", "SSID", "BSSID", "FREQ", "SIGNAL", "SECURITY")
		for _, r := range rows {
			ssid := r.ssid
			if ssid == "" {
				ssid = "--"
			}
			p.Row(r.dev, ssid, r.bssid, r.freq, r.strength, r.security)
		}
		return nil
	})
}

func runWifiScan(env *command.Env) error {
	iface := ""
	var ssids [][]byte
	if len(env.Args) > 0 {
		iface = env.Args[0]
		for _, s := range env.Args[1:] {
			ssids = append(ssids, []byte(s))
		}
	}
	return withClient(env, func(ctx context.Context, c networkmanager.Client, p *printer) error {
		devs, err := wifiDevices(ctx, c, iface)
		if err != nil {
			return err
		}
		var errs []error
		for _, w := range devs {
			if len(ssids) > 0 {
				err = w.RequestScanSSIDs(ctx, ssids...)
			} else {
				err = w.RequestScan(ctx)
			}
			if err != nil {
				errs = append(errs, fmt.Errorf("scanning on %s: %w", w, err))
			}
		}
		return errors.Join(errs...)
	})
}

func runConnections(env *command.Env) error {
	return withClient(env, func(ctx context.Context, c networkmanager.Client, p *printer) error {
		conns, err := c.Settings().Connections(ctx)
		if err != nil {
			return err
		}
		type row struct {
			id, uuid, typ string
			saved         bool
		}
		var rows []row
		for conn := range conns {
			s, err := conn.Settings(ctx)
			if err != nil {
				return fmt.Errorf("reading %s: %w", conn, err)
			}
			saved, err := conn.IsSaved(ctx)
			if err != nil {
				return fmt.Errorf("reading %s: %w", conn, err)
			}
			rows = append(rows, row{s.ID(), s.UUID(), s.Type(), saved})
		}
		slices.SortFunc(rows, func(a, b row) int { return cmp.Compare(a.id, b.id) })
		p.Table("NAME", "UUID", "TYPE", "SAVED")
		for _, r := range rows {
			p.Row(r.id, r.uuid, r.typ, r.saved)
		}
		return nil
	})
}

var connShowArgs struct {
	Secrets bool `flag:"secrets,Include secrets (requires permission)"`
}

// plain converts settings to plain Go values, for printing.
func plain(s networkmanager.ConnectionSettings) map[string]map[string]any {
	ret := make(map[string]map[string]any, len(s))
	for group, kv := range s {
		ret[group] = make(map[string]any, len(kv))
		for k, v := range kv {
			ret[group][k] = v.Value()
		}
	}
	return ret
}

func runConnectionShow(env *command.Env, id string) error {
	return withClient(env, func(ctx context.Context, c networkmanager.Client, p *printer) error {
		conn, err := c.Settings().ConnectionByUUID(ctx, id)
		if err != nil {
			return err
		}
		s, err := conn.Settings(ctx)
		if err != nil {
			return err
		}
		if connShowArgs.Secrets {
			secrets, err := conn.Secrets(ctx)
			if err != nil {
				return fmt.Errorf("getting secrets: %w", err)
			}
			for group, kv := range secrets {
				if s[group] == nil {
					s[group] = kv
					continue
				}
				maps.Copy(s[group], kv)
			}
		}
		p.Value(plain(s))
		return nil
	})
}

func runConnectionDelete(env *command.Env, id string) error {
	return withClient(env, func(ctx context.Context, c networkmanager.Client, p *printer) error {
		conn, err := c.Settings().ConnectionByUUID(ctx, id)
		if err != nil {
			return err
		}
		return conn.Delete(ctx)
	})
}

func runReload(env *command.Env) error {
	flags, err := networkmanager.ParseReloadFlags(env.Args...)
	if err != nil {
		return env.Usagef("%v", err)
	}
	return withClient(env, func(ctx context.Context, c networkmanager.Client, p *printer) error {
		return c.Reload(ctx, flags)
	})
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid state %q, want on or off", s)
}

func runNetworking(env *command.Env, state string) error {
	on, err := parseOnOff(state)
	if err != nil {
		return env.Usagef("%v", err)
	}
	return withClient(env, func(ctx context.Context, c networkmanager.Client, p *printer) error {
		return c.Enable(ctx, on)
	})
}

func runRadio(env *command.Env, radio, state string) error {
	on, err := parseOnOff(state)
	if err != nil {
		return env.Usagef("%v", err)
	}
	return withClient(env, func(ctx context.Context, c networkmanager.Client, p *printer) error {
		switch radio {
		case "wifi":
			return c.SetWirelessEnabled(ctx, on)
		case "wwan":
			return c.SetWWANEnabled(ctx, on)
		}
		return fmt.Errorf("unknown radio %q, want wifi or wwan", radio)
	})
}
