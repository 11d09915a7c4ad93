package networkmanager_test

import (
	"errors"
	"testing"

	"github.com/danderson/networkmanager"
	"github.com/danderson/networkmanager/bus"
	"github.com/danderson/networkmanager/nmtest"
	"github.com/godbus/dbus/v5"
	"github.com/google/go-cmp/cmp"
)

func TestSpecialize(t *testing.T) {
	tests := []struct {
		typ  uint32
		want networkmanager.DeviceType
		kind string
	}{
		{nmtest.TypeWifi, networkmanager.DeviceTypeWifi, "networkmanager.WirelessDevice"},
		{nmtest.TypeEthernet, networkmanager.DeviceTypeEthernet, "networkmanager.WiredDevice"},
		{nmtest.TypeGeneric, networkmanager.DeviceTypeGeneric, "networkmanager.GenericDevice"},
		{nmtest.TypeBridge, networkmanager.DeviceTypeBridge, "networkmanager.BridgeDevice"},
		{nmtest.TypeVeth, networkmanager.DeviceTypeVeth, "networkmanager.VethDevice"},
		{nmtest.TypeTeam, networkmanager.DeviceTypeTeam, "networkmanager.TeamDevice"},
		{nmtest.TypeModem, networkmanager.DeviceTypeModem, "networkmanager.ModemDevice"},
		{29, networkmanager.DeviceTypeWireGuard, "networkmanager.UnsupportedDevice"},
		{10, networkmanager.DeviceTypeBond, "networkmanager.UnsupportedDevice"},
	}

	for _, tc := range tests {
		t.Run(tc.want.String(), func(t *testing.T) {
			fake, c := newClient(t)
			d := c.DeviceAt(fake.AddDevice("dev0", tc.typ))

			got, err := d.Specialize(ctx)
			if err != nil {
				t.Fatalf("Specialize() failed: %v", err)
			}
			if got.Kind() != tc.want {
				t.Errorf("Specialize().Kind() = %v, want %v", got.Kind(), tc.want)
			}
			if gotType := typeName(got); gotType != tc.kind {
				t.Errorf("Specialize() = %s, want %s", gotType, tc.kind)
			}
			if got.Generic() != d {
				t.Errorf("Specialize().Generic() = %v, want %v", got.Generic(), d)
			}
		})
	}
}

func typeName(v any) string {
	switch v.(type) {
	case networkmanager.WirelessDevice:
		return "networkmanager.WirelessDevice"
	case networkmanager.WiredDevice:
		return "networkmanager.WiredDevice"
	case networkmanager.GenericDevice:
		return "networkmanager.GenericDevice"
	case networkmanager.BridgeDevice:
		return "networkmanager.BridgeDevice"
	case networkmanager.VethDevice:
		return "networkmanager.VethDevice"
	case networkmanager.TeamDevice:
		return "networkmanager.TeamDevice"
	case networkmanager.ModemDevice:
		return "networkmanager.ModemDevice"
	case networkmanager.UnsupportedDevice:
		return "networkmanager.UnsupportedDevice"
	}
	return "unknown"
}

func TestUnknownDeviceType(t *testing.T) {
	for _, code := range []uint32{35, 100, 1 << 31} {
		fake, c := newClient(t)
		d := c.DeviceAt(fake.AddDevice("dev0", code))

		_, err := d.Type(ctx)
		var ute networkmanager.UnsupportedTypeError
		if !errors.As(err, &ute) {
			t.Fatalf("Type() with code %d = %v, want UnsupportedTypeError", code, err)
		}
		if ute.Type != "DeviceType" || ute.Value != code {
			t.Errorf("Type() error = %+v, want {DeviceType %d}", ute, code)
		}

		got, err := d.Specialize(ctx)
		if !errors.Is(err, networkmanager.ErrUnsupportedType) {
			t.Errorf("Specialize() with code %d = %v, %v, want ErrUnsupportedType", code, got, err)
		}

		// Casts treat unknown codes as a mismatch.
		if _, ok, err := d.AsWireless(ctx); ok || err != nil {
			t.Errorf("AsWireless() with code %d = %v, %v, want false, nil", code, ok, err)
		}
	}
}

func TestCasts(t *testing.T) {
	fake, c := newClient(t)
	types := []uint32{
		nmtest.TypeWifi,
		nmtest.TypeEthernet,
		nmtest.TypeGeneric,
		nmtest.TypeBridge,
		nmtest.TypeVeth,
		nmtest.TypeTeam,
		nmtest.TypeModem,
		22,
	}
	for _, typ := range types {
		d := c.DeviceAt(fake.AddDevice("dev", typ))

		casts := map[uint32]func() (bool, error){
			nmtest.TypeWifi:     func() (bool, error) { _, ok, err := d.AsWireless(ctx); return ok, err },
			nmtest.TypeEthernet: func() (bool, error) { _, ok, err := d.AsWired(ctx); return ok, err },
			nmtest.TypeGeneric:  func() (bool, error) { _, ok, err := d.AsGeneric(ctx); return ok, err },
			nmtest.TypeBridge:   func() (bool, error) { _, ok, err := d.AsBridge(ctx); return ok, err },
			nmtest.TypeVeth:     func() (bool, error) { _, ok, err := d.AsVeth(ctx); return ok, err },
			nmtest.TypeTeam:     func() (bool, error) { _, ok, err := d.AsTeam(ctx); return ok, err },
			nmtest.TypeModem:    func() (bool, error) { _, ok, err := d.AsModem(ctx); return ok, err },
		}
		for castType, cast := range casts {
			ok, err := cast()
			if err != nil {
				t.Errorf("cast of type %d device to %d failed: %v", typ, castType, err)
			}
			if want := castType == typ; ok != want {
				t.Errorf("cast of type %d device to %d = %v, want %v", typ, castType, ok, want)
			}
		}
	}
}

func TestCastTransportError(t *testing.T) {
	fake, c := newClient(t)
	path := fake.AddDevice("eth0", nmtest.TypeEthernet)
	fake.RemoveDevice(path)

	_, ok, err := c.DeviceAt(path).AsWired(ctx)
	if ok || err == nil {
		t.Errorf("AsWired() on a removed device = %v, %v, want false, error", ok, err)
	}
}

func TestStateReason(t *testing.T) {
	fake, c := newClient(t)
	path := fake.AddDevice("eth0", nmtest.TypeEthernet)
	d := c.DeviceAt(path)

	got := must(d.StateReason(ctx))
	want := networkmanager.StateAndReason{State: networkmanager.DeviceStateDisconnected, Reason: networkmanager.ReasonNone}
	if got != want {
		t.Errorf("StateReason() = %v, want %v", got, want)
	}

	fake.SetState(path, 120, 999)
	_, err := d.StateReason(ctx)
	if !errors.Is(err, networkmanager.ErrUnsupportedType) {
		t.Errorf("StateReason() with unknown reason = %v, want ErrUnsupportedType", err)
	}
	if got, want := must(d.State(ctx)), networkmanager.DeviceStateFailed; got != want {
		t.Errorf("State() = %v, want %v", got, want)
	}
}

func TestReapply(t *testing.T) {
	fake, c := newClient(t)
	path := fake.AddDevice("eth0", nmtest.TypeEthernet)
	d := c.DeviceAt(path)

	orig := settings("wired", "802-3-ethernet", "5f9a1a56-3ac8-4f0a-9a8e-0b7a0e7b6f12")
	fake.Activate(path, orig)

	applied := must(d.AppliedConnection(ctx))
	if got, want := applied.Settings.ID(), "wired"; got != want {
		t.Errorf("AppliedConnection().Settings.ID() = %q, want %q", got, want)
	}

	updated := applied.Settings.Clone()
	updated.Set("connection", "id", "wired-updated")
	if err := d.Reapply(ctx, updated, applied.Version); err != nil {
		t.Fatalf("Reapply() with current version failed: %v", err)
	}
	after := must(d.AppliedConnection(ctx))
	if after.Version == applied.Version {
		t.Errorf("version unchanged after Reapply()")
	}
	if got, want := after.Settings.ID(), "wired-updated"; got != want {
		t.Errorf("applied ID after Reapply() = %q, want %q", got, want)
	}

	// Reapplying from the stale version must fail and change
	// nothing.
	stale := applied.Settings.Clone()
	stale.Set("connection", "id", "stale")
	err := d.Reapply(ctx, stale, applied.Version)
	var ce bus.CallError
	if !errors.As(err, &ce) || ce.Name != nmtest.ErrVersionIDMismatch {
		t.Fatalf("Reapply() with stale version = %v, want %s", err, nmtest.ErrVersionIDMismatch)
	}
	final := must(d.AppliedConnection(ctx))
	if final.Version != after.Version || final.Settings.ID() != "wired-updated" {
		t.Errorf("stale Reapply() changed state: version %d id %q, want %d %q", final.Version, final.Settings.ID(), after.Version, "wired-updated")
	}
}

func TestAppliedConnectionNotActive(t *testing.T) {
	fake, c := newClient(t)
	d := c.DeviceAt(fake.AddDevice("eth0", nmtest.TypeEthernet))

	_, err := d.AppliedConnection(ctx)
	var ce bus.CallError
	if !errors.As(err, &ce) || ce.Name != nmtest.ErrNotActive {
		t.Errorf("AppliedConnection() = %v, want %s", err, nmtest.ErrNotActive)
	}
	var n int
	for _, call := range fake.Calls() {
		if call.Member == nmtest.DeviceInterface+".GetAppliedConnection" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("AppliedConnection() made %d GetAppliedConnection calls, want 1", n)
	}
}

func TestDisconnectDelete(t *testing.T) {
	fake, c := newClient(t)
	path := fake.AddDevice("eth0", nmtest.TypeEthernet)
	d := c.DeviceAt(path)
	fake.Activate(path, settings("wired", "802-3-ethernet", "5f9a1a56-3ac8-4f0a-9a8e-0b7a0e7b6f12"))

	if err := d.Disconnect(ctx); err != nil {
		t.Fatalf("Disconnect() failed: %v", err)
	}
	got := must(d.StateReason(ctx))
	want := networkmanager.StateAndReason{State: networkmanager.DeviceStateDisconnected, Reason: networkmanager.ReasonUserRequested}
	if got != want {
		t.Errorf("StateReason() after Disconnect() = %v, want %v", got, want)
	}

	err := d.Delete(ctx)
	var ce bus.CallError
	if !errors.As(err, &ce) || ce.Name != nmtest.ErrNotSoftware {
		t.Errorf("Delete() of hardware device = %v, want %s", err, nmtest.ErrNotSoftware)
	}

	veth := fake.AddDevice("veth0", nmtest.TypeVeth)
	fake.SetProperty(veth, nmtest.DeviceInterface, "Capabilities", uint32(networkmanager.DeviceCapNMSupported|networkmanager.DeviceCapIsSoftware))
	vd := c.DeviceAt(veth)
	caps := must(vd.Capabilities(ctx))
	if !caps.Has(networkmanager.DeviceCapIsSoftware) {
		t.Errorf("Capabilities() = %v, want is-software", caps)
	}
	if err := vd.Delete(ctx); err != nil {
		t.Fatalf("Delete() of software device failed: %v", err)
	}
	all := paths(must(c.AllDevices(ctx)))
	if diff := cmp.Diff(all, []dbus.ObjectPath{path}); diff != "" {
		t.Errorf("AllDevices() after Delete() wrong (-got+want):\n%s", diff)
	}
}

func TestDeviceProperties(t *testing.T) {
	fake, c := newClient(t)
	path := fake.AddDevice("eth0", nmtest.TypeEthernet)
	d := c.DeviceAt(path)

	if got := must(d.Interface(ctx)); got != "eth0" {
		t.Errorf("Interface() = %q, want eth0", got)
	}
	if got := must(d.IPInterface(ctx)); got != "eth0" {
		t.Errorf("IPInterface() = %q, want eth0", got)
	}
	if got := must(d.MTU(ctx)); got != 1500 {
		t.Errorf("MTU() = %d, want 1500", got)
	}

	if _, ok, err := d.PhysicalPortID(ctx); ok || err != nil {
		t.Errorf("PhysicalPortID() = %v, %v, want false, nil", ok, err)
	}
	fake.SetProperty(path, nmtest.DeviceInterface, "PhysicalPortId", "p0")
	if id, ok, err := d.PhysicalPortID(ctx); !ok || err != nil || id != "p0" {
		t.Errorf("PhysicalPortID() = %q, %v, %v, want p0, true, nil", id, ok, err)
	}

	// Metered must come from the Metered property, not the device
	// type.
	fake.SetProperty(path, nmtest.DeviceInterface, "Metered", uint32(1))
	if got, want := must(d.Metered(ctx)), networkmanager.MeteredYes; got != want {
		t.Errorf("Metered() = %v, want %v", got, want)
	}

	if err := d.SetManaged(ctx, false); err != nil {
		t.Fatalf("SetManaged(false) failed: %v", err)
	}
	if got := must(d.Managed(ctx)); got {
		t.Errorf("Managed() = true after SetManaged(false)")
	}
	if err := d.SetAutoconnect(ctx, false); err != nil {
		t.Fatalf("SetAutoconnect(false) failed: %v", err)
	}
	if got := must(d.Autoconnect(ctx)); got {
		t.Errorf("Autoconnect() = true after SetAutoconnect(false)")
	}

	if _, ok, err := d.IP4Config(ctx); ok || err != nil {
		t.Errorf("IP4Config() without config = %v, %v, want false, nil", ok, err)
	}
	if _, ok, err := d.DHCP4Config(ctx); ok || err != nil {
		t.Errorf("DHCP4Config() without lease = %v, %v, want false, nil", ok, err)
	}

	fake.SetProperty(path, nmtest.DeviceInterface, "InterfaceFlags", uint32(0x10003))
	flags := must(d.InterfaceFlags(ctx))
	if got, want := flags.String(), "up|lower-up|carrier"; got != want {
		t.Errorf("InterfaceFlags() = %q, want %q", got, want)
	}
}

func TestKindProperties(t *testing.T) {
	fake, c := newClient(t)

	wired, ok, err := c.DeviceAt(fake.AddDevice("eth0", nmtest.TypeEthernet)).AsWired(ctx)
	if !ok || err != nil {
		t.Fatalf("AsWired() = %v, %v", ok, err)
	}
	if got := must(wired.Speed(ctx)); got != 1000 {
		t.Errorf("Speed() = %d, want 1000", got)
	}
	if got := must(wired.Carrier(ctx)); !got {
		t.Errorf("Carrier() = false, want true")
	}

	brPath := fake.AddDevice("br0", nmtest.TypeBridge)
	port := fake.AddDevice("eth1", nmtest.TypeEthernet)
	fake.SetProperty(brPath, nmtest.BridgeInterface, "Slaves", []dbus.ObjectPath{port})
	br, _, _ := c.DeviceAt(brPath).AsBridge(ctx)
	ports := paths(must(br.Ports(ctx)))
	if diff := cmp.Diff(ports, []dbus.ObjectPath{port}); diff != "" {
		t.Errorf("Ports() wrong (-got+want):\n%s", diff)
	}

	veth, _, _ := c.DeviceAt(fake.AddDevice("veth0", nmtest.TypeVeth)).AsVeth(ctx)
	if _, ok, err := veth.Peer(ctx); ok || err != nil {
		t.Errorf("Peer() without peer = %v, %v, want false, nil", ok, err)
	}

	modem, _, _ := c.DeviceAt(fake.AddDevice("wwan0", nmtest.TypeModem)).AsModem(ctx)
	if got := must(modem.ModemCapabilities(ctx)); got != networkmanager.ModemCapGSMUMTS {
		t.Errorf("ModemCapabilities() = %v, want gsm-umts", got)
	}

	generic, _, _ := c.DeviceAt(fake.AddDevice("gen0", nmtest.TypeGeneric)).AsGeneric(ctx)
	if got := must(generic.TypeDescription(ctx)); got != "generic" {
		t.Errorf("TypeDescription() = %q, want generic", got)
	}

	team, _, _ := c.DeviceAt(fake.AddDevice("team0", nmtest.TypeTeam)).AsTeam(ctx)
	if got := must(team.Config(ctx)); got != "{}" {
		t.Errorf("Config() = %q, want {}", got)
	}
}
