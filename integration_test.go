package networkmanager_test

import (
	"context"
	"errors"
	"testing"

	"github.com/danderson/networkmanager"
	"github.com/danderson/networkmanager/bus"
	"github.com/danderson/networkmanager/dbustest"
	"github.com/danderson/networkmanager/nmtest"
	"github.com/godbus/dbus/v5"
	"github.com/google/go-cmp/cmp"
)

// Debugging tests, and the bus monitor output is too much? Turn it
// off temporarily here.
const logBusTraffic = true

// newBusClient serves a fake NetworkManager on an isolated bus, and
// returns a Client connected to it over the bus.
func newBusClient(t *testing.T, opts bus.Options) (*nmtest.NetworkManager, networkmanager.Client) {
	t.Helper()
	b := dbustest.New(t, logBusTraffic)

	fake := nmtest.New()
	if err := fake.Serve(b.MustConn(t)); err != nil {
		t.Fatalf("serving fake NetworkManager: %v", err)
	}

	conn, err := bus.Dial(context.Background(), b.Address(), opts)
	if err != nil {
		t.Fatalf("connecting to test bus: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return fake, networkmanager.New(conn)
}

func TestOverBus(t *testing.T) {
	fake, c := newBusClient(t, bus.Options{})
	eth := fake.AddDevice("eth0", nmtest.TypeEthernet)
	wlan := fake.AddDevice("wlan0", nmtest.TypeWifi)
	fake.AddAccessPoint(wlan, nmtest.AccessPoint{SSID: []byte("home"), Strength: 70})

	devs := paths(must(c.Devices(ctx)))
	if diff := cmp.Diff(devs, []dbus.ObjectPath{eth, wlan}); diff != "" {
		t.Errorf("Devices() wrong (-got+want):\n%s", diff)
	}

	sr := must(c.DeviceAt(eth).StateReason(ctx))
	if sr.State != networkmanager.DeviceStateDisconnected {
		t.Errorf("StateReason().State = %v, want disconnected", sr.State)
	}

	w, ok, err := c.DeviceAt(wlan).AsWireless(ctx)
	if !ok || err != nil {
		t.Fatalf("AsWireless() = %v, %v, want true, nil", ok, err)
	}
	for ap := range must(w.AccessPoints(ctx)) {
		if got := must(ap.SSID(ctx)); string(got) != "home" {
			t.Errorf("SSID() = %q, want home", got)
		}
	}
	if err := w.RequestScanSSIDs(ctx, []byte("home")); err != nil {
		t.Errorf("RequestScanSSIDs() failed: %v", err)
	}

	if err := c.DeviceAt(eth).SetManaged(ctx, false); err != nil {
		t.Fatalf("SetManaged(false) failed: %v", err)
	}
	if got := must(c.DeviceAt(eth).Managed(ctx)); got {
		t.Errorf("Managed() = true after SetManaged(false)")
	}

	node, err := c.DeviceAt(wlan).Object().Introspect(ctx)
	if err != nil {
		t.Fatalf("Introspect() failed: %v", err)
	}
	found := false
	for _, iface := range node.Interfaces {
		if iface.Name == nmtest.WirelessInterface {
			found = true
		}
	}
	if !found {
		t.Errorf("introspection of %s lacks %s", wlan, nmtest.WirelessInterface)
	}

	_, err = c.DeviceByIPInterface(ctx, "nope0")
	var ce bus.CallError
	if !errors.As(err, &ce) || ce.Name != nmtest.ErrUnknownDevice {
		t.Errorf("DeviceByIPInterface(nope0) = %v, want %s", err, nmtest.ErrUnknownDevice)
	}
	if _, err := (networkmanager.WirelessDevice{Device: c.DeviceAt(eth)}).Bitrate(ctx); !errors.Is(err, networkmanager.ErrUnsupportedMethod) {
		t.Errorf("Bitrate() on a wired device = %v, want ErrUnsupportedMethod", err)
	}
}

func TestReapplyOverBus(t *testing.T) {
	fake, c := newBusClient(t, bus.Options{})
	eth := fake.AddDevice("eth0", nmtest.TypeEthernet)
	fake.Activate(eth, settings("wired", "802-3-ethernet", "6f1e3f55-2c4b-4a55-8a8f-3f8f6d3b4a01"))
	d := c.DeviceAt(eth)

	applied := must(d.AppliedConnection(ctx))
	applied.Settings.Set("connection", "id", "wired2")
	if err := d.Reapply(ctx, applied.Settings, applied.Version); err != nil {
		t.Fatalf("Reapply() failed: %v", err)
	}
	err := d.Reapply(ctx, applied.Settings, applied.Version)
	var ce bus.CallError
	if !errors.As(err, &ce) || ce.Name != nmtest.ErrVersionIDMismatch {
		t.Errorf("Reapply() with stale version = %v, want %s", err, nmtest.ErrVersionIDMismatch)
	}
	got, _, _ := fake.Applied(eth)
	if id := got["connection"]["id"].Value(); id != "wired2" {
		t.Errorf("applied id = %v, want wired2", id)
	}
}
