package networkmanager_test

import (
	"errors"
	"testing"
	"time"

	"github.com/danderson/networkmanager"
	"github.com/danderson/networkmanager/nmtest"
	"github.com/godbus/dbus/v5"
	"github.com/google/go-cmp/cmp"
)

func newWireless(t *testing.T) (*nmtest.NetworkManager, dbus.ObjectPath, networkmanager.WirelessDevice) {
	t.Helper()
	fake, c := newClient(t)
	path := fake.AddDevice("wlan0", nmtest.TypeWifi)
	w, ok, err := c.DeviceAt(path).AsWireless(ctx)
	if !ok || err != nil {
		t.Fatalf("AsWireless() = %v, %v, want true, nil", ok, err)
	}
	return fake, path, w
}

func TestAccessPoints(t *testing.T) {
	fake, dev, w := newWireless(t)
	home := fake.AddAccessPoint(dev, nmtest.AccessPoint{
		SSID:      []byte("home"),
		BSSID:     "00:11:22:33:44:55",
		Frequency: 2437,
		Strength:  80,
		WPAFlags:  0x188,
		RSNFlags:  0x188,
		Flags:     0x1,
		Mode:      2,
		LastSeen:  120,
	})
	hidden := fake.AddAccessPoint(dev, nmtest.AccessPoint{
		BSSID:    "00:11:22:33:44:66",
		LastSeen: -1,
	})

	visible := paths(must(w.AccessPoints(ctx)))
	if diff := cmp.Diff(visible, []dbus.ObjectPath{home}); diff != "" {
		t.Errorf("AccessPoints() wrong (-got+want):\n%s", diff)
	}
	all := paths(must(w.AllAccessPoints(ctx)))
	if diff := cmp.Diff(all, []dbus.ObjectPath{home, hidden}); diff != "" {
		t.Errorf("AllAccessPoints() wrong (-got+want):\n%s", diff)
	}

	var ap networkmanager.AccessPoint
	for a := range must(w.AccessPoints(ctx)) {
		ap = a
	}
	if got := must(ap.SSID(ctx)); string(got) != "home" {
		t.Errorf("SSID() = %q, want home", got)
	}
	if got := must(ap.Frequency(ctx)); got != 2437 {
		t.Errorf("Frequency() = %d, want 2437", got)
	}
	if got := must(ap.Strength(ctx)); got != 80 {
		t.Errorf("Strength() = %d, want 80", got)
	}
	if got := must(ap.HardwareAddress(ctx)); got != "00:11:22:33:44:55" {
		t.Errorf("HardwareAddress() = %q", got)
	}
	if got, want := must(ap.Mode(ctx)), networkmanager.WifiModeInfrastructure; got != want {
		t.Errorf("Mode() = %v, want %v", got, want)
	}
	if got := must(ap.Flags(ctx)); !got.Has(networkmanager.APFlagPrivacy) {
		t.Errorf("Flags() = %v, want privacy", got)
	}
	rsn := must(ap.RSNFlags(ctx))
	if got, want := rsn.String(), "pair-ccmp|group-ccmp|psk"; got != want {
		t.Errorf("RSNFlags() = %q, want %q", got, want)
	}
	seen, ok, err := ap.LastSeen(ctx)
	if err != nil || !ok || seen != networkmanager.BootTime(120*time.Second) {
		t.Errorf("LastSeen() = %v, %v, %v, want 2m0s, true, nil", seen, ok, err)
	}

	for a := range must(w.AllAccessPoints(ctx)) {
		if a.Path() != hidden {
			continue
		}
		if _, ok, err := a.LastSeen(ctx); ok || err != nil {
			t.Errorf("LastSeen() of never-seen AP = %v, %v, want false, nil", ok, err)
		}
	}
}

func TestHiddenSSID(t *testing.T) {
	fake, dev, w := newWireless(t)

	// Not associated: absent.
	if _, ok, err := w.ActiveAccessPoint(ctx); ok || err != nil {
		t.Errorf("ActiveAccessPoint() when unassociated = %v, %v, want false, nil", ok, err)
	}

	hidden := fake.AddAccessPoint(dev, nmtest.AccessPoint{BSSID: "00:11:22:33:44:66"})
	fake.SetProperty(dev, nmtest.WirelessInterface, "ActiveAccessPoint", hidden)

	// Associated with a hidden network: present, with an empty
	// SSID.
	ap, ok, err := w.ActiveAccessPoint(ctx)
	if !ok || err != nil {
		t.Fatalf("ActiveAccessPoint() = %v, %v, want true, nil", ok, err)
	}
	ssid, err := ap.SSID(ctx)
	if err != nil {
		t.Fatalf("SSID() failed: %v", err)
	}
	if ssid == nil || len(ssid) != 0 {
		t.Errorf("SSID() of hidden network = %#v, want empty non-nil", ssid)
	}
}

func TestScan(t *testing.T) {
	fake, dev, w := newWireless(t)

	if _, ok, err := w.LastScan(ctx); ok || err != nil {
		t.Errorf("LastScan() before any scan = %v, %v, want false, nil", ok, err)
	}

	if err := w.RequestScan(ctx); err != nil {
		t.Fatalf("RequestScan() failed: %v", err)
	}
	last, ok, err := w.LastScan(ctx)
	if !ok || err != nil {
		t.Fatalf("LastScan() after scan = %v, %v, want true, nil", ok, err)
	}
	if last != networkmanager.BootTime(time.Second) {
		t.Errorf("LastScan() = %v, want 1s", last)
	}

	ssids := [][]byte{[]byte("home"), {0xff, 0x00, 0xfe}}
	if err := w.RequestScanSSIDs(ctx, ssids...); err != nil {
		t.Fatalf("RequestScanSSIDs() failed: %v", err)
	}
	calls := fake.Calls()
	scan := calls[len(calls)-1]
	if scan.Path != dev || scan.Member != nmtest.WirelessInterface+".RequestScan" {
		t.Fatalf("last call = %s %s, want RequestScan on %s", scan.Path, scan.Member, dev)
	}
	opts := scan.Args[0].(map[string]dbus.Variant)
	if got := opts["ssids"].Signature().String(); got != "aay" {
		t.Errorf("ssids option has signature %s, want aay", got)
	}
	if diff := cmp.Diff(opts["ssids"].Value(), ssids); diff != "" {
		t.Errorf("ssids option wrong (-got+want):\n%s", diff)
	}

	fake.SetProperty(dev, nmtest.WirelessInterface, "LastScan", int64(-5))
	if _, ok, err := w.LastScan(ctx); ok || err != nil {
		t.Errorf("LastScan() with negative timestamp = %v, %v, want false, nil", ok, err)
	}
}

func TestWirelessProperties(t *testing.T) {
	fake, dev, w := newWireless(t)
	fake.SetProperty(dev, nmtest.WirelessInterface, "WirelessCapabilities", uint32(0x4000|0x20|0x10))
	caps := must(w.Capabilities(ctx))
	if got, want := caps.String(), "wpa|rsn|0x4000"; got != want {
		t.Errorf("Capabilities() = %q, want %q", got, want)
	}
	if !caps.Has(networkmanager.WifiCapRSN) {
		t.Errorf("Capabilities().Has(rsn) = false")
	}

	if got, want := must(w.Mode(ctx)), networkmanager.WifiModeInfrastructure; got != want {
		t.Errorf("Mode() = %v, want %v", got, want)
	}
	fake.SetProperty(dev, nmtest.WirelessInterface, "Mode", uint32(42))
	if _, err := w.Mode(ctx); !errors.Is(err, networkmanager.ErrUnsupportedType) {
		t.Errorf("Mode() with unknown code = %v, want ErrUnsupportedType", err)
	}

	// The wireless facade still exposes generic device properties.
	if got := must(w.Interface(ctx)); got != "wlan0" {
		t.Errorf("Interface() = %q, want wlan0", got)
	}
}
