package main

import (
	"bytes"
	"context"
	"slices"
	"testing"

	"github.com/danderson/networkmanager"
	"github.com/danderson/networkmanager/bus"
	"github.com/danderson/networkmanager/nmtest"
	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/google/go-cmp/cmp"
)

func TestPrinterText(t *testing.T) {
	var buf bytes.Buffer
	p, err := newPrinter(&buf, "text")
	if err != nil {
		t.Fatal(err)
	}
	p.Table("DEVICE", "TYPE")
	p.Row("eth0", networkmanager.DeviceTypeEthernet)
	p.Row("wlan0", networkmanager.DeviceTypeWifi)
	if err := p.Flush(); err != nil {
		t.Fatal(err)
	}
	want := "DEVICE  TYPE\neth0    ethernet\nwlan0   wifi\n"
	if diff := cmp.Diff(buf.String(), want); diff != "" {
		t.Errorf("text output wrong (-got+want):\n%s", diff)
	}
}

func TestPrinterYAML(t *testing.T) {
	var buf bytes.Buffer
	p, err := newPrinter(&buf, "yaml")
	if err != nil {
		t.Fatal(err)
	}
	p.Record(Field{"State", networkmanager.DeviceTypeWifi}, Field{"MTU", uint32(1500)})
	if err := p.Flush(); err != nil {
		t.Fatal(err)
	}
	want := "State: wifi\nMTU: 1500\n"
	if diff := cmp.Diff(buf.String(), want); diff != "" {
		t.Errorf("single record wrong (-got+want):\n%s", diff)
	}

	buf.Reset()
	p.Table("NAME", "SAVED")
	p.Row("home", true)
	p.Row("work", false)
	if err := p.Flush(); err != nil {
		t.Fatal(err)
	}
	want = "- name: home\n  saved: true\n- name: work\n  saved: false\n"
	if diff := cmp.Diff(buf.String(), want); diff != "" {
		t.Errorf("table wrong (-got+want):\n%s", diff)
	}

	if _, err := newPrinter(&buf, "xml"); err == nil {
		t.Error("newPrinter(xml) succeeded")
	}
}

func TestWalkObjects(t *testing.T) {
	fake := nmtest.New()
	eth := fake.AddDevice("eth0", nmtest.TypeEthernet)
	wlan := fake.AddDevice("wlan0", nmtest.TypeWifi)
	c := networkmanager.New(bus.New(fake, bus.Options{}))

	var seen []dbus.ObjectPath
	err := walkObjects(context.Background(), c.Object(), func(obj bus.Object, node *introspect.Node) {
		seen = append(seen, obj.Path())
	})
	if err != nil {
		t.Fatalf("walkObjects() failed: %v", err)
	}
	if len(seen) == 0 || seen[0] != c.Object().Path() {
		t.Fatalf("walkObjects() visited %v first, want %s", seen, c.Object().Path())
	}
	if !slices.IsSorted(seen) {
		t.Errorf("walkObjects() order not sorted: %v", seen)
	}
	for _, want := range []dbus.ObjectPath{eth, wlan} {
		if !slices.Contains(seen, want) {
			t.Errorf("walkObjects() did not visit %s", want)
		}
	}
}

func TestParseOnOff(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{"off", false, false},
		{"yes", false, true},
	}
	for _, tc := range tests {
		got, err := parseOnOff(tc.in)
		if gotErr := err != nil; gotErr != tc.wantErr {
			t.Errorf("parseOnOff(%q) err = %v, want err %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("parseOnOff(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSecurity(t *testing.T) {
	fake := nmtest.New()
	wlan := fake.AddDevice("wlan0", nmtest.TypeWifi)
	fake.AddAccessPoint(wlan, nmtest.AccessPoint{SSID: []byte("open")})
	c := networkmanager.New(bus.New(fake, bus.Options{}))
	ctx := context.Background()

	devs, err := wifiDevices(ctx, c, "")
	if err != nil {
		t.Fatalf("wifiDevices() failed: %v", err)
	}
	if len(devs) != 1 {
		t.Fatalf("wifiDevices() = %v, want 1 device", devs)
	}
	aps, err := devs[0].AccessPoints(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for ap := range aps {
		got, err := security(ctx, ap)
		if err != nil {
			t.Fatalf("security() failed: %v", err)
		}
		if got != "open" {
			t.Errorf("security() = %q, want open", got)
		}
	}

	if _, err := wifiDevices(ctx, c, "nope0"); err == nil {
		t.Error("wifiDevices(nope0) succeeded")
	}
}
