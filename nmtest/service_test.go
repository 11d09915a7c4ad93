package nmtest

import (
	"context"
	"encoding/xml"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/google/go-cmp/cmp"
)

func call(t *testing.T, s *Service, path dbus.ObjectPath, method string, args ...any) ([]any, error) {
	t.Helper()
	c := s.Object(s.Name(), path).CallWithContext(context.Background(), method, 0, args...)
	return c.Body, c.Err
}

func errName(err error) string {
	var de dbus.Error
	if errors.As(err, &de) {
		return de.Name
	}
	return ""
}

func TestDispatch(t *testing.T) {
	nm := New()

	body, err := call(t, nm.Service, ManagerPath, ManagerInterface+".GetDevices")
	if err != nil {
		t.Fatalf("GetDevices failed: %v", err)
	}
	if diff := cmp.Diff(body, []any{[]dbus.ObjectPath{}}); diff != "" {
		t.Errorf("GetDevices reply wrong (-got+want):\n%s", diff)
	}

	tests := []struct {
		name   string
		dest   string
		path   dbus.ObjectPath
		method string
		args   []any
		want   string
	}{
		{"wrong destination", "org.example", ManagerPath, ManagerInterface + ".GetDevices", nil, ErrServiceUnknown},
		{"no object", BusName, "/nope", ManagerInterface + ".GetDevices", nil, ErrUnknownObject},
		{"no interface", BusName, ManagerPath, "org.example.Nope.Foo", nil, ErrUnknownMethod},
		{"no method", BusName, ManagerPath, ManagerInterface + ".Nope", nil, ErrUnknownMethod},
		{"unqualified", BusName, ManagerPath, "GetDevices", nil, ErrUnknownMethod},
		{"arg count", BusName, ManagerPath, ManagerInterface + ".GetDevices", []any{"x"}, ErrInvalidArgs},
		{"arg type", BusName, ManagerPath, ManagerInterface + ".Enable", []any{"yes"}, ErrInvalidArgs},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := nm.Object(tc.dest, tc.path).CallWithContext(context.Background(), tc.method, 0, tc.args...)
			if got := errName(c.Err); got != tc.want {
				t.Errorf("call error = %v, want %s", c.Err, tc.want)
			}
		})
	}
}

func TestCallLog(t *testing.T) {
	nm := New()
	call(t, nm.Service, ManagerPath, ManagerInterface+".Reload", uint32(1))
	call(t, nm.Service, ManagerPath, ManagerInterface+".Nope")

	want := []Call{
		{Path: ManagerPath, Member: ManagerInterface + ".Reload", Args: []any{uint32(1)}},
		{Path: ManagerPath, Member: ManagerInterface + ".Nope"},
	}
	if diff := cmp.Diff(nm.Calls(), want); diff != "" {
		t.Errorf("Calls() wrong (-got+want):\n%s", diff)
	}
	nm.ResetCalls()
	if got := nm.Calls(); len(got) != 0 {
		t.Errorf("Calls() after ResetCalls() = %v, want empty", got)
	}
}

func TestProperties(t *testing.T) {
	nm := New()
	get := ifaceProps + ".Get"
	set := ifaceProps + ".Set"

	body, err := call(t, nm.Service, ManagerPath, get, ManagerInterface, "Version")
	if err != nil {
		t.Fatalf("Get(Version) failed: %v", err)
	}
	if got := body[0].(dbus.Variant).Value(); got != "1.46.0" {
		t.Errorf("Get(Version) = %v, want 1.46.0", got)
	}

	if _, err := call(t, nm.Service, ManagerPath, set, ManagerInterface, "WirelessEnabled", dbus.MakeVariant(false)); err != nil {
		t.Fatalf("Set(WirelessEnabled) failed: %v", err)
	}
	if v, _ := nm.Property(ManagerPath, ManagerInterface, "WirelessEnabled"); v != false {
		t.Errorf("WirelessEnabled = %v after Set(false)", v)
	}

	tests := []struct {
		name string
		args []any
		want string
	}{
		{"read-only", []any{ManagerInterface, "Version", dbus.MakeVariant("2.0")}, ErrPropertyReadOnly},
		{"wrong type", []any{ManagerInterface, "WirelessEnabled", dbus.MakeVariant("no")}, ErrInvalidArgs},
		{"no property", []any{ManagerInterface, "Nope", dbus.MakeVariant(true)}, ErrUnknownProperty},
		{"no interface", []any{"org.example.Nope", "Nope", dbus.MakeVariant(true)}, ErrUnknownInterface},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := call(t, nm.Service, ManagerPath, set, tc.args...)
			if got := errName(err); got != tc.want {
				t.Errorf("Set() error = %v, want %s", err, tc.want)
			}
		})
	}

	body, err = call(t, nm.Service, SettingsPath, ifaceProps+".GetAll", SettingsInterface)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	all := body[0].(map[string]dbus.Variant)
	if got := all["Hostname"].Value(); got != "localhost" {
		t.Errorf("GetAll()[Hostname] = %v, want localhost", got)
	}
}

func TestIntrospect(t *testing.T) {
	nm := New()
	dev := nm.AddDevice("wlan0", TypeWifi)

	body, err := call(t, nm.Service, dev, ifaceIntrospect+".Introspect")
	if err != nil {
		t.Fatalf("Introspect failed: %v", err)
	}
	var node introspect.Node
	if err := xml.Unmarshal([]byte(body[0].(string)), &node); err != nil {
		t.Fatalf("parsing introspection data: %v", err)
	}

	ifaces := map[string]introspect.Interface{}
	for _, f := range node.Interfaces {
		ifaces[f.Name] = f
	}
	for _, want := range []string{ifaceProps, ifaceIntrospect, DeviceInterface, WirelessInterface} {
		if _, ok := ifaces[want]; !ok {
			t.Errorf("introspection lacks interface %s", want)
		}
	}
	if _, ok := ifaces[WiredInterface]; ok {
		t.Errorf("wireless device introspects as wired")
	}

	var reapply *introspect.Method
	for i, m := range ifaces[DeviceInterface].Methods {
		if m.Name == "Reapply" {
			reapply = &ifaces[DeviceInterface].Methods[i]
		}
	}
	if reapply == nil {
		t.Fatalf("Device interface lacks Reapply")
	}
	var sigs []string
	for _, a := range reapply.Args {
		sigs = append(sigs, a.Direction+":"+a.Type)
	}
	if diff := cmp.Diff(sigs, []string{"in:a{sa{sv}}", "in:t", "in:u"}); diff != "" {
		t.Errorf("Reapply args wrong (-got+want):\n%s", diff)
	}

	access := map[string]string{}
	for _, p := range ifaces[DeviceInterface].Properties {
		access[p.Name] = p.Access
	}
	if access["Managed"] != "readwrite" || access["Udi"] != "read" {
		t.Errorf("property access = Managed:%s Udi:%s, want readwrite and read", access["Managed"], access["Udi"])
	}

	body, err = call(t, nm.Service, "/org/freedesktop/NetworkManager", ifaceIntrospect+".Introspect")
	if err != nil {
		t.Fatalf("Introspect(manager) failed: %v", err)
	}
	for _, child := range []string{`<node name="Devices">`, `<node name="Settings">`} {
		if !strings.Contains(body[0].(string), child) {
			t.Errorf("manager introspection lacks child %s", child)
		}
	}
}

func TestLatency(t *testing.T) {
	nm := New()
	nm.SetLatency(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	c := nm.Object(BusName, ManagerPath).CallWithContext(ctx, ManagerInterface+".GetDevices", 0)
	if !errors.Is(c.Err, context.DeadlineExceeded) {
		t.Errorf("slow call error = %v, want DeadlineExceeded", c.Err)
	}
	if got := nm.Calls(); len(got) != 0 {
		t.Errorf("abandoned call reached the service: %v", got)
	}
}

func TestWireValue(t *testing.T) {
	type pair struct {
		A uint32
		B string
		c int
	}
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"basic", uint32(7), uint32(7)},
		{"struct", pair{1, "x", 2}, []any{uint32(1), "x"}},
		{"struct slice", []pair{{1, "x", 0}}, [][]any{{uint32(1), "x"}}},
		{"bytes", []byte("ab"), []byte("ab")},
		{"map of structs", map[string]pair{"k": {2, "y", 0}}, map[string][]any{"k": {uint32(2), "y"}}},
		{"paths", []dbus.ObjectPath{"/a"}, []dbus.ObjectPath{"/a"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := wireValue(reflect.ValueOf(tc.in)).Interface()
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("wireValue() wrong (-got+want):\n%s", diff)
			}
		})
	}

	v := wireValue(reflect.ValueOf(dbus.MakeVariant(pair{3, "z", 0}))).Interface().(dbus.Variant)
	if got, want := v.Signature().String(), "(us)"; got != want {
		t.Errorf("variant signature = %s, want %s", got, want)
	}
	if diff := cmp.Diff(v.Value(), []any{uint32(3), "z"}); diff != "" {
		t.Errorf("variant value wrong (-got+want):\n%s", diff)
	}
}
