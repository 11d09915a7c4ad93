package bus_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/danderson/networkmanager/bus"
	"github.com/danderson/networkmanager/dbustest"
	"github.com/go-logr/logr/funcr"
	"github.com/godbus/dbus/v5"
	"github.com/google/go-cmp/cmp"
)

type handler func(ctx context.Context, method string, args []any) ([]any, error)

// fakeTransport answers every call with handler, and records the
// objects it was asked to resolve.
type fakeTransport struct {
	handler handler

	mu       sync.Mutex
	resolved []string
}

func (f *fakeTransport) Object(dest string, path dbus.ObjectPath) dbus.BusObject {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolved = append(f.resolved, dest+":"+string(path))
	return &fakeObject{f: f, dest: dest, path: path}
}

func (f *fakeTransport) Resolved() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.resolved...)
}

type fakeObject struct {
	dbus.BusObject
	f    *fakeTransport
	dest string
	path dbus.ObjectPath
}

func (o *fakeObject) CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...any) *dbus.Call {
	body, err := o.f.handler(ctx, method, args)
	return &dbus.Call{
		Destination: o.dest,
		Path:        o.path,
		Method:      method,
		Args:        args,
		Body:        body,
		Err:         err,
	}
}

func reply(vals ...any) handler {
	return func(context.Context, string, []any) ([]any, error) {
		return vals, nil
	}
}

func TestMissingDestination(t *testing.T) {
	tr := &fakeTransport{handler: reply()}
	conn := bus.New(tr, bus.Options{})

	err := conn.Peer("").Object("/org/example").Interface("org.example.Foo").Call(context.Background(), "Bar", nil)
	if !errors.Is(err, bus.ErrMissingDestination) {
		t.Errorf("Call() with no destination = %v, want ErrMissingDestination", err)
	}
	if got := tr.Resolved(); len(got) != 0 {
		t.Errorf("transport resolved %v, want nothing", got)
	}
}

func TestResolvesEveryCall(t *testing.T) {
	tr := &fakeTransport{handler: reply()}
	conn := bus.New(tr, bus.Options{})
	obj := conn.Peer("org.example").Object("/org/example/Thing")
	iface := obj.Interface("org.example.Thing")

	for range 3 {
		if err := iface.Call(context.Background(), "Poke", nil); err != nil {
			t.Fatalf("Call() failed: %v", err)
		}
	}
	if err := obj.Child("Sub").Interface("org.example.Thing").Call(context.Background(), "Poke", nil); err != nil {
		t.Fatalf("Call() on child failed: %v", err)
	}

	want := []string{
		"org.example:/org/example/Thing",
		"org.example:/org/example/Thing",
		"org.example:/org/example/Thing",
		"org.example:/org/example/Thing/Sub",
	}
	if diff := cmp.Diff(tr.Resolved(), want); diff != "" {
		t.Errorf("resolved objects wrong (-got+want):\n%s", diff)
	}
}

func block(ctx context.Context, method string, args []any) ([]any, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestDefaultTimeout(t *testing.T) {
	tr := &fakeTransport{handler: block}
	conn := bus.New(tr, bus.Options{Timeout: 10 * time.Millisecond})

	err := conn.Peer("org.example").Object("/").Interface("org.example.Slow").Call(context.Background(), "Wait", nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Call() = %v, want DeadlineExceeded", err)
	}
}

func TestCallerDeadlineWins(t *testing.T) {
	tr := &fakeTransport{handler: block}
	conn := bus.New(tr, bus.Options{Timeout: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := conn.Peer("org.example").Object("/").Interface("org.example.Slow").Call(ctx, "Wait", nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Call() = %v, want DeadlineExceeded", err)
	}
}

func TestTimeoutDisabled(t *testing.T) {
	tr := &fakeTransport{handler: block}
	conn := bus.New(tr, bus.Options{Timeout: -1})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- conn.Peer("org.example").Object("/").Interface("org.example.Slow").Call(ctx, "Wait", nil)
	}()

	select {
	case err := <-done:
		t.Fatalf("Call() returned early: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Call() = %v, want Canceled", err)
	}
}

func TestCallError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantName    string
		wantDetail  string
		unsupported bool
	}{
		{
			name:        "unknown method",
			err:         dbus.Error{Name: "org.freedesktop.DBus.Error.UnknownMethod", Body: []any{"no such method"}},
			wantName:    "org.freedesktop.DBus.Error.UnknownMethod",
			wantDetail:  "no such method",
			unsupported: true,
		},
		{
			name:        "pointer error",
			err:         &dbus.Error{Name: "org.freedesktop.DBus.Error.UnknownProperty"},
			wantName:    "org.freedesktop.DBus.Error.UnknownProperty",
			unsupported: true,
		},
		{
			name:       "application error",
			err:        dbus.Error{Name: "org.freedesktop.NetworkManager.Device.NotActive", Body: []any{"not active"}},
			wantName:   "org.freedesktop.NetworkManager.Device.NotActive",
			wantDetail: "not active",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := &fakeTransport{handler: func(context.Context, string, []any) ([]any, error) {
				return nil, tc.err
			}}
			conn := bus.New(tr, bus.Options{})
			err := conn.Peer("org.example").Object("/x").Interface("org.example.X").Call(context.Background(), "Do", nil)

			var be *bus.Error
			if !errors.As(err, &be) {
				t.Fatalf("Call() = %v, want *bus.Error", err)
			}
			if got, want := be.Member, "org.example.X.Do"; got != want {
				t.Errorf("Error.Member = %q, want %q", got, want)
			}
			var ce bus.CallError
			if !errors.As(err, &ce) {
				t.Fatalf("Call() = %v, want CallError", err)
			}
			if ce.Name != tc.wantName || ce.Detail != tc.wantDetail {
				t.Errorf("CallError = %+v, want {%s %s}", ce, tc.wantName, tc.wantDetail)
			}
			if got := errors.Is(err, bus.ErrUnsupportedMethod); got != tc.unsupported {
				t.Errorf("errors.Is(err, ErrUnsupportedMethod) = %v, want %v", got, tc.unsupported)
			}
		})
	}
}

func TestProperties(t *testing.T) {
	var gotArgs []any
	tr := &fakeTransport{handler: func(_ context.Context, method string, args []any) ([]any, error) {
		gotArgs = args
		switch method {
		case "org.freedesktop.DBus.Properties.Get":
			return []any{dbus.MakeVariant(uint32(42))}, nil
		case "org.freedesktop.DBus.Properties.Set":
			return nil, nil
		case "org.freedesktop.DBus.Properties.GetAll":
			return []any{map[string]dbus.Variant{"A": dbus.MakeVariant("x")}}, nil
		}
		return nil, dbus.Error{Name: "org.freedesktop.DBus.Error.UnknownMethod"}
	}}
	conn := bus.New(tr, bus.Options{})
	iface := conn.Peer("org.example").Object("/x").Interface("org.example.X")
	ctx := context.Background()

	var v uint32
	if err := iface.GetProperty(ctx, "Count", &v); err != nil {
		t.Fatalf("GetProperty() failed: %v", err)
	}
	if v != 42 {
		t.Errorf("GetProperty() = %d, want 42", v)
	}
	if diff := cmp.Diff(gotArgs, []any{"org.example.X", "Count"}); diff != "" {
		t.Errorf("Get args wrong (-got+want):\n%s", diff)
	}

	if got, err := bus.GetProperty[uint32](ctx, iface, "Count"); err != nil || got != 42 {
		t.Errorf("GetProperty[uint32]() = %d, %v, want 42, nil", got, err)
	}

	var ss []string
	if err := iface.GetProperty(ctx, "Count", &ss); err == nil {
		t.Errorf("GetProperty() into []string succeeded, want error")
	}
	if err := iface.GetProperty(ctx, "Count", v); err == nil {
		t.Errorf("GetProperty() into non-pointer succeeded, want error")
	}

	if err := iface.SetProperty(ctx, "Count", uint32(7)); err != nil {
		t.Fatalf("SetProperty() failed: %v", err)
	}
	if diff := cmp.Diff(gotArgs, []any{"org.example.X", "Count", dbus.MakeVariant(uint32(7))}, cmp.Comparer(variantEqual)); diff != "" {
		t.Errorf("Set args wrong (-got+want):\n%s", diff)
	}

	all, err := iface.GetAllProperties(ctx)
	if err != nil {
		t.Fatalf("GetAllProperties() failed: %v", err)
	}
	if diff := cmp.Diff(all, map[string]any{"A": "x"}); diff != "" {
		t.Errorf("GetAllProperties() wrong (-got+want):\n%s", diff)
	}
}

func variantEqual(a, b dbus.Variant) bool {
	return a.Signature() == b.Signature() && cmp.Equal(a.Value(), b.Value())
}

func TestCallLogging(t *testing.T) {
	var (
		mu    sync.Mutex
		lines []string
	)
	log := funcr.New(func(prefix, args string) {
		mu.Lock()
		defer mu.Unlock()
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	tr := &fakeTransport{handler: reply()}
	conn := bus.New(tr, bus.Options{Logger: log})
	if err := conn.Peer("org.example").Ping(context.Background()); err != nil {
		t.Fatalf("Ping() failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], `"member"="org.freedesktop.DBus.Peer.Ping"`) {
		t.Errorf("log line %q does not name the called member", lines[0])
	}
}

func TestDialOutlivesSetupContext(t *testing.T) {
	b := dbustest.New(t, false)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	conn, err := bus.Dial(ctx, b.Address(), bus.Options{})
	cancel()
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	defer conn.Close()

	if err := conn.Peer("org.freedesktop.DBus").Ping(context.Background()); err != nil {
		t.Errorf("Ping() after setup context ended = %v, want nil", err)
	}
}

func TestDialCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bus.Dial(ctx, "unix:path=/nonexistent", bus.Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Dial() with canceled context = %v, want context.Canceled", err)
	}
}
