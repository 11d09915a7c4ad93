// Package dbustest runs a private dbus-daemon for tests, so that
// NetworkManager fakes can be served and called over a real bus.
package dbustest

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
)

//go:embed dbus.config
var configTemplate string

const startTimeout = 10 * time.Second

// Available reports whether dbus-daemon and dbus-monitor are
// installed.
func Available() bool {
	for _, bin := range []string{"dbus-daemon", "dbus-monitor"} {
		if _, err := exec.LookPath(bin); err != nil {
			return false
		}
	}
	return true
}

// Bus is a dbus-daemon private to one test.
type Bus struct {
	sock   string
	daemon *process
	mon    *process
}

// New starts a bus for t, and stops it when t finishes. Any client
// may own any name on the bus, and nothing is activatable.
//
// New skips t if [Available] reports false. If logTraffic is true,
// every message on the bus is written to t's log.
func New(t *testing.T, logTraffic bool) *Bus {
	t.Helper()
	if !Available() {
		t.Skip("dbus-daemon or dbus-monitor missing, skipping test that needs a bus")
	}

	dir := t.TempDir()
	services := filepath.Join(dir, "services")
	if err := os.Mkdir(services, 0o700); err != nil {
		t.Fatalf("creating services dir: %v", err)
	}
	cfg := filepath.Join(dir, "bus.config")
	body := strings.ReplaceAll(configTemplate, "__SERVICEDIR__", services)
	if err := os.WriteFile(cfg, []byte(body), 0o600); err != nil {
		t.Fatalf("writing bus config: %v", err)
	}

	b := &Bus{sock: filepath.Join(dir, "bus.sock")}
	daemon := exec.Command("dbus-daemon",
		"--config-file="+cfg,
		"--address="+b.Address(),
		"--nofork", "--nopidfile", "--nosyslog")
	daemon.Stdout = os.Stderr
	daemon.Stderr = os.Stderr
	p, err := start(daemon)
	if err != nil {
		t.Fatalf("starting dbus-daemon: %v", err)
	}
	b.daemon = p
	t.Cleanup(b.stop)

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()
	if err := waitForBus(ctx, b.Address()); err != nil {
		t.Fatalf("waiting for bus: %v", err)
	}

	if logTraffic {
		mon, err := startMonitor(t, b.Address())
		if err != nil {
			t.Fatalf("starting dbus-monitor: %v", err)
		}
		b.mon = mon
		select {
		case <-mon.ready:
		case <-ctx.Done():
			t.Fatalf("dbus-monitor did not start: %v", ctx.Err())
		}
	}
	return b
}

// waitForBus retries connecting to addr until the bus answers a
// ping. The socket file appears before dbus-daemon listens on it.
func waitForBus(ctx context.Context, addr string) error {
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
	for {
		err := ping(ctx, addr)
		if err == nil {
			return nil
		}
		select {
		case <-tick.C:
		case <-ctx.Done():
			return fmt.Errorf("%w (last error: %v)", ctx.Err(), err)
		}
	}
}

func ping(ctx context.Context, addr string) error {
	conn, err := dbus.Connect(addr)
	if err != nil {
		return err
	}
	defer conn.Close()
	return conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.Peer.Ping", 0).Err
}

func (b *Bus) stop() {
	if b.mon != nil {
		b.mon.kill()
		// t.Log panics once the test has completed.
		<-b.mon.drained
	}
	b.daemon.kill()
}

// Socket returns the path of the bus's unix socket.
func (b *Bus) Socket() string { return b.sock }

// Address returns the bus address, for [dbus.Connect] or
// bus.Dial.
func (b *Bus) Address() string { return "unix:path=" + b.sock }

// MustConn connects to the bus, and fails t if it cannot. The
// connection stays open until t finishes.
func (b *Bus) MustConn(t *testing.T) *dbus.Conn {
	t.Helper()
	// No dbus.WithContext: godbus would close the connection when
	// that context ends.
	conn, err := dbus.Connect(b.Address())
	if err != nil {
		t.Fatalf("connecting to test bus: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// process is a helper process that must outlive the test body.
type process struct {
	cmd     *exec.Cmd
	stopped chan struct{} // closed when cmd exits
	ready   chan struct{} // closed when the process is usable
	drained chan struct{} // closed when all output is handled

	mu       sync.Mutex
	stopping bool
}

func start(cmd *exec.Cmd) (*process, error) {
	p := &process{
		cmd:     cmd,
		stopped: make(chan struct{}),
		ready:   make(chan struct{}),
		drained: make(chan struct{}),
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	go func() {
		defer close(p.stopped)
		err := cmd.Wait()
		p.mu.Lock()
		defer p.mu.Unlock()
		if !p.stopping {
			panic(fmt.Errorf("%s exited during test: %w", filepath.Base(cmd.Path), err))
		}
	}()
	return p, nil
}

func (p *process) kill() {
	p.mu.Lock()
	p.stopping = true
	p.mu.Unlock()
	p.cmd.Process.Kill()
	select {
	case <-p.stopped:
	case <-time.After(startTimeout):
		fmt.Fprintf(os.Stderr, "timed out waiting for %s to exit\n", filepath.Base(p.cmd.Path))
	}
}

// startMonitor runs dbus-monitor on addr, logging one message per
// t.Log call.
func startMonitor(t *testing.T, addr string) (*process, error) {
	pr, pw := io.Pipe()
	cmd := exec.Command("dbus-monitor", "--address", addr)
	cmd.Stdout = pw
	cmd.Stderr = pw
	p, err := start(cmd)
	if err != nil {
		return nil, err
	}

	go func() {
		<-p.stopped
		pw.Close()
	}()
	go func() {
		defer close(p.drained)
		logMessages(t, pr, p.ready)
	}()
	return p, nil
}

// isMessageStart reports whether line begins a new message in
// dbus-monitor's output. Continuation lines are indented.
func isMessageStart(line string) bool {
	for _, kind := range []string{"method call ", "method return ", "signal ", "error "} {
		if strings.HasPrefix(line, kind) {
			return true
		}
	}
	return false
}

// logMessages copies dbus-monitor output from r to t's log, grouping
// the lines of each message into one entry. It closes first when
// the first line arrives.
func logMessages(t *testing.T, r io.Reader, first chan struct{}) {
	var (
		msg  []string
		once sync.Once
	)
	flush := func() {
		if len(msg) == 0 {
			return
		}
		t.Log(strings.Join(msg, "\n"))
		msg = msg[:0]
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if isMessageStart(line) {
			flush()
		}
		msg = append(msg, line)
		once.Do(func() { close(first) })
	}
	flush()
}
