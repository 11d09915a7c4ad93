// Package bus provides handles to objects on a message bus.
//
// A [Conn] wraps a godbus connection (or anything else that can
// resolve remote objects, see [Transport]). From a Conn you derive a
// [Peer] for a bus name, an [Object] at a path of that peer, and an
// [Interface] implemented by that object. These handles are plain
// values: they hold no state beyond their address, and every method
// call or property access resolves the remote object afresh.
package bus

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-logr/logr"
	"github.com/godbus/dbus/v5"
)

// DefaultTimeout is the per-call timeout applied when a call's
// context has no deadline, and [Options.Timeout] is zero.
const DefaultTimeout = 5 * time.Second

// Transport resolves remote objects. *dbus.Conn implements
// Transport.
type Transport interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
}

// Options configures a [Conn].
type Options struct {
	// Timeout bounds calls whose context carries no deadline. Zero
	// means DefaultTimeout. A negative value disables the timeout,
	// leaving cancellation entirely to the caller's context.
	Timeout time.Duration
	// Logger receives a V(1) entry for every call. The zero value
	// discards logs.
	Logger logr.Logger
}

// Conn is a connection to a message bus.
//
// A Conn is safe for concurrent use. Handles derived from a Conn
// share it.
type Conn struct {
	t       Transport
	timeout time.Duration
	log     logr.Logger
}

// New returns a Conn that issues calls through t.
func New(t Transport, opts Options) *Conn {
	ret := &Conn{
		t:       t,
		timeout: opts.Timeout,
		log:     opts.Logger,
	}
	if ret.timeout == 0 {
		ret.timeout = DefaultTimeout
	}
	if ret.log.GetSink() == nil {
		ret.log = logr.Discard()
	}
	return ret
}

// SystemBus connects to the system bus.
//
// ctx bounds connection setup only. Once SystemBus returns, the
// connection stays open until [Conn.Close], regardless of ctx.
//
// The returned Conn has a private underlying connection, which is
// closed by [Conn.Close].
func SystemBus(ctx context.Context, opts Options) (*Conn, error) {
	c, err := connect(ctx, func() (*dbus.Conn, error) { return dbus.ConnectSystemBus() })
	if err != nil {
		return nil, fmt.Errorf("connecting to system bus: %w", err)
	}
	return New(c, opts), nil
}

// Dial connects to the bus at the given address, for example
// "unix:path=/run/dbus/system_bus_socket".
//
// ctx bounds connection setup only, as for [SystemBus].
func Dial(ctx context.Context, address string, opts Options) (*Conn, error) {
	c, err := connect(ctx, func() (*dbus.Conn, error) { return dbus.Connect(address) })
	if err != nil {
		return nil, fmt.Errorf("connecting to bus %q: %w", address, err)
	}
	return New(c, opts), nil
}

// connect runs dial, giving up when ctx is done. A connection that
// completes after that is closed.
//
// dial must not use dbus.WithContext: godbus closes such a
// connection when its context ends.
func connect(ctx context.Context, dial func() (*dbus.Conn, error)) (*dbus.Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	type result struct {
		c   *dbus.Conn
		err error
	}
	done := make(chan result, 1)
	go func() {
		c, err := dial()
		done <- result{c, err}
	}()
	select {
	case r := <-done:
		return r.c, r.err
	case <-ctx.Done():
		go func() {
			if r := <-done; r.c != nil {
				r.c.Close()
			}
		}()
		return nil, ctx.Err()
	}
}

// Close closes the underlying transport, if it can be closed.
func (c *Conn) Close() error {
	if cl, ok := c.t.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// Transport returns the transport used by c.
func (c *Conn) Transport() Transport { return c.t }

// Peer returns a Peer for the given bus name.
func (c *Conn) Peer(name string) Peer {
	return Peer{
		c:    c,
		name: name,
	}
}

func (c *Conn) call(ctx context.Context, dest string, path dbus.ObjectPath, iface, method string, args []any, ret []any) error {
	member := iface + "." + method
	if dest == "" {
		return &Error{Destination: dest, Path: path, Member: member, Err: ErrMissingDestination}
	}
	if !path.IsValid() {
		return &Error{Destination: dest, Path: path, Member: member, Err: fmt.Errorf("invalid object path %q", path)}
	}

	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	call := c.t.Object(dest, path).CallWithContext(ctx, member, 0, args...)
	err := call.Err
	if err == nil && len(ret) > 0 {
		err = call.Store(ret...)
	}
	c.log.V(1).Info("call", "destination", dest, "path", path, "member", member, "elapsed", time.Since(start), "err", err)

	if err != nil {
		return &Error{Destination: dest, Path: path, Member: member, Err: remoteError(err)}
	}
	return nil
}
