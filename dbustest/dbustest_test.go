package dbustest_test

import (
	"context"
	"testing"

	"github.com/danderson/networkmanager/dbustest"
	"github.com/godbus/dbus/v5"
)

func TestBus(t *testing.T) {
	b := dbustest.New(t, true)
	conn := b.MustConn(t)
	if err := conn.Object("org.freedesktop.DBus", "/org/freedesktop/DBus").CallWithContext(context.Background(), "org.freedesktop.DBus.Peer.Ping", 0).Err; err != nil {
		t.Fatalf("failed to ping test bus: %v", err)
	}

	reply, err := conn.RequestName("org.example.Test", 0)
	if err != nil {
		t.Fatalf("requesting name: %v", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		t.Errorf("RequestName() = %v, want primary owner", reply)
	}
}
