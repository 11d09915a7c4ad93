package dbustest

import "testing"

func TestIsMessageStart(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"method call time=1.2 sender=:1.3 -> destination=org.freedesktop.NetworkManager serial=2 path=/org/freedesktop/NetworkManager; interface=org.freedesktop.NetworkManager; member=GetDevices", true},
		{"method return time=1.3 sender=:1.2 -> destination=:1.3 serial=4 reply_serial=2", true},
		{"signal time=1.1 sender=org.freedesktop.DBus -> destination=:1.3 serial=2 path=/org/freedesktop/DBus; interface=org.freedesktop.DBus; member=NameAcquired", true},
		{"error time=1.4 sender=:1.2 -> destination=:1.3 error_name=org.freedesktop.NetworkManager.UnknownDevice reply_serial=5", true},
		{`   string "eth0"`, false},
		{"   array [", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := isMessageStart(tc.line); got != tc.want {
			t.Errorf("isMessageStart(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}
