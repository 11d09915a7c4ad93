package networkmanager

import (
	"time"
)

// BootTime is a timestamp on the CLOCK_BOOTTIME clock, expressed as
// the time elapsed since the system booted.
type BootTime time.Duration

// Time returns the wall-clock time corresponding to t, assuming the
// system clock has not been stepped since t.
func (t BootTime) Time() (time.Time, error) {
	now := time.Now()
	up, err := sinceBoot()
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(time.Duration(t) - up), nil
}

func (t BootTime) String() string {
	return time.Duration(t).String()
}

// bootSeconds converts a seconds-since-boot value to a BootTime.
// Negative values, which NetworkManager uses for "never", are
// reported as absent.
func bootSeconds(v int64) (BootTime, bool) {
	if v < 0 {
		return 0, false
	}
	return BootTime(time.Duration(v) * time.Second), true
}

func bootMillis(v int64) (BootTime, bool) {
	if v < 0 {
		return 0, false
	}
	return BootTime(time.Duration(v) * time.Millisecond), true
}
