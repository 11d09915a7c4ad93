//go:build !linux

package networkmanager

import (
	"errors"
	"time"
)

func sinceBoot() (time.Duration, error) {
	return 0, errors.New("CLOCK_BOOTTIME is only available on Linux")
}
