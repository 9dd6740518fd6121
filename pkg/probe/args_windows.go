//go:build windows

package probe

import (
	"net"
	"strconv"
	"time"
)

// pingArgs builds the arguments for a single echo request on Windows:
// -n 1 sends one echo request, -w bounds the wait in milliseconds.
func pingArgs(ip net.IP, timeout time.Duration) []string {
	millis := int(timeout / time.Millisecond)
	if millis < 1 {
		millis = 1000
	}
	return []string{"-n", "1", "-w", strconv.Itoa(millis), ip.String()}
}
