//go:build !windows

package probe

import (
	"net"
	"strconv"
	"time"
)

// pingArgs builds the arguments for a single echo request on POSIX systems:
// -c 1 sends one packet, -W bounds the wait in whole seconds.
func pingArgs(ip net.IP, timeout time.Duration) []string {
	seconds := int(timeout / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return []string{"-c", "1", "-W", strconv.Itoa(seconds), ip.String()}
}
