// Package probe provides reachability checks used by the sweep coordinator.
// Every prober answers a single question, "did this address respond within
// the timeout", and collapses all failure modes (socket errors, timeouts,
// subprocess failures) to false so that one broken probe can never abort a
// scan.
package probe

import (
	"context"
	"net"
	"time"

	"github.com/go-ping/ping"
)

// DefaultTimeout bounds a single reachability check.
const DefaultTimeout = time.Second

// NewPinger returns a probe that sends one ICMP echo request through
// go-ping and reports whether a reply arrived within the timeout. With
// privileged set it uses a raw ICMP socket (requires root/admin), otherwise
// an unprivileged UDP datagram socket.
func NewPinger(timeout time.Duration, privileged bool) func(ctx context.Context, ip net.IP) bool {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return func(ctx context.Context, ip net.IP) bool {
		if ctx.Err() != nil {
			return false
		}

		pinger, err := ping.NewPinger(ip.String())
		if err != nil {
			return false
		}
		pinger.Count = 1
		pinger.Timeout = timeout
		pinger.SetPrivileged(privileged)

		if err := pinger.Run(); err != nil {
			return false
		}
		return pinger.Statistics().PacketsRecv > 0
	}
}
