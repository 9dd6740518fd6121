package probe

import (
	"context"
	"net"
	"os/exec"
	"time"
)

// NewSystem returns a probe that shells out to the platform ping utility for
// one echo request. Useful when raw or datagram ICMP sockets are unavailable.
// The subprocess is bounded both by the utility's own timeout argument and by
// a slightly larger context deadline in case the utility misbehaves.
func NewSystem(timeout time.Duration) func(ctx context.Context, ip net.IP) bool {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return func(ctx context.Context, ip net.IP) bool {
		if ctx.Err() != nil {
			return false
		}

		// In-flight probes must resolve on their own after a scan is
		// cancelled, so the deadline derives from Background, not ctx.
		runCtx, cancel := context.WithTimeout(context.Background(), timeout+time.Second)
		defer cancel()

		cmd := exec.CommandContext(runCtx, "ping", pingArgs(ip, timeout)...)
		cmd.Stdout = nil
		cmd.Stderr = nil
		return cmd.Run() == nil
	}
}
