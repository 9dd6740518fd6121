// Package sweep implements concurrent host discovery over an IPv4 network
// range using a bounded pool of reachability probes.
//
// The package provides two main entry points:
//   - Hosts: Expands a CIDR into its usable host addresses
//   - Scanner.Scan: Probes every address with bounded concurrency
//
// Discovery is performed by:
// - Expanding the network range to individual IPs in address order
// - Dispatching one probe per IP through an adaptive waitgroup capped at the
//   configured worker count
// - Collecting responsive addresses as probes complete
//
// Example usage:
//
//	targets, err := sweep.Hosts("192.168.1.0/24")
//	scanner, err := sweep.New(&sweep.Options{Workers: 30, Probe: probeFn})
//	result, err := scanner.Scan(ctx, targets)
//
// Cancellation is cooperative: once the context is done no further probes are
// dispatched, but probes already in flight are left to resolve on their own.
// Each probe is individually time-bounded, so the pool drains within one probe
// timeout after cancellation.
//
// Limitations:
// - Hosts with ICMP disabled or firewalled will not respond
// - Some networks may rate-limit ICMP traffic
// - Large network scans may take significant time
package sweep
