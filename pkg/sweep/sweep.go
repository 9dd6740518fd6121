package sweep

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	syncutil "github.com/projectdiscovery/utils/sync"
)

const (
	// DefaultWorkers is the default number of concurrent probes.
	DefaultWorkers = 30
	// MaxWorkers is the maximum accepted number of concurrent probes.
	MaxWorkers = 200
)

// ProbeFunc performs a single bounded-time reachability check against one
// address. Implementations must never block past their configured timeout and
// must collapse every failure mode to false.
type ProbeFunc func(ctx context.Context, ip net.IP) bool

// Options contains the configuration options for a Scanner.
type Options struct {
	// Workers caps the number of probes in flight at any instant. Must be
	// in [1, MaxWorkers].
	Workers int
	// Probe is the reachability check invoked once per target address.
	Probe ProbeFunc
	// OnHost, if set, is invoked as soon as a probe reports an address
	// reachable. It may be called concurrently from multiple workers.
	OnHost func(ip net.IP)
}

// Result holds the outcome of a scan.
type Result struct {
	// Hosts contains the reachable addresses in probe completion order,
	// not address order.
	Hosts []net.IP
	// Dispatched is the number of probes issued.
	Dispatched int
	// Completed is the number of probes that resolved.
	Completed int
	// Cancelled reports whether the scan stopped dispatching early because
	// the context was done.
	Cancelled bool
}

// Scanner probes target addresses with bounded concurrency.
type Scanner struct {
	options *Options
}

// New creates a Scanner after validating its options.
func New(options *Options) (*Scanner, error) {
	if options == nil {
		return nil, fmt.Errorf("options must not be nil")
	}
	if options.Workers < 1 || options.Workers > MaxWorkers {
		return nil, fmt.Errorf("workers must be between 1 and %d, got %d", MaxWorkers, options.Workers)
	}
	if options.Probe == nil {
		return nil, fmt.Errorf("a probe function is required")
	}
	return &Scanner{options: options}, nil
}

// Scan probes every target and returns the reachable subset. Targets are
// dispatched in slice order; at most Options.Workers probes are unresolved at
// any instant. When ctx is done no further probes are dispatched, in-flight
// probes are drained, and the partial result is returned with Cancelled set.
// A probe failure never fails the scan: it only marks that address as not
// reachable.
func (s *Scanner) Scan(ctx context.Context, targets []net.IP) (*Result, error) {
	awg, err := syncutil.New(syncutil.WithSize(s.options.Workers))
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	result := &Result{}
	var mu sync.Mutex
	var completed int64

	for _, target := range targets {
		select {
		case <-ctx.Done():
			result.Cancelled = true
			goto done
		default:
		}

		// Blocks until a pool slot is free, keeping at most Workers
		// probes in flight. Cancellation may arrive during the wait, so
		// it is checked again before the probe is issued.
		awg.Add()
		select {
		case <-ctx.Done():
			awg.Done()
			result.Cancelled = true
			goto done
		default:
		}
		result.Dispatched++

		go func(ip net.IP) {
			defer awg.Done()
			defer atomic.AddInt64(&completed, 1)

			if !s.options.Probe(ctx, ip) {
				return
			}

			mu.Lock()
			result.Hosts = append(result.Hosts, ip)
			mu.Unlock()

			if s.options.OnHost != nil {
				s.options.OnHost(ip)
			}
		}(target)
	}

done:
	awg.Wait()

	if ctx.Err() != nil {
		result.Cancelled = true
	}
	result.Completed = int(atomic.LoadInt64(&completed))
	return result, nil
}
