package runner

import (
	"context"
	"net"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/sweepx/pkg/probe"
	"github.com/projectdiscovery/sweepx/pkg/report"
	"github.com/projectdiscovery/sweepx/pkg/sweep"
	"github.com/rs/xid"
	"github.com/shirou/gopsutil/v3/host"
)

// Runner contains the internal logic of a single discovery run.
type Runner struct {
	options *Options
	scanID  string
}

// New creates a new runner instance from validated options.
func New(options *Options) *Runner {
	return &Runner{
		options: options,
		scanID:  xid.New().String(),
	}
}

// Run enumerates the target network and probes every host. Options have been
// validated by ParseOptions, so any error here is an internal failure.
func (r *Runner) Run(ctx context.Context) error {
	targets, err := sweep.Hosts(r.options.Network)
	if err != nil {
		return err
	}

	if info, err := host.Info(); err == nil {
		gologger.Verbose().Msgf("scan %s running on %s (%s %s)", r.scanID, info.Hostname, info.Platform, info.PlatformVersion)
	}
	gologger.Info().Msgf("scanning %s: %d hosts, %d workers, %ds probe timeout [scan %s]",
		r.options.Network, len(targets), r.options.Workers, r.options.Timeout, r.scanID)

	timeout := time.Duration(r.options.Timeout) * time.Second
	probeFn := probe.NewPinger(timeout, r.options.Privileged)
	if r.options.SystemPing {
		probeFn = probe.NewSystem(timeout)
	}

	scanner, err := sweep.New(&sweep.Options{
		Workers: r.options.Workers,
		Probe:   probeFn,
		OnHost: func(ip net.IP) {
			gologger.Silent().Msgf("%s", au.Green(ip.String()))
		},
	})
	if err != nil {
		return err
	}

	result, err := scanner.Scan(ctx, targets)
	if err != nil {
		return err
	}

	if result.Cancelled {
		gologger.Warning().Msgf("scan cancelled: %d of %d hosts probed", result.Completed, len(targets))
	}
	gologger.Info().Msgf("scan completed: %d active hosts (%d probed)", len(result.Hosts), result.Completed)

	if r.options.Save {
		path, err := report.Save(r.options.Output, result.Hosts)
		if err != nil {
			return err
		}
		gologger.Info().Msgf("results saved to %s (owner-only permissions)", path)
	}
	return nil
}
