package runner

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/logrusorgru/aurora/v4"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/sweepx/pkg/sweep"
	envutil "github.com/projectdiscovery/utils/env"
	fileutil "github.com/projectdiscovery/utils/file"
)

var au = aurora.New(aurora.WithColors(true))

var (
	WorkersEnv = envutil.GetEnvOrDefault("SWEEPX_WORKERS", strconv.Itoa(sweep.DefaultWorkers))
	TimeoutEnv = envutil.GetEnvOrDefault("SWEEPX_TIMEOUT", "1")
)

// Options contains the configuration options for tuning the discovery process.
type Options struct {
	Network      string
	ConfigFile   string
	ConfirmLegal bool

	Workers    int
	Timeout    int
	Privileged bool
	SystemPing bool

	Save    bool
	Output  string
	NoColor bool

	Verbose bool
	Silent  bool
	Version bool
}

// ParseOptions parses the command line flags provided by a user. A returned
// error is a usage or validation problem and maps to the usage exit status.
func ParseOptions() (*Options, error) {
	options := &Options{}
	flagSet := goflags.NewFlagSet()

	flagSet.SetDescription(`sweepx discovers active hosts on an IPv4 network by probing every address of a CIDR with bounded concurrency`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&options.Network, "cidr", "n", "", "target network in CIDR notation (e.g. 192.168.1.0/24)"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&options.ConfigFile, "config", "", "cli flag configuration file"),
		flagSet.BoolVarP(&options.ConfirmLegal, "confirm-legal", "cl", false, "confirm you are authorized to scan the target network"),
	)

	flagSet.CreateGroup("probe", "Probe",
		flagSet.IntVarP(&options.Workers, "workers", "w", envInt(WorkersEnv, sweep.DefaultWorkers), fmt.Sprintf("maximum concurrent probes (1-%d)", sweep.MaxWorkers)),
		flagSet.IntVarP(&options.Timeout, "timeout", "t", envInt(TimeoutEnv, 1), "per-probe timeout in seconds"),
		flagSet.BoolVar(&options.Privileged, "privileged", false, "use raw ICMP sockets (requires root/admin)"),
		flagSet.BoolVarP(&options.SystemPing, "system-ping", "sp", false, "probe via the platform ping utility instead of native ICMP"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVar(&options.Save, "save", false, "save results to a file with owner-only permissions"),
		flagSet.StringVarP(&options.Output, "output", "o", "", "results file path (default: timestamped file in the temp directory)"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable output content coloring (ANSI escape codes)"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show verbose output"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only discovered hosts in output"),
		flagSet.BoolVar(&options.Version, "version", false, "show version of the project"),
	)

	if err := flagSet.Parse(); err != nil {
		return nil, err
	}

	options.configureOutput()

	showBanner()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version)
		os.Exit(0)
	}

	if options.ConfigFile != "" {
		if err := options.loadConfigFrom(options.ConfigFile); err != nil {
			return nil, fmt.Errorf("could not read config file %s: %w", options.ConfigFile, err)
		}
	}

	if err := options.validate(); err != nil {
		return nil, err
	}

	return options, nil
}

// validate enforces the invariants every scan relies on before any probe is
// dispatched.
func (options *Options) validate() error {
	if !options.ConfirmLegal {
		return fmt.Errorf("scanning requires explicit authorization: re-run with -confirm-legal once you have permission to probe the target network")
	}
	if options.Network == "" {
		return fmt.Errorf("a target network is required (-cidr)")
	}
	_, network, err := net.ParseCIDR(options.Network)
	if err != nil {
		return fmt.Errorf("invalid network %q: %w (expected CIDR notation, e.g. 192.168.1.0/24)", options.Network, err)
	}
	if network.IP.To4() == nil {
		return fmt.Errorf("invalid network %q: only IPv4 networks are supported", options.Network)
	}
	if options.Workers < 1 || options.Workers > sweep.MaxWorkers {
		return fmt.Errorf("workers must be between 1 and %d, got %d", sweep.MaxWorkers, options.Workers)
	}
	if options.Timeout < 1 {
		return fmt.Errorf("timeout must be at least 1 second, got %d", options.Timeout)
	}
	return nil
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
		au = aurora.New(aurora.WithColors(false))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}

func (options *Options) loadConfigFrom(location string) error {
	data, err := os.ReadFile(location)
	if err != nil {
		return err
	}
	return fileutil.Unmarshal(fileutil.YAML, data, options)
}

func envInt(value string, fallback int) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
