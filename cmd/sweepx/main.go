package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/sweepx/internal/runner"
)

func main() {
	options, err := runner.ParseOptions()
	if err != nil {
		gologger.Error().Msgf("%s\n", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Interrupts stop new probe dispatch; in-flight probes finish on their
	// own within one probe timeout.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		gologger.Warning().Msgf("interrupt received, waiting for in-flight probes to finish")
		cancel()
	}()

	if err := runner.New(options).Run(ctx); err != nil {
		gologger.Error().Msgf("%s\n", err)
		os.Exit(1)
	}
}
