// Command lvwave evaluates frequency-domain gravitational waveforms from the
// command line.
//
// Subcommands:
//
//	strain      evaluate h₊/h× (or raw h) on a uniform frequency grid
//	probe       phase and magnitude diagnostics around 20, 100 and 200 Hz
//	bench       average construction and grid-evaluation time
//	timedomain  inverse FFT of the band-limited strain
//
// Every flag can also be set through a YAML config file (--config) or an
// LVWAVE_ environment variable, e.g. LVWAVE_TOTAL_MASS=60.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
