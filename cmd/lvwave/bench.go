package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBenchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Time model construction plus a full grid evaluation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			avg, err := benchmark(cmd.Context(), a.cfg, a.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Average evaluation time: %v (%d runs, %d workers)\n",
				avg, a.cfg.Repeat, a.cfg.Workers)
			return nil
		},
	}
}

// benchmark returns the mean wall time of cfg.Repeat build-and-evaluate
// cycles. Models are built with a nop logger so logging stays out of the
// measurement.
func benchmark(ctx context.Context, cfg config, log *zap.Logger) (time.Duration, error) {
	freqs := frequencyGrid(cfg.DeltaF, cfg.FMax)
	quiet := zap.NewNop()

	start := time.Now()
	for i := 0; i < cfg.Repeat; i++ {
		m, err := buildModel(cfg, quiet)
		if err != nil {
			return 0, err
		}
		if _, err = bandSeries(ctx, m, freqs, cfg); err != nil {
			return 0, err
		}
	}
	avg := time.Since(start) / time.Duration(cfg.Repeat)

	log.Info("bench finished",
		zap.Int("runs", cfg.Repeat),
		zap.Int("samples", len(freqs)),
		zap.Duration("average", avg),
	)

	return avg, nil
}
