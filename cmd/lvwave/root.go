package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	cfg config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:           "lvwave",
		Short:         "Frequency-domain gravitational waveforms (IMRPhenomD, TaylorF2)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	registerFlags(root.PersistentFlags())
	root.AddCommand(
		newStrainCmd(a),
		newProbeCmd(a),
		newBenchCmd(a),
		newTimeDomainCmd(a),
	)

	return root
}

// init resolves configuration and the logger for cmd.
func (a *app) init(cmd *cobra.Command) error {
	v, err := newViper(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log.Named(cmd.Name())
	a.log.Debug("configuration resolved",
		zap.String("model", cfg.Model),
		zap.Float64("total_mass", cfg.TotalMass),
		zap.Float64("mass_ratio", cfg.MassRatio),
		zap.Float64("chi1", cfg.Chi1),
		zap.Float64("chi2", cfg.Chi2),
		zap.Float64("distance", cfg.Distance),
		zap.Float64("delta_f", cfg.DeltaF),
		zap.Int("workers", cfg.Workers),
	)

	return nil
}
