package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvwave/waveform"
)

func newStrainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strain",
		Short: "Evaluate the waveform on a uniform frequency grid",
		Long: "Evaluates the configured model at f_k = k·Δf up to f-max. Samples outside\n" +
			"[f-min, f-max] are written as zero.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runStrain(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func (a *app) runStrain(ctx context.Context, stdout io.Writer) (err error) {
	m, err := buildModel(a.cfg, a.log)
	if err != nil {
		return err
	}
	freqs := frequencyGrid(a.cfg.DeltaF, a.cfg.FMax)
	h, err := bandSeries(ctx, m, freqs, a.cfg)
	if err != nil {
		return err
	}

	w, closeOutput, err := openOutput(a.cfg.Output, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOutput(); err == nil {
			err = cerr
		}
	}()

	if a.cfg.Polarize {
		err = writeRows(w, a.cfg.Format, polarizedRows(freqs, h, a.cfg.Inclination))
	} else {
		err = writeRows(w, a.cfg.Format, strainRows(freqs, h))
	}
	if err != nil {
		return err
	}

	a.log.Info("strain written",
		zap.String("model", a.cfg.Model),
		zap.Int("samples", len(freqs)),
		zap.String("format", a.cfg.Format),
		zap.Bool("polarized", a.cfg.Polarize),
	)

	return nil
}

func polarizedRows(freqs []float64, h []complex128, inclination float64) []polarizedRow {
	plus, cross := waveform.Polarize(h, inclination)
	rows := make([]polarizedRow, len(freqs))
	for i, f := range freqs {
		rows[i] = polarizedRow{
			Frequency: f,
			PlusRe:    real(plus[i]),
			PlusIm:    imag(plus[i]),
			CrossRe:   real(cross[i]),
			CrossIm:   imag(cross[i]),
		}
	}

	return rows
}

func strainRows(freqs []float64, h []complex128) []strainRow {
	rows := make([]strainRow, len(freqs))
	for i, f := range freqs {
		rows[i] = strainRow{Frequency: f, Re: real(h[i]), Im: imag(h[i])}
	}

	return rows
}
