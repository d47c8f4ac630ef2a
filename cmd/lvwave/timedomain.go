package main

import (
	"context"
	"io"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTimeDomainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "timedomain",
		Short: "Inverse-FFT the band-limited strain to the time domain",
		Long: "Builds the Hermitian extension of the one-sided spectrum h(f_k), inverts it and\n" +
			"writes h(t) for t in [−T/2, T/2) where T = 1/Δf.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTimeDomain(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func (a *app) runTimeDomain(ctx context.Context, stdout io.Writer) (err error) {
	m, err := buildModel(a.cfg, a.log)
	if err != nil {
		return err
	}
	freqs := frequencyGrid(a.cfg.DeltaF, a.cfg.FMax)
	h, err := bandSeries(ctx, m, freqs, a.cfg)
	if err != nil {
		return err
	}
	rows := toTimeDomain(h, a.cfg.DeltaF)

	w, closeOutput, err := openOutput(a.cfg.Output, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOutput(); err == nil {
			err = cerr
		}
	}()
	if err = writeRows(w, a.cfg.Format, rows); err != nil {
		return err
	}

	if i := peakIndex(rows); i >= 0 {
		a.log.Info("time-domain strain written",
			zap.Int("samples", len(rows)),
			zap.Float64("peak_time", rows[i].Time),
			zap.Float64("peak_strain", rows[i].Strain),
		)
	}

	return nil
}

// toTimeDomain inverts the one-sided spectrum h sampled at k·Δf. The
// negative-frequency half is filled with conjugates, so the result is real.
// Rows are centred: t runs from −T/2 to T/2−dt with T = 2·len(h)·dt.
func toTimeDomain(h []complex128, deltaF float64) []timeRow {
	if len(h) == 0 {
		return nil
	}
	n := 2 * len(h)
	spectrum := make([]complex128, n)
	copy(spectrum, h)
	spectrum[0] = complex(real(h[0]), 0)
	for k := 1; k < len(h); k++ {
		spectrum[n-k] = cmplx.Conj(h[k])
	}

	// fft.IFFT carries the 1/n factor; h(t) = Δf·Σ h(f_k)e^{2πi f_k t}.
	x := fft.IFFT(spectrum)
	scale := float64(n) * deltaF
	dt := 1 / scale

	rows := make([]timeRow, n)
	half := n / 2
	for j := range rows {
		i := (j + half) % n
		rows[j] = timeRow{Time: float64(j-half) * dt, Strain: real(x[i]) * scale}
	}

	return rows
}

// peakIndex returns the index of the largest |strain|, or -1 for no rows.
func peakIndex(rows []timeRow) int {
	best, at := -1.0, -1
	for i, r := range rows {
		if a := math.Abs(r.Strain); a > best {
			best, at = a, i
		}
	}

	return at
}
