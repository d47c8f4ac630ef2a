package main

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwave/imrphenomd"
	"github.com/katalvlaran/lvwave/waveform"
)

var (
	probeCenters = []float64{20, 100, 200}
	probeOffsets = []float64{-0.5, -0.25, 0, 0.25, 0.5}
)

// probeRow is the strain at center+offset relative to the strain at center.
// DeltaPhase is arg h(f) − arg h(center), reduced to [0, 2π).
type probeRow struct {
	Center     float64
	Frequency  float64
	DeltaPhase float64
	Magnitude  float64
	Region     string
}

func newProbeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Print phase and magnitude diagnostics around 20, 100 and 200 Hz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := buildModel(a.cfg, a.log)
			if err != nil {
				return err
			}
			return writeProbe(cmd.OutOrStdout(), probe(m, a.cfg.Phic))
		},
	}
}

// probe samples m at every center and offset. Region is filled only for
// IMRPhenomD models.
func probe(m waveform.Model, phic float64) []probeRow {
	d, piecewise := m.(imrphenomd.Model)
	rows := make([]probeRow, 0, len(probeCenters)*len(probeOffsets))
	for _, c := range probeCenters {
		ref := cmplx.Phase(waveform.Strain(m, c, phic))
		for _, off := range probeOffsets {
			f := c + off
			h := waveform.Strain(m, f, phic)
			row := probeRow{
				Center:     c,
				Frequency:  f,
				DeltaPhase: wrapPhase(cmplx.Phase(h) - ref),
				Magnitude:  cmplx.Abs(h),
			}
			if piecewise {
				row.Region = d.PhaseRegion(d.OrbitalSpeed(f)).String()
			}
			rows = append(rows, row)
		}
	}

	return rows
}

// wrapPhase reduces x to [0, 2π).
func wrapPhase(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}

	return x
}

func writeProbe(w io.Writer, rows []probeRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "center\tfrequency\tdphase\t|h|\tregion")
	for _, r := range rows {
		region := r.Region
		if region == "" {
			region = "-"
		}
		fmt.Fprintf(tw, "%g\t%g\t%.10f\t%.6e\t%s\n", r.Center, r.Frequency, r.DeltaPhase, r.Magnitude, region)
	}

	return tw.Flush()
}
