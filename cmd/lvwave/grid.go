package main

import (
	"context"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvwave/waveform"
)

// frequencyGrid returns f_k = k·Δf for k = 0 … ⌈fMax/Δf⌉−1.
func frequencyGrid(deltaF, fMax float64) []float64 {
	n := int(math.Ceil(fMax / deltaF))
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{0}
	}

	return floats.Span(make([]float64, n), 0, float64(n-1)*deltaF)
}

// bandLimits returns the half-open index range of the ascending grid freqs
// that lies inside [fMin, fMax].
func bandLimits(freqs []float64, fMin, fMax float64) (lo, hi int) {
	lo = sort.SearchFloat64s(freqs, fMin)
	hi = sort.Search(len(freqs), func(i int) bool { return freqs[i] > fMax })
	if hi < lo {
		hi = lo
	}

	return lo, hi
}

// bandSeries evaluates m on the in-band part of freqs and leaves every
// out-of-band sample at zero. Non-positive frequencies are never evaluated.
func bandSeries(ctx context.Context, m waveform.Model, freqs []float64, cfg config) ([]complex128, error) {
	h := make([]complex128, len(freqs))
	lo, hi := bandLimits(freqs, cfg.FMin, cfg.FMax)
	// skip the DC bin
	for lo < hi && freqs[lo] <= 0 {
		lo++
	}
	if lo == hi {
		return h, nil
	}
	in, err := waveform.SeriesParallel(ctx, m, freqs[lo:hi], cfg.Phic, cfg.Workers)
	if err != nil {
		return nil, err
	}
	copy(h[lo:hi], in)

	return h, nil
}
