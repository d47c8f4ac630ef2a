package waveform

import (
	"math"
	"math/cmplx"
)

// Model is a frequency-domain waveform model.
type Model interface {
	// OrbitalSpeed maps frequency f (Hz) to the evaluation variable v.
	OrbitalSpeed(f float64) float64
	// Phase returns the phase at v for coalescence phase phic.
	Phase(v, phic float64) float64
	// Amplitude returns the strain amplitude at v.
	Amplitude(v float64) float64
}

// Strain returns h(f) = A(v)·exp(−i·φ(v, φc)).
func Strain(m Model, f, phic float64) complex128 {
	v := m.OrbitalSpeed(f)
	return complex(m.Amplitude(v), 0) * cmplx.Exp(complex(0, -m.Phase(v, phic)))
}

// Series evaluates Strain at every frequency of freqs, in order.
func Series(m Model, freqs []float64, phic float64) []complex128 {
	h := make([]complex128, len(freqs))
	fill(m, freqs, phic, h)

	return h
}

// Modes returns the plus and cross polarizations for inclination thetaJN
// (radians) over freqs.
func Modes(m Model, freqs []float64, phic, thetaJN float64) (plus, cross []complex128) {
	return Polarize(Series(m, freqs, phic), thetaJN)
}

// Polarize splits strain h into plus and cross polarizations for
// inclination thetaJN. h is not modified.
func Polarize(h []complex128, thetaJN float64) (plus, cross []complex128) {
	c := math.Cos(thetaJN)
	plusFactor := complex((1+c*c)/2, 0)
	crossFactor := complex(0, -c)

	plus = make([]complex128, len(h))
	cross = make([]complex128, len(h))
	for i, x := range h {
		plus[i] = x * plusFactor
		cross[i] = x * crossFactor
	}

	return plus, cross
}

func fill(m Model, freqs []float64, phic float64, dst []complex128) {
	for i, f := range freqs {
		dst[i] = Strain(m, f, phic)
	}
}
