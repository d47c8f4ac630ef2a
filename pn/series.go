package pn

import (
	"math"

	"github.com/katalvlaran/lvwave/binary"
)

const (
	// PhaseOrders is the number of terms in the phase series.
	PhaseOrders = 16

	// AmplitudeOrders is the number of terms in the amplitude series.
	AmplitudeOrders = 10

	// PhaseExponentOffset is the power of v multiplying V[0]: the k-th phase
	// term goes as v^(k−PhaseExponentOffset).
	PhaseExponentOffset = 5
)

// Phasing holds the scaled phase coefficients.
type Phasing struct {
	V     [PhaseOrders]float64 // coefficient of v^(k−5)
	VLogV [PhaseOrders]float64 // coefficient of v^(k−5)·ln v
}

// NewPhasing evaluates every phase order for p and applies the leading
// 3/(128η) scale.
func NewPhasing(p binary.Params) Phasing {
	var s Phasing
	scale := 3.0 / (128.0 * p.Eta)
	for k := 0; k < PhaseOrders; k++ {
		s.V[k] = phaseTerms[k](p) * scale
		s.VLogV[k] = logPhaseTerms[k](p) * scale
	}

	return s
}

// Eval sums all PhaseOrders terms at orbital speed v.
func (s Phasing) Eval(v float64) float64 {
	return s.EvalTerms(v, PhaseOrders)
}

// EvalTerms sums the first n terms at orbital speed v:
//
//	Σ_{k<n} (V[k] + VLogV[k]·ln v)·v^(k−5)
func (s Phasing) EvalTerms(v float64, n int) float64 {
	n = clampTerms(n, PhaseOrders)
	logV := math.Log(v)
	power := math.Pow(v, -PhaseExponentOffset)

	var phasing float64
	for k := 0; k < n; k++ {
		phasing += s.V[k] * power
		phasing += s.VLogV[k] * power * logV
		power *= v
	}

	return phasing
}

// FrequencyDerivative returns d/df of EvalTerms(v, n) when v ∝ f^(1/3),
// evaluated at frequency f with its matching orbital speed v.
func (s Phasing) FrequencyDerivative(v, f float64, n int) float64 {
	n = clampTerms(n, PhaseOrders)
	logV := math.Log(v)
	power := math.Pow(v, -PhaseExponentOffset)
	exponent := -PhaseExponentOffset / 3.0

	var derivative float64
	for k := 0; k < n; k++ {
		derivative += exponent * s.V[k] * power
		derivative += s.VLogV[k] * power * (exponent*logV + 1.0/3.0)
		power *= v
		exponent += 1.0 / 3.0
	}

	return derivative / f
}

// Amplitude holds the amplitude coefficients of v^k.
type Amplitude struct {
	V [AmplitudeOrders]float64
}

// NewAmplitude evaluates every amplitude order for p (unscaled).
func NewAmplitude(p binary.Params) Amplitude {
	var a Amplitude
	for k := 0; k < AmplitudeOrders; k++ {
		a.V[k] = amplitudeTerms[k](p)
	}

	return a
}

// Eval sums Σ V[k]·v^k.
func (a Amplitude) Eval(v float64) float64 {
	power := 1.0

	var amplitude float64
	for k := 0; k < AmplitudeOrders; k++ {
		amplitude += a.V[k] * power
		power *= v
	}

	return amplitude
}

// FrequencyDerivative returns d/df of Eval(v) when v ∝ f^(1/3).
func (a Amplitude) FrequencyDerivative(v, f float64) float64 {
	power := 1.0
	exponent := 0.0

	var derivative float64
	for k := 0; k < AmplitudeOrders; k++ {
		derivative += exponent * a.V[k] * power
		power *= v
		exponent += 1.0 / 3.0
	}

	return derivative / f
}

func clampTerms(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}

	return n
}
