package imrphenomd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvwave/binary"
	"github.com/katalvlaran/lvwave/matrix"
	"github.com/katalvlaran/lvwave/phenom"
	"github.com/katalvlaran/lvwave/pn"
)

// amplitude is the piecewise geometric amplitude without the f^(-7/6)
// prefactor.
type amplitude struct {
	series pn.Amplitude // inspiral, with the calibrated orders 7..9
	piCbrt float64      // π^(1/3)

	gamma        [3]float64 // merger-ringdown γ1..γ3
	fRing, fDamp float64
	fPeak        float64

	deltas matrix.Vec5 // intermediate quartic δ0..δ4
	bounds breakpoints
}

// newAmplitude derives every amplitude coefficient.
// Blueprint:
//
//	Stage 1: inspiral series with ρ1..ρ3 appended as orders 7..9.
//	Stage 2: merger-ringdown γ and the peak frequency.
//	Stage 3: intermediate quartic through (f1, f2, f3) with slopes at f1, f3.
func newAmplitude(p binary.Params, fp fitPoint, r remnant, pi phenom.Powers) (amplitude, error) {
	// Stage 1: Inspiral
	a := amplitude{
		series: pn.NewAmplitude(p),
		piCbrt: pi.Third,
		fRing:  r.fRing,
		fDamp:  r.fDamp,
	}
	a.series.V[7] = fp.eval(phenom.Rho[0]) / pi.SevenThirds
	a.series.V[8] = fp.eval(phenom.Rho[1]) / pi.EightThirds
	a.series.V[9] = fp.eval(phenom.Rho[2]) / pi.Three

	// Stage 2: Merger-ringdown
	for i := range a.gamma {
		a.gamma[i] = fp.eval(phenom.Gamma[i])
	}
	a.fPeak = peakFrequency(a.fRing, a.fDamp, a.gamma[1], a.gamma[2])
	if !isFinite(a.fPeak) {
		return amplitude{}, fmt.Errorf("peak frequency %v: %w", a.fPeak, ErrNonFinite)
	}
	a.bounds = breakpoints{AmplitudeInspiralJoin, a.fPeak}

	// Stage 3: Intermediate spline
	f1, f3 := AmplitudeInspiralJoin, a.fPeak
	rhs := matrix.Vec5{
		a.inspiral(f1),                 // value at f1
		fp.eval(phenom.Collocation),    // collocation value at the midpoint
		a.mergerRingdown(f3),           // value at f3
		a.inspiralDerivative(f1),       // slope at f1
		a.mergerRingdownDerivative(f3), // slope at f3
	}
	deltas, err := solveSpline(f1, f3, rhs)
	if err != nil {
		return amplitude{}, err
	}
	a.deltas = deltas

	return a, nil
}

// peakFrequency locates the maximum of f·A_mrd(f). For γ2 ≤ 1 the
// Lorentzian peak is shifted by the exponential damping; above 1 the
// approximation without the square root is used.
func peakFrequency(fRing, fDamp, gamma2, gamma3 float64) float64 {
	if !(gamma2 > 1) {
		return math.Abs(fRing + fDamp*(math.Sqrt(1-gamma2*gamma2)-1)*gamma3/gamma2)
	}

	return math.Abs(fRing - fDamp*gamma3/gamma2)
}

// solveSpline returns the quartic δ0..δ4 whose values at f1, (f1+f3)/2, f3
// and slopes at f1, f3 are rhs, in that order.
func solveSpline(f1, f3 float64, rhs matrix.Vec5) (matrix.Vec5, error) {
	if !rhs.IsFinite() {
		return matrix.Vec5{}, fmt.Errorf("spline values %v: %w", rhs, ErrNonFinite)
	}
	// rows follow the order of rhs
	system := matrix.Mat5{
		powerRow(f1),            // δ·(1, f, f², f³, f⁴) at f1
		powerRow((f1 + f3) / 2), // at the midpoint
		powerRow(f3),            // at f3
		slopeRow(f1),            // d/df of the quartic at f1
		slopeRow(f3),            // and at f3
	}
	deltas, err := matrix.Solve5(system, rhs)
	if err != nil {
		return matrix.Vec5{}, fmt.Errorf("%w: %w", ErrSingularSpline, err)
	}
	if !deltas.IsFinite() {
		return matrix.Vec5{}, fmt.Errorf("deltas %v: %w", deltas, ErrNonFinite)
	}

	return deltas, nil
}

func powerRow(f float64) [matrix.N]float64 {
	f2 := f * f
	return [matrix.N]float64{1, f, f2, f2 * f, f2 * f2}
}

func slopeRow(f float64) [matrix.N]float64 {
	f2 := f * f
	return [matrix.N]float64{0, 1, 2 * f, 3 * f2, 4 * f2 * f}
}

// eval returns the geometric amplitude at f, excluding amp0·f^(-7/6).
func (a amplitude) eval(f float64) float64 {
	return a.in(a.bounds.locate(f), f)
}

// in evaluates the formula of region r at f regardless of where f lies.
func (a amplitude) in(r Region, f float64) float64 {
	switch r {
	case Inspiral:
		return a.inspiral(f)
	case Intermediate:
		return a.intermediate(f)
	default:
		return a.mergerRingdown(f)
	}
}

func (a amplitude) speed(f float64) float64 {
	return math.Cbrt(f) * a.piCbrt
}

func (a amplitude) inspiral(f float64) float64 {
	return a.series.Eval(a.speed(f))
}

func (a amplitude) inspiralDerivative(f float64) float64 {
	return a.series.FrequencyDerivative(a.speed(f), f)
}

func (a amplitude) intermediate(f float64) float64 {
	var value float64
	for i := matrix.N - 1; i >= 0; i-- {
		value = value*f + a.deltas[i]
	}

	return value
}

func (a amplitude) mergerRingdown(f float64) float64 {
	sigma := a.fDamp * a.gamma[2]
	df := f - a.fRing
	lorentz := df*df + sigma*sigma

	return a.gamma[0] * sigma / lorentz * math.Exp(-a.gamma[1]*df/sigma)
}

func (a amplitude) mergerRingdownDerivative(f float64) float64 {
	sigma := a.fDamp * a.gamma[2]
	df := f - a.fRing
	lorentz := df*df + sigma*sigma
	damping := math.Exp(df * a.gamma[1] / sigma)

	return (-2*df*sigma*a.gamma[0]/lorentz - a.gamma[1]*a.gamma[0]) / (damping * lorentz)
}
