package imrphenomd

import (
	"math"

	"github.com/katalvlaran/lvwave/binary"
	"github.com/katalvlaran/lvwave/phenom"
	"github.com/katalvlaran/lvwave/pn"
)

// phase is the piecewise geometric phase before time and phase alignment.
type phase struct {
	series pn.Phasing // inspiral, calibrated
	piCbrt float64

	beta         [3]float64
	alpha        [5]float64
	fRing, fDamp float64
	etaInv       float64

	conn   Connections
	bounds breakpoints
}

// newPhase derives every phase coefficient.
// Blueprint:
//
//	Stage 1: PN phasing with the π/4 offset and the 3PN spin-spin term
//	         removed, orders 8..11 replaced by σ1..σ4.
//	Stage 2: β and α fits.
//	Stage 3: C¹ connection terms at f1 = PhaseInspiralJoin and f2 = f_ring/2.
func newPhase(p binary.Params, fp fitPoint, r remnant, pi phenom.Powers) phase {
	// Stage 1: Inspiral
	ph := phase{
		series: pn.NewPhasing(p),
		piCbrt: pi.Third,
		fRing:  r.fRing,
		fDamp:  r.fDamp,
		etaInv: 1 / p.Eta,
	}
	ph.series.V[5] -= math.Pi / 4
	ph.series.V[6] -= pn.SpinSpin3PN(p) * ph.series.V[0]

	var sigma [4]float64
	for i := range sigma {
		sigma[i] = fp.eval(phenom.Sigma[i])
	}
	ph.series.V[8] = sigma[0] * ph.etaInv / pi.One
	ph.series.V[9] = sigma[1] * 3 / 4 * ph.etaInv / pi.FourThirds
	ph.series.V[10] = sigma[2] * 3 / 5 * ph.etaInv / pi.FiveThirds
	ph.series.V[11] = sigma[3] / 2 * ph.etaInv / pi.Two

	// Stage 2: Intermediate and merger-ringdown fits
	for i := range ph.beta {
		ph.beta[i] = fp.eval(phenom.Beta[i])
	}
	for i := range ph.alpha {
		ph.alpha[i] = fp.eval(phenom.Alpha[i])
	}

	// Stage 3: Connections
	f1, f2 := PhaseInspiralJoin, ph.fRing/2
	ph.bounds = breakpoints{f1, f2}

	// match the inspiral slope at f1, then its value
	c2 := ph.inspiralDerivative(f1) - ph.intermediateDerivative(f1)
	c1 := ph.inspiral(f1) - ph.intermediate(f1) - c2*f1
	ph.conn.C1Intermediate, ph.conn.C2Intermediate = c1, c2

	// connected intermediate phase at f2
	joined := ph.intermediate(f2) + c1 + c2*f2  // value
	slope := ph.intermediateDerivative(f2) + c2 // slope
	// merger-ringdown takes over both at f2
	ph.conn.C2MergerRingdown = slope - ph.mergerRingdownDerivative(f2)
	ph.conn.C1MergerRingdown = joined - ph.mergerRingdown(f2) - ph.conn.C2MergerRingdown*f2

	return ph
}

// eval returns the connected geometric phase at f.
func (ph phase) eval(f float64) float64 {
	return ph.in(ph.bounds.locate(f), f)
}

// in evaluates the connected formula of region r at f.
func (ph phase) in(r Region, f float64) float64 {
	switch r {
	case Inspiral:
		return ph.inspiral(f)
	case Intermediate:
		return ph.intermediate(f) + ph.conn.C1Intermediate + ph.conn.C2Intermediate*f
	default:
		return ph.mergerRingdown(f) + ph.conn.C1MergerRingdown + ph.conn.C2MergerRingdown*f
	}
}

// derivativeIn is d/df of in(r, f).
func (ph phase) derivativeIn(r Region, f float64) float64 {
	switch r {
	case Inspiral:
		return ph.inspiralDerivative(f)
	case Intermediate:
		return ph.intermediateDerivative(f) + ph.conn.C2Intermediate
	default:
		return ph.mergerRingdownDerivative(f) + ph.conn.C2MergerRingdown
	}
}

func (ph phase) speed(f float64) float64 {
	return math.Cbrt(f) * ph.piCbrt
}

func (ph phase) inspiral(f float64) float64 {
	return ph.series.EvalTerms(ph.speed(f), inspiralPhaseTerms)
}

func (ph phase) inspiralDerivative(f float64) float64 {
	return ph.series.FrequencyDerivative(ph.speed(f), f, inspiralPhaseTerms)
}

func (ph phase) intermediate(f float64) float64 {
	b := ph.beta
	return (b[0]*f - b[2]/(3*f*f*f) + b[1]*math.Log(f)) * ph.etaInv
}

func (ph phase) intermediateDerivative(f float64) float64 {
	b := ph.beta
	f2 := f * f
	return (b[0] + b[2]/(f2*f2) + b[1]/f) * ph.etaInv
}

func (ph phase) mergerRingdown(f float64) float64 {
	a := ph.alpha
	return (a[0]*f - a[1]/f + 4.0/3.0*a[2]*math.Pow(f, 0.75) +
		a[3]*math.Atan((f-a[4]*ph.fRing)/ph.fDamp)) * ph.etaInv
}

func (ph phase) mergerRingdownDerivative(f float64) float64 {
	a := ph.alpha
	x := (f - a[4]*ph.fRing) / ph.fDamp
	return (a[0] + a[1]/(f*f) + a[2]/math.Pow(f, 0.25) + a[3]/(ph.fDamp*(1+x*x))) * ph.etaInv
}
