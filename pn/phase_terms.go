package pn

import (
	"math"

	"github.com/katalvlaran/lvwave/binary"
	"github.com/katalvlaran/lvwave/units"
)

// LogCoefficient6 is the parameter-independent coefficient of the 3PN
// v·ln v phase term.
const LogCoefficient6 = -6848.0 / 21.0

// term is one closed-form PN coefficient.
type term func(p binary.Params) float64

// phaseTerms lists the non-log phase coefficient of every order.
var phaseTerms = [PhaseOrders]term{
	phase0, zero, phase2, phase3, phase4, phase5, phase6, phase7,
	zero, zero, phase10, zero, phase12, phase13, phase14, phase15,
}

// logPhaseTerms lists the ln v phase coefficient of every order.
var logPhaseTerms = [PhaseOrders]term{
	zero, zero, zero, zero, zero, phase5Log, phase6Log, zero,
	zero, zero, zero, zero, zero, zero, zero, zero,
}

// PhaseTerm returns the unscaled phase coefficient of the given order.
// Orders outside [0, PhaseOrders) return 0.
func PhaseTerm(order int, p binary.Params) float64 {
	if order < 0 || order >= PhaseOrders {
		return 0
	}

	return phaseTerms[order](p)
}

// LogPhaseTerm returns the unscaled ln v phase coefficient of the given order.
func LogPhaseTerm(order int, p binary.Params) float64 {
	if order < 0 || order >= PhaseOrders {
		return 0
	}

	return logPhaseTerms[order](p)
}

func zero(binary.Params) float64 { return 0 }

// component pairs each body's mass fraction with its spin and matter
// parameters so the per-body sums read like the PN literature.
type component struct {
	mOnM, chi, qmDef, lambda float64
}

func components(p binary.Params) [2]component {
	return [2]component{
		{mOnM: p.M1OnM, chi: p.Chi1, qmDef: p.QMDef1, lambda: p.Lambda1},
		{mOnM: p.M2OnM, chi: p.Chi2, qmDef: p.QMDef2, lambda: p.Lambda2},
	}
}

func phase0(binary.Params) float64 { return 1 }

func phase2(p binary.Params) float64 {
	return 55.0*p.Eta/9.0 + 3715.0/756.0
}

// phase3 is the 1.5PN tail plus spin-orbit term.
func phase3(p binary.Params) float64 {
	phase := -16.0 * math.Pi
	for _, c := range components(p) {
		phase += c.mOnM * (25.0 + 38.0/3.0*c.mOnM) * c.chi
	}

	return phase
}

// phase4 is the 2PN term with spin-spin and self-spin contributions.
func phase4(p binary.Params) float64 {
	phase := 15293365.0/508032.0 + 27145.0/504.0*p.Eta + 3085.0/72.0*p.Eta*p.Eta
	phase -= 395.0 / 4.0 * p.Eta * p.Chi1 * p.Chi2
	for _, c := range components(p) {
		phase -= (50.0*c.qmDef + 5.0/8.0) * c.mOnM * c.mOnM * c.chi * c.chi
	}

	return phase
}

func phase5(p binary.Params) float64 {
	phase := 5.0 / 9.0 * (7729.0/84.0 - 13.0*p.Eta) * math.Pi
	for _, c := range components(p) {
		m := c.mOnM
		phase -= c.chi * m * (13915.0/84.0 - m*(1.0-m)*10.0/3.0 +
			m*(12760.0/81.0+m*(1.0-m)*170.0/9.0))
	}

	return phase
}

func phase5Log(p binary.Params) float64 {
	return 3.0 * phase5(p)
}

func phase6(p binary.Params) float64 {
	phase := 11583231236531.0/4694215680.0 - 640.0/3.0*math.Pi*math.Pi - 6848.0/21.0*units.EulerGamma
	phase += p.Eta * (-15737765635.0/3048192.0 + 2255.0/12.0*math.Pi*math.Pi)
	phase += p.Eta*p.Eta*76055.0/1728.0 - p.Eta*p.Eta*p.Eta*127825.0/1296.0
	phase += phase6Log(p) * math.Log(4.0)
	phase += SpinSpin3PN(p)
	for _, c := range components(p) {
		phase += math.Pi * c.mOnM * (1490.0/3.0 + c.mOnM*260.0) * c.chi
	}

	return phase
}

func phase6Log(binary.Params) float64 {
	return LogCoefficient6
}

// SpinSpin3PN is the 3PN spin-spin part of the order-6 phase coefficient
// (unscaled). IMRPhenomD calibrates without it and subtracts it again.
func SpinSpin3PN(p binary.Params) float64 {
	phase := (32675.0/112.0 + 5575.0/18.0*p.Eta) * p.Chi1 * p.Chi2
	for _, c := range components(p) {
		m2 := c.mOnM * c.mOnM
		chi2 := c.chi * c.chi
		phase += (47035.0/84.0 + 2935.0/6.0*c.mOnM - 120.0*m2) * m2 * c.qmDef * chi2
		phase += (-410825.0/672.0 - 1085.0/12.0*c.mOnM + 1255.0/36.0*m2) * m2 * chi2
	}

	return phase
}

func phase7(p binary.Params) float64 {
	eta := p.Eta
	phase := math.Pi * (77096675.0/254016.0 + 378515.0/1512.0*eta - 74045.0/756.0*eta*eta)
	for _, c := range components(p) {
		phase += c.chi * c.mOnM * (-170978035.0/48384.0 +
			eta*2876425.0/672.0 +
			eta*eta*4735.0/144.0 +
			c.mOnM*(-7189233785.0/1524096.0+eta*458555.0/3024.0-eta*eta*5345.0/72.0))
	}

	return phase
}

// Tidal terms: 5PN, 6PN and their tail / higher-order companions.

func phase10(p binary.Params) float64 {
	var phase float64
	for _, c := range components(p) {
		phase += 24.0 * (-12.0 + 11.0*c.mOnM) * math.Pow(c.mOnM, 4) * c.lambda
	}

	return phase
}

func phase12(p binary.Params) float64 {
	var phase float64
	for _, c := range components(p) {
		m := c.mOnM
		phase += (-15895.0/28.0 + 4595.0/28.0*m + 5715.0/14.0*m*m - 325.0/7.0*m*m*m) *
			math.Pow(m, 4) * c.lambda
	}

	return phase
}

func phase13(p binary.Params) float64 {
	var phase float64
	for _, c := range components(p) {
		phase += 24.0 * (12.0 - 11.0*c.mOnM) * math.Pi * math.Pow(c.mOnM, 4) * c.lambda
	}

	return phase
}

func phase14(p binary.Params) float64 {
	var phase float64
	for _, c := range components(p) {
		m := c.mOnM
		phase -= math.Pow(m, 4) * c.lambda * 5.0 * (193986935.0/571536.0 -
			14415613.0/381024.0*m -
			57859.0/378.0*m*m -
			209495.0/1512.0*m*m*m +
			965.0/54.0*math.Pow(m, 4) -
			4.0*math.Pow(m, 5))
	}

	return phase
}

func phase15(p binary.Params) float64 {
	var phase float64
	for _, c := range components(p) {
		m := c.mOnM
		phase += math.Pow(m, 4) * c.lambda / 28.0 * math.Pi *
			(27719.0 - 22415.0*m + 7598.0*m*m - 10520.0*m*m*m)
	}

	return phase
}
