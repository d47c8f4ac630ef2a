package imrphenomd

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvwave/binary"
	"github.com/katalvlaran/lvwave/matrix"
	"github.com/katalvlaran/lvwave/phenom"
	"github.com/katalvlaran/lvwave/units"
)

// fitPoint is the (η, ξ) location every calibrated table is evaluated at.
type fitPoint struct {
	eta, xi float64
}

func (fp fitPoint) eval(t phenom.Table) float64 {
	return phenom.Eval(fp.eta, fp.xi, t)
}

// remnant describes the final black hole in geometric units.
type remnant struct {
	spin         float64
	fRing, fDamp float64
}

// Model is a fully derived IMRPhenomD waveform for one binary.
type Model struct {
	params    binary.Params
	totalMass float64 // M☉
	distance  float64 // metres

	amp       amplitude
	phase     phase
	remnant   remnant
	ampScale  float64 // 2√(5/64π)·M²·R☉·T☉/D_L · amp0
	timeShift float64
}

// New derives the model for a binary of total mass totalMass (M☉), mass
// ratio massRatio = m2/m1 in (0, 1], aligned spins chi1 and chi2, at
// luminosity distance distance (Mpc).
// Blueprint:
//
//	Stage 1 (Validate): physical parameters via package binary.
//	Stage 2 (Fits): fit point (η, ξ), remnant spin, ringdown and damping.
//	Stage 3 (Amplitude): inspiral series, γ, f_peak, intermediate spline.
//	Stage 4 (Phase): calibrated series, β, α, connection terms.
//	Stage 5 (Align): t0 = slope of the unconnected merger-ringdown phase at f_peak, overall scale.
func New(totalMass, massRatio, chi1, chi2, distance float64, opts ...Option) (Model, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1: Validate
	if err := binary.ValidateScale(totalMass, distance); err != nil {
		return Model{}, fmt.Errorf("imrphenomd.New: %w", err)
	}
	p, err := binary.New(massRatio, chi1, chi2)
	if err != nil {
		return Model{}, fmt.Errorf("imrphenomd.New: %w", err)
	}

	// Stage 2: Fits
	pi := phenom.NewPowers(math.Pi)
	fp := fitPoint{eta: p.Eta, xi: phenom.Xi(p)}
	af := phenom.FinalSpin(p)
	r := remnant{
		spin:  af,
		fRing: phenom.RingdownFrequency(af),
		fDamp: phenom.DampingFrequency(af),
	}

	// Stage 3: Amplitude
	amp, err := newAmplitude(p, fp, r, pi)
	if err != nil {
		return Model{}, fmt.Errorf("imrphenomd.New: %w", err)
	}

	// Stage 4: Phase
	ph := newPhase(p, fp, r, pi)

	// Stage 5: Align
	m := Model{
		params:    p,
		totalMass: totalMass,
		distance:  units.MpcToMetres(distance),
		amp:       amp,
		phase:     ph,
		remnant:   r,
		timeShift: ph.mergerRingdownDerivative(amp.fPeak),
	}
	amp0 := math.Sqrt(2*p.Eta/3) * pi.MinusOneSixth
	m.ampScale = 2 * math.Sqrt(5/(64*math.Pi)) *
		totalMass * units.MRSunSI * totalMass * units.MTSunSI / m.distance * amp0

	if err := m.checkFinite(); err != nil {
		return Model{}, fmt.Errorf("imrphenomd.New: %w", err)
	}

	o.Logger.Debug("imrphenomd model derived",
		zap.Float64("total_mass", totalMass),
		zap.Float64("eta", p.Eta),
		zap.Float64("chi_pn", p.ChiPN()),
		zap.Float64("final_spin", af),
		zap.Float64("f_ring", r.fRing),
		zap.Float64("f_damp", r.fDamp),
		zap.Float64("f_peak", amp.fPeak),
		zap.Float64("t0", m.timeShift),
	)

	return m, nil
}

func (m Model) checkFinite() error {
	values := []struct {
		name  string
		value float64
	}{
		{"f_ring", m.remnant.fRing},
		{"f_damp", m.remnant.fDamp},
		{"f_peak", m.amp.fPeak},
		{"c1_int", m.phase.conn.C1Intermediate},
		{"c2_int", m.phase.conn.C2Intermediate},
		{"c1_mrd", m.phase.conn.C1MergerRingdown},
		{"c2_mrd", m.phase.conn.C2MergerRingdown},
		{"t0", m.timeShift},
		{"amp_scale", m.ampScale},
	}
	for _, v := range values {
		if !isFinite(v.value) {
			return fmt.Errorf("%s=%v: %w", v.name, v.value, ErrNonFinite)
		}
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// OrbitalSpeed maps a frequency in Hz to the model's evaluation variable,
// the geometric frequency M·f.
func (m Model) OrbitalSpeed(f float64) float64 {
	return units.GeometricFrequency(f, m.totalMass)
}

// Phase returns φ(v) − φc − t0·(v − f_peak) at geometric frequency v > 0.
func (m Model) Phase(v, phic float64) float64 {
	return m.phase.eval(v) - phic - m.timeShift*(v-m.amp.fPeak)
}

// Amplitude returns the strain amplitude at geometric frequency v > 0.
func (m Model) Amplitude(v float64) float64 {
	return m.ampScale * math.Pow(v, -7.0/6.0) * m.amp.eval(v)
}

// Params returns the derived physical parameters.
func (m Model) Params() binary.Params { return m.params }

// TotalMass returns the total mass in M☉.
func (m Model) TotalMass() float64 { return m.totalMass }

// Distance returns the luminosity distance in metres.
func (m Model) Distance() float64 { return m.distance }

// FinalSpin returns the remnant spin.
func (m Model) FinalSpin() float64 { return m.remnant.spin }

// RingdownFrequency returns the geometric ringdown frequency.
func (m Model) RingdownFrequency() float64 { return m.remnant.fRing }

// DampingFrequency returns the geometric damping frequency.
func (m Model) DampingFrequency() float64 { return m.remnant.fDamp }

// PeakFrequency returns the geometric frequency where the amplitude switches
// to merger-ringdown.
func (m Model) PeakFrequency() float64 { return m.amp.fPeak }

// Deltas returns the intermediate amplitude coefficients δ0..δ4.
func (m Model) Deltas() matrix.Vec5 { return m.amp.deltas }

// TimeShift returns t0, the slope of the unconnected merger-ringdown phase
// at f_peak.
func (m Model) TimeShift() float64 { return m.timeShift }

// Connections returns the phase connection terms.
func (m Model) Connections() Connections { return m.phase.conn }

// AmplitudeRegion reports which amplitude piece covers geometric frequency v.
func (m Model) AmplitudeRegion(v float64) Region { return m.amp.bounds.locate(v) }

// PhaseRegion reports which phase piece covers geometric frequency v.
func (m Model) PhaseRegion(v float64) Region { return m.phase.bounds.locate(v) }

// AmplitudeIn evaluates the geometric amplitude formula of region r at v,
// without the prefactor, even outside that region.
func (m Model) AmplitudeIn(r Region, v float64) float64 { return m.amp.in(r, v) }

// PhaseIn evaluates the connected phase formula of region r at v, before
// alignment, even outside that region.
func (m Model) PhaseIn(r Region, v float64) float64 { return m.phase.in(r, v) }

// PhaseDerivativeIn is d/dv of PhaseIn.
func (m Model) PhaseDerivativeIn(r Region, v float64) float64 { return m.phase.derivativeIn(r, v) }
