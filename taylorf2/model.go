package taylorf2

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvwave/binary"
	"github.com/katalvlaran/lvwave/pn"
	"github.com/katalvlaran/lvwave/units"
)

// ErrNilLogger is the panic value of WithLogger(nil).
var ErrNilLogger = errors.New("taylorf2: logger is nil")

// Options configures New.
//
// Logger  – receives the derived model at Debug level. Default: zap.NewNop().
// Matter  – optional tidal and quadrupole-monopole parameters forwarded to
// binary.New. Default: none (black holes).
type Options struct {
	Logger *zap.Logger
	Matter []binary.Option
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithLogger routes construction diagnostics to l. Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			panic(ErrNilLogger.Error())
		}
		o.Logger = l
	}
}

// WithMatter forwards matter options to binary.New, switching on the tidal
// orders of the phase.
func WithMatter(opts ...binary.Option) Option {
	return func(o *Options) {
		o.Matter = append(o.Matter, opts...)
	}
}

// DefaultOptions returns the Options used when none are given.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// Model is a derived TaylorF2 waveform for one binary.
type Model struct {
	params    binary.Params
	totalMass float64 // M☉
	distance  float64 // metres
	mass      float64 // total mass in seconds
	phasing   pn.Phasing
	ampScale  float64
}

// New derives the model for a binary of total mass totalMass (M☉), mass
// ratio massRatio = m2/m1 in (0, 1], aligned spins chi1 and chi2, at
// luminosity distance distance (Mpc).
func New(totalMass, massRatio, chi1, chi2, distance float64, opts ...Option) (Model, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := binary.ValidateScale(totalMass, distance); err != nil {
		return Model{}, fmt.Errorf("taylorf2.New: %w", err)
	}
	p, err := binary.New(massRatio, chi1, chi2, o.Matter...)
	if err != nil {
		return Model{}, fmt.Errorf("taylorf2.New: %w", err)
	}

	m := Model{
		params:    p,
		totalMass: totalMass,
		distance:  units.MpcToMetres(distance),
		mass:      totalMass * units.MTSunSI,
		phasing:   pn.NewPhasing(p),
	}
	m1 := totalMass / (1 + massRatio)
	m2 := totalMass - m1
	m.ampScale = -4 * m1 * m2 * units.MRSunSI * units.MTSunSI * math.Sqrt(math.Pi/12) / m.distance

	o.Logger.Debug("taylorf2 model derived",
		zap.Float64("total_mass", totalMass),
		zap.Float64("eta", p.Eta),
		zap.Bool("tidal", p.IsTidal()),
	)

	return m, nil
}

// OrbitalSpeed returns v = (π·M·f)^(1/3) for f in Hz.
func (m Model) OrbitalSpeed(f float64) float64 {
	return math.Cbrt(math.Pi * m.mass * f)
}

// Phase returns the PN phase at speed v > 0 for coalescence phase phic.
func (m Model) Phase(v, phic float64) float64 {
	return m.phasing.Eval(v) - (2*phic + math.Pi/4)
}

// Amplitude returns the Newtonian amplitude at speed v > 0. It is negative,
// matching the sign convention of the strain.
func (m Model) Amplitude(v float64) float64 {
	return m.ampScale * math.Sqrt(5/(32*m.params.Eta*math.Pow(v, 9))) * v
}

// Params returns the derived physical parameters.
func (m Model) Params() binary.Params { return m.params }

// TotalMass returns the total mass in M☉.
func (m Model) TotalMass() float64 { return m.totalMass }

// Distance returns the luminosity distance in metres.
func (m Model) Distance() float64 { return m.distance }

// Phasing returns the scaled phase series.
func (m Model) Phasing() pn.Phasing { return m.phasing }
