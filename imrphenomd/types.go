package imrphenomd

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors returned by New.
var (
	// ErrSingularSpline indicates that the intermediate amplitude system is
	// singular, e.g. when f_peak collapses onto the inspiral join.
	ErrSingularSpline = errors.New("imrphenomd: singular amplitude spline system")

	// ErrNonFinite indicates that a derived coefficient came out NaN or ±Inf.
	ErrNonFinite = errors.New("imrphenomd: non-finite derived coefficient")

	// ErrNilLogger is the panic value of WithLogger(nil).
	ErrNilLogger = errors.New("imrphenomd: logger is nil")
)

// Geometric-frequency joins of the inspiral regions.
const (
	// AmplitudeInspiralJoin ends the amplitude inspiral region.
	AmplitudeInspiralJoin = 0.014

	// PhaseInspiralJoin ends the phase inspiral region.
	PhaseInspiralJoin = 0.018

	// inspiralPhaseTerms is the number of PN phase orders kept in the
	// calibrated inspiral phase.
	inspiralPhaseTerms = 13
)

// Region names one piece of the piecewise amplitude or phase.
type Region int

const (
	// Inspiral is the post-Newtonian region below the first breakpoint.
	Inspiral Region = iota
	// Intermediate bridges inspiral and merger-ringdown.
	Intermediate
	// MergerRingdown is the unbounded region above the second breakpoint.
	MergerRingdown
)

// String returns the region name.
func (r Region) String() string {
	switch r {
	case Inspiral:
		return "inspiral"
	case Intermediate:
		return "intermediate"
	case MergerRingdown:
		return "merger-ringdown"
	default:
		return "unknown"
	}
}

// breakpoints are the two ordered upper bounds of Inspiral and
// Intermediate. Regions are left-closed and right-open.
type breakpoints [2]float64

// locate returns the region containing f.
func (b breakpoints) locate(f float64) Region {
	for i, bound := range b {
		if f < bound {
			return Region(i)
		}
	}

	return MergerRingdown
}

// Connections are the linear terms c1 + c2·f added to the intermediate and
// merger-ringdown phase so the phase is C¹ at both breakpoints.
type Connections struct {
	C1Intermediate   float64
	C2Intermediate   float64
	C1MergerRingdown float64
	C2MergerRingdown float64
}

// Options configures New.
//
// Logger – receives the derived model at Debug level. Default: zap.NewNop().
type Options struct {
	Logger *zap.Logger
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

// DefaultOptions returns the Options used when none are given.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}
