package binary

import "errors"

// Sentinel errors returned by parameter validation.
var (
	// ErrMassRatio indicates a mass ratio outside (0, 1] or non-finite.
	ErrMassRatio = errors.New("binary: mass ratio must be finite and in (0, 1]")

	// ErrSpin indicates an aligned spin outside [-1, 1] or non-finite.
	ErrSpin = errors.New("binary: spin must be finite and in [-1, 1]")

	// ErrTotalMass indicates a non-positive or non-finite total mass.
	ErrTotalMass = errors.New("binary: total mass must be finite and positive")

	// ErrDistance indicates a non-positive or non-finite luminosity distance.
	ErrDistance = errors.New("binary: luminosity distance must be finite and positive")

	// ErrMatter indicates a negative or non-finite tidal deformability or
	// quadrupole-monopole parameter.
	ErrMatter = errors.New("binary: matter parameters must be finite and non-negative")
)

// Params is the derived physical parameter set. It is an immutable value:
// build it with New and pass it by value.
type Params struct {
	MassRatio float64 // q = m2/m1
	Eta       float64 // symmetric mass ratio q/(1+q)²
	Seta      float64 // M1OnM - M2OnM
	M1OnM     float64 // m1/M
	M2OnM     float64 // m2/M
	Chi1      float64 // aligned spin of body 1
	Chi2      float64 // aligned spin of body 2
	QMDef1    float64 // quadrupole-monopole parameter of body 1
	QMDef2    float64 // quadrupole-monopole parameter of body 2
	Lambda1   float64 // tidal deformability of body 1
	Lambda2   float64 // tidal deformability of body 2
}

// matter carries the optional matter parameters collected from Options.
type matter struct {
	qmDef1, qmDef2   float64
	lambda1, lambda2 float64
}

// Option configures the optional matter parameters of New.
type Option func(*matter)

// WithTidalDeformability sets the dimensionless tidal deformabilities.
// Black holes have zero deformability, which is the default.
func WithTidalDeformability(lambda1, lambda2 float64) Option {
	return func(m *matter) {
		m.lambda1 = lambda1
		m.lambda2 = lambda2
	}
}

// WithQuadMonDeformation sets the quadrupole-monopole parameters.
// The Kerr value 1 is the default.
func WithQuadMonDeformation(qmDef1, qmDef2 float64) Option {
	return func(m *matter) {
		m.qmDef1 = qmDef1
		m.qmDef2 = qmDef2
	}
}

func defaultMatter() matter {
	return matter{qmDef1: 1, qmDef2: 1}
}
