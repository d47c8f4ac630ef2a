package binary

import (
	"fmt"
	"math"
)

// New validates the mass ratio and spins and derives the physical
// parameter set.
//
// Derivation:
//
//	η      = q/(1+q)²
//	m1/M   = 1/(1+q)
//	m2/M   = q/(1+q)
//	seta   = m1/M − m2/M
//
// Returns ErrMassRatio, ErrSpin or ErrMatter (wrapped with the offending
// value) on invalid input.
func New(massRatio, chi1, chi2 float64, opts ...Option) (Params, error) {
	if err := validateMassRatio(massRatio); err != nil {
		return Params{}, err
	}
	if err := validateSpin(chi1); err != nil {
		return Params{}, fmt.Errorf("chi1: %w", err)
	}
	if err := validateSpin(chi2); err != nil {
		return Params{}, fmt.Errorf("chi2: %w", err)
	}

	m := defaultMatter()
	for _, opt := range opts {
		opt(&m)
	}
	if err := validateMatter(m); err != nil {
		return Params{}, err
	}

	onePlusQ := 1.0 + massRatio
	m1OnM := 1.0 / onePlusQ
	m2OnM := massRatio / onePlusQ

	return Params{
		MassRatio: massRatio,
		Eta:       massRatio / (onePlusQ * onePlusQ),
		Seta:      m1OnM - m2OnM,
		M1OnM:     m1OnM,
		M2OnM:     m2OnM,
		Chi1:      chi1,
		Chi2:      chi2,
		QMDef1:    m.qmDef1,
		QMDef2:    m.qmDef2,
		Lambda1:   m.lambda1,
		Lambda2:   m.lambda2,
	}, nil
}

// ChiS is the symmetric spin combination (χ1+χ2)/2.
func (p Params) ChiS() float64 { return (p.Chi1 + p.Chi2) / 2.0 }

// ChiA is the antisymmetric spin combination (χ1−χ2)/2.
func (p Params) ChiA() float64 { return (p.Chi1 - p.Chi2) / 2.0 }

// ChiPN is the effective post-Newtonian spin used to parameterize the
// phenomenological fits: χ_s·(1 − 76η/113) + seta·χ_a.
func (p Params) ChiPN() float64 {
	return p.ChiS()*(1.0-p.Eta*76.0/113.0) + p.Seta*p.ChiA()
}

// IsTidal reports whether any tidal deformability is non-zero.
func (p Params) IsTidal() bool {
	return p.Lambda1 != 0 || p.Lambda2 != 0
}

// ValidateScale checks the extrinsic scale parameters shared by all models:
// total mass in solar masses and luminosity distance in megaparsecs.
func ValidateScale(totalMass, distance float64) error {
	if !isFinite(totalMass) || totalMass <= 0 {
		return fmt.Errorf("total mass %g: %w", totalMass, ErrTotalMass)
	}
	if !isFinite(distance) || distance <= 0 {
		return fmt.Errorf("distance %g: %w", distance, ErrDistance)
	}

	return nil
}

func validateMassRatio(q float64) error {
	if !isFinite(q) || q <= 0 || q > 1 {
		return fmt.Errorf("mass ratio %g: %w", q, ErrMassRatio)
	}

	return nil
}

func validateSpin(chi float64) error {
	if !isFinite(chi) || chi < -1 || chi > 1 {
		return fmt.Errorf("spin %g: %w", chi, ErrSpin)
	}

	return nil
}

func validateMatter(m matter) error {
	for _, v := range [...]float64{m.qmDef1, m.qmDef2, m.lambda1, m.lambda2} {
		if !isFinite(v) || v < 0 {
			return fmt.Errorf("matter parameter %g: %w", v, ErrMatter)
		}
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
