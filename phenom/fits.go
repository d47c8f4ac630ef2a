package phenom

import "github.com/katalvlaran/lvwave/binary"

// Table is a 4×3 fit table indexed [power of ξ][power of η].
type Table [4][3]float64

// Eval evaluates t at (eta, xi) with Horner's rule in both variables.
func Eval(eta, xi float64, t Table) float64 {
	var value float64
	for i := len(t) - 1; i >= 0; i-- {
		row := t[i]
		value = value*xi + row[0] + eta*(row[1]+eta*row[2])
	}

	return value
}

// Xi returns the reduced spin ξ = χ_PN − 1 the fits are expressed in.
func Xi(p binary.Params) float64 {
	return p.ChiPN() - 1
}

// FinalSpin returns the dimensionless spin of the remnant black hole.
func FinalSpin(p binary.Params) float64 {
	s := p.M1OnM*p.M1OnM*p.Chi1 + p.M2OnM*p.M2OnM*p.Chi2

	var spin float64
	for i := len(finalSpinTable) - 1; i >= 0; i-- {
		var row float64
		for j := len(finalSpinTable[i]) - 1; j >= 0; j-- {
			row = row*p.Eta + finalSpinTable[i][j]
		}
		spin = spin*s + row
	}

	return spin
}

// RingdownFrequency returns the geometric ringdown frequency for a remnant
// of spin af.
func RingdownFrequency(af float64) float64 {
	return ringdownPade.eval(af)
}

// DampingFrequency returns the geometric damping frequency for a remnant of
// spin af.
func DampingFrequency(af float64) float64 {
	return dampingPade.eval(af)
}

// pade is a rational approximation num(x)/den(x).
type pade struct {
	num, den []float64
}

func (r pade) eval(x float64) float64 {
	return horner(r.num, x) / horner(r.den, x)
}

func horner(c []float64, x float64) float64 {
	var value float64
	for i := len(c) - 1; i >= 0; i-- {
		value = value*x + c[i]
	}

	return value
}
