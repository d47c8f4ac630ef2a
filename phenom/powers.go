package phenom

import "math"

// Powers caches the fractional powers of a single base that the waveform
// formulas use repeatedly. Build it with NewPowers; the zero value is not
// useful.
type Powers struct {
	Third         float64 // x^(1/3)
	One           float64 // x
	FourThirds    float64 // x^(4/3)
	FiveThirds    float64 // x^(5/3)
	Two           float64 // x²
	SevenThirds   float64 // x^(7/3)
	EightThirds   float64 // x^(8/3)
	Three         float64 // x³
	MinusOneSixth float64 // x^(-1/6)
}

// NewPowers computes the table for x.
func NewPowers(x float64) Powers {
	third := math.Cbrt(x)
	two := x * x

	return Powers{
		Third:         third,
		One:           x,
		FourThirds:    x * third,
		FiveThirds:    x * third * third,
		Two:           two,
		SevenThirds:   two * third,
		EightThirds:   two * third * third,
		Three:         two * x,
		MinusOneSixth: 1 / math.Sqrt(third),
	}
}
