// Package phenom holds the calibrated phenomenological fits of IMRPhenomD
// and the small evaluation helpers around them.
//
// Every IMRPhenomD coefficient (ρ, γ, σ, β, α and the amplitude collocation
// value) is a polynomial in the symmetric mass ratio η and the reduced spin
// ξ = χ_PN − 1:
//
//	c(η, ξ) = Σᵢ Σⱼ t[i][j]·ηʲ·ξⁱ,   i = 0..3, j = 0..2
//
// The constant row only carries a constant and a linear η term.
//
// The remnant is described by
//
//	– FinalSpin          fit of the remnant spin in η and s = m1²χ1 + m2²χ2;
//	– RingdownFrequency  ℓ=m=2 quasi-normal-mode frequency (geometric units);
//	– DampingFrequency   its damping rate 1/(2πτ) (geometric units).
//
// Powers provides the fractional powers of a constant that the waveform
// formulas reuse; it is a plain immutable value built by NewPowers and
// owned by whoever constructs it.
package phenom
