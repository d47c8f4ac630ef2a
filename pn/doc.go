// Package pn provides the Taylor-expanded post-Newtonian (PN) coefficients
// of the stationary-phase frequency-domain waveform.
//
// Two series are built from a binary.Params value:
//
//	Phasing   – 16 coefficients V[k] of v^(k−5), plus VLogV[k] multiplying
//	            v^(k−5)·ln v (only orders 5 and 6 carry a log term).
//	            Every coefficient is scaled by 3/(128η).
//	Amplitude – 10 coefficients V[k] of v^k. Only orders 0–6 have known PN
//	            values; 7–9 are left at zero for phenomenological models to
//	            fill in.
//
// Each PN order is an independent closed-form function of the parameters
// (see PhaseTerm, LogPhaseTerm, AmplitudeTerm). Orders with no known
// contribution evaluate to exactly zero. Tidal orders (10, 12–15) vanish
// unless a tidal deformability is set.
//
// Complexity: construction is O(1); evaluation is O(terms).
package pn
