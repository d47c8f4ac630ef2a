// Package taylorf2 implements the TaylorF2 frequency-domain waveform: the
// stationary-phase approximation of the post-Newtonian inspiral.
//
// The phase is the full 16-term series of package pn (point-particle terms
// up to 3.5PN plus tidal terms up to 7.5PN) and the amplitude is the
// leading-order Newtonian one. The evaluation variable is the orbital speed
// v = (π·M·f)^(1/3), M in seconds.
//
// TaylorF2 has no merger or ringdown; it is only meaningful well below the
// innermost stable orbit, v ≲ 0.4.
//
// Errors (sentinel): the binary package sentinels on invalid input.
package taylorf2
