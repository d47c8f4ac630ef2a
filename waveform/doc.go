// Package waveform composes a frequency-domain waveform model into complex
// strain values.
//
// A Model exposes three pure functions: OrbitalSpeed maps a frequency in Hz
// to the model's own evaluation variable, and Phase and Amplitude are
// evaluated at that variable. Both imrphenomd.Model and taylorf2.Model
// satisfy it.
//
//	h(f)      = A(v)·exp(−i·φ(v, φc)),  v = OrbitalSpeed(f)
//	h₊(f)     = h(f)·(1 + cos²ι)/2
//	h×(f)     = −i·cos ι·h(f)
//
// Series keeps the order of its frequency grid and does no band filtering:
// zeroing samples outside an analysis band is left to the caller.
// SeriesParallel gives the same result on a bounded worker pool.
package waveform
