// Package lvwave evaluates frequency-domain gravitational waveforms of
// compact binaries: the phenomenological inspiral-merger-ringdown model
// IMRPhenomD and the post-Newtonian inspiral approximant TaylorF2.
//
// 🚀 What is lvwave?
//
//	A small, allocation-light library plus a CLI:
//		• Binary parameters: mass ratio, symmetric mass ratio, aligned spins, matter terms
//		• Post-Newtonian series: TaylorF2 phasing and inspiral amplitude up to 3.5PN
//		• Calibrated fits: IMRPhenomD coefficient tables, final spin, ringdown frequencies
//		• IMRPhenomD: piecewise C¹ amplitude and phase with a 5×5 collocation solve
//		• Strain: h(f), h₊/h× polarizations, bounded parallel evaluation
//
// Under the hood, everything is organized under these subpackages:
//
//	units/       physical constants and Hz ↔ geometric frequency conversion
//	binary/      validated binary parameters (q = m2/m1 ∈ (0, 1])
//	pn/          post-Newtonian phasing and amplitude coefficients
//	phenom/      IMRPhenomD fit tables and remnant fits
//	matrix/      fixed-size 5×5 LU solver
//	imrphenomd/  the IMRPhenomD model
//	taylorf2/    the TaylorF2 model
//	waveform/    strain composition, polarizations and grid evaluation
//	cmd/lvwave/  command-line driver (strain, probe, bench, timedomain)
//
// Quick example:
//
//	m, _ := imrphenomd.New(90, 0.5, 0, 0, 100)
//	h := waveform.Strain(m, 20, 0.1) // |h| ≈ 4.15e-22
//
//	go install github.com/katalvlaran/lvwave/cmd/lvwave@latest
package lvwave
