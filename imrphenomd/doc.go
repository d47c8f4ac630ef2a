// Package imrphenomd implements the IMRPhenomD frequency-domain waveform
// model for aligned-spin compact binaries.
//
// The model splits both amplitude and phase into three regions of the
// geometric frequency Mf:
//
//	Amplitude:  Inspiral [0, 0.014) · Intermediate [0.014, f_peak) · MergerRingdown [f_peak, ∞)
//	Phase:      Inspiral [0, 0.018) · Intermediate [0.018, f_ring/2) · MergerRingdown [f_ring/2, ∞)
//
// The inspiral regions extend the post-Newtonian series of package pn with
// calibrated higher-order terms. The intermediate amplitude is a quartic
// whose coefficients come from a 5×5 value/derivative system; the
// intermediate and merger-ringdown phase pieces are shifted by linear
// connection terms so that the phase is continuous and differentiable
// across both breakpoints. Finally the phase is shifted by t0·(f − f_peak),
// where t0 is the slope at f_peak of the merger-ringdown formula without its
// connection term. The aligned slope at f_peak is therefore c2_mrd, not zero.
//
// All of this is computed once by New. A Model is an immutable value;
// Phase and Amplitude are pure and safe for concurrent use.
//
// The evaluation variable returned by OrbitalSpeed is the geometric
// frequency v = M·f (M in seconds). Both Phase and Amplitude take that
// variable and require v > 0.
//
// Options:
//
//	– WithLogger: zap logger receiving the derived breakpoints at Debug level
//	  (default: no-op).
//
// Errors (sentinel):
//
//	– binary.ErrMassRatio, binary.ErrSpin, binary.ErrTotalMass,
//	  binary.ErrDistance  on invalid physical input.
//	– ErrSingularSpline   if the amplitude spline system cannot be solved
//	  (also matches matrix.ErrSingular).
//	– ErrNonFinite        if a derived coefficient is NaN or ±Inf.
//
// Example:
//
//	m, err := imrphenomd.New(90, 0.5, 0, 0, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h := waveform.Strain(m, 20, 0)
package imrphenomd
