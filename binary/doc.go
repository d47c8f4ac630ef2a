// Package binary derives the intrinsic physical parameter set of a
// compact binary from its user-facing description.
//
// Every downstream formula in lvwave (post-Newtonian series, phenomenological
// fits, the waveform models) consumes a Params value produced here.
//
// Mass-ratio convention:
//
//	q = m2/m1,  0 < q ≤ 1   (body 1 is the heavier one)
//	η = q/(1+q)²,  0 < η ≤ 1/4, with η = 1/4 only at q = 1
//
// Spins are the dimensionless components aligned with the orbital angular
// momentum and must lie in [-1, 1].
//
// Errors (sentinel):
//
//	– ErrMassRatio  if q is non-finite, ≤ 0 or > 1.
//	– ErrSpin       if a spin is non-finite or outside [-1, 1].
//	– ErrTotalMass  if the total mass is non-finite or ≤ 0.
//	– ErrDistance   if the luminosity distance is non-finite or ≤ 0.
//	– ErrMatter     if a tidal or quadrupole-monopole parameter is invalid.
//
// Example:
//
//	p, err := binary.New(0.5, 0.3, -0.1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Eta, p.ChiPN())
package binary
