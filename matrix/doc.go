// SPDX-License-Identifier: MIT

// Package matrix provides the small, fixed-size dense linear algebra that the
// waveform models need: a 5×5 LU factorization with partial pivoting and the
// matching forward/backward substitution.
//
// Types:
//
//	Mat5 – 5×5 row-major matrix value.
//	Vec5 – length-5 column vector value.
//	LU5  – factorized form P·A = L·U, reusable for several right-hand sides.
//
// Everything is a value type: no allocation, no shared state, safe for
// concurrent use.
//
// Errors (sentinel):
//
//	– ErrSingular  if elimination meets an exactly zero pivot.
//	– ErrNaNInf    if the input contains NaN or ±Inf.
//
// Example:
//
//	x, err := matrix.Solve5(a, b)
//	if errors.Is(err, matrix.ErrSingular) {
//	    // degenerate system
//	}
package matrix
