// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// LU5 is the factorization P·A = L·U of a Mat5. L is unit lower triangular
// and shares storage with U; piv records the row permutation.
type LU5 struct {
	lu  Mat5
	piv [N]int
}

// Factorize5 decomposes a with Gaussian elimination and partial pivoting.
// Blueprint:
//
//	Stage 1 (Validate): reject NaN/Inf input.
//	Stage 2 (Pivot): for column k pick the row with the largest |a[i][k]|, i ≥ k.
//	Stage 3 (Eliminate): store multipliers below the diagonal, update the rest.
//
// Returns ErrSingular if a pivot is exactly zero.
func Factorize5(a Mat5) (LU5, error) {
	// Stage 1: Validate input
	if !a.IsFinite() {
		return LU5{}, fmt.Errorf("Factorize5: %w", ErrNaNInf)
	}

	f := LU5{lu: a} // factor in place on a copy
	for i := range f.piv {
		f.piv[i] = i // identity permutation
	}

	// for each pivot column k
	for k := 0; k < N; k++ {
		// Stage 2: Partial pivoting
		p := k                       // candidate pivot row
		best := math.Abs(f.lu[k][k]) // its magnitude
		for i := k + 1; i < N; i++ { // scan rows below the diagonal
			if v := math.Abs(f.lu[i][k]); v > best {
				p, best = i, v // larger pivot found
			}
		}
		if best == 0 { // whole column is zero
			return LU5{}, fmt.Errorf("Factorize5: zero pivot at column %d: %w", k, ErrSingular)
		}
		if p != k {
			f.lu[p], f.lu[k] = f.lu[k], f.lu[p]     // swap rows
			f.piv[p], f.piv[k] = f.piv[k], f.piv[p] // record the swap
		}

		// Stage 3: Eliminate below the pivot
		pivot := f.lu[k][k] // U's pivot
		for i := k + 1; i < N; i++ {
			m := f.lu[i][k] / pivot // multiplier L[i][k]
			f.lu[i][k] = m          // store L below the diagonal
			for j := k + 1; j < N; j++ {
				f.lu[i][j] -= m * f.lu[k][j] // update U's row i
			}
		}
	}

	return f, nil
}

// Solve returns x with A·x = b for the factorized A.
func (f LU5) Solve(b Vec5) Vec5 {
	var x Vec5

	// Forward substitution: L·y = P·b
	for i := 0; i < N; i++ {
		sum := b[f.piv[i]] // permuted right-hand side
		for k := 0; k < i; k++ {
			sum -= f.lu[i][k] * x[k] // subtract L[i][k]·y[k]
		}
		x[i] = sum // L has a unit diagonal
	}

	// Backward substitution: U·x = y
	for i := N - 1; i >= 0; i-- {
		sum := x[i] // y[i]
		for k := i + 1; k < N; k++ {
			sum -= f.lu[i][k] * x[k] // subtract U[i][k]·x[k]
		}
		x[i] = sum / f.lu[i][i] // divide by U's pivot
	}

	return x
}

// Det returns the determinant of the factorized matrix.
func (f LU5) Det() float64 {
	det := 1.0
	for i := 0; i < N; i++ {
		det *= f.lu[i][i]
	}
	// Sign of the permutation: every even-length cycle flips it.
	var seen [N]bool
	for i := 0; i < N; i++ {
		if seen[i] {
			continue
		}
		length := 0
		for j := i; !seen[j]; j = f.piv[j] {
			seen[j] = true
			length++
		}
		if length%2 == 0 {
			det = -det
		}
	}

	return det
}

// Solve5 solves a·x = b.
func Solve5(a Mat5, b Vec5) (Vec5, error) {
	if !b.IsFinite() {
		return Vec5{}, fmt.Errorf("Solve5: right-hand side: %w", ErrNaNInf)
	}
	f, err := Factorize5(a)
	if err != nil {
		return Vec5{}, fmt.Errorf("Solve5: %w", err)
	}

	return f.Solve(b), nil
}
