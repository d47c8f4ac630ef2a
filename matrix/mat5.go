// SPDX-License-Identifier: MIT

package matrix

import "math"

// N is the dimension of Mat5 and Vec5.
const N = 5

// Mat5 is a 5×5 matrix stored row-major.
type Mat5 [N][N]float64

// Vec5 is a 5-element column vector.
type Vec5 [N]float64

// MulVec returns a·x.
func (a Mat5) MulVec(x Vec5) Vec5 {
	var y Vec5
	for i := 0; i < N; i++ {
		var sum float64
		for j := 0; j < N; j++ {
			sum += a[i][j] * x[j]
		}
		y[i] = sum
	}

	return y
}

// IsFinite reports whether every entry of a is finite.
func (a Mat5) IsFinite() bool {
	for i := 0; i < N; i++ {
		if !Vec5(a[i]).IsFinite() {
			return false
		}
	}

	return true
}

// IsFinite reports whether every entry of v is finite.
func (v Vec5) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
