package phenom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvwave/binary"
	"github.com/katalvlaran/lvwave/phenom"
)

// TestEval_MatchesDoubleSum compares the Horner evaluation with the literal
// Σᵢ Σⱼ t[i][j]·ηʲ·ξⁱ on every shipped table.
func TestEval_MatchesDoubleSum(t *testing.T) {
	direct := func(eta, xi float64, tb phenom.Table) float64 {
		var sum float64
		for i := range tb {
			for j := range tb[i] {
				sum += tb[i][j] * math.Pow(eta, float64(j)) * math.Pow(xi, float64(i))
			}
		}
		return sum
	}

	var all []phenom.Table
	all = append(all, phenom.Rho[:]...)
	all = append(all, phenom.Gamma[:]...)
	all = append(all, phenom.Collocation)
	all = append(all, phenom.Sigma[:]...)
	all = append(all, phenom.Beta[:]...)
	all = append(all, phenom.Alpha[:]...)

	points := [][2]float64{{0.25, -1}, {0.2222, -0.3}, {0.05, -1.8}, {0.16, 0.2}}
	for k, tb := range all {
		for _, pt := range points {
			want := direct(pt[0], pt[1], tb)
			got := phenom.Eval(pt[0], pt[1], tb)
			assert.True(t, scalar.EqualWithinAbsOrRel(want, got, 1e-9, 1e-12),
				"table %d at %v: want %g got %g", k, pt, want, got)
		}
	}
}

// TestEval_ConstantRow: the constant row has no η² term.
func TestEval_ConstantRow(t *testing.T) {
	for _, tb := range append(phenom.Alpha[:], phenom.Sigma[:]...) {
		assert.Zero(t, tb[0][2])
	}
	var tb phenom.Table
	tb[0][0], tb[0][1] = 2, 3
	assert.Equal(t, 2.0+3.0*0.1, phenom.Eval(0.1, 5, tb))
}

func TestXi(t *testing.T) {
	p, err := binary.New(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, -1.0, phenom.Xi(p))

	p, err = binary.New(0.5, 0.4, 0.4)
	require.NoError(t, err)
	assert.InDelta(t, p.ChiPN()-1, phenom.Xi(p), 1e-15)
}

// TestFinalSpin_KnownLimits: equal-mass non-spinning remnants settle near
// 0.686; a test particle leaves the big black hole's spin unchanged.
func TestFinalSpin_KnownLimits(t *testing.T) {
	p, err := binary.New(1, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.6864, phenom.FinalSpin(p), 5e-4)

	p, err = binary.New(1e-4, 0.5, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, phenom.FinalSpin(p), 1e-3)
}

// TestFinalSpin_GrowsWithAlignedSpin checks monotonicity in a common spin.
func TestFinalSpin_GrowsWithAlignedSpin(t *testing.T) {
	prev := math.Inf(-1)
	for _, chi := range []float64{-0.9, -0.5, 0, 0.5, 0.9} {
		p, err := binary.New(0.5, chi, chi)
		require.NoError(t, err)
		af := phenom.FinalSpin(p)
		assert.Greater(t, af, prev, "chi=%g", chi)
		assert.Less(t, af, 1.0)
		prev = af
	}
}

// qnm is the ℓ=m=2, n=0 fit of Berti, Cardoso and Will.
func qnm(j float64) (ring, damp float64) {
	omega := 1.5251 - 1.1568*math.Pow(1-j, 0.1292)
	quality := 0.7 + 1.4187*math.Pow(1-j, -0.4990)
	return omega / (2 * math.Pi), omega / (2 * quality) / (2 * math.Pi)
}

func TestRingdownAndDamping_MatchQNMFit(t *testing.T) {
	prev := 0.0
	for i := -19; i <= 19; i++ {
		af := float64(i) * 0.05
		ring, damp := qnm(af)
		gotRing := phenom.RingdownFrequency(af)
		gotDamp := phenom.DampingFrequency(af)

		assert.True(t, scalar.EqualWithinRel(ring, gotRing, 5e-6), "ring af=%.2f: %g vs %g", af, ring, gotRing)
		assert.True(t, scalar.EqualWithinRel(damp, gotDamp, 5e-5), "damp af=%.2f: %g vs %g", af, damp, gotDamp)
		assert.Greater(t, gotRing, prev, "ringdown frequency must grow with spin")
		assert.Greater(t, gotDamp, 0.0)
		prev = gotRing
	}
}

func TestNewPowers(t *testing.T) {
	pw := phenom.NewPowers(math.Pi)
	cases := []struct {
		name string
		got  float64
		exp  float64
	}{
		{"Third", pw.Third, 1.0 / 3.0},
		{"One", pw.One, 1},
		{"FourThirds", pw.FourThirds, 4.0 / 3.0},
		{"FiveThirds", pw.FiveThirds, 5.0 / 3.0},
		{"Two", pw.Two, 2},
		{"SevenThirds", pw.SevenThirds, 7.0 / 3.0},
		{"EightThirds", pw.EightThirds, 8.0 / 3.0},
		{"Three", pw.Three, 3},
		{"MinusOneSixth", pw.MinusOneSixth, -1.0 / 6.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, scalar.EqualWithinRel(math.Pow(math.Pi, tc.exp), tc.got, 1e-14))
		})
	}
}
