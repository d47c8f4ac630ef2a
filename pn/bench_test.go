package pn_test

import (
	"testing"

	"github.com/katalvlaran/lvwave/binary"
	"github.com/katalvlaran/lvwave/pn"
)

var benchSink float64

func BenchmarkNewPhasing(b *testing.B) {
	p, _ := binary.New(0.5, 0.3, -0.1, binary.WithTidalDeformability(300, 500))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := pn.NewPhasing(p)
		benchSink = s.V[0]
	}
}

func BenchmarkPhasing_Eval(b *testing.B) {
	p, _ := binary.New(0.5, 0.3, -0.1)
	s := pn.NewPhasing(p)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = s.Eval(0.2)
	}
}
