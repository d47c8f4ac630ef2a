package waveform_test

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/lvwave/imrphenomd"
	"github.com/katalvlaran/lvwave/waveform"
)

// ExampleStrain evaluates one frequency sample of an IMRPhenomD waveform.
func ExampleStrain() {
	m, err := imrphenomd.New(90, 0.5, 0, 0, 100)
	if err != nil {
		fmt.Println(err)
		return
	}
	h := waveform.Strain(m, 20, 0)
	fmt.Printf("|h(20 Hz)| = %.2e\n", cmplx.Abs(h))
	// Output:
	// |h(20 Hz)| = 4.15e-22
}
