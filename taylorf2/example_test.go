package taylorf2_test

import (
	"fmt"

	"github.com/katalvlaran/lvwave/taylorf2"
)

// ExampleNew evaluates the orbital speed of a 20 M☉ binary at 20 Hz.
func ExampleNew() {
	m, err := taylorf2.New(20, 1, 0, 0, 100)
	if err != nil {
		fmt.Println(err)
		return
	}
	v := m.OrbitalSpeed(20)
	fmt.Printf("v = %.4f, amplitude negative: %t\n", v, m.Amplitude(v) < 0)
	// Output:
	// v = 0.1836, amplitude negative: true
}
