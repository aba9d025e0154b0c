package cheby1_test

import (
	"fmt"

	"github.com/cwbudde/algo-cheby1/dsp/cheby1"
)

func ExampleNew() {
	f := cheby1.New()

	// Impulse response of the shipped low-pass.
	h := f.ImpulseResponse(4)
	for i, v := range h {
		fmt.Printf("h[%d] = %.6f\n", i, v)
	}
	// Output:
	// h[0] = 0.000417
	// h[1] = 0.002991
	// h[2] = 0.010406
	// h[3] = 0.024093
}

func ExampleCoefficients() {
	c := cheby1.Coefficients()

	fmt.Printf("order %d\n", c.Order())
	fmt.Printf("cutoff: %.2f dB\n", c.MagnitudeDB(cheby1.CutoffHz, cheby1.SampleRateHz))
	fmt.Printf("20 Hz: %.2f dB\n", c.MagnitudeDB(20, cheby1.SampleRateHz))
	// Output:
	// order 4
	// cutoff: -3.01 dB
	// 20 Hz: -52.92 dB
}
