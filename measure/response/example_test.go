package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-cheby1/dsp/cheby1"
	"github.com/cwbudde/algo-cheby1/measure/response"
)

func ExampleAnalyzer_Measure() {
	an, err := response.NewAnalyzer(
		response.WithSampleRate(cheby1.SampleRateHz),
		response.WithFFTSize(256),
	)
	if err != nil {
		panic(err)
	}

	m, err := an.Measure(cheby1.New())
	if err != nil {
		panic(err)
	}

	db := m.MagnitudeDB()
	for _, bin := range []int{13, 26, 51} {
		fmt.Printf("%.2f Hz: %.2f dB\n", m.Frequencies[bin], db[bin])
	}

	// Output:
	// 5.08 Hz: -3.29 dB
	// 10.16 Hz: -25.55 dB
	// 19.92 Hz: -52.74 dB
}
