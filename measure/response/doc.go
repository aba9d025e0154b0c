// Package response measures the magnitude frequency response of streaming
// filters by impulse excitation and FFT.
//
// Any processor exposing a per-sample ProcessSample method can be measured.
// The analyzer feeds a unit impulse, captures FFTSize output samples and
// transforms them, yielding one magnitude per bin from DC to Nyquist.
// For stable IIR filters the result matches the analytic response up to
// impulse truncation, so FFTSize should be chosen long enough for the
// tail to decay below the accuracy of interest.
//
// # Usage
//
//	an, err := response.NewAnalyzer(
//	    response.WithSampleRate(100),
//	    response.WithFFTSize(256),
//	)
//	m, err := an.Measure(cheby1.New())
//	fmt.Printf("%.1f Hz: %.2f\n", m.Frequencies[13], m.Magnitude[13])
package response
