// Package step provides time-domain step response analysis for
// characterizing filter transient behavior.
//
// The analyzer takes a recorded step response and the expected
// steady-state value and reports the classic control-style metrics:
//
//   - Peak and peak index: the largest excursion of the response
//   - Overshoot: how far the peak shoots past the target, as a fraction
//   - Rise index: first sample at or above 90% of the target
//   - Settling index: first sample after which the response stays
//     inside a ± tolerance band around the target
//
// All indices are sample counts into the supplied slice; convert with
// the sample rate if times are needed.
//
// # Usage
//
//	f := cheby1.New()
//	y := make([]float64, 200)
//	for i := range y {
//		y[i] = f.ProcessSample(1)
//	}
//
//	analyzer := step.NewAnalyzer(0.01) // settle within ±1%
//	metrics, err := analyzer.Analyze(y, cheby1.Coefficients().DCGain())
//	fmt.Printf("settled at sample %d, overshoot %.1f%%\n",
//		metrics.SettlingIndex, 100*metrics.Overshoot)
package step
