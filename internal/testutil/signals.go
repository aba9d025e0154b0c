// Package testutil provides deterministic excitation signals and
// comparison helpers shared by the filter tests.
package testutil

import (
	"math"
	"math/rand"
)

// Sine returns n samples of amplitude*sin(2*pi*freqHz*i/sampleRate).
func Sine(freqHz, sampleRate, amplitude float64, n int) []float64 {
	out := make([]float64, n)

	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// Noise returns n samples of uniform white noise in [-amplitude, amplitude].
// The same seed always produces the same sequence.
func Noise(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)

	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Impulse returns n zero samples with a single unit spike at pos. An
// out-of-range pos leaves the slice all zero.
func Impulse(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}

	return out
}

// Step returns n samples that switch from 0 to amplitude at pos.
func Step(amplitude float64, n, pos int) []float64 {
	out := make([]float64, n)
	for i := max(pos, 0); i < n; i++ {
		out[i] = amplitude
	}

	return out
}
