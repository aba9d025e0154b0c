// Package cheby1 provides a ready-to-run Chebyshev Type I low-pass filter
// with precomputed coefficients: order 4, 5 Hz cutoff, 100 Hz sample rate.
//
// The package ships the coefficient tables only; the runtime lives in
// [github.com/cwbudde/algo-cheby1/dsp/iir]. Typical use is smoothing a
// 100 Hz sensor feed before downsampling or derivative estimation.
package cheby1

import "github.com/cwbudde/algo-cheby1/dsp/iir"

// Design parameters of the shipped coefficient tables. The tables below
// are valid only for this exact combination.
const (
	// Order is the filter order.
	Order = 4

	// CutoffHz is the low-pass cutoff frequency (the -3 dB point).
	CutoffHz = 5.0

	// SampleRateHz is the sample rate the coefficients were designed for.
	SampleRateHz = 100.0
)

// Transfer function coefficients in ascending powers of z^-1, produced
// by an offline design run; nothing in this module recomputes them.
// feedback[0] is the normalization slot required by iir.New.
var (
	feedforward = [Order + 1]float64{
		0.000416599204407,
		0.00166639681763,
		0.00249959522644,
		0.00166639681763,
		0.000416599204407,
	}

	feedback = [Order + 1]float64{
		1.0,
		-3.18063854887,
		3.86119434899,
		-2.11215535511,
		0.438265142262,
	}
)

// New returns a filter instance with zero initial state. Instances are
// independent; give each signal stream its own.
//
// Panics if the built-in table fails validation, which can only happen
// if the table itself is edited.
func New() *iir.Filter {
	f, err := iir.New(feedforward[:], feedback[:])
	if err != nil {
		panic("cheby1: invalid coefficient table: " + err.Error())
	}

	return f
}

// Coefficients returns a copy of the precomputed coefficient tables,
// for response analysis or for driving an iir.Filter directly.
func Coefficients() iir.Coefficients {
	b := feedforward
	a := feedback

	return iir.Coefficients{B: b[:], A: a[:]}
}
