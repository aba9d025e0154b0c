// Package iir provides a direct-form IIR filter runtime of arbitrary order.
//
// A [Filter] processes a stream one sample at a time against fixed
// [Coefficients], keeping input and output history in circular delay
// lines. Coefficient analysis (frequency response, poles, zeros,
// stability) lives on [Coefficients] and does not touch filter state.
//
// This package provides the processing runtime only. It does not design
// coefficients; ready-made filters such as dsp/cheby1 supply their own
// precomputed tables.
package iir
