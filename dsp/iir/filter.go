package iir

import "github.com/cwbudde/algo-cheby1/dsp/delay"

// Filter is a direct-form IIR filter of arbitrary order. Input and output
// history are kept in two circular delay lines that advance in lockstep,
// one write per processed sample.
type Filter struct {
	coeffs Coefficients

	x *delay.Line // input history
	y *delay.Line // output history
}

// New creates a filter from feedforward (b) and feedback (a) coefficient
// vectors in ascending powers of z^-1. Both slices are copied. a[0] must
// be 1; it is stored for indexing symmetry and never multiplied.
func New(b, a []float64) (*Filter, error) {
	c := Coefficients{B: b, A: a}.clone()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return newFilter(c), nil
}

// newFilter wires the delay lines for validated coefficients.
func newFilter(c Coefficients) *Filter {
	x, _ := delay.New(len(c.B))
	y, _ := delay.New(len(c.A))

	return &Filter{coeffs: c, x: x, y: y}
}

// ProcessSample filters one input sample and returns the output.
//
// This is a Direct Form I implementation:
//
//	y[n] = b[0]*x[n] + sum_{i=1}^{M} (b[i]*x[n-i] - a[i]*y[n-i])
//
// The accumulation runs in float64 with terms added in ascending lag
// order. Missing history reads as zero on a fresh or Reset filter.
func (f *Filter) ProcessSample(sample float64) float64 {
	b, a := f.coeffs.B, f.coeffs.A

	f.x.Write(sample)

	acc := b[0] * sample
	for i := 1; i < len(b); i++ {
		acc += b[i]*f.x.Read(i+1) - a[i]*f.y.Read(i)
	}

	f.y.Write(acc)

	return acc
}

// ProcessSample32 filters one float32 sample. The arithmetic runs in
// float64 internally; only the boundary values are single precision.
func (f *Filter) ProcessSample32(sample float32) float32 {
	return float32(f.ProcessSample(float64(sample)))
}

// Reset clears both delay lines to zero.
func (f *Filter) Reset() {
	f.x.Reset()
	f.y.Reset()
}

// Order returns the filter order (len(b) - 1).
func (f *Filter) Order() int {
	return f.coeffs.Order()
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter) Coefficients() Coefficients {
	return f.coeffs.clone()
}

// ImpulseResponse computes n samples of the impulse response h[n] by
// feeding a unit impulse through a fresh copy of the filter. The
// receiver's state is not modified.
func (f *Filter) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	probe := newFilter(f.coeffs)

	ir := make([]float64, n)
	ir[0] = probe.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = probe.ProcessSample(0)
	}

	return ir
}
