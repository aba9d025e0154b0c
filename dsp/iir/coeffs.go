package iir

import "errors"

// Errors returned by coefficient validation and analysis.
var (
	ErrCoefficientLength = errors.New("iir: b and a must have equal non-zero length")
	ErrNotNormalized     = errors.New("iir: a[0] must be 1")
)

// Coefficients holds the transfer function coefficients of a direct-form
// IIR filter in ascending powers of z^-1:
//
//	H(z) = (B[0] + B[1]*z^-1 + ... + B[M]*z^-M) /
//	       (A[0] + A[1]*z^-1 + ... + A[M]*z^-M)
//
// A[0] is the normalization slot. It must be 1 and is never multiplied
// during processing; it is kept so that B and A index identically.
type Coefficients struct {
	B []float64 // feedforward (numerator)
	A []float64 // feedback (denominator)
}

// Validate checks that both vectors have the same non-zero length and
// that A[0] is exactly 1. Length 1 describes an order-zero gain stage.
func (c Coefficients) Validate() error {
	if len(c.B) != len(c.A) || len(c.B) == 0 {
		return ErrCoefficientLength
	}

	if c.A[0] != 1 {
		return ErrNotNormalized
	}

	return nil
}

// Order returns the filter order (len(B) - 1).
func (c Coefficients) Order() int {
	return len(c.B) - 1
}

// DCGain returns the gain at 0 Hz, sum(B)/sum(A).
func (c Coefficients) DCGain() float64 {
	var num, den float64
	for _, v := range c.B {
		num += v
	}
	for _, v := range c.A {
		den += v
	}

	return num / den
}

// clone returns a deep copy of the coefficient vectors.
func (c Coefficients) clone() Coefficients {
	b := make([]float64, len(c.B))
	a := make([]float64, len(c.A))
	copy(b, c.B)
	copy(a, c.A)

	return Coefficients{B: b, A: a}
}
