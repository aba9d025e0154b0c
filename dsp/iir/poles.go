package iir

import (
	"math/cmplx"

	"github.com/cwbudde/algo-cheby1/internal/polyroot"
)

// Poles returns the z-plane poles of the filter, the roots of
//
//	A[0] + A[1]*z^-1 + ... + A[M]*z^-M = 0
//
// An order-zero filter has none.
func (c Coefficients) Poles() ([]complex128, error) {
	if len(c.A) == 1 {
		return nil, nil
	}

	return polyroot.RootsAscending(c.A)
}

// Zeros returns the z-plane zeros of the filter, the roots of
//
//	B[0] + B[1]*z^-1 + ... + B[M]*z^-M = 0
//
// An order-zero filter has none.
func (c Coefficients) Zeros() ([]complex128, error) {
	if len(c.B) == 1 {
		return nil, nil
	}

	return polyroot.RootsAscending(c.B)
}

// Stable reports whether every pole lies strictly inside the unit circle.
func (c Coefficients) Stable() (bool, error) {
	poles, err := c.Poles()
	if err != nil {
		return false, err
	}

	for _, p := range poles {
		if cmplx.Abs(p) >= 1 {
			return false, nil
		}
	}

	return true, nil
}
