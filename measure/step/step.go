package step

import (
	"errors"
	"math"
)

// Errors returned by step response analysis.
var (
	ErrEmptyResponse    = errors.New("step: response is empty")
	ErrZeroTarget       = errors.New("step: target must be non-zero")
	ErrInvalidTolerance = errors.New("step: tolerance must be in (0, 1)")
)

// DefaultTolerance is the settling band half-width used by NewAnalyzer
// when the caller passes 0: the response counts as settled once it
// stays within ±1% of the target.
const DefaultTolerance = 0.01

// Metrics holds step response analysis results.
type Metrics struct {
	Target        float64 // expected steady-state value
	Final         float64 // last sample of the response
	Peak          float64 // largest excursion towards (and possibly past) the target
	PeakIndex     int     // sample index of the peak
	Overshoot     float64 // fractional overshoot beyond the target, 0 when none
	RiseIndex     int     // first index at or above 90% of the target, -1 if never reached
	SettlingIndex int     // first index after which the response stays inside the band, -1 if it keeps leaving
}

// Analyzer computes step metrics from step response data.
type Analyzer struct {
	Tolerance float64 // settling band half-width as a fraction of the target
}

// NewAnalyzer creates a step analyzer with the given settling tolerance.
// A tolerance of 0 selects DefaultTolerance.
func NewAnalyzer(tolerance float64) *Analyzer {
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}

	return &Analyzer{Tolerance: tolerance}
}

// Analyze computes all step metrics from a recorded step response.
// The target is the steady-state value the response is expected to
// approach, e.g. the DC gain of a filter driven with a unit step.
func (a *Analyzer) Analyze(response []float64, target float64) (Metrics, error) {
	if len(response) == 0 {
		return Metrics{}, ErrEmptyResponse
	}

	if target == 0 {
		return Metrics{}, ErrZeroTarget
	}

	if a.Tolerance <= 0 || a.Tolerance >= 1 {
		return Metrics{}, ErrInvalidTolerance
	}

	m := Metrics{
		Target:        target,
		Final:         response[len(response)-1],
		RiseIndex:     -1,
		SettlingIndex: -1,
	}

	// Normalize against the target so the same walk handles steps of
	// either sign and any amplitude.
	peakNorm := math.Inf(-1)

	for i, v := range response {
		s := v / target
		if s > peakNorm {
			peakNorm = s
			m.Peak = v
			m.PeakIndex = i
		}

		if m.RiseIndex < 0 && s >= 0.9 {
			m.RiseIndex = i
		}
	}

	if peakNorm > 1 {
		m.Overshoot = peakNorm - 1
	}

	// Walk backwards: the settling index is the first sample after the
	// last excursion outside the band.
	for i := len(response) - 1; i >= 0; i-- {
		if math.Abs(response[i]/target-1) > a.Tolerance {
			break
		}

		m.SettlingIndex = i
	}

	return m, nil
}
