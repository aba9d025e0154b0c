package step

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-cheby1/dsp/cheby1"
	"github.com/cwbudde/algo-cheby1/internal/testutil"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewAnalyzerDefaults(t *testing.T) {
	if got := NewAnalyzer(0).Tolerance; got != DefaultTolerance {
		t.Fatalf("Tolerance = %v, want %v", got, DefaultTolerance)
	}

	if got := NewAnalyzer(0.05).Tolerance; got != 0.05 {
		t.Fatalf("Tolerance = %v, want 0.05", got)
	}
}

func TestAnalyzeValidation(t *testing.T) {
	an := NewAnalyzer(0.01)

	if _, err := an.Analyze(nil, 1); !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("empty response: got %v, want ErrEmptyResponse", err)
	}

	if _, err := an.Analyze([]float64{1, 2}, 0); !errors.Is(err, ErrZeroTarget) {
		t.Errorf("zero target: got %v, want ErrZeroTarget", err)
	}

	for _, tol := range []float64{-0.1, 1, 1.5} {
		bad := &Analyzer{Tolerance: tol}
		if _, err := bad.Analyze([]float64{1}, 1); !errors.Is(err, ErrInvalidTolerance) {
			t.Errorf("tolerance %v: got %v, want ErrInvalidTolerance", tol, err)
		}
	}
}

func TestAnalyzeMonotoneRise(t *testing.T) {
	// First-order-style exponential approach, no overshoot.
	y := []float64{0.5, 0.75, 0.875, 0.9375, 1.0}

	m, err := NewAnalyzer(0.05).Analyze(y, 1)
	if err != nil {
		t.Fatal(err)
	}

	if m.Peak != 1.0 || m.PeakIndex != 4 {
		t.Errorf("peak = %v at %d, want 1 at 4", m.Peak, m.PeakIndex)
	}

	if m.Overshoot != 0 {
		t.Errorf("Overshoot = %v, want 0", m.Overshoot)
	}

	// 0.9375 is the first sample at or above 0.9.
	if m.RiseIndex != 3 {
		t.Errorf("RiseIndex = %d, want 3", m.RiseIndex)
	}

	// 0.9375 is still 6.25% off; only the last sample is inside ±5%.
	if m.SettlingIndex != 4 {
		t.Errorf("SettlingIndex = %d, want 4", m.SettlingIndex)
	}

	if m.Final != 1.0 || m.Target != 1.0 {
		t.Errorf("Final = %v, Target = %v, want 1 and 1", m.Final, m.Target)
	}
}

func TestAnalyzeOvershoot(t *testing.T) {
	y := []float64{0.2, 0.9, 1.3, 1.06, 0.97, 1.01, 1.0, 1.0}

	m, err := NewAnalyzer(0.05).Analyze(y, 1)
	if err != nil {
		t.Fatal(err)
	}

	if m.Peak != 1.3 || m.PeakIndex != 2 {
		t.Errorf("peak = %v at %d, want 1.3 at 2", m.Peak, m.PeakIndex)
	}

	if !almostEqual(m.Overshoot, 0.3, eps) {
		t.Errorf("Overshoot = %v, want 0.3", m.Overshoot)
	}

	if m.RiseIndex != 1 {
		t.Errorf("RiseIndex = %d, want 1", m.RiseIndex)
	}

	// 1.06 at index 3 is the last sample outside ±5%.
	if m.SettlingIndex != 4 {
		t.Errorf("SettlingIndex = %d, want 4", m.SettlingIndex)
	}
}

func TestAnalyzeNeverSettles(t *testing.T) {
	y := []float64{0, 2, 0, 2}

	m, err := NewAnalyzer(0.1).Analyze(y, 1)
	if err != nil {
		t.Fatal(err)
	}

	if m.SettlingIndex != -1 {
		t.Errorf("SettlingIndex = %d, want -1", m.SettlingIndex)
	}

	if m.Peak != 2 || m.PeakIndex != 1 {
		t.Errorf("peak = %v at %d, want 2 at 1", m.Peak, m.PeakIndex)
	}

	if !almostEqual(m.Overshoot, 1, eps) {
		t.Errorf("Overshoot = %v, want 1", m.Overshoot)
	}
}

func TestAnalyzeNeverRises(t *testing.T) {
	y := []float64{0.1, 0.2, 0.3}

	m, err := NewAnalyzer(0.01).Analyze(y, 1)
	if err != nil {
		t.Fatal(err)
	}

	if m.RiseIndex != -1 {
		t.Errorf("RiseIndex = %d, want -1", m.RiseIndex)
	}

	if m.SettlingIndex != -1 {
		t.Errorf("SettlingIndex = %d, want -1", m.SettlingIndex)
	}

	if m.Overshoot != 0 {
		t.Errorf("Overshoot = %v, want 0", m.Overshoot)
	}
}

func TestAnalyzeAlreadySettled(t *testing.T) {
	y := []float64{1, 1, 1, 1}

	m, err := NewAnalyzer(0.01).Analyze(y, 1)
	if err != nil {
		t.Fatal(err)
	}

	if m.SettlingIndex != 0 {
		t.Errorf("SettlingIndex = %d, want 0", m.SettlingIndex)
	}

	if m.RiseIndex != 0 {
		t.Errorf("RiseIndex = %d, want 0", m.RiseIndex)
	}
}

func TestAnalyzeNegativeTarget(t *testing.T) {
	// Falling step: metrics are defined relative to the target sign.
	y := []float64{-0.5, -0.9, -1.0, -1.0}

	m, err := NewAnalyzer(0.05).Analyze(y, -1)
	if err != nil {
		t.Fatal(err)
	}

	if m.Peak != -1.0 || m.PeakIndex != 2 {
		t.Errorf("peak = %v at %d, want -1 at 2", m.Peak, m.PeakIndex)
	}

	if m.RiseIndex != 1 {
		t.Errorf("RiseIndex = %d, want 1", m.RiseIndex)
	}

	if m.SettlingIndex != 2 {
		t.Errorf("SettlingIndex = %d, want 2", m.SettlingIndex)
	}

	if m.Overshoot != 0 {
		t.Errorf("Overshoot = %v, want 0", m.Overshoot)
	}
}

func TestAnalyzeLowpassStep(t *testing.T) {
	f := cheby1.New()

	in := testutil.Step(1, 200, 0)
	y := make([]float64, len(in))

	for i, x := range in {
		y[i] = f.ProcessSample(x)
	}

	target := cheby1.Coefficients().DCGain()

	m, err := NewAnalyzer(0.01).Analyze(y, target)
	if err != nil {
		t.Fatal(err)
	}

	if m.PeakIndex != 17 {
		t.Errorf("PeakIndex = %d, want 17", m.PeakIndex)
	}

	if !almostEqual(m.Peak, 1.111155079173875, 1e-9) {
		t.Errorf("Peak = %v, want 1.111155079173875", m.Peak)
	}

	// Peak shoots roughly 11.1% past the DC level.
	if !almostEqual(m.Overshoot, 0.11115507942150926, 1e-9) {
		t.Errorf("Overshoot = %v, want 0.11115507942150926", m.Overshoot)
	}

	if m.RiseIndex != 13 {
		t.Errorf("RiseIndex = %d, want 13", m.RiseIndex)
	}

	// The response leaves the ±1% band for the last time at sample 32.
	if m.SettlingIndex != 33 {
		t.Errorf("SettlingIndex = %d, want 33", m.SettlingIndex)
	}

	if !almostEqual(m.Final, target, 1e-9) {
		t.Errorf("Final = %v, want ~%v", m.Final, target)
	}
}

func TestAnalyzeLowpassStepTolerances(t *testing.T) {
	f := cheby1.New()

	in := testutil.Step(1, 200, 0)
	y := make([]float64, len(in))

	for i, x := range in {
		y[i] = f.ProcessSample(x)
	}

	target := cheby1.Coefficients().DCGain()

	cases := []struct {
		tolerance float64
		want      int
	}{
		{0.02, 31},
		{0.01, 33},
		{0.001, 54},
	}

	for _, tc := range cases {
		m, err := NewAnalyzer(tc.tolerance).Analyze(y, target)
		if err != nil {
			t.Fatal(err)
		}

		if m.SettlingIndex != tc.want {
			t.Errorf("tolerance %v: SettlingIndex = %d, want %d",
				tc.tolerance, m.SettlingIndex, tc.want)
		}
	}
}
