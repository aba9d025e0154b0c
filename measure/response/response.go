package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-cheby1/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// ErrNilProcessor is returned when Measure is called with a nil processor.
var ErrNilProcessor = errors.New("response: processor is nil")

// SampleProcessor is any causal filter that processes one sample at a time.
type SampleProcessor interface {
	ProcessSample(x float64) float64
}

// ImpulseResponder is optionally implemented by processors that can
// produce their impulse response without disturbing their own state.
type ImpulseResponder interface {
	ImpulseResponse(n int) []float64
}

// Measurement holds a sampled magnitude response.
type Measurement struct {
	Frequencies []float64 // bin centers in Hz, DC through Nyquist
	Magnitude   []float64 // linear |H| per bin

	bins []complex128
}

// MagnitudeDB returns the magnitude response in dB (20*log10 convention).
func (m *Measurement) MagnitudeDB() []float64 {
	out := make([]float64, len(m.Magnitude))
	for i, v := range m.Magnitude {
		out[i] = core.LinearToDB(v)
	}

	return out
}

// Bins returns a copy of the complex spectrum, DC through Nyquist.
func (m *Measurement) Bins() []complex128 {
	return append([]complex128(nil), m.bins...)
}

// BinAt returns the index of the bin closest to freqHz, clamped to the
// measured range. NaN maps to bin 0.
func (m *Measurement) BinAt(freqHz float64) int {
	if len(m.Frequencies) < 2 || math.IsNaN(freqHz) || freqHz <= 0 {
		return 0
	}

	// Clamp before converting so +Inf and out-of-range frequencies land
	// on the last bin instead of overflowing the int conversion.
	idx := math.Round(freqHz / m.Frequencies[1])
	if idx > float64(len(m.Frequencies)-1) {
		return len(m.Frequencies) - 1
	}

	return int(idx)
}

// Analyzer measures magnitude responses by impulse excitation and FFT.
type Analyzer struct {
	cfg  Config
	plan *algofft.Plan[complex128]
}

// NewAnalyzer creates an analyzer for the configured FFT size.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	cfg := ApplyOptions(opts...)

	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	return &Analyzer{cfg: cfg, plan: plan}, nil
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Measure excites p with a unit impulse, transforms the captured response
// and returns magnitudes for the FFTSize/2+1 bins from DC to Nyquist.
//
// If p implements [ImpulseResponder] the probe leaves its state alone;
// otherwise p is driven directly and should be freshly constructed or
// Reset beforehand.
func (a *Analyzer) Measure(p SampleProcessor) (*Measurement, error) {
	if p == nil {
		return nil, ErrNilProcessor
	}

	n := a.cfg.FFTSize

	var ir []float64
	if probe, ok := p.(ImpulseResponder); ok {
		ir = probe.ImpulseResponse(n)
		if len(ir) != n {
			return nil, fmt.Errorf("response: impulse responder returned %d samples, want %d", len(ir), n)
		}
	} else {
		ir = make([]float64, n)
		ir[0] = p.ProcessSample(1)
		for i := 1; i < n; i++ {
			ir[i] = p.ProcessSample(0)
		}
	}

	buf := make([]complex128, n)
	for i, v := range ir {
		buf[i] = complex(v, 0)
	}

	spectrum := make([]complex128, n)
	if err := a.plan.Forward(spectrum, buf); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(spectrum[i])
		im[i] = imag(spectrum[i])
	}

	m := &Measurement{
		Frequencies: make([]float64, bins),
		Magnitude:   make([]float64, bins),
		bins:        append([]complex128(nil), spectrum[:bins]...),
	}

	df := a.cfg.SampleRate / float64(n)
	for i := range m.Frequencies {
		m.Frequencies[i] = float64(i) * df
	}

	vecmath.Magnitude(m.Magnitude, re, im)

	return m, nil
}
