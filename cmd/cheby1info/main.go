// Command cheby1info prints design data for the packaged Chebyshev
// Type I low-pass filter.
//
// Usage:
//
//	cheby1info [flags]
//
// Without flags it prints the filter constants and coefficient tables.
//
// Examples:
//
//	cheby1info
//	cheby1info -response -points 21
//	cheby1info -response -fft 256
//	cheby1info -poles -step
//	cheby1info -all
package main

import (
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/cwbudde/algo-cheby1/dsp/cheby1"
	"github.com/cwbudde/algo-cheby1/measure/response"
	"github.com/cwbudde/algo-cheby1/measure/step"
)

func main() {
	showResponse := flag.Bool("response", false, "print the magnitude response table")
	points := flag.Int("points", 11, "rows in the response table")
	fftSize := flag.Int("fft", 0, "measure the response with an FFT of this size instead of evaluating H(z)")
	showPoles := flag.Bool("poles", false, "print poles, zeros and stability")
	showStep := flag.Bool("step", false, "print step response metrics")
	samples := flag.Int("samples", 200, "step response length in samples")
	tolerance := flag.Float64("tolerance", step.DefaultTolerance, "settling band half-width for step metrics")
	all := flag.Bool("all", false, "print all sections")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cheby1info [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints design data for the packaged Chebyshev low-pass filter.\n")
		fmt.Fprintf(os.Stderr, "Without flags, prints the filter constants and coefficient tables.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  cheby1info -response -points 21\n")
		fmt.Fprintf(os.Stderr, "  cheby1info -response -fft 256\n")
		fmt.Fprintf(os.Stderr, "  cheby1info -all\n")
	}
	flag.Parse()

	if *all {
		*showResponse = true
		*showPoles = true
		*showStep = true
	}

	printHeader()

	if *showResponse {
		var err error
		if *fftSize > 0 {
			err = printMeasuredResponse(*fftSize, *points)
		} else {
			err = printResponse(*points)
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if *showPoles {
		if err := printPoles(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if *showStep {
		if err := printStep(*samples, *tolerance); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printHeader() {
	c := cheby1.Coefficients()

	fmt.Println("Chebyshev Type I low-pass")
	fmt.Printf("order:       %d\n", cheby1.Order)
	fmt.Printf("cutoff:      %g Hz\n", cheby1.CutoffHz)
	fmt.Printf("sample rate: %g Hz\n", cheby1.SampleRateHz)
	fmt.Printf("DC gain:     %.12f\n", c.DCGain())
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "i\tb[i]\ta[i]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for i := range c.B {
		if _, err := fmt.Fprintf(tw, "%d\t%.15g\t%.15g\n", i, c.B[i], c.A[i]); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}

	fmt.Println()
}

func printResponse(points int) error {
	if points < 2 {
		points = 2
	}

	c := cheby1.Coefficients()
	nyquist := cheby1.SampleRateHz / 2

	fmt.Println("Magnitude response (closed form)")

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\t|H|\tMag [dB]\tPhase [deg]\n"); err != nil {
		return err
	}

	for i := range points {
		freq := float64(i) * nyquist / float64(points-1)
		h := c.Response(freq, cheby1.SampleRateHz)
		phaseDeg := c.Phase(freq, cheby1.SampleRateHz) * 180 / math.Pi

		if _, err := fmt.Fprintf(tw, "%.3f\t%.6f\t%.2f\t%.1f\n",
			freq, cmplx.Abs(h), c.MagnitudeDB(freq, cheby1.SampleRateHz), phaseDeg); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Println()

	return nil
}

func printMeasuredResponse(fftSize, points int) error {
	an, err := response.NewAnalyzer(
		response.WithSampleRate(cheby1.SampleRateHz),
		response.WithFFTSize(fftSize),
	)
	if err != nil {
		return err
	}

	m, err := an.Measure(cheby1.New())
	if err != nil {
		return err
	}

	if points < 2 {
		points = 2
	}

	if points > len(m.Frequencies) {
		points = len(m.Frequencies)
	}

	db := m.MagnitudeDB()

	fmt.Printf("Magnitude response (FFT, %d points)\n", fftSize)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\t|H|\tMag [dB]\n"); err != nil {
		return err
	}

	// Thin the bins down to the requested number of rows. Row 0 is
	// always bin 0, which also covers a one-bin measurement.
	for i := range points {
		bin := 0
		if i > 0 {
			bin = i * (len(m.Frequencies) - 1) / (points - 1)
		}

		if _, err := fmt.Fprintf(tw, "%.3f\t%.6f\t%.2f\n",
			m.Frequencies[bin], m.Magnitude[bin], db[bin]); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Println()

	return nil
}

func printPoles() error {
	c := cheby1.Coefficients()

	poles, err := c.Poles()
	if err != nil {
		return err
	}

	zeros, err := c.Zeros()
	if err != nil {
		return err
	}

	stable, err := c.Stable()
	if err != nil {
		return err
	}

	sortRoots(poles)
	sortRoots(zeros)

	fmt.Println("Poles and zeros")

	for i, p := range poles {
		fmt.Printf("pole %d: %+.6f%+.6fi  |p| = %.6f\n", i, real(p), imag(p), cmplx.Abs(p))
	}

	for i, z := range zeros {
		fmt.Printf("zero %d: %+.6f%+.6fi\n", i, real(z), imag(z))
	}

	fmt.Printf("stable: %v\n", stable)
	fmt.Println()

	return nil
}

// sortRoots orders roots by real part, then imaginary part, so the
// output does not depend on the iteration order of the root finder.
func sortRoots(roots []complex128) {
	sort.Slice(roots, func(i, j int) bool {
		if real(roots[i]) != real(roots[j]) {
			return real(roots[i]) < real(roots[j])
		}

		return imag(roots[i]) < imag(roots[j])
	})
}

func printStep(samples int, tolerance float64) error {
	if samples < 1 {
		samples = 1
	}

	f := cheby1.New()
	y := make([]float64, samples)

	for i := range y {
		y[i] = f.ProcessSample(1)
	}

	m, err := step.NewAnalyzer(tolerance).Analyze(y, cheby1.Coefficients().DCGain())
	if err != nil {
		return err
	}

	fmt.Println("Step response")
	fmt.Printf("target:    %.9f\n", m.Target)
	fmt.Printf("final:     %.9f\n", m.Final)
	fmt.Printf("peak:      %.6f at sample %d (%.3f s)\n",
		m.Peak, m.PeakIndex, float64(m.PeakIndex)/cheby1.SampleRateHz)
	fmt.Printf("overshoot: %.2f%%\n", 100*m.Overshoot)

	if m.RiseIndex >= 0 {
		fmt.Printf("rise:      sample %d (%.3f s to 90%%)\n",
			m.RiseIndex, float64(m.RiseIndex)/cheby1.SampleRateHz)
	}

	if m.SettlingIndex >= 0 {
		fmt.Printf("settled:   sample %d (%.3f s, within ±%g%%)\n",
			m.SettlingIndex, float64(m.SettlingIndex)/cheby1.SampleRateHz, 100*tolerance)
	} else {
		fmt.Printf("settled:   not within ±%g%% after %d samples\n", 100*tolerance, samples)
	}

	return nil
}
