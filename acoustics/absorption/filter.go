package absorption

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-atmos/acoustics/atmosphere"
)

// Errors returned by the absorption filter.
var (
	ErrEmptyInput        = errors.New("absorption: empty input")
	ErrInvalidDistance   = errors.New("absorption: distance must be finite and non-negative")
	ErrInvalidSampleRate = errors.New("absorption: sample rate must be finite and positive")
)

const minFFTSize = 16

// Filter applies the air absorption of a layer over a fixed propagation
// distance to sampled signals.
//
// The filter is zero-phase: every FFT bin is scaled by the real gain
// 10^(-a_f·distance/20) at its centre frequency. Signals are zero-padded to
// at least twice their length so the symmetric impulse response does not
// wrap onto the output.
type Filter struct {
	layer    atmosphere.Layer
	distance float64
	cfg      Config
	terms    terms
}

// NewFilter returns a filter for the layer and distance (m).
func NewFilter(l atmosphere.Layer, distance float64, opts ...Option) (*Filter, error) {
	if distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDistance, distance)
	}

	cfg := ApplyOptions(opts...)
	if math.IsInf(cfg.SampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, cfg.SampleRate)
	}

	return &Filter{
		layer:    l,
		distance: distance,
		cfg:      cfg,
		terms:    newTerms(l, cfg.NitrogenExponent),
	}, nil
}

// Layer returns the layer the filter was built for.
func (f *Filter) Layer() atmosphere.Layer { return f.layer }

// Distance returns the propagation distance in metres.
func (f *Filter) Distance() float64 { return f.distance }

// SampleRate returns the sample rate in Hz.
func (f *Filter) SampleRate() float64 { return f.cfg.SampleRate }

// GainDB returns the level change in dB at frequency freq. It is never
// positive for physical layers.
func (f *Filter) GainDB(freq float64) float64 {
	return -f.terms.at(freq) * f.distance
}

// Gain returns the linear amplitude gain at frequency freq.
func (f *Filter) Gain(freq float64) float64 {
	return math.Pow(10, f.GainDB(freq)/20)
}

// Process returns signal filtered by the air absorption. The output has the
// same length as the input.
func (f *Filter) Process(signal []float64) ([]float64, error) {
	spectrum, plan, err := f.filteredSpectrum(signal)
	if err != nil {
		return nil, err
	}

	if err := plan.Inverse(spectrum, spectrum); err != nil {
		return nil, fmt.Errorf("absorption: inverse FFT failed: %w", err)
	}

	out := make([]float64, len(signal))
	for i := range out {
		out[i] = real(spectrum[i])
	}

	return out, nil
}

// Spectrum returns |X[k]|² of the filtered signal for the non-negative
// frequency bins k = 0..N/2 of the zero-padded FFT of size N. Bin k lies at
// k·SampleRate/N Hz.
func (f *Filter) Spectrum(signal []float64) ([]float64, error) {
	spectrum, _, err := f.filteredSpectrum(signal)
	if err != nil {
		return nil, err
	}

	bins := len(spectrum)/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(spectrum[k])
		im[k] = imag(spectrum[k])
	}

	out := make([]float64, bins)
	vecmath.Power(out, re, im)

	return out, nil
}

// filteredSpectrum returns the full n-point spectrum of the zero-padded
// signal with the bin gains applied, and the plan that produced it.
func (f *Filter) filteredSpectrum(signal []float64) ([]complex128, *algofft.Plan[complex128], error) {
	if len(signal) == 0 {
		return nil, nil, ErrEmptyInput
	}

	n := fftSize(len(signal))

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, nil, fmt.Errorf("absorption: failed to create FFT plan: %w", err)
	}

	spectrum := make([]complex128, n)
	for i, v := range signal {
		spectrum[i] = complex(v, 0)
	}

	if err := plan.Forward(spectrum, spectrum); err != nil {
		return nil, nil, fmt.Errorf("absorption: forward FFT failed: %w", err)
	}

	gains := f.binGains(n)
	half := n / 2

	for k, g := range gains {
		c := complex(g, 0)
		spectrum[k] *= c

		if k > 0 && k < half {
			spectrum[n-k] *= c
		}
	}

	return spectrum, plan, nil
}

// binGains returns the linear gain of bins 0..n/2 of an n-point FFT.
func (f *Filter) binGains(n int) []float64 {
	half := n / 2
	freqs := make([]float64, half+1)

	for k := range freqs {
		freqs[k] = float64(k) * f.cfg.SampleRate / float64(n)
	}

	gains := make([]float64, len(freqs))
	f.terms.block(gains, freqs)

	for k, a := range gains {
		gains[k] = math.Pow(10, -a*f.distance/20)
	}

	return gains
}

func fftSize(length int) int {
	n := nextPowerOf2(2 * length)
	if n < minFFTSize {
		n = minFFTSize
	}

	return n
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
