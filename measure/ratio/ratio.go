package ratio

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultRangeLowerHz = 20.0
	defaultRangeUpperHz = 20000.0
)

// Config holds ratio measurement parameters.
type Config struct {
	SampleRate     float64
	FFTSize        int
	RangeLowerFreq float64
	RangeUpperFreq float64
}

// Analyzer estimates dominant frequencies from time-domain signals.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates a new ratio analyzer.
func NewAnalyzer(cfg Config) *Analyzer {
	cfg = normalizeConfig(cfg)
	return &Analyzer{cfg: cfg}
}

// Interval is a one-shot measurement of the frequency ratio between two
// recordings.
func Interval(low, high []float64, cfg Config) (float64, error) {
	return NewAnalyzer(cfg).Interval(low, high)
}

// Interval returns the ratio of the dominant frequency of high to that of
// low. Both signals are analyzed with the same configuration.
func (a *Analyzer) Interval(low, high []float64) (float64, error) {
	fLow, err := a.DominantFrequency(low)
	if err != nil {
		return 0, fmt.Errorf("ratio: lower tone: %w", err)
	}

	fHigh, err := a.DominantFrequency(high)
	if err != nil {
		return 0, fmt.Errorf("ratio: upper tone: %w", err)
	}

	if fLow <= 0 {
		return 0, fmt.Errorf("ratio: lower tone has no dominant frequency")
	}

	return fHigh / fLow, nil
}

// DominantFrequency estimates the strongest frequency component of the
// signal in Hz.
//
// The signal is Hann-windowed and transformed; the largest magnitude bin
// within the configured frequency range is refined by parabolic
// interpolation over its neighbors, giving sub-bin resolution for clean
// tones.
func (a *Analyzer) DominantFrequency(signal []float64) (float64, error) {
	if len(signal) == 0 {
		return 0, fmt.Errorf("ratio: signal must not be empty")
	}

	cfg := a.cfg

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(signal))
	}

	if fftSize <= 1 {
		return 0, fmt.Errorf("ratio: FFT size too small: %d", fftSize)
	}

	if len(signal) > fftSize {
		signal = signal[:fftSize]
	}

	in := make([]complex128, fftSize)
	applyHann(in, signal)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("ratio: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("ratio: forward FFT: %w", err)
	}

	binCount := fftSize/2 + 1
	mag := magnitudeBins(out[:binCount])

	binHz := cfg.SampleRate / float64(fftSize)
	lowerBin := clampInt(int(math.Round(cfg.RangeLowerFreq/binHz)), 1, binCount-1)
	upperBin := clampInt(int(math.Round(cfg.RangeUpperFreq/binHz)), lowerBin, binCount-1)

	peak := lowerBin
	for i := lowerBin; i <= upperBin; i++ {
		if mag[i] > mag[peak] {
			peak = i
		}
	}

	if mag[peak] <= 0 {
		return 0, fmt.Errorf("ratio: no energy in measurement range")
	}

	return (float64(peak) + peakOffset(mag, peak)) * binHz, nil
}

// magnitudeBins unpacks complex bins and computes their magnitudes.
func magnitudeBins(bins []complex128) []float64 {
	re := make([]float64, len(bins))
	im := make([]float64, len(bins))
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	mag := make([]float64, len(bins))
	vecmath.Magnitude(mag, re, im)

	return mag
}

// applyHann writes the Hann-windowed signal into the real parts of dst.
func applyHann(dst []complex128, signal []float64) {
	n := len(signal)
	if n == 1 {
		dst[0] = complex(signal[0], 0)
		return
	}

	scale := 2 * math.Pi / float64(n-1)
	for i, s := range signal {
		w := 0.5 * (1 - math.Cos(scale*float64(i)))
		dst[i] = complex(s*w, 0)
	}
}

// peakOffset refines the peak bin by fitting a parabola through the peak
// and its neighbors. The returned offset lies in (-1, 1) bins.
func peakOffset(mag []float64, peak int) float64 {
	if peak <= 0 || peak >= len(mag)-1 {
		return 0
	}

	left := mag[peak-1]
	center := mag[peak]
	right := mag[peak+1]

	denom := left - 2*center + right
	if denom == 0 {
		return 0
	}

	offset := 0.5 * (left - right) / denom
	if offset < -1 || offset > 1 {
		return 0
	}

	return offset
}

func normalizeConfig(cfg Config) Config {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 48000
	}

	if cfg.RangeLowerFreq <= 0 {
		cfg.RangeLowerFreq = defaultRangeLowerHz
	}

	if cfg.RangeUpperFreq <= 0 {
		cfg.RangeUpperFreq = defaultRangeUpperHz
	}

	if cfg.RangeUpperFreq < cfg.RangeLowerFreq {
		cfg.RangeUpperFreq = cfg.RangeLowerFreq
	}

	return cfg
}

func clampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}

	if val > hi {
		return hi
	}

	return val
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
