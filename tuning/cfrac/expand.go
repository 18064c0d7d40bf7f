package cfrac

import (
	"fmt"
	"math"
)

const (
	defaultTermCap  = 1000
	defaultMaxTerms = 100
)

type config struct {
	termCap  uint64
	maxTerms int
}

// Option mutates the expansion configuration.
type Option func(*config)

func defaultConfig() config {
	return config{
		termCap:  defaultTermCap,
		maxTerms: defaultMaxTerms,
	}
}

// WithTermCap sets the largest term the expansion will emit. A term above
// the cap ends the expansion without being emitted, which guards against
// values that are nearly rational and would otherwise blow up the
// reciprocal. Non-positive values are ignored.
func WithTermCap(limit int) Option {
	return func(cfg *config) {
		if limit > 0 {
			cfg.termCap = uint64(limit)
		}
	}
}

// WithMaxTerms sets the maximum number of terms the expansion will emit.
// Non-positive values are ignored.
func WithMaxTerms(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxTerms = n
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Expand converts a positive real value into its continued-fraction term
// sequence.
//
// The sequence is finite by construction: it ends when the remainder
// reaches zero (exactly representable rationals), when a term exceeds the
// term cap, or when the term count reaches the length limit. Every emitted
// term after the integer part is at least 1 and at most the cap; the
// integer part itself is emitted unchecked.
func Expand(value float64, opts ...Option) ([]uint64, error) {
	if err := validateValue(value); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts...)
	terms := make([]uint64, 0, 16)
	remaining := cfg.maxTerms

	n := value
	if n > 1.0 {
		a := uint64(n)
		terms = append(terms, a)

		remaining--
		if remaining == 0 {
			return terms, nil
		}

		n -= float64(a)
	}

	for n > 0.0 {
		n = 1.0 / n

		// Compare before converting: a reciprocal of a tiny remainder can
		// exceed the uint64 range.
		if n >= float64(cfg.termCap)+1 {
			return terms, nil
		}

		a := uint64(n)
		terms = append(terms, a)
		n -= float64(a)

		remaining--
		if remaining == 0 {
			return terms, nil
		}
	}

	return terms, nil
}

func validateValue(value float64) error {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("cfrac: value must be positive and finite: %v", value)
	}

	// The integer part becomes the first term; it has to fit one.
	if value >= 1<<63 {
		return fmt.Errorf("cfrac: value out of term range: %v", value)
	}

	return nil
}
