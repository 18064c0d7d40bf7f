// Package edo provides equal-division-of-the-octave pitch helpers.
package edo

import (
	"fmt"
	"math"
)

// Scale is an equal temperament dividing the octave into a fixed number
// of logarithmically equal steps.
type Scale struct {
	divisions int
}

// New creates a scale with the given number of divisions per octave.
func New(divisions int) (Scale, error) {
	if divisions < 1 {
		return Scale{}, fmt.Errorf("edo: divisions must be >= 1: %d", divisions)
	}

	return Scale{divisions: divisions}, nil
}

// Divisions returns the number of steps per octave.
func (s Scale) Divisions() int {
	return s.divisions
}

// StepRatio returns the frequency ratio of the given step relative to the
// scale root, 2^(step/divisions). Negative steps descend.
func (s Scale) StepRatio(step int) float64 {
	return math.Pow(2, float64(step)/float64(s.divisions))
}

// StepCents returns the pitch offset of the given step in cents.
func (s Scale) StepCents(step int) float64 {
	return 1200 * float64(step) / float64(s.divisions)
}

// RatioToCents converts a frequency ratio to cents, 1200*log2(r).
func RatioToCents(r float64) float64 {
	return 1200 * math.Log2(r)
}

// CentsToRatio converts cents to a frequency ratio, 2^(c/1200).
func CentsToRatio(c float64) float64 {
	return math.Pow(2, c/1200)
}
