package cfrac

import (
	"fmt"
	"math/big"
)

const (
	// Largest numerator and denominator an approximation may carry.
	sizeBound = 1024

	// Squared cents threshold: anything within 30 cents is kept.
	maxCentsSquared = 30 * 30
)

// Rational is an exact ratio in lowest terms.
type Rational struct {
	Num uint64
	Den uint64
}

// String formats the ratio as "num/den".
func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Float returns the ratio as a float64.
func (r Rational) Float() float64 {
	return float64(r.Num) / float64(r.Den)
}

// Approximation is a simple rational close to some target value, together
// with its signed deviation in cents. Positive cents means the rational
// sits below the target pitch.
type Approximation struct {
	Ratio Rational
	Cents int
}

// String formats the approximation as "num/den(cents)", e.g. "3/2(-1)".
func (a Approximation) String() string {
	return fmt.Sprintf("%s(%d)", a.Ratio, a.Cents)
}

// Approximate folds every prefix of the term sequence into a convergent
// and keeps those with numerator and denominator at most 1024 and within
// 30 cents of value.
//
// The result is ordered by prefix length, shortest (simplest ratio) first
// and longest (most accurate) last. Terms must come from Expand on the
// same value for the cents errors to be meaningful; an empty sequence
// yields an empty result.
func Approximate(value float64, terms []uint64) ([]Approximation, error) {
	if err := validateValue(value); err != nil {
		return nil, err
	}

	if len(terms) == 0 {
		return nil, nil
	}

	logValue := mathLog2(value)
	bound := big.NewInt(sizeBound)

	var out []Approximation
	for length := len(terms); length >= 1; length-- {
		ap, ok := foldPrefix(terms[:length], logValue, bound)
		if ok {
			out = append(out, ap)
		}
	}

	reverseApproximations(out)

	return out, nil
}

// Analyze is the one-shot expansion and approximation search for a value.
func Analyze(value float64, opts ...Option) ([]Approximation, error) {
	terms, err := Expand(value, opts...)
	if err != nil {
		return nil, err
	}

	return Approximate(value, terms)
}

// foldPrefix folds a term prefix from the innermost term outward with the
// invert-and-add recurrence. The accumulators are exact big integers: the
// pair can exceed 64 bits long before the size filter sees it, since the
// filter applies only to the completed fold.
func foldPrefix(prefix []uint64, logValue float64, bound *big.Int) (Approximation, bool) {
	num := big.NewInt(0)
	den := big.NewInt(1)
	scratch := new(big.Int)

	for i := len(prefix) - 1; i >= 0; i-- {
		// (num, den) <- (den, num + t*den)
		scratch.SetUint64(prefix[i])
		scratch.Mul(scratch, den)
		scratch.Add(scratch, num)
		num, den, scratch = den, scratch, num
	}

	if num.Sign() == 0 || den.Sign() == 0 || num.Cmp(bound) > 0 || den.Cmp(bound) > 0 {
		return Approximation{}, false
	}

	// The first folded term is the innermost reciprocal, so the candidate
	// value is den/num rather than num/den.
	rat := new(big.Rat).SetFrac(den, num)
	candidate, _ := rat.Float64()

	// Truncation toward zero, not rounding: a tempered fifth is 1.955
	// cents below 3/2 and reports as -1.
	cents := -int(1200 * (mathLog2(candidate) - logValue))
	if cents*cents >= maxCentsSquared {
		return Approximation{}, false
	}

	return Approximation{
		Ratio: Rational{Num: rat.Num().Uint64(), Den: rat.Denom().Uint64()},
		Cents: cents,
	}, true
}

func reverseApproximations(list []Approximation) {
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
}
