package cfrac

import (
	"math"
	"reflect"
	"testing"
)

func TestApproximatePerfectFifth(t *testing.T) {
	apps, err := Analyze(1.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Approximation{{Ratio: Rational{3, 2}, Cents: 0}}
	if !reflect.DeepEqual(apps, want) {
		t.Fatalf("approximations mismatch: got %v, want %v", apps, want)
	}
	if apps[0].String() != "3/2(0)" {
		t.Fatalf("formatting mismatch: got %q", apps[0].String())
	}
}

func TestApproximateTemperedFifth(t *testing.T) {
	apps, err := Analyze(math.Pow(2, 7.0/12.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The tempered fifth is 1.955 cents flat of 3/2; truncation toward
	// zero reports that as -1.
	want := []Approximation{
		{Ratio: Rational{3, 2}, Cents: -1},
		{Ratio: Rational{442, 295}, Cents: 0},
	}
	if !reflect.DeepEqual(apps, want) {
		t.Fatalf("approximations mismatch: got %v, want %v", apps, want)
	}
}

func TestApproximateSemitone(t *testing.T) {
	apps, err := Analyze(math.Pow(2, 1.0/12.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No simple rational sits near one tempered semitone; everything that
	// survives the filters is already fairly complex.
	want := []Approximation{
		{Ratio: Rational{17, 16}, Cents: -4},
		{Ratio: Rational{18, 17}, Cents: 1},
		{Ratio: Rational{89, 84}, Cents: 0},
		{Ratio: Rational{196, 185}, Cents: 0},
	}
	if !reflect.DeepEqual(apps, want) {
		t.Fatalf("approximations mismatch: got %v, want %v", apps, want)
	}
}

func TestApproximateMajorThird(t *testing.T) {
	apps, err := Analyze(math.Pow(2, 4.0/12.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Approximation{
		{Ratio: Rational{5, 4}, Cents: 13},
		{Ratio: Rational{29, 23}, Cents: -1},
		{Ratio: Rational{34, 27}, Cents: 0},
		{Ratio: Rational{63, 50}, Cents: 0},
		{Ratio: Rational{286, 227}, Cents: 0},
		{Ratio: Rational{349, 277}, Cents: 0},
		{Ratio: Rational{635, 504}, Cents: 0},
	}
	if !reflect.DeepEqual(apps, want) {
		t.Fatalf("approximations mismatch: got %v, want %v", apps, want)
	}
}

func TestApproximateFilters(t *testing.T) {
	for fret := 0; fret <= 12; fret++ {
		value := math.Pow(2, float64(fret)/12)

		apps, err := Analyze(value)
		if err != nil {
			t.Fatalf("fret %d: unexpected error: %v", fret, err)
		}

		for _, a := range apps {
			if a.Ratio.Num > sizeBound || a.Ratio.Den > sizeBound {
				t.Fatalf("fret %d: ratio %v exceeds size bound", fret, a.Ratio)
			}
			if a.Cents <= -30 || a.Cents >= 30 {
				t.Fatalf("fret %d: cents error out of range: %d", fret, a.Cents)
			}
		}
	}
}

func TestApproximateDeterministic(t *testing.T) {
	value := math.Pow(2, 7.0/12.0)

	first, err := Analyze(value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Analyze(value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated analysis diverged: %v vs %v", first, second)
	}
}

func TestApproximateEmptyTerms(t *testing.T) {
	apps, err := Approximate(1.5, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apps) != 0 {
		t.Fatalf("expected empty result, got %v", apps)
	}
}

func TestApproximateInvalidValue(t *testing.T) {
	if _, err := Approximate(0, []uint64{1}); err == nil {
		t.Fatalf("expected error for zero value")
	}
	if _, err := Approximate(math.NaN(), []uint64{1}); err == nil {
		t.Fatalf("expected error for NaN value")
	}
}

func TestApproximateDegenerateTerms(t *testing.T) {
	// A leading zero term folds to a zero denominator; the candidate is
	// skipped rather than crashing the search.
	apps, err := Approximate(1.5, []uint64{0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apps) != 0 {
		t.Fatalf("expected empty result, got %v", apps)
	}
}
