// Command fretinfo lists simple rational approximations of the frets of an
// equal-tempered octave.
//
// Usage:
//
//	fretinfo [flags] [divisions]
//
// Without arguments it uses the common 12-division octave.
//
// Examples:
//
//	fretinfo
//	fretinfo 19
//	fretinfo -names
//	fretinfo -terms 40 -term-cap 500 31
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-tuning/tuning/cfrac"
	"github.com/cwbudde/algo-tuning/tuning/edo"
)

const defaultDivisions = 12

func main() {
	maxTerms := flag.Int("terms", 0, "maximum number of continued-fraction terms (0 = default)")
	termCap := flag.Int("term-cap", 0, "largest continued-fraction term before truncation (0 = default)")
	names := flag.Bool("names", false, "append 12-EDO note names (12 divisions only)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fretinfo [flags] [divisions]\n\n")
		fmt.Fprintf(os.Stderr, "Lists just intervals matching each fret of an equal-tempered octave.\n")
		fmt.Fprintf(os.Stderr, "Each fret prints the simple ratios within 30 cents of its pitch,\n")
		fmt.Fprintf(os.Stderr, "with the signed cents deviation in parentheses.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fretinfo\n")
		fmt.Fprintf(os.Stderr, "  fretinfo 19\n")
		fmt.Fprintf(os.Stderr, "  fretinfo -names\n")
	}
	flag.Parse()

	divisions := defaultDivisions
	if flag.NArg() > 0 {
		d, err := strconv.Atoi(flag.Arg(0))
		if err != nil || d < 1 {
			fmt.Fprintf(os.Stderr, "error: divisions must be a positive integer: %q\n", flag.Arg(0))
			os.Exit(1)
		}
		divisions = d
	}

	if *names && divisions != defaultDivisions {
		fmt.Fprintf(os.Stderr, "warning: -names only applies to 12 divisions, ignoring\n")
		*names = false
	}

	var opts []cfrac.Option
	if *maxTerms > 0 {
		opts = append(opts, cfrac.WithMaxTerms(*maxTerms))
	}
	if *termCap > 0 {
		opts = append(opts, cfrac.WithTermCap(*termCap))
	}

	if err := run(os.Stdout, divisions, *names, opts...); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run prints one line per fret, fret 0 through divisions inclusive.
func run(w io.Writer, divisions int, names bool, opts ...cfrac.Option) error {
	scale, err := edo.New(divisions)
	if err != nil {
		return err
	}

	for fret := 0; fret <= divisions; fret++ {
		pitch := scale.StepRatio(fret)

		apps, err := cfrac.Analyze(pitch, opts...)
		if err != nil {
			return fmt.Errorf("fret %d: %w", fret, err)
		}

		formatted := make([]string, len(apps))
		for i, a := range apps {
			formatted[i] = a.String()
		}

		line := fmt.Sprintf("fret:%d [%s]", fret, strings.Join(formatted, ", "))
		if names {
			line += " " + edo.NoteName(fret)
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("fret %d: write output: %w", fret, err)
		}
	}

	return nil
}
