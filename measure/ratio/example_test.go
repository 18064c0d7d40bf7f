package ratio_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tuning/measure/ratio"
	"github.com/cwbudde/algo-tuning/tuning/cfrac"
)

func ExampleInterval() {
	sampleRate := 48000.0
	fftSize := 4096
	binHz := sampleRate / float64(fftSize)

	tone := func(freq float64) []float64 {
		out := make([]float64, fftSize)
		step := 2 * math.Pi * freq / sampleRate
		for i := range out {
			out[i] = math.Sin(step * float64(i))
		}
		return out
	}

	low := tone(64 * binHz)
	high := tone(96 * binHz)

	interval, _ := ratio.Interval(low, high, ratio.Config{
		SampleRate: sampleRate,
		FFTSize:    fftSize,
	})

	apps, _ := cfrac.Analyze(interval)
	fmt.Println(apps[0].Ratio)
	// Output:
	// 3/2
}
