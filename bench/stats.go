package bench

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-bench/vecadd"
)

// ErrInvalidRepeat rejects non-positive repetition counts.
var ErrInvalidRepeat = errors.New("bench: repeat count must be positive")

// Stats aggregates the elapsed compute times of repeated runs.
type Stats struct {
	Runs int

	// Mean, Min and Max are in seconds.
	Mean float64
	Min  float64
	Max  float64
}

// Repeat executes times independent runs of the variant over n
// elements and aggregates their elapsed compute times. Each
// repetition is a full run with freshly allocated and filled buffers,
// so no state leaks between measurements. The first failing run
// aborts the whole repetition.
func Repeat(v vecadd.Variant, n, times int) (*Stats, error) {
	if times <= 0 {
		return nil, ErrInvalidRepeat
	}

	samples := make([]float64, times)
	for i := range samples {
		res, err := Run(v, n)
		if err != nil {
			return nil, err
		}
		samples[i] = res.Elapsed
	}

	// Elapsed times are non-negative, so MaxAbs is the maximum.
	// vecmath has no minimum reduction, so Min is a plain loop.
	stats := &Stats{
		Runs: times,
		Mean: vecmath.Sum(samples) / float64(times),
		Max:  vecmath.MaxAbs(samples),
		Min:  samples[0],
	}
	for _, s := range samples[1:] {
		if s < stats.Min {
			stats.Min = s
		}
	}
	return stats, nil
}
