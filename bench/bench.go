package bench

import (
	"fmt"

	"github.com/cwbudde/algo-bench/internal/alloc"
	"github.com/cwbudde/algo-bench/internal/clock"
	"github.com/cwbudde/algo-bench/vecadd"
)

// Result is the outcome of a single benchmark run.
type Result struct {
	// N is the element count of the run.
	N int

	// Covered is the number of leading result elements the kernel
	// wrote. Elements in [Covered, N) hold undefined content and
	// must not be interpreted.
	Covered int

	// Elapsed is the wall-clock duration of the compute step in
	// seconds, excluding allocation and input generation.
	Elapsed float64

	// Output is the 32-byte-aligned result buffer.
	Output []float32
}

// Fill populates the input buffers deterministically from the element
// index: a[i] = i, b[i] = 2i. Results are therefore reproducible and
// verifiable (r[i] = 3i on covered elements).
func Fill(a, b []float32) {
	for i := range a {
		a[i] = float32(i)
		b[i] = float32(i) * 2
	}
}

// Run executes one benchmark run of the given kernel variant over n
// elements. The three buffers are exclusively owned by the run and
// released with it; a failed allocation aborts the run with a wrapped
// allocator error and no partial state.
func Run(v vecadd.Variant, n int) (*Result, error) {
	a, err := alloc.Float32(n, alloc.MinAlign)
	if err != nil {
		return nil, fmt.Errorf("bench: input buffer a: %w", err)
	}
	b, err := alloc.Float32(n, alloc.MinAlign)
	if err != nil {
		return nil, fmt.Errorf("bench: input buffer b: %w", err)
	}
	r, err := alloc.Float32(n, alloc.MinAlign)
	if err != nil {
		return nil, fmt.Errorf("bench: result buffer: %w", err)
	}

	Fill(a, b)

	start := clock.Now()
	v.Compute(r, a, b)
	elapsed := clock.Now() - start

	return &Result{
		N:       n,
		Covered: v.Coverage(n),
		Elapsed: elapsed,
		Output:  r,
	}, nil
}

// RunScalar runs the scalar kernel over n elements.
func RunScalar(n int) (*Result, error) {
	return Run(mustVariant("scalar"), n)
}

// RunVectorized runs the 4-lane vectorized kernel over n elements.
// The result covers only the largest prefix whose length is a
// multiple of vecadd.Lanes; see Result.Covered.
func RunVectorized(n int) (*Result, error) {
	return Run(mustVariant("vector"), n)
}

func mustVariant(name string) vecadd.Variant {
	v, ok := vecadd.Lookup(name)
	if !ok {
		panic("bench: unknown kernel variant " + name)
	}
	return v
}
