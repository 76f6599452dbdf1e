package bench

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-bench/internal/alloc"
	"github.com/cwbudde/algo-bench/internal/testutil"
	"github.com/cwbudde/algo-bench/vecadd"
)

func TestFill(t *testing.T) {
	a := make([]float32, 10)
	b := make([]float32, 10)
	Fill(a, b)

	for i := range a {
		if a[i] != float32(i) {
			t.Errorf("a[%d] = %v, want %v", i, a[i], float32(i))
		}
		if b[i] != float32(i)*2 {
			t.Errorf("b[%d] = %v, want %v", i, b[i], float32(i)*2)
		}
	}
}

func TestRunScalar(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 8, 10, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			res, err := RunScalar(n)
			if err != nil {
				t.Fatalf("RunScalar(%d): %v", n, err)
			}
			if res.N != n || len(res.Output) != n {
				t.Fatalf("N = %d, len(Output) = %d, want %d", res.N, len(res.Output), n)
			}
			if res.Covered != n {
				t.Fatalf("Covered = %d, want full coverage %d", res.Covered, n)
			}
			if res.Elapsed < 0 {
				t.Fatalf("Elapsed = %v, want >= 0", res.Elapsed)
			}
			testutil.RequireAligned(t, res.Output, alloc.MinAlign)

			for i := 0; i < n; i++ {
				if want := float32(i) + float32(i)*2; res.Output[i] != want {
					t.Fatalf("Output[%d] = %v, want %v", i, res.Output[i], want)
				}
			}
		})
	}
}

func TestRunVectorized(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 8, 10, 100, 101} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			res, err := RunVectorized(n)
			if err != nil {
				t.Fatalf("RunVectorized(%d): %v", n, err)
			}
			if want := n / vecadd.Lanes * vecadd.Lanes; res.Covered != want {
				t.Fatalf("Covered = %d, want %d", res.Covered, want)
			}
			if res.Elapsed < 0 {
				t.Fatalf("Elapsed = %v, want >= 0", res.Elapsed)
			}
			testutil.RequireAligned(t, res.Output, alloc.MinAlign)

			for i := 0; i < res.Covered; i++ {
				if want := float32(i) + float32(i)*2; res.Output[i] != want {
					t.Fatalf("Output[%d] = %v, want %v", i, res.Output[i], want)
				}
			}
		})
	}
}

func TestRunEndToEndValues(t *testing.T) {
	// n = 8 is a multiple of the lane width, so both kernels cover
	// all elements and agree on every value.
	want := []float32{0, 3, 6, 9, 12, 15, 18, 21}

	scalar, err := RunScalar(len(want))
	if err != nil {
		t.Fatal(err)
	}
	vector, err := RunVectorized(len(want))
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceEqual(t, scalar.Output, want)
	testutil.RequireSliceEqual(t, vector.Output, want)
}

func TestRunTailBehavior(t *testing.T) {
	// n = 10: the scalar kernel writes the last two elements, the
	// vectorized kernel covers only the first 8.
	scalar, err := RunScalar(10)
	if err != nil {
		t.Fatal(err)
	}
	if scalar.Output[8] != 24 || scalar.Output[9] != 27 {
		t.Errorf("scalar tail = %v, %v, want 24, 27", scalar.Output[8], scalar.Output[9])
	}

	vector, err := RunVectorized(10)
	if err != nil {
		t.Fatal(err)
	}
	if vector.Covered != 8 {
		t.Errorf("vectorized Covered = %d, want 8", vector.Covered)
	}
}

func TestRunAllVariants(t *testing.T) {
	for _, v := range vecadd.Variants() {
		t.Run(v.Name, func(t *testing.T) {
			res, err := Run(v, 64)
			if err != nil {
				t.Fatal(err)
			}
			if err := Verify(res); err != nil {
				t.Errorf("Verify: %v", err)
			}
		})
	}
}

func TestVerifyRejectsCorruption(t *testing.T) {
	res, err := RunScalar(16)
	if err != nil {
		t.Fatal(err)
	}
	res.Output[7] += 1
	if err := Verify(res); err == nil {
		t.Error("Verify accepted a corrupted result")
	}
}

func TestVerifyIgnoresTail(t *testing.T) {
	res, err := RunVectorized(10)
	if err != nil {
		t.Fatal(err)
	}
	// Indices 8 and 9 are outside the covered prefix; their content
	// is undefined and must not fail verification.
	res.Output[8] = -12345
	res.Output[9] = -12345
	if err := Verify(res); err != nil {
		t.Errorf("Verify inspected uncovered tail: %v", err)
	}
}

func TestRunNegativeCount(t *testing.T) {
	if _, err := RunScalar(-1); !errors.Is(err, alloc.ErrNegativeCount) {
		t.Errorf("RunScalar(-1): err = %v, want ErrNegativeCount", err)
	}
	if _, err := RunVectorized(-1); !errors.Is(err, alloc.ErrNegativeCount) {
		t.Errorf("RunVectorized(-1): err = %v, want ErrNegativeCount", err)
	}
}

func TestRepeat(t *testing.T) {
	v, ok := vecadd.Lookup("vector")
	if !ok {
		t.Fatal("vector variant missing")
	}

	stats, err := Repeat(v, 1024, 5)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Runs != 5 {
		t.Errorf("Runs = %d, want 5", stats.Runs)
	}
	if stats.Min < 0 {
		t.Errorf("Min = %v, want >= 0", stats.Min)
	}
	if stats.Min > stats.Mean || stats.Mean > stats.Max {
		t.Errorf("want Min <= Mean <= Max, got %v, %v, %v", stats.Min, stats.Mean, stats.Max)
	}
}

func TestRepeatInvalidCount(t *testing.T) {
	v, _ := vecadd.Lookup("scalar")
	for _, times := range []int{0, -1} {
		if _, err := Repeat(v, 8, times); err == nil {
			t.Errorf("Repeat(times=%d) succeeded, want error", times)
		}
	}
}
