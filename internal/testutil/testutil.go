// Package testutil provides shared assertion helpers for kernel and
// driver tests.
package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-bench/internal/alloc"
)

// RequireSliceEqual fails t if got and want differ in length or in
// any element. Kernel variants must agree bit-for-bit on covered
// elements, so comparison is exact, not tolerance-based.
func RequireSliceEqual(t *testing.T, got, want []float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float32) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireAligned fails t if the base address of s is not a multiple
// of align.
func RequireAligned(t *testing.T, s []float32, align int) {
	t.Helper()
	if !alloc.IsAligned(s, align) {
		t.Fatalf("buffer base not %d-byte aligned", align)
	}
}

// AlignedFloat32 allocates an aligned buffer via alloc.Float32 and
// fails t on error.
func AlignedFloat32(t *testing.T, n int) []float32 {
	t.Helper()
	s, err := alloc.Float32(n, alloc.MinAlign)
	if err != nil {
		t.Fatalf("alloc.Float32(%d, %d): %v", n, alloc.MinAlign, err)
	}
	return s
}
