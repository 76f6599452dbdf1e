//go:build !purego && amd64

package vecadd

import "github.com/cwbudde/algo-bench/internal/cpu"

// Vectorized performs element-wise addition over the largest prefix
// whose length is a multiple of Lanes, using 4-lane SSE adds with
// aligned loads and stores. Elements past that prefix are not
// written. Slices must have equal length. Panics if lengths differ.
//
// Buffer base addresses must be at least 16-byte aligned; this is
// guaranteed by construction for buffers from internal/alloc.
func Vectorized(r, a, b []float32) {
	checkLen(r, a, b)
	m := LaneCoverage(len(r))
	if m == 0 {
		return
	}
	if cpu.HasSSE2() {
		addBlockSSE(r[:m], a[:m], b[:m])
		return
	}
	addBlocks(r, a, b, m)
}

// Assembly function declaration (implemented in vector_amd64.s).
// len(dst) must be a positive multiple of Lanes.

//go:noescape
func addBlockSSE(dst, a, b []float32)
