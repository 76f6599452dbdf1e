//go:build purego || !amd64

package vecadd

// Vectorized performs element-wise addition over the largest prefix
// whose length is a multiple of Lanes, using 4-lane blocked adds.
// Elements past that prefix are not written. Slices must have equal
// length. Panics if lengths differ.
// This is the pure Go rendition of the vector loop; coverage is
// identical to the assembly backend.
func Vectorized(r, a, b []float32) {
	checkLen(r, a, b)
	addBlocks(r, a, b, LaneCoverage(len(r)))
}
