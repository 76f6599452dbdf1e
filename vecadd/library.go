package vecadd

import (
	"fmt"
	"strings"

	"github.com/viterin/vek/vek32"
)

// Library performs element-wise addition via the viterin/vek SIMD
// library: r[i] = a[i] + b[i] for every index. vek handles tail
// elements internally, so coverage is full. Slices must have equal
// length. Panics if lengths differ.
//
// This variant exists as a comparison point against the hand-rolled
// kernels; it carries no alignment precondition.
func Library(r, a, b []float32) {
	checkLen(r, a, b)
	if len(r) == 0 {
		return
	}
	copy(r, a)
	vek32.Add_Inplace(r, b)
}

// LibraryInfo reports which acceleration path vek selected on this
// CPU (for diagnostic output).
func LibraryInfo() string {
	info := vek32.Info()
	return fmt.Sprintf("acceleration %v, features [%s]",
		info.Acceleration, strings.Join(info.CPUFeatures, " "))
}
