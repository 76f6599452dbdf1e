package vecadd

const (
	// vectorBits is the fixed vector register width the Vectorized
	// variant models.
	vectorBits = 128

	// Lanes is the number of float32 elements processed per vector
	// operation: 128 bits / 32 bits per element.
	Lanes = vectorBits / 32
)

// Scalar performs element-wise addition: r[i] = a[i] + b[i] for every
// index. Slices must have equal length. Panics if lengths differ.
// Pure with respect to a and b.
func Scalar(r, a, b []float32) {
	checkLen(r, a, b)
	for i := range r {
		r[i] = a[i] + b[i]
	}
}

// Coverage reports the number of leading elements a variant writes
// for an input length n.
type Coverage func(n int) int

// FullCoverage covers every element.
func FullCoverage(n int) int { return n }

// LaneCoverage covers the largest prefix whose length is a multiple
// of Lanes.
func LaneCoverage(n int) int { return (n / Lanes) * Lanes }

// Variant is one selectable compute kernel.
type Variant struct {
	// Name identifies the variant ("scalar", "vector", "vek").
	Name string

	// Compute writes r[i] = a[i] + b[i] for i in [0, Coverage(len(r))).
	Compute func(r, a, b []float32)

	// Coverage reports how many leading elements Compute writes.
	Coverage Coverage
}

// Variants returns all kernel variants in presentation order.
func Variants() []Variant {
	return []Variant{
		{Name: "scalar", Compute: Scalar, Coverage: FullCoverage},
		{Name: "vector", Compute: Vectorized, Coverage: LaneCoverage},
		{Name: "vek", Compute: Library, Coverage: FullCoverage},
	}
}

// Lookup returns the variant with the given name.
func Lookup(name string) (Variant, bool) {
	for _, v := range Variants() {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// addBlocks adds Lanes-wide blocks: r[i] = a[i] + b[i] for i in
// [0, m). m must be a multiple of Lanes and not exceed the slice
// lengths. This is the pure Go rendition of the vector loop and the
// fallback for the assembly backend.
func addBlocks(r, a, b []float32, m int) {
	for i := 0; i < m; i += Lanes {
		r[i+0] = a[i+0] + b[i+0]
		r[i+1] = a[i+1] + b[i+1]
		r[i+2] = a[i+2] + b[i+2]
		r[i+3] = a[i+3] + b[i+3]
	}
}

func checkLen(r, a, b []float32) {
	if len(a) != len(b) || len(r) != len(a) {
		panic("vecadd: slice length mismatch")
	}
}
