package vecadd

import (
	"testing"

	"github.com/cwbudde/algo-bench/internal/alloc"
)

var benchSizes = []struct {
	name string
	size int
}{
	{"64", 64},
	{"1K", 1024},
	{"64K", 65536},
	{"1M", 1 << 20},
}

func benchBuffers(b *testing.B, n int) (r, x, y []float32) {
	b.Helper()
	var err error
	if r, err = alloc.Float32(n, alloc.MinAlign); err != nil {
		b.Fatal(err)
	}
	if x, err = alloc.Float32(n, alloc.MinAlign); err != nil {
		b.Fatal(err)
	}
	if y, err = alloc.Float32(n, alloc.MinAlign); err != nil {
		b.Fatal(err)
	}
	fillIndex(x, y)
	return r, x, y
}

func BenchmarkScalar(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			r, x, y := benchBuffers(b, tc.size)

			b.SetBytes(int64(tc.size * 4 * 3))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Scalar(r, x, y)
			}
		})
	}
}

func BenchmarkVectorized(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			r, x, y := benchBuffers(b, tc.size)

			b.SetBytes(int64(tc.size * 4 * 3))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Vectorized(r, x, y)
			}
		})
	}
}

func BenchmarkLibrary(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			r, x, y := benchBuffers(b, tc.size)

			b.SetBytes(int64(tc.size * 4 * 3))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Library(r, x, y)
			}
		})
	}
}
