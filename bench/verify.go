package bench

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Verify checks the covered prefix of a run's result against an
// independent float64 reference. The inputs are reconstructed from
// the deterministic fill pattern, widened to float64, and summed with
// vecmath; the widened sum of two float32 values is exact, and
// rounding it back to float32 equals float32 addition, so the
// comparison is exact equality. Elements past Covered are not
// inspected.
func Verify(res *Result) error {
	m := res.Covered
	if m > len(res.Output) {
		return fmt.Errorf("bench: verify: covered %d exceeds output length %d", m, len(res.Output))
	}

	a64 := make([]float64, m)
	b64 := make([]float64, m)
	want := make([]float64, m)
	for i := range a64 {
		a64[i] = float64(float32(i))
		b64[i] = float64(float32(i) * 2)
	}
	vecmath.AddBlock(want, a64, b64)

	for i := 0; i < m; i++ {
		if got := res.Output[i]; got != float32(want[i]) {
			return fmt.Errorf("bench: verify: index %d: got %v, want %v", i, got, float32(want[i]))
		}
	}
	return nil
}
