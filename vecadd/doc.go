// Package vecadd provides interchangeable element-wise float32
// addition kernels for benchmarking.
//
// Three variants share the signature func(r, a, b []float32):
//
//   - Scalar: per-element loop, writes every index in [0, len).
//   - Vectorized: fixed 4-lane (128-bit) blocked adds over the
//     largest prefix whose length is a multiple of the lane width.
//     Tail elements are deliberately not written; see below.
//   - Library: full-coverage add backed by github.com/viterin/vek.
//
// The caller selects the variant; there is no automatic selection
// between scalar and vectorized paths, and the lane width is a
// compile-time constant. The Vectorized variant dispatches internally
// between an SSE assembly backend (amd64) and a pure Go block
// fallback with identical coverage:
//
//   - Default (amd64): aligned SSE loads/stores, SSE2-gated
//   - purego tag: pure Go block loop
//   - Other architectures: pure Go block loop
//
// # Tail handling
//
// Vectorized covers only floor(n/Lanes)*Lanes elements. Indices at
// and beyond that point keep whatever the result buffer held before
// the call. This is a deliberate scope restriction of the vectorized
// path: callers needing full coverage must pad n to a multiple of
// Lanes or use another variant. Coverage reports the written prefix.
//
// # Alignment
//
// The assembly backend uses aligned loads and stores. Buffer base
// addresses must be at least 16-byte aligned (32 recommended) or
// behavior is undefined; the precondition is not checked at runtime.
// Buffers obtained from internal/alloc satisfy it by construction.
package vecadd
