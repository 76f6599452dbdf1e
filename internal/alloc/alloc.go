// Package alloc provides aligned float32 buffer allocation for
// vector kernels.
//
// Aligned loads and stores require the buffer base address to sit on
// a vector-width boundary; violating that on the assembly path is
// undefined behavior, not merely slow. Go's allocator only guarantees
// natural alignment, so buffers are over-allocated and re-sliced to
// the requested boundary.
package alloc

import (
	"errors"
	"unsafe"
)

// MinAlign is the minimum accepted alignment in bytes. 32 bytes
// satisfies both 128-bit and 256-bit aligned vector access.
const MinAlign = 32

var (
	ErrInvalidAlignment = errors.New("alloc: alignment must be a power of two and at least 32")
	ErrNegativeCount    = errors.New("alloc: element count must be non-negative")
)

// Float32 allocates a slice of count float32 values whose base
// address is a multiple of align. align must be a power of two and at
// least MinAlign. A count of zero returns an empty slice and no
// error. An unsatisfiable allocation panics inside the Go runtime,
// which is fatal by definition; no partial buffer is ever returned.
func Float32(count, align int) ([]float32, error) {
	if align < MinAlign || align&(align-1) != 0 {
		return nil, ErrInvalidAlignment
	}
	if count < 0 {
		return nil, ErrNegativeCount
	}
	if count == 0 {
		return []float32{}, nil
	}

	size := count * 4
	raw := make([]byte, size+align-1)

	addr := uintptr(unsafe.Pointer(&raw[0]))
	offset := 0
	if mod := addr & uintptr(align-1); mod != 0 {
		offset = align - int(mod)
	}

	// The returned slice shares the backing array with raw, keeping
	// the whole allocation live for the buffer's lifetime.
	return unsafe.Slice((*float32)(unsafe.Pointer(&raw[offset])), count), nil
}

// IsAligned reports whether the base address of s is a multiple of
// align. An empty slice has no base address and is considered
// aligned.
func IsAligned(s []float32, align int) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))&uintptr(align-1) == 0
}
