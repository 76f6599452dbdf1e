// Package cpu provides CPU feature detection for kernel dispatch.
//
// The vectorized add kernel has a fixed 4-lane width; detection never
// changes the lane width, it only decides whether the assembly
// backend or the pure Go block fallback executes it. Detection runs
// lazily on first use and the result is cached.
package cpu

import "sync"

// Features describes the CPU capabilities the kernels dispatch on.
type Features struct {
	HasSSE2 bool // x86-64 SSE2 (baseline for amd64)
	HasNEON bool // ARM Advanced SIMD

	// ForceGeneric disables all assembly backends (for testing).
	ForceGeneric bool

	// Architecture is runtime.GOARCH (e.g. "amd64", "arm64").
	Architecture string
}

var (
	detected    Features
	detectOnce  sync.Once
	detectMutex sync.Mutex
	forced      *Features
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features of the current system.
// Detection is performed once and cached; the function is safe for
// concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	f := forced
	forcedMutex.RUnlock()

	if f != nil {
		return *f
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})
	features := detected
	detectMutex.Unlock()

	return features
}

// HasSSE2 reports whether the CPU supports SSE2 instructions and the
// assembly backend is not disabled.
func HasSSE2() bool {
	f := DetectFeatures()
	return f.HasSSE2 && !f.ForceGeneric
}

// HasNEON reports whether the CPU supports ARM NEON instructions and
// the assembly backend is not disabled.
func HasNEON() bool {
	f := DetectFeatures()
	return f.HasNEON && !f.ForceGeneric
}

// SetForcedFeatures overrides hardware detection with the given
// features. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	override := f
	forced = &override
}

// ResetDetection clears any forced features and the detection cache.
// Intended for tests.
func ResetDetection() {
	forcedMutex.Lock()
	forced = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detected = Features{}
	detectMutex.Unlock()
}
