//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on amd64 systems.
//
// SSE2 is part of the x86-64 baseline, so HasSSE2 should always be
// true here; it is read from CPUID anyway rather than assumed.
func detectFeaturesImpl() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		Architecture: runtime.GOARCH,
	}
}
