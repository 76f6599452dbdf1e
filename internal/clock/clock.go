// Package clock provides wall-clock timestamps as fractional seconds
// for measuring short compute intervals.
//
// Timestamps are taken relative to a process-local base captured at
// init, so differences between two calls use Go's monotonic clock
// reading and are unaffected by system clock adjustments. Absolute
// values are meaningless outside the process.
package clock

import "time"

// base anchors all timestamps; Now measures elapsed time from here.
var base = time.Now()

// Now returns the current time as fractional seconds since the
// process-local base. Resolution is that of the platform monotonic
// clock (sub-microsecond on common platforms).
func Now() float64 {
	return time.Since(base).Seconds()
}
