// Package bench drives one-shot add-kernel benchmark runs.
//
// A run allocates three independent 32-byte-aligned float32 buffers
// (two inputs, one result), fills the inputs deterministically from
// the element index, invokes exactly one kernel variant, and reports
// the wall-clock duration of the compute step alone together with
// the result buffer. Allocation and input generation are excluded
// from the measurement.
//
// Every failure is fatal to the run: errors propagate immediately
// and no partial result is returned. There is no retry, recovery, or
// degraded mode; the harness is a one-shot measurement tool.
package bench
