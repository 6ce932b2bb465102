//go:build !ggmath_overflow_checks

package ggmath

// overflowChecks is false: integer operators wrap like Go's own.
// Build with -tags ggmath_overflow_checks to make overflow panic.
const overflowChecks = false
