//go:build ggmath_overflow_checks

package ggmath

// overflowChecks makes Add, Sub, Mul, Neg and their scalar forms panic on
// integer overflow instead of wrapping.
const overflowChecks = true
