// Copyright 2025 go-ggmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ggmath

import (
	"fmt"
	"unsafe"
)

// This file provides checked, wrapping and saturated integer arithmetic.
// Checked operations report overflow instead of producing a value, wrapping
// operations always wrap (even under ggmath_overflow_checks) and saturated
// operations clamp results to the type's valid range.

// CheckedAdd returns a + b, or false if any lane overflows.
func CheckedAdd[T Integers, S Storage[T]](a, b Vector[T, S]) (Vector[T, S], bool) {
	var r Vector[T, S]
	out, x, y := r.Lanes(), a.Lanes(), b.Lanes()
	for i := range out {
		s := x[i] + y[i]
		if addOverflows(x[i], y[i], s) {
			return Vector[T, S]{}, false
		}
		out[i] = s
	}
	return r, true
}

// CheckedSub returns a - b, or false if any lane overflows.
func CheckedSub[T Integers, S Storage[T]](a, b Vector[T, S]) (Vector[T, S], bool) {
	var r Vector[T, S]
	out, x, y := r.Lanes(), a.Lanes(), b.Lanes()
	for i := range out {
		d := x[i] - y[i]
		if subOverflows(x[i], y[i], d) {
			return Vector[T, S]{}, false
		}
		out[i] = d
	}
	return r, true
}

// CheckedMul returns a * b, or false if any lane overflows.
func CheckedMul[T Integers, S Storage[T]](a, b Vector[T, S]) (Vector[T, S], bool) {
	var r Vector[T, S]
	out, x, y := r.Lanes(), a.Lanes(), b.Lanes()
	for i := range out {
		p := x[i] * y[i]
		if mulOverflows(x[i], y[i], p) {
			return Vector[T, S]{}, false
		}
		out[i] = p
	}
	return r, true
}

// CheckedDiv returns a / b, or false if any divisor is zero or the quotient
// overflows (MIN / -1).
func CheckedDiv[T Integers, S Storage[T]](a, b Vector[T, S]) (Vector[T, S], bool) {
	var r Vector[T, S]
	out, x, y := r.Lanes(), a.Lanes(), b.Lanes()
	for i := range out {
		if y[i] == 0 || divOverflows(x[i], y[i]) {
			return Vector[T, S]{}, false
		}
		out[i] = x[i] / y[i]
	}
	return r, true
}

// CheckedRem returns a % b, or false if any divisor is zero or the matching
// quotient would overflow (MIN % -1).
func CheckedRem[T Integers, S Storage[T]](a, b Vector[T, S]) (Vector[T, S], bool) {
	var r Vector[T, S]
	out, x, y := r.Lanes(), a.Lanes(), b.Lanes()
	for i := range out {
		if y[i] == 0 || divOverflows(x[i], y[i]) {
			return Vector[T, S]{}, false
		}
		out[i] = x[i] % y[i]
	}
	return r, true
}

// CheckedNeg returns -v, or false if a lane has no negation: MIN for signed
// types, anything but zero for unsigned ones.
func CheckedNeg[T Integers, S Storage[T]](v Vector[T, S]) (Vector[T, S], bool) {
	var r Vector[T, S]
	out, x := r.Lanes(), v.Lanes()
	for i := range out {
		if negOverflows(x[i]) || (!isSigned[T]() && x[i] != 0) {
			return Vector[T, S]{}, false
		}
		out[i] = -x[i]
	}
	return r, true
}

// WrappingAdd returns a + b with two's-complement wrap-around.
func WrappingAdd[T Integers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	return Map2(a, b, func(x, y T) T { return x + y })
}

// WrappingSub returns a - b with two's-complement wrap-around.
func WrappingSub[T Integers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	return Map2(a, b, func(x, y T) T { return x - y })
}

// WrappingMul returns a * b with two's-complement wrap-around.
func WrappingMul[T Integers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	return Map2(a, b, func(x, y T) T { return x * y })
}

// WrappingNeg returns -v with two's-complement wrap-around.
func WrappingNeg[T Integers, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return Map(v, func(x T) T { return -x })
}

// SaturatingAdd performs element-wise addition with saturation.
// For example, uint8: 250 + 10 = 255 (not 4).
func SaturatingAdd[T Integers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	return Map2(a, b, saturatingAdd[T])
}

// SaturatingSub performs element-wise subtraction with saturation.
// For example, uint8: 10 - 20 = 0 (not 246).
func SaturatingSub[T Integers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	return Map2(a, b, saturatingSub[T])
}

// SaturatingMul performs element-wise multiplication with saturation.
func SaturatingMul[T Integers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	return Map2(a, b, saturatingMul[T])
}

func saturatingAdd[T Integers](a, b T) T {
	s := a + b
	if !addOverflows(a, b, s) {
		return s
	}
	lo, hi := intBounds[T]()
	if isSigned[T]() && b < 0 {
		return lo
	}
	return hi
}

func saturatingSub[T Integers](a, b T) T {
	d := a - b
	if !subOverflows(a, b, d) {
		return d
	}
	lo, hi := intBounds[T]()
	if isSigned[T]() && b < 0 {
		return hi
	}
	return lo
}

func saturatingMul[T Integers](a, b T) T {
	p := a * b
	if !mulOverflows(a, b, p) {
		return p
	}
	lo, hi := intBounds[T]()
	if isSigned[T]() && (a < 0) != (b < 0) {
		return lo
	}
	return hi
}

// Helper functions shared with the operators in ops.go. They take Numbers
// so the overflow-checked operators can call them; callers rule out floats.

func isFloat[T Numbers]() bool {
	var one T = 1
	return one/2 != 0
}

func isSigned[T Numbers]() bool {
	var zero T
	return zero-1 < zero
}

// isMin reports whether x is the most negative value of a signed type.
func isMin[T Numbers](x T) bool {
	return x < 0 && -x == x
}

func intBounds[T Integers]() (lo, hi T) {
	var zero T
	if isSigned[T]() {
		lo = T(1) << (unsafe.Sizeof(zero)*8 - 1)
		return lo, lo - 1
	}
	return zero, ^zero
}

func addOverflows[T Numbers](x, y, sum T) bool {
	if isSigned[T]() {
		return (y > 0 && sum < x) || (y < 0 && sum > x)
	}
	return sum < x
}

func subOverflows[T Numbers](x, y, diff T) bool {
	if isSigned[T]() {
		return (y > 0 && diff > x) || (y < 0 && diff < x)
	}
	return x < y
}

func mulOverflows[T Numbers](x, y, prod T) bool {
	if x == 0 || y == 0 {
		return false
	}
	if isSigned[T]() {
		var zero T
		minusOne := zero - 1
		if (isMin(x) && y == minusOne) || (isMin(y) && x == minusOne) {
			return true
		}
	}
	return prod/y != x
}

func divOverflows[T Numbers](x, y T) bool {
	var zero T
	return isSigned[T]() && isMin(x) && y == zero-1
}

func negOverflows[T Numbers](x T) bool {
	return isSigned[T]() && isMin(x)
}

func overflowPanic(op string) {
	panic(fmt.Errorf("%w in %s", ErrOverflow, op))
}
