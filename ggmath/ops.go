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

// This file provides the arithmetic operators. Each one first offers the
// operation to the four-lane kernel of T (binaryFast / unaryFast) and falls
// back to an element-wise loop calling the scalar operator. Both paths give
// the same value in every logical lane; integer overflow and division by
// zero behave exactly as the scalar operators do.

// Add performs element-wise addition.
func Add[T Numbers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	if !checkingOverflow[T]() {
		if r, ok := binaryFast(&a, &b, opAdd); ok {
			return r
		}
	}
	return addLoop(a, b)
}

func addLoop[T Numbers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	var r Vector[T, S]
	out, x, y := r.Lanes(), a.Lanes(), b.Lanes()
	for i := range out {
		out[i] = addLane(x[i], y[i])
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Numbers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	if !checkingOverflow[T]() {
		if r, ok := binaryFast(&a, &b, opSub); ok {
			return r
		}
	}
	return subLoop(a, b)
}

func subLoop[T Numbers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	var r Vector[T, S]
	out, x, y := r.Lanes(), a.Lanes(), b.Lanes()
	for i := range out {
		out[i] = subLane(x[i], y[i])
	}
	return r
}

// Mul performs element-wise multiplication.
func Mul[T Numbers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	if !checkingOverflow[T]() {
		if r, ok := binaryFast(&a, &b, opMul); ok {
			return r
		}
	}
	return mulLoop(a, b)
}

func mulLoop[T Numbers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	var r Vector[T, S]
	out, x, y := r.Lanes(), a.Lanes(), b.Lanes()
	for i := range out {
		out[i] = mulLane(x[i], y[i])
	}
	return r
}

// Div performs element-wise division.
// Integer division by zero panics, as it does for the scalar operator.
// MIN / -1 wraps to MIN, or panics under ggmath_overflow_checks.
func Div[T Numbers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	if !checkingOverflow[T]() {
		if r, ok := binaryFast(&a, &b, opDiv); ok {
			return r
		}
	}
	return divLoop(a, b)
}

func divLoop[T Numbers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	var r Vector[T, S]
	out, x, y := r.Lanes(), a.Lanes(), b.Lanes()
	for i := range out {
		if overflowChecks && !isFloat[T]() && divOverflows(x[i], y[i]) {
			overflowPanic("Div")
		}
		out[i] = x[i] / y[i]
	}
	return r
}

// Rem performs element-wise remainder. For integers it is Go's %, which
// panics on a zero divisor; for floats it is math.Mod. MIN % -1 is 0, or
// panics under ggmath_overflow_checks.
func Rem[T Numbers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	if !checkingOverflow[T]() {
		if r, ok := binaryFast(&a, &b, opRem); ok {
			return r
		}
	}
	return Map2(a, b, remLane[T])
}

// Neg negates each lane.
func Neg[T Signed, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	if !checkingOverflow[T]() {
		if r, ok := unaryFast(&v, opNeg); ok {
			return r
		}
	}
	return negLoop(v)
}

func negLoop[T Signed, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	var r Vector[T, S]
	out, x := r.Lanes(), v.Lanes()
	for i := range out {
		if overflowChecks && !isFloat[T]() && negOverflows(x[i]) {
			overflowPanic("Neg")
		}
		out[i] = -x[i]
	}
	return r
}

// AddScalar adds s to every lane of v.
func AddScalar[T Numbers, S Storage[T]](v Vector[T, S], s T) Vector[T, S] {
	return Add(v, splat[T, S](s))
}

// SubScalar subtracts s from every lane of v.
func SubScalar[T Numbers, S Storage[T]](v Vector[T, S], s T) Vector[T, S] {
	return Sub(v, splat[T, S](s))
}

// MulScalar multiplies every lane of v by s.
func MulScalar[T Numbers, S Storage[T]](v Vector[T, S], s T) Vector[T, S] {
	return Mul(v, splat[T, S](s))
}

// DivScalar divides every lane of v by s.
func DivScalar[T Numbers, S Storage[T]](v Vector[T, S], s T) Vector[T, S] {
	return Div(v, splat[T, S](s))
}

// RemScalar returns the remainder of every lane of v divided by s.
func RemScalar[T Numbers, S Storage[T]](v Vector[T, S], s T) Vector[T, S] {
	return Rem(v, splat[T, S](s))
}

// Min returns the element-wise minimum. A NaN lane in either operand
// produces NaN, like the built-in min.
func Min[T Numbers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	if r, ok := binaryFast(&a, &b, opMin); ok {
		return r
	}
	return Map2(a, b, func(x, y T) T { return min(x, y) })
}

// Max returns the element-wise maximum. A NaN lane in either operand
// produces NaN, like the built-in max.
func Max[T Numbers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	if r, ok := binaryFast(&a, &b, opMax); ok {
		return r
	}
	return Map2(a, b, func(x, y T) T { return max(x, y) })
}

// Clamp clamps each lane to the range [lo, hi].
func Clamp[T Numbers, S Storage[T]](v, lo, hi Vector[T, S]) Vector[T, S] {
	return Min(Max(v, lo), hi)
}

func addLane[T Numbers](x, y T) T {
	r := x + y
	if overflowChecks && !isFloat[T]() && addOverflows(x, y, r) {
		overflowPanic("Add")
	}
	return r
}

func subLane[T Numbers](x, y T) T {
	r := x - y
	if overflowChecks && !isFloat[T]() && subOverflows(x, y, r) {
		overflowPanic("Sub")
	}
	return r
}

func mulLane[T Numbers](x, y T) T {
	r := x * y
	if overflowChecks && !isFloat[T]() && mulOverflows(x, y, r) {
		overflowPanic("Mul")
	}
	return r
}

func remLane[T Numbers](x, y T) T {
	if isFloat[T]() {
		return floatMod(x, y)
	}
	if overflowChecks && divOverflows(x, y) {
		overflowPanic("Rem")
	}
	return intRem(x, y)
}

// OverflowChecks reports whether the package was built with the
// ggmath_overflow_checks tag. In that build integer Add, Sub, Mul, Neg, Abs
// and Sum panic on overflow, and Div and Rem panic on MIN / -1.
func OverflowChecks() bool { return overflowChecks }

// checkingOverflow reports whether integer operators on T must run the
// checked element-wise loop.
func checkingOverflow[T Numbers]() bool {
	return overflowChecks && !isFloat[T]()
}

// binaryFast runs op through the four-lane kernel of T when the shape of S
// allows it. It reports false, having done nothing, when:
//   - S does not have four physical lanes;
//   - T has no kernel for op;
//   - S has a padding lane and the kernel is not garbage-safe;
//   - the storage cannot be viewed as [4]T.
func binaryFast[T Scalar, S Storage[T]](a, b *Vector[T, S], op opcode) (Vector[T, S], bool) {
	var r Vector[T, S]
	if len(r.data) != 4 {
		return r, false
	}
	k := kernelsFor[T]()
	if k == nil {
		return r, false
	}
	fn, garbageSafe := k.binary(op)
	padded := r.data.lanes() != 4
	if fn == nil || (padded && !garbageSafe) {
		return r, false
	}
	pa, okA := reinterpret[[4]T](&a.data)
	pb, okB := reinterpret[[4]T](&b.data)
	pr, okR := reinterpret[[4]T](&r.data)
	if !okA || !okB || !okR {
		return r, false
	}
	fn(pr, pa, pb)
	if padded {
		clearPadding(pr)
	}
	return r, true
}

// unaryFast is binaryFast for one operand.
func unaryFast[T Scalar, S Storage[T]](v *Vector[T, S], op opcode) (Vector[T, S], bool) {
	var r Vector[T, S]
	if len(r.data) != 4 {
		return r, false
	}
	k := kernelsFor[T]()
	if k == nil {
		return r, false
	}
	fn, garbageSafe := k.unary(op)
	padded := r.data.lanes() != 4
	if fn == nil || (padded && !garbageSafe) {
		return r, false
	}
	pv, okV := reinterpret[[4]T](&v.data)
	pr, okR := reinterpret[[4]T](&r.data)
	if !okV || !okR {
		return r, false
	}
	fn(pr, pv)
	if padded {
		clearPadding(pr)
	}
	return r, true
}

// compareFast is binaryFast for comparisons. The kernel's bitset is
// trimmed to the logical lanes, so a padding lane never shows in the mask.
func compareFast[T Scalar, S Storage[T]](a, b *Vector[T, S], op opcode) (Mask, bool) {
	if len(a.data) != 4 {
		return Mask{}, false
	}
	k := kernelsFor[T]()
	if k == nil {
		return Mask{}, false
	}
	fn, garbageSafe := k.compare(op)
	n := a.data.lanes()
	if fn == nil || (n != 4 && !garbageSafe) {
		return Mask{}, false
	}
	pa, okA := reinterpret[[4]T](&a.data)
	pb, okB := reinterpret[[4]T](&b.data)
	if !okA || !okB {
		return Mask{}, false
	}
	return Mask{bits: fn(pa, pb) & (1<<n - 1), n: uint8(n)}, true
}

// clearPadding restores the zero value in the padding lane of a three-lane
// aligned vector after a kernel wrote to it.
func clearPadding[T Scalar](p *[4]T) {
	var zero T
	p[3] = zero
}
