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
	"math"
	"unsafe"

	"github.com/chewxy/math32"
)

// Element-wise float functions. Four-byte types (float32 and named types
// over it) go through chewxy/math32, eight-byte types through math, so a
// float32 lane is never widened for a function that has a float32 version.

func apply32or64[T Floats](x T, f32 func(float32) float32, f64 func(float64) float64) T {
	if unsafe.Sizeof(x) == 4 {
		return T(f32(float32(x)))
	}
	return T(f64(float64(x)))
}

func mapFloat[T Floats, S Storage[T]](v Vector[T, S], f32 func(float32) float32, f64 func(float64) float64) Vector[T, S] {
	return Map(v, func(x T) T { return apply32or64(x, f32, f64) })
}

// Floor rounds each lane down.
func Floor[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return mapFloat(v, math32.Floor, math.Floor)
}

// Ceil rounds each lane up.
func Ceil[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return mapFloat(v, math32.Ceil, math.Ceil)
}

// Round rounds each lane to the nearest integer, half away from zero.
func Round[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return mapFloat(v, math32.Round, math.Round)
}

// Trunc rounds each lane toward zero.
func Trunc[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return mapFloat(v, math32.Trunc, math.Trunc)
}

// Fract returns v - Floor(v), which lies in [0, 1) for finite lanes.
func Fract[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return Sub(v, Floor(v))
}

// Sqrt returns the square root of each lane.
func Sqrt[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return mapFloat(v, math32.Sqrt, math.Sqrt)
}

// Sin returns the sine of each lane (radians).
func Sin[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return mapFloat(v, math32.Sin, math.Sin)
}

// Cos returns the cosine of each lane (radians).
func Cos[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return mapFloat(v, math32.Cos, math.Cos)
}

// Tan returns the tangent of each lane (radians).
func Tan[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return mapFloat(v, math32.Tan, math.Tan)
}

// Asin returns the arcsine of each lane.
func Asin[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return mapFloat(v, math32.Asin, math.Asin)
}

// Acos returns the arccosine of each lane.
func Acos[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return mapFloat(v, math32.Acos, math.Acos)
}

// Atan returns the arctangent of each lane.
func Atan[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return mapFloat(v, math32.Atan, math.Atan)
}

// Exp returns e raised to each lane.
func Exp[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return mapFloat(v, math32.Exp, math.Exp)
}

// Exp2 returns 2 raised to each lane.
func Exp2[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return mapFloat(v, math32.Exp2, math.Exp2)
}

// Ln returns the natural logarithm of each lane.
func Ln[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return mapFloat(v, math32.Log, math.Log)
}

// Log2 returns the base-2 logarithm of each lane.
func Log2[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return mapFloat(v, math32.Log2, math.Log2)
}

// Recip returns 1/x for each lane.
func Recip[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return Div(splat[T, S](1), v)
}

// Abs returns the absolute value of each lane. For signed integers the
// absolute value of MIN is MIN, as with two's-complement negation; the
// ggmath_overflow_checks build panics instead.
func Abs[T Signed, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return Map(v, func(x T) T {
		if isFloat[T]() {
			return T(math.Abs(float64(x)))
		}
		if x < 0 {
			if overflowChecks && negOverflows(x) {
				overflowPanic("Abs")
			}
			return -x
		}
		return x
	})
}

// Signum returns 1, 0 or -1 for each lane according to its sign. For floats
// the result is ±1 for ±0 as well (copying the sign bit), and NaN for NaN.
func Signum[T Signed, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return Map(v, func(x T) T {
		if isFloat[T]() {
			f := float64(x)
			if math.IsNaN(f) {
				return x
			}
			return T(math.Copysign(1, f))
		}
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		}
		return 0
	})
}

// Copysign returns, for each lane, the magnitude of a with the sign of b.
func Copysign[T Floats, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	return Map2(a, b, func(x, y T) T {
		if unsafe.Sizeof(x) == 4 {
			return T(math32.Copysign(float32(x), float32(y)))
		}
		return T(math.Copysign(float64(x), float64(y)))
	})
}

// MulAdd returns a*b + c for each lane, computed with a single rounding.
func MulAdd[T Floats, S Storage[T]](a, b, c Vector[T, S]) Vector[T, S] {
	var r Vector[T, S]
	out, x, y, z := r.Lanes(), a.Lanes(), b.Lanes(), c.Lanes()
	for i := range out {
		out[i] = fma(x[i], y[i], z[i])
	}
	return r
}

func fma[T Floats](x, y, z T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(fma32(float32(x), float32(y), float32(z)))
	}
	return T(math.FMA(float64(x), float64(y), float64(z)))
}

// fma32 computes x*y + z with one float32 rounding. The float64 product is
// exact; the float64 sum is rounded to odd so the final conversion cannot
// round twice.
func fma32(x, y, z float32) float32 {
	p := float64(x) * float64(y)
	w := float64(z)
	s := p + w
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}
	bb := s - p
	e := (p - (s - bb)) + (w - bb)
	if bits := math.Float64bits(s); e != 0 && bits&1 == 0 {
		if (e > 0) == (s > 0) {
			bits++
		} else {
			bits--
		}
		s = math.Float64frombits(bits)
	}
	return float32(s)
}

// Lerp interpolates linearly between a (t = 0) and b (t = 1).
func Lerp[T Floats, S Storage[T]](a, b Vector[T, S], t T) Vector[T, S] {
	return Map2(a, b, func(x, y T) T { return x + (y-x)*t })
}

// MinElement returns the smallest lane of v. NaN lanes propagate.
func MinElement[T Numbers, S Storage[T]](v Vector[T, S]) T {
	lanes := v.Lanes()
	m := lanes[0]
	for _, x := range lanes[1:] {
		m = min(m, x)
	}
	return m
}

// MaxElement returns the largest lane of v. NaN lanes propagate.
func MaxElement[T Numbers, S Storage[T]](v Vector[T, S]) T {
	lanes := v.Lanes()
	m := lanes[0]
	for _, x := range lanes[1:] {
		m = max(m, x)
	}
	return m
}

// NaNMask returns a mask with a lane set for every NaN lane of v.
func NaNMask[T Floats, S Storage[T]](v Vector[T, S]) Mask {
	var m Mask
	m.n = uint8(v.Len())
	for i, x := range v.Lanes() {
		if x != x {
			m.bits |= 1 << i
		}
	}
	return m
}

// FiniteMask returns a mask with a lane set for every lane that is neither
// NaN nor infinite.
func FiniteMask[T Floats, S Storage[T]](v Vector[T, S]) Mask {
	var m Mask
	m.n = uint8(v.Len())
	for i, x := range v.Lanes() {
		if isFinite(x) {
			m.bits |= 1 << i
		}
	}
	return m
}

// IsNaN reports whether any lane of v is NaN.
func IsNaN[T Floats, S Storage[T]](v Vector[T, S]) bool {
	return NaNMask(v).Any()
}

// IsFinite reports whether every lane of v is finite.
func IsFinite[T Floats, S Storage[T]](v Vector[T, S]) bool {
	return FiniteMask(v).All()
}

func isFinite[T Floats](x T) bool {
	// x - x is 0 for finite x and NaN for ±Inf and NaN.
	return x-x == 0
}

func floatMod[T Numbers](x, y T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(math32.Mod(float32(x), float32(y)))
	}
	return T(math.Mod(float64(x), float64(y)))
}

// intRem is x % y for integer T. The % operator is not defined on the
// Numbers type set, but integer division truncates, so x - (x/y)*y is the
// same value, panics on the same zero divisor and gives 0 for MIN % -1.
func intRem[T Numbers](x, y T) T {
	return x - (x/y)*y
}
