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

// Sum returns the sum of the logical lanes.
func Sum[T Numbers, S Storage[T]](v Vector[T, S]) T {
	var s T
	for _, x := range v.Lanes() {
		s = addLane(s, x)
	}
	return s
}

// Product returns the product of the logical lanes.
func Product[T Numbers, S Storage[T]](v Vector[T, S]) T {
	var p T = 1
	for _, x := range v.Lanes() {
		p = mulLane(p, x)
	}
	return p
}

// Dot returns the dot product of a and b.
func Dot[T Numbers, S Storage[T]](a, b Vector[T, S]) T {
	return Sum(Mul(a, b))
}

// Cross returns the cross product of two three-lane vectors, computed as
// two products of cyclic permutations and a subtraction:
//
//	a.yzx*b.zxy - a.zxy*b.yzx
func Cross[T Numbers, S Storage3[T]](a, b Vector[T, S]) Vector[T, S] {
	return Sub(
		Mul(rotate3(a, 1), rotate3(b, 2)),
		Mul(rotate3(a, 2), rotate3(b, 1)),
	)
}

// rotate3 returns (v[k], v[k+1], v[k+2]) with indices taken mod 3, in the
// shape of v.
func rotate3[T Numbers, S Storage3[T]](v Vector[T, S], k int) Vector[T, S] {
	var r Vector[T, S]
	out, in := r.Lanes(), v.Lanes()
	for i := range out {
		out[i] = in[(i+k)%3]
	}
	return r
}

// PerpDot returns the z component of the cross product of two two-lane
// vectors extended with z = 0: a.x*b.y - a.y*b.x.
func PerpDot[T Numbers, S Storage2[T]](a, b Vector[T, S]) T {
	return subLane(mulLane(a.data[0], b.data[1]), mulLane(a.data[1], b.data[0]))
}

// Perp returns v rotated by 90 degrees counter-clockwise: (-y, x).
func Perp[T Signed, S Storage2[T]](v Vector[T, S]) Vector[T, S] {
	var r Vector[T, S]
	out := r.Lanes()
	out[0] = -v.data[1]
	out[1] = v.data[0]
	return r
}

// LengthSquared returns Dot(v, v).
func LengthSquared[T Numbers, S Storage[T]](v Vector[T, S]) T {
	return Dot(v, v)
}

// Length returns the Euclidean length of v.
func Length[T Floats, S Storage[T]](v Vector[T, S]) T {
	return sqrt(LengthSquared(v))
}

// DistanceSquared returns LengthSquared(a - b).
func DistanceSquared[T Numbers, S Storage[T]](a, b Vector[T, S]) T {
	return LengthSquared(Sub(a, b))
}

// Distance returns the Euclidean distance between a and b.
func Distance[T Floats, S Storage[T]](a, b Vector[T, S]) T {
	return Length(Sub(a, b))
}

// Normalize returns v scaled to unit length. A zero or non-finite length
// produces NaN or infinite lanes; use TryNormalize to detect that.
func Normalize[T Floats, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return DivScalar(v, Length(v))
}

// TryNormalize returns v scaled to unit length, or false if the length is
// zero, infinite or NaN.
func TryNormalize[T Floats, S Storage[T]](v Vector[T, S]) (Vector[T, S], bool) {
	l := Length(v)
	if l == 0 || !isFinite(l) {
		return Vector[T, S]{}, false
	}
	return DivScalar(v, l), true
}

func sqrt[T Floats](x T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}
