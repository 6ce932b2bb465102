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
	"strings"
	"unsafe"
)

// New2 returns the aligned vector (x, y).
func New2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{data: aligned2[T]{x, y}}
}

// New3 returns the aligned vector (x, y, z).
func New3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{data: aligned3[T]{x, y, z}}
}

// New4 returns the aligned vector (x, y, z, w).
func New4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{data: aligned4[T]{x, y, z, w}}
}

// New2P returns the packed vector (x, y).
func New2P[T Scalar](x, y T) Vec2P[T] {
	return Vec2P[T]{data: packed2[T]{x, y}}
}

// New3P returns the packed vector (x, y, z).
func New3P[T Scalar](x, y, z T) Vec3P[T] {
	return Vec3P[T]{data: packed3[T]{x, y, z}}
}

// New4P returns the packed vector (x, y, z, w).
func New4P[T Scalar](x, y, z, w T) Vec4P[T] {
	return Vec4P[T]{data: packed4[T]{x, y, z, w}}
}

// FromArray2 copies a into an aligned vector.
func FromArray2[T Scalar](a [2]T) Vec2[T] { return Vec2[T]{data: aligned2[T](a)} }

// FromArray3 copies a into an aligned vector; the padding lane is zero.
func FromArray3[T Scalar](a [3]T) Vec3[T] { return New3(a[0], a[1], a[2]) }

// FromArray4 copies a into an aligned vector.
func FromArray4[T Scalar](a [4]T) Vec4[T] { return Vec4[T]{data: aligned4[T](a)} }

// FromArray2P converts a into a packed vector.
func FromArray2P[T Scalar](a [2]T) Vec2P[T] { return Vec2P[T]{data: packed2[T](a)} }

// FromArray3P converts a into a packed vector.
func FromArray3P[T Scalar](a [3]T) Vec3P[T] { return Vec3P[T]{data: packed3[T](a)} }

// FromArray4P converts a into a packed vector.
func FromArray4P[T Scalar](a [4]T) Vec4P[T] { return Vec4P[T]{data: packed4[T](a)} }

// ToArray2 returns the lanes of a two-lane vector.
func ToArray2[T Scalar, S Storage2[T]](v Vector[T, S]) [2]T {
	return [2]T{v.data[0], v.data[1]}
}

// ToArray3 returns the lanes of a three-lane vector.
func ToArray3[T Scalar, S Storage3[T]](v Vector[T, S]) [3]T {
	return [3]T{v.data[0], v.data[1], v.data[2]}
}

// ToArray4 returns the lanes of a four-lane vector.
func ToArray4[T Scalar, S Storage4[T]](v Vector[T, S]) [4]T {
	return [4]T{v.data[0], v.data[1], v.data[2], v.data[3]}
}

// Splat2 returns an aligned vector with both lanes set to x.
func Splat2[T Scalar](x T) Vec2[T] { return splat[T, aligned2[T]](x) }

// Splat3 returns an aligned vector with every lane set to x.
func Splat3[T Scalar](x T) Vec3[T] { return splat[T, aligned3[T]](x) }

// Splat4 returns an aligned vector with every lane set to x.
func Splat4[T Scalar](x T) Vec4[T] { return splat[T, aligned4[T]](x) }

// Splat2P returns a packed vector with both lanes set to x.
func Splat2P[T Scalar](x T) Vec2P[T] { return splat[T, packed2[T]](x) }

// Splat3P returns a packed vector with every lane set to x.
func Splat3P[T Scalar](x T) Vec3P[T] { return splat[T, packed3[T]](x) }

// Splat4P returns a packed vector with every lane set to x.
func Splat4P[T Scalar](x T) Vec4P[T] { return splat[T, packed4[T]](x) }

func splat[T Scalar, S Storage[T]](x T) Vector[T, S] {
	var r Vector[T, S]
	lanes := r.Lanes()
	for i := range lanes {
		lanes[i] = x
	}
	return r
}

// Fill sets every logical lane of v to x and returns the result.
// It is the shape-generic form of SplatN.
func Fill[T Scalar, S Storage[T]](v Vector[T, S], x T) Vector[T, S] {
	return splat[T, S](x)
}

// Load copies the first v.Len() elements of src into *dst.
// It returns false, leaving *dst untouched, if src is too short.
func Load[T Scalar, S Storage[T]](dst *Vector[T, S], src []T) bool {
	lanes := dst.Lanes()
	if len(src) < len(lanes) {
		return false
	}
	copy(lanes, src)
	return true
}

// Store copies the logical lanes of v into dst and returns the number of
// elements written.
func Store[T Scalar, S Storage[T]](v Vector[T, S], dst []T) int {
	return copy(dst, v.Lanes())
}

// Len returns the number of logical lanes.
func (v Vector[T, S]) Len() int {
	return v.data.lanes()
}

// Alignment returns the layout marker of the vector's shape.
func (v Vector[T, S]) Alignment() Alignment {
	return v.data.alignment()
}

// Get returns lane i. The boolean is false if i is out of range.
func (v Vector[T, S]) Get(i int) (T, bool) {
	if uint(i) >= uint(v.data.lanes()) {
		var zero T
		return zero, false
	}
	return v.data[i], true
}

// Ptr returns a pointer to lane i, or nil if i is out of range.
func (v *Vector[T, S]) Ptr(i int) *T {
	lanes := v.Lanes()
	if uint(i) >= uint(len(lanes)) {
		return nil
	}
	return &lanes[i]
}

// Set stores x in lane i. It reports false, leaving v unchanged, if i is
// out of range.
func (v *Vector[T, S]) Set(i int, x T) bool {
	p := v.Ptr(i)
	if p == nil {
		return false
	}
	*p = x
	return true
}

// With returns a copy of v with lane i replaced by x. The boolean is false
// if i is out of range.
func (v Vector[T, S]) With(i int, x T) (Vector[T, S], bool) {
	ok := v.Set(i, x)
	return v, ok
}

// GetUnchecked returns lane i without a bounds check.
//
// The caller must guarantee 0 <= i < v.Len(). Violating this reads memory
// outside the logical lanes and the result is undefined.
func (v *Vector[T, S]) GetUnchecked(i int) T {
	var lane T
	return *(*T)(unsafe.Add(unsafe.Pointer(&v.data), uintptr(i)*unsafe.Sizeof(lane)))
}

// SetUnchecked stores x in lane i without a bounds check.
//
// The caller must guarantee 0 <= i < v.Len(); otherwise the behaviour is
// undefined.
func (v *Vector[T, S]) SetUnchecked(i int, x T) {
	var lane T
	*(*T)(unsafe.Add(unsafe.Pointer(&v.data), uintptr(i)*unsafe.Sizeof(lane))) = x
}

// Lanes returns the logical lanes of v as a slice that aliases v.
func (v *Vector[T, S]) Lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.data)), v.data.lanes())
}

// Slice returns a newly allocated copy of the logical lanes.
func (v Vector[T, S]) Slice() []T {
	out := make([]T, v.data.lanes())
	copy(out, v.Lanes())
	return out
}

// AsBytes returns the memory of the logical lanes, Len()*Sizeof(T) bytes,
// without copying. Writes through the slice modify v.
func (v *Vector[T, S]) AsBytes() []byte {
	var lane T
	n := uintptr(v.data.lanes()) * unsafe.Sizeof(lane)
	return unsafe.Slice((*byte)(unsafe.Pointer(&v.data)), n)
}

// AsBytesPadded returns the whole memory of v, Sizeof(v) bytes, padding
// included. It is meant for inspection: the padding bytes carry no meaning
// and must not be written.
func (v *Vector[T, S]) AsBytesPadded() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&v.data)), unsafe.Sizeof(v.data))
}

// String formats the vector as "(x, y, z)".
func (v Vector[T, S]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range v.Lanes() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, x)
	}
	b.WriteByte(')')
	return b.String()
}

// Map returns the vector whose lanes are f applied to the lanes of v.
func Map[T Scalar, S Storage[T]](v Vector[T, S], f func(T) T) Vector[T, S] {
	var r Vector[T, S]
	out, in := r.Lanes(), v.Lanes()
	for i := range out {
		out[i] = f(in[i])
	}
	return r
}

// Map2 returns the vector whose lanes are f applied to lanes of a and b.
func Map2[T Scalar, S Storage[T]](a, b Vector[T, S], f func(T, T) T) Vector[T, S] {
	var r Vector[T, S]
	out, x, y := r.Lanes(), a.Lanes(), b.Lanes()
	for i := range out {
		out[i] = f(x[i], y[i])
	}
	return r
}

// Axis constants.

// Vec2X returns (1, 0).
func Vec2X[T Numbers]() Vec2[T] { return New2[T](1, 0) }

// Vec2Y returns (0, 1).
func Vec2Y[T Numbers]() Vec2[T] { return New2[T](0, 1) }

// Vec3X returns (1, 0, 0).
func Vec3X[T Numbers]() Vec3[T] { return New3[T](1, 0, 0) }

// Vec3Y returns (0, 1, 0).
func Vec3Y[T Numbers]() Vec3[T] { return New3[T](0, 1, 0) }

// Vec3Z returns (0, 0, 1).
func Vec3Z[T Numbers]() Vec3[T] { return New3[T](0, 0, 1) }

// Vec4X returns (1, 0, 0, 0).
func Vec4X[T Numbers]() Vec4[T] { return New4[T](1, 0, 0, 0) }

// Vec4Y returns (0, 1, 0, 0).
func Vec4Y[T Numbers]() Vec4[T] { return New4[T](0, 1, 0, 0) }

// Vec4Z returns (0, 0, 1, 0).
func Vec4Z[T Numbers]() Vec4[T] { return New4[T](0, 0, 1, 0) }

// Vec4W returns (0, 0, 0, 1).
func Vec4W[T Numbers]() Vec4[T] { return New4[T](0, 0, 0, 1) }

// One returns a vector of the same shape as v with every lane set to 1.
func One[T Numbers, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return splat[T, S](1)
}
