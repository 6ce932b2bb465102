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
	"strconv"
	"unsafe"
)

// Shape identifies the length and layout of a vector type.
type Shape struct {
	Len       int
	Alignment Alignment
}

// String formats the shape as, e.g., "3/aligned".
func (s Shape) String() string {
	return strconv.Itoa(s.Len) + "/" + s.Alignment.String()
}

// ShapeOf returns the shape of Vector[T, S].
func ShapeOf[T Scalar, S Storage[T]]() Shape {
	var s S
	return Shape{Len: s.lanes(), Alignment: s.alignment()}
}

// Shape returns the length and layout of v.
func (v Vector[T, S]) Shape() Shape {
	return Shape{Len: v.data.lanes(), Alignment: v.data.alignment()}
}

// IsAligned reports whether v uses the aligned layout.
func (v Vector[T, S]) IsAligned() bool {
	_, ok := v.data.alignment().(Aligned)
	return ok
}

// As converts v to the concrete vector type V if v already has that type.
// It is a plain type assertion: As[Vec3[float32]](v) succeeds exactly when
// v is a Vec3[float32].
func As[V any, T Scalar, S Storage[T]](v Vector[T, S]) (V, bool) {
	r, ok := any(v).(V)
	return r, ok
}

// Resolved is the concrete form of a generic vector. Exactly one field is
// non-nil and it aliases the vector passed to Resolve.
type Resolved[T Scalar] struct {
	Vec2  *Vec2[T]
	Vec3  *Vec3[T]
	Vec4  *Vec4[T]
	Vec2P *Vec2P[T]
	Vec3P *Vec3P[T]
	Vec4P *Vec4P[T]
}

// Resolve returns the concrete form of *v, letting generic code branch on
// length and layout with a switch over the non-nil field.
func Resolve[T Scalar, S Storage[T]](v *Vector[T, S]) Resolved[T] {
	switch p := any(v).(type) {
	case *Vec2[T]:
		return Resolved[T]{Vec2: p}
	case *Vec3[T]:
		return Resolved[T]{Vec3: p}
	case *Vec4[T]:
		return Resolved[T]{Vec4: p}
	case *Vec2P[T]:
		return Resolved[T]{Vec2P: p}
	case *Vec3P[T]:
		return Resolved[T]{Vec3P: p}
	case *Vec4P[T]:
		return Resolved[T]{Vec4P: p}
	}
	panic("ggmath: unreachable storage shape")
}

// reinterpret views *src as a *Dst without copying.
//
// Lane accessors such as Lanes and AsBytes view storage through unsafe at
// a fixed element type; reinterpret is the general form used by the kernel
// fast paths. The view is returned only when Dst fits inside Src and needs
// no stricter alignment than Src; otherwise it returns nil, false and the
// caller must take its safe path. Callers use it between types that share a
// lane layout: every storage shape starts with lane 0 at offset 0 and keeps
// its lanes contiguous, so the first n lanes of any shape are a [n]T. The
// package init checks that layout for every built-in scalar type.
func reinterpret[Dst, Src any](src *Src) (*Dst, bool) {
	var d Dst
	var s Src
	if unsafe.Sizeof(d) > unsafe.Sizeof(s) || unsafe.Alignof(d) > unsafe.Alignof(s) {
		return nil, false
	}
	return (*Dst)(unsafe.Pointer(src)), true
}
