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

// Layout conversions. Converting to the aligned layout always copies.
// Converting an aligned vector to the packed layout can be done in place
// with PackedViewN because the packed lanes are a prefix of the aligned
// storage.

// Align2 copies v into the aligned layout.
func Align2[T Scalar, S Storage2[T]](v Vector[T, S]) Vec2[T] {
	return New2(v.data[0], v.data[1])
}

// Align3 copies v into the aligned layout.
func Align3[T Scalar, S Storage3[T]](v Vector[T, S]) Vec3[T] {
	return New3(v.data[0], v.data[1], v.data[2])
}

// Align4 copies v into the aligned layout.
func Align4[T Scalar, S Storage4[T]](v Vector[T, S]) Vec4[T] {
	return New4(v.data[0], v.data[1], v.data[2], v.data[3])
}

// Unalign2 copies v into the packed layout.
func Unalign2[T Scalar, S Storage2[T]](v Vector[T, S]) Vec2P[T] {
	return New2P(v.data[0], v.data[1])
}

// Unalign3 copies v into the packed layout.
func Unalign3[T Scalar, S Storage3[T]](v Vector[T, S]) Vec3P[T] {
	return New3P(v.data[0], v.data[1], v.data[2])
}

// Unalign4 copies v into the packed layout.
func Unalign4[T Scalar, S Storage4[T]](v Vector[T, S]) Vec4P[T] {
	return New4P(v.data[0], v.data[1], v.data[2], v.data[3])
}

// PackedView2 returns a packed view of v that aliases its lanes.
func PackedView2[T Scalar, S Storage2[T]](v *Vector[T, S]) *Vec2P[T] {
	return mustView[Vec2P[T]](v)
}

// PackedView3 returns a packed view of v that aliases its lanes. For an
// aligned vector the padding lane is not part of the view.
func PackedView3[T Scalar, S Storage3[T]](v *Vector[T, S]) *Vec3P[T] {
	return mustView[Vec3P[T]](v)
}

// PackedView4 returns a packed view of v that aliases its lanes.
func PackedView4[T Scalar, S Storage4[T]](v *Vector[T, S]) *Vec4P[T] {
	return mustView[Vec4P[T]](v)
}

// ArrayView2 returns the lanes of v as an array pointer aliasing v.
func ArrayView2[T Scalar, S Storage2[T]](v *Vector[T, S]) *[2]T {
	return mustView[[2]T](v)
}

// ArrayView3 returns the lanes of v as an array pointer aliasing v.
func ArrayView3[T Scalar, S Storage3[T]](v *Vector[T, S]) *[3]T {
	return mustView[[3]T](v)
}

// ArrayView4 returns the lanes of v as an array pointer aliasing v.
func ArrayView4[T Scalar, S Storage4[T]](v *Vector[T, S]) *[4]T {
	return mustView[[4]T](v)
}

// ArrayRef2P returns a packed vector that aliases *a.
func ArrayRef2P[T Scalar](a *[2]T) *Vec2P[T] { return mustView[Vec2P[T]](a) }

// ArrayRef3P returns a packed vector that aliases *a.
func ArrayRef3P[T Scalar](a *[3]T) *Vec3P[T] { return mustView[Vec3P[T]](a) }

// ArrayRef4P returns a packed vector that aliases *a.
func ArrayRef4P[T Scalar](a *[4]T) *Vec4P[T] { return mustView[Vec4P[T]](a) }

// mustView is reinterpret for conversions the layout checks in init have
// already proven valid.
func mustView[Dst, Src any](src *Src) *Dst {
	p, ok := reinterpret[Dst](src)
	if !ok {
		panic("ggmath: layout check failed for zero-copy view")
	}
	return p
}

// Cast2 converts each lane of v to U with a Go conversion.
func Cast2[U, T Numbers, S Storage2[T]](v Vector[T, S]) Vec2[U] {
	return New2(U(v.data[0]), U(v.data[1]))
}

// Cast3 converts each lane of v to U with a Go conversion.
func Cast3[U, T Numbers, S Storage3[T]](v Vector[T, S]) Vec3[U] {
	return New3(U(v.data[0]), U(v.data[1]), U(v.data[2]))
}

// Cast4 converts each lane of v to U with a Go conversion.
func Cast4[U, T Numbers, S Storage4[T]](v Vector[T, S]) Vec4[U] {
	return New4(U(v.data[0]), U(v.data[1]), U(v.data[2]), U(v.data[3]))
}
