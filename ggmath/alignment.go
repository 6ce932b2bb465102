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

// Alignment selects the memory layout of a vector.
//
// The two implementations, Aligned and Packed, are zero-sized markers. The
// layout they select is carried by the vector's storage type parameter; the
// marker is what generic code inspects to learn which layout it holds.
type Alignment interface {
	// PhysicalLanes returns how many lanes of storage an n-lane vector
	// occupies under this layout.
	PhysicalLanes(n int) int

	// String returns "aligned" or "packed".
	String() string

	isAlignment()
}

// Aligned pads a vector to the next power-of-two lane count, so a three-lane
// vector has the footprint of a four-lane one and four-lane kernels can run
// over it. The extra lane always holds the zero value.
type Aligned struct{}

// PhysicalLanes rounds n up to a power of two.
func (Aligned) PhysicalLanes(n int) int { return NextPow2(n) }

// String returns "aligned".
func (Aligned) String() string { return "aligned" }

func (Aligned) isAlignment() {}

// Packed stores exactly n lanes with the layout of [n]T.
type Packed struct{}

// PhysicalLanes returns n.
func (Packed) PhysicalLanes(n int) int { return n }

// String returns "packed".
func (Packed) String() string { return "packed" }

func (Packed) isAlignment() {}

// Storage shapes. Lane 0 of every shape sits at offset 0 and lanes are
// contiguous, so the first n lanes of any shape have the layout of [n]T.
type (
	aligned2[T Scalar] [2]T
	aligned3[T Scalar] [4]T
	aligned4[T Scalar] [4]T
	packed2[T Scalar]  [2]T
	packed3[T Scalar]  [3]T
	packed4[T Scalar]  [4]T
)

func (aligned2[T]) lanes() int           { return 2 }
func (aligned3[T]) lanes() int           { return 3 }
func (aligned4[T]) lanes() int           { return 4 }
func (packed2[T]) lanes() int            { return 2 }
func (packed3[T]) lanes() int            { return 3 }
func (packed4[T]) lanes() int            { return 4 }
func (aligned2[T]) alignment() Alignment { return Aligned{} }
func (aligned3[T]) alignment() Alignment { return Aligned{} }
func (aligned4[T]) alignment() Alignment { return Aligned{} }
func (packed2[T]) alignment() Alignment  { return Packed{} }
func (packed3[T]) alignment() Alignment  { return Packed{} }
func (packed4[T]) alignment() Alignment  { return Packed{} }

// storageShape is implemented by every storage type.
type storageShape interface {
	lanes() int
	alignment() Alignment
}

// Storage is satisfied by the six storage shapes of a vector of T. It is
// sealed: the shapes are unexported and reachable only through the VecN and
// VecNP aliases.
type Storage[T Scalar] interface {
	aligned2[T] | aligned3[T] | aligned4[T] | packed2[T] | packed3[T] | packed4[T]
	storageShape
}

// Storage2 is satisfied by the two-lane shapes.
type Storage2[T Scalar] interface {
	aligned2[T] | packed2[T]
	storageShape
}

// Storage3 is satisfied by the three-lane shapes.
type Storage3[T Scalar] interface {
	aligned3[T] | packed3[T]
	storageShape
}

// Storage4 is satisfied by the four-lane shapes.
type Storage4[T Scalar] interface {
	aligned4[T] | packed4[T]
	storageShape
}

// AtLeast3 is satisfied by shapes that have a z lane.
type AtLeast3[T Scalar] interface {
	aligned3[T] | packed3[T] | aligned4[T] | packed4[T]
	storageShape
}

// AtLeast4 is satisfied by shapes that have a w lane.
type AtLeast4[T Scalar] interface {
	aligned4[T] | packed4[T]
	storageShape
}

// Vector is a fixed-length tuple of scalars laid out according to S.
//
// The zero value is the zero vector. Vectors are plain values: copying one
// copies its lanes and nothing is shared.
type Vector[T Scalar, S Storage[T]] struct {
	data S
}

// Aligned shapes.
type (
	Vec2[T Scalar] = Vector[T, aligned2[T]]
	Vec3[T Scalar] = Vector[T, aligned3[T]]
	Vec4[T Scalar] = Vector[T, aligned4[T]]
)

// Packed shapes.
type (
	Vec2P[T Scalar] = Vector[T, packed2[T]]
	Vec3P[T Scalar] = Vector[T, packed3[T]]
	Vec4P[T Scalar] = Vector[T, packed4[T]]
)

// Common instantiations.
type (
	FVec2 = Vec2[float32]
	FVec3 = Vec3[float32]
	FVec4 = Vec4[float32]
	DVec2 = Vec2[float64]
	DVec3 = Vec3[float64]
	DVec4 = Vec4[float64]
	IVec2 = Vec2[int32]
	IVec3 = Vec3[int32]
	IVec4 = Vec4[int32]
	UVec2 = Vec2[uint32]
	UVec3 = Vec3[uint32]
	UVec4 = Vec4[uint32]
	BVec2 = Vec2[bool]
	BVec3 = Vec3[bool]
	BVec4 = Vec4[bool]
)
