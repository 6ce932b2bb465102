// Package ggmath provides fixed-size vectors generic over lane count, scalar
// type and memory layout.
//
// A vector is a Vector[T, S] where T is the scalar stored in each lane and S
// is one of six sealed storage shapes: two, three or four lanes, each either
// Aligned (padded to a power-of-two footprint so four-lane kernels can run
// over three-lane vectors) or Packed (bit-identical to [N]T). The aliases
// Vec2, Vec3, Vec4 name the aligned shapes and Vec2P, Vec3P, Vec4P the packed
// ones:
//
//	a := ggmath.New3[float32](1, 2, 3)
//	b := ggmath.New3[float32](4, 5, 6)
//	c := ggmath.Cross(a, b)          // (-3, 6, -3)
//	d := ggmath.Add(a, b)            // (5, 7, 9)
//	p := ggmath.Unalign3(d)          // Vec3P[float32], 12 bytes
//
// Operators are free functions whose constraints decide which scalars they
// accept, so Add on a bool vector or Cross on a two-lane vector is a compile
// error rather than a runtime one. Element-wise operators take a four-lane
// fast path through per-scalar Kernels when the physical shape allows it and
// fall back to a plain loop otherwise; both paths agree lane for lane.
package ggmath

//go:generate go run ../cmd/swizzlegen -output swizzle_gen.go

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Numbers is a constraint for every scalar that supports arithmetic.
type Numbers interface {
	Floats | Integers
}

// Signed is a constraint for scalars with a meaningful negation.
type Signed interface {
	Floats | SignedInts
}

// Boolean is a constraint for boolean lanes.
type Boolean interface {
	~bool
}

// Scalar is a constraint for all types that may occupy a vector lane.
type Scalar interface {
	Numbers | Boolean
}
