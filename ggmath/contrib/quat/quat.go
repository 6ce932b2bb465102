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

// Package quat provides quaternions for 3D rotation, stored in an aligned
// ggmath.Vec4 as (x, y, z, w) with w the scalar part.
package quat

import (
	"math"
	"unsafe"

	"github.com/ajroetker/go-ggmath/ggmath"
	"github.com/ajroetker/go-ggmath/ggmath/contrib/matrix"
	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"
)

// slerpLinearThreshold is the cosine above which Slerp falls back to a
// normalized linear interpolation, where sin(θ) is too small to divide by.
const slerpLinearThreshold = 0.9995

// Quat is a quaternion x·i + y·j + z·k + w.
type Quat[T ggmath.Floats] struct {
	v ggmath.Vec4[T]
}

// Identity returns the quaternion of the null rotation.
func Identity[T ggmath.Floats]() Quat[T] {
	return Quat[T]{v: ggmath.Vec4W[T]()}
}

// FromXYZW returns the quaternion with the given components.
func FromXYZW[T ggmath.Floats](x, y, z, w T) Quat[T] {
	return Quat[T]{v: ggmath.New4(x, y, z, w)}
}

// FromVec4 returns the quaternion whose components are the lanes of v.
func FromVec4[T ggmath.Floats](v ggmath.Vec4[T]) Quat[T] {
	return Quat[T]{v: v}
}

// FromAxisAngle returns the rotation by angle radians around axis, which
// need not be normalized. A zero or non-finite axis yields Identity.
func FromAxisAngle[T ggmath.Floats](axis ggmath.Vec3[T], angle T) Quat[T] {
	n, ok := ggmath.TryNormalize(axis)
	if !ok {
		return Identity[T]()
	}
	half := angle / 2
	n = ggmath.MulScalar(n, sin(half))
	return FromXYZW(ggmath.X(n), ggmath.Y(n), ggmath.Z(n), cos(half))
}

// X returns the i component.
func (q Quat[T]) X() T { return ggmath.X(q.v) }

// Y returns the j component.
func (q Quat[T]) Y() T { return ggmath.Y(q.v) }

// Z returns the k component.
func (q Quat[T]) Z() T { return ggmath.Z(q.v) }

// W returns the scalar part.
func (q Quat[T]) W() T { return ggmath.W(q.v) }

// XYZ returns the vector part.
func (q Quat[T]) XYZ() ggmath.Vec3[T] { return ggmath.XYZ(q.v) }

// Vec4 returns the components as (x, y, z, w).
func (q Quat[T]) Vec4() ggmath.Vec4[T] { return q.v }

// String formats q like its Vec4.
func (q Quat[T]) String() string { return q.v.String() }

// Mul returns the Hamilton product q × o, the rotation o followed by q.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	u, w := q.XYZ(), q.W()
	ou, ow := o.XYZ(), o.W()
	xyz := ggmath.Add(
		ggmath.Add(ggmath.MulScalar(ou, w), ggmath.MulScalar(u, ow)),
		ggmath.Cross(u, ou),
	)
	return Quat[T]{v: ggmath.Vec4From3_1(xyz, w*ow-ggmath.Dot(u, ou))}
}

// Conjugate returns (-x, -y, -z, w).
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{v: ggmath.Mul(q.v, ggmath.New4[T](-1, -1, -1, 1))}
}

// Dot returns the four-dimensional dot product of q and o.
func (q Quat[T]) Dot(o Quat[T]) T { return ggmath.Dot(q.v, o.v) }

// LengthSquared returns the squared norm of q.
func (q Quat[T]) LengthSquared() T { return ggmath.LengthSquared(q.v) }

// Length returns the norm of q.
func (q Quat[T]) Length() T { return ggmath.Length(q.v) }

// Normalize returns q scaled to unit length. It reports false, and returns
// q unchanged, if q has zero or non-finite length.
func (q Quat[T]) Normalize() (Quat[T], bool) {
	v, ok := ggmath.TryNormalize(q.v)
	if !ok {
		return q, false
	}
	return Quat[T]{v: v}, true
}

// IsNormalized reports whether q has unit length within tolerance.
func (q Quat[T]) IsNormalized(tolerance T) bool {
	d := q.LengthSquared() - 1
	return d <= tolerance && -d <= tolerance
}

// Inverse returns the multiplicative inverse of q. It reports false if q
// is zero.
func (q Quat[T]) Inverse() (Quat[T], bool) {
	n := q.LengthSquared()
	if n == 0 || math.IsInf(float64(n), 0) || math.IsNaN(float64(n)) {
		return Quat[T]{}, false
	}
	return Quat[T]{v: ggmath.DivScalar(q.Conjugate().v, n)}, true
}

// Rotate returns v rotated by q, which must be normalized.
func (q Quat[T]) Rotate(v ggmath.Vec3[T]) ggmath.Vec3[T] {
	// v + 2w(u × v) + 2u × (u × v)
	u, w := q.XYZ(), q.W()
	t := ggmath.MulScalar(ggmath.Cross(u, v), 2)
	return ggmath.Add(ggmath.Add(v, ggmath.MulScalar(t, w)), ggmath.Cross(u, t))
}

// Slerp returns the spherical linear interpolation from a to b at t, along
// the shorter arc. a and b must be normalized.
func Slerp[T ggmath.Floats](a, b Quat[T], t T) Quat[T] {
	d := a.Dot(b)
	if d < 0 {
		b.v = ggmath.Neg(b.v)
		d = -d
	}
	if d > slerpLinearThreshold {
		r, ok := Quat[T]{v: ggmath.Lerp(a.v, b.v, t)}.Normalize()
		if !ok {
			return a
		}
		return r
	}
	theta0 := acos(d)
	theta := theta0 * t
	s := sin(theta) / sin(theta0)
	s0 := cos(theta) - d*s
	return Quat[T]{v: ggmath.Add(ggmath.MulScalar(a.v, s0), ggmath.MulScalar(b.v, s))}
}

// ToMat3 returns the rotation matrix of q, which must be normalized.
func ToMat3[M matrix.Major, T ggmath.Floats](q Quat[T]) matrix.Mat3[T, M] {
	return matrix.FromCols3[T, M](
		q.Rotate(ggmath.Vec3X[T]()),
		q.Rotate(ggmath.Vec3Y[T]()),
		q.Rotate(ggmath.Vec3Z[T]()),
	)
}

// MarshalJSON encodes q as [x, y, z, w].
func (q Quat[T]) MarshalJSON() ([]byte, error) { return q.v.MarshalJSON() }

// UnmarshalJSON decodes [x, y, z, w].
func (q *Quat[T]) UnmarshalJSON(data []byte) error { return q.v.UnmarshalJSON(data) }

// MarshalYAML encodes q as the sequence [x, y, z, w].
func (q Quat[T]) MarshalYAML() (any, error) { return q.v.MarshalYAML() }

// UnmarshalYAML decodes the sequence [x, y, z, w].
func (q *Quat[T]) UnmarshalYAML(node *yaml.Node) error { return q.v.UnmarshalYAML(node) }

func sin[T ggmath.Floats](x T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(math32.Sin(float32(x)))
	}
	return T(math.Sin(float64(x)))
}

func cos[T ggmath.Floats](x T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(math32.Cos(float32(x)))
	}
	return T(math.Cos(float64(x)))
}

func acos[T ggmath.Floats](x T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(math32.Acos(float32(x)))
	}
	return T(math.Acos(float64(x)))
}
