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
	"math/bits"
	"strings"
)

// Mask is the result of a lane-wise comparison: one bit per logical lane.
// Lanes at or beyond Len are always clear.
type Mask struct {
	bits uint8
	n    uint8
}

// MaskFromBools builds a mask from up to four booleans.
func MaskFromBools(b ...bool) Mask {
	var m Mask
	m.n = uint8(min(len(b), 4))
	for i := range int(m.n) {
		if b[i] {
			m.bits |= 1 << i
		}
	}
	return m
}

// Len returns the number of lanes the mask covers.
func (m Mask) Len() int { return int(m.n) }

// Lane reports whether lane i is set. Out-of-range lanes are unset.
func (m Mask) Lane(i int) bool {
	return uint(i) < uint(m.n) && m.bits&(1<<i) != 0
}

// All reports whether every lane is set.
func (m Mask) All() bool { return m.bits == 1<<m.n-1 }

// Any reports whether at least one lane is set.
func (m Mask) Any() bool { return m.bits != 0 }

// CountTrue returns the number of set lanes.
func (m Mask) CountTrue() int { return bits.OnesCount8(m.bits) }

// Bits returns the mask as a bitset, lane i in bit i.
func (m Mask) Bits() uint8 { return m.bits }

// Bools returns the lanes as a slice of length Len.
func (m Mask) Bools() []bool {
	out := make([]bool, m.n)
	for i := range out {
		out[i] = m.Lane(i)
	}
	return out
}

// String formats the mask as "[true false true]".
func (m Mask) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range m.Len() {
		if i > 0 {
			b.WriteByte(' ')
		}
		if m.Lane(i) {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	}
	b.WriteByte(']')
	return b.String()
}

// ToVec2 converts a two-lane mask to a boolean vector.
func (m Mask) ToVec2() Vec2[bool] { return New2(m.Lane(0), m.Lane(1)) }

// ToVec3 converts a three-lane mask to a boolean vector.
func (m Mask) ToVec3() Vec3[bool] { return New3(m.Lane(0), m.Lane(1), m.Lane(2)) }

// ToVec4 converts a four-lane mask to a boolean vector.
func (m Mask) ToVec4() Vec4[bool] { return New4(m.Lane(0), m.Lane(1), m.Lane(2), m.Lane(3)) }

// MaskOf converts a boolean vector to a mask.
func MaskOf[T Boolean, S Storage[T]](v Vector[T, S]) Mask {
	var m Mask
	m.n = uint8(v.Len())
	for i, x := range v.Lanes() {
		if bool(x) {
			m.bits |= 1 << i
		}
	}
	return m
}

func compareMask[T Scalar, S Storage[T]](a, b Vector[T, S], f func(x, y T) bool) Mask {
	var m Mask
	m.n = uint8(a.Len())
	x, y := a.Lanes(), b.Lanes()
	for i := range x {
		if f(x[i], y[i]) {
			m.bits |= 1 << i
		}
	}
	return m
}

// Equal reports whether every logical lane of a equals the matching lane
// of b. NaN lanes are never equal.
func Equal[T Scalar, S Storage[T]](a, b Vector[T, S]) bool {
	if m, ok := compareFast(&a, &b, opEq); ok {
		return m.All()
	}
	x, y := a.Lanes(), b.Lanes()
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// NotEqual reports whether any logical lane of a differs from the matching
// lane of b. It is !Equal(a, b).
func NotEqual[T Scalar, S Storage[T]](a, b Vector[T, S]) bool {
	if m, ok := compareFast(&a, &b, opNe); ok {
		return m.Any()
	}
	return !Equal(a, b)
}

// EqMask sets lane i if a[i] == b[i].
func EqMask[T Scalar, S Storage[T]](a, b Vector[T, S]) Mask {
	if m, ok := compareFast(&a, &b, opEq); ok {
		return m
	}
	return compareMask(a, b, func(x, y T) bool { return x == y })
}

// NeMask sets lane i if a[i] != b[i].
func NeMask[T Scalar, S Storage[T]](a, b Vector[T, S]) Mask {
	if m, ok := compareFast(&a, &b, opNe); ok {
		return m
	}
	return compareMask(a, b, func(x, y T) bool { return x != y })
}

// LtMask sets lane i if a[i] < b[i].
func LtMask[T Numbers, S Storage[T]](a, b Vector[T, S]) Mask {
	if m, ok := compareFast(&a, &b, opLt); ok {
		return m
	}
	return compareMask(a, b, func(x, y T) bool { return x < y })
}

// LeMask sets lane i if a[i] <= b[i].
func LeMask[T Numbers, S Storage[T]](a, b Vector[T, S]) Mask {
	if m, ok := compareFast(&a, &b, opLe); ok {
		return m
	}
	return compareMask(a, b, func(x, y T) bool { return x <= y })
}

// GtMask sets lane i if a[i] > b[i].
func GtMask[T Numbers, S Storage[T]](a, b Vector[T, S]) Mask {
	if m, ok := compareFast(&a, &b, opGt); ok {
		return m
	}
	return compareMask(a, b, func(x, y T) bool { return x > y })
}

// GeMask sets lane i if a[i] >= b[i].
func GeMask[T Numbers, S Storage[T]](a, b Vector[T, S]) Mask {
	if m, ok := compareFast(&a, &b, opGe); ok {
		return m
	}
	return compareMask(a, b, func(x, y T) bool { return x >= y })
}

// Select returns, lane by lane, a where m is set and b elsewhere.
func Select[T Scalar, S Storage[T]](m Mask, a, b Vector[T, S]) Vector[T, S] {
	r := b
	out, x := r.Lanes(), a.Lanes()
	for i := range out {
		if m.Lane(i) {
			out[i] = x[i]
		}
	}
	return r
}
