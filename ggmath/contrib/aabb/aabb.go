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

// Package aabb provides axis-aligned bounding boxes over ggmath.Vec3.
//
// A box is stored as two vectors whose meaning depends on its
// representation type:
//
//   - MinSize: the minimum corner and the size.
//   - CenterExtents: the center and the half-size.
//   - MinMax: the minimum and maximum corners.
//
// Every accessor is available in every representation; only the two
// stored vectors are read directly, the rest are derived. For integer
// lanes, derived centers and extents round toward zero.
package aabb

import (
	"encoding/json"
	"fmt"

	"github.com/ajroetker/go-ggmath/ggmath"
	"gopkg.in/yaml.v3"
)

// MinSize stores a box as its minimum corner and size.
type MinSize struct{}

// CenterExtents stores a box as its center and half-size.
type CenterExtents struct{}

// MinMax stores a box as its minimum and maximum corners.
type MinMax struct{}

// Repr is the set of box representations.
type Repr interface {
	MinSize | CenterExtents | MinMax
}

type kind uint8

const (
	minSize kind = iota
	centerExtents
	minMax
)

func kindOf[R Repr]() kind {
	var r R
	switch any(r).(type) {
	case MinSize:
		return minSize
	case CenterExtents:
		return centerExtents
	}
	return minMax
}

// Aabb is an axis-aligned box in representation R.
type Aabb[T ggmath.Numbers, R Repr] struct {
	a, b ggmath.Vec3[T]
}

// FromMinSize returns the box with minimum corner lo and the given size.
func FromMinSize[T ggmath.Numbers](lo, size ggmath.Vec3[T]) Aabb[T, MinSize] {
	return Aabb[T, MinSize]{a: lo, b: size}
}

// FromCenterExtents returns the box centered at center that reaches
// extents away from it along each axis.
func FromCenterExtents[T ggmath.Numbers](center, extents ggmath.Vec3[T]) Aabb[T, CenterExtents] {
	return Aabb[T, CenterExtents]{a: center, b: extents}
}

// FromMinMax returns the box with minimum corner lo and maximum corner hi.
func FromMinMax[T ggmath.Numbers](lo, hi ggmath.Vec3[T]) Aabb[T, MinMax] {
	return Aabb[T, MinMax]{a: lo, b: hi}
}

// fromCorners builds a box in representation R from its corners.
func fromCorners[T ggmath.Numbers, R Repr](lo, hi ggmath.Vec3[T]) Aabb[T, R] {
	switch kindOf[R]() {
	case minSize:
		return Aabb[T, R]{a: lo, b: ggmath.Sub(hi, lo)}
	case centerExtents:
		half := ggmath.DivScalar(ggmath.Sub(hi, lo), 2)
		return Aabb[T, R]{a: ggmath.Add(lo, half), b: half}
	}
	return Aabb[T, R]{a: lo, b: hi}
}

// Convert returns b in representation To.
func Convert[To Repr, T ggmath.Numbers, R Repr](b Aabb[T, R]) Aabb[T, To] {
	if kindOf[To]() == kindOf[R]() {
		return Aabb[T, To]{a: b.a, b: b.b}
	}
	return fromCorners[T, To](b.Min(), b.Max())
}

// Vectors returns the two stored vectors.
func (b Aabb[T, R]) Vectors() (ggmath.Vec3[T], ggmath.Vec3[T]) { return b.a, b.b }

// Min returns the minimum corner.
func (b Aabb[T, R]) Min() ggmath.Vec3[T] {
	if kindOf[R]() == centerExtents {
		return ggmath.Sub(b.a, b.b)
	}
	return b.a
}

// Max returns the maximum corner.
func (b Aabb[T, R]) Max() ggmath.Vec3[T] {
	if kindOf[R]() == minMax {
		return b.b
	}
	return ggmath.Add(b.a, b.b)
}

// Size returns Max - Min.
func (b Aabb[T, R]) Size() ggmath.Vec3[T] {
	switch kindOf[R]() {
	case minSize:
		return b.b
	case centerExtents:
		return ggmath.MulScalar(b.b, 2)
	}
	return ggmath.Sub(b.b, b.a)
}

// Center returns the midpoint of the box.
func (b Aabb[T, R]) Center() ggmath.Vec3[T] {
	if kindOf[R]() == centerExtents {
		return b.a
	}
	return ggmath.Add(b.Min(), b.Extents())
}

// Extents returns half of Size.
func (b Aabb[T, R]) Extents() ggmath.Vec3[T] {
	if kindOf[R]() == centerExtents {
		return b.b
	}
	return ggmath.DivScalar(b.Size(), 2)
}

// IsEmpty reports whether Max is below Min along some axis.
func (b Aabb[T, R]) IsEmpty() bool {
	return ggmath.LtMask(b.Max(), b.Min()).Any()
}

// ContainsPoint reports whether p lies inside b, boundary included.
func (b Aabb[T, R]) ContainsPoint(p ggmath.Vec3[T]) bool {
	return ggmath.LeMask(b.Min(), p).All() && ggmath.LeMask(p, b.Max()).All()
}

// Intersects reports whether b and o share at least one point.
func (b Aabb[T, R]) Intersects(o Aabb[T, R]) bool {
	return ggmath.LeMask(b.Min(), o.Max()).All() && ggmath.LeMask(o.Min(), b.Max()).All()
}

// Union returns the smallest box containing both b and o.
func (b Aabb[T, R]) Union(o Aabb[T, R]) Aabb[T, R] {
	return fromCorners[T, R](ggmath.Min(b.Min(), o.Min()), ggmath.Max(b.Max(), o.Max()))
}

// Intersection returns the box shared by b and o. It reports false if they
// do not intersect.
func (b Aabb[T, R]) Intersection(o Aabb[T, R]) (Aabb[T, R], bool) {
	if !b.Intersects(o) {
		return Aabb[T, R]{}, false
	}
	return fromCorners[T, R](ggmath.Max(b.Min(), o.Min()), ggmath.Min(b.Max(), o.Max())), true
}

// ExpandToInclude returns the smallest box containing b and p.
func (b Aabb[T, R]) ExpandToInclude(p ggmath.Vec3[T]) Aabb[T, R] {
	return fromCorners[T, R](ggmath.Min(b.Min(), p), ggmath.Max(b.Max(), p))
}

// String formats b with the names of its stored vectors.
func (b Aabb[T, R]) String() string {
	switch kindOf[R]() {
	case minSize:
		return fmt.Sprintf("{min: %v, size: %v}", b.a, b.b)
	case centerExtents:
		return fmt.Sprintf("{center: %v, extents: %v}", b.a, b.b)
	}
	return fmt.Sprintf("{min: %v, max: %v}", b.a, b.b)
}

// MarshalJSON encodes b as the JSON array of its two stored vectors.
func (b Aabb[T, R]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]ggmath.Vec3[T]{b.a, b.b})
}

// UnmarshalJSON decodes a JSON array of exactly two vectors.
func (b *Aabb[T, R]) UnmarshalJSON(data []byte) error {
	var pair []ggmath.Vec3[T]
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	return b.setPair(pair)
}

// MarshalYAML encodes b as the YAML sequence of its two stored vectors.
func (b Aabb[T, R]) MarshalYAML() (any, error) {
	return []ggmath.Vec3[T]{b.a, b.b}, nil
}

// UnmarshalYAML decodes a YAML sequence of exactly two vectors.
func (b *Aabb[T, R]) UnmarshalYAML(node *yaml.Node) error {
	var pair []ggmath.Vec3[T]
	if err := node.Decode(&pair); err != nil {
		return err
	}
	return b.setPair(pair)
}

func (b *Aabb[T, R]) setPair(pair []ggmath.Vec3[T]) error {
	if len(pair) != 2 {
		return fmt.Errorf("%w: got %d vectors, want 2", ggmath.ErrLaneCount, len(pair))
	}
	b.a, b.b = pair[0], pair[1]
	return nil
}
