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

package matrix

import (
	"math"

	"github.com/ajroetker/go-ggmath/ggmath"
	"gopkg.in/yaml.v3"
)

// Mat2 is a 2×2 matrix stored as two aligned vectors: its columns when M
// is ColumnMajor, its rows when M is RowMajor.
type Mat2[T ggmath.Numbers, M Major] struct {
	axes [2]ggmath.Vec2[T]
}

// Identity2 returns the 2×2 identity matrix.
func Identity2[T ggmath.Numbers, M Major]() Mat2[T, M] {
	return Mat2[T, M]{axes: [2]ggmath.Vec2[T]{ggmath.Vec2X[T](), ggmath.Vec2Y[T]()}}
}

// FromCols2 returns the matrix with columns c0 and c1.
func FromCols2[T ggmath.Numbers, M Major](c0, c1 ggmath.Vec2[T]) Mat2[T, M] {
	axes := [2]ggmath.Vec2[T]{c0, c1}
	if !columnMajor[M]() {
		axes = transpose2(axes)
	}
	return Mat2[T, M]{axes: axes}
}

// FromRows2 returns the matrix with rows r0 and r1.
func FromRows2[T ggmath.Numbers, M Major](r0, r1 ggmath.Vec2[T]) Mat2[T, M] {
	axes := [2]ggmath.Vec2[T]{r0, r1}
	if columnMajor[M]() {
		axes = transpose2(axes)
	}
	return Mat2[T, M]{axes: axes}
}

func transpose2[T ggmath.Numbers](a [2]ggmath.Vec2[T]) [2]ggmath.Vec2[T] {
	x, y := ggmath.ToArray2(a[0]), ggmath.ToArray2(a[1])
	return [2]ggmath.Vec2[T]{ggmath.New2(x[0], y[0]), ggmath.New2(x[1], y[1])}
}

// Axes returns the stored vectors: columns for ColumnMajor, rows for
// RowMajor.
func (m Mat2[T, M]) Axes() [2]ggmath.Vec2[T] { return m.axes }

// Col returns column j. It panics if j is out of range.
func (m Mat2[T, M]) Col(j int) ggmath.Vec2[T] {
	if columnMajor[M]() {
		return m.axes[j]
	}
	return transpose2(m.axes)[j]
}

// Row returns row i. It panics if i is out of range.
func (m Mat2[T, M]) Row(i int) ggmath.Vec2[T] {
	if columnMajor[M]() {
		return transpose2(m.axes)[i]
	}
	return m.axes[i]
}

// At returns the element in row i, column j.
func (m Mat2[T, M]) At(i, j int) T {
	if columnMajor[M]() {
		return ggmath.ToArray2(m.axes[j])[i]
	}
	return ggmath.ToArray2(m.axes[i])[j]
}

// Set stores x in row i, column j.
func (m *Mat2[T, M]) Set(i, j int, x T) {
	if columnMajor[M]() {
		m.axes[j].Lanes()[i] = x
		return
	}
	m.axes[i].Lanes()[j] = x
}

// Transpose returns the transpose of m.
func (m Mat2[T, M]) Transpose() Mat2[T, M] {
	return Mat2[T, M]{axes: transpose2(m.axes)}
}

// Add returns m + o.
func (m Mat2[T, M]) Add(o Mat2[T, M]) Mat2[T, M] {
	for i := range m.axes {
		m.axes[i] = ggmath.Add(m.axes[i], o.axes[i])
	}
	return m
}

// Sub returns m - o.
func (m Mat2[T, M]) Sub(o Mat2[T, M]) Mat2[T, M] {
	for i := range m.axes {
		m.axes[i] = ggmath.Sub(m.axes[i], o.axes[i])
	}
	return m
}

// Scale returns m with every element multiplied by s.
func (m Mat2[T, M]) Scale(s T) Mat2[T, M] {
	for i := range m.axes {
		m.axes[i] = ggmath.MulScalar(m.axes[i], s)
	}
	return m
}

// Mul returns the matrix product m × o.
func (m Mat2[T, M]) Mul(o Mat2[T, M]) Mat2[T, M] {
	basis, coeffs := m.axes, o.axes
	if !columnMajor[M]() {
		basis, coeffs = o.axes, m.axes
	}
	var r Mat2[T, M]
	for i := range r.axes {
		c := ggmath.ToArray2(coeffs[i])
		r.axes[i] = combine(basis[:], c[:])
	}
	return r
}

// MulVec returns the product of m and the column vector v.
func (m Mat2[T, M]) MulVec(v ggmath.Vec2[T]) ggmath.Vec2[T] {
	if columnMajor[M]() {
		c := ggmath.ToArray2(v)
		return combine(m.axes[:], c[:])
	}
	return ggmath.New2(ggmath.Dot(m.axes[0], v), ggmath.Dot(m.axes[1], v))
}

// Determinant returns the determinant of m.
func (m Mat2[T, M]) Determinant() T {
	return ggmath.PerpDot(m.axes[0], m.axes[1])
}

// Inverse2 returns the inverse of m, or an error wrapping ErrSingular if m
// has no finite inverse.
func Inverse2[T ggmath.Floats, M Major](m Mat2[T, M]) (Mat2[T, M], error) {
	a, b := ggmath.ToArray2(m.axes[0]), ggmath.ToArray2(m.axes[1])
	det := a[0]*b[1] - a[1]*b[0]
	if det == 0 || math.IsInf(float64(det), 0) || math.IsNaN(float64(det)) {
		return Mat2[T, M]{}, singular(det)
	}
	inv := 1 / det
	return Mat2[T, M]{axes: [2]ggmath.Vec2[T]{
		ggmath.New2(b[1]*inv, -a[1]*inv),
		ggmath.New2(-b[0]*inv, a[0]*inv),
	}}, nil
}

// MarshalJSON encodes m as a JSON array of its stored vectors.
func (m Mat2[T, M]) MarshalJSON() ([]byte, error) { return marshalAxesJSON(m.axes[:]) }

// UnmarshalJSON decodes a JSON array of exactly two vectors.
func (m *Mat2[T, M]) UnmarshalJSON(data []byte) error {
	return unmarshalAxesJSON(data, m.axes[:])
}

// MarshalYAML encodes m as a YAML sequence of its stored vectors.
func (m Mat2[T, M]) MarshalYAML() (any, error) { return m.axes[:], nil }

// UnmarshalYAML decodes a YAML sequence of exactly two vectors.
func (m *Mat2[T, M]) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalAxesYAML(node, m.axes[:])
}
