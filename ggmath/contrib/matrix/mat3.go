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

// Mat3 is a 3×3 matrix stored as three aligned vectors: its columns when M
// is ColumnMajor, its rows when M is RowMajor.
type Mat3[T ggmath.Numbers, M Major] struct {
	axes [3]ggmath.Vec3[T]
}

// Identity3 returns the 3×3 identity matrix.
func Identity3[T ggmath.Numbers, M Major]() Mat3[T, M] {
	return Mat3[T, M]{axes: [3]ggmath.Vec3[T]{ggmath.Vec3X[T](), ggmath.Vec3Y[T](), ggmath.Vec3Z[T]()}}
}

// FromCols3 returns the matrix with columns c0, c1 and c2.
func FromCols3[T ggmath.Numbers, M Major](c0, c1, c2 ggmath.Vec3[T]) Mat3[T, M] {
	axes := [3]ggmath.Vec3[T]{c0, c1, c2}
	if !columnMajor[M]() {
		axes = transpose3(axes)
	}
	return Mat3[T, M]{axes: axes}
}

// FromRows3 returns the matrix with rows r0, r1 and r2.
func FromRows3[T ggmath.Numbers, M Major](r0, r1, r2 ggmath.Vec3[T]) Mat3[T, M] {
	axes := [3]ggmath.Vec3[T]{r0, r1, r2}
	if columnMajor[M]() {
		axes = transpose3(axes)
	}
	return Mat3[T, M]{axes: axes}
}

func transpose3[T ggmath.Numbers](a [3]ggmath.Vec3[T]) [3]ggmath.Vec3[T] {
	x, y, z := ggmath.ToArray3(a[0]), ggmath.ToArray3(a[1]), ggmath.ToArray3(a[2])
	return [3]ggmath.Vec3[T]{
		ggmath.New3(x[0], y[0], z[0]),
		ggmath.New3(x[1], y[1], z[1]),
		ggmath.New3(x[2], y[2], z[2]),
	}
}

// Axes returns the stored vectors: columns for ColumnMajor, rows for
// RowMajor.
func (m Mat3[T, M]) Axes() [3]ggmath.Vec3[T] { return m.axes }

// Col returns column j. It panics if j is out of range.
func (m Mat3[T, M]) Col(j int) ggmath.Vec3[T] {
	if columnMajor[M]() {
		return m.axes[j]
	}
	return transpose3(m.axes)[j]
}

// Row returns row i. It panics if i is out of range.
func (m Mat3[T, M]) Row(i int) ggmath.Vec3[T] {
	if columnMajor[M]() {
		return transpose3(m.axes)[i]
	}
	return m.axes[i]
}

// At returns the element in row i, column j.
func (m Mat3[T, M]) At(i, j int) T {
	if columnMajor[M]() {
		return ggmath.ToArray3(m.axes[j])[i]
	}
	return ggmath.ToArray3(m.axes[i])[j]
}

// Set stores x in row i, column j.
func (m *Mat3[T, M]) Set(i, j int, x T) {
	if columnMajor[M]() {
		m.axes[j].Lanes()[i] = x
		return
	}
	m.axes[i].Lanes()[j] = x
}

// Transpose returns the transpose of m.
func (m Mat3[T, M]) Transpose() Mat3[T, M] {
	return Mat3[T, M]{axes: transpose3(m.axes)}
}

// Add returns m + o.
func (m Mat3[T, M]) Add(o Mat3[T, M]) Mat3[T, M] {
	for i := range m.axes {
		m.axes[i] = ggmath.Add(m.axes[i], o.axes[i])
	}
	return m
}

// Sub returns m - o.
func (m Mat3[T, M]) Sub(o Mat3[T, M]) Mat3[T, M] {
	for i := range m.axes {
		m.axes[i] = ggmath.Sub(m.axes[i], o.axes[i])
	}
	return m
}

// Scale returns m with every element multiplied by s.
func (m Mat3[T, M]) Scale(s T) Mat3[T, M] {
	for i := range m.axes {
		m.axes[i] = ggmath.MulScalar(m.axes[i], s)
	}
	return m
}

// Mul returns the matrix product m × o.
func (m Mat3[T, M]) Mul(o Mat3[T, M]) Mat3[T, M] {
	basis, coeffs := m.axes, o.axes
	if !columnMajor[M]() {
		basis, coeffs = o.axes, m.axes
	}
	var r Mat3[T, M]
	for i := range r.axes {
		c := ggmath.ToArray3(coeffs[i])
		r.axes[i] = combine(basis[:], c[:])
	}
	return r
}

// MulVec returns the product of m and the column vector v.
func (m Mat3[T, M]) MulVec(v ggmath.Vec3[T]) ggmath.Vec3[T] {
	if columnMajor[M]() {
		c := ggmath.ToArray3(v)
		return combine(m.axes[:], c[:])
	}
	return ggmath.New3(ggmath.Dot(m.axes[0], v), ggmath.Dot(m.axes[1], v), ggmath.Dot(m.axes[2], v))
}

// Determinant returns the determinant of m.
func (m Mat3[T, M]) Determinant() T {
	// The determinant of a matrix equals that of its transpose, so the
	// stored vectors can be used directly in either major.
	return ggmath.Dot(m.axes[0], ggmath.Cross(m.axes[1], m.axes[2]))
}

// Inverse3 returns the inverse of m, or an error wrapping ErrSingular if m
// has no finite inverse.
func Inverse3[T ggmath.Floats, M Major](m Mat3[T, M]) (Mat3[T, M], error) {
	a, b, c := m.axes[0], m.axes[1], m.axes[2]
	bc, ca, ab := ggmath.Cross(b, c), ggmath.Cross(c, a), ggmath.Cross(a, b)
	det := ggmath.Dot(a, bc)
	if det == 0 || math.IsInf(float64(det), 0) || math.IsNaN(float64(det)) {
		return Mat3[T, M]{}, singular(det)
	}
	inv := 1 / det
	// bc, ca and ab scaled by 1/det are the rows of the inverse of the
	// matrix whose columns are a, b and c.
	rows := [3]ggmath.Vec3[T]{
		ggmath.MulScalar(bc, inv),
		ggmath.MulScalar(ca, inv),
		ggmath.MulScalar(ab, inv),
	}
	return Mat3[T, M]{axes: transpose3(rows)}, nil
}

// MarshalJSON encodes m as a JSON array of its stored vectors.
func (m Mat3[T, M]) MarshalJSON() ([]byte, error) { return marshalAxesJSON(m.axes[:]) }

// UnmarshalJSON decodes a JSON array of exactly three vectors.
func (m *Mat3[T, M]) UnmarshalJSON(data []byte) error {
	return unmarshalAxesJSON(data, m.axes[:])
}

// MarshalYAML encodes m as a YAML sequence of its stored vectors.
func (m Mat3[T, M]) MarshalYAML() (any, error) { return m.axes[:], nil }

// UnmarshalYAML decodes a YAML sequence of exactly three vectors.
func (m *Mat3[T, M]) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalAxesYAML(node, m.axes[:])
}
