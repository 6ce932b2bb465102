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

// Mat4 is a 4×4 matrix stored as four aligned vectors: its columns when M
// is ColumnMajor, its rows when M is RowMajor.
type Mat4[T ggmath.Numbers, M Major] struct {
	axes [4]ggmath.Vec4[T]
}

// Identity4 returns the 4×4 identity matrix.
func Identity4[T ggmath.Numbers, M Major]() Mat4[T, M] {
	return Mat4[T, M]{axes: [4]ggmath.Vec4[T]{ggmath.Vec4X[T](), ggmath.Vec4Y[T](), ggmath.Vec4Z[T](), ggmath.Vec4W[T]()}}
}

// FromCols4 returns the matrix with columns c0 through c3.
func FromCols4[T ggmath.Numbers, M Major](c0, c1, c2, c3 ggmath.Vec4[T]) Mat4[T, M] {
	axes := [4]ggmath.Vec4[T]{c0, c1, c2, c3}
	if !columnMajor[M]() {
		axes = transpose4(axes)
	}
	return Mat4[T, M]{axes: axes}
}

// FromRows4 returns the matrix with rows r0 through r3.
func FromRows4[T ggmath.Numbers, M Major](r0, r1, r2, r3 ggmath.Vec4[T]) Mat4[T, M] {
	axes := [4]ggmath.Vec4[T]{r0, r1, r2, r3}
	if columnMajor[M]() {
		axes = transpose4(axes)
	}
	return Mat4[T, M]{axes: axes}
}

func transpose4[T ggmath.Numbers](a [4]ggmath.Vec4[T]) [4]ggmath.Vec4[T] {
	e := elements4(a)
	var r [4]ggmath.Vec4[T]
	for i := range r {
		r[i] = ggmath.FromArray4(e[i])
	}
	return r
}

// elements4 returns e with e[i][j] = lane i of a[j].
func elements4[T ggmath.Numbers](a [4]ggmath.Vec4[T]) [4][4]T {
	var e [4][4]T
	for j, v := range a {
		for i, x := range ggmath.ToArray4(v) {
			e[i][j] = x
		}
	}
	return e
}

// Axes returns the stored vectors: columns for ColumnMajor, rows for
// RowMajor.
func (m Mat4[T, M]) Axes() [4]ggmath.Vec4[T] { return m.axes }

// Col returns column j. It panics if j is out of range.
func (m Mat4[T, M]) Col(j int) ggmath.Vec4[T] {
	if columnMajor[M]() {
		return m.axes[j]
	}
	return transpose4(m.axes)[j]
}

// Row returns row i. It panics if i is out of range.
func (m Mat4[T, M]) Row(i int) ggmath.Vec4[T] {
	if columnMajor[M]() {
		return transpose4(m.axes)[i]
	}
	return m.axes[i]
}

// At returns the element in row i, column j.
func (m Mat4[T, M]) At(i, j int) T {
	if columnMajor[M]() {
		return ggmath.ToArray4(m.axes[j])[i]
	}
	return ggmath.ToArray4(m.axes[i])[j]
}

// Set stores x in row i, column j.
func (m *Mat4[T, M]) Set(i, j int, x T) {
	if columnMajor[M]() {
		m.axes[j].Lanes()[i] = x
		return
	}
	m.axes[i].Lanes()[j] = x
}

// Transpose returns the transpose of m.
func (m Mat4[T, M]) Transpose() Mat4[T, M] {
	return Mat4[T, M]{axes: transpose4(m.axes)}
}

// Add returns m + o.
func (m Mat4[T, M]) Add(o Mat4[T, M]) Mat4[T, M] {
	for i := range m.axes {
		m.axes[i] = ggmath.Add(m.axes[i], o.axes[i])
	}
	return m
}

// Sub returns m - o.
func (m Mat4[T, M]) Sub(o Mat4[T, M]) Mat4[T, M] {
	for i := range m.axes {
		m.axes[i] = ggmath.Sub(m.axes[i], o.axes[i])
	}
	return m
}

// Scale returns m with every element multiplied by s.
func (m Mat4[T, M]) Scale(s T) Mat4[T, M] {
	for i := range m.axes {
		m.axes[i] = ggmath.MulScalar(m.axes[i], s)
	}
	return m
}

// Mul returns the matrix product m × o.
func (m Mat4[T, M]) Mul(o Mat4[T, M]) Mat4[T, M] {
	basis, coeffs := m.axes, o.axes
	if !columnMajor[M]() {
		basis, coeffs = o.axes, m.axes
	}
	var r Mat4[T, M]
	for i := range r.axes {
		c := ggmath.ToArray4(coeffs[i])
		r.axes[i] = combine(basis[:], c[:])
	}
	return r
}

// MulVec returns the product of m and the column vector v.
func (m Mat4[T, M]) MulVec(v ggmath.Vec4[T]) ggmath.Vec4[T] {
	if columnMajor[M]() {
		c := ggmath.ToArray4(v)
		return combine(m.axes[:], c[:])
	}
	return ggmath.New4(ggmath.Dot(m.axes[0], v), ggmath.Dot(m.axes[1], v), ggmath.Dot(m.axes[2], v), ggmath.Dot(m.axes[3], v))
}

// minors4 holds the 2×2 minors of the top and bottom row pairs of a 4×4
// matrix, from which both the determinant and the adjugate follow.
type minors4[T ggmath.Numbers] struct {
	s, c [6]T
}

func newMinors4[T ggmath.Numbers](a *[4][4]T) minors4[T] {
	var m minors4[T]
	m.s[0] = a[0][0]*a[1][1] - a[1][0]*a[0][1]
	m.s[1] = a[0][0]*a[1][2] - a[1][0]*a[0][2]
	m.s[2] = a[0][0]*a[1][3] - a[1][0]*a[0][3]
	m.s[3] = a[0][1]*a[1][2] - a[1][1]*a[0][2]
	m.s[4] = a[0][1]*a[1][3] - a[1][1]*a[0][3]
	m.s[5] = a[0][2]*a[1][3] - a[1][2]*a[0][3]

	m.c[0] = a[2][0]*a[3][1] - a[3][0]*a[2][1]
	m.c[1] = a[2][0]*a[3][2] - a[3][0]*a[2][2]
	m.c[2] = a[2][0]*a[3][3] - a[3][0]*a[2][3]
	m.c[3] = a[2][1]*a[3][2] - a[3][1]*a[2][2]
	m.c[4] = a[2][1]*a[3][3] - a[3][1]*a[2][3]
	m.c[5] = a[2][2]*a[3][3] - a[3][2]*a[2][3]
	return m
}

func (m minors4[T]) det() T {
	s, c := m.s, m.c
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Determinant returns the determinant of m.
func (m Mat4[T, M]) Determinant() T {
	e := elements4(m.axes)
	return newMinors4(&e).det()
}

// Inverse4 returns the inverse of m, or an error wrapping ErrSingular if m
// has no finite inverse.
func Inverse4[T ggmath.Floats, M Major](m Mat4[T, M]) (Mat4[T, M], error) {
	// a is the matrix whose columns are the stored vectors. The columns of
	// its inverse are the stored vectors of the result in either major.
	a := elements4(m.axes)
	mn := newMinors4(&a)
	det := mn.det()
	if det == 0 || math.IsInf(float64(det), 0) || math.IsNaN(float64(det)) {
		return Mat4[T, M]{}, singular(det)
	}
	s, c := mn.s, mn.c

	var b [4][4]T
	b[0][0] = a[1][1]*c[5] - a[1][2]*c[4] + a[1][3]*c[3]
	b[0][1] = -a[0][1]*c[5] + a[0][2]*c[4] - a[0][3]*c[3]
	b[0][2] = a[3][1]*s[5] - a[3][2]*s[4] + a[3][3]*s[3]
	b[0][3] = -a[2][1]*s[5] + a[2][2]*s[4] - a[2][3]*s[3]

	b[1][0] = -a[1][0]*c[5] + a[1][2]*c[2] - a[1][3]*c[1]
	b[1][1] = a[0][0]*c[5] - a[0][2]*c[2] + a[0][3]*c[1]
	b[1][2] = -a[3][0]*s[5] + a[3][2]*s[2] - a[3][3]*s[1]
	b[1][3] = a[2][0]*s[5] - a[2][2]*s[2] + a[2][3]*s[1]

	b[2][0] = a[1][0]*c[4] - a[1][1]*c[2] + a[1][3]*c[0]
	b[2][1] = -a[0][0]*c[4] + a[0][1]*c[2] - a[0][3]*c[0]
	b[2][2] = a[3][0]*s[4] - a[3][1]*s[2] + a[3][3]*s[0]
	b[2][3] = -a[2][0]*s[4] + a[2][1]*s[2] - a[2][3]*s[0]

	b[3][0] = -a[1][0]*c[3] + a[1][1]*c[1] - a[1][2]*c[0]
	b[3][1] = a[0][0]*c[3] - a[0][1]*c[1] + a[0][2]*c[0]
	b[3][2] = -a[3][0]*s[3] + a[3][1]*s[1] - a[3][2]*s[0]
	b[3][3] = a[2][0]*s[3] - a[2][1]*s[1] + a[2][2]*s[0]

	inv := 1 / det
	var r Mat4[T, M]
	for j := range r.axes {
		r.axes[j] = ggmath.MulScalar(ggmath.New4(b[0][j], b[1][j], b[2][j], b[3][j]), inv)
	}
	return r, nil
}

// MarshalJSON encodes m as a JSON array of its stored vectors.
func (m Mat4[T, M]) MarshalJSON() ([]byte, error) { return marshalAxesJSON(m.axes[:]) }

// UnmarshalJSON decodes a JSON array of exactly four vectors.
func (m *Mat4[T, M]) UnmarshalJSON(data []byte) error {
	return unmarshalAxesJSON(data, m.axes[:])
}

// MarshalYAML encodes m as a YAML sequence of its stored vectors.
func (m Mat4[T, M]) MarshalYAML() (any, error) { return m.axes[:], nil }

// UnmarshalYAML decodes a YAML sequence of exactly four vectors.
func (m *Mat4[T, M]) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalAxesYAML(node, m.axes[:])
}
