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

// Package matrix provides small square matrices built on ggmath vectors.
//
// A matrix stores its elements as N aligned vectors. The major type
// parameter picks what those vectors are:
//
//   - ColumnMajor: each vector is a column, matching GLSL and most GPU
//     uniform layouts.
//   - RowMajor: each vector is a row, matching DirectX and C arrays.
//
// Both majors describe the same mathematical matrix: At(i, j), Col, Row,
// Mul and MulVec give the same results whichever major is used. Only the
// memory order, and therefore the serialized form, differs.
package matrix

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ajroetker/go-ggmath/ggmath"
	"gopkg.in/yaml.v3"
)

// ErrSingular is returned when inverting a matrix whose determinant is zero
// or not finite.
var ErrSingular = errors.New("matrix: singular matrix")

// ColumnMajor stores a matrix as its columns.
type ColumnMajor struct{}

// RowMajor stores a matrix as its rows.
type RowMajor struct{}

// Major is the set of storage orders.
type Major interface {
	ColumnMajor | RowMajor
}

// columnMajor reports whether M is ColumnMajor.
func columnMajor[M Major]() bool {
	var m M
	_, ok := any(m).(ColumnMajor)
	return ok
}

// combine returns the sum of basis[k] scaled by coeffs[k].
func combine[T ggmath.Numbers, S ggmath.Storage[T]](basis []ggmath.Vector[T, S], coeffs []T) ggmath.Vector[T, S] {
	var r ggmath.Vector[T, S]
	for k, b := range basis {
		r = ggmath.Add(r, ggmath.MulScalar(b, coeffs[k]))
	}
	return r
}

func singular(det any) error {
	return fmt.Errorf("%w: determinant %v", ErrSingular, det)
}

func marshalAxesJSON[V any](axes []V) ([]byte, error) {
	return json.Marshal(axes)
}

func unmarshalAxesJSON[V any](data []byte, dst []V) error {
	var axes []V
	if err := json.Unmarshal(data, &axes); err != nil {
		return err
	}
	return setAxes(axes, dst)
}

func unmarshalAxesYAML[V any](node *yaml.Node, dst []V) error {
	var axes []V
	if err := node.Decode(&axes); err != nil {
		return err
	}
	return setAxes(axes, dst)
}

func setAxes[V any](axes, dst []V) error {
	if len(axes) != len(dst) {
		return fmt.Errorf("%w: got %d vectors, want %d", ggmath.ErrLaneCount, len(axes), len(dst))
	}
	copy(dst, axes)
	return nil
}
