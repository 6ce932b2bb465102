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
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"reflect"
	"unsafe"

	"gopkg.in/yaml.v3"
)

// Every wire format carries the N logical lanes only. The layout, and the
// padding lane of an aligned three-lane vector, is never persisted, so a
// vector decodes into either layout.

// MarshalJSON encodes v as a JSON array of its lanes. Lanes are encoded one
// by one so that byte-sized lanes form an array rather than a base64 string.
func (v Vector[T, S]) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	for i, x := range v.Lanes() {
		if i > 0 {
			b = append(b, ',')
		}
		lane, err := json.Marshal(x)
		if err != nil {
			return nil, err
		}
		b = append(b, lane...)
	}
	return append(b, ']'), nil
}

// UnmarshalJSON decodes a JSON array holding exactly Len() values. A JSON
// null leaves v unchanged.
func (v *Vector[T, S]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	lanes := make([]T, len(raw))
	for i, r := range raw {
		if err := json.Unmarshal(r, &lanes[i]); err != nil {
			return err
		}
	}
	return v.setLanes(lanes)
}

// MarshalYAML encodes v as a YAML sequence of its lanes.
func (v Vector[T, S]) MarshalYAML() (any, error) {
	return v.Slice(), nil
}

// UnmarshalYAML decodes a YAML sequence holding exactly Len() values.
func (v *Vector[T, S]) UnmarshalYAML(node *yaml.Node) error {
	var lanes []T
	if err := node.Decode(&lanes); err != nil {
		return err
	}
	return v.setLanes(lanes)
}

// MarshalBinary encodes the lanes of v in little-endian order with no
// padding. int, uint and uintptr lanes are written as 64-bit values so the
// encoding does not depend on the platform word size.
func (v Vector[T, S]) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, binarySize[T]()*v.Len()))
}

// AppendBinary appends the MarshalBinary encoding of v to b.
func (v Vector[T, S]) AppendBinary(b []byte) ([]byte, error) {
	lanes := v.Lanes()
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int:
		for _, x := range lanes {
			b = binary.LittleEndian.AppendUint64(b, uint64(reflect.ValueOf(x).Int()))
		}
		return b, nil
	case reflect.Uint, reflect.Uintptr:
		for _, x := range lanes {
			b = binary.LittleEndian.AppendUint64(b, reflect.ValueOf(x).Uint())
		}
		return b, nil
	}
	return binary.Append(b, binary.LittleEndian, lanes)
}

// UnmarshalBinary decodes the MarshalBinary encoding. data must hold exactly
// Len() lanes.
func (v *Vector[T, S]) UnmarshalBinary(data []byte) error {
	size := binarySize[T]()
	if len(data)%size != 0 || len(data)/size != v.Len() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrLaneCount, len(data), size*v.Len())
	}
	var r Vector[T, S]
	lanes := r.Lanes()
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int:
		for i := range lanes {
			x := int64(binary.LittleEndian.Uint64(data[8*i:]))
			reflect.ValueOf(&lanes[i]).Elem().SetInt(x)
		}
	case reflect.Uint, reflect.Uintptr:
		for i := range lanes {
			reflect.ValueOf(&lanes[i]).Elem().SetUint(binary.LittleEndian.Uint64(data[8*i:]))
		}
	default:
		if _, err := binary.Decode(data, binary.LittleEndian, lanes); err != nil {
			return err
		}
	}
	*v = r
	return nil
}

// binarySize is the encoded size of one lane.
func binarySize[T Scalar]() int {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return 8
	}
	var zero T
	return int(unsafe.Sizeof(zero))
}

// setLanes stores lanes into v if there is exactly one value per lane.
func (v *Vector[T, S]) setLanes(lanes []T) error {
	if len(lanes) != v.Len() {
		return fmt.Errorf("%w: got %d, want %d", ErrLaneCount, len(lanes), v.Len())
	}
	var r Vector[T, S]
	copy(r.Lanes(), lanes)
	*v = r
	return nil
}
