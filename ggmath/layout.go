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
	"fmt"
	"unsafe"
)

// Layout describes the memory footprint of one vector shape.
type Layout struct {
	// Lanes is the logical lane count N.
	Lanes int
	// PhysicalLanes is the number of lanes of storage, including padding.
	PhysicalLanes int
	// Size is unsafe.Sizeof of the vector.
	Size uintptr
	// Align is unsafe.Alignof of the vector.
	Align uintptr
	// LaneSize is unsafe.Sizeof of one scalar.
	LaneSize uintptr
	// Alignment is the layout marker of the shape.
	Alignment Alignment
}

// LayoutOf reports the layout of Vector[T, S].
func LayoutOf[T Scalar, S Storage[T]]() Layout {
	var v Vector[T, S]
	var lane T
	return Layout{
		Lanes:         v.data.lanes(),
		PhysicalLanes: len(v.data),
		Size:          unsafe.Sizeof(v),
		Align:         unsafe.Alignof(v),
		LaneSize:      unsafe.Sizeof(lane),
		Alignment:     v.data.alignment(),
	}
}

// Layouts returns the layouts of all six shapes of T, aligned shapes first.
func Layouts[T Scalar]() []Layout {
	return []Layout{
		LayoutOf[T, aligned2[T]](),
		LayoutOf[T, aligned3[T]](),
		LayoutOf[T, aligned4[T]](),
		LayoutOf[T, packed2[T]](),
		LayoutOf[T, packed3[T]](),
		LayoutOf[T, packed4[T]](),
	}
}

// NextPow2 returns the smallest power of two >= n, or 1 for n <= 1.
func NextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// IsPow2 reports whether n is a positive power of two.
func IsPow2(n uintptr) bool {
	return n != 0 && n&(n-1) == 0
}

// Validate checks the layout contract of the shape:
//   - packed: Size == Lanes*LaneSize and Align == Alignof(T);
//   - aligned: Size == NextPow2(Lanes*LaneSize), a power of two;
//   - both: the lane array starts at offset 0.
func (l Layout) Validate() error {
	n := uintptr(l.Lanes)
	switch l.Alignment.(type) {
	case Packed:
		if l.Size != n*l.LaneSize {
			return fmt.Errorf("ggmath: packed %d-lane layout: size %d, want %d", l.Lanes, l.Size, n*l.LaneSize)
		}
		if l.PhysicalLanes != l.Lanes {
			return fmt.Errorf("ggmath: packed %d-lane layout has %d physical lanes", l.Lanes, l.PhysicalLanes)
		}
	case Aligned:
		want := uintptr(NextPow2(int(n * l.LaneSize)))
		if l.Size != want || !IsPow2(l.Size) {
			return fmt.Errorf("ggmath: aligned %d-lane layout: size %d, want %d", l.Lanes, l.Size, want)
		}
		if l.Align < l.LaneSize && l.Align < maxAlign {
			return fmt.Errorf("ggmath: aligned %d-lane layout: align %d below lane size %d", l.Lanes, l.Align, l.LaneSize)
		}
	}
	return nil
}

// maxAlign is the largest alignment the Go compiler gives any scalar.
const maxAlign = unsafe.Alignof(uint64(0))

func checkLayouts[T Scalar]() {
	var lane T
	for _, l := range Layouts[T]() {
		if err := l.Validate(); err != nil {
			panic(fmt.Sprintf("%v (lane type %T)", err, lane))
		}
		if _, ok := l.Alignment.(Packed); ok && l.Align != unsafe.Alignof(lane) {
			panic(fmt.Sprintf("ggmath: packed layout of %T: align %d, want %d", lane, l.Align, unsafe.Alignof(lane)))
		}
	}
	var v Vector[T, aligned3[T]]
	if unsafe.Offsetof(v.data) != 0 {
		panic("ggmath: vector lanes do not start at offset 0")
	}
}

func init() {
	checkLayouts[float32]()
	checkLayouts[float64]()
	checkLayouts[int8]()
	checkLayouts[int16]()
	checkLayouts[int32]()
	checkLayouts[int64]()
	checkLayouts[int]()
	checkLayouts[uint8]()
	checkLayouts[uint16]()
	checkLayouts[uint32]()
	checkLayouts[uint64]()
	checkLayouts[uint]()
	checkLayouts[uintptr]()
	checkLayouts[bool]()
}
