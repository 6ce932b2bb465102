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
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// This file provides the built-in kernel tables. The portable kernels are
// unrolled four-lane loops; the vek kernels hand whole four-lane blocks to
// viterin/vek, which uses AVX2/NEON when the CPU has it.

// FloatKernels returns the portable kernel table for a float type.
// Every float hook is garbage-safe: IEEE-754 arithmetic never traps.
func FloatKernels[T Floats]() *Kernels[T] {
	return &Kernels[T]{
		Add: add4[T], Sub: sub4[T], Mul: mul4[T], Div: div4[T],
		Min: min4[T], Max: max4[T], Neg: neg4[T],
		Eq: eq4[T], Ne: ne4[T], Lt: lt4[T], Le: le4[T], Gt: gt4[T], Ge: ge4[T],

		AddGarbage: true, SubGarbage: true, MulGarbage: true, DivGarbage: true,
		MinGarbage: true, MaxGarbage: true, NegGarbage: true,
		EqGarbage: true, NeGarbage: true, LtGarbage: true, LeGarbage: true,
		GtGarbage: true, GeGarbage: true,

		Name: "portable",
	}
}

// IntKernels returns the portable kernel table for an integer type.
// Division and remainder are left to the element-wise loop: a zero in the
// padding lane would make them panic. For the same reason shifts of signed
// types only run on four logical lanes, since a negative count panics.
func IntKernels[T Integers]() *Kernels[T] {
	unsigned := ^T(0) > 0
	return &Kernels[T]{
		Add: add4[T], Sub: sub4[T], Mul: mul4[T],
		Min: min4[T], Max: max4[T],
		And: and4[T], Or: or4[T], Xor: xor4[T], AndNot: andNot4[T],
		Shl: shl4[T], Shr: shr4[T],
		Neg: neg4[T], Not: not4[T],
		Eq: eq4[T], Ne: ne4[T], Lt: lt4[T], Le: le4[T], Gt: gt4[T], Ge: ge4[T],

		AddGarbage: true, SubGarbage: true, MulGarbage: true,
		MinGarbage: true, MaxGarbage: true,
		AndGarbage: true, OrGarbage: true, XorGarbage: true, AndNotGarbage: true,
		ShlGarbage: unsigned, ShrGarbage: unsigned,
		NegGarbage: true, NotGarbage: true,
		EqGarbage: true, NeGarbage: true, LtGarbage: true, LeGarbage: true,
		GtGarbage: true, GeGarbage: true,

		Name: "portable",
	}
}

func vek32Kernels() *Kernels[float32] {
	k := FloatKernels[float32]()
	k.Add = func(dst, a, b *[4]float32) { vek32.Add_Into(dst[:], a[:], b[:]) }
	k.Sub = func(dst, a, b *[4]float32) { vek32.Sub_Into(dst[:], a[:], b[:]) }
	k.Mul = func(dst, a, b *[4]float32) { vek32.Mul_Into(dst[:], a[:], b[:]) }
	k.Div = func(dst, a, b *[4]float32) { vek32.Div_Into(dst[:], a[:], b[:]) }
	k.Name = "vek"
	return k
}

func vekKernels() *Kernels[float64] {
	k := FloatKernels[float64]()
	k.Add = func(dst, a, b *[4]float64) { vek.Add_Into(dst[:], a[:], b[:]) }
	k.Sub = func(dst, a, b *[4]float64) { vek.Sub_Into(dst[:], a[:], b[:]) }
	k.Mul = func(dst, a, b *[4]float64) { vek.Mul_Into(dst[:], a[:], b[:]) }
	k.Div = func(dst, a, b *[4]float64) { vek.Div_Into(dst[:], a[:], b[:]) }
	k.Name = "vek"
	return k
}

// VekAccelerated reports whether viterin/vek found SIMD support on this CPU.
func VekAccelerated() bool {
	return vek32.Info().Acceleration
}

// selectKernels installs the built-in tables for the current dispatch
// level. Called from the dispatch init functions.
func selectKernels() {
	kernelsF32 = FloatKernels[float32]()
	kernelsF64 = FloatKernels[float64]()
	if currentLevel != DispatchScalar && VekAccelerated() {
		kernelsF32 = vek32Kernels()
		kernelsF64 = vekKernels()
	}
	kernelsI8 = IntKernels[int8]()
	kernelsI16 = IntKernels[int16]()
	kernelsI32 = IntKernels[int32]()
	kernelsI64 = IntKernels[int64]()
	kernelsInt = IntKernels[int]()
	kernelsU8 = IntKernels[uint8]()
	kernelsU16 = IntKernels[uint16]()
	kernelsU32 = IntKernels[uint32]()
	kernelsU64 = IntKernels[uint64]()
	kernelsUint = IntKernels[uint]()
}

func add4[T Numbers](dst, a, b *[4]T) {
	dst[0] = a[0] + b[0]
	dst[1] = a[1] + b[1]
	dst[2] = a[2] + b[2]
	dst[3] = a[3] + b[3]
}

func sub4[T Numbers](dst, a, b *[4]T) {
	dst[0] = a[0] - b[0]
	dst[1] = a[1] - b[1]
	dst[2] = a[2] - b[2]
	dst[3] = a[3] - b[3]
}

func mul4[T Numbers](dst, a, b *[4]T) {
	dst[0] = a[0] * b[0]
	dst[1] = a[1] * b[1]
	dst[2] = a[2] * b[2]
	dst[3] = a[3] * b[3]
}

func div4[T Numbers](dst, a, b *[4]T) {
	dst[0] = a[0] / b[0]
	dst[1] = a[1] / b[1]
	dst[2] = a[2] / b[2]
	dst[3] = a[3] / b[3]
}

func min4[T Numbers](dst, a, b *[4]T) {
	dst[0] = min(a[0], b[0])
	dst[1] = min(a[1], b[1])
	dst[2] = min(a[2], b[2])
	dst[3] = min(a[3], b[3])
}

func max4[T Numbers](dst, a, b *[4]T) {
	dst[0] = max(a[0], b[0])
	dst[1] = max(a[1], b[1])
	dst[2] = max(a[2], b[2])
	dst[3] = max(a[3], b[3])
}

func and4[T Integers](dst, a, b *[4]T) {
	dst[0] = a[0] & b[0]
	dst[1] = a[1] & b[1]
	dst[2] = a[2] & b[2]
	dst[3] = a[3] & b[3]
}

func or4[T Integers](dst, a, b *[4]T) {
	dst[0] = a[0] | b[0]
	dst[1] = a[1] | b[1]
	dst[2] = a[2] | b[2]
	dst[3] = a[3] | b[3]
}

func xor4[T Integers](dst, a, b *[4]T) {
	dst[0] = a[0] ^ b[0]
	dst[1] = a[1] ^ b[1]
	dst[2] = a[2] ^ b[2]
	dst[3] = a[3] ^ b[3]
}

func neg4[T Numbers](dst, a *[4]T) {
	dst[0] = -a[0]
	dst[1] = -a[1]
	dst[2] = -a[2]
	dst[3] = -a[3]
}

func not4[T Integers](dst, a *[4]T) {
	dst[0] = ^a[0]
	dst[1] = ^a[1]
	dst[2] = ^a[2]
	dst[3] = ^a[3]
}

func andNot4[T Integers](dst, a, b *[4]T) {
	dst[0] = a[0] &^ b[0]
	dst[1] = a[1] &^ b[1]
	dst[2] = a[2] &^ b[2]
	dst[3] = a[3] &^ b[3]
}

func shl4[T Integers](dst, a, b *[4]T) {
	dst[0] = a[0] << b[0]
	dst[1] = a[1] << b[1]
	dst[2] = a[2] << b[2]
	dst[3] = a[3] << b[3]
}

func shr4[T Integers](dst, a, b *[4]T) {
	dst[0] = a[0] >> b[0]
	dst[1] = a[1] >> b[1]
	dst[2] = a[2] >> b[2]
	dst[3] = a[3] >> b[3]
}

// bit4 packs four lane results into a bitset, lane i in bit i.
func bit4(b0, b1, b2, b3 bool) uint8 {
	var m uint8
	if b0 {
		m |= 1
	}
	if b1 {
		m |= 2
	}
	if b2 {
		m |= 4
	}
	if b3 {
		m |= 8
	}
	return m
}

func eq4[T Numbers](a, b *[4]T) uint8 {
	return bit4(a[0] == b[0], a[1] == b[1], a[2] == b[2], a[3] == b[3])
}

func ne4[T Numbers](a, b *[4]T) uint8 {
	return bit4(a[0] != b[0], a[1] != b[1], a[2] != b[2], a[3] != b[3])
}

func lt4[T Numbers](a, b *[4]T) uint8 {
	return bit4(a[0] < b[0], a[1] < b[1], a[2] < b[2], a[3] < b[3])
}

func le4[T Numbers](a, b *[4]T) uint8 {
	return bit4(a[0] <= b[0], a[1] <= b[1], a[2] <= b[2], a[3] <= b[3])
}

func gt4[T Numbers](a, b *[4]T) uint8 {
	return bit4(a[0] > b[0], a[1] > b[1], a[2] > b[2], a[3] > b[3])
}

func ge4[T Numbers](a, b *[4]T) uint8 {
	return bit4(a[0] >= b[0], a[1] >= b[1], a[2] >= b[2], a[3] >= b[3])
}
