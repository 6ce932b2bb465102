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
	"reflect"
	"sync"
)

// Kernels holds the four-lane implementations a scalar type provides for
// vector operators.
//
// A hook operates on the full physical storage of a four-lane shape. For
// Vec4 and Vec4P every lane is logical. For Vec3 the fourth lane is padding:
// a hook only runs there if the matching Garbage flag is set, which
// promises that the operation is well defined (it must not panic) whatever
// the padding lane holds. The result in the padding lane is discarded.
//
// Comparison hooks return lane i of the result in bit i. Bits for lanes
// past the logical length are ignored.
//
// A nil hook means the operator uses the element-wise loop. Hooks must
// produce, for every logical lane, exactly the value of the scalar
// operator.
type Kernels[T Scalar] struct {
	Add    func(dst, a, b *[4]T)
	Sub    func(dst, a, b *[4]T)
	Mul    func(dst, a, b *[4]T)
	Div    func(dst, a, b *[4]T)
	Rem    func(dst, a, b *[4]T)
	Min    func(dst, a, b *[4]T)
	Max    func(dst, a, b *[4]T)
	And    func(dst, a, b *[4]T)
	Or     func(dst, a, b *[4]T)
	Xor    func(dst, a, b *[4]T)
	AndNot func(dst, a, b *[4]T)
	Shl    func(dst, a, b *[4]T)
	Shr    func(dst, a, b *[4]T)
	Neg    func(dst, a *[4]T)
	Not    func(dst, a *[4]T)

	Eq func(a, b *[4]T) uint8
	Ne func(a, b *[4]T) uint8
	Lt func(a, b *[4]T) uint8
	Le func(a, b *[4]T) uint8
	Gt func(a, b *[4]T) uint8
	Ge func(a, b *[4]T) uint8

	AddGarbage    bool
	SubGarbage    bool
	MulGarbage    bool
	DivGarbage    bool
	RemGarbage    bool
	MinGarbage    bool
	MaxGarbage    bool
	AndGarbage    bool
	OrGarbage     bool
	XorGarbage    bool
	AndNotGarbage bool
	ShlGarbage    bool
	ShrGarbage    bool
	NegGarbage    bool
	NotGarbage    bool
	EqGarbage     bool
	NeGarbage     bool
	LtGarbage     bool
	LeGarbage     bool
	GtGarbage     bool
	GeGarbage     bool

	// Name identifies the implementation, e.g. "portable" or "vek".
	Name string
}

type opcode uint8

const (
	opAdd opcode = iota
	opSub
	opMul
	opDiv
	opRem
	opMin
	opMax
	opAnd
	opOr
	opXor
	opAndNot
	opShl
	opShr
	opNeg
	opNot
	opEq
	opNe
	opLt
	opLe
	opGt
	opGe
)

func (k *Kernels[T]) binary(op opcode) (func(dst, a, b *[4]T), bool) {
	switch op {
	case opAdd:
		return k.Add, k.AddGarbage
	case opSub:
		return k.Sub, k.SubGarbage
	case opMul:
		return k.Mul, k.MulGarbage
	case opDiv:
		return k.Div, k.DivGarbage
	case opRem:
		return k.Rem, k.RemGarbage
	case opMin:
		return k.Min, k.MinGarbage
	case opMax:
		return k.Max, k.MaxGarbage
	case opAnd:
		return k.And, k.AndGarbage
	case opOr:
		return k.Or, k.OrGarbage
	case opXor:
		return k.Xor, k.XorGarbage
	case opAndNot:
		return k.AndNot, k.AndNotGarbage
	case opShl:
		return k.Shl, k.ShlGarbage
	case opShr:
		return k.Shr, k.ShrGarbage
	}
	return nil, false
}

func (k *Kernels[T]) unary(op opcode) (func(dst, a *[4]T), bool) {
	switch op {
	case opNeg:
		return k.Neg, k.NegGarbage
	case opNot:
		return k.Not, k.NotGarbage
	}
	return nil, false
}

func (k *Kernels[T]) compare(op opcode) (func(a, b *[4]T) uint8, bool) {
	switch op {
	case opEq:
		return k.Eq, k.EqGarbage
	case opNe:
		return k.Ne, k.NeGarbage
	case opLt:
		return k.Lt, k.LtGarbage
	case opLe:
		return k.Le, k.LeGarbage
	case opGt:
		return k.Gt, k.GtGarbage
	case opGe:
		return k.Ge, k.GeGarbage
	}
	return nil, false
}

// Built-in tables, installed by selectKernels.
var (
	kernelsF32  *Kernels[float32]
	kernelsF64  *Kernels[float64]
	kernelsI8   *Kernels[int8]
	kernelsI16  *Kernels[int16]
	kernelsI32  *Kernels[int32]
	kernelsI64  *Kernels[int64]
	kernelsInt  *Kernels[int]
	kernelsU8   *Kernels[uint8]
	kernelsU16  *Kernels[uint16]
	kernelsU32  *Kernels[uint32]
	kernelsU64  *Kernels[uint64]
	kernelsUint *Kernels[uint]
)

// customKernels maps reflect.Type to *Kernels[T] for scalar types that are
// not predeclared (for example a named ~float32 type).
var customKernels sync.Map

// kernelsFor resolves the kernel table of T, or nil if T has none.
//
// The table is stored as an untyped value and recovered with a checked type
// assertion, so a table registered for one type can never be used for
// another: a mismatch yields nil and the caller takes the element-wise loop.
func kernelsFor[T Scalar]() *Kernels[T] {
	var zero T
	var table any
	switch any(zero).(type) {
	case float32:
		table = kernelsF32
	case float64:
		table = kernelsF64
	case int8:
		table = kernelsI8
	case int16:
		table = kernelsI16
	case int32:
		table = kernelsI32
	case int64:
		table = kernelsI64
	case int:
		table = kernelsInt
	case uint8:
		table = kernelsU8
	case uint16:
		table = kernelsU16
	case uint32:
		table = kernelsU32
	case uint64:
		table = kernelsU64
	case uint:
		table = kernelsUint
	case bool:
		return nil
	default:
		v, ok := customKernels.Load(reflect.TypeFor[T]())
		if !ok {
			return nil
		}
		table = v
	}
	k, _ := table.(*Kernels[T])
	return k
}

// KernelsFor returns the kernel table currently used for T, or nil if
// operators on T always use the element-wise loop.
func KernelsFor[T Scalar]() *Kernels[T] {
	return kernelsFor[T]()
}

// RegisterKernels installs k as the kernel table of T, replacing any
// previous one. Passing nil removes the table. It is meant to be called
// from an init function, before vectors of T are used concurrently.
func RegisterKernels[T Scalar](k *Kernels[T]) {
	var zero T
	switch any(zero).(type) {
	case float32:
		kernelsF32, _ = any(k).(*Kernels[float32])
	case float64:
		kernelsF64, _ = any(k).(*Kernels[float64])
	case int8:
		kernelsI8, _ = any(k).(*Kernels[int8])
	case int16:
		kernelsI16, _ = any(k).(*Kernels[int16])
	case int32:
		kernelsI32, _ = any(k).(*Kernels[int32])
	case int64:
		kernelsI64, _ = any(k).(*Kernels[int64])
	case int:
		kernelsInt, _ = any(k).(*Kernels[int])
	case uint8:
		kernelsU8, _ = any(k).(*Kernels[uint8])
	case uint16:
		kernelsU16, _ = any(k).(*Kernels[uint16])
	case uint32:
		kernelsU32, _ = any(k).(*Kernels[uint32])
	case uint64:
		kernelsU64, _ = any(k).(*Kernels[uint64])
	case uint:
		kernelsUint, _ = any(k).(*Kernels[uint])
	default:
		if k == nil {
			customKernels.Delete(reflect.TypeFor[T]())
			return
		}
		customKernels.Store(reflect.TypeFor[T](), k)
	}
}
