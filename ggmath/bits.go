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

// And performs element-wise bitwise AND.
func And[T Integers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	if r, ok := binaryFast(&a, &b, opAnd); ok {
		return r
	}
	return Map2(a, b, func(x, y T) T { return x & y })
}

// Or performs element-wise bitwise OR.
func Or[T Integers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	if r, ok := binaryFast(&a, &b, opOr); ok {
		return r
	}
	return Map2(a, b, func(x, y T) T { return x | y })
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	if r, ok := binaryFast(&a, &b, opXor); ok {
		return r
	}
	return Map2(a, b, func(x, y T) T { return x ^ y })
}

// Not performs element-wise bitwise complement.
func Not[T Integers, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	if r, ok := unaryFast(&v, opNot); ok {
		return r
	}
	return Map(v, func(x T) T { return ^x })
}

// AndNot returns a &^ b: the bits of a that are clear in b.
func AndNot[T Integers, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	if r, ok := binaryFast(&a, &b, opAndNot); ok {
		return r
	}
	return Map2(a, b, func(x, y T) T { return x &^ y })
}

// Shl shifts each lane of v left by the matching lane of s.
// Shift counts at or beyond the lane width give 0, as in Go.
// A negative count panics.
func Shl[T Integers, S Storage[T]](v, s Vector[T, S]) Vector[T, S] {
	if r, ok := binaryFast(&v, &s, opShl); ok {
		return r
	}
	return Map2(v, s, func(x, n T) T { return x << n })
}

// Shr shifts each lane of v right by the matching lane of s. Signed lanes
// shift arithmetically. A negative count panics.
func Shr[T Integers, S Storage[T]](v, s Vector[T, S]) Vector[T, S] {
	if r, ok := binaryFast(&v, &s, opShr); ok {
		return r
	}
	return Map2(v, s, func(x, n T) T { return x >> n })
}

// ShlScalar shifts every lane of v left by n.
func ShlScalar[T Integers, S Storage[T]](v Vector[T, S], n uint) Vector[T, S] {
	return Map(v, func(x T) T { return x << n })
}

// ShrScalar shifts every lane of v right by n.
func ShrScalar[T Integers, S Storage[T]](v Vector[T, S], n uint) Vector[T, S] {
	return Map(v, func(x T) T { return x >> n })
}

// LogicalAnd performs element-wise boolean AND.
func LogicalAnd[T Boolean, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	return Map2(a, b, func(x, y T) T { return x && y })
}

// LogicalOr performs element-wise boolean OR.
func LogicalOr[T Boolean, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	return Map2(a, b, func(x, y T) T { return x || y })
}

// LogicalXor performs element-wise boolean XOR.
func LogicalXor[T Boolean, S Storage[T]](a, b Vector[T, S]) Vector[T, S] {
	return Map2(a, b, func(x, y T) T { return T(x != y) })
}

// LogicalNot performs element-wise boolean negation.
func LogicalNot[T Boolean, S Storage[T]](v Vector[T, S]) Vector[T, S] {
	return Map(v, func(x T) T { return !x })
}

// All reports whether every lane of a boolean vector is true.
func All[T Boolean, S Storage[T]](v Vector[T, S]) bool {
	for _, x := range v.Lanes() {
		if !bool(x) {
			return false
		}
	}
	return true
}

// Any reports whether at least one lane of a boolean vector is true.
func Any[T Boolean, S Storage[T]](v Vector[T, S]) bool {
	for _, x := range v.Lanes() {
		if bool(x) {
			return true
		}
	}
	return false
}
