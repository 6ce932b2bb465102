package ggmath

import (
	"math"
	"testing"
)

func TestCheckedAdd(t *testing.T) {
	if got, ok := CheckedAdd(New2[uint8](200, 1), New2[uint8](55, 2)); !ok || ToArray2(got) != [2]uint8{255, 3} {
		t.Errorf("CheckedAdd uint8: got %v, %v, want (255, 3), true", got, ok)
	}
	if _, ok := CheckedAdd(New2[uint8](200, 1), New2[uint8](56, 2)); ok {
		t.Error("CheckedAdd uint8: 200 + 56 should overflow")
	}
	if _, ok := CheckedAdd(New3[int16](math.MinInt16, 0, 0), New3[int16](-1, 0, 0)); ok {
		t.Error("CheckedAdd int16: MIN + -1 should overflow")
	}
}

func TestCheckedSubMul(t *testing.T) {
	if _, ok := CheckedSub(New2[uint32](1, 5), New2[uint32](2, 0)); ok {
		t.Error("CheckedSub uint32: 1 - 2 should overflow")
	}
	if got, ok := CheckedSub(New2[int32](-5, 5), New2[int32](5, -5)); !ok || ToArray2(got) != [2]int32{-10, 10} {
		t.Errorf("CheckedSub int32: got %v, %v", got, ok)
	}
	if _, ok := CheckedMul(New2[int8](-128, 1), New2[int8](-1, 1)); ok {
		t.Error("CheckedMul int8: MIN * -1 should overflow")
	}
	if _, ok := CheckedMul(New2[int8](16, 1), New2[int8](8, 1)); ok {
		t.Error("CheckedMul int8: 16 * 8 should overflow")
	}
	if got, ok := CheckedMul(New2[int8](-16, 11), New2[int8](8, 11)); !ok || ToArray2(got) != [2]int8{-128, 121} {
		t.Errorf("CheckedMul int8: got %v, %v, want (-128, 121), true", got, ok)
	}
}

func TestCheckedDivRem(t *testing.T) {
	if _, ok := CheckedDiv(New2[int32](1, 1), New2[int32](1, 0)); ok {
		t.Error("CheckedDiv: division by zero should fail")
	}
	if _, ok := CheckedDiv(New2[int64](math.MinInt64, 1), New2[int64](-1, 1)); ok {
		t.Error("CheckedDiv: MIN / -1 should fail")
	}
	if _, ok := CheckedRem(New2[int64](math.MinInt64, 1), New2[int64](-1, 1)); ok {
		t.Error("CheckedRem: MIN % -1 should fail")
	}
	if got, ok := CheckedRem(New3[int32](7, -7, 9), New3[int32](3, 3, 9)); !ok || ToArray3(got) != [3]int32{1, -1, 0} {
		t.Errorf("CheckedRem: got %v, %v", got, ok)
	}
}

func TestCheckedNeg(t *testing.T) {
	if _, ok := CheckedNeg(New2[int8](-128, 0)); ok {
		t.Error("CheckedNeg int8: -MIN should overflow")
	}
	if _, ok := CheckedNeg(New2[uint8](0, 1)); ok {
		t.Error("CheckedNeg uint8: -1 has no unsigned value")
	}
	if got, ok := CheckedNeg(New2[uint8](0, 0)); !ok || ToArray2(got) != [2]uint8{0, 0} {
		t.Errorf("CheckedNeg uint8 zero: got %v, %v", got, ok)
	}
}

func TestWrapping(t *testing.T) {
	if got, want := ToArray2(WrappingAdd(New2[uint8](250, 250), New2[uint8](10, 10))), [2]uint8{4, 4}; got != want {
		t.Errorf("WrappingAdd: got %v, want %v", got, want)
	}
	if got, want := ToArray2(WrappingSub(New2[uint8](0, 5), New2[uint8](1, 5))), [2]uint8{255, 0}; got != want {
		t.Errorf("WrappingSub: got %v, want %v", got, want)
	}
	if got, want := ToArray2(WrappingMul(New2[int8](64, 3), New2[int8](2, 3))), [2]int8{-128, 9}; got != want {
		t.Errorf("WrappingMul: got %v, want %v", got, want)
	}
	if got, want := ToArray2(WrappingNeg(New2[int8](-128, 5))), [2]int8{-128, -5}; got != want {
		t.Errorf("WrappingNeg: got %v, want %v", got, want)
	}
}

func TestSaturatingUint8(t *testing.T) {
	a := New4[uint8](250, 100, 10, 0)
	b := New4[uint8](10, 100, 20, 0)

	add := ToArray4(SaturatingAdd(a, b))
	for i, want := range [4]uint8{255, 200, 30, 0} {
		if add[i] != want {
			t.Errorf("SaturatingAdd uint8: lane %d: got %d, want %d", i, add[i], want)
		}
	}
	sub := ToArray4(SaturatingSub(a, b))
	for i, want := range [4]uint8{240, 0, 0, 0} {
		if sub[i] != want {
			t.Errorf("SaturatingSub uint8: lane %d: got %d, want %d", i, sub[i], want)
		}
	}
	mul := ToArray4(SaturatingMul(a, b))
	for i, want := range [4]uint8{255, 255, 200, 0} {
		if mul[i] != want {
			t.Errorf("SaturatingMul uint8: lane %d: got %d, want %d", i, mul[i], want)
		}
	}
}

func TestSaturatingInt16(t *testing.T) {
	a := New4[int16](32000, -32000, 100, -100)
	b := New4[int16](1000, 1000, -200, 200)

	add := ToArray4(SaturatingAdd(a, b))
	for i, want := range [4]int16{32767, -31000, -100, 100} {
		if add[i] != want {
			t.Errorf("SaturatingAdd int16: lane %d: got %d, want %d", i, add[i], want)
		}
	}
	sub := ToArray4(SaturatingSub(a, b))
	for i, want := range [4]int16{31000, -32768, 300, -300} {
		if sub[i] != want {
			t.Errorf("SaturatingSub int16: lane %d: got %d, want %d", i, sub[i], want)
		}
	}
	mul := ToArray4(SaturatingMul(a, b))
	for i, want := range [4]int16{32767, -32768, -20000, -20000} {
		if mul[i] != want {
			t.Errorf("SaturatingMul int16: lane %d: got %d, want %d", i, mul[i], want)
		}
	}
}

func TestIntBounds(t *testing.T) {
	if lo, hi := intBounds[int8](); lo != math.MinInt8 || hi != math.MaxInt8 {
		t.Errorf("intBounds[int8]: got %d, %d", lo, hi)
	}
	if lo, hi := intBounds[uint16](); lo != 0 || hi != math.MaxUint16 {
		t.Errorf("intBounds[uint16]: got %d, %d", lo, hi)
	}
	if lo, hi := intBounds[int64](); lo != math.MinInt64 || hi != math.MaxInt64 {
		t.Errorf("intBounds[int64]: got %d, %d", lo, hi)
	}
}
