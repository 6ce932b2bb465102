//go:build ggmath_overflow_checks

package ggmath

import (
	"errors"
	"math"
	"testing"
)

func expectOverflow(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("%s: expected overflow panic", name)
			return
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOverflow) {
			t.Errorf("%s: panic value %v, want ErrOverflow", name, r)
		}
	}()
	f()
}

func TestAddOverflowPanics(t *testing.T) {
	a := FromArray2P([2]uint8{250, 250})
	b := FromArray2P([2]uint8{10, 10})
	expectOverflow(t, "Add uint8", func() { Add(a, b) })
}

func TestOverflowChecksPerOperator(t *testing.T) {
	v := New3[int8](127, -128, 0)
	expectOverflow(t, "AddScalar", func() { AddScalar(v, 1) })
	expectOverflow(t, "SubScalar", func() { SubScalar(v, 1) })
	expectOverflow(t, "MulScalar", func() { MulScalar(v, 2) })
	expectOverflow(t, "Neg", func() { Neg(v) })
	expectOverflow(t, "Sum", func() { Sum(New2[uint16](65535, 1)) })
}

func TestOverflowChecksDivRemAbs(t *testing.T) {
	v := New3[int8](10, -128, 5)
	d := New3[int8](3, -1, 5)
	expectOverflow(t, "Div", func() { Div(v, d) })
	expectOverflow(t, "Rem", func() { Rem(v, d) })
	expectOverflow(t, "DivScalar", func() { DivScalar(New4[int64](1, 2, math.MinInt64, 4), -1) })
	expectOverflow(t, "RemScalar", func() { RemScalar(New2P[int32](math.MinInt32, 0), -1) })
	expectOverflow(t, "Abs", func() { Abs(v) })

	// Neighbours of the overflowing case still pass.
	if got, want := ToArray3(Div(New3[int8](-128, -127, 127), New3[int8](1, -1, -1))), [3]int8{-128, 127, -127}; got != want {
		t.Errorf("Div: got %v, want %v", got, want)
	}
	if got, want := ToArray3(Abs(New3[int8](-127, 0, 127))), [3]int8{127, 0, 127}; got != want {
		t.Errorf("Abs: got %v, want %v", got, want)
	}
	if got, want := ToArray2(Div(New2[uint8](255, 7), New2[uint8](255, 2))), [2]uint8{1, 3}; got != want {
		t.Errorf("Div uint8: got %v, want %v", got, want)
	}
}

func TestOverflowChecksPassInRange(t *testing.T) {
	a := New4[int32](1, -2, 3, -4)
	if got, want := ToArray4(Add(a, a)), [4]int32{2, -4, 6, -8}; got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	// Wrapping operations are unaffected by the build tag.
	if got, want := ToArray2(WrappingAdd(New2[uint8](250, 1), New2[uint8](10, 1))), [2]uint8{4, 2}; got != want {
		t.Errorf("WrappingAdd: got %v, want %v", got, want)
	}
	// Floats never check.
	f := Add(Splat2[float32](3e38), Splat2[float32](3e38))
	if IsFinite(f) {
		t.Errorf("Add float32: got %v, want +Inf lanes", f)
	}
}
