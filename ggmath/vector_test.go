package ggmath

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	a2 := [2]int16{-1, 7}
	a3 := [3]float64{1.5, math.Inf(-1), -0.25}
	a4 := [4]bool{true, false, false, true}

	if got := ToArray2(FromArray2(a2)); got != a2 {
		t.Errorf("Vec2 round trip: got %v, want %v", got, a2)
	}
	if got := ToArray2(FromArray2P(a2)); got != a2 {
		t.Errorf("Vec2P round trip: got %v, want %v", got, a2)
	}
	if got := ToArray3(FromArray3(a3)); got != a3 {
		t.Errorf("Vec3 round trip: got %v, want %v", got, a3)
	}
	if got := ToArray3(FromArray3P(a3)); got != a3 {
		t.Errorf("Vec3P round trip: got %v, want %v", got, a3)
	}
	if got := ToArray4(FromArray4(a4)); got != a4 {
		t.Errorf("Vec4 round trip: got %v, want %v", got, a4)
	}
	if got := ToArray4(FromArray4P(a4)); got != a4 {
		t.Errorf("Vec4P round trip: got %v, want %v", got, a4)
	}
}

func TestSplat(t *testing.T) {
	v := Splat3[uint16](7)
	for i := range v.Len() {
		if got, _ := v.Get(i); got != 7 {
			t.Errorf("Splat3: lane %d: got %d, want 7", i, got)
		}
	}
	if v.data[3] != 0 {
		t.Errorf("Splat3: padding lane: got %d, want 0", v.data[3])
	}
	if got, want := Fill(New4P[int8](1, 2, 3, 4), 9), Splat4P[int8](9); got != want {
		t.Errorf("Fill: got %v, want %v", got, want)
	}
	if got, want := One(Vec2P[float32]{}), Splat2P[float32](1); got != want {
		t.Errorf("One: got %v, want %v", got, want)
	}
}

func TestAxisConstants(t *testing.T) {
	if got, want := ToArray4(Vec4W[float32]()), [4]float32{0, 0, 0, 1}; got != want {
		t.Errorf("Vec4W: got %v, want %v", got, want)
	}
	if got, want := Add(Vec3X[int32](), Add(Vec3Y[int32](), Vec3Z[int32]())), Splat3[int32](1); got != want {
		t.Errorf("X+Y+Z: got %v, want %v", got, want)
	}
	if got, want := Add(Vec2X[uint8](), Vec2Y[uint8]()), Splat2[uint8](1); got != want {
		t.Errorf("Vec2X+Vec2Y: got %v, want %v", got, want)
	}
}

func TestIndexing(t *testing.T) {
	v := New3P[int32](10, 20, 30)

	if got, ok := v.Get(2); !ok || got != 30 {
		t.Errorf("Get(2): got %d, %v, want 30, true", got, ok)
	}
	for _, i := range []int{-1, 3, 100} {
		if _, ok := v.Get(i); ok {
			t.Errorf("Get(%d): got ok, want out of range", i)
		}
		if p := v.Ptr(i); p != nil {
			t.Errorf("Ptr(%d): got non-nil pointer", i)
		}
		if v.Set(i, 1) {
			t.Errorf("Set(%d): got true, want false", i)
		}
		if _, ok := v.With(i, 1); ok {
			t.Errorf("With(%d): got ok", i)
		}
	}

	*v.Ptr(0) = 11
	if !v.Set(1, 21) {
		t.Error("Set(1): got false")
	}
	w, ok := v.With(2, 31)
	if !ok {
		t.Error("With(2): got false")
	}
	if got, want := ToArray3(w), [3]int32{11, 21, 31}; got != want {
		t.Errorf("With: got %v, want %v", got, want)
	}
	if got := v.GetUnchecked(2); got != 30 {
		t.Errorf("GetUnchecked(2): got %d, want 30", got)
	}
	v.SetUnchecked(2, 32)
	if got := v.data[2]; got != 32 {
		t.Errorf("SetUnchecked(2): got %d, want 32", got)
	}

	// An aligned vector's padding lane is out of range.
	a := New3[float32](1, 2, 3)
	if _, ok := a.Get(3); ok {
		t.Error("Get(3) on Vec3: got ok")
	}
}

func TestLoadStore(t *testing.T) {
	var v Vec4[float64]
	if Load(&v, []float64{1, 2, 3}) {
		t.Error("Load: short slice accepted")
	}
	if v != (Vec4[float64]{}) {
		t.Errorf("Load: short slice modified destination: %v", v)
	}
	if !Load(&v, []float64{1, 2, 3, 4, 5}) {
		t.Error("Load: got false")
	}
	out := make([]float64, 6)
	if n := Store(v, out); n != 4 {
		t.Errorf("Store: wrote %d lanes, want 4", n)
	}
	if out[3] != 4 || out[4] != 0 {
		t.Errorf("Store: got %v", out)
	}

	s := v.Slice()
	s[0] = 100
	if v.data[0] != 1 {
		t.Error("Slice: result aliases the vector")
	}
	v.Lanes()[0] = 100
	if v.data[0] != 100 {
		t.Error("Lanes: result does not alias the vector")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{New3[float32](1, 2.5, -3).String(), "(1, 2.5, -3)"},
		{New2P(true, false).String(), "(true, false)"},
		{New4[uint8](0, 1, 2, 255).String(), "(0, 1, 2, 255)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String: got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestAsBytes(t *testing.T) {
	v := New3[uint32](1, 2, 3)
	b := v.AsBytes()
	if len(b) != 12 {
		t.Fatalf("AsBytes: got %d bytes, want 12", len(b))
	}
	want := binary.NativeEndian.AppendUint32(nil, 1)
	want = binary.NativeEndian.AppendUint32(want, 2)
	want = binary.NativeEndian.AppendUint32(want, 3)
	if !bytes.Equal(b, want) {
		t.Errorf("AsBytes: got %v, want %v", b, want)
	}
	padded := v.AsBytesPadded()
	if len(padded) != 16 {
		t.Errorf("AsBytesPadded: got %d bytes, want 16", len(padded))
	}
	if !bytes.Equal(padded[12:], []byte{0, 0, 0, 0}) {
		t.Errorf("AsBytesPadded: padding bytes %v, want zero", padded[12:])
	}

	b[0] = 9
	if v.data[0] == 1 || v.data[0] != binary.NativeEndian.Uint32(b[:4]) {
		t.Error("AsBytes: writes do not reach the vector")
	}

	p := New3P[uint8](1, 2, 3)
	if got := len(p.AsBytesPadded()); got != 3 {
		t.Errorf("AsBytesPadded packed: got %d bytes, want 3", got)
	}
}

func TestMapMap2(t *testing.T) {
	v := New3P[int32](1, 2, 3)
	if got, want := Map(v, func(x int32) int32 { return x * x }), New3P[int32](1, 4, 9); got != want {
		t.Errorf("Map: got %v, want %v", got, want)
	}
	if got, want := Map2(v, v, func(x, y int32) int32 { return x - y }), (Vec3P[int32]{}); got != want {
		t.Errorf("Map2: got %v, want %v", got, want)
	}
}
