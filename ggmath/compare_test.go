package ggmath

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	a := New3[float32](1, 2, 3)
	if !Equal(a, New3[float32](1, 2, 3)) || NotEqual(a, New3[float32](1, 2, 3)) {
		t.Error("Equal: identical vectors compare unequal")
	}
	if Equal(a, New3[float32](1, 2, 4)) {
		t.Error("Equal: different vectors compare equal")
	}
	n := New2(math.NaN(), 0)
	if Equal(n, n) {
		t.Error("Equal: NaN lane compares equal")
	}
}

func TestComparisonMasks(t *testing.T) {
	a := New4[int32](1, 5, 3, 7)
	b := New4[int32](2, 5, 1, 7)

	tests := []struct {
		name string
		got  Mask
		want uint8
	}{
		{"EqMask", EqMask(a, b), 0b1010},
		{"NeMask", NeMask(a, b), 0b0101},
		{"LtMask", LtMask(a, b), 0b0001},
		{"LeMask", LeMask(a, b), 0b1011},
		{"GtMask", GtMask(a, b), 0b0100},
		{"GeMask", GeMask(a, b), 0b1110},
	}
	for _, tt := range tests {
		if tt.got.Bits() != tt.want {
			t.Errorf("%s: got %04b, want %04b", tt.name, tt.got.Bits(), tt.want)
		}
		if tt.got.Len() != 4 {
			t.Errorf("%s: Len got %d, want 4", tt.name, tt.got.Len())
		}
	}
}

func TestMask(t *testing.T) {
	m := MaskFromBools(true, false, true)
	if m.Len() != 3 || m.CountTrue() != 2 || m.All() || !m.Any() {
		t.Errorf("Mask %v: Len %d CountTrue %d All %v Any %v", m, m.Len(), m.CountTrue(), m.All(), m.Any())
	}
	if m.Lane(3) || m.Lane(-1) {
		t.Error("Mask.Lane: out-of-range lane set")
	}
	if got := m.String(); got != "[true false true]" {
		t.Errorf("Mask.String: got %q", got)
	}
	if !MaskFromBools(true, true).All() {
		t.Error("Mask.All: got false")
	}
	if MaskFromBools(false, false, false, false).Any() {
		t.Error("Mask.Any: got true")
	}
	if got := MaskOf(New4P(false, true, true, false)); got.Bits() != 0b0110 {
		t.Errorf("MaskOf: got %04b", got.Bits())
	}
	if got := MaskOf(New3(true, false, true)).ToVec3(); got != New3(true, false, true) {
		t.Errorf("ToVec3: got %v", got)
	}
	if got := MaskFromBools(false, true).ToVec2(); got != New2(false, true) {
		t.Errorf("ToVec2: got %v", got)
	}
	if got := MaskFromBools(true, true, false, true).ToVec4(); got != New4(true, true, false, true) {
		t.Errorf("ToVec4: got %v", got)
	}
}

func TestSelect(t *testing.T) {
	a := New3[float64](1, 2, 3)
	b := New3[float64](10, 20, 30)
	if got, want := Select(LtMask(a, Splat3[float64](2.5)), a, b), New3[float64](1, 2, 30); got != want {
		t.Errorf("Select: got %v, want %v", got, want)
	}
	// Replace NaN lanes with zero.
	v := New3(1, math.NaN(), 3.0)
	if got, want := Select(NaNMask(v), Vec3[float64]{}, v), New3[float64](1, 0, 3); got != want {
		t.Errorf("Select NaN: got %v, want %v", got, want)
	}
}
