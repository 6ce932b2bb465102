package ggmath

import "testing"

func TestSwizzleReads(t *testing.T) {
	v := New4[int32](1, 2, 3, 4)

	if got, want := XYZ(v), FromArray3([3]int32{X(v), Y(v), Z(v)}); got != want {
		t.Errorf("XYZ: got %v, want %v", got, want)
	}
	if got, want := WZYX(v), New4[int32](4, 3, 2, 1); got != want {
		t.Errorf("WZYX: got %v, want %v", got, want)
	}
	if got, want := XXYY(v), New4[int32](1, 1, 2, 2); got != want {
		t.Errorf("XXYY: got %v, want %v", got, want)
	}
	if got, want := ZW(v), New2[int32](3, 4); got != want {
		t.Errorf("ZW: got %v, want %v", got, want)
	}
	if got := W(v); got != 4 {
		t.Errorf("W: got %d, want 4", got)
	}

	// Shorter vectors of either layout read into longer aligned ones.
	p := New2P[float32](5, 6)
	if got, want := YXYX(p), New4[float32](6, 5, 6, 5); got != want {
		t.Errorf("YXYX packed: got %v, want %v", got, want)
	}
}

func TestSwizzleInversePermutation(t *testing.T) {
	v := New3[float64](1, 2, 3)
	// YZX and ZXY are inverse rotations.
	if got := ZXY(YZX(v)); got != v {
		t.Errorf("ZXY(YZX(v)): got %v, want %v", got, v)
	}
	if got := YXZ(YXZ(v)); got != v {
		t.Errorf("YXZ(YXZ(v)): got %v, want %v", got, v)
	}
	w := New4P[int8](1, 2, 3, 4)
	if got := Unalign4(WZYX(WZYX(w))); got != w {
		t.Errorf("WZYX(WZYX(w)): got %v, want %v", got, w)
	}
}

func TestSwizzleWrites(t *testing.T) {
	v := New4[int32](1, 2, 3, 4)
	SetZX(&v, New2P[int32](30, 10))
	if want := New4[int32](10, 2, 30, 4); v != want {
		t.Errorf("SetZX: got %v, want %v", v, want)
	}
	SetW(&v, 40)
	if want := New4[int32](10, 2, 30, 40); v != want {
		t.Errorf("SetW: got %v, want %v", v, want)
	}

	u := New3P[float32](1, 2, 3)
	got := WithZYX(u, New3[float32](7, 8, 9))
	if want := New3P[float32](9, 8, 7); got != want {
		t.Errorf("WithZYX: got %v, want %v", got, want)
	}
	if want := New3P[float32](1, 2, 3); u != want {
		t.Errorf("WithZYX modified its input: got %v", u)
	}
	if got, want := WithY(New2[uint8](1, 2), 9), New2[uint8](1, 9); got != want {
		t.Errorf("WithY: got %v, want %v", got, want)
	}

	// Writing a permutation then reading it back with the same pattern
	// returns the source.
	src := New4[int32](5, 6, 7, 8)
	var dst Vec4[int32]
	SetWYXZ(&dst, src)
	if got := WYXZ(dst); got != src {
		t.Errorf("WYXZ(SetWYXZ(src)): got %v, want %v", got, src)
	}
}

func TestSwizzleKeepsPaddingZero(t *testing.T) {
	v := New3[float32](1, 2, 3)
	SetXYZ(&v, New3P[float32](4, 5, 6))
	if v.data[3] != 0 {
		t.Errorf("SetXYZ: padding lane: got %v, want 0", v.data[3])
	}
}

func TestBuilders(t *testing.T) {
	xy := New2[int32](1, 2)
	yz := New2P[int32](2, 3)
	xyz := New3[int32](1, 2, 3)
	want3 := New3[int32](1, 2, 3)
	want4 := New4[int32](1, 2, 3, 4)

	tests := []struct {
		name string
		got  Vec4[int32]
	}{
		{"Vec4From2_1_1", Vec4From2_1_1(xy, 3, 4)},
		{"Vec4From1_2_1", Vec4From1_2_1(1, yz, 4)},
		{"Vec4From1_1_2", Vec4From1_1_2(1, 2, New2[int32](3, 4))},
		{"Vec4From2_2", Vec4From2_2(xy, New2P[int32](3, 4))},
		{"Vec4From3_1", Vec4From3_1(xyz, 4)},
		{"Vec4From1_3", Vec4From1_3(1, New3P[int32](2, 3, 4))},
	}
	for _, tt := range tests {
		if tt.got != want4 {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, want4)
		}
	}

	if got := Vec3From2_1(xy, 3); got != want3 {
		t.Errorf("Vec3From2_1: got %v, want %v", got, want3)
	}
	if got := Vec3From1_2(1, yz); got != want3 {
		t.Errorf("Vec3From1_2: got %v, want %v", got, want3)
	}
	if got, want := Vec3PFrom2_1(xy, 3), New3P[int32](1, 2, 3); got != want {
		t.Errorf("Vec3PFrom2_1: got %v, want %v", got, want)
	}
	if got, want := Vec4PFrom3_1(xyz, 4), New4P[int32](1, 2, 3, 4); got != want {
		t.Errorf("Vec4PFrom3_1: got %v, want %v", got, want)
	}
}
