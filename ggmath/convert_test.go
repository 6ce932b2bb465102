package ggmath

import "testing"

func TestAlignmentIdempotence(t *testing.T) {
	p := New3P[float32](1, 2, 3)
	a := New3[float32](1, 2, 3)

	if Align3(Align3(p)) != Align3(p) {
		t.Error("Align3 is not idempotent")
	}
	if Unalign3(Unalign3(a)) != Unalign3(a) {
		t.Error("Unalign3 is not idempotent")
	}
	if ToArray3(Unalign3(Align3(p))) != ToArray3(p) {
		t.Error("Unalign3(Align3(p)) changed the lanes")
	}
	if ToArray3(Unalign3(Align3(a))) != ToArray3(a) {
		t.Error("Unalign3(Align3(a)) changed the lanes")
	}
	if Align2(New2P[int8](1, 2)) != New2[int8](1, 2) {
		t.Error("Align2 changed the lanes")
	}
	if Unalign4(New4(true, false, true, false)) != New4P(true, false, true, false) {
		t.Error("Unalign4 changed the lanes")
	}
	if Align4(Unalign4(New4[uint64](1, 2, 3, 4))) != New4[uint64](1, 2, 3, 4) {
		t.Error("Align4(Unalign4(v)) changed the lanes")
	}
	if Unalign2(New2[int64](5, 6)) != New2P[int64](5, 6) {
		t.Error("Unalign2 changed the lanes")
	}
}

func TestPackedView(t *testing.T) {
	a := New3[float32](1, 2, 3)
	p := PackedView3(&a)
	if *p != New3P[float32](1, 2, 3) {
		t.Errorf("PackedView3: got %v", *p)
	}
	p.Set(1, 20)
	if got := a.data[1]; got != 20 {
		t.Errorf("PackedView3: write through view: got %v, want 20", got)
	}
	if a.data[3] != 0 {
		t.Error("PackedView3: view reached the padding lane")
	}

	v2 := New2[int32](1, 2)
	PackedView2(&v2).Set(0, 9)
	if v2 != New2[int32](9, 2) {
		t.Errorf("PackedView2: got %v", v2)
	}
	v4 := New4[int32](1, 2, 3, 4)
	if *PackedView4(&v4) != New4P[int32](1, 2, 3, 4) {
		t.Error("PackedView4: lanes differ")
	}
}

func TestArrayViews(t *testing.T) {
	arr := [3]int16{1, 2, 3}
	v := ArrayRef3P(&arr)
	v.Set(2, 30)
	if arr[2] != 30 {
		t.Errorf("ArrayRef3P: write through view: got %v, want 30", arr)
	}

	a := New4[float64](1, 2, 3, 4)
	view := ArrayView4(&a)
	view[3] = 40
	if a.data[3] != 40 {
		t.Error("ArrayView4: write does not reach the vector")
	}
	b := New3[uint8](1, 2, 3)
	if *ArrayView3(&b) != [3]uint8{1, 2, 3} {
		t.Error("ArrayView3: lanes differ")
	}
	c := New2P[bool](true, false)
	if *ArrayView2(&c) != [2]bool{true, false} {
		t.Error("ArrayView2: lanes differ")
	}

	a2 := [2]float32{1, 2}
	if *ArrayRef2P(&a2) != New2P[float32](1, 2) {
		t.Error("ArrayRef2P: lanes differ")
	}
	a4 := [4]uint32{1, 2, 3, 4}
	ArrayRef4P(&a4).Set(0, 10)
	if a4[0] != 10 {
		t.Error("ArrayRef4P: write does not reach the array")
	}
}

func TestCast(t *testing.T) {
	if got, want := Cast2[int32](New2P[float32](1.9, -1.9)), New2[int32](1, -1); got != want {
		t.Errorf("Cast2: got %v, want %v", got, want)
	}
	if got, want := Cast3[float64](New3[uint8](1, 2, 255)), New3[float64](1, 2, 255); got != want {
		t.Errorf("Cast3: got %v, want %v", got, want)
	}
	if got, want := Cast4[uint8](New4[int32](256, 257, -1, 3)), New4[uint8](0, 1, 255, 3); got != want {
		t.Errorf("Cast4: got %v, want %v", got, want)
	}
}
