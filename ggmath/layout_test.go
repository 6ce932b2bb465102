package ggmath

import (
	"testing"
	"unsafe"
)

func checkLayoutsOf[T Scalar](t *testing.T, name string) {
	t.Helper()
	var lane T
	for _, l := range Layouts[T]() {
		if err := l.Validate(); err != nil {
			t.Errorf("%s %d/%v: %v", name, l.Lanes, l.Alignment, err)
		}
		switch l.Alignment.(type) {
		case Packed:
			if l.Size != uintptr(l.Lanes)*unsafe.Sizeof(lane) {
				t.Errorf("%s %d/packed: size %d, want %d", name, l.Lanes, l.Size, uintptr(l.Lanes)*unsafe.Sizeof(lane))
			}
			if l.Align != unsafe.Alignof(lane) {
				t.Errorf("%s %d/packed: align %d, want %d", name, l.Lanes, l.Align, unsafe.Alignof(lane))
			}
		case Aligned:
			if !IsPow2(l.Size) || l.Size < uintptr(l.Lanes)*unsafe.Sizeof(lane) {
				t.Errorf("%s %d/aligned: size %d is not a power of two covering the lanes", name, l.Lanes, l.Size)
			}
			if l.PhysicalLanes != NextPow2(l.Lanes) {
				t.Errorf("%s %d/aligned: %d physical lanes, want %d", name, l.Lanes, l.PhysicalLanes, NextPow2(l.Lanes))
			}
		}
	}
}

func TestLayoutInvariants(t *testing.T) {
	checkLayoutsOf[float32](t, "float32")
	checkLayoutsOf[float64](t, "float64")
	checkLayoutsOf[int8](t, "int8")
	checkLayoutsOf[int16](t, "int16")
	checkLayoutsOf[int32](t, "int32")
	checkLayoutsOf[int64](t, "int64")
	checkLayoutsOf[int](t, "int")
	checkLayoutsOf[uint8](t, "uint8")
	checkLayoutsOf[uint16](t, "uint16")
	checkLayoutsOf[uint32](t, "uint32")
	checkLayoutsOf[uint64](t, "uint64")
	checkLayoutsOf[uint](t, "uint")
	checkLayoutsOf[uintptr](t, "uintptr")
	checkLayoutsOf[bool](t, "bool")
}

func TestLayoutSizes(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Vec3[float32]", unsafe.Sizeof(Vec3[float32]{}), 16},
		{"Vec3P[float32]", unsafe.Sizeof(Vec3P[float32]{}), 12},
		{"Vec2[float64]", unsafe.Sizeof(Vec2[float64]{}), 16},
		{"Vec4[uint8]", unsafe.Sizeof(Vec4[uint8]{}), 4},
		{"Vec3[uint8]", unsafe.Sizeof(Vec3[uint8]{}), 4},
		{"Vec3P[bool]", unsafe.Sizeof(Vec3P[bool]{}), 3},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Sizeof(%s): got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestNextPow2(t *testing.T) {
	for n, want := range map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 12: 16, 16: 16} {
		if got := NextPow2(n); got != want {
			t.Errorf("NextPow2(%d): got %d, want %d", n, got, want)
		}
	}
}

func TestPhysicalLanes(t *testing.T) {
	if got := (Aligned{}).PhysicalLanes(3); got != 4 {
		t.Errorf("Aligned.PhysicalLanes(3): got %d, want 4", got)
	}
	if got := (Packed{}).PhysicalLanes(3); got != 3 {
		t.Errorf("Packed.PhysicalLanes(3): got %d, want 3", got)
	}
}
