package ggmath

import "testing"

func TestShape(t *testing.T) {
	tests := []struct {
		got  Shape
		want string
	}{
		{New2[float32](0, 0).Shape(), "2/aligned"},
		{New3P[int8](0, 0, 0).Shape(), "3/packed"},
		{ShapeOf[bool, aligned4[bool]](), "4/aligned"},
		{ShapeOf[uint16, packed2[uint16]](), "2/packed"},
	}
	for _, tt := range tests {
		if got := tt.got.String(); got != tt.want {
			t.Errorf("Shape: got %q, want %q", got, tt.want)
		}
	}
	if !New3[float64](1, 2, 3).IsAligned() || New3P[float64](1, 2, 3).IsAligned() {
		t.Error("IsAligned: wrong layout")
	}
}

func TestAs(t *testing.T) {
	v := New3[float32](1, 2, 3)
	if got, ok := As[Vec3[float32]](v); !ok || got != v {
		t.Errorf("As[Vec3[float32]]: got %v, %v", got, ok)
	}
	if _, ok := As[Vec3P[float32]](v); ok {
		t.Error("As[Vec3P[float32]]: layout mismatch accepted")
	}
	if _, ok := As[Vec3[float64]](v); ok {
		t.Error("As[Vec3[float64]]: scalar mismatch accepted")
	}
	if _, ok := As[Vec4[float32]](v); ok {
		t.Error("As[Vec4[float32]]: length mismatch accepted")
	}
}

// describe branches on the concrete shape of a generic vector.
func describe[T Scalar, S Storage[T]](v *Vector[T, S]) string {
	switch r := Resolve(v); {
	case r.Vec2 != nil:
		return "vec2"
	case r.Vec3 != nil:
		return "vec3"
	case r.Vec4 != nil:
		return "vec4"
	case r.Vec2P != nil:
		return "vec2p"
	case r.Vec3P != nil:
		return "vec3p"
	case r.Vec4P != nil:
		return "vec4p"
	}
	return "unknown"
}

func TestResolve(t *testing.T) {
	v3 := New3[int32](1, 2, 3)
	p4 := New4P[bool](true, true, false, false)
	p2 := New2P[float64](1, 2)
	if got := describe(&v3); got != "vec3" {
		t.Errorf("Resolve(Vec3): got %s", got)
	}
	if got := describe(&p4); got != "vec4p" {
		t.Errorf("Resolve(Vec4P): got %s", got)
	}
	if got := describe(&p2); got != "vec2p" {
		t.Errorf("Resolve(Vec2P): got %s", got)
	}

	// The resolved pointer aliases the original.
	Resolve(&v3).Vec3.Set(0, 10)
	if v3.data[0] != 10 {
		t.Error("Resolve: resolved pointer does not alias the vector")
	}
}

func TestReinterpret(t *testing.T) {
	v := New3[float32](1, 2, 3)
	p, ok := reinterpret[[4]float32](&v)
	if !ok || p[2] != 3 {
		t.Errorf("reinterpret Vec3 -> [4]float32: got %v, %v", p, ok)
	}
	q := New3P[float32](1, 2, 3)
	if _, ok := reinterpret[[4]float32](&q); ok {
		t.Error("reinterpret Vec3P -> [4]float32: larger destination accepted")
	}
	b := New4P[uint8](1, 2, 3, 4)
	if _, ok := reinterpret[uint32](&b); ok {
		t.Error("reinterpret [4]uint8 -> uint32: stricter alignment accepted")
	}
}
