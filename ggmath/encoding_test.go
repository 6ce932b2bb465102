package ggmath

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestJSONRoundTripBoolPacked(t *testing.T) {
	v := FromArray4P([4]bool{true, false, true, true})
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if got, want := string(data), "[true,false,true,true]"; got != want {
		t.Errorf("json.Marshal: got %s, want %s", got, want)
	}
	var back Vec4P[bool]
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if back != v {
		t.Errorf("JSON round trip: got %v, want %v", back, v)
	}
}

func TestYAMLRoundTripBoolPacked(t *testing.T) {
	v := FromArray4P([4]bool{true, false, true, true})
	data, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	var back Vec4P[bool]
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if back != v {
		t.Errorf("YAML round trip: got %v, want %v", back, v)
	}
}

func TestBinaryRoundTripBoolPacked(t *testing.T) {
	v := FromArray4P([4]bool{true, false, true, true})
	data, err := v.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(data) != 4 {
		t.Errorf("MarshalBinary: got %d bytes, want 4", len(data))
	}
	var back Vec4P[bool]
	if err := back.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if back != v {
		t.Errorf("binary round trip: got %v, want %v", back, v)
	}
}

func TestWireFormatIgnoresLayout(t *testing.T) {
	a := New3[float32](1, 2.5, -3)
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if got, want := string(data), "[1,2.5,-3]"; got != want {
		t.Errorf("json.Marshal Vec3: got %s, want %s", got, want)
	}
	var p Vec3P[float32]
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if p != Unalign3(a) {
		t.Errorf("Vec3 -> Vec3P: got %v, want %v", p, a)
	}

	bin, err := a.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(bin) != 12 {
		t.Errorf("MarshalBinary Vec3[float32]: got %d bytes, want 12 (no padding)", len(bin))
	}
	if math.Float32frombits(uint32(bin[4])|uint32(bin[5])<<8|uint32(bin[6])<<16|uint32(bin[7])<<24) != 2.5 {
		t.Errorf("MarshalBinary: lane 1 is not little-endian 2.5: %v", bin[4:8])
	}
}

func TestJSONBytesAsArray(t *testing.T) {
	v := New3P[uint8](1, 2, 255)
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if got, want := string(data), "[1,2,255]"; got != want {
		t.Errorf("json.Marshal uint8: got %s, want %s", got, want)
	}
	var back Vec3P[uint8]
	if err := json.Unmarshal(data, &back); err != nil || back != v {
		t.Errorf("json.Unmarshal uint8: got %v, %v", back, err)
	}
}

func TestLaneCountErrors(t *testing.T) {
	var v Vec3[int32]
	if err := json.Unmarshal([]byte("[1,2]"), &v); !errors.Is(err, ErrLaneCount) {
		t.Errorf("json.Unmarshal short: got %v, want ErrLaneCount", err)
	}
	if err := json.Unmarshal([]byte("[1,2,3,4]"), &v); !errors.Is(err, ErrLaneCount) {
		t.Errorf("json.Unmarshal long: got %v, want ErrLaneCount", err)
	}
	if err := yaml.Unmarshal([]byte("[1, 2]"), &v); !errors.Is(err, ErrLaneCount) {
		t.Errorf("yaml.Unmarshal short: got %v, want ErrLaneCount", err)
	}
	if err := v.UnmarshalBinary(make([]byte, 8)); !errors.Is(err, ErrLaneCount) {
		t.Errorf("UnmarshalBinary short: got %v, want ErrLaneCount", err)
	}
	if v != (Vec3[int32]{}) {
		t.Errorf("failed decode modified the vector: %v", v)
	}
	if err := json.Unmarshal([]byte(`{"x":1}`), &v); err == nil {
		t.Error("json.Unmarshal object: got nil error")
	}
}

func TestJSONNullLeavesVector(t *testing.T) {
	v := New3[int32](1, 2, 3)
	if err := json.Unmarshal([]byte("null"), &v); err != nil {
		t.Fatalf("json.Unmarshal null: %v", err)
	}
	if want := New3[int32](1, 2, 3); v != want {
		t.Errorf("json.Unmarshal null: got %v, want %v", v, want)
	}

	var doc struct {
		Pos Vec2P[float64] `json:"pos"`
		Dir *Vec3[float32] `json:"dir"`
	}
	doc.Pos = New2P(4.0, 5.0)
	if err := json.Unmarshal([]byte(`{"pos": null, "dir": null}`), &doc); err != nil {
		t.Fatalf("json.Unmarshal struct: %v", err)
	}
	if want := New2P(4.0, 5.0); doc.Pos != want {
		t.Errorf("pos: got %v, want %v", doc.Pos, want)
	}
	if doc.Dir != nil {
		t.Errorf("dir: got %v, want nil", *doc.Dir)
	}
}

func TestBinaryWordSizedLanes(t *testing.T) {
	v := New2[int](-1, 1<<40)
	data, err := v.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(data) != 16 {
		t.Errorf("MarshalBinary int: got %d bytes, want 16", len(data))
	}
	var back Vec2[int]
	if err := back.UnmarshalBinary(data); err != nil || back != v {
		t.Errorf("UnmarshalBinary int: got %v, %v", back, err)
	}

	u := New3P[uintptr](1, 2, 3)
	data, err = u.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary uintptr: %v", err)
	}
	var ub Vec3P[uintptr]
	if err := ub.UnmarshalBinary(data); err != nil || ub != u {
		t.Errorf("UnmarshalBinary uintptr: got %v, %v", ub, err)
	}
}
