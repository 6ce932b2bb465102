package ggmath

import (
	"math"
	"testing"
)

func TestAddPacked2Int32(t *testing.T) {
	a := FromArray2P([2]int32{3, 4})
	b := FromArray2P([2]int32{1, 2})
	got := ToArray2(Add(a, b))
	want := [2]int32{4, 6}
	if got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
}

func TestArithmetic(t *testing.T) {
	a := New4[float32](10, 20, 30, 40)
	b := New4[float32](5, 4, 3, 2)

	tests := []struct {
		name string
		got  Vec4[float32]
		want [4]float32
	}{
		{"Add", Add(a, b), [4]float32{15, 24, 33, 42}},
		{"Sub", Sub(a, b), [4]float32{5, 16, 27, 38}},
		{"Mul", Mul(a, b), [4]float32{50, 80, 90, 80}},
		{"Div", Div(a, b), [4]float32{2, 5, 10, 20}},
		{"Rem", Rem(a, b), [4]float32{0, 0, 0, 0}},
		{"AddScalar", AddScalar(a, 1), [4]float32{11, 21, 31, 41}},
		{"SubScalar", SubScalar(a, 1), [4]float32{9, 19, 29, 39}},
		{"MulScalar", MulScalar(a, 2), [4]float32{20, 40, 60, 80}},
		{"DivScalar", DivScalar(a, 10), [4]float32{1, 2, 3, 4}},
		{"RemScalar", RemScalar(a, 7), [4]float32{3, 6, 2, 5}},
		{"Neg", Neg(b), [4]float32{-5, -4, -3, -2}},
		{"Min", Min(a, Splat4[float32](25)), [4]float32{10, 20, 25, 25}},
		{"Max", Max(a, Splat4[float32](25)), [4]float32{25, 25, 30, 40}},
		{"Clamp", Clamp(a, Splat4[float32](15), Splat4[float32](35)), [4]float32{15, 20, 30, 35}},
	}
	for _, tt := range tests {
		got := ToArray4(tt.got)
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: lane %d: got %v, want %v", tt.name, i, got[i], tt.want[i])
			}
		}
	}
}

func TestIntegerArithmetic(t *testing.T) {
	a := New3[int32](7, -7, 100)
	b := New3[int32](2, 2, -3)

	if got, want := ToArray3(Div(a, b)), [3]int32{3, -3, -33}; got != want {
		t.Errorf("Div: got %v, want %v", got, want)
	}
	if got, want := ToArray3(Rem(a, b)), [3]int32{1, -1, 1}; got != want {
		t.Errorf("Rem: got %v, want %v", got, want)
	}
	if got, want := ToArray3(Mul(a, b)), [3]int32{14, -14, -300}; got != want {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
	if got, want := ToArray3(Neg(a)), [3]int32{-7, 7, -100}; got != want {
		t.Errorf("Neg: got %v, want %v", got, want)
	}
}

func TestIntRemMatchesOperator(t *testing.T) {
	values := []int8{math.MinInt8, -100, -7, -1, 1, 3, 7, 100, math.MaxInt8}
	for _, x := range values {
		for _, y := range values {
			if y == -1 && x == math.MinInt8 {
				if got := intRem(x, y); got != 0 {
					t.Errorf("intRem(%d, %d): got %d, want 0", x, y, got)
				}
				continue
			}
			if got, want := intRem(x, y), x%y; got != want {
				t.Errorf("intRem(%d, %d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Div by zero: expected panic")
		}
	}()
	Div(New3[int32](1, 2, 3), New3[int32](1, 0, 1))
}

// TestDivZeroPaddingLane checks that integer division never runs on the
// padding lane of an aligned three-lane vector, which holds zero.
func TestDivZeroPaddingLane(t *testing.T) {
	got := ToArray3(Div(New3[int32](6, 8, 10), New3[int32](2, 2, 2)))
	if want := [3]int32{3, 4, 5}; got != want {
		t.Errorf("Div: got %v, want %v", got, want)
	}
}

var float32Specials = []float32{
	0,
	float32(math.Copysign(0, -1)),
	1,
	-1,
	0.1,
	float32(math.NaN()),
	float32(math.Inf(1)),
	float32(math.Inf(-1)),
	math.MaxFloat32,
	-math.MaxFloat32,
	math.SmallestNonzeroFloat32,
}

var float64Specials = []float64{
	0,
	math.Copysign(0, -1),
	1,
	-1,
	0.1,
	math.NaN(),
	math.Inf(1),
	math.Inf(-1),
	math.MaxFloat64,
	-math.MaxFloat64,
	math.SmallestNonzeroFloat64,
}

// sameFloat reports whether a and b are both NaN or bit-identical.
func sameFloat[T Floats](a, b T) bool {
	if a != a || b != b {
		return a != a && b != b
	}
	return math.Float64bits(float64(a)) == math.Float64bits(float64(b))
}

func checkSame[T Floats](t *testing.T, name string, got, want []T) {
	t.Helper()
	for i := range want {
		if !sameFloat(got[i], want[i]) {
			t.Errorf("%s: lane %d: got %v, want %v", name, i, got[i], want[i])
		}
	}
}

func fastPathAgreement[T Floats, S Storage[T]](t *testing.T, specials []T) {
	t.Helper()
	var a, b Vector[T, S]
	n := a.Len()
	for _, x := range specials {
		for _, y := range specials {
			for i := range n {
				a.Set(i, x)
				b.Set(i, y)
			}
			a.Set(n-1, y)
			b.Set(0, x)

			checkSame(t, "Add", Add(a, b).Slice(), addLoop(a, b).Slice())
			checkSame(t, "Sub", Sub(a, b).Slice(), subLoop(a, b).Slice())
			checkSame(t, "Mul", Mul(a, b).Slice(), mulLoop(a, b).Slice())
			checkSame(t, "Div", Div(a, b).Slice(), divLoop(a, b).Slice())
			checkSame(t, "Neg", Neg(a).Slice(), negLoop(a).Slice())
			checkSame(t, "Min", Min(a, b).Slice(), Map2(a, b, func(x, y T) T { return min(x, y) }).Slice())
			checkSame(t, "Max", Max(a, b).Slice(), Map2(a, b, func(x, y T) T { return max(x, y) }).Slice())
			checkMasks(t, a, b)
		}
	}
}

// checkMasks compares every comparison operator with the element-wise loop.
func checkMasks[T Numbers, S Storage[T]](t *testing.T, a, b Vector[T, S]) {
	t.Helper()
	masks := []struct {
		name string
		got  Mask
		want Mask
	}{
		{"EqMask", EqMask(a, b), compareMask(a, b, func(x, y T) bool { return x == y })},
		{"NeMask", NeMask(a, b), compareMask(a, b, func(x, y T) bool { return x != y })},
		{"LtMask", LtMask(a, b), compareMask(a, b, func(x, y T) bool { return x < y })},
		{"LeMask", LeMask(a, b), compareMask(a, b, func(x, y T) bool { return x <= y })},
		{"GtMask", GtMask(a, b), compareMask(a, b, func(x, y T) bool { return x > y })},
		{"GeMask", GeMask(a, b), compareMask(a, b, func(x, y T) bool { return x >= y })},
	}
	for _, m := range masks {
		if m.got != m.want {
			t.Errorf("%s(%v, %v): got %v, want %v", m.name, a, b, m.got, m.want)
		}
	}
	eq := true
	x, y := a.Lanes(), b.Lanes()
	for i := range x {
		eq = eq && x[i] == y[i]
	}
	if Equal(a, b) != eq || NotEqual(a, b) == eq {
		t.Errorf("Equal/NotEqual(%v, %v): got %v/%v, want %v/%v", a, b, Equal(a, b), NotEqual(a, b), eq, !eq)
	}
}

func TestFastPathAgreement(t *testing.T) {
	t.Run("Vec3[float32]", func(t *testing.T) { fastPathAgreement[float32, aligned3[float32]](t, float32Specials) })
	t.Run("Vec4[float32]", func(t *testing.T) { fastPathAgreement[float32, aligned4[float32]](t, float32Specials) })
	t.Run("Vec4P[float32]", func(t *testing.T) { fastPathAgreement[float32, packed4[float32]](t, float32Specials) })
	t.Run("Vec3P[float32]", func(t *testing.T) { fastPathAgreement[float32, packed3[float32]](t, float32Specials) })
	t.Run("Vec3[float64]", func(t *testing.T) { fastPathAgreement[float64, aligned3[float64]](t, float64Specials) })
	t.Run("Vec4[float64]", func(t *testing.T) { fastPathAgreement[float64, aligned4[float64]](t, float64Specials) })
	t.Run("Vec2[float64]", func(t *testing.T) { fastPathAgreement[float64, aligned2[float64]](t, float64Specials) })
}

func TestFastPathIntegerAgreement(t *testing.T) {
	values := []int32{math.MinInt32, -1, 0, 1, 7, math.MaxInt32}
	for _, x := range values {
		for _, y := range values {
			a := New3(x, y, x)
			b := New3(y, x, x)
			if !overflowChecks {
				if got, want := Add(a, b), WrappingAdd(a, b); got != want {
					t.Errorf("Add(%v, %v): got %v, want %v", a, b, got, want)
				}
				if got, want := Mul(a, b), WrappingMul(a, b); got != want {
					t.Errorf("Mul(%v, %v): got %v, want %v", a, b, got, want)
				}
			}
			if got, want := ToArray3(And(a, b)), [3]int32{x & y, y & x, x}; got != want {
				t.Errorf("And(%v, %v): got %v, want %v", a, b, got, want)
			}
			if got, want := ToArray3(Xor(a, b)), [3]int32{x ^ y, y ^ x, 0}; got != want {
				t.Errorf("Xor(%v, %v): got %v, want %v", a, b, got, want)
			}
			if got, want := ToArray3(AndNot(a, b)), [3]int32{x &^ y, y &^ x, 0}; got != want {
				t.Errorf("AndNot(%v, %v): got %v, want %v", a, b, got, want)
			}
			checkMasks(t, a, b)
			checkMasks(t, New4(x, y, y, x), New4(y, y, x, x))
		}
	}
}

func TestFastPathShiftAgreement(t *testing.T) {
	values := []uint32{0, 1, 0x80000001, math.MaxUint32}
	counts := []uint32{0, 1, 7, 31, 32, 100}
	for _, x := range values {
		for _, n := range counts {
			v := New3(x, ^x, x>>1)
			s := New3(n, n/2, 31-min(n, 31))
			if got, want := Shl(v, s), Map2(v, s, func(x, n uint32) uint32 { return x << n }); got != want {
				t.Errorf("Shl(%v, %v): got %v, want %v", v, s, got, want)
			}
			if got, want := Shr(v, s), Map2(v, s, func(x, n uint32) uint32 { return x >> n }); got != want {
				t.Errorf("Shr(%v, %v): got %v, want %v", v, s, got, want)
			}
		}
	}
	v := New4[int16](-8, 8, math.MinInt16, -1)
	s := New4[int16](1, 3, 15, 20)
	if got, want := ToArray4(Shr(v, s)), [4]int16{-4, 1, -1, -1}; got != want {
		t.Errorf("Shr signed: got %v, want %v", got, want)
	}
	if got, want := ToArray4(Shl(v, s)), [4]int16{-16, 64, 0, 0}; got != want {
		t.Errorf("Shl signed: got %v, want %v", got, want)
	}
}

func TestShiftNegativeCountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Shl with a negative count: expected panic")
		}
	}()
	Shl(New4[int32](1, 2, 3, 4), New4[int32](1, -1, 1, 1))
}

func TestFastPathTaken(t *testing.T) {
	a := New3[float32](1, 2, 3)
	if _, ok := binaryFast(&a, &a, opAdd); !ok {
		t.Error("binaryFast: Vec3[float32] Add should use the four-lane kernel")
	}
	p := New3P[float32](1, 2, 3)
	if _, ok := binaryFast(&p, &p, opAdd); ok {
		t.Error("binaryFast: Vec3P[float32] has three physical lanes and must use the loop")
	}
	i := New3[int32](1, 2, 3)
	if _, ok := binaryFast(&i, &i, opDiv); ok {
		t.Error("binaryFast: int32 Div is not garbage-safe and must use the loop")
	}
	b := New4(true, false, true, false)
	if _, ok := binaryFast(&b, &b, opAnd); ok {
		t.Error("binaryFast: bool has no kernels")
	}
	if _, ok := compareFast(&b, &b, opEq); ok {
		t.Error("compareFast: bool has no kernels")
	}

	u := New3[uint16](1, 2, 3)
	for _, op := range []opcode{opAndNot, opShl, opShr} {
		if _, ok := binaryFast(&u, &u, op); !ok {
			t.Errorf("binaryFast: Vec3[uint16] op %d should use the four-lane kernel", op)
		}
	}
	if _, ok := binaryFast(&i, &i, opShl); ok {
		t.Error("binaryFast: signed Vec3 Shl is not garbage-safe and must use the loop")
	}
	i4 := New4[int32](1, 2, 3, 4)
	if _, ok := binaryFast(&i4, &i4, opShr); !ok {
		t.Error("binaryFast: Vec4[int32] Shr should use the four-lane kernel")
	}
	for _, op := range []opcode{opEq, opNe, opLt, opLe, opGt, opGe} {
		if _, ok := compareFast(&a, &a, op); !ok {
			t.Errorf("compareFast: Vec3[float32] op %d should use the four-lane kernel", op)
		}
		if _, ok := compareFast(&i, &i, op); !ok {
			t.Errorf("compareFast: Vec3[int32] op %d should use the four-lane kernel", op)
		}
		if _, ok := compareFast(&p, &p, op); ok {
			t.Errorf("compareFast: Vec3P[float32] op %d must use the loop", op)
		}
	}
}

// TestCompareFastIgnoresPadding checks that a kernel bit for the padding
// lane never reaches the mask.
func TestCompareFastIgnoresPadding(t *testing.T) {
	a := New3[float32](1, 2, 3)
	m, ok := compareFast(&a, &a, opEq)
	if !ok {
		t.Fatal("compareFast: Vec3[float32] Eq should use the four-lane kernel")
	}
	if m.Len() != 3 || m.Bits() != 0b111 {
		t.Errorf("EqMask: got bits %04b over %d lanes, want 0111 over 3", m.Bits(), m.Len())
	}
	if !Equal(a, a) || NotEqual(a, a) {
		t.Error("Equal/NotEqual of a vector with itself")
	}
	if m, _ := compareFast(&a, &a, opNe); m.Any() {
		t.Errorf("NeMask: got %v, want no lanes", m)
	}
}

func TestPaddingLaneStaysZero(t *testing.T) {
	a := New3[float32](1, 2, 3)
	b := New3[float32](4, 5, 6)
	for name, r := range map[string]Vec3[float32]{
		"Add": Add(a, b),
		"Sub": Sub(a, b),
		"Mul": Mul(a, b),
		"Div": Div(a, b),
		"Neg": Neg(a),
		"Min": Min(a, b),
		"Max": Max(a, b),
	} {
		if r.data[3] != 0 {
			t.Errorf("%s: padding lane: got %v, want 0", name, r.data[3])
		}
	}
}

type meters float32

func TestCustomScalarKernels(t *testing.T) {
	if KernelsFor[meters]() != nil {
		t.Fatal("KernelsFor[meters]: expected no table before registration")
	}

	calls := 0
	k := FloatKernels[meters]()
	add := k.Add
	k.Add = func(dst, a, b *[4]meters) {
		calls++
		add(dst, a, b)
	}
	RegisterKernels(k)
	defer RegisterKernels[meters](nil)

	got := Add(New3[meters](1, 2, 3), New3[meters](1, 1, 1))
	if want := New3[meters](2, 3, 4); got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if calls != 1 {
		t.Errorf("Add: custom kernel calls: got %d, want 1", calls)
	}
	if got.data[3] != 0 {
		t.Errorf("Add: padding lane: got %v, want 0", got.data[3])
	}
}

func TestBitwise(t *testing.T) {
	a := New4[uint8](0b1100, 0b1010, 0xff, 1)
	b := New4[uint8](0b1010, 0b0110, 0x0f, 1)

	tests := []struct {
		name string
		got  Vec4[uint8]
		want [4]uint8
	}{
		{"And", And(a, b), [4]uint8{0b1000, 0b0010, 0x0f, 1}},
		{"Or", Or(a, b), [4]uint8{0b1110, 0b1110, 0xff, 1}},
		{"Xor", Xor(a, b), [4]uint8{0b0110, 0b1100, 0xf0, 0}},
		{"AndNot", AndNot(a, b), [4]uint8{0b0100, 0b1000, 0xf0, 0}},
		{"Not", Not(b), [4]uint8{0xf5, 0xf9, 0xf0, 0xfe}},
		{"Shl", Shl(a, New4[uint8](1, 2, 4, 8)), [4]uint8{0b11000, 0b101000, 0xf0, 0}},
		{"Shr", Shr(a, New4[uint8](1, 2, 4, 8)), [4]uint8{0b110, 0b10, 0x0f, 0}},
		{"ShlScalar", ShlScalar(a, 1), [4]uint8{0b11000, 0b10100, 0xfe, 2}},
		{"ShrScalar", ShrScalar(a, 1), [4]uint8{0b110, 0b101, 0x7f, 0}},
	}
	for _, tt := range tests {
		if got := ToArray4(tt.got); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}

	if got, want := ToArray2(Shr(New2[int8](-8, 8), New2[int8](1, 1))), [2]int8{-4, 4}; got != want {
		t.Errorf("Shr signed: got %v, want %v", got, want)
	}
}

func TestLogical(t *testing.T) {
	a := New4P(true, true, false, false)
	b := New4P(true, false, true, false)

	tests := []struct {
		name string
		got  Vec4P[bool]
		want [4]bool
	}{
		{"LogicalAnd", LogicalAnd(a, b), [4]bool{true, false, false, false}},
		{"LogicalOr", LogicalOr(a, b), [4]bool{true, true, true, false}},
		{"LogicalXor", LogicalXor(a, b), [4]bool{false, true, true, false}},
		{"LogicalNot", LogicalNot(a), [4]bool{false, false, true, true}},
	}
	for _, tt := range tests {
		if got := ToArray4(tt.got); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}

	if All(a) || !Any(a) {
		t.Errorf("All/Any(%v): got %v/%v, want false/true", a, All(a), Any(a))
	}
	if !All(Splat3(true)) {
		t.Error("All(Splat3(true)): got false")
	}
	if Any(Splat2(false)) {
		t.Error("Any(Splat2(false)): got true")
	}
}
