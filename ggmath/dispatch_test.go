package ggmath

import "testing"

func TestDispatchLevel(t *testing.T) {
	level := CurrentLevel()
	if level.String() == "" {
		t.Error("DispatchLevel.String: empty")
	}
	if CurrentWidth() <= 0 {
		t.Errorf("CurrentWidth: got %d", CurrentWidth())
	}
	if NoSimdEnv() && level != DispatchScalar {
		t.Errorf("GGMATH_NO_SIMD set but level is %v", level)
	}
	t.Logf("dispatch: %s, width %d, float32 kernels %q", CurrentName(), CurrentWidth(), KernelsFor[float32]().Name)
}

func TestBuiltinKernelTables(t *testing.T) {
	if k := KernelsFor[float32](); k == nil || k.Add == nil || !k.AddGarbage {
		t.Error("float32: missing garbage-safe Add kernel")
	}
	if k := KernelsFor[float64](); k == nil || k.Div == nil || !k.DivGarbage {
		t.Error("float64: missing garbage-safe Div kernel")
	}
	if k := KernelsFor[int16](); k == nil || k.Div != nil || k.DivGarbage {
		t.Error("int16: Div must be left to the loop")
	}
	if k := KernelsFor[uint64](); k == nil || k.Not == nil {
		t.Error("uint64: missing Not kernel")
	}
	if KernelsFor[bool]() != nil {
		t.Error("bool: unexpected kernel table")
	}
	if CurrentLevel() == DispatchScalar && KernelsFor[float32]().Name != "portable" {
		t.Errorf("scalar dispatch uses %q kernels", KernelsFor[float32]().Name)
	}
}

func TestRegisterBuiltinKernels(t *testing.T) {
	saved := KernelsFor[int32]()
	defer RegisterKernels(saved)

	RegisterKernels[int32](nil)
	if KernelsFor[int32]() != nil {
		t.Fatal("RegisterKernels(nil): table still installed")
	}
	// Operators still work through the element-wise loop.
	if got, want := Add(New3[int32](1, 2, 3), New3[int32](1, 1, 1)), New3[int32](2, 3, 4); got != want {
		t.Errorf("Add without kernels: got %v, want %v", got, want)
	}
}

func TestDispatchLevelNames(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		name  string
		width int
	}{
		{DispatchScalar, "scalar", 16},
		{DispatchSSE2, "sse2", 16},
		{DispatchAVX2, "avx2", 32},
		{DispatchAVX512, "avx512", 64},
		{DispatchNEON, "neon", 16},
		{DispatchLevel(-1), "unknown", 16},
		{DispatchLevel(99), "unknown", 16},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.name {
			t.Errorf("DispatchLevel(%d).String: got %q, want %q", int(tt.level), got, tt.name)
		}
		if got := tt.level.Width(); got != tt.width {
			t.Errorf("%s.Width: got %d, want %d", tt.name, got, tt.width)
		}
	}
}

func TestNoSimdEnv(t *testing.T) {
	for val, want := range map[string]bool{
		"":      false,
		"1":     true,
		"true":  true,
		"yes":   true,
		"0":     false,
		"false": false,
	} {
		t.Setenv("GGMATH_NO_SIMD", val)
		if got := NoSimdEnv(); got != want {
			t.Errorf("NoSimdEnv with %q: got %v, want %v", val, got, want)
		}
	}
}
