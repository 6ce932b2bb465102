package ggmath

import (
	"os"
	"strconv"
)

// DispatchLevel is the instruction set the built-in kernels were selected
// for. It is fixed at package init.
type DispatchLevel int

const (
	// DispatchScalar runs every operator on the portable kernels.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 is the x86-64 baseline (128-bit registers).
	DispatchSSE2

	// DispatchAVX2 has 256-bit registers.
	DispatchAVX2

	// DispatchAVX512 has 512-bit registers.
	DispatchAVX512

	// DispatchNEON is ARM Advanced SIMD (128-bit registers).
	DispatchNEON
)

var levelNames = [...]string{
	DispatchScalar: "scalar",
	DispatchSSE2:   "sse2",
	DispatchAVX2:   "avx2",
	DispatchAVX512: "avx512",
	DispatchNEON:   "neon",
}

// String returns the lower-case name of the level, e.g. "avx2".
func (d DispatchLevel) String() string {
	if d < 0 || int(d) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[d]
}

// Width returns the register width of the level in bytes. The scalar level
// reports 16, the size of a Vec4[float32], which is the widest block the
// portable kernels process at once.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	}
	return 16
}

// currentLevel is written once by the architecture init function.
var currentLevel DispatchLevel

// CurrentLevel returns the level selected for this process.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns CurrentLevel().Width().
func CurrentWidth() int { return currentLevel.Width() }

// CurrentName returns CurrentLevel().String().
func CurrentName() string { return currentLevel.String() }

// NoSimdEnv reports whether GGMATH_NO_SIMD asks for the scalar level. Any
// non-empty value counts, except one that strconv.ParseBool reads as false.
func NoSimdEnv() bool {
	val := os.Getenv("GGMATH_NO_SIMD")
	if val == "" {
		return false
	}
	b, err := strconv.ParseBool(val)
	return err != nil || b
}

// initDispatch fixes the level, honoring GGMATH_NO_SIMD, and installs the
// kernel tables for it.
func initDispatch(detect func() DispatchLevel) {
	currentLevel = DispatchScalar
	if !NoSimdEnv() {
		currentLevel = detect()
	}
	selectKernels()
}
