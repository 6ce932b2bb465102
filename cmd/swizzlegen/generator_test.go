package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatterns(t *testing.T) {
	for n, want := range map[int]int{1: 4, 2: 16, 3: 64, 4: 256} {
		assert.Len(t, Patterns(n, true), want, "n=%d with repeats", n)
	}
	for n, want := range map[int]int{1: 4, 2: 12, 3: 24, 4: 24} {
		assert.Len(t, Patterns(n, false), want, "n=%d without repeats", n)
	}
	assert.Equal(t, []int{0, 0}, Patterns(2, true)[0])
	assert.Equal(t, []int{0, 1}, Patterns(2, false)[0])
}

func TestName(t *testing.T) {
	assert.Equal(t, "ZYX", Name([]int{2, 1, 0}))
	assert.Equal(t, "WWXY", Name([]int{3, 3, 0, 1}))
}

func TestConstraintFor(t *testing.T) {
	assert.Equal(t, "Storage", constraintFor([]int{0, 1, 1}))
	assert.Equal(t, "AtLeast3", constraintFor([]int{2, 0}))
	assert.Equal(t, "AtLeast4", constraintFor([]int{0, 3}))
}

func TestGenerate(t *testing.T) {
	src, err := Generate("ggmath")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(src), "// Code generated by swizzlegen. DO NOT EDIT."))

	f, err := parser.ParseFile(token.NewFileSet(), "swizzle_gen.go", src, 0)
	require.NoError(t, err)
	assert.Equal(t, "ggmath", f.Name.Name)

	funcs := map[string]*ast.FuncDecl{}
	for _, d := range f.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok {
			funcs[fd.Name.Name] = fd
		}
	}
	reads := 4 + 16 + 64 + 256
	writes := 2 * (4 + 12 + 24 + 24)
	nBuilders := 2 * len(builders)
	assert.Len(t, funcs, reads+writes+nBuilders)

	for _, name := range []string{"X", "W", "ZYX", "WWXY", "SetXZ", "WithWZYX", "Vec3From2_1", "Vec4PFrom1_3"} {
		assert.Contains(t, funcs, name)
	}
	assert.NotContains(t, funcs, "SetXX", "write swizzles never repeat a lane")
}
