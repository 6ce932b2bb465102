package aabb

import (
	"encoding/json"
	"testing"

	"github.com/ajroetker/go-ggmath/ggmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func v3(x, y, z float64) ggmath.Vec3[float64] { return ggmath.New3(x, y, z) }

func TestRepresentationsAgree(t *testing.T) {
	ms := FromMinSize(v3(1, 2, 3), v3(4, 6, 8))
	ce := FromCenterExtents(v3(3, 5, 7), v3(2, 3, 4))
	mm := FromMinMax(v3(1, 2, 3), v3(5, 8, 11))

	for name, b := range map[string]interface {
		Min() ggmath.Vec3[float64]
		Max() ggmath.Vec3[float64]
		Size() ggmath.Vec3[float64]
		Center() ggmath.Vec3[float64]
		Extents() ggmath.Vec3[float64]
	}{"MinSize": ms, "CenterExtents": ce, "MinMax": mm} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, v3(1, 2, 3), b.Min())
			assert.Equal(t, v3(5, 8, 11), b.Max())
			assert.Equal(t, v3(4, 6, 8), b.Size())
			assert.Equal(t, v3(3, 5, 7), b.Center())
			assert.Equal(t, v3(2, 3, 4), b.Extents())
		})
	}
}

func TestConvert(t *testing.T) {
	mm := FromMinMax(v3(-1, 0, 2), v3(3, 4, 6))
	ce := Convert[CenterExtents](mm)
	c, e := ce.Vectors()
	assert.Equal(t, v3(1, 2, 4), c)
	assert.Equal(t, v3(2, 2, 2), e)

	ms := Convert[MinSize](ce)
	lo, size := ms.Vectors()
	assert.Equal(t, v3(-1, 0, 2), lo)
	assert.Equal(t, v3(4, 4, 4), size)

	assert.Equal(t, mm, Convert[MinMax](ms))
	assert.Equal(t, mm, Convert[MinMax](mm))
}

func TestIntegerCenter(t *testing.T) {
	b := FromMinMax(ggmath.New3[int32](0, 0, 0), ggmath.New3[int32](3, 4, 5))
	assert.Equal(t, ggmath.New3[int32](1, 2, 2), b.Extents())
	assert.Equal(t, ggmath.New3[int32](1, 2, 2), b.Center())
}

func TestContainsPoint(t *testing.T) {
	b := FromCenterExtents(v3(0, 0, 0), v3(1, 2, 3))
	assert.True(t, b.ContainsPoint(v3(0, 0, 0)))
	assert.True(t, b.ContainsPoint(v3(1, -2, 3)), "boundary is inside")
	assert.False(t, b.ContainsPoint(v3(1.5, 0, 0)))
	assert.False(t, b.ContainsPoint(v3(0, 0, -3.5)))
}

func TestIntersects(t *testing.T) {
	a := FromMinMax(v3(0, 0, 0), v3(2, 2, 2))
	tests := []struct {
		name string
		b    Aabb[float64, MinMax]
		want bool
	}{
		{"overlap", FromMinMax(v3(1, 1, 1), v3(3, 3, 3)), true},
		{"touching", FromMinMax(v3(2, 0, 0), v3(4, 2, 2)), true},
		{"inside", FromMinMax(v3(0.5, 0.5, 0.5), v3(1, 1, 1)), true},
		{"apart on x", FromMinMax(v3(2.5, 0, 0), v3(4, 2, 2)), false},
		{"apart on z", FromMinMax(v3(0, 0, -3), v3(2, 2, -1)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(a))
			_, ok := a.Intersection(tt.b)
			assert.Equal(t, tt.want, ok)
		})
	}

	in, ok := a.Intersection(FromMinMax(v3(1, 1, 1), v3(3, 3, 3)))
	require.True(t, ok)
	assert.Equal(t, FromMinMax(v3(1, 1, 1), v3(2, 2, 2)), in)
}

func TestUnion(t *testing.T) {
	a := FromMinSize(v3(0, 0, 0), v3(1, 1, 1))
	b := FromMinSize(v3(2, -1, 0.5), v3(1, 1, 1))
	u := a.Union(b)
	assert.Equal(t, v3(0, -1, 0), u.Min())
	assert.Equal(t, v3(3, 1, 1.5), u.Max())
	assert.True(t, u.ContainsPoint(v3(2.5, -0.5, 1)))

	e := a.ExpandToInclude(v3(-1, 0.5, 4))
	assert.Equal(t, v3(-1, 0, 0), e.Min())
	assert.Equal(t, v3(1, 1, 4), e.Max())
}

func TestIsEmpty(t *testing.T) {
	assert.False(t, FromMinMax(v3(0, 0, 0), v3(0, 0, 0)).IsEmpty())
	assert.True(t, FromMinSize(v3(0, 0, 0), v3(1, -1, 1)).IsEmpty())
}

func TestString(t *testing.T) {
	assert.Equal(t, "{min: (1, 2, 3), size: (4, 5, 6)}", FromMinSize(v3(1, 2, 3), v3(4, 5, 6)).String())
	assert.Equal(t, "{center: (0, 0, 0), extents: (1, 1, 1)}", FromCenterExtents(v3(0, 0, 0), v3(1, 1, 1)).String())
}

func TestEncoding(t *testing.T) {
	b := FromCenterExtents(ggmath.New3[float32](1, 2, 3), ggmath.New3[float32](0.5, 0.5, 0.5))
	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2,3],[0.5,0.5,0.5]]`, string(data))

	var back Aabb[float32, CenterExtents]
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, b, back)

	require.ErrorIs(t, json.Unmarshal([]byte(`[[1,2,3]]`), &back), ggmath.ErrLaneCount)
	require.ErrorIs(t, json.Unmarshal([]byte(`[[1,2,3],[1,2]]`), &back), ggmath.ErrLaneCount)

	y, err := yaml.Marshal(b)
	require.NoError(t, err)
	var fromYAML Aabb[float32, CenterExtents]
	require.NoError(t, yaml.Unmarshal(y, &fromYAML))
	assert.Equal(t, b, fromYAML)
}
