package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAt_Row(t *testing.T) {
	a := arange(t, Shape{3, 4})

	v := a.At(1)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, []int{4, 5, 6, 7}, v.Values())
	assert.True(t, v.Valid())
}

func TestAt_Aliases(t *testing.T) {
	a := arange(t, Shape{2, 3})

	v := a.At(1)
	v.Set(0, 100)
	*v.Ref(2) = 200
	assert.Equal(t, 100, a.Get(1, 0))
	assert.Equal(t, 200, a.Get(1, 2))

	a.Set(-5, 1, 1)
	assert.Equal(t, -5, v.Get(1))
}

func TestAt_SubBlock3D(t *testing.T) {
	a := arange(t, Shape{2, 3, 4})

	assert.Equal(t, []int{12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23}, a.At(1).Values())
	assert.Equal(t, []int{20, 21, 22, 23}, a.At(1, 2).Values())
	assert.Equal(t, []int{21}, a.At(1, 2, 1).Values())
}

func TestAt_EmptyPrefixCoversBuffer(t *testing.T) {
	a := arange(t, Shape{2, 2})
	assert.Equal(t, []int{0, 1, 2, 3}, a.At().Values())
}

func TestAt_ClampedToBufferEnd(t *testing.T) {
	a := arange(t, Shape{2, 3})
	require.NoError(t, a.SwapAxes(0, 1))

	// dims [3 2] strides [1 3]: the window spans the stride of the last
	// prefix axis and stops at the buffer end.
	assert.Equal(t, []int{2}, a.At(2).Values())
	assert.Equal(t, []int{4, 5}, a.At(1, 1).Values())
}

func TestAt_AppendDoesNotSpill(t *testing.T) {
	a := arange(t, Shape{2, 2})

	row := a.At(0).Values()
	_ = append(row, 99)
	assert.Equal(t, 2, a.Get(1, 0))
}

func TestAt_InvalidatedByReshape(t *testing.T) {
	a := arange(t, Shape{2, 2})
	v := a.At(0)
	c := v.Copy()

	require.NoError(t, a.Reshape(Shape{4, 4}))
	assert.False(t, v.Valid())
	assert.Equal(t, []int{0, 1}, c)

	assert.True(t, a.At(0).Valid())
}

func TestView_ZeroValue(t *testing.T) {
	var v View[int]
	assert.False(t, v.Valid())
	assert.Equal(t, 0, v.Len())
}
