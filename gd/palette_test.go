package gd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteAllocate(t *testing.T) {
	img, err := NewIndexedImage(10, 10)
	require.NoError(t, err)
	defer img.Close()

	p := img.Palette()
	assert.Equal(t, MaxColors, p.Size())
	assert.Equal(t, 0, p.Used())
	assert.Equal(t, MaxColors, p.Available())

	c, err := p.Allocate(NewColor(10, 20, 30))
	require.NoError(t, err)
	index, ok := c.Index()
	assert.True(t, ok)
	assert.Equal(t, 0, index)
	assert.Equal(t, 1, p.Used())
	assert.Equal(t, "<gd.Palette [1]>", p.String())

	for i := 1; i < MaxColors; i++ {
		_, err := p.Allocate(NewColor(i, 0, 0))
		require.NoError(t, err)
	}
	assert.Equal(t, 0, p.Available())

	_, err = p.Allocate(NewColor(1, 2, 3))
	assert.ErrorIs(t, err, ErrPaletteFull)
}

func TestPaletteLookups(t *testing.T) {
	img, black, white, red := createIndexedImage(t, 10, 10)
	defer img.Close()
	p := img.Palette()

	found, ok := p.Exact(NewColor(255, 0, 0))
	require.True(t, ok)
	assert.True(t, found.Identical(red))

	_, ok = p.Exact(NewColor(1, 1, 1))
	assert.False(t, ok)

	_, err := p.ExactOrError(NewColor(1, 1, 1))
	assert.ErrorIs(t, err, ErrColorNotFound)

	found, ok = p.Closest(NewColor(250, 10, 10))
	require.True(t, ok)
	assert.True(t, found.Identical(red))

	found, ok = p.ClosestHWB(NewColor(20, 20, 20))
	require.True(t, ok)
	assert.True(t, found.Identical(black))

	found, err = p.Ensure(ColorWhite)
	require.NoError(t, err)
	assert.True(t, found.Identical(white))
	assert.Equal(t, 3, p.Used())

	found, ok = p.Resolve(NewColor(0, 0, 255))
	require.True(t, ok)
	assert.Equal(t, 4, p.Used())
	assert.Equal(t, 255, found.Blue())
}

func TestPaletteAt(t *testing.T) {
	img, black, _, red := createIndexedImage(t, 10, 10)
	defer img.Close()
	p := img.Palette()

	c, ok, err := p.At(0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, c.Identical(black))

	_, ok, err = p.At(100)
	require.NoError(t, err)
	assert.False(t, ok, "unallocated entry")

	_, ok, err = p.At(-1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = p.At(MaxColors)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	green := NewColor(0, 255, 0)
	require.NoError(t, p.SetAt(10, &green))
	c, ok, err = p.At(10)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, c.Equal(green))

	require.NoError(t, p.SetAt(10, nil))
	_, ok, _ = p.At(10)
	assert.False(t, ok)

	p.Deallocate(red)
	_, ok, _ = p.At(2)
	assert.False(t, ok)

	assert.ErrorIs(t, p.SetAt(MaxColors, &green), ErrIndexOutOfRange)
}

func TestPaletteColorsAndDeallocateUnused(t *testing.T) {
	img, black, white, _ := createIndexedImage(t, 10, 10)
	defer img.Close()
	p := img.Palette()

	colors := p.Colors()
	require.Len(t, colors, 3)
	assert.True(t, colors[0].Identical(black))

	// every pixel is black except one white pixel; red is unused
	require.NoError(t, img.Set(5, 5, white))
	assert.Equal(t, 1, p.DeallocateUnused())
	assert.Equal(t, 2, p.Used())
}

func TestTrueColorPalette(t *testing.T) {
	img, err := NewTrueColorImage(4, 4)
	require.NoError(t, err)
	defer img.Close()
	p := img.Palette()

	assert.Equal(t, 256*256*256*128, p.Size())
	assert.Equal(t, 0, p.Available())
	assert.Nil(t, p.Colors())
	assert.Equal(t, "<gd.Palette truecolor>", p.String())

	c := NewColorAlpha(1, 2, 3, 4)
	found, ok := p.Exact(c)
	require.True(t, ok)
	assert.True(t, found.Equal(c))

	entry, ok, err := p.At(c.RGBAValue())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, entry.Equal(c))

	assert.ErrorIs(t, p.SetAt(0, &c), ErrPaletteAssignment)
}
