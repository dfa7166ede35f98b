package gd

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColor(t *testing.T) {
	c := NewColor(0x12, 0x34, 0x56)
	assert.Equal(t, 0x12, c.Red())
	assert.Equal(t, 0x34, c.Green())
	assert.Equal(t, 0x56, c.Blue())
	assert.Equal(t, AlphaOpaque, c.Alpha())
	assert.Equal(t, 0x123456, c.RGBAValue())
	assert.True(t, c.Opaque())

	clamped := NewColorAlpha(-5, 300, 128, 200)
	assert.Equal(t, 0, clamped.Red())
	assert.Equal(t, 255, clamped.Green())
	assert.Equal(t, 128, clamped.Blue())
	assert.Equal(t, AlphaMax, clamped.Alpha())
	assert.True(t, clamped.Transparent())
}

func TestNewColorFloat(t *testing.T) {
	c := NewColorFloat(1, 0.5, 0, 1)
	assert.Equal(t, 255, c.Red())
	assert.Equal(t, 128, c.Green())
	assert.Equal(t, 0, c.Blue())
	assert.Equal(t, AlphaTransparent, c.Alpha())
}

func TestColorFromRGBA(t *testing.T) {
	c := ColorFromRGBA(0x7F00FF00)
	assert.Equal(t, 0xFF, c.Green())
	assert.Equal(t, 127, c.Alpha())
	assert.True(t, c.Equal(NewColorAlpha(0, 255, 0, 127)))
}

func TestColorSetters(t *testing.T) {
	c := NewColor(1, 2, 3)
	require.NoError(t, c.SetRed(10))
	require.NoError(t, c.SetGreen(20))
	require.NoError(t, c.SetBlue(300))
	require.NoError(t, c.SetAlpha(64))
	assert.Equal(t, NewColorAlpha(10, 20, 255, 64), c)
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "RGB#FF8000", NewColor(255, 128, 0).String())
	assert.Equal(t, "RGBA#0000FF40", NewColorAlpha(0, 0, 255, 64).String())

	img, black, _, _ := createIndexedImage(t, 4, 4)
	defer img.Close()
	assert.Equal(t, "RGB[0]#000000", black.String())
}

func TestColorEquality(t *testing.T) {
	a := NewColorAlpha(10, 20, 30, AlphaTransparent)
	b := NewColorAlpha(40, 50, 60, AlphaTransparent)
	assert.False(t, a.Equal(b))
	assert.True(t, a.VisuallyEqual(b))
	assert.False(t, NewColor(1, 2, 3).VisuallyEqual(NewColor(1, 2, 4)))

	img, _, white, _ := createIndexedImage(t, 4, 4)
	defer img.Close()
	dup, err := img.Palette().Allocate(ColorWhite)
	require.NoError(t, err)

	assert.True(t, white.Equal(dup))
	assert.False(t, white.Identical(dup))
	assert.True(t, white.Identical(ColorWhite))
	assert.True(t, white.Identical(white))
}

func TestColorAlphaBlend(t *testing.T) {
	background := NewColor(0, 0, 0)
	opaque := NewColor(255, 255, 255)
	assert.Equal(t, opaque, background.AlphaBlend(opaque))

	transparent := NewColorAlpha(255, 255, 255, AlphaTransparent)
	assert.Equal(t, background, background.AlphaBlend(transparent))

	half := background.AlphaBlend(NewColorAlpha(255, 0, 0, 64))
	assert.InDelta(t, 127, half.Red(), 2)
	assert.Equal(t, 0, half.Green())

	c := background
	require.NoError(t, c.Blend(opaque))
	assert.Equal(t, opaque, c)
}

func TestColorGoConversion(t *testing.T) {
	n := NewColorAlpha(255, 128, 0, AlphaOpaque).NRGBA()
	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 0, A: 255}, n)

	n = NewColorAlpha(0, 0, 0, AlphaTransparent).NRGBA()
	assert.Equal(t, uint8(0), n.A)

	c := ColorModel.Convert(color.NRGBA{R: 1, G: 2, B: 3, A: 255}).(Color)
	assert.Equal(t, NewColor(1, 2, 3), c)

	c = ColorModel.Convert(color.NRGBA{A: 0}).(Color)
	assert.Equal(t, AlphaTransparent, c.Alpha())

	// already a Color
	orig := NewColorAlpha(5, 6, 7, 8)
	assert.Equal(t, orig, ColorModel.Convert(orig))

	var _ color.Color = orig
}

func TestLinkedColorWritesThrough(t *testing.T) {
	img, _, _, red := createIndexedImage(t, 4, 4)
	defer img.Close()

	index, ok := red.Index()
	require.True(t, ok)
	assert.True(t, red.FromPalette(img.Palette()))
	assert.True(t, red.FromPalette(nil))

	require.NoError(t, red.SetBlue(200))
	stored, ok, err := img.Palette().At(index)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, NewColor(255, 0, 200), NewColor(stored.Red(), stored.Green(), stored.Blue()))

	// blending produces an unlinked color
	blended := red.AlphaBlend(ColorBlack)
	assert.Nil(t, blended.Palette())
}

func TestLinkedColorClosedImage(t *testing.T) {
	img, _, _, red := createIndexedImage(t, 4, 4)
	img.Close()

	err := red.SetGreen(64)
	assert.ErrorIs(t, err, ErrImageClosed)
	assert.Equal(t, 64, red.Green(), "the value is kept locally")

	assert.ErrorIs(t, red.Blend(ColorWhite), ErrImageClosed)
}
