package gd

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageFromGo(t *testing.T) {
	src := gradient(40, 30)
	src.Set(0, 0, color.RGBA{R: 255, A: 255})

	img, err := NewImageFromGo(src)
	require.NoError(t, err)
	defer img.Close()

	assert.Equal(t, 40, img.Width())
	assert.Equal(t, 30, img.Height())
	assert.True(t, img.IsTrueColor())
	assert.True(t, img.SaveAlpha())
	assert.Equal(t, NewColor(255, 0, 0), img.At(0, 0))

	// sub images are copied from their own origin
	sub := src.SubImage(image.Rect(10, 10, 20, 20))
	part, err := NewImageFromGo(sub)
	require.NoError(t, err)
	defer part.Close()
	assert.Equal(t, 10, part.Width())
	assert.Equal(t, colorFromGo(src.At(10, 10)), part.At(0, 0))

	_, err = NewImageFromGo(image.NewRGBA(image.Rectangle{}))
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestImageToGo(t *testing.T) {
	img, err := NewImage(8, 8)
	require.NoError(t, err)
	defer img.Close()
	require.NoError(t, img.SetAlphaBlending(false))
	require.NoError(t, img.Set(1, 1, NewColorAlpha(10, 20, 30, AlphaTransparent)))
	require.NoError(t, img.Set(2, 2, NewColor(200, 100, 50)))

	nrgba, err := img.ToGo()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 255}, nrgba.NRGBAAt(2, 2))
	assert.Equal(t, uint8(0), nrgba.NRGBAAt(1, 1).A)

	back, err := NewImageFromGo(nrgba)
	require.NoError(t, err)
	defer back.Close()
	assert.Equal(t, img.At(2, 2), back.At(2, 2))
	assert.Equal(t, AlphaTransparent, back.At(1, 1).Alpha())

	indexed, _, _, red := createIndexedImage(t, 4, 4)
	defer indexed.Close()
	require.NoError(t, indexed.Set(3, 3, red))
	out, err := indexed.ToGo()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, out.NRGBAAt(3, 3))
}

func TestGoImageAdapter(t *testing.T) {
	img, err := NewImage(6, 4)
	require.NoError(t, err)
	defer img.Close()
	require.NoError(t, img.Set(5, 3, ColorWhite))

	var view image.Image = img.GoImage()
	assert.Equal(t, image.Rect(0, 0, 6, 4), view.Bounds())
	assert.Equal(t, ColorModel, view.ColorModel())
	assert.Equal(t, ColorModel, img.ColorModel())

	dst := image.NewRGBA(view.Bounds())
	draw.Draw(dst, dst.Bounds(), view, image.Point{}, draw.Src)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, dst.RGBAAt(5, 3))
	assert.Equal(t, color.RGBA{A: 255}, dst.RGBAAt(0, 0))

	assert.Equal(t, ColorTransparent, view.At(-1, 0))
}

func TestImageRGBAAt(t *testing.T) {
	img, err := NewImage(4, 4)
	require.NoError(t, err)
	defer img.Close()
	require.NoError(t, img.Set(1, 2, NewColor(9, 8, 7)))
	assert.Equal(t, img.At(1, 2), img.RGBAAt(1, 2))

	indexed, _, white, red := createIndexedImage(t, 4, 4)
	defer indexed.Close()
	require.NoError(t, indexed.Set(0, 0, red))
	require.NoError(t, indexed.Set(1, 0, white))
	require.NoError(t, indexed.SetTransparent(&white))

	c := indexed.RGBAAt(0, 0)
	assert.Equal(t, NewColor(255, 0, 0), c)
	assert.Nil(t, c.Palette())
	assert.Equal(t, AlphaTransparent, indexed.RGBAAt(1, 0).Alpha())

	// the Go view reads through the same path
	_, _, _, a := indexed.GoImage().At(1, 0).RGBA()
	assert.Equal(t, uint32(0), a)

	indexed.Close()
	assert.Equal(t, Color{}, indexed.RGBAAt(0, 0))
}
