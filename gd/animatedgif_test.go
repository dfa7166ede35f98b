package gd

import (
	"bytes"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimatedGif(t *testing.T) {
	image1, _, white, _ := createIndexedImage(t, 64, 64)
	defer image1.Close()
	require.NoError(t, image1.Draw(func(c *Canvas) error {
		if err := c.SetColor(white); err != nil {
			return err
		}
		return c.Line(16, 16, 48, 48)
	}))

	image2, _, _, red := createIndexedImage(t, 64, 64)
	defer image2.Close()
	require.NoError(t, image2.Draw(func(c *Canvas) error {
		if err := c.SetColor(red); err != nil {
			return err
		}
		return c.Rectangle(8, 16, 48, 48, false)
	}))

	anim := NewAnimatedGif(nil)
	require.NoError(t, anim.Add(image1, nil))
	require.NoError(t, anim.Add(image2, &FrameOptions{Delay: 50, Disposal: DisposalNone}))
	require.NoError(t, anim.Add(image1, &FrameOptions{Delay: 50, Disposal: DisposalNone, PreviousFrame: image2}))

	_, err := anim.Bytes()
	assert.ErrorIs(t, err, ErrAnimationNotEnded)
	assert.False(t, anim.Ended())

	require.NoError(t, anim.End())
	assert.True(t, anim.Ended())
	assert.ErrorIs(t, anim.Add(image1, nil), ErrAnimationEnded)
	assert.ErrorIs(t, anim.End(), ErrAnimationEnded)

	buf, err := anim.Bytes()
	require.NoError(t, err)
	assert.Equal(t, ImageTypeGif, DetermineImageType(buf))

	decoded, err := gif.DecodeAll(bytes.NewReader(buf))
	require.NoError(t, err)
	assert.Len(t, decoded.Image, 3)
	assert.Equal(t, 0, decoded.LoopCount)
	assert.Equal(t, 50, decoded.Delay[1])

	var out bytes.Buffer
	n, err := anim.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(len(buf)), n)
	assert.Equal(t, buf, out.Bytes())

	file := filepath.Join(ensureTestDir(t), "anim.gif")
	require.NoError(t, anim.Export(file))
	written, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, buf, written)
}

func TestAnimatedGifClosedFrame(t *testing.T) {
	img, err := NewIndexedImage(4, 4)
	require.NoError(t, err)
	img.Close()

	anim := NewAnimatedGif(&AnimatedGifOptions{Loops: -1})
	assert.ErrorIs(t, anim.Add(img, nil), ErrImageClosed)
}
