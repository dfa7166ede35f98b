package gd

import (
	"fmt"
	"image"
	"image/color"
	"runtime"

	"golang.org/x/image/draw"
)

// NewImageFromGo copies a Go image into a new true color image.
// The result keeps full alpha when encoded as PNG.
func NewImageFromGo(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, bounds.Dx(), bounds.Dy())
	}
	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Copy(nrgba, image.Point{}, src, bounds, draw.Src, nil)
	}
	ptr, err := createImagePtr(bounds.Dx(), bounds.Dy(), true, false)
	if err != nil {
		return nil, err
	}
	img := newImageRef(ptr)
	defer runtime.KeepAlive(img)
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			gdgenImageSetPixel(ptr, x, y, colorFromGo(nrgba.NRGBAAt(x, y)).rgba)
		}
	}
	gdgenImageAlphaBlending(ptr, 1)
	gdgenImageSaveAlpha(ptr, 1)
	return img, nil
}

// ToGo copies the image into a Go NRGBA image
func (r *Image) ToGo() (*image.NRGBA, error) {
	if r.image == nil {
		return nil, ErrImageClosed
	}
	dst := image.NewNRGBA(r.Bounds())
	err := r.Rows(func(y int, row []int) error {
		for x, pixel := range row {
			dst.SetNRGBA(x, y, r.PixelToColor(pixel).NRGBA())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// ColorModel returns the model converting Go colors into Colors
func (r *Image) ColorModel() color.Model {
	return ColorModel
}

// GoImage returns a live image.Image view reading pixels on demand
func (r *Image) GoImage() image.Image {
	return goImage{r}
}

type goImage struct {
	image *Image
}

func (g goImage) ColorModel() color.Model {
	return ColorModel
}

func (g goImage) Bounds() image.Rectangle {
	return g.image.Bounds()
}

func (g goImage) At(x, y int) color.Color {
	if !image.Pt(x, y).In(g.image.Bounds()) {
		return ColorTransparent
	}
	return g.image.RGBAAt(x, y)
}
