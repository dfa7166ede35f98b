package gd

// #include <gd.h>
import "C"

import (
	"fmt"
	"math"
	"runtime"
)

// CopyFrom copies a w by h rectangle of src at srcX, srcY onto the image at dstX, dstY
func (r *Image) CopyFrom(src *Image, dstX, dstY, srcX, srcY, w, h int) error {
	defer runtime.KeepAlive(r)
	defer runtime.KeepAlive(src)
	if err := r.checkPair(src); err != nil {
		return err
	}
	gdgenImageCopy(r.image, src.image, dstX, dstY, srcX, srcY, w, h)
	return nil
}

// CopyResampledFrom copies a srcW by srcH rectangle of src into a dstW by dstH
// rectangle, interpolating pixel values
func (r *Image) CopyResampledFrom(src *Image, dstX, dstY, srcX, srcY, dstW, dstH, srcW, srcH int) error {
	defer runtime.KeepAlive(r)
	defer runtime.KeepAlive(src)
	if err := r.checkPair(src); err != nil {
		return err
	}
	gdgenImageCopyResampled(r.image, src.image, dstX, dstY, srcX, srcY, dstW, dstH, srcW, srcH)
	return nil
}

// CopyResizedFrom is CopyResampledFrom without interpolation
func (r *Image) CopyResizedFrom(src *Image, dstX, dstY, srcX, srcY, dstW, dstH, srcW, srcH int) error {
	defer runtime.KeepAlive(r)
	defer runtime.KeepAlive(src)
	if err := r.checkPair(src); err != nil {
		return err
	}
	gdgenImageCopyResized(r.image, src.image, dstX, dstY, srcX, srcY, dstW, dstH, srcW, srcH)
	return nil
}

// CopyRotatedFrom copies a rectangle of src rotated by angle radians,
// centered on dstX, dstY. The angle is rounded to whole degrees.
func (r *Image) CopyRotatedFrom(src *Image, dstX, dstY float64, srcX, srcY, w, h int, angle float64) error {
	defer runtime.KeepAlive(r)
	defer runtime.KeepAlive(src)
	if err := r.checkPair(src); err != nil {
		return err
	}
	gdgenImageCopyRotated(r.image, src.image, dstX, dstY, srcX, srcY, w, h, roundInt(ToDegrees(angle)))
	return nil
}

// MergeFrom blends a rectangle of src onto the image. pct is a fraction,
// where Percent(100) is equivalent to CopyFrom.
func (r *Image) MergeFrom(src *Image, dstX, dstY, srcX, srcY, w, h int, pct float64) error {
	defer runtime.KeepAlive(r)
	defer runtime.KeepAlive(src)
	if err := r.checkPair(src); err != nil {
		return err
	}
	gdgenImageCopyMerge(r.image, src.image, dstX, dstY, srcX, srcY, w, h, roundInt(ToPercent(pct)))
	return nil
}

// MergeGrayFrom is MergeFrom on indexed images that keeps the hue of src by
// turning destination pixels gray first
func (r *Image) MergeGrayFrom(src *Image, dstX, dstY, srcX, srcY, w, h int, pct float64) error {
	defer runtime.KeepAlive(r)
	defer runtime.KeepAlive(src)
	if err := r.checkPair(src); err != nil {
		return err
	}
	if r.IsTrueColor() {
		return r.MergeFrom(src, dstX, dstY, srcX, srcY, w, h, pct)
	}
	gdgenImageCopyMergeGray(r.image, src.image, dstX, dstY, srcX, srcY, w, h, roundInt(ToPercent(pct)))
	return nil
}

// Rotate rotates the image in place by angle radians around axisX, axisY.
// The size is unchanged, so corners may be lost.
func (r *Image) Rotate(angle, axisX, axisY float64) error {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return ErrImageClosed
	}
	width, height := r.Size()
	ptr, err := r.createLike(width, height, r.AlphaBlending())
	if err != nil {
		return err
	}
	gdgenImageCopyRotated(ptr, r.image, axisX, axisY, 0, 0, width, height, roundInt(ToDegrees(angle)))
	r.setImage(ptr)
	return nil
}

// RotateCenter rotates the image in place around its center
func (r *Image) RotateCenter(angle float64) error {
	return r.Rotate(angle, float64(r.Width())/2, float64(r.Height())/2)
}

// Crop cuts the image down to the w by h rectangle at x, y
func (r *Image) Crop(x, y, w, h int) error {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return ErrImageClosed
	}
	ptr, err := r.createLike(w, h, r.AlphaBlending())
	if err != nil {
		return err
	}
	gdgenImageCopy(ptr, r.image, 0, 0, x, y, w, h)
	r.setImage(ptr)
	return nil
}

// Uncrop grows the image by the given border widths
func (r *Image) Uncrop(left, top, right, bottom int) error {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return ErrImageClosed
	}
	width, height := r.Size()
	ptr, err := r.createLike(left+width+right, top+height+bottom, r.AlphaBlending())
	if err != nil {
		return err
	}
	gdgenImageCopy(ptr, r.image, left, top, 0, 0, width, height)
	r.setImage(ptr)
	return nil
}

// Resize scales the image to w by h, resampled or nearest neighbour
func (r *Image) Resize(w, h int, resample bool) error {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return ErrImageClosed
	}
	ptr, err := r.createLike(w, h, false)
	if err != nil {
		return err
	}
	width, height := r.Size()
	if resample {
		gdgenImageCopyResampled(ptr, r.image, 0, 0, 0, 0, w, h, width, height)
	} else {
		gdgenImageCopyResized(ptr, r.image, 0, 0, 0, 0, w, h, width, height)
	}
	blending := r.AlphaBlending()
	r.setImage(ptr)
	return r.SetAlphaBlending(blending)
}

// PolarTransform remaps a square image so that x becomes the angle and y the
// distance from the center. The result is radius*2 pixels wide.
func (r *Image) PolarTransform(radius int) error {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return ErrImageClosed
	}
	if r.Width() != r.Height() {
		return fmt.Errorf("%w: %dx%d", ErrNotSquare, r.Width(), r.Height())
	}
	ptr, err := gdgenImageSquareToCircle(r.image, radius)
	if err != nil {
		return err
	}
	r.setImage(ptr)
	return nil
}

// Sharpen sharpens a true color image by pct, a fraction that may exceed 1.
// Indexed images are left alone.
func (r *Image) Sharpen(pct float64) error {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return ErrImageClosed
	}
	if r.IsTrueColor() {
		gdgenImageSharpen(r.image, roundInt(ToPercent(pct)))
	}
	return nil
}

// ToTrueColor returns r if it is true color, else a true color copy
func (r *Image) ToTrueColor() (*Image, error) {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return nil, ErrImageClosed
	}
	if r.IsTrueColor() {
		return r, nil
	}
	width, height := r.Size()
	out, err := NewTrueColorImage(width, height)
	if err != nil {
		return nil, err
	}
	gdgenImageAlphaBlending(out.image, 0)
	gdgenImageCopy(out.image, r.image, 0, 0, 0, 0, width, height)
	gdgenImageAlphaBlending(out.image, 1)
	return out, nil
}

// ToIndexedColor returns r if it is indexed with at most colors entries in
// use, else a quantized copy
func (r *Image) ToIndexedColor(colors int, dither bool) (*Image, error) {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return nil, ErrImageClosed
	}
	if !r.IsTrueColor() && r.Palette().Used() <= colors {
		return r, nil
	}
	src, err := r.ToTrueColor()
	if err != nil {
		return nil, err
	}
	if src != r {
		defer src.Close()
	}
	ptr, err := gdgenImageCreatePaletteFromTrueColor(src.image, boolToInt(dither), colors)
	if err != nil {
		return nil, err
	}
	// open[] is left uninitialized for the allocated entries
	for i := 0; i < int(ptr.colorsTotal); i++ {
		ptr.open[i] = 0
	}
	return newImageRef(ptr), nil
}

// OptimizePalette folds duplicate palette colors onto one entry and frees
// unused entries. It returns the number freed; true color images return 0.
func (r *Image) OptimizePalette() (int, error) {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return 0, ErrImageClosed
	}
	if r.IsTrueColor() {
		return 0, nil
	}
	p := r.Palette()
	first := make(map[int]int)
	var remap [MaxColors]int
	for i := range remap {
		remap[i] = i
	}
	for _, c := range p.Colors() {
		if idx, ok := first[c.rgba]; ok {
			remap[c.index] = idx
		} else {
			first[c.rgba] = c.index
		}
	}
	width, height := r.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixel := gdgenImageGetPixel(r.image, x, y)
			if pixel >= 0 && pixel < MaxColors && remap[pixel] != pixel {
				gdgenImageSetPixel(r.image, x, y, remap[pixel])
			}
		}
	}
	return p.DeallocateUnused(), nil
}

func (r *Image) checkPair(src *Image) error {
	if r.image == nil || src == nil || src.image == nil {
		return ErrImageClosed
	}
	return nil
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
