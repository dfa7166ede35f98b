package gd

// #include <gd.h>
import "C"

import (
	"fmt"
	"image"
	"io"
	"os"
	"runtime"
	"sync"
	"unsafe"
)

const (
	// MaxColors is the palette size of indexed images
	MaxColors = 256
	// RGBMax is the largest red, green or blue component
	RGBMax = 255
	// AlphaMax is the largest alpha component
	AlphaMax = 127
	// AlphaOpaque is the alpha of a fully opaque color
	AlphaOpaque = 0
	// AlphaTransparent is the alpha of a fully transparent color
	AlphaTransparent = 127
)

// Image comparison bits returned by Compare
const (
	CmpImage       = 1
	CmpNumColors   = 2
	CmpColor       = 4
	CmpSizeX       = 8
	CmpSizeY       = 16
	CmpTransparent = 32
	CmpBackground  = 64
	CmpInterlace   = 128
	CmpTrueColor   = 256
)

// Image wraps a native gdImagePtr, either true color or palette based
type Image struct {
	lock  sync.Mutex
	image C.gdImagePtr

	// the native handle stores raw pointers to these
	brush *Image
	tile  *Image
}

// ImportOptions controls NewImageFromFile
type ImportOptions struct {
	// Format overrides detection by file extension
	Format ImageType
	// Part imports only this rectangle of a GD2 image
	Part *image.Rectangle
}

func newImageRef(ptr C.gdImagePtr) *Image {
	img := &Image{image: ptr}
	stats.images.Add(1)
	runtime.SetFinalizer(img, finalizeImage)
	return img
}

func finalizeImage(img *Image) {
	img.Close()
}

// NewImage creates a true color image of the given size
func NewImage(width, height int) (*Image, error) {
	return NewTrueColorImage(width, height)
}

// NewTrueColorImage creates a true color image with alpha blending enabled
func NewTrueColorImage(width, height int) (*Image, error) {
	ptr, err := createImagePtr(width, height, true, true)
	if err != nil {
		return nil, err
	}
	return newImageRef(ptr), nil
}

// NewIndexedImage creates a palette based image of up to MaxColors colors
func NewIndexedImage(width, height int) (*Image, error) {
	ptr, err := createImagePtr(width, height, false, false)
	if err != nil {
		return nil, err
	}
	return newImageRef(ptr), nil
}

func createImagePtr(width, height int, trueColor, alphaBlending bool) (C.gdImagePtr, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	var ptr C.gdImagePtr
	var err error
	if trueColor {
		ptr, err = gdgenImageCreateTrueColor(width, height)
	} else {
		ptr, err = gdgenImageCreate(width, height)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMemoryAllocation, err)
	}
	gdgenImageAlphaBlending(ptr, boolToInt(alphaBlending))
	return ptr, nil
}

// createLike allocates a handle of the same kind as r
func (r *Image) createLike(width, height int, alphaBlending bool) (C.gdImagePtr, error) {
	return createImagePtr(width, height, r.IsTrueColor(), alphaBlending)
}

// NewImageFromBuffer decodes an image, detecting the format by its magic bytes
func NewImageFromBuffer(buf []byte) (*Image, error) {
	ptr, err := decodeImage(buf, DetermineImageType(buf), nil)
	if err != nil {
		return nil, err
	}
	return newImageRef(ptr), nil
}

// NewImageFromReader reads r to the end and decodes the result
func NewImageFromReader(r io.Reader) (*Image, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gd: failed to read image: %w", err)
	}
	return NewImageFromBuffer(buf)
}

// NewImageFromFile loads an image file. The format is taken from options or
// else from the file extension.
func NewImageFromFile(filename string, options *ImportOptions) (*Image, error) {
	if options == nil {
		options = &ImportOptions{}
	}
	imageType := options.Format
	if imageType == ImageTypeUnknown {
		imageType = ImageTypeFromExtension(filename)
	}
	if imageType == ImageTypeUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedImageType, filename)
	}
	if options.Part != nil && imageType != ImageTypeGd2 {
		return nil, fmt.Errorf("%w: partial import requires gd2, got %s", ErrMismatchedOptions, imageType)
	}
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	ptr, err := decodeImage(buf, imageType, options.Part)
	if err != nil {
		return nil, err
	}
	return newImageRef(ptr), nil
}

func decodeImage(buf []byte, imageType ImageType, part *image.Rectangle) (C.gdImagePtr, error) {
	if len(buf) == 0 || imageType == ImageTypeUnknown {
		return nil, ErrUnrecognizedImageType
	}
	size := C.int(len(buf))
	data := unsafe.Pointer(&buf[0])
	defer runtime.KeepAlive(buf)

	var ptr C.gdImagePtr
	var op string
	switch imageType {
	case ImageTypeJpeg:
		op = "gdImageCreateFromJpegPtr"
		ptr = C.gdImageCreateFromJpegPtr(size, data)
	case ImageTypePng:
		op = "gdImageCreateFromPngPtr"
		ptr = C.gdImageCreateFromPngPtr(size, data)
	case ImageTypeGif:
		op = "gdImageCreateFromGifPtr"
		ptr = C.gdImageCreateFromGifPtr(size, data)
	case ImageTypeWbmp:
		op = "gdImageCreateFromWBMPPtr"
		ptr = C.gdImageCreateFromWBMPPtr(size, data)
	case ImageTypeGd:
		op = "gdImageCreateFromGdPtr"
		ptr = C.gdImageCreateFromGdPtr(size, data)
	case ImageTypeGd2:
		if part != nil {
			op = "gdImageCreateFromGd2PartPtr"
			ptr = C.gdImageCreateFromGd2PartPtr(size, data,
				C.int(part.Min.X), C.int(part.Min.Y), C.int(part.Dx()), C.int(part.Dy()))
		} else {
			op = "gdImageCreateFromGd2Ptr"
			ptr = C.gdImageCreateFromGd2Ptr(size, data)
		}
	case ImageTypeWebp:
		op = "gdImageCreateFromWebpPtr"
		ptr = C.gdImageCreateFromWebpPtr(size, data)
	case ImageTypeBmp:
		op = "gdImageCreateFromBmpPtr"
		ptr = C.gdImageCreateFromBmpPtr(size, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedImageType, imageType)
	}
	if ptr == nil {
		return nil, handleGdError(op)
	}
	return ptr, nil
}

// Close releases the native image. It is safe to call more than once.
func (r *Image) Close() {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.image == nil {
		return
	}
	gdgenImageDestroy(r.image)
	r.image = nil
	r.brush = nil
	r.tile = nil
	stats.images.Add(-1)
}

// setImage swaps in a rebuilt native handle and destroys the previous one
func (r *Image) setImage(ptr C.gdImagePtr) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.image == ptr {
		return
	}
	if r.image != nil {
		carryDrawingState(r.image, ptr)
		gdgenImageDestroy(r.image)
	} else {
		stats.images.Add(1)
	}
	r.image = ptr
	if r.brush != nil && r.brush.image != nil {
		gdgenImageSetBrush(ptr, r.brush.image)
	} else {
		r.brush = nil
	}
	if r.tile != nil && r.tile.image != nil {
		gdgenImageSetTile(ptr, r.tile.image)
	} else {
		r.tile = nil
	}
}

// carryDrawingState copies the line thickness and style a canvas may rely on
func carryDrawingState(from, to C.gdImagePtr) {
	gdgenImageSetThickness(to, int(from.thick))
	if from.style != nil && from.styleLength > 0 {
		C.gdImageSetStyle(to, from.style, from.styleLength)
	}
}

// Closed reports whether the native image has been released
func (r *Image) Closed() bool {
	return r.image == nil
}

// Copy returns a deep copy of the image
func (r *Image) Copy() (*Image, error) {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return nil, ErrImageClosed
	}
	ptr, err := gdgenImageClone(r.image)
	if err != nil {
		return nil, err
	}
	return newImageRef(ptr), nil
}

// Width returns the width in pixels
func (r *Image) Width() int {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return 0
	}
	return int(r.image.sx)
}

// Height returns the height in pixels
func (r *Image) Height() int {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return 0
	}
	return int(r.image.sy)
}

// Size returns width and height
func (r *Image) Size() (int, int) {
	return r.Width(), r.Height()
}

// Bounds returns the image rectangle anchored at the origin
func (r *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width(), r.Height())
}

// Aspect returns width divided by height
func (r *Image) Aspect() float64 {
	if r.Height() == 0 {
		return 0
	}
	return float64(r.Width()) / float64(r.Height())
}

// IsTrueColor reports whether pixels hold packed colors rather than palette indices
func (r *Image) IsTrueColor() bool {
	defer runtime.KeepAlive(r)
	return r.image != nil && r.image.trueColor != 0
}

// Palette returns the palette view of the image
func (r *Image) Palette() *Palette {
	return &Palette{image: r}
}

func (r *Image) String() string {
	if r.image == nil {
		return "<gd.Image closed>"
	}
	kind := "indexed"
	if r.IsTrueColor() {
		kind = "truecolor"
	}
	return fmt.Sprintf("<gd.Image %dx%d %s>", r.Width(), r.Height(), kind)
}

// Compare returns the Cmp* bits describing how two images differ
func (r *Image) Compare(other *Image) int {
	defer runtime.KeepAlive(r)
	defer runtime.KeepAlive(other)
	if r.image == nil || other == nil || other.image == nil {
		return CmpImage
	}
	return gdgenImageCompare(r.image, other.image)
}

// Equal reports whether both images have identical pixels
func (r *Image) Equal(other *Image) bool {
	return r.Compare(other)&CmpImage == 0
}

// Pixel returns the raw pixel value: a packed color or a palette index
func (r *Image) Pixel(x, y int) int {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return 0
	}
	return gdgenImageGetPixel(r.image, x, y)
}

// RGBAAt returns the packed color at x, y for either kind of image. The result
// is not linked to the palette, and the transparent entry of an indexed image
// reads as fully transparent.
func (r *Image) RGBAAt(x, y int) Color {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return Color{}
	}
	return ColorFromRGBA(gdgenImageGetTrueColorPixel(r.image, x, y))
}

// SetPixel stores a raw pixel value
func (r *Image) SetPixel(x, y, value int) {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return
	}
	gdgenImageSetPixel(r.image, x, y, value)
}

// At returns the color of the pixel at x, y
func (r *Image) At(x, y int) Color {
	return r.PixelToColor(r.Pixel(x, y))
}

// Set paints a single pixel
func (r *Image) Set(x, y int, c Color) error {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return ErrImageClosed
	}
	pixel, err := r.ColorToPixel(c)
	if err != nil {
		return err
	}
	gdgenImageSetPixel(r.image, x, y, pixel)
	return nil
}

// Rows calls fn with the raw pixel values of each row, top to bottom.
// A non-nil error from fn stops the iteration.
func (r *Image) Rows(fn func(y int, row []int) error) error {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return ErrImageClosed
	}
	width, height := r.Size()
	row := make([]int, width)
	for y := 0; y < height; y++ {
		for x := range row {
			row[x] = gdgenImageGetPixel(r.image, x, y)
		}
		if err := fn(y, row); err != nil {
			return err
		}
	}
	return nil
}

// PixelToColor converts a raw pixel value into a Color
func (r *Image) PixelToColor(pixel int) Color {
	if r.IsTrueColor() {
		return ColorFromRGBA(pixel)
	}
	return r.Palette().get(pixel)
}

// ColorToPixel converts a Color into a raw pixel value. Indexed images use the
// color's own entry when it belongs to this palette, else an exact match.
func (r *Image) ColorToPixel(c Color) (int, error) {
	if r.image == nil {
		return 0, ErrImageClosed
	}
	if r.IsTrueColor() {
		return c.rgba, nil
	}
	p := r.Palette()
	if c.FromPalette(p) {
		return c.index, nil
	}
	found, err := p.ExactOrError(c)
	if err != nil {
		return 0, err
	}
	return found.index, nil
}

// Interlaced reports whether the interlace flag is set
func (r *Image) Interlaced() bool {
	defer runtime.KeepAlive(r)
	return r.image != nil && r.image.interlace != 0
}

// SetInterlaced sets the interlace flag used by the encoders
func (r *Image) SetInterlaced(interlaced bool) {
	defer runtime.KeepAlive(r)
	if r.image != nil {
		gdgenImageInterlace(r.image, boolToInt(interlaced))
	}
}

// AlphaBlending reports whether drawing blends with existing pixels.
// Indexed images never blend.
func (r *Image) AlphaBlending() bool {
	defer runtime.KeepAlive(r)
	return r.IsTrueColor() && r.image.alphaBlendingFlag != 0
}

// SetAlphaBlending sets the blending mode of a true color image
func (r *Image) SetAlphaBlending(blending bool) error {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return ErrImageClosed
	}
	if !r.IsTrueColor() {
		if blending {
			return ErrAlphaBlendingUnavailable
		}
		return nil
	}
	gdgenImageAlphaBlending(r.image, boolToInt(blending))
	return nil
}

// SaveAlpha reports whether full alpha is kept when encoding PNG
func (r *Image) SaveAlpha() bool {
	defer runtime.KeepAlive(r)
	return r.image != nil && r.image.saveAlphaFlag != 0
}

// SetSaveAlpha sets whether full alpha is kept when encoding PNG
func (r *Image) SetSaveAlpha(save bool) {
	defer runtime.KeepAlive(r)
	if r.image != nil {
		gdgenImageSaveAlpha(r.image, boolToInt(save))
	}
}

// Transparent returns the transparent color, if one is set
func (r *Image) Transparent() (Color, bool) {
	defer runtime.KeepAlive(r)
	if r.image == nil || r.image.transparent == -1 {
		return Color{}, false
	}
	return r.PixelToColor(int(r.image.transparent)), true
}

// SetTransparent sets the transparent color. Nil unsets it.
func (r *Image) SetTransparent(c *Color) error {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return ErrImageClosed
	}
	pixel := -1
	if c != nil {
		var err error
		if pixel, err = r.ColorToPixel(*c); err != nil {
			return err
		}
	}
	gdgenImageColorTransparent(r.image, pixel)
	return nil
}

// Clipping returns the clipping rectangle. Drawing outside it has no effect.
func (r *Image) Clipping() image.Rectangle {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return image.Rectangle{}
	}
	return image.Rect(int(r.image.cx1), int(r.image.cy1), int(r.image.cx2)+1, int(r.image.cy2)+1)
}

// WithClipping runs fn with drawing restricted to rect and restores the
// previous clipping rectangle afterwards.
func (r *Image) WithClipping(rect image.Rectangle, fn func(*Image) error) error {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return ErrImageClosed
	}
	previous := r.Clipping()
	gdgenImageSetClip(r.image, rect.Min.X, rect.Min.Y, rect.Max.X-1, rect.Max.Y-1)
	defer func() {
		if r.image != nil {
			gdgenImageSetClip(r.image, previous.Min.X, previous.Min.Y, previous.Max.X-1, previous.Max.Y-1)
		}
	}()
	return fn(r)
}

// Clips reports whether the clipping rectangle excludes the point
func (r *Image) Clips(x, y int) bool {
	defer runtime.KeepAlive(r)
	if r.image == nil {
		return true
	}
	return gdgenImageBoundsSafe(r.image, x, y) == 0
}

// Draw runs fn with a fresh canvas bound to the image
func (r *Image) Draw(fn func(*Canvas) error) error {
	if r.image == nil {
		return ErrImageClosed
	}
	return fn(NewCanvas(r))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
