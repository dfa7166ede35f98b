package gd

// #include <stdlib.h>
// #include <gd.h>
import "C"

import (
	"fmt"
	"image"
	"math"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Font renders text onto images
type Font interface {
	// DrawText draws s with its origin at x, y, rotated by angle radians
	DrawText(img *Image, x, y int, angle float64, s string, fg Color) (TextBounds, error)
	// DrawTextCircle bends top and bottom text around a circle centered on cx, cy
	DrawTextCircle(img *Image, cx, cy int, radius, textRadius, fillPortion float64, top, bottom string, fg Color) error
}

// TextBounds describes the rectangle enclosing rendered text. The corners are
// relative to the text itself, whatever its angle. Positions holds the
// horizontal offset of each character from the first.
type TextBounds struct {
	LowerLeft  image.Point
	LowerRight image.Point
	UpperRight image.Point
	UpperLeft  image.Point
	Positions  []float64
}

// BuiltinFont is one of the bitmap fonts compiled into libgd
type BuiltinFont struct {
	name string
	ptr  func() C.gdFontPtr
}

var (
	FontTiny       = &BuiltinFont{name: "tiny", ptr: gdgenFontGetTiny}
	FontSmall      = &BuiltinFont{name: "small", ptr: gdgenFontGetSmall}
	FontMediumBold = &BuiltinFont{name: "mediumbold", ptr: gdgenFontGetMediumBold}
	FontLarge      = &BuiltinFont{name: "large", ptr: gdgenFontGetLarge}
	FontGiant      = &BuiltinFont{name: "giant", ptr: gdgenFontGetGiant}
)

func (f *BuiltinFont) String() string {
	return "<gd.BuiltinFont " + f.name + ">"
}

// Width returns the width of one character in pixels
func (f *BuiltinFont) Width() int {
	return int(f.ptr().w)
}

// Height returns the height of one character in pixels
func (f *BuiltinFont) Height() int {
	return int(f.ptr().h)
}

// NumChars returns the number of glyphs in the font
func (f *BuiltinFont) NumChars() int {
	return int(f.ptr().nchars)
}

func nearAngle(angle, want float64) bool {
	return math.Abs(angle-want) < 1e-9
}

// DrawText draws s horizontally (angle 0) or upwards (angle Degrees(90)).
// Other angles return ErrAngleNotSupported.
func (f *BuiltinFont) DrawText(img *Image, x, y int, angle float64, s string, fg Color) (TextBounds, error) {
	defer runtime.KeepAlive(img)
	up := nearAngle(angle, math.Pi/2)
	if !up && !nearAngle(angle, 0) {
		return TextBounds{}, fmt.Errorf("%w: %g", ErrAngleNotSupported, angle)
	}
	if img == nil || img.image == nil {
		return TextBounds{}, ErrImageClosed
	}
	pixel, err := img.ColorToPixel(fg)
	if err != nil {
		return TextBounds{}, err
	}
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	font := f.ptr()
	if up {
		C.gdImageStringUp(img.image, font, C.int(x), C.int(y), (*C.uchar)(unsafe.Pointer(cs)), C.int(pixel))
	} else {
		C.gdImageString(img.image, font, C.int(x), C.int(y), (*C.uchar)(unsafe.Pointer(cs)), C.int(pixel))
	}
	return f.bounds(x, y, len(s), up), nil
}

// bounds computes the cell rectangle of n characters; bitmap fonts are monospaced
func (f *BuiltinFont) bounds(x, y, n int, up bool) TextBounds {
	w, h := f.Width(), f.Height()
	positions := make([]float64, n)
	for i := range positions {
		positions[i] = float64(i * w)
	}
	if up {
		return TextBounds{
			LowerLeft:  image.Pt(x+h, y),
			LowerRight: image.Pt(x+h, y-n*w),
			UpperRight: image.Pt(x, y-n*w),
			UpperLeft:  image.Pt(x, y),
			Positions:  positions,
		}
	}
	return TextBounds{
		LowerLeft:  image.Pt(x, y+h),
		LowerRight: image.Pt(x+n*w, y+h),
		UpperRight: image.Pt(x+n*w, y),
		UpperLeft:  image.Pt(x, y),
		Positions:  positions,
	}
}

// DrawTextCircle is not available for bitmap fonts
func (f *BuiltinFont) DrawTextCircle(*Image, int, int, float64, float64, float64, string, string, Color) error {
	return ErrTextCircleUnsupported
}

// Charmap selects the character encoding preferred by FreeType
type Charmap int

const (
	CharmapDefault Charmap = iota
	CharmapUnicode
	CharmapShiftJIS
	CharmapBig5
)

// native returns the gdFTEX_* charmap constant
func (c Charmap) native() C.int {
	switch c {
	case CharmapShiftJIS:
		return C.gdFTEX_Shift_JIS
	case CharmapBig5:
		return C.gdFTEX_Big5
	}
	return C.gdFTEX_Unicode
}

// TrueTypeOptions tunes TrueType rendering. Zero values keep the libgd defaults.
type TrueTypeOptions struct {
	// LineSpacing is a multiple of the font height; libgd defaults to 1.05
	LineSpacing float64
	Charmap     Charmap
	// HDPI and VDPI are resolution hints; libgd defaults to 96
	HDPI int
	VDPI int
	// DPI sets HDPI and VDPI when they are unset
	DPI            int
	DisableKerning bool
}

// TrueTypeFont is a FreeType font at a given point size
type TrueTypeFont struct {
	name    string
	ptsize  float64
	path    string
	options TrueTypeOptions

	closeOnce sync.Once
}

var fontCache struct {
	sync.Mutex
	count int
}

func registerFont() error {
	fontCache.Lock()
	defer fontCache.Unlock()
	if fontCache.count == 0 {
		if gdgenFontCacheSetup() != 0 {
			return &FreeTypeError{Message: "FreeType library failed to initialize"}
		}
	}
	fontCache.count++
	stats.fonts.Add(1)
	return nil
}

func unregisterFont() {
	fontCache.Lock()
	defer fontCache.Unlock()
	if fontCache.count == 0 {
		return
	}
	fontCache.count--
	stats.fonts.Add(-1)
	if fontCache.count == 0 {
		gdgenFontCacheShutdown()
	}
}

// NewTrueTypeFont loads a font by path, or by fontconfig pattern when
// fontconfig is enabled, and verifies that it exists
func NewTrueTypeFont(name string, ptsize float64, options *TrueTypeOptions) (*TrueTypeFont, error) {
	if options == nil {
		options = &TrueTypeOptions{}
	}
	opts := *options
	if opts.HDPI == 0 {
		opts.HDPI = opts.DPI
	}
	if opts.VDPI == 0 {
		opts.VDPI = opts.DPI
	}
	if err := registerFont(); err != nil {
		return nil, err
	}
	f := &TrueTypeFont{name: name, ptsize: ptsize, options: opts}
	runtime.SetFinalizer(f, finalizeFont)

	result, err := f.render(nil, 0, 0, 0, 0, "", false, true)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.path = result.fontPath
	Logger().Debug("loaded TrueType font", "name", name, "path", f.path, "size", ptsize)
	return f, nil
}

func finalizeFont(f *TrueTypeFont) {
	f.Close()
}

// Close releases the font's share of the FreeType cache
func (f *TrueTypeFont) Close() {
	f.closeOnce.Do(unregisterFont)
}

// Path returns the resolved font file
func (f *TrueTypeFont) Path() string {
	return f.path
}

// PointSize returns the point size
func (f *TrueTypeFont) PointSize() float64 {
	return f.ptsize
}

// Options returns the rendering options, with DPI folded into HDPI and VDPI
func (f *TrueTypeFont) Options() TrueTypeOptions {
	return f.options
}

func (f *TrueTypeFont) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<gd.TrueTypeFont %q, %g", f.path, f.ptsize)
	if f.options.LineSpacing != 0 {
		fmt.Fprintf(&b, ", linespacing=%g", f.options.LineSpacing)
	}
	if f.options.Charmap != CharmapDefault {
		fmt.Fprintf(&b, ", charmap=%d", f.options.Charmap)
	}
	if f.options.HDPI != 0 {
		fmt.Fprintf(&b, ", hdpi=%d", f.options.HDPI)
	}
	if f.options.VDPI != 0 {
		fmt.Fprintf(&b, ", vdpi=%d", f.options.VDPI)
	}
	if f.options.DisableKerning {
		b.WriteString(", kerning=false")
	}
	b.WriteString(">")
	return b.String()
}

type renderResult struct {
	brect    [8]C.int
	xshow    []float64
	fontPath string
}

// render calls gdImageStringFTEx. A nil im only measures the text.
func (f *TrueTypeFont) render(im C.gdImagePtr, fg, x, y int, angle float64, s string, xshow, returnPath bool) (renderResult, error) {
	// the finalizer may shut the font cache down
	defer runtime.KeepAlive(f)
	var result renderResult

	strex := (*C.gdFTStringExtra)(C.calloc(1, C.size_t(unsafe.Sizeof(C.gdFTStringExtra{}))))
	defer C.free(unsafe.Pointer(strex))

	flags := C.int(0)
	if f.options.LineSpacing != 0 {
		flags |= C.gdFTEX_LINESPACE
		strex.linespacing = C.double(f.options.LineSpacing)
	}
	if f.options.Charmap != CharmapDefault {
		flags |= C.gdFTEX_CHARMAP
		strex.charmap = f.options.Charmap.native()
	}
	if f.options.HDPI != 0 || f.options.VDPI != 0 {
		flags |= C.gdFTEX_RESOLUTION
		hdpi, vdpi := f.options.HDPI, f.options.VDPI
		if hdpi == 0 {
			hdpi = vdpi
		}
		if vdpi == 0 {
			vdpi = hdpi
		}
		strex.hdpi = C.int(hdpi)
		strex.vdpi = C.int(vdpi)
	}
	if f.options.DisableKerning {
		flags |= C.gdFTEX_DISABLE_KERNING
	}
	if xshow {
		flags |= C.gdFTEX_XSHOW
	}
	if returnPath {
		flags |= C.gdFTEX_RETURNFONTPATHNAME
	}
	strex.flags = flags

	cname := C.CString(f.name)
	defer C.free(unsafe.Pointer(cname))
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))

	msg := C.gdImageStringFTEx(im, &result.brect[0], C.int(fg), cname,
		C.double(f.ptsize), C.double(angle), C.int(x), C.int(y), cs, strex)
	defer func() {
		if strex.xshow != nil {
			C.gdFree(unsafe.Pointer(strex.xshow))
		}
		if strex.fontpath != nil {
			C.gdFree(unsafe.Pointer(strex.fontpath))
		}
	}()
	if msg != nil {
		return result, &FreeTypeError{Message: C.GoString(msg)}
	}
	if strex.xshow != nil {
		for _, field := range strings.Fields(C.GoString(strex.xshow)) {
			advance, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return result, fmt.Errorf("gd: malformed xshow advance %q: %w", field, err)
			}
			result.xshow = append(result.xshow, advance)
		}
	}
	if strex.fontpath != nil {
		result.fontPath = C.GoString(strex.fontpath)
	}
	return result, nil
}

// bounds converts the xshow advances into offsets. libgd reports one advance
// between each pair of characters, so a single character yields none.
func (r renderResult) bounds() TextBounds {
	positions := make([]float64, len(r.xshow)+1)
	sum := 0.0
	for i, advance := range r.xshow {
		positions[i] = sum
		sum += advance
	}
	positions[len(r.xshow)] = sum
	return TextBounds{
		LowerLeft:  image.Pt(int(r.brect[0]), int(r.brect[1])),
		LowerRight: image.Pt(int(r.brect[2]), int(r.brect[3])),
		UpperRight: image.Pt(int(r.brect[4]), int(r.brect[5])),
		UpperLeft:  image.Pt(int(r.brect[6]), int(r.brect[7])),
		Positions:  positions,
	}
}

// DrawText renders s with its baseline origin at x, y. An "&" is drawn
// literally rather than starting an entity.
func (f *TrueTypeFont) DrawText(img *Image, x, y int, angle float64, s string, fg Color) (TextBounds, error) {
	defer runtime.KeepAlive(img)
	if img == nil || img.image == nil {
		return TextBounds{}, ErrImageClosed
	}
	pixel, err := img.ColorToPixel(fg)
	if err != nil {
		return TextBounds{}, err
	}
	result, err := f.render(img.image, pixel, x, y, angle, strings.ReplaceAll(s, "&", "&amp;"), true, false)
	if err != nil {
		return TextBounds{}, err
	}
	return result.bounds(), nil
}

// BoundingRectangle measures s at angle radians without drawing it
func (f *TrueTypeFont) BoundingRectangle(s string, angle float64) (TextBounds, error) {
	escaped := strings.ReplaceAll(s, "&", "&amp;")
	result, err := f.render(nil, 0, 0, 0, angle, escaped, true, false)
	if err != nil {
		return TextBounds{}, err
	}
	return result.bounds(), nil
}

// DrawTextCircle bends top and bottom text around a circle centered on cx, cy.
// fillPortion is the fraction of each half circle the text covers.
func (f *TrueTypeFont) DrawTextCircle(img *Image, cx, cy int, radius, textRadius, fillPortion float64, top, bottom string, fg Color) error {
	defer runtime.KeepAlive(f)
	defer runtime.KeepAlive(img)
	if img == nil || img.image == nil {
		return ErrImageClosed
	}
	pixel, err := img.ColorToPixel(fg)
	if err != nil {
		return err
	}
	cname := C.CString(f.name)
	defer C.free(unsafe.Pointer(cname))
	ctop := C.CString(top)
	defer C.free(unsafe.Pointer(ctop))
	cbottom := C.CString(bottom)
	defer C.free(unsafe.Pointer(cbottom))

	msg := C.gdImageStringFTCircle(img.image, C.int(cx), C.int(cy), C.double(radius), C.double(textRadius),
		C.double(fillPortion), cname, C.double(f.ptsize), ctop, cbottom, C.int(pixel))
	if msg != nil {
		return &FreeTypeError{Message: C.GoString(msg)}
	}
	return nil
}

var fontconfigEnabled atomic.Bool

// SetFontconfig enables or disables fontconfig patterns as font names
func SetFontconfig(enabled bool) error {
	available := gdgenFTUseFontConfig(boolToInt(enabled)) != 0
	if enabled && !available {
		return ErrFontconfigUnavailable
	}
	fontconfigEnabled.Store(enabled)
	return nil
}

// Fontconfig reports whether fontconfig patterns are enabled
func Fontconfig() bool {
	return fontconfigEnabled.Load()
}
