package gd

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Color is a packed libgd color, alpha<<24 | red<<16 | green<<8 | blue, with
// alpha running from 0 (opaque) to 127 (transparent). A color read from an
// indexed palette remembers its entry, and setters write back to it.
type Color struct {
	rgba    int
	index   int
	palette *Palette
}

var (
	ColorBlack       = NewColor(0, 0, 0)
	ColorWhite       = NewColor(RGBMax, RGBMax, RGBMax)
	ColorTransparent = NewColorAlpha(0, 0, 0, AlphaTransparent)
)

// NewColor creates an opaque color, clamping components to 0-255
func NewColor(r, g, b int) Color {
	return NewColorAlpha(r, g, b, AlphaOpaque)
}

// NewColorAlpha creates a color, clamping components to 0-255 and alpha to 0-127
func NewColorAlpha(r, g, b, a int) Color {
	return Color{rgba: pack(clamp(r, RGBMax), clamp(g, RGBMax), clamp(b, RGBMax), clamp(a, AlphaMax))}
}

// NewColorFloat creates a color from fractions of the component ranges,
// so 1.0 is full intensity and alpha 1.0 is fully transparent
func NewColorFloat(r, g, b, a float64) Color {
	return NewColorAlpha(fraction(r, RGBMax), fraction(g, RGBMax), fraction(b, RGBMax), fraction(a, AlphaMax))
}

// ColorFromRGBA unpacks a packed libgd color
func ColorFromRGBA(rgba int) Color {
	return Color{rgba: rgba & 0x7FFFFFFF}
}

func newPaletteColor(r, g, b, a, index int, palette *Palette) Color {
	return Color{rgba: pack(r, g, b, a), index: index, palette: palette}
}

func pack(r, g, b, a int) int {
	return a<<24 | r<<16 | g<<8 | b
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func fraction(v float64, max int) int {
	return clamp(int(math.Round(v*float64(max))), max)
}

// RGBAValue returns the packed libgd value
func (c Color) RGBAValue() int {
	return c.rgba
}

// Red returns the red component, 0-255
func (c Color) Red() int {
	return (c.rgba & 0xFF0000) >> 16
}

// Green returns the green component, 0-255
func (c Color) Green() int {
	return (c.rgba & 0x00FF00) >> 8
}

// Blue returns the blue component, 0-255
func (c Color) Blue() int {
	return c.rgba & 0x0000FF
}

// Alpha returns the alpha component, 0 (opaque) to 127 (transparent)
func (c Color) Alpha() int {
	return (c.rgba & 0x7F000000) >> 24
}

// setRGBA stores rgba and writes it through to a linked palette entry.
// The value is kept even when the write-through fails.
func (c *Color) setRGBA(rgba int) error {
	c.rgba = rgba
	if c.palette != nil {
		return c.palette.SetAt(c.index, c)
	}
	return nil
}

// SetRed replaces the red component. A color linked to a closed image
// returns ErrImageClosed.
func (c *Color) SetRed(v int) error {
	return c.setRGBA(c.rgba&^0xFF0000 | clamp(v, RGBMax)<<16)
}

// SetGreen replaces the green component
func (c *Color) SetGreen(v int) error {
	return c.setRGBA(c.rgba&^0x00FF00 | clamp(v, RGBMax)<<8)
}

// SetBlue replaces the blue component
func (c *Color) SetBlue(v int) error {
	return c.setRGBA(c.rgba&^0x0000FF | clamp(v, RGBMax))
}

// SetAlpha replaces the alpha component
func (c *Color) SetAlpha(v int) error {
	return c.setRGBA(c.rgba&^0x7F000000 | clamp(v, AlphaMax)<<24)
}

// Index returns the palette entry the color was read from
func (c Color) Index() (int, bool) {
	return c.index, c.palette != nil
}

// Palette returns the palette the color was read from, or nil
func (c Color) Palette() *Palette {
	return c.palette
}

// FromPalette reports whether the color was read from p. A nil p matches any palette.
func (c Color) FromPalette(p *Palette) bool {
	if c.palette == nil {
		return false
	}
	return p == nil || c.palette.image == p.image
}

// Equal compares packed values
func (c Color) Equal(other Color) bool {
	return c.rgba == other.rgba
}

// VisuallyEqual is Equal, or both colors fully transparent
func (c Color) VisuallyEqual(other Color) bool {
	return c.Equal(other) || (c.Transparent() && other.Transparent())
}

// Identical is Equal and, when both colors come from palettes, the same entry
func (c Color) Identical(other Color) bool {
	if !c.Equal(other) {
		return false
	}
	if c.palette == nil || other.palette == nil {
		return true
	}
	return c.palette.image == other.palette.image && c.index == other.index
}

// AlphaBlend returns other composited over c
func (c Color) AlphaBlend(other Color) Color {
	return ColorFromRGBA(gdgenAlphaBlend(c.rgba, other.rgba))
}

// Blend composites other over c in place, updating a linked palette entry
func (c *Color) Blend(other Color) error {
	return c.setRGBA(gdgenAlphaBlend(c.rgba, other.rgba))
}

// Transparent reports whether alpha is fully transparent
func (c Color) Transparent() bool {
	return c.Alpha() == AlphaTransparent
}

// Opaque reports whether alpha is fully opaque
func (c Color) Opaque() bool {
	return c.Alpha() == AlphaOpaque
}

// String formats the color as RGB[A][index]#RRGGBB[AA]
func (c Color) String() string {
	var b strings.Builder
	b.WriteString("RGB")
	if !c.Opaque() {
		b.WriteString("A")
	}
	if c.palette != nil {
		fmt.Fprintf(&b, "[%d]", c.index)
	}
	fmt.Fprintf(&b, "#%02X%02X%02X", c.Red(), c.Green(), c.Blue())
	if !c.Opaque() {
		fmt.Fprintf(&b, "%02X", c.Alpha())
	}
	return b.String()
}

// NRGBA converts to a Go color with 8 bit alpha
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c.Red()),
		G: uint8(c.Green()),
		B: uint8(c.Blue()),
		A: uint8((AlphaMax - c.Alpha()) * 255 / AlphaMax),
	}
}

// RGBA implements color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// ColorModel converts any Go color into a Color
var ColorModel = color.ModelFunc(colorModel)

func colorModel(c color.Color) color.Color {
	if gc, ok := c.(Color); ok {
		return gc
	}
	return colorFromGo(c)
}

func colorFromGo(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewColorAlpha(int(n.R), int(n.G), int(n.B), AlphaMax-int(n.A>>1))
}
