package gd

// #include <gd.h>
import "C"

import (
	"math"
	"runtime"
)

// Special pixel values understood by the libgd drawing primitives
const (
	PixelStyled        = -2
	PixelBrushed       = -3
	PixelStyledBrushed = -4
	PixelTiled         = -5
	// PixelTransparent is only valid inside a line style
	PixelTransparent = -6
	PixelAntiAliased = -7
)

// Arc styles combined by Wedge
const (
	ArcPie    = 0
	ArcChord  = 1
	ArcNoFill = 2
	ArcEdged  = 4
)

// PolygonMode selects how Polygon joins and fills its points
type PolygonMode int

const (
	PolygonClosed PolygonMode = iota
	PolygonOpen
	PolygonFilled
)

// Canvas is a drawing context bound to an image. Coordinates pass through the
// current transformation before they reach libgd.
type Canvas struct {
	image *Image

	color    Color
	hasColor bool
	pixel    int

	thickness    int
	style        []*Color
	brush        *Image
	tile         *Image
	antiAliasing bool
	dontBlend    *int
	font         Font

	matrix Matrix
	point  Point
}

// NewCanvas creates a canvas with thickness 1, no color and the pen at the origin
func NewCanvas(img *Image) *Canvas {
	c := &Canvas{
		image:  img,
		matrix: Identity(),
	}
	c.SetThickness(1)
	c.MoveTo(0, 0)
	return c
}

// Image returns the image the canvas draws on
func (c *Canvas) Image() *Image {
	return c.image
}

// SetColor selects the drawing color and clears any brush or line style
func (c *Canvas) SetColor(col Color) error {
	pixel, err := c.image.ColorToPixel(col)
	if err != nil {
		return err
	}
	c.color = col
	c.hasColor = true
	c.pixel = pixel
	c.brush = nil
	c.style = nil
	return nil
}

// Color returns the drawing color, if one is selected
func (c *Canvas) Color() (Color, bool) {
	return c.color, c.hasColor
}

// Thickness returns the line thickness in pixels
func (c *Canvas) Thickness() int {
	return c.thickness
}

// SetThickness sets the line thickness in pixels
func (c *Canvas) SetThickness(thickness int) {
	defer runtime.KeepAlive(c.image)
	c.thickness = thickness
	if c.image.image != nil {
		gdgenImageSetThickness(c.image.image, thickness)
	}
}

// SetStyle sets a repeating line pattern, one entry per pixel. Nil entries
// leave pixels untouched. An empty style switches the pattern off.
func (c *Canvas) SetStyle(style []*Color) error {
	defer runtime.KeepAlive(c.image)
	if len(style) == 0 {
		c.style = nil
		return nil
	}
	if c.image.image == nil {
		return ErrImageClosed
	}
	pixels := make([]C.int, len(style))
	for i, entry := range style {
		if entry == nil {
			pixels[i] = PixelTransparent
			continue
		}
		pixel, err := c.image.ColorToPixel(*entry)
		if err != nil {
			return err
		}
		pixels[i] = C.int(pixel)
	}
	C.gdImageSetStyle(c.image.image, &pixels[0], C.int(len(pixels)))
	c.style = style
	return nil
}

// SetBrush draws lines with an image instead of a color. Nil switches it off.
func (c *Canvas) SetBrush(brush *Image) error {
	defer runtime.KeepAlive(c.image)
	defer runtime.KeepAlive(brush)
	if brush != nil {
		if err := c.image.checkPair(brush); err != nil {
			return err
		}
		gdgenImageSetBrush(c.image.image, brush.image)
		c.image.brush = brush
	}
	c.brush = brush
	return nil
}

// SetTile fills areas with a repeated image instead of a color. Nil switches it off.
func (c *Canvas) SetTile(tile *Image) error {
	defer runtime.KeepAlive(c.image)
	defer runtime.KeepAlive(tile)
	if tile != nil {
		if err := c.image.checkPair(tile); err != nil {
			return err
		}
		gdgenImageSetTile(c.image.image, tile.image)
		c.image.tile = tile
	}
	c.tile = tile
	return nil
}

// AntiAliasing reports whether lines are antialiased
func (c *Canvas) AntiAliasing() bool {
	return c.antiAliasing
}

// SetAntiAliasing switches antialiased lines on or off
func (c *Canvas) SetAntiAliasing(enabled bool) {
	c.antiAliasing = enabled
}

// SetDontBlend excludes a background color from antialias blending. Nil clears it.
func (c *Canvas) SetDontBlend(col *Color) error {
	if col == nil {
		c.dontBlend = nil
		return nil
	}
	pixel, err := c.image.ColorToPixel(*col)
	if err != nil {
		return err
	}
	c.dontBlend = &pixel
	return nil
}

// Font returns the selected font
func (c *Canvas) Font() Font {
	return c.font
}

// SetFont selects the font used by Text and TextCircle
func (c *Canvas) SetFont(font Font) {
	c.font = font
}

// Matrix returns the current transformation
func (c *Canvas) Matrix() Matrix {
	return c.matrix
}

// AffineTransform runs fn with the transformation x' = a*x + c*y + tx,
// y' = b*x + d*y + ty applied before the current one. The previous
// transformation is restored when fn returns.
func (c *Canvas) AffineTransform(a, b, cc, d, tx, ty float64, fn func() error) error {
	previous := c.matrix
	defer func() {
		c.matrix = previous
	}()
	c.matrix = previous.Multiply(Matrix{
		A: a, B: cc, C: tx,
		D: b, E: d, F: ty,
	})
	return fn()
}

// Translate runs fn with the origin moved to tx, ty
func (c *Canvas) Translate(tx, ty float64, fn func() error) error {
	return c.AffineTransform(1, 0, 0, 1, tx, ty, fn)
}

// Scale runs fn with coordinates scaled by sx, sy
func (c *Canvas) Scale(sx, sy float64, fn func() error) error {
	return c.AffineTransform(sx, 0, 0, sy, 0, 0, fn)
}

// Rotate runs fn with coordinates rotated by angle radians
func (c *Canvas) Rotate(angle float64, fn func() error) error {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return c.AffineTransform(cos, sin, -sin, cos, 0, 0, fn)
}

// Cartesian runs fn with the origin at the bottom left and y growing upwards
func (c *Canvas) Cartesian(fn func() error) error {
	return c.AffineTransform(1, 0, 0, -1, 0, float64(c.image.Height()-1), fn)
}

func (c *Canvas) transform(x, y float64) Point {
	return c.matrix.TransformPoint(Point{X: x, Y: y})
}

// MoveTo places the pen at x, y
func (c *Canvas) MoveTo(x, y float64) {
	c.point = c.transform(x, y)
}

// Move moves the pen by dx, dy
func (c *Canvas) Move(dx, dy float64) {
	at := c.Location()
	c.point = c.transform(at.X+dx, at.Y+dy)
}

// Location returns the pen position in current coordinates
func (c *Canvas) Location() Point {
	return c.matrix.Invert().TransformPoint(c.point)
}

func (c *Canvas) currentPixel() (int, error) {
	if !c.hasColor {
		return 0, ErrNoColorSelected
	}
	return c.pixel, nil
}

func (c *Canvas) linePixel() (int, error) {
	defer runtime.KeepAlive(c.image)
	switch {
	case c.style != nil && c.brush != nil:
		return PixelStyledBrushed, nil
	case c.style != nil:
		return PixelStyled, nil
	case c.brush != nil:
		return PixelBrushed, nil
	case c.antiAliasing:
		pixel, err := c.currentPixel()
		if err != nil {
			return 0, err
		}
		if c.dontBlend != nil {
			gdgenImageSetAntiAliasedDontBlend(c.image.image, pixel, *c.dontBlend)
		} else {
			gdgenImageSetAntiAliased(c.image.image, pixel)
		}
		return PixelAntiAliased, nil
	}
	return c.currentPixel()
}

func (c *Canvas) fillPixel() (int, error) {
	if c.tile != nil {
		return PixelTiled, nil
	}
	return c.currentPixel()
}

func (c *Canvas) handle() (C.gdImagePtr, error) {
	if c.image.image == nil {
		return nil, ErrImageClosed
	}
	return c.image.image, nil
}

// Line draws a line between two points
func (c *Canvas) Line(x1, y1, x2, y2 float64) error {
	defer runtime.KeepAlive(c.image)
	im, err := c.handle()
	if err != nil {
		return err
	}
	pixel, err := c.linePixel()
	if err != nil {
		return err
	}
	p1, p2 := c.transform(x1, y1), c.transform(x2, y2)
	gdgenImageLine(im, int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), pixel)
	return nil
}

// LineTo draws a line from the pen to x, y and moves the pen there
func (c *Canvas) LineTo(x, y float64) error {
	defer runtime.KeepAlive(c.image)
	im, err := c.handle()
	if err != nil {
		return err
	}
	pixel, err := c.linePixel()
	if err != nil {
		return err
	}
	p := c.transform(x, y)
	gdgenImageLine(im, int(c.point.X), int(c.point.Y), int(p.X), int(p.Y), pixel)
	c.point = p
	return nil
}

// Fill flood fills the region of similar color around the pen
func (c *Canvas) Fill() error {
	defer runtime.KeepAlive(c.image)
	im, err := c.handle()
	if err != nil {
		return err
	}
	pixel, err := c.fillPixel()
	if err != nil {
		return err
	}
	gdgenImageFill(im, int(c.point.X), int(c.point.Y), pixel)
	return nil
}

// FillTo flood fills around the pen up to pixels of the border color.
// Tiles are not supported by the native border fill, so the plain color is used.
func (c *Canvas) FillTo(border Color) error {
	defer runtime.KeepAlive(c.image)
	im, err := c.handle()
	if err != nil {
		return err
	}
	pixel, err := c.currentPixel()
	if err != nil {
		return err
	}
	borderPixel, err := c.image.ColorToPixel(border)
	if err != nil {
		return err
	}
	gdgenImageFillToBorder(im, int(c.point.X), int(c.point.Y), borderPixel, pixel)
	return nil
}

// Rectangle draws the rectangle with corners x1, y1 and x2, y2
func (c *Canvas) Rectangle(x1, y1, x2, y2 float64, filled bool) error {
	defer runtime.KeepAlive(c.image)
	im, err := c.handle()
	if err != nil {
		return err
	}
	p1, p2 := c.transform(x1, y1), c.transform(x2, y2)
	if filled {
		pixel, err := c.fillPixel()
		if err != nil {
			return err
		}
		gdgenImageFilledRectangle(im, int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), pixel)
		return nil
	}
	pixel, err := c.linePixel()
	if err != nil {
		return err
	}
	gdgenImageRectangle(im, int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), pixel)
	return nil
}

// Polygon draws the outline or the filled area of points
func (c *Canvas) Polygon(points []Point, mode PolygonMode) error {
	defer runtime.KeepAlive(c.image)
	im, err := c.handle()
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}
	var pixel int
	if mode == PolygonFilled {
		pixel, err = c.fillPixel()
	} else {
		pixel, err = c.linePixel()
	}
	if err != nil {
		return err
	}
	native := make([]C.gdPoint, len(points))
	for i, p := range points {
		t := c.transform(p.X, p.Y)
		native[i].x = C.int(t.X)
		native[i].y = C.int(t.Y)
	}
	switch mode {
	case PolygonFilled:
		C.gdImageFilledPolygon(im, &native[0], C.int(len(native)), C.int(pixel))
	case PolygonOpen:
		C.gdImageOpenPolygon(im, &native[0], C.int(len(native)), C.int(pixel))
	default:
		C.gdImagePolygon(im, &native[0], C.int(len(native)), C.int(pixel))
	}
	return nil
}

// arcDegrees maps a counterclockwise radian range onto the clockwise degrees libgd expects
func arcDegrees(start, end float64) (int, int) {
	return roundInt(ToDegrees(2*math.Pi - end)), roundInt(ToDegrees(2*math.Pi - start))
}

// Arc draws part of the ellipse centered on cx, cy from start to end radians,
// counterclockwise
func (c *Canvas) Arc(cx, cy, width, height, start, end float64) error {
	defer runtime.KeepAlive(c.image)
	im, err := c.handle()
	if err != nil {
		return err
	}
	pixel, err := c.linePixel()
	if err != nil {
		return err
	}
	center := c.transform(cx, cy)
	s, e := arcDegrees(start, end)
	gdgenImageArc(im, int(center.X), int(center.Y), int(width), int(height), s, e, pixel)
	return nil
}

// Wedge draws a pie slice, or a chord when chord is set
func (c *Canvas) Wedge(cx, cy, width, height, start, end float64, filled, chord bool) error {
	defer runtime.KeepAlive(c.image)
	im, err := c.handle()
	if err != nil {
		return err
	}
	style := ArcPie
	if chord {
		style = ArcChord
	}
	var pixel int
	if filled {
		pixel, err = c.fillPixel()
	} else {
		style |= ArcNoFill | ArcEdged
		pixel, err = c.linePixel()
	}
	if err != nil {
		return err
	}
	center := c.transform(cx, cy)
	s, e := arcDegrees(start, end)
	gdgenImageFilledArc(im, int(center.X), int(center.Y), int(width), int(height), s, e, pixel, style)
	return nil
}

// Ellipse draws the ellipse centered on cx, cy
func (c *Canvas) Ellipse(cx, cy, width, height float64, filled bool) error {
	defer runtime.KeepAlive(c.image)
	im, err := c.handle()
	if err != nil {
		return err
	}
	center := c.transform(cx, cy)
	if filled {
		pixel, err := c.fillPixel()
		if err != nil {
			return err
		}
		gdgenImageFilledEllipse(im, int(center.X), int(center.Y), int(width), int(height), pixel)
		return nil
	}
	pixel, err := c.linePixel()
	if err != nil {
		return err
	}
	gdgenImageArc(im, int(center.X), int(center.Y), int(width), int(height), 0, 360, pixel)
	return nil
}

// Circle draws the circle of the given diameter centered on cx, cy
func (c *Canvas) Circle(cx, cy, diameter float64, filled bool) error {
	return c.Ellipse(cx, cy, diameter, diameter, filled)
}

// Text draws s at the pen with the selected font and color
func (c *Canvas) Text(s string, angle float64) (TextBounds, error) {
	if c.font == nil {
		return TextBounds{}, ErrNoFontSelected
	}
	if !c.hasColor {
		return TextBounds{}, ErrNoColorSelected
	}
	return c.font.DrawText(c.image, int(c.point.X), int(c.point.Y), angle, s, c.color)
}

// TextCircle draws top and bottom text bent around a circle centered on the pen
func (c *Canvas) TextCircle(top, bottom string, radius, textRadius, fillPortion float64) error {
	if c.font == nil {
		return ErrNoFontSelected
	}
	if !c.hasColor {
		return ErrNoColorSelected
	}
	return c.font.DrawTextCircle(c.image, int(c.point.X), int(c.point.Y), radius, textRadius, fillPortion, top, bottom, c.color)
}
