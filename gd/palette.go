package gd

// #include <gd.h>
import "C"

import (
	"fmt"
	"runtime"
)

// trueColorPaletteSize counts every packed color: 256^3 components times 128 alphas
const trueColorPaletteSize = (RGBMax + 1) * (RGBMax + 1) * (RGBMax + 1) * (AlphaMax + 1)

// Palette is the color table of an image. For true color images it is a
// degenerate view in which every packed value is its own entry.
type Palette struct {
	image *Image
}

func (p *Palette) handle() C.gdImagePtr {
	return p.image.image
}

func (p *Palette) trueColor() bool {
	return p.image.IsTrueColor()
}

// Size returns the number of entries
func (p *Palette) Size() int {
	if p.trueColor() {
		return trueColorPaletteSize
	}
	return MaxColors
}

// Len is an alias of Size
func (p *Palette) Len() int {
	return p.Size()
}

func (p *Palette) allocated(index int) bool {
	defer runtime.KeepAlive(p.image)
	if p.trueColor() {
		return true
	}
	im := p.handle()
	return im != nil && im.open[index] == 0
}

// Used returns the number of allocated entries
func (p *Palette) Used() int {
	if p.trueColor() {
		return p.Size()
	}
	used := 0
	for i := 0; i < MaxColors; i++ {
		if p.allocated(i) {
			used++
		}
	}
	return used
}

// Available returns the number of free entries
func (p *Palette) Available() int {
	return p.Size() - p.Used()
}

// get reads entry index without range checks
func (p *Palette) get(index int) Color {
	defer runtime.KeepAlive(p.image)
	if p.trueColor() {
		return ColorFromRGBA(index)
	}
	im := p.handle()
	if im == nil || index < 0 || index >= MaxColors {
		return Color{}
	}
	return newPaletteColor(int(im.red[index]), int(im.green[index]), int(im.blue[index]), int(im.alpha[index]), index, p)
}

// At returns entry index; negative indices count from the end.
// The bool is false for an unallocated entry.
func (p *Palette) At(index int) (Color, bool, error) {
	if index < 0 {
		index += p.Size()
	}
	if index < 0 || index >= p.Size() {
		return Color{}, false, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if !p.allocated(index) {
		return Color{}, false, nil
	}
	return p.get(index), true, nil
}

// SetAt assigns entry index directly. A nil color deallocates the entry.
func (p *Palette) SetAt(index int, c *Color) error {
	defer runtime.KeepAlive(p.image)
	if p.handle() == nil {
		return ErrImageClosed
	}
	if p.trueColor() {
		return ErrPaletteAssignment
	}
	if index < 0 || index >= MaxColors {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if c == nil {
		gdgenImageColorDeallocate(p.handle(), index)
		return nil
	}
	im := p.handle()
	im.red[index] = C.int(c.Red())
	im.green[index] = C.int(c.Green())
	im.blue[index] = C.int(c.Blue())
	im.alpha[index] = C.int(c.Alpha())
	im.open[index] = 0
	if index >= int(im.colorsTotal) {
		im.colorsTotal = C.int(index + 1)
	}
	return nil
}

func (p *Palette) lookup(found int) (Color, bool) {
	if found == -1 {
		return Color{}, false
	}
	return p.get(found), true
}

// Resolve returns the exact entry for c, allocating it or falling back to the
// closest entry when the palette is full
func (p *Palette) Resolve(c Color) (Color, bool) {
	defer runtime.KeepAlive(p.image)
	if p.handle() == nil {
		return Color{}, false
	}
	return p.lookup(gdgenImageColorResolveAlpha(p.handle(), c.Red(), c.Green(), c.Blue(), c.Alpha()))
}

// Exact returns the entry matching c exactly
func (p *Palette) Exact(c Color) (Color, bool) {
	defer runtime.KeepAlive(p.image)
	if p.handle() == nil {
		return Color{}, false
	}
	return p.lookup(gdgenImageColorExactAlpha(p.handle(), c.Red(), c.Green(), c.Blue(), c.Alpha()))
}

// ExactOrError is Exact returning ErrColorNotFound on a miss
func (p *Palette) ExactOrError(c Color) (Color, error) {
	found, ok := p.Exact(c)
	if !ok {
		return Color{}, fmt.Errorf("%w: %s", ErrColorNotFound, c)
	}
	return found, nil
}

// Closest returns the entry nearest to c in RGBA space
func (p *Palette) Closest(c Color) (Color, bool) {
	defer runtime.KeepAlive(p.image)
	if p.handle() == nil {
		return Color{}, false
	}
	return p.lookup(gdgenImageColorClosestAlpha(p.handle(), c.Red(), c.Green(), c.Blue(), c.Alpha()))
}

// ClosestHWB returns the entry nearest to c in hue, whiteness and blackness
func (p *Palette) ClosestHWB(c Color) (Color, bool) {
	defer runtime.KeepAlive(p.image)
	if p.handle() == nil {
		return Color{}, false
	}
	return p.lookup(gdgenImageColorClosestHWB(p.handle(), c.Red(), c.Green(), c.Blue()))
}

// Allocate adds c as a new entry
func (p *Palette) Allocate(c Color) (Color, error) {
	defer runtime.KeepAlive(p.image)
	if p.handle() == nil {
		return Color{}, ErrImageClosed
	}
	found, ok := p.lookup(gdgenImageColorAllocateAlpha(p.handle(), c.Red(), c.Green(), c.Blue(), c.Alpha()))
	if !ok {
		return Color{}, ErrPaletteFull
	}
	return found, nil
}

// Ensure returns the exact entry for c, allocating one if needed
func (p *Palette) Ensure(c Color) (Color, error) {
	if found, ok := p.Exact(c); ok {
		return found, nil
	}
	return p.Allocate(c)
}

// Deallocate frees the entry of c: its own entry if it came from this
// palette, else the exact match. Unknown colors are ignored.
func (p *Palette) Deallocate(c Color) {
	defer runtime.KeepAlive(p.image)
	if p.handle() == nil {
		return
	}
	if !c.FromPalette(p) {
		found, ok := p.Exact(c)
		if !ok {
			return
		}
		c = found
	}
	gdgenImageColorDeallocate(p.handle(), c.index)
}

// DeallocateUnused frees entries no pixel refers to and returns how many
func (p *Palette) DeallocateUnused() int {
	defer runtime.KeepAlive(p.image)
	if p.handle() == nil || p.trueColor() {
		return 0
	}
	var used [MaxColors]bool
	_ = p.image.Rows(func(_ int, row []int) error {
		for _, pixel := range row {
			if pixel >= 0 && pixel < MaxColors {
				used[pixel] = true
			}
		}
		return nil
	})
	count := 0
	for _, c := range p.Colors() {
		if !used[c.index] {
			gdgenImageColorDeallocate(p.handle(), c.index)
			count++
		}
	}
	return count
}

// Colors returns the allocated entries in index order. True color palettes
// have no enumerable entries and return nil.
func (p *Palette) Colors() []Color {
	defer runtime.KeepAlive(p.image)
	if p.handle() == nil || p.trueColor() {
		return nil
	}
	var colors []Color
	for i := 0; i < MaxColors; i++ {
		if p.allocated(i) {
			colors = append(colors, p.get(i))
		}
	}
	return colors
}

func (p *Palette) String() string {
	if p.trueColor() {
		return "<gd.Palette truecolor>"
	}
	return fmt.Sprintf("<gd.Palette [%d]>", p.Used())
}
