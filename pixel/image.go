package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by the image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pages.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

// Clear sets all pixels to off.
func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// Pages returns the number of 8 pixel high pages needed for h rows.
func Pages(h int) int {
	return (h + 7) >> 3
}

// MonoVerticalLSBImage is a 1-bit per pixel monochrome image.
//
// Every byte holds 8 vertically stacked pixels of one column, the least
// significant bit being the topmost row of the page. Pages are stored one after
// the other, so the pixel at (x, y) lives in byte x + (y/8)*width, bit y%8.
// This is the graphics RAM layout of SSD1xxx OLED controllers in horizontal
// addressing mode.
type MonoVerticalLSBImage struct {
	Buffer
}

func NewMonoVerticalLSBImage(w, h int) *MonoVerticalLSBImage {
	return &MonoVerticalLSBImage{
		Buffer: makeBuffer(w, h, w, Pages(h)*w),
	}
}

func (p *MonoVerticalLSBImage) ColorModel() color.Model {
	return MonoModel
}

// PixOffset returns the index of the byte holding the pixel at (x, y), and the
// bit mask of that pixel within the byte.
func (p *MonoVerticalLSBImage) PixOffset(x, y int) (int, byte) {
	return (y>>3)*p.Stride + x, byte(1) << uint(y&7)
}

func (p *MonoVerticalLSBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return Mono{On: p.Bit(x, y)}
}

func (p *MonoVerticalLSBImage) Set(x, y int, c color.Color) {
	p.SetBit(x, y, monoModel(c).(Mono).On)
}

// Bit reports if the pixel at (x, y) is on. Pixels outside of the image are off.
func (p *MonoVerticalLSBImage) Bit(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return false
	}
	pos, bit := p.PixOffset(x, y)
	return p.Pix[pos]&bit != 0
}

// SetBit turns the pixel at (x, y) on or off, leaving the other pixels of the
// same byte untouched. Coordinates outside of the image are ignored.
func (p *MonoVerticalLSBImage) SetBit(x, y int, on bool) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	pos, bit := p.PixOffset(x, y)
	if on {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

func (p *MonoVerticalLSBImage) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// Interface checks.
var (
	_ Image = (*MonoVerticalLSBImage)(nil)
)
