package display

import (
	"image"

	"github.com/BeatGlow/moodface/draw"
	"github.com/BeatGlow/moodface/pixel"
)

type monoDisplay struct {
	baseDisplay
	fb     *pixel.MonoVerticalLSBImage
	halted bool
}

func (d *monoDisplay) init(config *Config) error {
	d.fb = pixel.NewMonoVerticalLSBImage(config.Width, config.Height)
	d.Image = d.fb
	return nil
}

func (d *monoDisplay) Clear() {
	d.fb.Clear()
}

func (d *monoDisplay) Show(show bool) error {
	if show {
		return d.command(ssd1xxxSetDisplayOn)
	}
	return d.command(ssd1xxxSetDisplayOff)
}

func (d *monoDisplay) SetContrast(level uint8) error {
	return d.command(ssd1xxxSetContrast, level)
}

// Pixels returns the framebuffer contents, in controller page order.
func (d *monoDisplay) Pixels() []byte {
	return d.fb.Pix
}

// SetPixel turns a pixel on or off. Coordinates outside of the display are ignored.
func (d *monoDisplay) SetPixel(x, y int, on bool) {
	d.fb.SetBit(x, y, on)
}

// Pixel reports if a pixel is on.
func (d *monoDisplay) Pixel(x, y int) bool {
	return d.fb.Bit(x, y)
}

// DrawLine draws a line from (x0, y0) to (x1, y1), both included.
func (d *monoDisplay) DrawLine(x0, y0, x1, y1 int, on bool) {
	draw.Line(d.fb, image.Pt(x0, y0), image.Pt(x1, y1), pixel.Mono{On: on})
}

// DrawCircle draws a circle with radius r around (cx, cy).
func (d *monoDisplay) DrawCircle(cx, cy, r int, filled, on bool) {
	if filled {
		draw.FilledCircle(d.fb, image.Pt(cx, cy), r, pixel.Mono{On: on})
	} else {
		draw.Circle(d.fb, image.Pt(cx, cy), r, pixel.Mono{On: on})
	}
}

// DrawEllipse draws an axis aligned ellipse with radii rx and ry around (cx, cy).
func (d *monoDisplay) DrawEllipse(cx, cy, rx, ry int, filled, on bool) {
	if filled {
		draw.FilledEllipse(d.fb, image.Pt(cx, cy), rx, ry, pixel.Mono{On: on})
	} else {
		draw.Ellipse(d.fb, image.Pt(cx, cy), rx, ry, pixel.Mono{On: on})
	}
}

// DrawArc draws a thick arc with radius r around (cx, cy) from start up to
// end degrees.
func (d *monoDisplay) DrawArc(cx, cy, r, start, end int, on bool) {
	draw.Arc(d.fb, image.Pt(cx, cy), r, start, end, pixel.Mono{On: on})
}
