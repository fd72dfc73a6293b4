package display

import (
	"image/color"

	"github.com/BeatGlow/moodface/pixel"
	"tinygo.org/x/drivers"
)

type displayer struct {
	d Display
}

// Displayer exposes a display through the TinyGo [drivers.Displayer]
// interface, so TinyGo drawing packages can render into its framebuffer.
func Displayer(d Display) drivers.Displayer {
	return displayer{d: d}
}

func (d displayer) Size() (x, y int16) {
	size := d.d.Bounds().Size()
	return int16(size.X), int16(size.Y)
}

func (d displayer) SetPixel(x, y int16, c color.RGBA) {
	d.d.Set(int(x), int(y), pixel.MonoModel.Convert(c))
}

func (d displayer) Display() error {
	return d.d.Refresh()
}
