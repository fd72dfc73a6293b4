// Package display contains the SSD1306 monochrome OLED driver.
//
// The driver keeps an off-screen framebuffer that is modified by the drawing
// methods, and copied to the display controller in full by Refresh.
package display

import (
	"errors"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/BeatGlow/moodface/draw"
)

var debug bool

func init() {
	debug = os.Getenv("DISPLAY_DEBUG") != ""
}

func logf(format string, args ...any) {
	log.Printf("display: "+format, args...)
}

// Errors
var (
	ErrUnsupportedSize = errors.New("display: unsupported size")
)

// Display is an OLED display.
type Display interface {
	// Close the display driver.
	Close() error

	// Clear the display buffer.
	Clear()

	// At returns the color of the pixel at (x, y).
	At(x, y int) color.Color

	// Set the pixel color at (x, y).
	Set(x, y int, c color.Color)

	// Bounds is the display bounding box (dimensions).
	Bounds() image.Rectangle

	// ColorModel used by the display.
	ColorModel() color.Model

	// Show toggles the display on or off.
	Show(bool) error

	// SetContrast adjusts the contrast level.
	SetContrast(level uint8) error

	// Refresh redraws the display.
	Refresh() error
}

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels.
	Height int

	// Contrast level set during initialization, uses the default if zero.
	Contrast uint8
}

type baseDisplay struct {
	draw.Image
	c Conn
}

func (d *baseDisplay) data(data ...byte) error {
	return d.c.Data(data...)
}

// command sends every byte in its own command frame.
func (d *baseDisplay) command(commands ...byte) (err error) {
	for _, command := range commands {
		if err = d.c.Command(command); err != nil {
			return
		}
	}
	return
}
