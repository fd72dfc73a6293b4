package display

import (
	"fmt"

	"github.com/BeatGlow/moodface/pixel"
)

const (
	ssd1306DefaultWidth    = 128
	ssd1306DefaultHeight   = 64
	ssd1306DefaultContrast = 0xCF
)

// Device is a SSD1306 OLED display session. It owns the framebuffer and the
// connection to the controller. A Device is not safe for concurrent use.
type Device struct {
	monoDisplay
	pages    int
	colStart byte
	colEnd   byte
}

// SSD1306 initializes the display controller and returns a session with a
// blank framebuffer. The controller is left switched on, but its memory is not
// cleared, call Refresh to show the (blank) framebuffer.
//
// The initialization sequence must be sent only once per power cycle.
func SSD1306(conn Conn, config *Config) (*Device, error) {
	if config == nil {
		config = new(Config)
	}
	d := &Device{
		monoDisplay: monoDisplay{
			baseDisplay: baseDisplay{
				c: conn,
			},
		},
	}

	if config.Width == 0 {
		config.Width = ssd1306DefaultWidth
	}
	if config.Height == 0 {
		config.Height = ssd1306DefaultHeight
	}
	if config.Contrast == 0 {
		config.Contrast = ssd1306DefaultContrast
	}

	if err := d.init(config); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Device) Close() error {
	if !d.halted {
		if err := d.Show(false); err != nil {
			_ = d.c.Close()
			return err
		}
		d.halted = true
	}
	return d.c.Close()
}

func (d *Device) String() string {
	bounds := d.Bounds()
	return fmt.Sprintf("SSD1306 OLED %dx%d", bounds.Dx(), bounds.Dy())
}

func (d *Device) init(config *Config) (err error) {
	var (
		multiplexRatio  = byte(config.Height - 1)
		displayClockDiv byte
		comPins         byte
		colStart        byte
	)
	switch {
	case config.Width == 64 && config.Height == 32:
		displayClockDiv, comPins, colStart = 0x80, 0x12, 32
	case config.Width == 64 && config.Height == 48:
		displayClockDiv, comPins, colStart = 0x80, 0x12, 32
	case config.Width == 96 && config.Height == 16:
		displayClockDiv, comPins, colStart = 0x60, 0x02, 0
	case config.Width == 128 && config.Height == 32:
		displayClockDiv, comPins, colStart = 0x80, 0x02, 0
	case config.Width == 128 && config.Height == 64:
		displayClockDiv, comPins, colStart = 0x80, 0x12, 0
	default:
		return fmt.Errorf("%w %dx%d for SSD1306", ErrUnsupportedSize, config.Width, config.Height)
	}

	// init paging
	d.pages = pixel.Pages(config.Height)
	d.colStart = colStart
	d.colEnd = colStart + byte(config.Width)

	// init base
	if err = d.monoDisplay.init(config); err != nil {
		return
	}

	// init display, arguments go through the command channel as well
	if err = d.command(
		ssd1xxxSetDisplayOff,
		ssd1xxxSetDisplayClockDiv, displayClockDiv,
		ssd1xxxSetMultiplexRatio, multiplexRatio,
		ssd1xxxSetDisplayOffset, 0x00,
		ssd1xxxSetStartLine|0x00, //nolint:staticcheck
		ssd1xxxSetChargePump, 0x14,
		ssd1xxxSetMemoryMode, 0x00,
		ssd1xxxSetSegmentRemap,
		ssd1xxxSetComScanDec,
		ssd1xxxSetComPins, comPins,
	); err != nil {
		return fmt.Errorf("display: SSD1306 init: %w", err)
	}

	if err = d.SetContrast(config.Contrast); err != nil {
		return fmt.Errorf("display: SSD1306 init: %w", err)
	}

	if err = d.command(
		ssd1xxxSetPrecharge, 0xF1,
		ssd1xxxSetVCOMDeselect, 0x40,
		ssd1xxxSetDisplayAllOnResume,
		ssd1xxxSetNormalDisplay,
	); err != nil {
		return fmt.Errorf("display: SSD1306 init: %w", err)
	}

	if err = d.Show(true); err != nil {
		return fmt.Errorf("display: SSD1306 init: %w", err)
	}

	if debug {
		logf("initialized %s on %s", d, d.c)
	}
	return
}

// Refresh sends the whole framebuffer to the controller.
func (d *Device) Refresh() (err error) {
	if err = d.command(
		ssd1xxxSetColumnAddr, d.colStart, d.colEnd-1,
		ssd1xxxSetPageAddr, 0x00, byte(d.pages-1),
	); err != nil {
		return
	}
	return d.data(d.fb.Pix...)
}

// Interface checks.
var (
	_ Display = (*Device)(nil)
)
