// Command moodface shows a mood face on a SSD1306 display attached to an I²C
// bus of a Linux host, or renders the face to an image file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"periph.io/x/host/v3"

	display "github.com/BeatGlow/moodface"
	"github.com/BeatGlow/moodface/face"
	"github.com/BeatGlow/moodface/pixel"
)

func main() {
	widthFlag := flag.Int("width", 0, "Display width")
	heightFlag := flag.Int("height", 0, "Display height")
	contrastFlag := flag.Uint("contrast", 0, "Display contrast (default: 0xCF)")
	i2cDeviceFlag := flag.Int("i2c-dev", display.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(display.DefaultI2CConfig.Addr), "I²C device address")
	faceFlag := flag.String("face", "happy", "Face to show (happy or sad)")
	levelFlag := flag.Float64("level", -1, "Moisture level for the gauge, 0 to 1 (default: no gauge)")
	previewFlag := flag.String("preview", "", "Render to a .png or .bmp file instead of the display")
	flag.Parse()

	var mood face.Mood
	switch strings.ToLower(*faceFlag) {
	case "happy", "wet":
		mood = face.Happy
	case "sad", "dry":
		mood = face.Sad
	default:
		fatal(fmt.Errorf("invalid face %q specified", *faceFlag))
	}
	if *contrastFlag > 0xff {
		fatal(fmt.Errorf("invalid contrast %d specified", *contrastFlag))
	}

	if *previewFlag != "" {
		if err := preview(*previewFlag, *widthFlag, *heightFlag, mood, *levelFlag); err != nil {
			fatal(err)
		}
		return
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	conn, err := display.OpenI2C(&display.I2CConfig{
		Device: *i2cDeviceFlag,
		Addr:   uint8(*i2cAddrFlag),
	})
	if err != nil {
		fatal(err)
	}
	defer conn.Close()
	fmt.Printf("using connection: %s\n", conn)

	output, err := display.SSD1306(conn, &display.Config{
		Width:    *widthFlag,
		Height:   *heightFlag,
		Contrast: uint8(*contrastFlag),
	})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using driver: %s\n", output)

	if err = face.Show(output, mood, *levelFlag, *levelFlag >= 0); err != nil {
		fatal(err)
	}
	fmt.Printf("showing %s face\n", mood)
}

func preview(name string, width, height int, mood face.Mood, level float64) (err error) {
	if width == 0 {
		width = 128
	}
	if height == 0 {
		height = 64
	}

	fb := pixel.NewMonoVerticalLSBImage(width, height)
	mood.Draw(fb)
	if level >= 0 {
		face.DrawGauge(fb, level)
	}

	var encode func(*os.File, image.Image) error
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".png":
		encode = func(f *os.File, i image.Image) error { return png.Encode(f, i) }
	case ".bmp":
		encode = func(f *os.File, i image.Image) error { return bmp.Encode(f, i) }
	default:
		return fmt.Errorf("unsupported preview format %q", ext)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err = encode(f, fb); err != nil {
		return err
	}
	fmt.Printf("wrote %s face to %s\n", mood, name)
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
