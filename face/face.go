// Package face draws the mood faces shown on the 128x64 status display.
package face

import (
	"image"
	"math"

	"github.com/BeatGlow/moodface/draw"
	"github.com/BeatGlow/moodface/pixel"
)

// Canvas is a display that can be drawn on and refreshed.
type Canvas interface {
	draw.Image

	// Clear the display buffer.
	Clear()

	// Refresh redraws the display.
	Refresh() error
}

// Mood selects the face to draw.
type Mood uint8

const (
	Happy Mood = iota
	Sad
)

func (m Mood) String() string {
	switch m {
	case Happy:
		return "happy"
	case Sad:
		return "sad"
	default:
		return "unknown"
	}
}

// Draw draws the face for a mood.
func (m Mood) Draw(dst draw.Image) {
	switch m {
	case Sad:
		DrawSad(dst)
	default:
		DrawHappy(dst)
	}
}

var (
	center     = image.Pt(64, 32)
	faceRadius = 28
	leftEye    = image.Pt(54, 24)
	rightEye   = image.Pt(74, 24)
)

// DrawHappy draws a smiling face with round eyes and cheeks.
func DrawHappy(dst draw.Image) {
	draw.Circle(dst, center, faceRadius, pixel.On)

	draw.FilledCircle(dst, leftEye, 4, pixel.On)
	draw.FilledCircle(dst, rightEye, 4, pixel.On)

	draw.Arc(dst, center, 15, 20, 160, pixel.On)

	draw.Circle(dst, image.Pt(42, 35), 3, pixel.On)
	draw.Circle(dst, image.Pt(86, 35), 3, pixel.On)
}

// DrawSad draws a frowning face with raised brows and a tear.
func DrawSad(dst draw.Image) {
	draw.Circle(dst, center, faceRadius, pixel.On)

	draw.FilledEllipse(dst, leftEye, 3, 5, pixel.On)
	draw.FilledEllipse(dst, rightEye, 3, 5, pixel.On)

	draw.Line(dst, image.Pt(48, 18), image.Pt(58, 20), pixel.On)
	draw.Line(dst, image.Pt(70, 20), image.Pt(80, 18), pixel.On)

	draw.Arc(dst, image.Pt(64, 48), 12, 200, 340, pixel.On)

	// tear
	draw.Line(dst, image.Pt(50, 28), image.Pt(48, 35), pixel.On)
	draw.Line(dst, image.Pt(48, 35), image.Pt(46, 38), pixel.On)
	draw.FilledCircle(dst, image.Pt(46, 39), 2, pixel.On)
}

// gauge is the moisture bar at the left edge, clear of the face.
var gauge = image.Rect(4, 8, 15, 57)

// DrawGauge draws a vertical bar filled from the bottom up to level, which is
// clamped to [0, 1].
func DrawGauge(dst draw.Image, level float64) {
	if level < 0 || math.IsNaN(level) {
		level = 0
	} else if level > 1 {
		level = 1
	}

	draw.RoundedRectangle(dst, gauge, 3, pixel.On)

	inner := gauge.Inset(2)
	h := int(float64(inner.Dy())*level + 0.5)
	if h == 0 {
		return
	}
	fill := image.Rect(inner.Min.X, inner.Max.Y-h, inner.Max.X, inner.Max.Y)
	draw.RoundedBox(dst, fill, 1, pixel.On)
}

// Show clears the canvas, draws the face for mood, optionally the moisture
// gauge, and refreshes the display.
func Show(c Canvas, mood Mood, level float64, withGauge bool) error {
	c.Clear()
	mood.Draw(c)
	if withGauge {
		DrawGauge(c, level)
	}
	return c.Refresh()
}

// ShowHappy clears the canvas and shows the happy face.
func ShowHappy(c Canvas) error {
	return Show(c, Happy, 0, false)
}

// ShowSad clears the canvas and shows the sad face.
func ShowSad(c Canvas) error {
	return Show(c, Sad, 0, false)
}
