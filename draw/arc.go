package draw

import (
	"image"
	"image/color"
	"math"
)

// Arc draws a 2 pixel thick arc with radius r around center, sweeping from
// start to end degrees in 1 degree steps. Angles grow clock wise on screen
// (0° points right, 90° points down).
//
// The sweep is ascending only; if start > end nothing is drawn, callers have
// to normalize angles that wrap around 360°.
//
// The angle is rounded to single precision before taking its sine and cosine,
// so samples at the cardinal angles fall one pixel inside the radius.
func Arc(dst Image, center image.Point, r, start, end int, c color.Color) {
	for angle := start; angle <= end; angle++ {
		rad := float64(float32(float64(angle) * math.Pi / 180))
		x := center.X + int(float64(r)*math.Cos(rad))
		y := center.Y + int(float64(r)*math.Sin(rad))
		dst.Set(x, y, c)
		dst.Set(x+1, y, c)
		dst.Set(x, y+1, c)
		dst.Set(x+1, y+1, c)
	}
}
