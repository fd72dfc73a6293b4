package draw

import (
	"image"
	"image/color"
)

// Ellipse draws the outline of an axis aligned ellipse with horizontal radius
// rx and vertical radius ry around center.
func Ellipse(dst Image, center image.Point, rx, ry int, c color.Color) {
	midpointEllipse(rx, ry, func(x, y int) {
		cx, cy := center.X, center.Y
		dst.Set(cx+x, cy+y, c)
		dst.Set(cx-x, cy+y, c)
		dst.Set(cx+x, cy-y, c)
		dst.Set(cx-x, cy-y, c)
	})
}

// FilledEllipse draws a filled axis aligned ellipse with horizontal radius rx
// and vertical radius ry around center.
func FilledEllipse(dst Image, center image.Point, rx, ry int, c color.Color) {
	midpointEllipse(rx, ry, func(x, y int) {
		cx, cy := center.X, center.Y
		span(dst, cx-x, cx+x, cy+y, c)
		span(dst, cx-x, cx+x, cy-y, c)
	})
}

// midpointEllipse calls plot for the (x, y) points of the first quadrant,
// starting at (0, ry) and ending at y = 0.
//
// Region 1 covers the part of the arc where the slope magnitude is below 1, x
// advances every step. Region 2 covers the steep part, y decreases every step.
//
// The region 2 decision value is seeded at (x+½, y-1) in floating point and
// truncated toward zero; the remaining steps are integer only.
func midpointEllipse(rx, ry int, plot func(x, y int)) {
	var (
		x      = 0
		y      = ry
		rx2    = rx * rx
		ry2    = ry * ry
		tworx2 = 2 * rx2
		twory2 = 2 * ry2
		p      = ry2 - rx2*ry + rx2/4
		dx     = 0
		dy     = tworx2 * y
	)

	// Region 1
	for dx < dy {
		plot(x, y)

		x++
		dx += twory2
		if p < 0 {
			p += dx + ry2
		} else {
			y--
			dy -= tworx2
			p += dx - dy + ry2
		}
	}

	// Region 2
	hx := float64(x) + 0.5
	p = int(float64(ry2)*hx*hx + float64(rx2*(y-1)*(y-1)) - float64(rx2*ry2))
	for y >= 0 {
		plot(x, y)

		y--
		dy -= tworx2
		if p > 0 {
			p += rx2 - dy
		} else {
			x++
			dx += twory2
			p += dx - dy + rx2
		}
	}
}
