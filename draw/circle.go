package draw

import (
	"image"
	"image/color"
)

// Circle draws the outline of a circle with radius r around center.
func Circle(dst Image, center image.Point, r int, c color.Color) {
	midpointCircle(r, func(x, y int) {
		cx, cy := center.X, center.Y
		dst.Set(cx+x, cy+y, c)
		dst.Set(cx-x, cy+y, c)
		dst.Set(cx+x, cy-y, c)
		dst.Set(cx-x, cy-y, c)
		dst.Set(cx+y, cy+x, c)
		dst.Set(cx-y, cy+x, c)
		dst.Set(cx+y, cy-x, c)
		dst.Set(cx-y, cy-x, c)
	})
}

// FilledCircle draws a filled circle with radius r around center.
//
// Every step fills two pairs of spans, one for the octants near the poles and
// one for the octants near the equator. Filling only the pole spans would
// leave gaps near the diagonals.
func FilledCircle(dst Image, center image.Point, r int, c color.Color) {
	midpointCircle(r, func(x, y int) {
		cx, cy := center.X, center.Y
		span(dst, cx-x, cx+x, cy+y, c)
		span(dst, cx-x, cx+x, cy-y, c)
		span(dst, cx-y, cx+y, cy+x, c)
		span(dst, cx-y, cx+y, cy-x, c)
	})
}

// midpointCircle calls plot for every (x, y) of the first octant, x running
// from 0 up to the diagonal.
func midpointCircle(r int, plot func(x, y int)) {
	var (
		x = 0
		y = r
		d = 3 - 2*r
	)
	for x <= y {
		plot(x, y)

		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
}
