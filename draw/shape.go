package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points, both end points included.
func Line(dst Image, a, b image.Point, c color.Color) {
	bresenham(dst, a.X, a.Y, b.X, b.Y, c)
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for end := y + h; y < end; y++ {
		dst.Set(x, y, c)
	}
}

// RoundedRectangle draws a rectangle with radius pixels rounded corners.
func RoundedRectangle(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		r  = clampRadius(rect, radius)
		x0 = rect.Min.X
		y0 = rect.Min.Y
		x1 = rect.Max.X - 1
		y1 = rect.Max.Y - 1
	)
	span(dst, x0+r, x1-r, y0, c)
	span(dst, x0+r, x1-r, y1, c)
	VerticalLine(dst, x0, y0+r, y1-y0-2*r+1, c)
	VerticalLine(dst, x1, y0+r, y1-y0-2*r+1, c)
	roundedCorner(dst, x0+r, y0+r, r, 1, c)
	roundedCorner(dst, x1-r, y0+r, r, 2, c)
	roundedCorner(dst, x1-r, y1-r, r, 4, c)
	roundedCorner(dst, x0+r, y1-r, r, 8, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		span(dst, rect.Min.X, rect.Max.X-1, y, c)
	}
}

// RoundedBox draws a filled rectangle with radius pixels rounded corners.
func RoundedBox(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		r     = clampRadius(rect, radius)
		x0    = rect.Min.X
		y0    = rect.Min.Y
		x1    = rect.Max.X - 1
		y1    = rect.Max.Y - 1
		delta = y1 - y0 - 2*r
	)
	Box(dst, image.Rect(x0+r, y0, x1-r+1, y1+1), c)
	filledRoundedCorner(dst, x1-r, y0+r, r, 1, delta, c)
	filledRoundedCorner(dst, x0+r, y0+r, r, 2, delta, c)
}

func clampRadius(rect image.Rectangle, radius int) int {
	r := radius
	if m := (rect.Dx() - 1) / 2; r > m {
		r = m
	}
	if m := (rect.Dy() - 1) / 2; r > m {
		r = m
	}
	if r < 0 {
		r = 0
	}
	return r
}

// span draws the horizontal run (x0,y)..(x1,y); nothing is drawn if x0 > x1.
func span(dst Image, x0, x1, y int, c color.Color) {
	for x := x0; x <= x1; x++ {
		dst.Set(x, y, c)
	}
}

func roundedCorner(dst Image, x0, y0, radius, quadrant int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&4 != 0 {
			dst.Set(x0+x, y0+y, c)
			dst.Set(x0+y, y0+x, c)
		}
		if quadrant&2 != 0 {
			dst.Set(x0+x, y0-y, c)
			dst.Set(x0+y, y0-x, c)
		}
		if quadrant&8 != 0 {
			dst.Set(x0-y, y0+x, c)
			dst.Set(x0-x, y0+y, c)
		}
		if quadrant&1 != 0 {
			dst.Set(x0-y, y0-x, c)
			dst.Set(x0-x, y0-y, c)
		}
	}
}

func filledRoundedCorner(dst Image, x0, y0, radius, quadrant, delta int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if quadrant&1 != 0 {
			VerticalLine(dst, x0+x, y0-y, 2*y+1+delta, c)
			VerticalLine(dst, x0+y, y0-x, 2*x+1+delta, c)
		}

		if quadrant&2 != 0 {
			VerticalLine(dst, x0-x, y0-y, 2*y+1+delta, c)
			VerticalLine(dst, x0-y, y0-x, 2*x+1+delta, c)
		}
	}
}

// bresenham walks from (x0,y0) to (x1,y1) with a single error term, plotting
// every step including both end points.
func bresenham(dst Image, x0, y0, x1, y1 int, c color.Color) {
	var (
		dx  = abs(x1 - x0)
		dy  = abs(y1 - y0)
		sx  = -1
		sy  = -1
		err = dx - dy
	)
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}

	for {
		dst.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
