// Package draw contains the rasterizers used to compose display content.
//
// All shapes are drawn with integer arithmetic only, except for [Arc] which
// places its samples with trigonometry. Shapes are clipped by the destination
// image; pixels outside of its bounds are silently dropped.
package draw

import "image/draw"

// Image is an alias for [image/draw.Image].
type Image = draw.Image
