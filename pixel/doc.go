// Package pixel implements the monochrome color and framebuffer types used by
// SSD1306 style OLED displays.
//
// The types are compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces, so any standard library drawing code can target them.
package pixel
