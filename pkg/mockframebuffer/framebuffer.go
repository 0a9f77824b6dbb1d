// Package mockframebuffer provides a programmatic drawing surface that
// produces the same PNG-plus-dimensions shape as a real pkg/ptycap
// capture, so downstream consumers (pkg/vlmclient, pkg/previewserver,
// pkg/session) can be exercised in tests or demos without spawning a
// PTY. It is grounded on the original implementation's MockFramebuffer,
// which served the same role for its own test and demo surfaces.
package mockframebuffer

import (
	"github.com/ptyshot/ptyshot/pkg/rasterize"
)

// Framebuffer is a width*height RGB pixel buffer with a small drawing
// API: fill, rectangle, text, and single-pixel access.
type Framebuffer struct {
	width, height int
	pixels        []byte // row-major, 3 bytes per pixel
}

// New creates a framebuffer initialized to black.
func New(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]byte, width*height*3),
	}
}

// WithColor creates a framebuffer filled with color.
func WithColor(width, height int, color [3]byte) *Framebuffer {
	fb := New(width, height)
	fb.Fill(color)
	return fb
}

// Fill paints the entire buffer one color.
func (fb *Framebuffer) Fill(color [3]byte) {
	for i := 0; i < len(fb.pixels); i += 3 {
		fb.pixels[i+0] = color[0]
		fb.pixels[i+1] = color[1]
		fb.pixels[i+2] = color[2]
	}
}

// SetPixel paints one pixel, ignoring out-of-range coordinates.
func (fb *Framebuffer) SetPixel(x, y int, color [3]byte) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return
	}
	o := (y*fb.width + x) * 3
	fb.pixels[o+0] = color[0]
	fb.pixels[o+1] = color[1]
	fb.pixels[o+2] = color[2]
}

// DrawRect paints a filled rectangle clipped to the buffer bounds.
func (fb *Framebuffer) DrawRect(x, y, w, h int, color [3]byte) {
	for py := y; py < y+h && py < fb.height; py++ {
		for px := x; px < x+w && px < fb.width; px++ {
			fb.SetPixel(px, py, color)
		}
	}
}

// DrawText paints s starting at (x, y) using the same 8x16 glyph table
// the terminal rasterizer uses, one glyph per 8 pixels of width with no
// extra scaling, so a mock screenshot can be composed at arbitrary
// resolution rather than a fixed terminal-cell grid.
func (fb *Framebuffer) DrawText(x, y int, s string, fg, bg [3]byte) {
	cursor := x
	for _, r := range s {
		bitmap := rasterize.GlyphBitmap(r)
		for gy := 0; gy < 16; gy++ {
			row := bitmap[gy]
			for gx := 0; gx < 8; gx++ {
				color := bg
				if row&(1<<uint(gx)) != 0 {
					color = fg
				}
				fb.SetPixel(cursor+gx, y+gy, color)
			}
		}
		cursor += 8
	}
}

// Capture renders the framebuffer as a PNG-encoded image, matching the
// capture result shape of pkg/ptycap.Capture.
func (fb *Framebuffer) Capture() ([]byte, int, int, error) {
	img := rasterize.Image{
		Pixels: toRGBA(fb.pixels),
		Width:  fb.width,
		Height: fb.height,
	}
	png, err := rasterize.EncodePNG(img)
	if err != nil {
		return nil, 0, 0, err
	}
	return png, fb.width, fb.height, nil
}

func toRGBA(rgb []byte) []byte {
	out := make([]byte, len(rgb)/3*4)
	for i, o := 0, 0; i < len(rgb); i, o = i+3, o+4 {
		out[o+0] = rgb[i+0]
		out[o+1] = rgb[i+1]
		out[o+2] = rgb[i+2]
		out[o+3] = 0xFF
	}
	return out
}
