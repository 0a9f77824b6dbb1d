package rasterize

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// EncodePNG converts an Image into PNG-encoded bytes. PNG is the only
// codec used anywhere in this repo's retrieval pack or the teacher, so
// this goes through the standard library's image/png rather than a
// third-party encoder — there is nothing in the corpus to ground a
// substitute on.
func EncodePNG(img Image) ([]byte, error) {
	rgba := &image.RGBA{
		Pix:    img.Pixels,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// At implements enough of the image.Image-adjacent surface for local
// debugging tools to sample a pixel without re-deriving the stride math.
func (img Image) At(x, y int) color.RGBA {
	o := (y*img.Width + x) * 4
	return color.RGBA{R: img.Pixels[o], G: img.Pixels[o+1], B: img.Pixels[o+2], A: img.Pixels[o+3]}
}
