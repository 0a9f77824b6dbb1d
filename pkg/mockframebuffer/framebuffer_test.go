package mockframebuffer

import (
	"bytes"
	"testing"
)

func TestWithColorFillsBuffer(t *testing.T) {
	fb := WithColor(4, 4, [3]byte{10, 20, 30})
	png, w, h, err := fb.Capture()
	if err != nil {
		t.Fatalf("Capture returned error: %v", err)
	}
	if w != 4 || h != 4 {
		t.Fatalf("got dimensions %dx%d, want 4x4", w, h)
	}
	if len(png) == 0 {
		t.Fatal("Capture returned empty PNG data")
	}
	if !bytes.HasPrefix(png, []byte{0x89, 'P', 'N', 'G'}) {
		t.Fatal("Capture output missing PNG magic header")
	}
}

func TestSetPixelOutOfRangeIsNoOp(t *testing.T) {
	fb := New(2, 2)
	fb.SetPixel(-1, 0, [3]byte{255, 0, 0})
	fb.SetPixel(0, -1, [3]byte{255, 0, 0})
	fb.SetPixel(100, 100, [3]byte{255, 0, 0})
	for _, b := range fb.pixels {
		if b != 0 {
			t.Fatal("out-of-range SetPixel calls mutated the buffer")
		}
	}
}

func TestDrawRectClipsToBounds(t *testing.T) {
	fb := New(4, 4)
	fb.DrawRect(2, 2, 10, 10, [3]byte{1, 2, 3})
	o := (2*4 + 2) * 3
	if fb.pixels[o] != 1 || fb.pixels[o+1] != 2 || fb.pixels[o+2] != 3 {
		t.Fatal("DrawRect did not paint inside bounds")
	}
	if len(fb.pixels) != 4*4*3 {
		t.Fatal("DrawRect grew the buffer past its declared size")
	}
}

func TestDrawTextAdvancesCursor(t *testing.T) {
	fb := New(24, 16)
	fb.DrawText(0, 0, "AB", [3]byte{255, 255, 255}, [3]byte{0, 0, 0})

	found := false
	for i := 0; i < len(fb.pixels); i += 3 {
		if fb.pixels[i] == 255 {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("DrawText produced no foreground-colored pixels")
	}

	// The second glyph must land in the next 8-pixel column band.
	foundSecond := false
	for y := 0; y < 16 && !foundSecond; y++ {
		for x := 8; x < 16; x++ {
			if fb.pixels[(y*24+x)*3] == 255 {
				foundSecond = true
				break
			}
		}
	}
	if !foundSecond {
		t.Fatal("DrawText did not advance to columns 8-15 for the second glyph")
	}
}
