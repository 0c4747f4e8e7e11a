package render

import (
	"bytes"
	"testing"
)

func TestClearPacksAllLanes(t *testing.T) {
	fb := NewFrameBuffer()

	for color := uint8(0); color < 4; color++ {
		fb.Clear(color)
		for _, pt := range [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {Width - 1, Height - 1}, {80, 70}} {
			if got := fb.PixelAt(pt[0], pt[1]); got != color {
				t.Fatalf("Clear(%d): pixel (%d,%d) = %d", color, pt[0], pt[1], got)
			}
		}
	}
}

func TestSetPixelRoundTrip(t *testing.T) {
	fb := NewFrameBuffer()

	// Corner cases plus neighbors within the same packed byte.
	points := [][2]int{
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
		{Width - 1, 0}, {0, Height - 1}, {Width - 1, Height - 1},
		{77, 33},
	}
	for _, pt := range points {
		for color := uint8(0); color < 4; color++ {
			fb.SetPixel(pt[0], pt[1], color)
			if got := fb.PixelAt(pt[0], pt[1]); got != color {
				t.Errorf("pixel (%d,%d) = %d, want %d", pt[0], pt[1], got, color)
			}
		}
	}
}

func TestSetPixelLeavesNeighbors(t *testing.T) {
	fb := NewFrameBuffer()
	fb.Clear(2)

	// Pixel 1 of the first byte; lanes 0, 2 and 3 must keep their value.
	fb.SetPixel(1, 0, 3)

	if got := fb.PixelAt(1, 0); got != 3 {
		t.Errorf("target pixel = %d, want 3", got)
	}
	for _, x := range []int{0, 2, 3} {
		if got := fb.PixelAt(x, 0); got != 2 {
			t.Errorf("neighbor pixel (%d,0) = %d, want 2", x, got)
		}
	}
}

func TestOutOfBoundsIsNoOp(t *testing.T) {
	fb := NewFrameBuffer()
	before := make([]byte, len(fb.Raw()))
	copy(before, fb.Raw())

	for _, pt := range [][2]int{
		{Width, 0}, {0, Height}, {Width, Height},
		{-1, 0}, {0, -1}, {100000, 5}, {5, 100000},
	} {
		fb.SetPixel(pt[0], pt[1], 3)
		if got := fb.PixelAt(pt[0], pt[1]); got != 0 {
			t.Errorf("PixelAt(%d,%d) = %d, want 0", pt[0], pt[1], got)
		}
	}

	if !bytes.Equal(before, fb.Raw()) {
		t.Error("out-of-bounds SetPixel modified the buffer")
	}
}

func TestToRGBA(t *testing.T) {
	fb := NewFrameBuffer()
	fb.Clear(0)
	fb.SetPixel(0, 0, 3)
	fb.SetPixel(159, 143, 1)

	out := make([]uint32, Width*Height)
	fb.ToRGBA(out)

	if out[0] != Palette[3] {
		t.Errorf("out[0] = %#x, want %#x", out[0], Palette[3])
	}
	if got := out[143*Width+159]; got != Palette[1] {
		t.Errorf("bottom-right = %#x, want %#x", got, Palette[1])
	}
	if out[1] != Palette[0] {
		t.Errorf("out[1] = %#x, want background %#x", out[1], Palette[0])
	}
}

func TestDrawTextSkipsUnknownRunes(t *testing.T) {
	fb := NewFrameBuffer()
	fb.Clear(0)

	// 'a' has no glyph; the cursor must still advance so "A?A" spaces like "AAA".
	fb.DrawText(0, 0, "A", 3)
	fb.DrawText(0, 20, "aA", 3)

	for row := 0; row < FontHeight; row++ {
		for col := 0; col < FontWidth; col++ {
			plain := fb.PixelAt(col, row)
			shifted := fb.PixelAt(FontAdvance+col, 20+row)
			if plain != shifted {
				t.Fatalf("glyph mismatch at (%d,%d): %d vs %d", col, row, plain, shifted)
			}
		}
	}

	// Nothing rendered in the skipped cell.
	for row := 0; row < FontHeight; row++ {
		for col := 0; col < FontWidth; col++ {
			if fb.PixelAt(col, 20+row) != 0 {
				t.Fatal("unsupported rune left pixels behind")
			}
		}
	}
}

func TestDrawUintZeroPadded(t *testing.T) {
	a := NewFrameBuffer()
	a.Clear(0)
	a.DrawUint(0, 0, 7, 3, 3)

	b := NewFrameBuffer()
	b.Clear(0)
	b.DrawText(0, 0, "007", 3)

	if !bytes.Equal(a.Raw(), b.Raw()) {
		t.Error("DrawUint(7, width 3) does not match DrawText(\"007\")")
	}
}

func TestDrawUintTruncatesHighDigits(t *testing.T) {
	a := NewFrameBuffer()
	a.DrawUint(0, 0, 12345, 3, 3)

	b := NewFrameBuffer()
	b.DrawText(0, 0, "345", 3)

	if !bytes.Equal(a.Raw(), b.Raw()) {
		t.Error("DrawUint(12345, width 3) does not match DrawText(\"345\")")
	}
}
