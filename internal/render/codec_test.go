package render

import (
	"image"
	"image/color"
	"testing"
)

// paletteRGBA returns the source-image color for a palette index.
func paletteRGBA(idx uint8) color.NRGBA {
	switch idx {
	case 1:
		return color.NRGBA{R: 15, G: 56, B: 15, A: 255}
	case 2:
		return color.NRGBA{R: 48, G: 98, B: 48, A: 255}
	case 3:
		return color.NRGBA{R: 139, G: 172, B: 15, A: 255}
	default:
		return color.NRGBA{}
	}
}

// imageFromIndices builds a source image whose pixels carry the given
// palette indices.
func imageFromIndices(indexed []uint8, w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, paletteRGBA(indexed[y*w+x]))
		}
	}
	return img
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	const w, h = 16, 16
	indexed := make([]uint8, w*h)
	for i := range indexed {
		indexed[i] = uint8((i*7 + i/w) % 4)
	}

	data := EncodeIndices(indexed, w, h)
	if len(data) != (w/TileSize)*(h/TileSize)*TileBytes {
		t.Fatalf("encoded length = %d", len(data))
	}

	decoded, err := DecodeIndices(data, w, h)
	if err != nil {
		t.Fatal(err)
	}
	for i := range indexed {
		if decoded[i] != indexed[i] {
			t.Fatalf("pixel %d: decoded %d, want %d", i, decoded[i], indexed[i])
		}
	}
}

func TestEncodeImagePadsWithTransparent(t *testing.T) {
	// 5x3 source, all darkest green; padding must read back as index 0.
	const w, h = 5, 3
	indexed := make([]uint8, w*h)
	for i := range indexed {
		indexed[i] = 1
	}

	data, pw, ph, err := EncodeImage(imageFromIndices(indexed, w, h))
	if err != nil {
		t.Fatal(err)
	}
	if pw != 8 || ph != 8 {
		t.Fatalf("padded size = %dx%d, want 8x8", pw, ph)
	}

	decoded, err := DecodeIndices(data, pw, ph)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			want := uint8(0)
			if x < w && y < h {
				want = 1
			}
			if got := decoded[y*pw+x]; got != want {
				t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestEncodeImageRejectsUnknownColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	img.SetNRGBA(3, 4, color.NRGBA{R: 255, G: 0, B: 0, A: 255})

	// (0,0,0,0) is valid transparent, so only the red pixel should trip.
	if _, _, _, err := EncodeImage(img); err == nil {
		t.Fatal("expected error for unrecognized color, got nil")
	}
}

func TestMapColor(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a uint8
		want       uint8
		wantErr    bool
	}{
		{"transparent", 0, 0, 0, 0, 0, false},
		{"darkest", 15, 56, 15, 255, 1, false},
		{"mid", 48, 98, 48, 255, 2, false},
		{"lightest", 139, 172, 15, 255, 3, false},
		{"opaque black", 0, 0, 0, 255, 0, true},
		{"near miss", 15, 56, 16, 255, 0, true},
		{"translucent green", 15, 56, 15, 128, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapColor(tt.r, tt.g, tt.b, tt.a)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("MapColor = %d, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("MapColor = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSpriteValidation(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		dataLen int
		wantErr bool
	}{
		{"one tile", 8, 8, 16, false},
		{"two tiles wide", 16, 8, 32, false},
		{"not tile aligned", 12, 8, 32, true},
		{"zero width", 0, 8, 0, true},
		{"short data", 16, 8, 31, true},
		{"long data", 8, 8, 17, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSprite(tt.w, tt.h, make([]byte, tt.dataLen))
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSprite(%d, %d, %d bytes): err = %v", tt.w, tt.h, tt.dataLen, err)
			}
		})
	}
}

func TestBlitTransparency(t *testing.T) {
	// 16x8 sprite: left tile solid index 1, right tile fully transparent.
	indexed := make([]uint8, 16*8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			indexed[y*16+x] = 1
		}
	}
	sprite, err := NewSprite(16, 8, EncodeIndices(indexed, 16, 8))
	if err != nil {
		t.Fatal(err)
	}

	fb := NewFrameBuffer()
	fb.Clear(0)
	fb.DrawSprite(0, 0, sprite)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if got := fb.PixelAt(x, y); got != 1 {
				t.Fatalf("left tile pixel (%d,%d) = %d, want 1", x, y, got)
			}
		}
		for x := 8; x < 16; x++ {
			if got := fb.PixelAt(x, y); got != 0 {
				t.Fatalf("right tile pixel (%d,%d) = %d, want 0", x, y, got)
			}
		}
	}
}

func TestBlitPreservesBackgroundUnderTransparency(t *testing.T) {
	indexed := make([]uint8, 8*8) // fully transparent tile
	sprite, err := NewSprite(8, 8, EncodeIndices(indexed, 8, 8))
	if err != nil {
		t.Fatal(err)
	}

	fb := NewFrameBuffer()
	fb.Clear(2)
	fb.DrawSprite(4, 4, sprite)

	for y := 4; y < 12; y++ {
		for x := 4; x < 12; x++ {
			if got := fb.PixelAt(x, y); got != 2 {
				t.Fatalf("pixel (%d,%d) = %d, want background 2", x, y, got)
			}
		}
	}
}

func TestBlitPartiallyOffscreen(t *testing.T) {
	indexed := make([]uint8, 8*8)
	for i := range indexed {
		indexed[i] = 3
	}
	sprite, err := NewSprite(8, 8, EncodeIndices(indexed, 8, 8))
	if err != nil {
		t.Fatal(err)
	}

	fb := NewFrameBuffer()
	fb.Clear(0)
	fb.DrawSprite(Width-4, Height-4, sprite)
	fb.DrawSprite(-4, -4, sprite)

	if got := fb.PixelAt(Width-1, Height-1); got != 3 {
		t.Errorf("bottom-right visible part = %d, want 3", got)
	}
	if got := fb.PixelAt(3, 3); got != 3 {
		t.Errorf("top-left visible part = %d, want 3", got)
	}
	if got := fb.PixelAt(4, 4); got != 0 {
		t.Errorf("pixel outside both sprites = %d, want 0", got)
	}
}
