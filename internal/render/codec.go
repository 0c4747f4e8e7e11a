package render

import (
	"fmt"
	"image"
)

// The four recognized sprite source colors. Any other pixel color in a
// source image is a fatal input error, never approximated.
var spriteColors = [4]struct{ r, g, b, a uint8 }{
	{0, 0, 0, 0},        // fully transparent -> index 0
	{15, 56, 15, 255},   // darkest green     -> index 1
	{48, 98, 48, 255},   // mid green         -> index 2
	{139, 172, 15, 255}, // lightest green    -> index 3
}

// MapColor converts an 8-bit RGBA pixel to its 2-bit palette index.
func MapColor(r, g, b, a uint8) (uint8, error) {
	for i, c := range spriteColors {
		if r == c.r && g == c.g && b == c.b && a == c.a {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("unrecognized sprite color rgba(%d, %d, %d, %d)", r, g, b, a)
}

// IndexImage maps every pixel of img to a palette index, row-major.
func IndexImage(img image.Image) ([]uint8, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	indexed := make([]uint8, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			idx, err := MapColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
			if err != nil {
				return nil, fmt.Errorf("pixel (%d,%d): %w", x, y, err)
			}
			indexed = append(indexed, idx)
		}
	}
	return indexed, nil
}

// PadIndices pads a row-major index grid on the right and bottom with
// transparent pixels up to the next multiples of the tile size. Returns the
// padded grid and its dimensions.
func PadIndices(indexed []uint8, width, height int) ([]uint8, int, int) {
	pw := AlignToTile(width)
	ph := AlignToTile(height)
	if pw == width && ph == height {
		return indexed, width, height
	}

	padded := make([]uint8, pw*ph)
	for y := 0; y < height; y++ {
		copy(padded[y*pw:y*pw+width], indexed[y*width:(y+1)*width])
	}
	return padded, pw, ph
}

// AlignToTile rounds n up to the next multiple of the tile size.
func AlignToTile(n int) int {
	return (n + TileSize - 1) &^ (TileSize - 1)
}

// EncodeIndices packs a tile-aligned index grid into planar tile data.
// Tiles are emitted row-major; each tile row becomes a low byte (bit 0 of
// each pixel) then a high byte (bit 1), most significant bit leftmost.
func EncodeIndices(indexed []uint8, width, height int) []byte {
	tilesX := width / TileSize
	tilesY := height / TileSize

	out := make([]byte, 0, tilesX*tilesY*TileBytes)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			for row := 0; row < TileSize; row++ {
				py := ty*TileSize + row
				var low, high byte
				for col := 0; col < TileSize; col++ {
					px := tx*TileSize + col
					idx := indexed[py*width+px]
					bit := uint(TileSize - 1 - col)
					low |= (idx & 1) << bit
					high |= (idx >> 1 & 1) << bit
				}
				out = append(out, low, high)
			}
		}
	}
	return out
}

// DecodeIndices is the inverse of EncodeIndices: it expands planar tile
// data back into a row-major index grid of the given padded dimensions.
func DecodeIndices(data []byte, width, height int) ([]uint8, error) {
	s, err := NewSprite(width, height, data)
	if err != nil {
		return nil, err
	}

	indexed := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			indexed[y*width+x] = s.PixelAt(x, y)
		}
	}
	return indexed, nil
}

// EncodeImage compiles an RGBA source image into planar tile data, padding
// to tile alignment as needed. Returns the data and the padded dimensions.
func EncodeImage(img image.Image) ([]byte, int, int, error) {
	bounds := img.Bounds()
	indexed, err := IndexImage(img)
	if err != nil {
		return nil, 0, 0, err
	}

	padded, pw, ph := PadIndices(indexed, bounds.Dx(), bounds.Dy())
	return EncodeIndices(padded, pw, ph), pw, ph, nil
}
