package render

import "fmt"

// TileSize is the pixel width and height of one planar tile.
const TileSize = 8

// TileBytes is the encoded size of one 8x8 tile: 8 rows x 2 bytes.
const TileBytes = 16

// Sprite is a read-only view over 2bpp planar tile data.
//
// Dimensions are in pixels and must be multiples of 8. Data holds
// TilesX*TilesY tiles of 16 bytes each, row-major left-to-right then
// top-to-bottom.
type Sprite struct {
	Width  int
	Height int
	TilesX int
	TilesY int
	Data   []byte
}

// NewSprite wraps planar tile data with validated dimensions. The declared
// size must be tile-aligned and match the data length exactly; a mismatch is
// an error so corrupt or misnamed assets fail at load time.
func NewSprite(width, height int, data []byte) (*Sprite, error) {
	if width <= 0 || height <= 0 || width%TileSize != 0 || height%TileSize != 0 {
		return nil, fmt.Errorf("sprite dimensions %dx%d are not multiples of %d", width, height, TileSize)
	}
	tilesX := width / TileSize
	tilesY := height / TileSize
	if want := tilesX * tilesY * TileBytes; len(data) != want {
		return nil, fmt.Errorf("sprite %dx%d: data is %d bytes, want %d", width, height, len(data), want)
	}
	return &Sprite{
		Width:  width,
		Height: height,
		TilesX: tilesX,
		TilesY: tilesY,
		Data:   data,
	}, nil
}

// PixelAt decodes the 2-bit palette index at sprite-local (px, py).
// Out-of-range coordinates read as 0 (transparent).
func (s *Sprite) PixelAt(px, py int) uint8 {
	if px < 0 || px >= s.Width || py < 0 || py >= s.Height {
		return 0
	}

	tx := px / TileSize
	ty := py / TileSize
	tileIndex := ty*s.TilesX + tx
	rowOffset := tileIndex*TileBytes + (py%TileSize)*2

	bit := uint(TileSize - 1 - px%TileSize)
	low := s.Data[rowOffset] >> bit & 1
	high := s.Data[rowOffset+1] >> bit & 1
	return high<<1 | low
}
