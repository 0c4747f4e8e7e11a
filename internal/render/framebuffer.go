// Package render provides the packed 2-bits-per-pixel framebuffer, the
// planar sprite codec shared with the offline compiler, the 3x5 text font,
// and the terminal presentation helpers.
package render

// Display resolution, fixed at the classic handheld 160x144.
const (
	Width  = 160
	Height = 144
)

const (
	pixels     = Width * Height
	bufferSize = pixels / 4 // 4 pixels per byte
)

// Palette maps 2-bit pixel values to 0xAARRGGBB colors, darkest to lightest.
// Index 0 doubles as "transparent" when blitting sprites; for clears and
// text it is an ordinary background color.
var Palette = [4]uint32{
	0xFF0F380F, // darkest
	0xFF306230,
	0xFF8BAC0F,
	0xFF9BBC0F, // lightest
}

// FrameBuffer is a 160x144 pixel grid packed four 2-bit pixels per byte.
// Pixel i's bits live at buffer[i/4], bit offset (i%4)*2.
type FrameBuffer struct {
	buffer [bufferSize]byte
}

// NewFrameBuffer returns a framebuffer cleared to color 0.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

// Clear sets every pixel to the given 2-bit color.
func (fb *FrameBuffer) Clear(color uint8) {
	c := color & 0b11
	packed := c | c<<2 | c<<4 | c<<6
	for i := range fb.buffer {
		fb.buffer[i] = packed
	}
}

// SetPixel writes a 2-bit color at (x, y). Out-of-range coordinates are
// silently ignored, so callers may draw partially off-screen shapes without
// clamping.
func (fb *FrameBuffer) SetPixel(x, y int, color uint8) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}

	index := y*Width + x
	byteIndex := index / 4
	shift := uint(index%4) * 2

	mask := byte(0b11) << shift
	fb.buffer[byteIndex] = fb.buffer[byteIndex]&^mask | (color&0b11)<<shift
}

// PixelAt returns the 2-bit color at (x, y). Out-of-range coordinates read
// as 0.
func (fb *FrameBuffer) PixelAt(x, y int) uint8 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0
	}

	index := y*Width + x
	shift := uint(index%4) * 2
	return fb.buffer[index/4] >> shift & 0b11
}

// Raw exposes the packed buffer for inspection.
func (fb *FrameBuffer) Raw() []byte {
	return fb.buffer[:]
}

// ToRGBA maps every pixel through the palette into out, row-major from the
// top-left. out must hold Width*Height entries.
func (fb *FrameBuffer) ToRGBA(out []uint32) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			out[y*Width+x] = Palette[fb.PixelAt(x, y)]
		}
	}
}

// DrawSprite blits a planar sprite with its top-left corner at (x, y).
// Pixels with palette index 0 are transparent and left untouched; the rest
// go through SetPixel, so sprites may hang off any screen edge.
func (fb *FrameBuffer) DrawSprite(x, y int, s *Sprite) {
	for py := 0; py < s.Height; py++ {
		for px := 0; px < s.Width; px++ {
			color := s.PixelAt(px, py)
			if color == 0 {
				continue
			}
			fb.SetPixel(x+px, y+py, color)
		}
	}
}
