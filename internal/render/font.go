package render

// Font metrics for the built-in 3x5 pixel glyphs.
const (
	FontWidth   = 3
	FontHeight  = 5
	FontSpacing = 1
	LineHeight  = 6

	// FontAdvance is the cursor step per character, including spacing.
	FontAdvance = FontWidth + FontSpacing
)

// Glyph is a 3-wide, 5-row bitmap. Only the low 3 bits of each row are used;
// the most significant of those is the leftmost column.
type Glyph struct {
	Rows [FontHeight]uint8
}

var glyphs = map[rune]Glyph{
	'0': {Rows: [5]uint8{0b111, 0b101, 0b101, 0b101, 0b111}},
	'1': {Rows: [5]uint8{0b010, 0b110, 0b010, 0b010, 0b111}},
	'2': {Rows: [5]uint8{0b111, 0b001, 0b111, 0b100, 0b111}},
	'3': {Rows: [5]uint8{0b111, 0b001, 0b011, 0b001, 0b111}},
	'4': {Rows: [5]uint8{0b101, 0b101, 0b111, 0b001, 0b001}},
	'5': {Rows: [5]uint8{0b111, 0b100, 0b111, 0b001, 0b111}},
	'6': {Rows: [5]uint8{0b111, 0b100, 0b111, 0b101, 0b111}},
	'7': {Rows: [5]uint8{0b111, 0b001, 0b010, 0b100, 0b100}},
	'8': {Rows: [5]uint8{0b111, 0b101, 0b111, 0b101, 0b111}},
	'9': {Rows: [5]uint8{0b111, 0b101, 0b111, 0b001, 0b001}},
	'A': {Rows: [5]uint8{0b010, 0b101, 0b111, 0b101, 0b101}},
	'B': {Rows: [5]uint8{0b110, 0b101, 0b110, 0b101, 0b110}},
	'C': {Rows: [5]uint8{0b111, 0b100, 0b100, 0b100, 0b111}},
	'D': {Rows: [5]uint8{0b110, 0b101, 0b101, 0b101, 0b110}},
	'E': {Rows: [5]uint8{0b111, 0b100, 0b110, 0b100, 0b111}},
	'F': {Rows: [5]uint8{0b111, 0b100, 0b110, 0b100, 0b100}},
	'G': {Rows: [5]uint8{0b111, 0b100, 0b101, 0b101, 0b111}},
	'H': {Rows: [5]uint8{0b101, 0b101, 0b111, 0b101, 0b101}},
	'I': {Rows: [5]uint8{0b111, 0b010, 0b010, 0b010, 0b111}},
	'J': {Rows: [5]uint8{0b001, 0b001, 0b001, 0b101, 0b111}},
	'K': {Rows: [5]uint8{0b101, 0b110, 0b100, 0b110, 0b101}},
	'L': {Rows: [5]uint8{0b100, 0b100, 0b100, 0b100, 0b111}},
	'M': {Rows: [5]uint8{0b101, 0b111, 0b101, 0b101, 0b101}},
	'N': {Rows: [5]uint8{0b110, 0b101, 0b101, 0b101, 0b101}},
	'O': {Rows: [5]uint8{0b111, 0b101, 0b101, 0b101, 0b111}},
	'P': {Rows: [5]uint8{0b111, 0b101, 0b111, 0b100, 0b100}},
	'Q': {Rows: [5]uint8{0b111, 0b101, 0b101, 0b111, 0b001}},
	'R': {Rows: [5]uint8{0b111, 0b101, 0b110, 0b101, 0b101}},
	'S': {Rows: [5]uint8{0b111, 0b100, 0b111, 0b001, 0b111}},
	'T': {Rows: [5]uint8{0b111, 0b010, 0b010, 0b010, 0b010}},
	'U': {Rows: [5]uint8{0b101, 0b101, 0b101, 0b101, 0b111}},
	'V': {Rows: [5]uint8{0b101, 0b101, 0b101, 0b101, 0b010}},
	'W': {Rows: [5]uint8{0b101, 0b101, 0b101, 0b111, 0b101}},
	'X': {Rows: [5]uint8{0b101, 0b101, 0b010, 0b101, 0b101}},
	'Y': {Rows: [5]uint8{0b101, 0b101, 0b010, 0b010, 0b010}},
	'Z': {Rows: [5]uint8{0b111, 0b001, 0b010, 0b100, 0b111}},
	':': {Rows: [5]uint8{0b000, 0b010, 0b000, 0b010, 0b000}},
	'/': {Rows: [5]uint8{0b001, 0b001, 0b010, 0b100, 0b100}},
	' ': {Rows: [5]uint8{0b000, 0b000, 0b000, 0b000, 0b000}},
}

// GetGlyph returns the glyph for c, or ok=false for unsupported characters.
func GetGlyph(c rune) (Glyph, bool) {
	g, ok := glyphs[c]
	return g, ok
}

// DrawChar renders a single glyph with its top-left corner at (x, y).
func (fb *FrameBuffer) DrawChar(x, y int, g Glyph, color uint8) {
	for row := 0; row < FontHeight; row++ {
		bits := g.Rows[row]
		for col := 0; col < FontWidth; col++ {
			if bits>>(FontWidth-1-col)&1 == 1 {
				fb.SetPixel(x+col, y+row, color)
			}
		}
	}
}

// DrawText renders text starting at (x, y). Unsupported characters are
// skipped, but the cursor still advances so spacing stays stable.
func (fb *FrameBuffer) DrawText(x, y int, text string, color uint8) {
	for _, c := range text {
		if g, ok := GetGlyph(c); ok {
			fb.DrawChar(x, y, g, color)
		}
		x += FontAdvance
	}
}

// DrawUint renders value as a zero-padded decimal of the given width,
// most significant digit first. Values wider than digits are truncated to
// their low digits.
func (fb *FrameBuffer) DrawUint(x, y int, value uint32, digits int, color uint8) {
	var temp [10]uint8
	n := value
	for i := digits - 1; i >= 0; i-- {
		temp[i] = uint8(n % 10)
		n /= 10
	}

	for i := 0; i < digits; i++ {
		if g, ok := GetGlyph(rune('0' + temp[i])); ok {
			fb.DrawChar(x, y, g, color)
		}
		x += FontAdvance
	}
}
