package render

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	esc   = "\x1b"
	csi   = esc + "["
	Reset = csi + "0m"

	// halfBlock stacks two vertical pixels into one terminal cell:
	// foreground paints the top pixel, background the bottom.
	halfBlock = '▀'
)

// Terminal footprint of one presented frame.
const (
	TermCols = Width
	TermRows = Height / 2
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", csi, row, col)
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return csi + "2J"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return csi + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return csi + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return csi + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return csi + "?1049l"
}

// cell is one terminal cell: top and bottom pixel colors as 0xAARRGGBB.
type cell struct {
	top, bottom uint32
}

// writeCellSGR writes a cell's combined SGR plus the half-block rune.
// A single combined sequence avoids attribute leakage between cells.
func writeCellSGR(sb *strings.Builder, c cell) {
	sb.WriteString("\x1b[0;38;2;")
	writeRGB(sb, c.top)
	sb.WriteString(";48;2;")
	writeRGB(sb, c.bottom)
	sb.WriteByte('m')
	sb.WriteRune(halfBlock)
}

func writeRGB(sb *strings.Builder, argb uint32) {
	sb.WriteString(strconv.Itoa(int(argb >> 16 & 0xFF)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(argb >> 8 & 0xFF)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(argb & 0xFF)))
}

// Presenter is a per-session double-buffer diff renderer. It turns a
// Width x Height RGBA frame into ANSI output, emitting only cells that
// changed since the previous frame and coalescing cursor moves across
// consecutive changes.
type Presenter struct {
	current    [][]cell
	next       [][]cell
	firstFrame bool
}

// NewPresenter creates a presenter that repaints fully on its first frame.
func NewPresenter() *Presenter {
	p := &Presenter{firstFrame: true}
	p.current = makeCellBuffer()
	p.next = makeCellBuffer()
	return p
}

func makeCellBuffer() [][]cell {
	buf := make([][]cell, TermRows)
	for row := range buf {
		buf[row] = make([]cell, TermCols)
	}
	return buf
}

// Invalidate forces a full repaint on the next Present, e.g. after a
// terminal resize.
func (p *Presenter) Invalidate() {
	p.firstFrame = true
}

// Present produces the ANSI byte output for one frame. pixels must hold
// Width*Height 0xAARRGGBB values in raster order. An empty string means
// nothing changed.
func (p *Presenter) Present(pixels []uint32) string {
	for row := 0; row < TermRows; row++ {
		for col := 0; col < TermCols; col++ {
			p.next[row][col] = cell{
				top:    pixels[(row*2)*Width+col],
				bottom: pixels[(row*2+1)*Width+col],
			}
		}
	}

	var sb strings.Builder
	sb.Grow(16384)

	lastRow, lastCol := -1, -1
	for row := 0; row < TermRows; row++ {
		for col := 0; col < TermCols; col++ {
			nc := p.next[row][col]
			if !p.firstFrame && nc == p.current[row][col] {
				continue
			}
			if row != lastRow || col != lastCol {
				sb.WriteString(MoveTo(row+1, col+1))
			}
			writeCellSGR(&sb, nc)
			lastRow = row
			lastCol = col + 1
		}
	}

	if sb.Len() > 0 {
		sb.WriteString(Reset)
	}

	p.current, p.next = p.next, p.current
	p.firstFrame = false
	return sb.String()
}
