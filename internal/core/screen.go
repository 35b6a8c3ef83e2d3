package core

import (
	"strings"
)

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 128
)

// Screen is a monochrome pixel buffer with a text layer on top.
// Scenes draw into it and the platform decides how to show it. Text is
// placed on a grid of cells one pixel wide and two pixels tall, which is
// how a terminal shell packs pixels into half-block glyphs.
type Screen struct {
	width  int
	height int
	pixels []bool
	text   []rune // 0 means no glyph
}

// NewScreen creates a cleared screen of the given pixel dimensions.
// The height is rounded up to an even number of rows.
func NewScreen(width, height int) *Screen {
	height += height % 2
	return &Screen{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
		text:   make([]rune, width*height/2),
	}
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Rows returns the number of text rows.
func (s *Screen) Rows() int {
	return s.height / 2
}

// Bounds returns the drawable area.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Clear turns every pixel off and erases all text.
func (s *Screen) Clear() {
	clear(s.pixels)
	clear(s.text)
}

// SetPixel sets the pixel at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetPixel(x, y int, on bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pixels[y*s.width+x] = on
}

// Pixel reports whether the pixel at (x, y) is on.
// Returns false for out-of-bounds coordinates.
func (s *Screen) Pixel(x, y int) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	return s.pixels[y*s.width+x]
}

// Fill sets every pixel in r.
func (s *Screen) Fill(r Rect, on bool) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetPixel(x, y, on)
		}
	}
}

// DrawBox draws a one pixel outline around r.
func (s *Screen) DrawBox(r Rect) {
	s.DrawHLine(r.X, r.Y, r.W)
	s.DrawHLine(r.X, r.Bottom()-1, r.W)
	s.DrawVLine(r.X, r.Y, r.H)
	s.DrawVLine(r.Right()-1, r.Y, r.H)
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int) {
	for i := 0; i < length; i++ {
		s.SetPixel(x+i, y, true)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int) {
	for i := 0; i < length; i++ {
		s.SetPixel(x, y+i, true)
	}
}

// Bar draws a horizontal gauge of the given width, filled to frac.
func (s *Screen) Bar(x, y, width int, frac float64) {
	s.DrawBox(NewRect(x, y, width, 4))
	inner := int(float64(width-2) * min(max(frac, 0), 1))
	s.Fill(NewRect(x+1, y+1, inner, 2), true)
}

// Blit draws the lit pixels of img with its top-left corner at (x, y).
// Unlit pixels are transparent.
func (s *Screen) Blit(x, y int, img *Image) {
	if img == nil || !s.Bounds().Intersects(NewRect(x, y, img.W, img.H)) {
		return
	}
	for iy := 0; iy < img.H; iy++ {
		for ix := 0; ix < img.W; ix++ {
			if img.At(ix, iy) {
				s.SetPixel(x+ix, y+iy, true)
			}
		}
	}
}

// BlitCentered draws img horizontally centered with its top at y.
func (s *Screen) BlitCentered(y int, img *Image) {
	if img == nil {
		return
	}
	s.Blit((s.width-img.W)/2, y, img)
}

// Text writes a string starting at pixel column x on the text row that
// holds pixel row y. Characters beyond the right edge are clipped.
func (s *Screen) Text(x, y int, text string) {
	row := y / 2
	if y < 0 || row >= s.Rows() {
		return
	}
	i := 0
	for _, r := range text {
		if cx := x + i; cx >= 0 && cx < s.width {
			s.text[row*s.width+cx] = r
		}
		i++
	}
}

// TextCentered writes text horizontally centered on the row holding y.
func (s *Screen) TextCentered(y int, text string) {
	s.Text((s.width-len([]rune(text)))/2, y, text)
}

// Glyph returns the text rune at cell (col, row), or 0 if none.
func (s *Screen) Glyph(col, row int) rune {
	if col < 0 || col >= s.width || row < 0 || row >= s.Rows() {
		return 0
	}
	return s.text[row*s.width+col]
}

var halfBlocks = [4]rune{' ', '▀', '▄', '█'}

// Cell returns what a terminal shows at (col, row): the text glyph when
// one is set, otherwise the half block for the two stacked pixels.
func (s *Screen) Cell(col, row int) rune {
	if g := s.Glyph(col, row); g != 0 {
		return g
	}
	idx := 0
	if s.Pixel(col, row*2) {
		idx |= 1
	}
	if s.Pixel(col, row*2+1) {
		idx |= 2
	}
	return halfBlocks[idx]
}

// Row returns one text row rendered as cells.
func (s *Screen) Row(row int) string {
	if row < 0 || row >= s.Rows() {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for col := 0; col < s.width; col++ {
		sb.WriteRune(s.Cell(col, row))
	}
	return sb.String()
}

// String converts the screen to rows of cells joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow((s.width*3 + 1) * s.Rows())

	for row := 0; row < s.Rows(); row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := 0; col < s.width; col++ {
			sb.WriteRune(s.Cell(col, row))
		}
	}
	return sb.String()
}
