// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package crt implements the CRT raster driven by the clock circuit.
//
// The beam draws one pixel per cycle, left to right and top to bottom. The
// pixel is lit when the 3 pixel wide sprite centred on X covers the column
// being drawn.
package crt

import (
	"bufio"
	"io"
	"strings"

	"github.com/ezrec/crt/internal"
)

const (
	SCREEN_WIDTH  = 40  // Pixels per row.
	SCREEN_HEIGHT = 6   // Rows per screen.
	PIXEL_LIT     = '#' // Lit pixel.
	PIXEL_DARK    = '.' // Dark pixel.
)

// Screen is the pixel buffer of a CRT.
type Screen struct {
	Width  int  // Pixels per row.
	Height int  // Rows per screen.
	Lit    rune // Glyph for a lit pixel.
	Dark   rune // Glyph for a dark pixel.
	Strict bool // If set, the buffer must fill the screen exactly.

	Pixels []bool // One pixel per cycle, row-major.
}

// NewScreen creates a new screen with the default glyphs.
func NewScreen(width, height int) *Screen {
	return &Screen{
		Width:  width,
		Height: height,
		Lit:    PIXEL_LIT,
		Dark:   PIXEL_DARK,
	}
}

// Size returns the number of pixels the screen holds.
func (s *Screen) Size() int {
	return s.Width * s.Height
}

// Reset clears the pixel buffer.
func (s *Screen) Reset() {
	s.Pixels = s.Pixels[:0]
}

// Observe implements cpu.Observer. The column drawn in a 1-based cycle is
// (cycle - 1) modulo the width.
func (s *Screen) Observe(cycle int, x int) (err error) {
	if s.Width <= 0 || s.Height <= 0 {
		err = ErrScreenInvalid
		return
	}

	if s.Strict && len(s.Pixels) >= s.Size() {
		err = ErrScreenOverflow
		return
	}

	position := (cycle - 1) % s.Width
	delta := x - position
	s.Pixels = append(s.Pixels, delta >= -1 && delta <= 1)

	return
}

// Render writes the screen, one line per row. Rows past the drawn pixels are
// not written, and an incomplete last row is padded with dark pixels.
func (s *Screen) Render(w io.Writer) (err error) {
	if s.Width <= 0 || s.Height <= 0 {
		err = ErrScreenInvalid
		return
	}

	if s.Strict && len(s.Pixels) != s.Size() {
		err = ErrScreenSize{Pixels: len(s.Pixels), Width: s.Width, Height: s.Height}
		return
	}

	out := bufio.NewWriter(w)
	for _, row := range internal.Rows(s.Pixels, s.Width, s.Height) {
		for col := range s.Width {
			glyph := s.Dark
			if col < len(row) && row[col] {
				glyph = s.Lit
			}
			out.WriteRune(glyph)
		}
		out.WriteByte('\n')
	}

	err = out.Flush()
	return
}

func (s *Screen) String() string {
	var text strings.Builder

	err := s.Render(&text)
	if err != nil {
		return err.Error()
	}

	return text.String()
}
