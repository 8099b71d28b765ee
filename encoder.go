package img2block

import (
	"bytes"
	"errors"
	"image"
	"io"
	"math"
	"strings"

	"github.com/nfnt/resize"
)

var (
	// ErrInvalidLines is returned when the requested line count is not a
	// positive integer.
	ErrInvalidLines = errors.New("img2block: lines must be a positive integer")
	// ErrEmptyImage is returned when the decoded image has a zero-sized
	// dimension.
	ErrEmptyImage = errors.New("img2block: image has no pixels")
)

// Opt configures an Encoder.
type Opt func(enc *Encoder)

// WithLines sets the output height in character rows.
func WithLines(n int) Opt {
	return func(enc *Encoder) {
		enc.lines = n
	}
}

// WithContrast sets the contrast boost strength. Zero leaves gray values
// unchanged, positive pushes them toward 0 or 1, negative additionally
// inverts the image.
func WithContrast(k float64) Opt {
	return func(enc *Encoder) {
		enc.contrast = k
	}
}

// WithBrightness sets an additive gray shift, applied before alpha
// compositing so transparency stays dark.
func WithBrightness(b float64) Opt {
	return func(enc *Encoder) {
		enc.brightness = b
	}
}

// WithPalette selects the glyph palette. A palette containing any
// non-binary pattern (such as Extended) is matched against raw quadrant
// fractions; otherwise fractions are thresholded at 0.5 first.
func WithPalette(p Palette) Opt {
	return func(enc *Encoder) {
		enc.palette = p
	}
}

// Encoder converts images into lines of unicode block characters. Each
// character cell is backed by a 2x2 block of luminance sub-samples, one
// per quadrant, and rendered as the palette glyph whose quadrant pattern
// is the best fit.
type Encoder struct {
	writer     io.Writer
	lines      int     // Output height in rows
	contrast   float64 // Midpoint contrast boost, negative inverts
	brightness float64 // Additive gray shift before alpha
	palette    Palette
}

func NewEncoder(w io.Writer, opts ...Opt) *Encoder {
	enc := Encoder{
		writer:   w,
		lines:    40,
		contrast: 2.5,
		palette:  Quadrants,
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

// Convert renders img with the given options and returns the glyph grid
// as a single string of newline-terminated rows.
func Convert(img image.Image, opts ...Opt) (string, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(img); err != nil {
		return "", err
	}
	return buf.String(), nil
}

/*
Encode runs the full pipeline and writes the result to the encoder's
writer, one row per line. The pipeline resizes the image to two luminance
sub-samples per character cell per axis, remaps contrast around the 0.5
midpoint, reduces each cell to a quadrant vector and emits the closest
palette glyph. The glyph grid is fully computed before the first byte is
written, so a failing input never produces partial output.

As an example, a circle on a transparent background renders as:

	    ▄▄▟█▙▄▄
	  ▟████████▙
	 ▐███████████▌
	 ▐███████████▌
	  ▜████████▛
	    ▀▀▜█▛▀▀
*/
func (enc *Encoder) Encode(img image.Image) error {
	rows, err := enc.render(img)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := io.WriteString(enc.writer, row); err != nil {
			return err
		}
		if _, err := enc.writer.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}

func (enc *Encoder) render(img image.Image) ([]string, error) {
	if enc.lines < 1 {
		return nil, ErrInvalidLines
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 1 || h < 1 {
		return nil, ErrEmptyImage
	}

	// A terminal glyph is about twice as tall as it is wide.
	cols := int(math.Round(float64(w) / float64(h) * float64(enc.lines) / 2))
	if cols < 1 {
		cols = 1
	}

	// Two sub-samples per cell per axis, one per quadrant.
	resized := resize.Resize(uint(2*cols), uint(2*enc.lines), img, resize.Lanczos3)
	grid := samples(resized, enc.brightness)
	for y := range grid {
		for x, v := range grid[y] {
			grid[y][x] = boostContrast(v, enc.contrast)
		}
	}

	threshold := enc.palette.binary()
	out := make([]string, 0, enc.lines)
	var row strings.Builder
	for y := 0; y < enc.lines; y++ {
		row.Reset()
		for x := 0; x < cols; x++ {
			q := cell(grid, x, y)
			if threshold {
				for i, v := range q {
					if v >= 0.5 {
						q[i] = 1
					} else {
						q[i] = 0
					}
				}
			}
			g, _ := enc.palette.Closest(q)
			row.WriteRune(g.Rune)
		}
		out = append(out, row.String())
	}
	return out, nil
}

// cell gathers the 2x2 sub-sample block behind character cell (x, y) into
// a quadrant vector.
func cell(grid [][]float64, x, y int) Pattern {
	return Pattern{
		grid[2*y][2*x], grid[2*y][2*x+1],
		grid[2*y+1][2*x], grid[2*y+1][2*x+1],
	}
}
