package img2block

import "math"

// Pattern describes a glyph cell as the fill fraction of each of its four
// quadrants, in x,y coordinate space:
//   +----------+
//   |(TL) (TR) |
//   |(BL) (BR) |
//   +----------+
// Values are in [0,1].
type Pattern [4]float64

// Indices into a Pattern.
const (
	TL = iota
	TR
	BL
	BR
)

// Glyph pairs a unicode character with the quadrant pattern it draws.
type Glyph struct {
	Rune    rune
	Pattern Pattern
}

// Palette is an ordered set of candidate glyphs. Order matters: Closest
// keeps the earliest entry when two glyphs sit at the same distance.
type Palette []Glyph

// Quadrants enumerates all 16 on/off combinations of the 2x2 quadrant
// blocks, from empty to full. One of:
//   ▗▖▄▝▐▞▟▘▚▌▙▀▜▛█
// (the first entry is a plain space)
var Quadrants = Palette{
	{' ', Pattern{0, 0, 0, 0}},
	{'▗', Pattern{0, 0, 0, 1}},
	{'▖', Pattern{0, 0, 1, 0}},
	{'▄', Pattern{0, 0, 1, 1}},
	{'▝', Pattern{0, 1, 0, 0}},
	{'▐', Pattern{0, 1, 0, 1}},
	{'▞', Pattern{0, 1, 1, 0}},
	{'▟', Pattern{0, 1, 1, 1}},
	{'▘', Pattern{1, 0, 0, 0}},
	{'▚', Pattern{1, 0, 0, 1}},
	{'▌', Pattern{1, 0, 1, 0}},
	{'▙', Pattern{1, 0, 1, 1}},
	{'▀', Pattern{1, 1, 0, 0}},
	{'▜', Pattern{1, 1, 0, 1}},
	{'▛', Pattern{1, 1, 1, 0}},
	{'█', Pattern{1, 1, 1, 1}},
}

// Shades are the uniform-fill shade glyphs. Their patterns are not
// binary, so a palette containing them is matched against raw quadrant
// fractions rather than thresholded ones.
var Shades = Palette{
	{'░', Pattern{0.25, 0.25, 0.25, 0.25}},
	{'▒', Pattern{0.5, 0.5, 0.5, 0.5}},
	{'▓', Pattern{0.75, 0.75, 0.75, 0.75}},
}

// Extended is Quadrants plus Shades.
var Extended = append(append(Palette{}, Quadrants...), Shades...)

// Closest returns the glyph whose pattern has the minimum euclidean
// distance to q, along with the squared distance. Ties keep the earliest
// entry in palette order.
func (p Palette) Closest(q Pattern) (Glyph, float64) {
	best := p[0]
	min := math.Inf(1)
	for _, g := range p {
		var d float64
		for i := range q {
			diff := q[i] - g.Pattern[i]
			d += diff * diff
		}
		if d < min {
			min = d
			best = g
		}
	}
	return best, min
}

// binary reports whether every pattern in the palette is made of 0s and
// 1s only.
func (p Palette) binary() bool {
	for _, g := range p {
		for _, v := range g.Pattern {
			if v != 0 && v != 1 {
				return false
			}
		}
	}
	return true
}
