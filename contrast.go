package img2block

import "math"

// boostContrast remaps v linearly around the 0.5 midpoint. The
// multiplier grows with |k|, so positive k pushes values apart toward 0
// or 1 and very large k saturates everything except a sliver around the
// midpoint. Negative k additionally swaps the two sides of the midpoint,
// inverting the image. k = 0 leaves v unchanged.
func boostContrast(v, k float64) float64 {
	m := 1 + math.Abs(k)
	if k < 0 {
		m = -m
	}
	return clamp(0.5+(v-0.5)*m, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
