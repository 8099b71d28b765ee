package img2block

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// samples extracts normalized luminance from every pixel of img. shift is
// added to the gray value before multiplying by alpha, so transparent
// regions stay dark no matter how much the image is lightened.
func samples(img image.Image, shift float64) [][]float64 {
	// An image's bounds do not necessarily start at (0, 0), so the loops
	// offset by bounds.Min. Looping over Y first and X second is more
	// likely to result in better memory access patterns.
	bounds := img.Bounds()
	grid := make([][]float64, bounds.Dy())
	for y := range grid {
		row := make([]float64, bounds.Dx())
		for x := range row {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			v := clamp(grayscale(c)+shift, 0, 1)
			row[x] = v * float64(c.A) / 255
		}
		grid[y] = row
	}
	return grid
}

// Standard-ish algorithm for determining the best grayscale for human eyes:
// 0.21 R + 0.72 G + 0.07 B
func grayscale(c color.NRGBA) float64 {
	return (0.21*float64(c.R) + 0.72*float64(c.G) + 0.07*float64(c.B)) / 255
}
