package img2block

import (
	"image"
	"image/color"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func uniform(w, h int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// splitImage is black on the left half and white on the right half.
func splitImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{0, 0, 0, 255}
			if x >= w/2 {
				c = color.NRGBA{255, 255, 255, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func gray(v uint8) color.NRGBA {
	return color.NRGBA{v, v, v, 255}
}

func rows(out string) []string {
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

var _ = Describe("Encoder", func() {
	Describe("output geometry", func() {
		It("emits the requested number of rows with aspect-derived columns", func() {
			// 300x100 at 4 lines: round(3 * 4 / 2) = 6 columns.
			out, err := Convert(uniform(300, 100, gray(0)), WithLines(4))
			Expect(err).NotTo(HaveOccurred())
			lines := rows(out)
			Expect(lines).To(HaveLen(4))
			for _, line := range lines {
				Expect([]rune(line)).To(HaveLen(6))
			}
		})

		It("clamps columns to one for very tall images", func() {
			out, err := Convert(uniform(100, 400, gray(0)), WithLines(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(rows(out)).To(HaveLen(1))
			Expect([]rune(rows(out)[0])).To(HaveLen(1))
		})

		It("still renders a non-empty grid for a single line", func() {
			out, err := Convert(uniform(100, 100, gray(255)), WithLines(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(rows(out)).To(HaveLen(1))
			Expect(rows(out)[0]).NotTo(BeEmpty())
		})
	})

	Describe("uniform images", func() {
		It("renders an all-black image as spaces", func() {
			for _, k := range []float64{0, 2.5, 100} {
				out, err := Convert(uniform(100, 100, gray(0)), WithLines(2), WithContrast(k))
				Expect(err).NotTo(HaveOccurred())
				for _, line := range rows(out) {
					Expect(strings.TrimRight(line, " ")).To(BeEmpty())
				}
			}
		})

		It("renders an all-white image as full blocks", func() {
			out, err := Convert(uniform(100, 100, gray(255)), WithLines(2), WithContrast(2.5))
			Expect(err).NotTo(HaveOccurred())
			for _, line := range rows(out) {
				Expect(strings.Trim(line, "█")).To(BeEmpty())
			}
		})
	})

	Describe("quadrant thresholding", func() {
		It("snaps soft grays to fully off or fully on", func() {
			// 120/255 sits just under the 0.5 threshold, 128/255 just over.
			out, err := Convert(uniform(100, 100, gray(120)), WithLines(2), WithContrast(0))
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.TrimRight(rows(out)[0], " ")).To(BeEmpty())

			out, err = Convert(uniform(100, 100, gray(128)), WithLines(2), WithContrast(0))
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Trim(rows(out)[0], "█")).To(BeEmpty())
		})
	})

	Describe("split images", func() {
		It("renders the black half as spaces and the white half as blocks", func() {
			// 400x100 at 1 line: round(4 * 1 / 2) = 2 columns.
			out, err := Convert(splitImage(400, 100), WithLines(1), WithContrast(2.5))
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(" █\n"))
		})

		It("inverts the split with negative contrast", func() {
			out, err := Convert(splitImage(400, 100), WithLines(1), WithContrast(-2.5))
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("█ \n"))
		})
	})

	Describe("shade palette", func() {
		It("renders soft uniform fills as shade glyphs", func() {
			cases := map[uint8]rune{64: '░', 128: '▒', 191: '▓'}
			for v, want := range cases {
				out, err := Convert(uniform(100, 100, gray(v)),
					WithLines(1), WithContrast(0), WithPalette(Extended))
				Expect(err).NotTo(HaveOccurred())
				for _, r := range rows(out)[0] {
					Expect(r).To(Equal(want))
				}
			}
		})
	})

	Describe("transparency", func() {
		It("keeps transparent regions dark even when lightened", func() {
			clear := color.NRGBA{0, 0, 0, 0}
			out, err := Convert(uniform(100, 100, clear),
				WithLines(1), WithBrightness(1), WithContrast(2.5))
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.TrimRight(rows(out)[0], " ")).To(BeEmpty())
		})

		It("lightens opaque pixels with positive brightness", func() {
			out, err := Convert(uniform(100, 100, gray(0)),
				WithLines(1), WithBrightness(1), WithContrast(2.5))
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Trim(rows(out)[0], "█")).To(BeEmpty())
		})
	})

	Describe("validation", func() {
		It("rejects a non-positive line count", func() {
			_, err := Convert(uniform(10, 10, gray(0)), WithLines(0))
			Expect(err).To(Equal(ErrInvalidLines))
			_, err = Convert(uniform(10, 10, gray(0)), WithLines(-3))
			Expect(err).To(Equal(ErrInvalidLines))
		})

		It("rejects an image with no pixels", func() {
			_, err := Convert(image.NewNRGBA(image.Rect(0, 0, 0, 0)), WithLines(2))
			Expect(err).To(Equal(ErrEmptyImage))
		})
	})
})
