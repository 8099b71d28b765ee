package main

import (
	"fmt"
	"image"
	"io"
	"net/http"
	"os"

	"github.com/casparb/img2block"
	"github.com/codegangsta/cli"
	"github.com/disintegration/imaging"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "img2block"
	app.Usage = "A command-line tool for converting images to unicode block characters with quadrant best-fit matching."
	app.UsageText = "1) img2block [options] [file|url]\n" +
		/*      */ "   2) img2block [options] < [file]"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "lines,l",
			Usage: "`LINES` sets the output height in character rows.",
			Value: 40,
		},
		cli.Float64Flag{
			Name:  "contrast,c",
			Usage: "`CONTRAST` = 0 gives the original image. Larger values push grays toward black and white. Negative values invert the image.",
			Value: 2.5,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` shifts gray values before transparency is applied. Negative darkens, positive lightens.",
			Value: 0.0,
		},
		cli.BoolFlag{
			Name:  "shades,s",
			Usage: "Adds the shade glyphs (░▒▓) to the palette and matches soft quadrant fractions against them.",
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "sharpen",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
			Value: 0.0,
		},
	}
	app.Action = func(c *cli.Context) {
		if c.Int("lines") < 1 {
			exit("lines must be a positive integer", 1)
		}

		var reader io.Reader

		// Try to parse the args, if there are any, as a file or url
		if input := c.Args().First(); input != "" {
			// Is it a file?
			if file, err := os.Open(input); err == nil {
				defer file.Close()
				reader = file
			} else {
				// Is it a url?
				resp, err := http.Get(input)
				if err != nil {
					exit(err.Error(), 1)
				}
				defer resp.Body.Close()
				reader = resp.Body
			}
		} else {
			reader = os.Stdin
		}

		img, _, err := image.Decode(reader)
		if err != nil {
			exit(err.Error(), 1)
		}

		// Optional pre-adjustments before the pipeline sees the image
		if c.IsSet("gamma") {
			img = imaging.AdjustGamma(img, c.Float64("gamma"))
		}
		if c.IsSet("sharpen") {
			img = imaging.Sharpen(img, c.Float64("sharpen"))
		}

		opts := []img2block.Opt{
			img2block.WithLines(c.Int("lines")),
			img2block.WithContrast(c.Float64("contrast")),
			img2block.WithBrightness(c.Float64("brightness")),
		}
		if c.Bool("shades") {
			opts = append(opts, img2block.WithPalette(img2block.Extended))
		}
		if err := img2block.NewEncoder(os.Stdout, opts...).Encode(img); err != nil {
			exit(err.Error(), 1)
		}
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func exit(msg string, code int) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
