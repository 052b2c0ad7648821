package pathutil

import (
	"image/png"
	"io"

	"github.com/chaisql/pathcodec/raster"
)

// RenderOptions controls Render.
type RenderOptions struct {
	Width, Height int
	// Margin in pixels left around the path when Fit is set.
	Margin float64
	// Fit scales the path to the image. Otherwise path units map to pixels.
	Fit bool
}

// Render rasterizes a stream and writes it to w as a PNG alpha mask.
func Render(w io.Writer, data []byte, opts RenderOptions) error {
	ropts := raster.DefaultOptions
	if opts.Fit {
		b, err := raster.Bounds(data)
		if err != nil {
			return err
		}
		ropts = raster.Fit(b, opts.Width, opts.Height, opts.Margin)
	}

	img, err := raster.Render(data, opts.Width, opts.Height, ropts)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}
