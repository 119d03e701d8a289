package export

import (
	"fmt"
	"image"
	"io"

	"github.com/Cloudy680/Color-converter/internal/color"
)

// ImageInfo holds the metadata and sampled color of a decoded image.
type ImageInfo struct {
	Width   int
	Height  int
	Format  string    // decoder name: "ppm", "png", "jpeg", "bmp", "tiff"
	Color   color.RGB // top-left pixel
	Uniform bool      // every pixel equals Color
}

// Decode reads an image in any of the supported formats.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	return img, format, nil
}

// Identify decodes an image in any of the supported formats and reports its
// dimensions and color.
func Identify(r io.Reader) (*ImageInfo, error) {
	img, format, err := Decode(r)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%s image has no pixels", format)
	}
	first := color.Model.Convert(img.At(b.Min.X, b.Min.Y)).(color.RGB)

	uniform := true
scan:
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.Model.Convert(img.At(x, y)).(color.RGB) != first {
				uniform = false
				break scan
			}
		}
	}

	return &ImageInfo{
		Width:   b.Dx(),
		Height:  b.Dy(),
		Format:  format,
		Color:   first,
		Uniform: uniform,
	}, nil
}
