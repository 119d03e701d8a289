package export

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/Cloudy680/Color-converter/internal/ir"
)

// Default preview dimensions.
const (
	DefaultWidth  = 256
	DefaultHeight = 128
)

// EncoderOptions configures container encoders. Fields that do not apply to
// a format are ignored.
type EncoderOptions struct {
	Quality int // JPEG quality (1-100); 0 means 95
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img *ir.Image, format Format, opts EncoderOptions) error {
	expected := img.Width * img.Height * 3
	if len(img.Pixels) != expected {
		return fmt.Errorf("expected %d RGB bytes for %dx%d, got %d", expected, img.Width, img.Height, len(img.Pixels))
	}

	var err error
	switch format {
	case PPM:
		err = writePPM(w, img)
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		q := opts.Quality
		if q <= 0 {
			q = 95
		}
		if q > 100 {
			q = 100
		}
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return nil
}
