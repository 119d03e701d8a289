package pipeline

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/Cloudy680/Color-converter/internal/color"
	"github.com/Cloudy680/Color-converter/internal/export"
	"github.com/Cloudy680/Color-converter/internal/ir"
)

// Channel indexes the interleaved CMYK samples.
const (
	Cyan = iota
	Magenta
	Yellow
	Key
)

// ChannelNames maps a channel index to its plate suffix.
var ChannelNames = [4]string{"C", "M", "Y", "K"}

// Result holds the output of a separation run.
type Result struct {
	Pixels    []byte // interleaved 8-bit CMYK
	Width     int
	Height    int
	SrcFormat string     // decoder that read the input
	Coverage  [4]float64 // mean ink per channel, 0..1
}

// Separate runs the RGB→CMYK pipeline: decode → per-pixel conversion.
func Separate(r io.Reader) (*Result, error) {
	// 1. Decode
	img, format, err := export.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("decode: %s image has no pixels", format)
	}

	// 2. Convert every pixel
	res := &Result{
		Pixels:    make([]byte, 0, b.Dx()*b.Dy()*4),
		Width:     b.Dx(),
		Height:    b.Dy(),
		SrcFormat: format,
	}
	var sums [4]float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.Model.Convert(img.At(x, y)).(color.RGB)
			cmyk, _ := c.CMYK()
			for i, v := range [4]float64{cmyk.C, cmyk.M, cmyk.Y, cmyk.K} {
				sums[i] += v
				res.Pixels = append(res.Pixels, sample(v))
			}
		}
	}

	n := float64(res.Width * res.Height)
	for i := range sums {
		res.Coverage[i] = sums[i] / n
	}
	return res, nil
}

// Plate returns one channel as a grayscale image where full ink is black,
// the way a printing plate proof looks.
func (r *Result) Plate(ch int) (*image.Gray, error) {
	if ch < Cyan || ch > Key {
		return nil, fmt.Errorf("channel %d out of range", ch)
	}
	g := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	for i := range g.Pix {
		g.Pix[i] = 255 - r.Pixels[i*4+ch]
	}
	return g, nil
}

// Compose converts raw interleaved CMYK back to an RGB image.
func Compose(pixels []byte, width, height int) (*ir.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", width, height)
	}
	expected := width * height * 4
	if len(pixels) != expected {
		return nil, fmt.Errorf("expected %d bytes for %dx%d CMYK, got %d", expected, width, height, len(pixels))
	}

	img := &ir.Image{Width: width, Height: height, Pixels: make([]byte, width*height*3)}
	for i := 0; i < width*height; i++ {
		p := pixels[i*4 : i*4+4]
		c, _ := color.CMYKToRGB(frac(p[0]), frac(p[1]), frac(p[2]), frac(p[3]))
		img.Pixels[i*3] = byte(c.R)
		img.Pixels[i*3+1] = byte(c.G)
		img.Pixels[i*3+2] = byte(c.B)
	}
	return img, nil
}

func sample(v float64) byte {
	return byte(math.RoundToEven(v * 255))
}

func frac(b byte) float64 {
	return float64(b) / 255
}
