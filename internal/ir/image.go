package ir

import (
	"fmt"
	"image"
	stdcolor "image/color"

	"github.com/Cloudy680/Color-converter/internal/color"
)

// Image is the intermediate representation passed between the studio and the
// export encoders. Pixels are stored as interleaved R,G,B bytes (3 bytes per
// pixel, row-major order).
type Image struct {
	Width  int
	Height int
	Pixels []byte // len = Width * Height * 3
}

// Solid returns a width x height image filled with c. Channels are clamped
// to [0,255].
func Solid(c color.RGB, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	r, g, b, _ := c.RGBA()
	px := [3]byte{byte(r >> 8), byte(g >> 8), byte(b >> 8)}

	pixels := make([]byte, width*height*3)
	for i := 0; i < len(pixels); i += 3 {
		copy(pixels[i:i+3], px[:])
	}
	return &Image{Width: width, Height: height, Pixels: pixels}, nil
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() stdcolor.Model { return color.Model }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width, m.Height) }

// At implements image.Image.
func (m *Image) At(x, y int) stdcolor.Color {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return color.Black
	}
	return m.RGBAt(x, y)
}

// RGBAt returns the pixel at (x, y), which must be in bounds.
func (m *Image) RGBAt(x, y int) color.RGB {
	i := (y*m.Width + x) * 3
	return color.RGB{R: int(m.Pixels[i]), G: int(m.Pixels[i+1]), B: int(m.Pixels[i+2])}
}
