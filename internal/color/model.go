package color

import (
	"fmt"
	stdcolor "image/color"
)

// RGB is an 8-bit-per-channel color. Channels are in [0,255] when produced
// by this package.
type RGB struct {
	R, G, B int
}

// CMYK holds cyan, magenta, yellow and key (black) fractions in [0,1].
type CMYK struct {
	C, M, Y, K float64
}

// HLS holds hue as a fraction of a full turn in [0,1), plus lightness and
// saturation in [0,1].
type HLS struct {
	H, L, S float64
}

// Black is the safe default returned for degenerate input.
var Black = RGB{0, 0, 0}

// White is the reset color of the studio.
var White = RGB{255, 255, 255}

// NewRGB rounds float channels half-to-even and clamps them to [0,255].
// clipped reports whether any channel was out of range. Non-finite input
// yields black, clipped.
func NewRGB(r, g, b float64) (RGB, bool) {
	if !finite(r, g, b) {
		return Black, true
	}
	return RGB{round255(r), round255(g), round255(b)}, outside(0, 255, r, g, b)
}

// CMYK converts c to the CMYK model.
func (c RGB) CMYK() (CMYK, bool) {
	return RGBToCMYK(float64(c.R), float64(c.G), float64(c.B))
}

// HLS converts c to the HLS model.
func (c RGB) HLS() (HLS, bool) {
	return RGBToHLS(float64(c.R), float64(c.G), float64(c.B))
}

// Hex returns c as "#rrggbb".
func (c RGB) Hex() string {
	return RGBToHex(float64(c.R), float64(c.G), float64(c.B))
}

// RGBA implements the image/color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	n := stdcolor.NRGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: 0xff}
	return n.RGBA()
}

func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// RGB converts c back to the RGB model.
func (c CMYK) RGB() (RGB, bool) {
	return CMYKToRGB(c.C, c.M, c.Y, c.K)
}

// RGB converts c back to the RGB model.
func (c HLS) RGB() (RGB, bool) {
	return HLSToRGB(c.H, c.L, c.S)
}

// Degrees returns the hue in degrees, [0,360).
func (c HLS) Degrees() float64 {
	return c.H * 360
}

// Model converts any image/color.Color to RGB.
var Model = stdcolor.ModelFunc(rgbModel)

func rgbModel(c stdcolor.Color) stdcolor.Color {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return RGB{int(n.R), int(n.G), int(n.B)}
}

func channel8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
