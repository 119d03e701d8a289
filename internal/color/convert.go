package color

import "math"

// RGBToCMYK converts an RGB triple to CMYK. Channels are clamped to [0,255]
// before conversion; clipped reports whether any of them was out of range.
// Pure black, and any non-finite input, yields (0,0,0,1).
func RGBToCMYK(r, g, b float64) (CMYK, bool) {
	if !finite(r, g, b) {
		return CMYK{K: 1}, true
	}
	clipped := outside(0, 255, r, g, b)

	rf, gf, bf := unit(r), unit(g), unit(b)
	if rf == 0 && gf == 0 && bf == 0 {
		return CMYK{K: 1}, clipped
	}

	c, m, y := 1-rf, 1-gf, 1-bf
	k := math.Min(c, math.Min(m, y))
	denom := 1 - k
	if denom == 0 {
		return CMYK{K: 1}, clipped
	}
	return CMYK{
		C: clamp((c-k)/denom, 0, 1),
		M: clamp((m-k)/denom, 0, 1),
		Y: clamp((y-k)/denom, 0, 1),
		K: clamp(k, 0, 1),
	}, clipped
}

// CMYKToRGB converts CMYK fractions to RGB. Inputs are clamped to [0,1].
// Clipping is detected on the raw arithmetic result, before clamping, and
// whenever an input had to be clamped.
func CMYKToRGB(c, m, y, k float64) (RGB, bool) {
	if !finite(c, m, y, k) {
		return Black, true
	}

	rawR := 255 * (1 - c) * (1 - k)
	rawG := 255 * (1 - m) * (1 - k)
	rawB := 255 * (1 - y) * (1 - k)
	clipped := outside(0, 255, rawR, rawG, rawB) || outside(0, 1, c, m, y, k)

	c, m, y, k = clamp(c, 0, 1), clamp(m, 0, 1), clamp(y, 0, 1), clamp(k, 0, 1)
	return RGB{
		R: round255(255 * (1 - c) * (1 - k)),
		G: round255(255 * (1 - m) * (1 - k)),
		B: round255(255 * (1 - y) * (1 - k)),
	}, clipped
}

// RGBToHLS converts an RGB triple to hue, lightness and saturation. Hue is a
// fraction of a full turn; grays have hue and saturation 0.
func RGBToHLS(r, g, b float64) (HLS, bool) {
	if !finite(r, g, b) {
		return HLS{}, true
	}
	clipped := outside(0, 255, r, g, b)

	rf, gf, bf := unit(r), unit(g), unit(b)
	maxc := math.Max(rf, math.Max(gf, bf))
	minc := math.Min(rf, math.Min(gf, bf))
	sum := maxc + minc
	spread := maxc - minc
	l := sum / 2
	if spread == 0 {
		return HLS{L: l}, clipped
	}

	var s float64
	if l <= 0.5 {
		s = spread / sum
	} else {
		s = spread / (2 - maxc - minc)
	}

	rc := (maxc - rf) / spread
	gc := (maxc - gf) / spread
	bc := (maxc - bf) / spread
	var h float64
	switch maxc {
	case rf:
		h = bc - gc
	case gf:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	return HLS{H: wrap(h / 6), L: l, S: s}, clipped
}

// HLSToRGB converts hue, lightness and saturation to RGB. Hue wraps around
// the unit circle; lightness and saturation are clamped to [0,1] and clipped
// reports when that happened. Non-finite input yields black, clipped.
func HLSToRGB(h, l, s float64) (RGB, bool) {
	if !finite(h, l, s) {
		return Black, true
	}
	clipped := outside(0, 1, l, s)

	h = wrap(h)
	l = clamp(l, 0, 1)
	s = clamp(s, 0, 1)

	if s == 0 {
		v := round255(l * 255)
		return RGB{v, v, v}, clipped
	}

	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	return RGB{
		R: round255(255 * hueToChannel(m1, m2, h+1.0/3)),
		G: round255(255 * hueToChannel(m1, m2, h)),
		B: round255(255 * hueToChannel(m1, m2, h-1.0/3)),
	}, clipped
}

// hueToChannel is the piecewise ramp used by the HLS inverse.
func hueToChannel(m1, m2, hue float64) float64 {
	hue = wrap(hue)
	switch {
	case hue < 1.0/6:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < 2.0/3:
		return m1 + (m2-m1)*(2.0/3-hue)*6
	default:
		return m1
	}
}

// wrap reduces x into [0,1) with a floored modulo.
func wrap(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		return 0
	}
	return f
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

// unit maps a [0,255] channel onto [0,1], clamping first.
func unit(v float64) float64 {
	return clamp(v, 0, 255) / 255
}

func round255(v float64) int {
	return int(clamp(math.RoundToEven(v), 0, 255))
}

func outside(lo, hi float64, vs ...float64) bool {
	for _, v := range vs {
		if v < lo || v > hi {
			return true
		}
	}
	return false
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
