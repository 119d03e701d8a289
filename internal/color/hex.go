package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatError reports a hex color string that is not of the form RRGGBB
// (or the RGB shorthand).
type FormatError struct {
	Input string
	Err   error // underlying digit parse error, if any
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid hex color %q: expected RRGGBB: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid hex color %q: expected RRGGBB", e.Input)
}

func (e *FormatError) Unwrap() error { return e.Err }

// RGBToHex formats a color as "#rrggbb". Channels are rounded and clamped
// to [0,255]; non-finite channels become 0.
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", hexChannel(r), hexChannel(g), hexChannel(b))
}

// HexToRGB parses "#rrggbb", "rrggbb" or the three-digit shorthand "#rgb",
// case-insensitively. Surrounding whitespace is ignored.
func HexToRGB(s string) (RGB, error) {
	h := strings.TrimLeft(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, &FormatError{Input: s}
	}

	var ch [3]int
	for i := range ch {
		v, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, &FormatError{Input: s, Err: err}
		}
		ch[i] = int(v)
	}
	return RGB{ch[0], ch[1], ch[2]}, nil
}

// ParseHex is like HexToRGB but panics on malformed input. It is meant for
// compile-time constants.
func ParseHex(s string) RGB {
	c, err := HexToRGB(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexChannel(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return round255(v)
}
