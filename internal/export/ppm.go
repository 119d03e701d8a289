package export

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	stdcolor "image/color"
	"io"
	"strconv"

	"github.com/Cloudy680/Color-converter/internal/ir"
)

const ppmMagic = "P6"

// maxPPMPixels bounds the raster a header may declare (about 200 MB of RGB).
const maxPPMPixels = 1 << 26

func init() {
	image.RegisterFormat(string(PPM), ppmMagic, decodePPM, decodePPMConfig)
}

// writePPM writes img as a binary (P6) portable pixmap with maxval 255.
func writePPM(w io.Writer, img *ir.Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n255\n", ppmMagic, img.Width, img.Height); err != nil {
		return err
	}
	if _, err := bw.Write(img.Pixels); err != nil {
		return err
	}
	return bw.Flush()
}

type ppmHeader struct {
	width, height, maxval int
}

func readPPMHeader(br *bufio.Reader) (ppmHeader, error) {
	magic, err := ppmToken(br)
	if err != nil {
		return ppmHeader{}, err
	}
	if magic != ppmMagic {
		return ppmHeader{}, fmt.Errorf("ppm: unsupported magic %q", magic)
	}

	var fields [3]int
	for i := range fields {
		tok, err := ppmToken(br)
		if err != nil {
			return ppmHeader{}, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n <= 0 {
			return ppmHeader{}, fmt.Errorf("ppm: invalid header field %q", tok)
		}
		fields[i] = n
	}
	if fields[2] > 255 {
		return ppmHeader{}, fmt.Errorf("ppm: 16-bit samples (maxval %d) are not supported", fields[2])
	}
	if fields[0] > maxPPMPixels/fields[1] {
		return ppmHeader{}, fmt.Errorf("ppm: image too large (%dx%d, limit %d pixels)", fields[0], fields[1], maxPPMPixels)
	}
	// exactly one whitespace byte separates the header from the raster
	if _, err := br.ReadByte(); err != nil {
		return ppmHeader{}, fmt.Errorf("ppm: truncated header: %w", err)
	}
	return ppmHeader{width: fields[0], height: fields[1], maxval: fields[2]}, nil
}

// ppmToken reads the next whitespace-delimited header token, skipping
// '#' comments.
func ppmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(tok) > 0 {
				return string(tok), nil
			}
			return "", fmt.Errorf("ppm: truncated header: %w", err)
		}
		switch {
		case c == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("ppm: truncated header: %w", err)
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			if len(tok) > 0 {
				return string(tok), br.UnreadByte()
			}
		default:
			tok = append(tok, c)
		}
	}
}

func decodePPM(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	h, err := readPPMHeader(br)
	if err != nil {
		return nil, err
	}

	pixels := make([]byte, h.width*h.height*3)
	if _, err := io.ReadFull(br, pixels); err != nil {
		return nil, fmt.Errorf("ppm: reading %dx%d raster: %w", h.width, h.height, err)
	}
	if h.maxval != 255 {
		for i, v := range pixels {
			pixels[i] = byte(min(int(v), h.maxval) * 255 / h.maxval)
		}
	}
	return &ir.Image{Width: h.width, Height: h.height, Pixels: pixels}, nil
}

func decodePPMConfig(r io.Reader) (image.Config, error) {
	h, err := readPPMHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: stdcolor.NRGBAModel, Width: h.width, Height: h.height}, nil
}
