package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format names an image container the preview can be written in.
type Format string

// Supported formats. PPM is the raw pixel dump; the others are standard
// containers around the same solid-fill buffer.
const (
	PPM  Format = "ppm"
	PNG  Format = "png"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Formats lists the supported formats in the order they are shown to users.
var Formats = []Format{PPM, PNG, JPEG, BMP, TIFF}

// ErrUnknownFormat is returned for a format name or file extension that has
// no encoder.
var ErrUnknownFormat = errors.New("unknown image format")

// ParseFormat converts a format name such as "png" or "JPG" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "ppm", "pnm":
		return PPM, nil
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tiff", "tif":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, s, supported())
	}
}

func supported() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// FormatFromPath picks a format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Extension returns the canonical file extension for f, including the dot.
func (f Format) Extension() string {
	if f == JPEG {
		return ".jpg"
	}
	return "." + string(f)
}
