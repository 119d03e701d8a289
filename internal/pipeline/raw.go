package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// RawFormat is the sidecar format tag for interleaved 8-bit CMYK.
const RawFormat = "CMYK8"

// Meta is the JSON sidecar written next to a raw CMYK file.
type Meta struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// SidecarPath returns the sidecar path for a raw file: "x.raw" → "x.json".
func SidecarPath(rawPath string) string {
	return strings.TrimSuffix(rawPath, ".raw") + ".json"
}

// WriteRaw writes the separated pixels and their sidecar. It returns the
// sidecar path.
func WriteRaw(path string, r *Result) (string, error) {
	if err := os.WriteFile(path, r.Pixels, 0644); err != nil {
		return "", fmt.Errorf("writing raw CMYK: %w", err)
	}

	meta := Meta{Width: r.Width, Height: r.Height, Format: RawFormat}
	metaJSON, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	metaPath := SidecarPath(path)
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return "", fmt.Errorf("writing sidecar: %w", err)
	}
	return metaPath, nil
}

// ReadMeta loads the sidecar for a raw file.
func ReadMeta(rawPath string) (Meta, error) {
	var meta Meta
	data, err := os.ReadFile(SidecarPath(rawPath))
	if err != nil {
		return meta, fmt.Errorf("reading sidecar: %w", err)
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("parsing sidecar: %w", err)
	}
	if meta.Format != RawFormat {
		return meta, fmt.Errorf("sidecar format %q, want %s", meta.Format, RawFormat)
	}
	return meta, nil
}
