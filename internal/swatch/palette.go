// Package swatch keeps the list of saved colors and persists it as YAML.
package swatch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Cloudy680/Color-converter/internal/color"
)

// DefaultLimit is the number of swatches kept when no limit is configured.
const DefaultLimit = 24

// ErrIndex is returned for a swatch index outside the palette.
var ErrIndex = errors.New("swatch index out of range")

// Palette is an ordered list of hex colors, newest first, without duplicates.
type Palette struct {
	entries []string
	limit   int
}

// file is the on-disk YAML layout.
type file struct {
	Swatches []string `yaml:"swatches"`
}

// New returns an empty palette holding at most limit entries.
// A non-positive limit means DefaultLimit.
func New(limit int) *Palette {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Palette{limit: limit}
}

// Add normalizes hex and inserts it at the front. Adding a color that is
// already saved leaves the palette unchanged. It reports whether the palette
// changed.
func (p *Palette) Add(hex string) (bool, error) {
	c, err := color.HexToRGB(hex)
	if err != nil {
		return false, err
	}
	key := normalize(c)
	for _, e := range p.entries {
		if e == key {
			return false, nil
		}
	}
	p.entries = append([]string{key}, p.entries...)
	if len(p.entries) > p.limit {
		p.entries = p.entries[:p.limit]
	}
	return true, nil
}

// Remove deletes the entry at index i and returns it.
func (p *Palette) Remove(i int) (string, error) {
	if i < 0 || i >= len(p.entries) {
		return "", fmt.Errorf("%w: %d (have %d)", ErrIndex, i, len(p.entries))
	}
	removed := p.entries[i]
	p.entries = append(p.entries[:i], p.entries[i+1:]...)
	return removed, nil
}

// At returns the color stored at index i.
func (p *Palette) At(i int) (color.RGB, error) {
	if i < 0 || i >= len(p.entries) {
		return color.RGB{}, fmt.Errorf("%w: %d (have %d)", ErrIndex, i, len(p.entries))
	}
	return color.HexToRGB(p.entries[i])
}

// Entries returns a copy of the saved hex strings, newest first.
func (p *Palette) Entries() []string {
	out := make([]string, len(p.entries))
	copy(out, p.entries)
	return out
}

// Len returns the number of saved swatches.
func (p *Palette) Len() int { return len(p.entries) }

// Limit returns the maximum number of swatches kept.
func (p *Palette) Limit() int { return p.limit }

// Load reads a palette from a YAML file. A missing file yields an empty
// palette. Entries that are not valid hex colors are rejected.
func Load(path string, limit int) (*Palette, error) {
	p := New(limit)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading swatch file %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing swatch file %s: %w", path, err)
	}

	// Add prepends, so walk the file oldest first to keep its order.
	for i := len(f.Swatches) - 1; i >= 0; i-- {
		if _, err := p.Add(f.Swatches[i]); err != nil {
			return nil, fmt.Errorf("swatch file %s, entry %d: %w", path, i, err)
		}
	}
	return p, nil
}

// Save writes the palette to a YAML file, creating parent directories.
func (p *Palette) Save(path string) error {
	data, err := yaml.Marshal(file{Swatches: p.Entries()})
	if err != nil {
		return fmt.Errorf("encoding swatches: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing swatch file %s: %w", path, err)
	}
	return nil
}

func normalize(c color.RGB) string {
	return strings.ToUpper(c.Hex())
}
