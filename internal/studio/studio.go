// Package studio holds the interactive color editor: one canonical RGB
// value with its CMYK, HLS and hex derivations, a swatch palette and a
// status line.
package studio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Cloudy680/Color-converter/internal/color"
	"github.com/Cloudy680/Color-converter/internal/export"
	"github.com/Cloudy680/Color-converter/internal/ir"
	"github.com/Cloudy680/Color-converter/internal/swatch"
	"github.com/Cloudy680/Color-converter/internal/ui"
)

var (
	// ErrBusy is returned for edits made while listeners of a previous
	// edit are still running.
	ErrBusy = errors.New("studio is updating")

	// ErrInput is wrapped by errors for values that cannot be applied.
	ErrInput = errors.New("invalid input")
)

// Status is the studio's one-line message. Level is one of the ui status
// categories.
type Status struct {
	Text  string
	Level string
}

// Snapshot is a consistent view of the studio state. CMYK and HLS are
// rounded to 6 decimals and Hex is uppercase.
type Snapshot struct {
	RGB     color.RGB
	CMYK    color.CMYK
	HLS     color.HLS
	Hex     string
	Clipped bool
	Reason  string
	Status  Status
}

// Options configures a Studio.
type Options struct {
	Start        color.RGB
	Palette      *swatch.Palette
	SwatchFile   string // palette is saved here after each change when set
	ExportFormat export.Format
	ExportWidth  int
	ExportHeight int
	Quality      int
	Logger       *slog.Logger
}

// Studio owns the canonical color. All derived values are recomputed from
// it on every edit, so the models never drift apart.
type Studio struct {
	mu        sync.Mutex
	updating  bool
	snap      Snapshot
	palette   *swatch.Palette
	listeners []func(Snapshot)
	opts      Options
	log       *slog.Logger
}

// New returns a studio showing opts.Start.
func New(opts Options) *Studio {
	if opts.Palette == nil {
		opts.Palette = swatch.New(swatch.DefaultLimit)
	}
	if opts.ExportFormat == "" {
		opts.ExportFormat = export.PPM
	}
	if opts.ExportWidth <= 0 {
		opts.ExportWidth = export.DefaultWidth
	}
	if opts.ExportHeight <= 0 {
		opts.ExportHeight = export.DefaultHeight
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	s := &Studio{
		palette: opts.Palette,
		opts:    opts,
		log:     opts.Logger,
	}
	s.snap = derive(opts.Start, "init", false)
	return s
}

// Snapshot returns the current state.
func (s *Studio) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// OnChange registers fn to be called after every edit. Edits attempted
// from inside fn fail with ErrBusy.
func (s *Studio) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// SetRGB makes c the canonical color and re-derives everything from it.
func (s *Studio) SetRGB(c color.RGB, reason string) error {
	return s.update(c, reason, false)
}

// ApplyRGB clamps the channels to [0,255] and applies them.
func (s *Studio) ApplyRGB(r, g, b float64) error {
	for _, v := range []float64{r, g, b} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return s.fail(fmt.Errorf("%w: RGB value %v", ErrInput, v))
		}
	}
	c, _ := color.NewRGB(r, g, b)
	return s.update(c, "rgb", false)
}

// ApplyCMYK converts the given CMYK value and applies it.
func (s *Studio) ApplyCMYK(c, m, y, k float64) error {
	rgb, clipped := color.CMYKToRGB(c, m, y, k)
	return s.update(rgb, "cmyk", clipped)
}

// ApplyHLS converts the given HLS value and applies it.
func (s *Studio) ApplyHLS(h, l, sat float64) error {
	rgb, clipped := color.HLSToRGB(h, l, sat)
	return s.update(rgb, "hls", clipped)
}

// ApplyHex parses a hex color and applies it. On a malformed value the
// canonical color is left untouched and the status reports the error.
func (s *Studio) ApplyHex(hex string) error {
	rgb, err := color.HexToRGB(hex)
	if err != nil {
		return s.fail(err)
	}
	return s.update(rgb, "hex", false)
}

// ResetWhite sets the canonical color to white.
func (s *Studio) ResetWhite() error {
	return s.SetRGB(color.White, "reset")
}

func (s *Studio) update(c color.RGB, reason string, inputClipped bool) error {
	s.mu.Lock()
	if s.updating {
		s.mu.Unlock()
		return ErrBusy
	}
	s.updating = true
	s.snap = derive(c, reason, inputClipped)
	snap := s.snap
	listeners := append(([]func(Snapshot))(nil), s.listeners...)
	s.mu.Unlock()

	s.log.Debug("color updated", "reason", reason, "hex", snap.Hex, "clipped", snap.Clipped)

	defer func() {
		s.mu.Lock()
		s.updating = false
		s.mu.Unlock()
	}()
	for _, fn := range listeners {
		fn(snap)
	}
	return nil
}

// fail records err on the status line and returns it.
func (s *Studio) fail(err error) error {
	s.setStatus(ui.Failure, err.Error())
	s.log.Debug("edit rejected", "error", err)
	return err
}

func (s *Studio) setStatus(level, text string) {
	s.mu.Lock()
	s.snap.Status = Status{Text: text, Level: level}
	s.mu.Unlock()
}

// derive computes the full snapshot for c.
func derive(c color.RGB, reason string, inputClipped bool) Snapshot {
	cmyk, cmykClipped := c.CMYK()
	hls, hlsClipped := c.HLS()
	snap := Snapshot{
		RGB: c,
		CMYK: color.CMYK{
			C: round6(cmyk.C), M: round6(cmyk.M), Y: round6(cmyk.Y), K: round6(cmyk.K),
		},
		HLS:     color.HLS{H: round6(hls.H), L: round6(hls.L), S: round6(hls.S)},
		Hex:     strings.ToUpper(c.Hex()),
		Clipped: inputClipped || cmykClipped || hlsClipped,
		Reason:  reason,
	}
	switch {
	case inputClipped:
		snap.Status = Status{Level: ui.Warning, Text: fmt.Sprintf("%s values were clipped while converting to RGB", strings.ToUpper(reason))}
	case cmykClipped || hlsClipped:
		snap.Status = Status{Level: ui.Warning, Text: "values were rounded or clipped during conversion"}
	case reason == "init":
		snap.Status = Status{Level: ui.Info, Text: "ready"}
	default:
		snap.Status = Status{Level: ui.Success, Text: "updated by " + reason}
	}
	return snap
}

// SaveSwatch adds the current color to the front of the palette.
func (s *Studio) SaveSwatch() (string, error) {
	s.mu.Lock()
	if s.updating {
		s.mu.Unlock()
		return "", ErrBusy
	}
	hex := s.snap.Hex
	changed, err := s.palette.Add(hex)
	s.mu.Unlock()
	if err != nil {
		return "", s.fail(err)
	}
	if changed {
		if err := s.persist(); err != nil {
			return "", err
		}
		s.setStatus(ui.Success, "saved swatch "+hex)
	} else {
		s.setStatus(ui.Info, hex+" is already saved")
	}
	return hex, nil
}

// RemoveSwatch deletes the swatch at index i.
func (s *Studio) RemoveSwatch(i int) (string, error) {
	s.mu.Lock()
	if s.updating {
		s.mu.Unlock()
		return "", ErrBusy
	}
	hex, err := s.palette.Remove(i)
	s.mu.Unlock()
	if err != nil {
		return "", s.fail(fmt.Errorf("swatch %d: %w", i, err))
	}
	if err := s.persist(); err != nil {
		return "", err
	}
	s.setStatus(ui.Success, "removed swatch "+hex)
	return hex, nil
}

// UseSwatch makes the swatch at index i the canonical color.
func (s *Studio) UseSwatch(i int) error {
	s.mu.Lock()
	c, err := s.palette.At(i)
	s.mu.Unlock()
	if err != nil {
		return s.fail(fmt.Errorf("swatch %d: %w", i, err))
	}
	return s.SetRGB(c, "swatch")
}

// Swatches returns the saved colors, newest first.
func (s *Studio) Swatches() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.palette.Entries()
}

func (s *Studio) persist() error {
	if s.opts.SwatchFile == "" {
		return nil
	}
	s.mu.Lock()
	err := s.palette.Save(s.opts.SwatchFile)
	s.mu.Unlock()
	if err != nil {
		return s.fail(err)
	}
	return nil
}

// Export writes a width x height solid preview of the current color.
// Non-positive sizes fall back to the configured defaults.
func (s *Studio) Export(w io.Writer, format export.Format, width, height int) error {
	if width <= 0 {
		width = s.opts.ExportWidth
	}
	if height <= 0 {
		height = s.opts.ExportHeight
	}
	snap := s.Snapshot()
	img, err := ir.Solid(snap.RGB, width, height)
	if err != nil {
		return s.fail(err)
	}
	if err := export.Encode(w, img, format, export.EncoderOptions{Quality: s.opts.Quality}); err != nil {
		return s.fail(err)
	}
	s.setStatus(ui.Success, fmt.Sprintf("exported %s %dx%d %s", format, width, height, snap.Hex))
	return nil
}

// ExportFile writes the preview to path. The format follows the file
// extension; a path without one gets the default format and its extension.
func (s *Studio) ExportFile(path string, width, height int) (string, error) {
	format, err := export.FormatFromPath(path)
	if err != nil {
		if filepath.Ext(path) != "" {
			return "", s.fail(err)
		}
		format = s.opts.ExportFormat
		path += format.Extension()
	}

	f, err := os.Create(path)
	if err != nil {
		return "", s.fail(fmt.Errorf("creating %s: %w", path, err))
	}
	if err := s.Export(f, format, width, height); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", s.fail(fmt.Errorf("closing %s: %w", path, err))
	}
	s.setStatus(ui.Success, "exported to "+path)
	s.log.Info("preview exported", "path", path, "format", format)
	return path, nil
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
