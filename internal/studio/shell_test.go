package studio

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Cloudy680/Color-converter/internal/color"
	"github.com/Cloudy680/Color-converter/internal/ui"
)

func runShell(t *testing.T, st *Studio, input string) string {
	t.Helper()
	was := ui.IsRich()
	ui.SetRich(false)
	t.Cleanup(func() { ui.SetRich(was) })

	var out bytes.Buffer
	if err := NewShell(st, strings.NewReader(input), &out).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestShellCommands(t *testing.T) {
	st := New(Options{Start: color.RGB{R: 255}})
	out := runShell(t, st, strings.Join([]string{
		"rgb 0 255 0",
		"cmyk 0 0 0 1",
		"hls 0.5 0.5 1",
		"hex #abc",
		"nudge r 1",
		"nudge hls.l -1000",
		"reset",
		"",
	}, "\n"))

	for _, want := range []string{
		"[#00FF00] #00FF00",
		"[#000000] #000000",
		"[#00FFFF] #00FFFF",
		"[#AABBCC] #AABBCC",
		"[#ABBBCC] #ABBBCC",
		"[#000000] #000000",
		"[#FFFFFF] #FFFFFF",
		"✔  updated by reset",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := st.Snapshot().RGB; got != color.White {
		t.Errorf("final color = %v, want white", got)
	}
}

func TestShellErrorsKeepSession(t *testing.T) {
	st := New(Options{Start: color.RGB{R: 255}})
	out := runShell(t, st, "hex zz\nrgb 1 2\nrgb a b c\nfly\nnudge q 1\nuse 0\nexport\nrgb 1 2 3\n")

	for _, want := range []string{
		`✖  invalid hex color "zz"`,
		"expected 3 numbers, got 2",
		`"a" is not a number`,
		`unknown command "fly"`,
		"unknown field .q",
		"swatch 0: swatch index out of range",
		"usage: export PATH [WIDTH HEIGHT]",
		"[#010203] #010203",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShellQuitStopsReading(t *testing.T) {
	st := New(Options{Start: color.RGB{R: 255}})
	runShell(t, st, "quit\nrgb 1 2 3\n")
	if got := st.Snapshot().RGB; got != (color.RGB{R: 255}) {
		t.Errorf("command after quit ran: %v", got)
	}
}

func TestShellSwatchesAndShow(t *testing.T) {
	st := New(Options{Start: color.RGB{R: 255}})
	out := runShell(t, st, "save\nhex 00f\nsave\nswatches\nuse 1\nrm 0\nshow\n")

	for _, want := range []string{
		"saved swatch #FF0000",
		"saved swatch #0000FF",
		"  0  [#0000FF] #0000FF",
		"  1  [#FF0000] #FF0000",
		"removed swatch #0000FF",
		"╭── CMYK",
		"│  K:    0 (0%)",
		"│  H:    0 (0.0°)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := st.Swatches(); len(got) != 1 || got[0] != "#FF0000" {
		t.Errorf("swatches = %v", got)
	}
}

func TestShellExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ppm")
	st := New(Options{Start: color.RGB{R: 1, G: 2, B: 3}})
	out := runShell(t, st, "export "+path+" 2 1\nexport "+path+" 0 1\n")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "P6\n2 1\n255\n\x01\x02\x03\x01\x02\x03"; string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
	if !strings.Contains(out, "exported to "+path) {
		t.Errorf("output missing export status:\n%s", out)
	}
	if !strings.Contains(out, "size must be two positive integers") {
		t.Errorf("output missing size error:\n%s", out)
	}
}

func TestShellCancelledContext(t *testing.T) {
	st := New(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewShell(st, strings.NewReader("rgb 1 2 3\n"), &bytes.Buffer{}).Run(ctx)
	if err != context.Canceled {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
}
