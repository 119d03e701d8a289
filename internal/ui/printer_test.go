package ui

import (
	"bytes"
	"strings"
	"testing"

	clr "github.com/Cloudy680/Color-converter/internal/color"
)

func plain(t *testing.T) {
	t.Helper()
	was := IsRich()
	SetRich(false)
	t.Cleanup(func() { SetRich(was) })
}

func TestStatusIcons(t *testing.T) {
	plain(t)
	tests := []struct {
		category string
		icon     string
	}{
		{Success, "✔"},
		{Failure, "✖"},
		{Warning, "⚠"},
		{Info, "ℹ"},
		{"other", "●"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		NewPrinter(&buf).Status(tt.category, "hello")
		want := tt.icon + "  hello\n"
		if buf.String() != want {
			t.Errorf("Status(%q) = %q, want %q", tt.category, buf.String(), want)
		}
	}
}

func TestGroup(t *testing.T) {
	plain(t)
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.Group("RGB")
	p.GroupItem("R", "255")
	p.GroupEnd()

	out := buf.String()
	for _, want := range []string{"╭── RGB", "│  R:    255", "╰"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSwatchPlain(t *testing.T) {
	plain(t)
	if got := Swatch(clr.RGB{R: 255, G: 0, B: 170}, 6); got != "[#FF00AA]" {
		t.Errorf("Swatch = %q", got)
	}
}

func TestSwatchRich(t *testing.T) {
	was := IsRich()
	SetRich(true)
	defer SetRich(was)

	got := Swatch(clr.RGB{R: 1, G: 2, B: 3}, 4)
	if !strings.Contains(got, "48;2;1;2;3") {
		t.Errorf("Swatch = %q, want a 24-bit background sequence", got)
	}
	if !strings.Contains(got, "    ") {
		t.Errorf("Swatch = %q, want 4 painted cells", got)
	}
}
