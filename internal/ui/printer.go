package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	clr "github.com/Cloudy680/Color-converter/internal/color"
)

// Status severities understood by Printer.Status.
const (
	Success = "success"
	Failure = "error"
	Warning = "warning"
	Info    = "info"
)

// Box-drawing characters
const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

// Printer writes styled lines to an output stream.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Status displays a status message with appropriate styling
func (p *Printer) Status(category, message string) {
	var icon, styled string
	switch category {
	case Success:
		icon = clrSuccess.Sprint("✔")
		styled = clrSuccess.Sprint(message)
	case Failure:
		icon = clrError.Sprint("✖")
		styled = clrError.Sprint(message)
	case Warning:
		icon = clrWarning.Sprint("⚠")
		styled = clrWarning.Sprint(message)
	case Info:
		icon = clrInfo.Sprint("ℹ")
		styled = clrSubtle.Sprint(message)
	default:
		icon = clrDim.Sprint("●")
		styled = clrSubtle.Sprint(message)
	}
	fmt.Fprintf(p.w, "%s  %s\n", icon, styled)
}

// Section creates a section header
func (p *Printer) Section(title string) {
	pad := 50 - len(title)
	if pad < 2 {
		pad = 2
	}
	fmt.Fprintf(p.w, "\n%s %s %s\n",
		clrDim.Sprint("──"),
		clrAccent.Sprint(title),
		clrDim.Sprint(strings.Repeat(boxHorizontal, pad)))
}

// Group starts a boxed block of key/value items.
func (p *Printer) Group(title string) {
	pad := 50 - len(title)
	if pad < 2 {
		pad = 2
	}
	fmt.Fprintf(p.w, "%s %s %s\n",
		clrDim.Sprint(boxTopLeft+strings.Repeat(boxHorizontal, 2)),
		clrPrimary.Sprint(title),
		clrDim.Sprint(strings.Repeat(boxHorizontal, pad)+boxTopRight))
}

// GroupItem logs an item within a group
func (p *Printer) GroupItem(label, value string) {
	fmt.Fprintf(p.w, "%s  %s %s\n",
		clrDim.Sprint(boxVertical),
		clrDim.Sprintf("%-5s", label+":"),
		clrAccent.Sprint(value))
}

// GroupEnd closes a boxed block.
func (p *Printer) GroupEnd() {
	fmt.Fprintln(p.w, clrDim.Sprint(boxBottomLeft+strings.Repeat(boxHorizontal, 56)+boxBottomRight))
}

// Line writes a plain formatted line.
func (p *Printer) Line(format string, a ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", a...)
}

// Swatch returns a block of width cells painted with c as a 24-bit
// background. Without color support it falls back to the hex code in
// brackets so the output stays meaningful.
func Swatch(c clr.RGB, width int) string {
	if width <= 0 {
		width = 1
	}
	if !IsRich() {
		return "[" + strings.ToUpper(c.Hex()) + "]"
	}
	return color.BgRGB(c.R, c.G, c.B).Sprint(strings.Repeat(" ", width))
}
