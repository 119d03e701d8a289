package studio

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/Cloudy680/Color-converter/internal/color"
	"github.com/Cloudy680/Color-converter/internal/ui"
)

const prompt = "colorstudio> "

// lineReader yields one command line at a time.
type lineReader interface {
	ReadLine() (string, error)
}

// promptReader reads lines from a plain stream, printing the prompt first.
type promptReader struct {
	sc *bufio.Scanner
	w  io.Writer
}

func (r *promptReader) ReadLine() (string, error) {
	fmt.Fprint(r.w, prompt)
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.sc.Text(), nil
}

// Shell runs studio commands read line by line.
type Shell struct {
	st *Studio
	in lineReader
	p  *ui.Printer
}

// NewShell returns a shell reading commands from in and writing to out.
func NewShell(st *Studio, in io.Reader, out io.Writer) *Shell {
	return newShell(st, &promptReader{sc: bufio.NewScanner(in), w: out}, out)
}

func newShell(st *Studio, in lineReader, out io.Writer) *Shell {
	sh := &Shell{st: st, in: in, p: ui.NewPrinter(out)}
	st.OnChange(sh.changed)
	return sh
}

// Interactive runs a shell on the process terminal. When stdin is a
// terminal it is switched to raw mode for line editing and history.
func Interactive(ctx context.Context, st *Studio, in *os.File, out io.Writer) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return NewShell(st, in, out).Run(ctx)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, prompt)
	if w, h, err := term.GetSize(fd); err == nil {
		t.SetSize(w, h)
	}
	return newShell(st, t, t).Run(ctx)
}

// Run reads and executes commands until quit, end of input or ctx is done.
func (sh *Shell) Run(ctx context.Context) error {
	sh.p.Status(ui.Info, "type help for commands")
	sh.show(sh.st.Snapshot())
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := sh.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading command: %w", err)
		}
		if quit := sh.Exec(line); quit {
			return nil
		}
	}
}

// Exec runs a single command line and reports whether it asked to quit.
// Errors are printed on the status line; they never end the session.
func (sh *Shell) Exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "rgb":
		err = sh.floats(args, 3, func(v []float64) error { return sh.st.ApplyRGB(v[0], v[1], v[2]) })
	case "cmyk":
		err = sh.floats(args, 4, func(v []float64) error { return sh.st.ApplyCMYK(v[0], v[1], v[2], v[3]) })
	case "hls":
		err = sh.floats(args, 3, func(v []float64) error { return sh.st.ApplyHLS(v[0], v[1], v[2]) })
	case "hex":
		if len(args) != 1 {
			err = usage("hex VALUE")
			break
		}
		err = sh.st.ApplyHex(args[0])
	case "nudge":
		err = sh.nudge(args)
	case "save":
		_, err = sh.st.SaveSwatch()
		if err == nil {
			sh.status()
		}
	case "swatches":
		sh.swatches()
	case "use":
		err = sh.index(args, "use INDEX", sh.st.UseSwatch)
	case "rm":
		err = sh.index(args, "rm INDEX", func(i int) error {
			_, err := sh.st.RemoveSwatch(i)
			if err == nil {
				sh.status()
			}
			return err
		})
	case "reset":
		err = sh.st.ResetWhite()
	case "export":
		err = sh.export(args)
	case "show":
		sh.show(sh.st.Snapshot())
	case "help", "?":
		sh.help()
	case "quit", "exit", "q":
		return true
	default:
		err = fmt.Errorf("%w: unknown command %q (try help)", ErrInput, cmd)
	}
	if err != nil {
		sh.p.Status(ui.Failure, err.Error())
	}
	return false
}

func (sh *Shell) floats(args []string, n int, apply func([]float64) error) error {
	if len(args) != n {
		return fmt.Errorf("%w: expected %d numbers, got %d", ErrInput, n, len(args))
	}
	v := make([]float64, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(strings.TrimSuffix(a, ","), 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", ErrInput, a)
		}
		v[i] = f
	}
	return apply(v)
}

func (sh *Shell) nudge(args []string) error {
	if len(args) != 2 {
		return usage("nudge FIELD STEPS")
	}
	model, field, ok := strings.Cut(args[0], ".")
	if !ok {
		model, field = "", args[0]
	}
	delta, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: %q is not a step count", ErrInput, args[1])
	}
	return sh.st.Nudge(model, field, delta)
}

func (sh *Shell) index(args []string, syntax string, fn func(int) error) error {
	if len(args) != 1 {
		return usage(syntax)
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q is not an index", ErrInput, args[0])
	}
	return fn(i)
}

func (sh *Shell) export(args []string) error {
	if len(args) != 1 && len(args) != 3 {
		return usage("export PATH [WIDTH HEIGHT]")
	}
	var w, h int
	if len(args) == 3 {
		var err1, err2 error
		w, err1 = strconv.Atoi(args[1])
		h, err2 = strconv.Atoi(args[2])
		if err := errors.Join(err1, err2); err != nil || w <= 0 || h <= 0 {
			return fmt.Errorf("%w: size must be two positive integers", ErrInput)
		}
	}
	if _, err := sh.st.ExportFile(args[0], w, h); err != nil {
		return err
	}
	sh.status()
	return nil
}

// changed renders every edit, including those made from other shells.
func (sh *Shell) changed(s Snapshot) {
	sh.p.Line("%s %s  %s", ui.Swatch(s.RGB, 4), ui.Bold("%s", s.Hex), ui.Muted("rgb(%s)", s.RGB))
	sh.p.Status(s.Status.Level, s.Status.Text)
}

func (sh *Shell) status() {
	s := sh.st.Snapshot().Status
	sh.p.Status(s.Level, s.Text)
}

func (sh *Shell) show(s Snapshot) {
	sh.p.Section("Preview")
	sh.p.Line("%s  %s", ui.Swatch(s.RGB, 12), ui.Bold("%s", s.Hex))

	for _, model := range []string{"rgb", "cmyk", "hls"} {
		sh.p.Group(strings.ToUpper(model))
		for _, ctl := range Controls {
			if ctl.Model != model {
				continue
			}
			sh.p.GroupItem(ctl.Label, formatValue(ctl, s.Value(ctl)))
		}
		sh.p.GroupEnd()
	}
	sh.p.Status(s.Status.Level, s.Status.Text)
}

func formatValue(ctl Control, v float64) string {
	switch {
	case ctl.Model == "rgb":
		return strconv.Itoa(int(v))
	case ctl.Percent:
		return fmt.Sprintf("%.6g (%d%%)", v, int(v*100+0.5))
	case ctl.Field == "h":
		return fmt.Sprintf("%.6g (%.1f°)", v, color.HLS{H: v}.Degrees())
	}
	return fmt.Sprintf("%.6g", v)
}

func (sh *Shell) swatches() {
	list := sh.st.Swatches()
	if len(list) == 0 {
		sh.p.Status(ui.Info, "no swatches saved")
		return
	}
	sh.p.Section("Swatches")
	for i, hex := range list {
		sh.p.Line("%3d  %s %s", i, ui.Swatch(color.ParseHex(hex), 4), hex)
	}
}

func (sh *Shell) help() {
	sh.p.Section("Commands")
	for _, c := range [][2]string{
		{"rgb R G B", "set red, green and blue (0-255)"},
		{"cmyk C M Y K", "set cyan, magenta, yellow and key (0-1)"},
		{"hls H L S", "set hue, lightness and saturation (0-1)"},
		{"hex VALUE", "set a #RRGGBB or #RGB color"},
		{"nudge FIELD N", "move a field by N steps, e.g. nudge k -10"},
		{"save", "save the current color as a swatch"},
		{"swatches", "list saved swatches"},
		{"use I", "apply swatch I"},
		{"rm I", "remove swatch I"},
		{"reset", "reset to white"},
		{"export PATH [W H]", "write a preview image"},
		{"show", "show all models"},
		{"quit", "leave the studio"},
	} {
		sh.p.Line("  %-18s %s", ui.Command("%s", c[0]), ui.Muted("%s", c[1]))
	}
}

func usage(syntax string) error {
	return fmt.Errorf("%w: usage: %s", ErrInput, syntax)
}
