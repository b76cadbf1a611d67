package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	code, path      *color.Color
	gutter, caret   *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.FgHiBlack),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty форматирует диагностики одного файла в человекочитаемый вид.
// Порядок - как в bag.Items() (ожидается bag.Sort() заранее). Для каждой:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строки контекста и подчёркивание ^~~~ по ширине диагностики.
func Pretty(w io.Writer, file *source.File, bag *diag.Bag, opts PrettyOpts) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	p := newPalette(opts.Color)
	path := displayPath(file.Path, opts.PathMode, opts.BaseDir)
	for _, d := range bag.Items() {
		if err := prettyOne(w, file, path, d, opts, p); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, file *source.File, path string, d diag.Diagnostic, opts PrettyOpts, p palette) error {
	start := file.Position(clampOffset(file, d.Position))
	_, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		p.path.Sprint(path), start.Line, start.Col,
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		d.Message())
	if err != nil || opts.NoSource {
		return err
	}

	first := uint32(1)
	if ctx := uint32(max(opts.Context, 0)); start.Line > ctx {
		first = start.Line - ctx
	}
	gw := len(strconv.FormatUint(uint64(start.Line), 10))
	for n := first; n <= start.Line; n++ {
		if _, err := fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gw, n), file.GetLine(n)); err != nil {
			return err
		}
	}

	line := file.GetLine(start.Line)
	pad, marker := caretFor(line, int(start.Col)-1, d.Width)
	_, err = fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", gw, ""), pad, p.caret.Sprint(marker))
	return err
}

// caretFor returns the padding up to byte column col and a ^~~~ marker as
// wide (in terminal cells) as the covered text on this line.
func caretFor(line string, col, width int) (pad, marker string) {
	col = min(max(col, 0), len(line))
	var b strings.Builder
	for _, r := range line[:col] {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	end := min(col+max(width, 0), len(line))
	cells := max(runewidth.StringWidth(line[col:end]), 1)
	return b.String(), "^" + strings.Repeat("~", cells-1)
}

func clampOffset(file *source.File, off int) uint32 {
	u, err := safecast.Conv[uint32](off)
	if err != nil {
		if off < 0 {
			return 0
		}
		return file.Len()
	}
	return min(u, file.Len())
}

// Summary prints "N errors, M warnings" and how many diagnostics the bag dropped.
func Summary(w io.Writer, bag *diag.Bag, useColor bool) error {
	p := newPalette(useColor)
	var errs, warns int
	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		}
	}
	msg := fmt.Sprintf("%s, %s",
		p.err.Sprint(plural(errs, "error")),
		p.warn.Sprint(plural(warns, "warning")))
	if n := bag.Dropped(); n > 0 {
		msg += fmt.Sprintf(" (%d more not shown)", n)
	}
	_, err := fmt.Fprintln(w, msg)
	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
