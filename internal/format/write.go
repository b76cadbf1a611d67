package format

const newLine = "\r\n"

// Writer accumulates formatted output and tracks indentation and line
// state. Indentation strings are built once per depth.
type Writer struct {
	buf         []byte
	unit        string
	indents     []string
	indentLevel int
	atLineStart bool
}

// NewWriter creates a writer that indents with unit per level.
func NewWriter(unit string) *Writer {
	return &Writer{
		unit:        unit,
		indents:     []string{""},
		atLineStart: true,
	}
}

// Bytes returns the accumulated formatted output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) String() string {
	return string(w.buf)
}

func (w *Writer) indentation(level int) string {
	for len(w.indents) <= level {
		w.indents = append(w.indents, w.indents[len(w.indents)-1]+w.unit)
	}
	return w.indents[level]
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	w.buf = append(w.buf, w.indentation(w.indentLevel)...)
	w.atLineStart = false
}

// WriteString writes s, indenting first when at the start of a line. s must
// not contain line breaks; use EnsureNewLine for those.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
}

// EnsureSpace writes a single space unless the output is at the start of a
// line or already ends with one.
func (w *Writer) EnsureSpace() {
	if w.atLineStart || len(w.buf) == 0 || w.buf[len(w.buf)-1] == ' ' {
		return
	}
	w.buf = append(w.buf, ' ')
}

// EnsureNewLine ends the current line unless nothing was written on it.
func (w *Writer) EnsureNewLine() {
	if w.atLineStart {
		return
	}
	w.NewLine()
}

// NewLine always writes a line break, producing a blank line when the
// current one is empty.
func (w *Writer) NewLine() {
	w.buf = append(w.buf, newLine...)
	w.atLineStart = true
}

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() {
	w.indentLevel++
}

// IndentPop decreases the indentation level.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
