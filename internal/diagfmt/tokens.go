package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/palantir/tslint-sub000/internal/source"
	"github.com/palantir/tslint-sub000/internal/syntax"
)

const maxTokenTextCells = 40

// TokenRow is one token of the stream with resolved positions.
type TokenRow struct {
	Index    int      `json:"index" msgpack:"index"`
	Kind     string   `json:"kind" msgpack:"kind"`
	Text     string   `json:"text,omitempty" msgpack:"text,omitempty"`
	Start    int      `json:"start" msgpack:"start"`
	End      int      `json:"end" msgpack:"end"`
	Line     uint32   `json:"line" msgpack:"line"`
	Col      uint32   `json:"col" msgpack:"col"`
	Leading  []string `json:"leading,omitempty" msgpack:"leading,omitempty"`
	Trailing []string `json:"trailing,omitempty" msgpack:"trailing,omitempty"`
	Missing  bool     `json:"missing,omitempty" msgpack:"missing,omitempty"`
}

// TokensOutput is the root of the json and msgpack token dumps.
type TokensOutput struct {
	File        string           `json:"file" msgpack:"file"`
	Count       int              `json:"count" msgpack:"count"`
	Tokens      []TokenRow       `json:"tokens" msgpack:"tokens"`
	Diagnostics []DiagnosticJSON `json:"diagnostics,omitempty" msgpack:"diagnostics,omitempty"`
}

// BuildTokenRows resolves positions for a token stream that starts at offset
// 0 of file, as produced by Scanner.ScanAll.
func BuildTokenRows(file *source.File, tokens []*syntax.Token, withTrivia bool) []TokenRow {
	rows := make([]TokenRow, 0, len(tokens))
	fullStart := 0
	for i, tok := range tokens {
		start := fullStart + tok.LeadingTriviaWidth()
		pos := file.Position(clampOffset(file, start))
		row := TokenRow{
			Index:   i,
			Kind:    tok.Kind().String(),
			Text:    tok.Text(),
			Start:   start,
			End:     start + tok.Width(),
			Line:    pos.Line,
			Col:     pos.Col,
			Missing: tok.IsMissing(),
		}
		if withTrivia && tok.HasLeadingTrivia() {
			row.Leading = triviaKinds(tok.LeadingTrivia())
		}
		if withTrivia && tok.HasTrailingTrivia() {
			row.Trailing = triviaKinds(tok.TrailingTrivia())
		}
		rows = append(rows, row)
		fullStart += tok.FullWidth()
	}
	return rows
}

func triviaKinds(list syntax.TriviaList) []string {
	if list.Count() == 0 {
		return nil
	}
	out := make([]string, list.Count())
	for i := range out {
		out[i] = list.At(i).Kind().String()
	}
	return out
}

type tokenStyles struct {
	index, loc, text lipgloss.Style
	keyword, punct   lipgloss.Style
	literal, ident   lipgloss.Style
	missing, other   lipgloss.Style
	enabled          bool
}

func newTokenStyles(w io.Writer, enabled bool) tokenStyles {
	r := lipgloss.NewRenderer(w)
	return tokenStyles{
		index:   r.NewStyle().Foreground(lipgloss.Color("8")),
		loc:     r.NewStyle().Foreground(lipgloss.Color("8")),
		text:    r.NewStyle().Foreground(lipgloss.Color("7")),
		keyword: r.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		punct:   r.NewStyle().Foreground(lipgloss.Color("12")),
		literal: r.NewStyle().Foreground(lipgloss.Color("10")),
		ident:   r.NewStyle().Foreground(lipgloss.Color("15")),
		missing: r.NewStyle().Foreground(lipgloss.Color("9")).Italic(true),
		other:   r.NewStyle(),
		enabled: enabled,
	}
}

func (s tokenStyles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

func (s tokenStyles) forKind(tok *syntax.Token) lipgloss.Style {
	k := tok.Kind()
	switch {
	case tok.IsMissing():
		return s.missing
	case k.IsKeyword():
		return s.keyword
	case k.IsPunctuation():
		return s.punct
	case k == syntax.IdentifierName:
		return s.ident
	case k == syntax.NumericLiteral, k == syntax.StringLiteral, k == syntax.RegularExpressionLiteral:
		return s.literal
	}
	return s.other
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
//
//	1: VarKeyword   "var"  1:1-1:4  (leading: WhitespaceTrivia)
func FormatTokensPretty(w io.Writer, file *source.File, tokens []*syntax.Token, opts TokenOpts) error {
	st := newTokenStyles(w, opts.Color)
	rows := BuildTokenRows(file, tokens, opts.Trivia)
	iw := len(strconv.Itoa(len(rows)))
	for i, row := range rows {
		end := file.Position(clampOffset(file, row.End))
		var b strings.Builder
		b.WriteString(st.render(st.index, fmt.Sprintf("%*d:", iw, row.Index+1)))
		b.WriteByte(' ')
		b.WriteString(st.render(st.forKind(tokens[i]), fmt.Sprintf("%-26s", row.Kind)))
		if row.Text != "" {
			b.WriteByte(' ')
			b.WriteString(st.render(st.text, runewidth.Truncate(strconv.Quote(row.Text), maxTokenTextCells, "...")))
		}
		b.WriteByte(' ')
		b.WriteString(st.render(st.loc, fmt.Sprintf("at %d:%d-%d:%d", row.Line, row.Col, end.Line, end.Col)))
		if len(row.Leading) > 0 {
			fmt.Fprintf(&b, " (leading: %s)", strings.Join(row.Leading, ", "))
		}
		if len(row.Trailing) > 0 {
			fmt.Fprintf(&b, " (trailing: %s)", strings.Join(row.Trailing, ", "))
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// BuildTokensOutput collects the serializable form of a token dump.
func BuildTokensOutput(file *source.File, tokens []*syntax.Token, diags []DiagnosticJSON, opts TokenOpts) TokensOutput {
	rows := BuildTokenRows(file, tokens, opts.Trivia)
	return TokensOutput{
		File:        displayPath(file.Path, opts.PathMode, opts.BaseDir),
		Count:       len(rows),
		Tokens:      rows,
		Diagnostics: diags,
	}
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, out TokensOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// FormatTokensMsgpack writes the dump as a single msgpack value.
func FormatTokensMsgpack(w io.Writer, out TokensOutput) error {
	enc := msgpack.NewEncoder(w)
	enc.SetOmitEmpty(true)
	return enc.Encode(out)
}
