package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file" msgpack:"file"`
	StartByte int    `json:"start_byte" msgpack:"start_byte"`
	EndByte   int    `json:"end_byte" msgpack:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty" msgpack:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty" msgpack:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty" msgpack:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty" msgpack:"end_col,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity" msgpack:"severity"`
	Code     string       `json:"code" msgpack:"code"`
	Message  string       `json:"message" msgpack:"message"`
	Args     []string     `json:"args,omitempty" msgpack:"args,omitempty"`
	Location LocationJSON `json:"location" msgpack:"location"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Dropped     int              `json:"dropped,omitempty"`
}

func makeLocation(file *source.File, path string, d diag.Diagnostic, includePositions bool) LocationJSON {
	loc := LocationJSON{
		File:      path,
		StartByte: d.Position,
		EndByte:   d.End(),
	}
	if includePositions {
		start := file.Position(clampOffset(file, d.Position))
		end := file.Position(clampOffset(file, d.End()))
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

// BuildDiagnostics converts bag items without serializing them.
func BuildDiagnostics(file *source.File, bag *diag.Bag, opts JSONOpts) []DiagnosticJSON {
	if bag == nil {
		return nil
	}
	items := bag.Items()
	n := len(items)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}
	path := displayPath(file.Path, opts.PathMode, opts.BaseDir)
	out := make([]DiagnosticJSON, 0, n)
	for _, d := range items[:n] {
		out = append(out, DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message(),
			Args:     d.Args,
			Location: makeLocation(file, path, d, opts.IncludePositions),
		})
	}
	return out
}

// JSON форматирует диагностики одного файла в JSON.
func JSON(w io.Writer, file *source.File, bag *diag.Bag, opts JSONOpts) error {
	diags := BuildDiagnostics(file, bag, opts)
	if diags == nil {
		diags = []DiagnosticJSON{}
	}
	out := DiagnosticsOutput{Diagnostics: diags, Count: len(diags)}
	if bag != nil {
		out.Dropped = bag.Dropped() + bag.Len() - len(diags)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
