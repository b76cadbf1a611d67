package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/source"
)

func TestJSONBasic(t *testing.T) {
	file := source.NewVirtualFile("test.ts", "function f() {\n  var x = \"unterminated\n}")
	bag := diag.NewBag(10)
	bag.Add(diag.New(25, 13, diag.MissingClosingQuote))

	var buf bytes.Buffer
	if err := JSON(&buf, file, bag, JSONOpts{IncludePositions: true, PathMode: PathModeBasename}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", output.Count, len(output.Diagnostics))
	}
	d := output.Diagnostics[0]
	if d.Code != "LEX1002" || d.Severity != "ERROR" {
		t.Errorf("code/severity = %s/%s", d.Code, d.Severity)
	}
	loc := d.Location
	if loc.File != "test.ts" || loc.StartByte != 25 || loc.EndByte != 38 {
		t.Errorf("location = %+v", loc)
	}
	if loc.StartLine != 2 || loc.StartCol != 11 || loc.EndLine != 2 || loc.EndCol != 24 {
		t.Errorf("positions = %+v", loc)
	}
}

func TestJSONMaxAndEmpty(t *testing.T) {
	file := source.NewVirtualFile("m.ts", "@@@")
	bag := diag.NewBag(10)
	for i := range 3 {
		bag.Add(diag.New(i, 1, diag.UnexpectedCharacter, "'@'"))
	}

	var buf bytes.Buffer
	if err := JSON(&buf, file, bag, JSONOpts{Max: 2}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if output.Count != 2 || output.Dropped != 1 {
		t.Fatalf("count = %d dropped = %d", output.Count, output.Dropped)
	}
	if output.Diagnostics[0].Location.StartLine != 0 {
		t.Errorf("positions must be omitted without IncludePositions")
	}

	buf.Reset()
	if err := JSON(&buf, file, diag.NewBag(1), JSONOpts{}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"diagnostics": []`)) {
		t.Fatalf("empty bag should encode an empty array:\n%s", buf.String())
	}
}
