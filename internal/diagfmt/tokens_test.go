package diagfmt

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/scanner"
	"github.com/palantir/tslint-sub000/internal/source"
	"github.com/palantir/tslint-sub000/internal/syntax"
)

func scanText(t *testing.T, text string) (*source.File, []*syntax.Token) {
	t.Helper()
	file := source.NewVirtualFile("t.ts", text)
	bag := diag.NewBag(10)
	tokens := scanner.New(file, scanner.Options{}).ScanAll(bag)
	return file, tokens
}

func TestBuildTokenRows(t *testing.T) {
	file, tokens := scanText(t, "var x = /a/g; // c\ny")
	rows := BuildTokenRows(file, tokens, true)
	if len(rows) != len(tokens) {
		t.Fatalf("rows = %d, tokens = %d", len(rows), len(tokens))
	}

	want := []struct {
		kind      syntax.Kind
		text      string
		start     int
		line, col uint32
	}{
		{syntax.VarKeyword, "var", 0, 1, 1},
		{syntax.IdentifierName, "x", 4, 1, 5},
		{syntax.EqualsToken, "=", 6, 1, 7},
		{syntax.RegularExpressionLiteral, "/a/g", 8, 1, 9},
		{syntax.SemicolonToken, ";", 12, 1, 13},
		{syntax.IdentifierName, "y", 19, 2, 1},
		{syntax.EndOfFileToken, "", 20, 2, 2},
	}
	for i, w := range want {
		r := rows[i]
		if r.Kind != w.kind.String() || r.Text != w.text || r.Start != w.start || r.Line != w.line || r.Col != w.col {
			t.Errorf("row %d = %+v, want %+v", i, r, w)
		}
	}
	// "; // c\n": trailing trivia stops after the first newline
	if got := strings.Join(rows[4].Trailing, ","); got != "WhitespaceTrivia,SingleLineCommentTrivia,NewLineTrivia" {
		t.Errorf("trailing of ';' = %s", got)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	file, tokens := scanText(t, "a\t+ 'b'")
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, file, tokens, TokenOpts{Trivia: true}); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != len(tokens) {
		t.Fatalf("lines = %d, tokens = %d:\n%s", len(lines), len(tokens), out)
	}
	if !strings.Contains(lines[0], `"a"`) || !strings.Contains(lines[0], "at 1:1-1:2") || !strings.Contains(lines[0], "(trailing: WhitespaceTrivia)") {
		t.Errorf("line 0: %q", lines[0])
	}
	if !strings.Contains(lines[2], `"'b'"`) {
		t.Errorf("line 2: %q", lines[2])
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("colorless output has escapes")
	}
}

func TestFormatTokensJSONAndMsgpack(t *testing.T) {
	file, tokens := scanText(t, "x = 1 # 2")
	bag := diag.NewBag(10)
	bag.Add(diag.New(6, 1, diag.UnexpectedCharacter, "'#'"))
	out := BuildTokensOutput(file, tokens, BuildDiagnostics(file, bag, JSONOpts{}), TokenOpts{})

	var jbuf bytes.Buffer
	if err := FormatTokensJSON(&jbuf, out); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}
	var fromJSON TokensOutput
	if err := json.Unmarshal(jbuf.Bytes(), &fromJSON); err != nil {
		t.Fatalf("json: %v", err)
	}
	if fromJSON.Count != len(tokens) || len(fromJSON.Diagnostics) != 1 {
		t.Fatalf("json count = %d, diagnostics = %d", fromJSON.Count, len(fromJSON.Diagnostics))
	}

	var mbuf bytes.Buffer
	if err := FormatTokensMsgpack(&mbuf, out); err != nil {
		t.Fatalf("FormatTokensMsgpack: %v", err)
	}
	var fromMsgpack TokensOutput
	if err := msgpack.Unmarshal(mbuf.Bytes(), &fromMsgpack); err != nil {
		t.Fatalf("msgpack: %v", err)
	}
	if !reflect.DeepEqual(out, fromMsgpack) {
		t.Fatalf("msgpack mismatch:\n got %+v\nwant %+v", fromMsgpack, out)
	}
	if mbuf.Len() >= jbuf.Len() {
		t.Errorf("msgpack (%d bytes) not smaller than json (%d bytes)", mbuf.Len(), jbuf.Len())
	}
}
