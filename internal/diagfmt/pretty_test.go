package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/source"
)

func TestPrettyPlain(t *testing.T) {
	file := source.NewVirtualFile("a.ts", "var s = \"abc\n")
	bag := diag.NewBag(10)
	bag.Add(diag.New(8, 4, diag.MissingClosingQuote))

	var buf bytes.Buffer
	if err := Pretty(&buf, file, bag, PrettyOpts{}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	want := "a.ts:1:9: ERROR LEX1002: Missing closing quote character.\n" +
		"1 | var s = \"abc\n" +
		"  |         ^~~~\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestPrettyContextAndNoSource(t *testing.T) {
	file := source.NewVirtualFile("b.ts", "a\nb\nc @\n")
	bag := diag.NewBag(10)
	bag.Add(diag.New(6, 1, diag.UnexpectedCharacter, "'@'"))

	var buf bytes.Buffer
	if err := Pretty(&buf, file, bag, PrettyOpts{Context: 1}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"b.ts:3:3:", "Unexpected character '@'.", "2 | b\n", "3 | c @\n", "  |   ^\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "1 | a") {
		t.Errorf("context went too far back:\n%s", out)
	}

	buf.Reset()
	if err := Pretty(&buf, file, bag, PrettyOpts{NoSource: true}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Fatalf("NoSource printed context:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	file := source.NewVirtualFile("c.ts", "/x\n")
	bag := diag.NewBag(10)
	bag.Add(diag.New(3, 0, diag.TokenExpected, "/"))

	var buf bytes.Buffer
	if err := Pretty(&buf, file, bag, PrettyOpts{Color: true}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes, got %q", buf.String())
	}
}

func TestCaretFor(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		col, width int
		pad, mark  string
	}{
		{"ascii", "let x", 4, 1, "    ", "^"},
		{"zero width", "abc", 3, 0, "   ", "^"},
		{"wide", "a日本", 1, 6, " ", "^~~~"},
		{"tab kept", "\t日x", len("\t日"), 1, "\t  ", "^"},
		{"past end", "ab", 9, 3, "  ", "^"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pad, mark := caretFor(tt.line, tt.col, tt.width)
			if pad != tt.pad || mark != tt.mark {
				t.Fatalf("caretFor(%q, %d, %d) = %q, %q; want %q, %q", tt.line, tt.col, tt.width, pad, mark, tt.pad, tt.mark)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	bag := diag.NewBag(2)
	bag.Add(diag.New(0, 1, diag.UnexpectedCharacter, "'#'"))
	bag.Add(diag.New(1, 3, diag.InvalidRegularExpression, "bad"))
	bag.Add(diag.New(2, 1, diag.UnexpectedCharacter, "'#'"))

	var buf bytes.Buffer
	if err := Summary(&buf, bag, false); err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got, want := buf.String(), "1 error, 1 warning (1 more not shown)\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDisplayPath(t *testing.T) {
	if got := displayPath("/home/user/project/src/test.ts", PathModeRelative, "/home/user/project"); got != "src/test.ts" {
		t.Errorf("relative: %q", got)
	}
	if got := displayPath("/home/user/project/src/test.ts", PathModeBasename, ""); got != "test.ts" {
		t.Errorf("basename: %q", got)
	}
	if got := displayPath("src/test.ts", PathModeAuto, ""); got != "src/test.ts" {
		t.Errorf("auto: %q", got)
	}
}
