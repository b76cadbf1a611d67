package fuzztests

import (
	"strings"
	"testing"

	"github.com/palantir/tslint-sub000/internal/charclass"
	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/scanner"
	"github.com/palantir/tslint-sub000/internal/source"
	"github.com/palantir/tslint-sub000/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzScannerRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		file := source.NewVirtualFile("fuzz.ts", string(input))

		for _, v := range []charclass.Version{charclass.ES5, charclass.ES3} {
			bag := diag.NewBag(64)
			tokens := scanner.New(file, scanner.Options{Version: v}).ScanAll(bag)
			if err := testkit.CheckTokenSpans(file, tokens); err != nil {
				t.Fatalf("%v: %v", v, err)
			}
			var b strings.Builder
			for _, tok := range tokens {
				// оба уровня trivia должны совпадать по ширине
				if got := tok.LeadingTrivia().FullWidth(); got != tok.LeadingTriviaWidth() {
					t.Fatalf("%v: leading trivia of %v: rescan %d, scan %d", v, tok.Kind(), got, tok.LeadingTriviaWidth())
				}
				if got := tok.TrailingTrivia().FullWidth(); got != tok.TrailingTriviaWidth() {
					t.Fatalf("%v: trailing trivia of %v: rescan %d, scan %d", v, tok.Kind(), got, tok.TrailingTriviaWidth())
				}
				b.WriteString(tok.FullText())
			}
			if b.String() != string(input) {
				t.Fatalf("%v: token text differs from input", v)
			}
			for _, d := range bag.Items() {
				if d.Position < 0 || d.End() > len(input) {
					t.Fatalf("%v: diagnostic %v outside the input", v, d)
				}
			}
		}
	})
}

func FuzzParserRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		file := source.NewVirtualFile("fuzz.ts", string(input))
		tree := testkit.Parse(file, scanner.Options{}, diag.NewBag(64))
		if tree.FullText() != string(input) {
			t.Fatalf("tree text differs from input")
		}
		if err := testkit.CheckWidths(tree); err != nil {
			t.Fatal(err)
		}
	})
}
