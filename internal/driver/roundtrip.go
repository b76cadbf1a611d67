package driver

import (
	"fmt"
	"strings"

	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/scanner"
	"github.com/palantir/tslint-sub000/internal/syntax"
	"github.com/palantir/tslint-sub000/internal/testkit"
)

const snippetLen = 16

// RoundTripError reports the first offset where the rebuilt text differs
// from the file.
type RoundTripError struct {
	Path   string
	Stage  string // "tokens" or "tree"
	Offset int
	Want   string
	Got    string
}

func (e *RoundTripError) Error() string {
	return fmt.Sprintf("%s: %s round trip differs at offset %d: want %q, got %q", e.Path, e.Stage, e.Offset, e.Want, e.Got)
}

// RoundTrip verifies the lossless property twice: the concatenated full
// text of the token stream, then of a tree parsed from the same file, must
// equal the file content byte for byte.
func RoundTrip(res *TokenizeResult) error {
	if res == nil || res.File == nil {
		return fmt.Errorf("round trip: nil result")
	}
	content := string(res.File.Content)

	var b strings.Builder
	b.Grow(len(content))
	for _, tok := range res.Tokens {
		b.WriteString(tok.FullText())
	}
	if err := compareText(res.Path, "tokens", content, b.String()); err != nil {
		return err
	}
	if err := testkit.CheckTokenSpans(res.File, res.Tokens); err != nil {
		return fmt.Errorf("%s: %w", res.Path, err)
	}

	tree := testkit.Parse(res.File, scanner.Options{Version: res.Version}, diag.Discard)
	if err := compareText(res.Path, "tree", content, tree.FullText()); err != nil {
		return err
	}
	if err := testkit.CheckWidths(tree); err != nil {
		return fmt.Errorf("%s: %w", res.Path, err)
	}
	return nil
}

func compareText(path, stage, want, got string) error {
	if want == got {
		return nil
	}
	off := 0
	for off < len(want) && off < len(got) && want[off] == got[off] {
		off++
	}
	return &RoundTripError{
		Path:   path,
		Stage:  stage,
		Offset: off,
		Want:   snippet(want, off),
		Got:    snippet(got, off),
	}
}

func snippet(s string, off int) string {
	return s[off:min(off+snippetLen, len(s))]
}

// TokenLocation describes the token covering an offset.
type TokenLocation struct {
	Token    *syntax.PositionedToken
	Previous *syntax.PositionedToken // nil at the start of the file
	Next     *syntax.PositionedToken // nil for EndOfFileToken
	// Chain lists the kinds of the enclosing elements, innermost first.
	Chain []syntax.Kind
}

// TokenAt finds the token whose full span contains offset in a tree parsed
// from the result's file. offset may equal the file length.
func TokenAt(res *TokenizeResult, offset int) (*TokenLocation, error) {
	if res == nil || res.File == nil {
		return nil, fmt.Errorf("token at: nil result")
	}
	if offset < 0 || offset > len(res.File.Content) {
		return nil, fmt.Errorf("%s: offset %d outside [0, %d]", res.Path, offset, len(res.File.Content))
	}
	tree := testkit.Parse(res.File, scanner.Options{Version: res.Version}, diag.Discard)
	tok := syntax.FindToken(tree, offset)
	loc := &TokenLocation{
		Token:    tok,
		Previous: tok.PreviousToken(),
		Next:     tok.NextToken(),
	}
	for p := tok.Parent(); p != nil; p = p.Parent() {
		loc.Chain = append(loc.Chain, p.Element().Kind())
	}
	return loc, nil
}
