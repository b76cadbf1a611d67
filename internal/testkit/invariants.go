package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/palantir/tslint-sub000/internal/source"
	"github.com/palantir/tslint-sub000/internal/syntax"
)

// CheckWidths walks the tree and verifies the cached widths and flags
// against the children:
// 1) fullWidth equals the sum of the children's full widths
// 2) leading trivia + width + trailing trivia equals fullWidth
// 3) skipped text, zero width and regex flags are the OR of the children
// 4) every separated list has zero or an odd number of children
func CheckWidths(root syntax.Element) error {
	if root == nil {
		return fmt.Errorf("nil root")
	}
	_, err := checkElement(root, 0)
	return err
}

func checkElement(e syntax.Element, fullStart int) (int, error) {
	if t, ok := e.(*syntax.Token); ok {
		if got := t.LeadingTriviaWidth() + t.Width() + t.TrailingTriviaWidth(); got != t.FullWidth() {
			return 0, fmt.Errorf("%v at %d: trivia and text sum to %d, full width %d", t.Kind(), fullStart, got, t.FullWidth())
		}
		return t.FullWidth(), nil
	}

	if l, ok := e.(*syntax.SeparatedList); ok && l.ChildCount()%2 == 0 && l.ChildCount() > 0 {
		return 0, fmt.Errorf("separated list at %d has %d children", fullStart, l.ChildCount())
	}

	sum := 0
	var skipped, zero, regex bool
	for i := range e.ChildCount() {
		child := e.ChildAt(i)
		if child == nil {
			continue
		}
		w, err := checkElement(child, fullStart+sum)
		if err != nil {
			return 0, err
		}
		sum += w
		skipped = skipped || child.HasSkippedText()
		zero = zero || child.HasZeroWidthToken()
		regex = regex || child.HasRegularExpressionToken()
	}

	if sum != e.FullWidth() {
		return 0, fmt.Errorf("%v at %d: children sum to %d, full width %d", e.Kind(), fullStart, sum, e.FullWidth())
	}
	if got := e.LeadingTriviaWidth() + e.Width() + e.TrailingTriviaWidth(); got != e.FullWidth() && e.FullWidth() > 0 {
		return 0, fmt.Errorf("%v at %d: trivia and width sum to %d, full width %d", e.Kind(), fullStart, got, e.FullWidth())
	}
	if skipped != e.HasSkippedText() || zero != e.HasZeroWidthToken() || regex != e.HasRegularExpressionToken() {
		return 0, fmt.Errorf("%v at %d: cached flags disagree with children", e.Kind(), fullStart)
	}
	return sum, nil
}

// CheckTokenSpans verifies a scanned token stream against its file:
// 1) the full spans are contiguous and start at 0
// 2) every span lies inside the content
// 3) the union of the spans covers the whole content
// 4) the stream ends with exactly one EndOfFileToken
func CheckTokenSpans(file *source.File, tokens []*syntax.Token) error {
	if file == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind() != syntax.EndOfFileToken {
		return fmt.Errorf("token stream does not end with EndOfFileToken")
	}
	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var union source.Span
	pos := 0
	for i, tok := range tokens {
		if tok.Kind() == syntax.EndOfFileToken && i != len(tokens)-1 {
			return fmt.Errorf("EndOfFileToken at index %d before the end", i)
		}
		sp := source.SpanOf(file.ID, pos, tok.FullWidth())
		if sp.End > lenContent {
			return fmt.Errorf("token %d (%v) span %v beyond content %d", i, tok.Kind(), sp, lenContent)
		}
		if i == 0 {
			union = sp
		} else {
			if sp.Start != union.End {
				return fmt.Errorf("token %d (%v) starts at %d, previous ended at %d", i, tok.Kind(), sp.Start, union.End)
			}
			union = union.Cover(sp)
		}
		pos += tok.FullWidth()
	}
	if union.Start != 0 || union.End != lenContent {
		return fmt.Errorf("tokens cover %v, content has %d bytes", union, lenContent)
	}
	return nil
}
