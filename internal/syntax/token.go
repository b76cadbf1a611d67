package syntax

import (
	"fmt"
	"slices"
	"sync/atomic"
)

// Shape names the storage layout of a token. Scanned tokens use one of the
// eight (fixed or variable width) x (leading trivia) x (trailing trivia)
// layouts; tokens built or edited in memory are realized.
type Shape uint8

const (
	FixedWidthTokenWithNoTrivia Shape = iota
	FixedWidthTokenWithLeadingTrivia
	FixedWidthTokenWithTrailingTrivia
	FixedWidthTokenWithLeadingAndTrailingTrivia
	VariableWidthTokenWithNoTrivia
	VariableWidthTokenWithLeadingTrivia
	VariableWidthTokenWithTrailingTrivia
	VariableWidthTokenWithLeadingAndTrailingTrivia
	RealizedToken
)

var shapeNames = [...]string{
	"FixedWidthTokenWithNoTrivia",
	"FixedWidthTokenWithLeadingTrivia",
	"FixedWidthTokenWithTrailingTrivia",
	"FixedWidthTokenWithLeadingAndTrailingTrivia",
	"VariableWidthTokenWithNoTrivia",
	"VariableWidthTokenWithLeadingTrivia",
	"VariableWidthTokenWithTrailingTrivia",
	"VariableWidthTokenWithLeadingAndTrailingTrivia",
	"RealizedToken",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

const (
	layoutLeading uint8 = 1 << iota
	layoutTrailing
	layoutVariableWidth
	layoutRealized
)

// Token is an immutable leaf of the tree.
//
// A scanned token keeps only a window into the shared SourceText: its full
// start, the packed trivia summaries and the text width. Trivia objects are
// produced on demand by re-scanning. A realized token owns its text and its
// trivia lists. Text and value are memoized on first use.
type Token struct {
	kind   Kind
	layout uint8

	// scanned form
	src       *SourceText
	fullStart int
	leading   TriviaInfo
	trailing  TriviaInfo
	width     int

	// realized form
	text         string
	leadingList  TriviaList
	trailingList TriviaList
	hasSkipped   bool

	textMemo  atomic.Pointer[string]
	valueMemo atomic.Pointer[tokenValue]
}

type tokenValue struct{ v any }

// NewScannedToken builds a token over src. Keyword and punctuator kinds whose
// width differs from their fixed text (escaped keywords) are stored as
// variable width.
func NewScannedToken(src *SourceText, kind Kind, fullStart int, leading TriviaInfo, width int, trailing TriviaInfo) *Token {
	t := &Token{
		kind:      kind,
		src:       src,
		fullStart: fullStart,
		leading:   leading,
		trailing:  trailing,
		width:     width,
	}
	if !IsFixedWidth(kind) || width != len(TokenText(kind)) {
		t.layout |= layoutVariableWidth
	}
	if leading.Width() > 0 {
		t.layout |= layoutLeading
	}
	if trailing.Width() > 0 {
		t.layout |= layoutTrailing
	}
	return t
}

// NewScannedTokenText is NewScannedToken with the text already known, e.g.
// an interned identifier. text must equal the source slice it covers.
func NewScannedTokenText(src *SourceText, kind Kind, fullStart int, leading TriviaInfo, text string, trailing TriviaInfo) *Token {
	t := NewScannedToken(src, kind, fullStart, leading, len(text), trailing)
	if t.layout&layoutVariableWidth != 0 {
		t.textMemo.Store(&text)
	}
	return t
}

// NewRealizedToken builds a token that owns its text and trivia. It panics
// if kind is not a token kind.
func NewRealizedToken(kind Kind, leading TriviaList, text string, trailing TriviaList) *Token {
	if !kind.IsToken() {
		panic(fmt.Sprintf("syntax: %v is not a token kind", kind))
	}
	t := &Token{
		kind:         kind,
		layout:       layoutRealized,
		text:         text,
		width:        len(text),
		leadingList:  leading,
		trailingList: trailing,
		leading:      TriviaInfoOf(leading),
		trailing:     TriviaInfoOf(trailing),
		hasSkipped:   leading.HasSkippedText() || trailing.HasSkippedText(),
	}
	if !IsFixedWidth(kind) || text != TokenText(kind) {
		t.layout |= layoutVariableWidth
	}
	if t.leading.Width() > 0 {
		t.layout |= layoutLeading
	}
	if t.trailing.Width() > 0 {
		t.layout |= layoutTrailing
	}
	return t
}

// NewToken builds a trivia-free token. An empty text on a fixed-width kind
// takes the kind's text.
func NewToken(kind Kind, text string) *Token {
	if text == "" {
		text = TokenText(kind)
	}
	return NewRealizedToken(kind, TriviaList{}, text, TriviaList{})
}

// NewMissingToken builds the zero-width token a parser inserts for a token
// it expected but did not find.
func NewMissingToken(kind Kind) *Token {
	return NewRealizedToken(kind, TriviaList{}, "", TriviaList{})
}

// Identifier is a shorthand for an IdentifierName token.
func Identifier(name string) *Token {
	return NewToken(IdentifierName, name)
}

func (t *Token) isElement() {}

func (t *Token) Kind() Kind { return t.kind }

func (t *Token) Shape() Shape {
	if t.layout&layoutRealized != 0 {
		return RealizedToken
	}
	return Shape(t.layout &^ layoutRealized)
}

func (t *Token) IsRealized() bool { return t.layout&layoutRealized != 0 }

// IsMissing reports a zero-width token other than end of file.
func (t *Token) IsMissing() bool {
	return t.kind != EndOfFileToken && t.FullWidth() == 0
}

func (t *Token) Width() int { return t.width }

func (t *Token) FullWidth() int {
	return t.leading.Width() + t.width + t.trailing.Width()
}

func (t *Token) LeadingTriviaWidth() int  { return t.leading.Width() }
func (t *Token) TrailingTriviaWidth() int { return t.trailing.Width() }

func (t *Token) HasLeadingTrivia() bool   { return t.leading.Width() > 0 }
func (t *Token) HasTrailingTrivia() bool  { return t.trailing.Width() > 0 }
func (t *Token) HasLeadingComment() bool  { return t.leading.HasComment() }
func (t *Token) HasTrailingComment() bool { return t.trailing.HasComment() }
func (t *Token) HasLeadingNewLine() bool  { return t.leading.HasNewLine() }
func (t *Token) HasTrailingNewLine() bool { return t.trailing.HasNewLine() }

// LeadingTriviaInfo returns the packed leading trivia summary.
func (t *Token) LeadingTriviaInfo() TriviaInfo  { return t.leading }
func (t *Token) TrailingTriviaInfo() TriviaInfo { return t.trailing }

// Text returns the token text without trivia.
func (t *Token) Text() string {
	if t.layout&layoutRealized != 0 {
		return t.text
	}
	if t.layout&layoutVariableWidth == 0 {
		return TokenText(t.kind)
	}
	if p := t.textMemo.Load(); p != nil {
		return *p
	}
	start := t.fullStart + t.leading.Width()
	s := t.src.String(start, start+t.width)
	t.textMemo.CompareAndSwap(nil, &s)
	return *t.textMemo.Load()
}

// FullText returns the text including leading and trailing trivia.
func (t *Token) FullText() string {
	if t.layout&layoutRealized != 0 {
		return t.leadingList.FullText() + t.text + t.trailingList.FullText()
	}
	return t.src.String(t.fullStart, t.fullStart+t.FullWidth())
}

// LeadingTrivia materializes the leading trivia. For scanned tokens this
// re-scans the trivia text on every call.
func (t *Token) LeadingTrivia() TriviaList {
	if t.layout&layoutRealized != 0 {
		return t.leadingList
	}
	if t.layout&layoutLeading == 0 {
		return TriviaList{}
	}
	return t.src.trivia.ScanTrivia(t.src.Slice(t.fullStart, t.fullStart+t.leading.Width()), false)
}

// TrailingTrivia materializes the trailing trivia.
func (t *Token) TrailingTrivia() TriviaList {
	if t.layout&layoutRealized != 0 {
		return t.trailingList
	}
	if t.layout&layoutTrailing == 0 {
		return TriviaList{}
	}
	start := t.fullStart + t.leading.Width() + t.width
	return t.src.trivia.ScanTrivia(t.src.Slice(start, start+t.trailing.Width()), true)
}

// Value returns the parsed value: decoded names for identifiers and
// keywords, decoded strings, float64 for numbers, bool for true/false and
// nil for null.
func (t *Token) Value() any {
	if p := t.valueMemo.Load(); p != nil {
		return p.v
	}
	t.valueMemo.CompareAndSwap(nil, &tokenValue{v: computeValue(t.kind, t.Text())})
	return t.valueMemo.Load().v
}

// ValueText returns Value formatted as text.
func (t *Token) ValueText() string {
	return valueText(t.Value())
}

// WithLeadingTrivia returns a realized copy with the given leading trivia.
func (t *Token) WithLeadingTrivia(leading TriviaList) *Token {
	return NewRealizedToken(t.kind, leading, t.Text(), t.TrailingTrivia())
}

// WithTrailingTrivia returns a realized copy with the given trailing trivia.
func (t *Token) WithTrailingTrivia(trailing TriviaList) *Token {
	return NewRealizedToken(t.kind, t.LeadingTrivia(), t.Text(), trailing)
}

// Realize returns a realized token with the same text and trivia.
func (t *Token) Realize() *Token {
	if t.IsRealized() {
		return t
	}
	return NewRealizedToken(t.kind, t.LeadingTrivia(), t.Text(), t.TrailingTrivia())
}

func (t *Token) ChildCount() int { return 0 }

func (t *Token) ChildAt(i int) Element {
	panic(fmt.Sprintf("syntax: token %v has no child %d", t.kind, i))
}

func (t *Token) FirstToken() *Token {
	if t.FullWidth() > 0 || t.kind == EndOfFileToken {
		return t
	}
	return nil
}

func (t *Token) LastToken() *Token { return t.FirstToken() }

func (t *Token) HasSkippedText() bool { return t.hasSkipped }

func (t *Token) HasZeroWidthToken() bool { return t.IsMissing() }

func (t *Token) HasRegularExpressionToken() bool { return t.kind == RegularExpressionLiteral }

func (t *Token) InsertChildrenInto(dst []Element, index int) []Element {
	return slices.Insert(dst, index, Element(t))
}

func (t *Token) String() string {
	return fmt.Sprintf("%v %q", t.kind, t.Text())
}
