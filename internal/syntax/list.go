package syntax

import (
	"fmt"
	"slices"
	"strings"
)

// elements stores a list's children: none, one inline, or a slice.
type elements struct {
	one  Element
	many []Element
}

func makeElements(items []Element) elements {
	switch len(items) {
	case 0:
		return elements{}
	case 1:
		return elements{one: items[0]}
	default:
		return elements{many: slices.Clone(items)}
	}
}

func (e *elements) count() int {
	if e.many != nil {
		return len(e.many)
	}
	if e.one != nil {
		return 1
	}
	return 0
}

func (e *elements) at(kind Kind, i int) Element {
	if i < 0 || i >= e.count() {
		panic(fmt.Sprintf("syntax: %v index %d out of range [0, %d)", kind, i, e.count()))
	}
	if e.many != nil {
		return e.many[i]
	}
	return e.one
}

func (e *elements) toArray() []Element {
	switch e.count() {
	case 0:
		return nil
	case 1:
		return []Element{e.one}
	default:
		return slices.Clone(e.many)
	}
}

func (e *elements) insertInto(dst []Element, index int) []Element {
	switch e.count() {
	case 0:
		return dst
	case 1:
		return slices.Insert(dst, index, e.one)
	default:
		return slices.Insert(dst, index, e.many...)
	}
}

func (e *elements) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range e.count() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", e.at(None, i))
	}
	sb.WriteByte(']')
	return sb.String()
}

// List is an immutable sequence of nodes or tokens.
type List struct {
	items elements
	data  derived
}

var emptyList = &List{}

// EmptyList returns the shared empty list.
func EmptyList() *List { return emptyList }

// NewList returns the shared empty list for no items, otherwise a new list.
// Items must not be nil.
func NewList(items ...Element) *List {
	if len(items) == 0 {
		return emptyList
	}
	for i, it := range items {
		if normalize(it) == nil {
			panic(fmt.Sprintf("syntax: nil list item at %d", i))
		}
	}
	return &List{items: makeElements(items)}
}

func (l *List) isElement() {}

func (l *List) Kind() Kind            { return KindList }
func (l *List) ChildCount() int       { return l.items.count() }
func (l *List) ChildAt(i int) Element { return l.items.at(KindList, i) }
func (l *List) ToArray() []Element    { return l.items.toArray() }

func (l *List) FullWidth() int { return l.data.fullWidth(l) }

func (l *List) Width() int {
	return l.FullWidth() - l.LeadingTriviaWidth() - l.TrailingTriviaWidth()
}

func (l *List) FullText() string   { return fullTextOf(l) }
func (l *List) FirstToken() *Token { return firstTokenOf(l) }
func (l *List) LastToken() *Token  { return lastTokenOf(l) }

func (l *List) LeadingTrivia() TriviaList  { return leadingTriviaOf(l) }
func (l *List) TrailingTrivia() TriviaList { return trailingTriviaOf(l) }
func (l *List) LeadingTriviaWidth() int    { return leadingTriviaWidthOf(l) }
func (l *List) TrailingTriviaWidth() int   { return trailingTriviaWidthOf(l) }

func (l *List) HasSkippedText() bool            { return l.data.has(l, derivedSkipped) }
func (l *List) HasZeroWidthToken() bool         { return l.data.has(l, derivedZeroWidth) }
func (l *List) HasRegularExpressionToken() bool { return l.data.has(l, derivedRegex) }

func (l *List) InsertChildrenInto(dst []Element, index int) []Element {
	return l.items.insertInto(dst, index)
}

func (l *List) String() string { return "List" + l.items.String() }

// SeparatedList holds items at even indices and separator tokens at odd
// indices. Its child count is zero or odd.
type SeparatedList struct {
	items elements
	data  derived
}

var emptySeparatedList = &SeparatedList{}

// EmptySeparatedList returns the shared empty separated list.
func EmptySeparatedList() *SeparatedList { return emptySeparatedList }

// NewSeparatedList takes items interleaved with separators:
// item, sep, item, ..., item.
func NewSeparatedList(elements ...Element) *SeparatedList {
	if len(elements) == 0 {
		return emptySeparatedList
	}
	if len(elements)%2 == 0 {
		panic(fmt.Sprintf("syntax: separated list needs an odd number of children, got %d", len(elements)))
	}
	for i, e := range elements {
		if normalize(e) == nil {
			panic(fmt.Sprintf("syntax: nil separated list child at %d", i))
		}
		if i%2 == 1 {
			if _, ok := e.(*Token); !ok {
				panic(fmt.Sprintf("syntax: separator at %d is %v, not a token", i, e.Kind()))
			}
		}
	}
	return &SeparatedList{items: makeElements(elements)}
}

func (l *SeparatedList) isElement() {}

func (l *SeparatedList) Kind() Kind            { return KindSeparatedList }
func (l *SeparatedList) ChildCount() int       { return l.items.count() }
func (l *SeparatedList) ChildAt(i int) Element { return l.items.at(KindSeparatedList, i) }
func (l *SeparatedList) ToArray() []Element    { return l.items.toArray() }

func (l *SeparatedList) NonSeparatorCount() int { return (l.items.count() + 1) / 2 }
func (l *SeparatedList) SeparatorCount() int    { return l.items.count() / 2 }

func (l *SeparatedList) NonSeparatorAt(i int) Element {
	return l.ChildAt(i * 2)
}

func (l *SeparatedList) SeparatorAt(i int) *Token {
	return l.ChildAt(i*2 + 1).(*Token)
}

// ToNonSeparatorArray returns the items at indices 0, 2, 4, ...
func (l *SeparatedList) ToNonSeparatorArray() []Element {
	out := make([]Element, l.NonSeparatorCount())
	for i := range out {
		out[i] = l.NonSeparatorAt(i)
	}
	return out
}

func (l *SeparatedList) FullWidth() int { return l.data.fullWidth(l) }

func (l *SeparatedList) Width() int {
	return l.FullWidth() - l.LeadingTriviaWidth() - l.TrailingTriviaWidth()
}

func (l *SeparatedList) FullText() string   { return fullTextOf(l) }
func (l *SeparatedList) FirstToken() *Token { return firstTokenOf(l) }
func (l *SeparatedList) LastToken() *Token  { return lastTokenOf(l) }

func (l *SeparatedList) LeadingTrivia() TriviaList  { return leadingTriviaOf(l) }
func (l *SeparatedList) TrailingTrivia() TriviaList { return trailingTriviaOf(l) }
func (l *SeparatedList) LeadingTriviaWidth() int    { return leadingTriviaWidthOf(l) }
func (l *SeparatedList) TrailingTriviaWidth() int   { return trailingTriviaWidthOf(l) }

func (l *SeparatedList) HasSkippedText() bool            { return l.data.has(l, derivedSkipped) }
func (l *SeparatedList) HasZeroWidthToken() bool         { return l.data.has(l, derivedZeroWidth) }
func (l *SeparatedList) HasRegularExpressionToken() bool { return l.data.has(l, derivedRegex) }

func (l *SeparatedList) InsertChildrenInto(dst []Element, index int) []Element {
	return l.items.insertInto(dst, index)
}

func (l *SeparatedList) String() string { return "SeparatedList" + l.items.String() }

func leadingTriviaOf(e Element) TriviaList {
	if t := e.FirstToken(); t != nil {
		return t.LeadingTrivia()
	}
	return TriviaList{}
}

func trailingTriviaOf(e Element) TriviaList {
	if t := e.LastToken(); t != nil {
		return t.TrailingTrivia()
	}
	return TriviaList{}
}

func leadingTriviaWidthOf(e Element) int {
	if t := e.FirstToken(); t != nil {
		return t.LeadingTriviaWidth()
	}
	return 0
}

func trailingTriviaWidthOf(e Element) int {
	if t := e.LastToken(); t != nil {
		return t.TrailingTriviaWidth()
	}
	return 0
}
