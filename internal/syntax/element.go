package syntax

import (
	"fmt"
	"sync/atomic"
)

// Element is implemented by *Node, *Token, *List and *SeparatedList only.
type Element interface {
	Kind() Kind
	ChildCount() int
	// ChildAt panics when i is out of range. Optional node slots may hold nil.
	ChildAt(i int) Element

	FullWidth() int
	Width() int
	FullText() string

	FirstToken() *Token
	LastToken() *Token
	LeadingTrivia() TriviaList
	TrailingTrivia() TriviaList
	LeadingTriviaWidth() int
	TrailingTriviaWidth() int

	HasSkippedText() bool
	HasZeroWidthToken() bool
	HasRegularExpressionToken() bool

	// InsertChildrenInto inserts the element into dst at index; lists insert
	// their children instead.
	InsertChildrenInto(dst []Element, index int) []Element

	isElement()
}

// normalize turns typed nil pointers into a nil Element and nil lists into
// the canonical empty lists.
func normalize(e Element) Element {
	switch v := e.(type) {
	case *Token:
		if v == nil {
			return nil
		}
	case *Node:
		if v == nil {
			return nil
		}
	case *List:
		if v == nil {
			return EmptyList()
		}
	case *SeparatedList:
		if v == nil {
			return EmptySeparatedList()
		}
	}
	return e
}

func firstTokenOf(e Element) *Token {
	for i := range e.ChildCount() {
		if c := e.ChildAt(i); c != nil {
			if t := c.FirstToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

func lastTokenOf(e Element) *Token {
	for i := e.ChildCount() - 1; i >= 0; i-- {
		if c := e.ChildAt(i); c != nil {
			if t := c.LastToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

func fullTextOf(e Element) string {
	buf := make([]byte, 0, e.FullWidth())
	return string(appendFullText(buf, e))
}

func appendFullText(buf []byte, e Element) []byte {
	if t, ok := e.(*Token); ok {
		return append(buf, t.FullText()...)
	}
	for i := range e.ChildCount() {
		if c := e.ChildAt(i); c != nil {
			buf = appendFullText(buf, c)
		}
	}
	return buf
}

// MaxFullWidth is the largest width a node or list can cache.
const MaxFullWidth = 1<<28 - 1

const (
	derivedWidthMask uint64 = MaxFullWidth
	derivedSkipped   uint64 = 1 << 28
	derivedZeroWidth uint64 = 1 << 29
	derivedRegex     uint64 = 1 << 30
	derivedComputed  uint64 = 1 << 63
)

// derived caches fullWidth:28 | hasSkippedText | hasZeroWidthToken |
// hasRegexToken. Containers are logically immutable, so the value is
// computed once on first access; racing computations store the same bits.
type derived struct {
	bits atomic.Uint64
}

func (d *derived) load(e Element) uint64 {
	if b := d.bits.Load(); b&derivedComputed != 0 {
		return b
	}
	b := computeDerived(e) | derivedComputed
	d.bits.Store(b)
	return b
}

func (d *derived) fullWidth(e Element) int {
	return int(d.load(e) & derivedWidthMask)
}

func (d *derived) has(e Element, bit uint64) bool {
	return d.load(e)&bit != 0
}

func computeDerived(e Element) uint64 {
	width := 0
	var flags uint64
	for i := range e.ChildCount() {
		c := e.ChildAt(i)
		if c == nil {
			continue
		}
		width += c.FullWidth()
		if c.HasSkippedText() {
			flags |= derivedSkipped
		}
		if c.HasZeroWidthToken() {
			flags |= derivedZeroWidth
		}
		if c.HasRegularExpressionToken() {
			flags |= derivedRegex
		}
	}
	if width > MaxFullWidth {
		panic(fmt.Sprintf("syntax: %v full width %d does not fit in 28 bits", e.Kind(), width))
	}
	return uint64(width) | flags
}
