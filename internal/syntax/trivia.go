package syntax

import (
	"fmt"
	"strings"
)

// Trivia is whitespace, a line break, a comment or skipped text attached to
// a token. It owns its text.
type Trivia struct {
	kind Kind
	text string
}

// NewTrivia panics if kind is not a trivia kind.
func NewTrivia(kind Kind, text string) Trivia {
	if !kind.IsTrivia() {
		panic(fmt.Sprintf("syntax: %v is not a trivia kind", kind))
	}
	return Trivia{kind: kind, text: text}
}

func Whitespace(text string) Trivia        { return NewTrivia(WhitespaceTrivia, text) }
func NewLine(text string) Trivia           { return NewTrivia(NewLineTrivia, text) }
func SingleLineComment(text string) Trivia { return NewTrivia(SingleLineCommentTrivia, text) }
func SkippedText(text string) Trivia       { return NewTrivia(SkippedTokenTrivia, text) }

func (t Trivia) Kind() Kind       { return t.kind }
func (t Trivia) FullText() string { return t.text }
func (t Trivia) FullWidth() int   { return len(t.text) }

func (t Trivia) IsWhitespace() bool  { return t.kind == WhitespaceTrivia }
func (t Trivia) IsNewLine() bool     { return t.kind == NewLineTrivia }
func (t Trivia) IsSkippedText() bool { return t.kind == SkippedTokenTrivia }
func (t Trivia) IsComment() bool {
	return t.kind == SingleLineCommentTrivia || t.kind == MultiLineCommentTrivia
}

func (t Trivia) String() string {
	return fmt.Sprintf("%v(%q)", t.kind, t.text)
}

// TriviaList is an immutable sequence of trivia. The zero value is the empty
// list and a single item is kept inline without a backing slice.
type TriviaList struct {
	one  Trivia
	many []Trivia
}

// NewTriviaList copies items into a new list.
func NewTriviaList(items ...Trivia) TriviaList {
	switch len(items) {
	case 0:
		return TriviaList{}
	case 1:
		return TriviaList{one: items[0]}
	default:
		many := make([]Trivia, len(items))
		copy(many, items)
		return TriviaList{many: many}
	}
}

func (l TriviaList) Count() int {
	if l.many != nil {
		return len(l.many)
	}
	if l.one.kind != None {
		return 1
	}
	return 0
}

// At panics when i is out of range.
func (l TriviaList) At(i int) Trivia {
	if i < 0 || i >= l.Count() {
		panic(fmt.Sprintf("syntax: trivia index %d out of range [0, %d)", i, l.Count()))
	}
	if l.many != nil {
		return l.many[i]
	}
	return l.one
}

func (l TriviaList) Last() (Trivia, bool) {
	n := l.Count()
	if n == 0 {
		return Trivia{}, false
	}
	return l.At(n - 1), true
}

// ToArray returns a fresh slice of the items.
func (l TriviaList) ToArray() []Trivia {
	switch n := l.Count(); n {
	case 0:
		return nil
	case 1:
		return []Trivia{l.one}
	default:
		out := make([]Trivia, n)
		copy(out, l.many)
		return out
	}
}

func (l TriviaList) FullWidth() int {
	w := 0
	for i := range l.Count() {
		w += l.At(i).FullWidth()
	}
	return w
}

func (l TriviaList) FullText() string {
	switch l.Count() {
	case 0:
		return ""
	case 1:
		return l.one.text
	}
	var sb strings.Builder
	for _, t := range l.many {
		sb.WriteString(t.text)
	}
	return sb.String()
}

func (l TriviaList) any(pred func(Trivia) bool) bool {
	for i := range l.Count() {
		if pred(l.At(i)) {
			return true
		}
	}
	return false
}

func (l TriviaList) HasComment() bool     { return l.any(Trivia.IsComment) }
func (l TriviaList) HasNewLine() bool     { return l.any(Trivia.IsNewLine) }
func (l TriviaList) HasSkippedText() bool { return l.any(Trivia.IsSkippedText) }

// Concat returns a list with the items of l followed by those of other.
func (l TriviaList) Concat(other TriviaList) TriviaList {
	if other.Count() == 0 {
		return l
	}
	if l.Count() == 0 {
		return other
	}
	return NewTriviaList(append(l.ToArray(), other.ToArray()...)...)
}

// Equals compares kinds and texts item by item.
func (l TriviaList) Equals(other TriviaList) bool {
	if l.Count() != other.Count() {
		return false
	}
	for i := range l.Count() {
		if l.At(i) != other.At(i) {
			return false
		}
	}
	return true
}

const (
	triviaNewLineBit = 1 << iota
	triviaCommentBit
	triviaWidthShift = iota

	// MaxTriviaWidth is the largest width a packed TriviaInfo can hold.
	MaxTriviaWidth = 1<<28 - 1
)

// TriviaInfo is the packed summary the scanner records for a run of trivia:
// width:28 | hasComment:1 | hasNewLine:1.
type TriviaInfo uint32

// NewTriviaInfo panics when width does not fit in 28 bits.
func NewTriviaInfo(width int, hasNewLine, hasComment bool) TriviaInfo {
	if width < 0 || width > MaxTriviaWidth {
		panic(fmt.Sprintf("syntax: trivia width %d does not fit in 28 bits", width))
	}
	info := TriviaInfo(width) << triviaWidthShift
	if hasNewLine {
		info |= triviaNewLineBit
	}
	if hasComment {
		info |= triviaCommentBit
	}
	return info
}

// TriviaInfoOf summarizes a realized list.
func TriviaInfoOf(l TriviaList) TriviaInfo {
	return NewTriviaInfo(l.FullWidth(), l.HasNewLine(), l.HasComment())
}

func (i TriviaInfo) Width() int       { return int(i >> triviaWidthShift) }
func (i TriviaInfo) HasNewLine() bool { return i&triviaNewLineBit != 0 }
func (i TriviaInfo) HasComment() bool { return i&triviaCommentBit != 0 }
