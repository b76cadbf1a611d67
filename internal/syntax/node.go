package syntax

import (
	"fmt"
	"slices"
	"strings"
)

// Node is an immutable interior element with a fixed, kind-specific list of
// child slots.
type Node struct {
	kind   Kind
	strict bool
	slots  []Element
	data   derived
}

func newNode(kind Kind, strict bool, children []Element) *Node {
	names := slotNames(kind)
	if len(children) != len(names) {
		panic(fmt.Sprintf("syntax: %v takes %d children, got %d", kind, len(names), len(children)))
	}
	slots := make([]Element, len(children))
	for i, c := range children {
		slots[i] = normalize(c)
	}
	return &Node{kind: kind, strict: strict, slots: slots}
}

func (n *Node) isElement() {}

func (n *Node) Kind() Kind { return n.kind }

// ParsedInStrictMode reports the mode of the factory that built the node.
func (n *Node) ParsedInStrictMode() bool { return n.strict }

func (n *Node) ChildCount() int { return len(n.slots) }

func (n *Node) ChildAt(i int) Element {
	if i < 0 || i >= len(n.slots) {
		panic(fmt.Sprintf("syntax: %v child index %d out of range [0, %d)", n.kind, i, len(n.slots)))
	}
	return n.slots[i]
}

// Slot returns the child stored in the named slot. Unknown names panic.
func (n *Node) Slot(name string) Element {
	return n.slots[SlotIndex(n.kind, name)]
}

// SlotToken returns the named slot as a token, or nil.
func (n *Node) SlotToken(name string) *Token {
	t, _ := n.Slot(name).(*Token)
	return t
}

// SlotNode returns the named slot as a node, or nil.
func (n *Node) SlotNode(name string) *Node {
	c, _ := n.Slot(name).(*Node)
	return c
}

func (n *Node) FullWidth() int { return n.data.fullWidth(n) }

func (n *Node) Width() int {
	return n.FullWidth() - n.LeadingTriviaWidth() - n.TrailingTriviaWidth()
}

func (n *Node) FullText() string { return fullTextOf(n) }

func (n *Node) FirstToken() *Token { return firstTokenOf(n) }
func (n *Node) LastToken() *Token  { return lastTokenOf(n) }

func (n *Node) LeadingTrivia() TriviaList  { return leadingTriviaOf(n) }
func (n *Node) TrailingTrivia() TriviaList { return trailingTriviaOf(n) }
func (n *Node) LeadingTriviaWidth() int    { return leadingTriviaWidthOf(n) }
func (n *Node) TrailingTriviaWidth() int   { return trailingTriviaWidthOf(n) }

func (n *Node) HasSkippedText() bool            { return n.data.has(n, derivedSkipped) }
func (n *Node) HasZeroWidthToken() bool         { return n.data.has(n, derivedZeroWidth) }
func (n *Node) HasRegularExpressionToken() bool { return n.data.has(n, derivedRegex) }

func (n *Node) InsertChildrenInto(dst []Element, index int) []Element {
	return slices.Insert(dst, index, Element(n))
}

// Update returns n itself when every child is identical to the current one,
// otherwise a new node of the same kind and mode.
func (n *Node) Update(children ...Element) *Node {
	if len(children) != len(n.slots) {
		panic(fmt.Sprintf("syntax: %v update with %d children, want %d", n.kind, len(children), len(n.slots)))
	}
	same := true
	for i, c := range children {
		if normalize(c) != n.slots[i] {
			same = false
			break
		}
	}
	if same {
		return n
	}
	return newNode(n.kind, n.strict, children)
}

// ReplaceToken returns a tree in which oldToken (matched by identity) is
// replaced by newToken.
func (n *Node) ReplaceToken(oldToken, newToken *Token) *Node {
	return ReplaceToken(n, oldToken, newToken).(*Node)
}

// WithLeadingTrivia replaces the leading trivia of the first token.
func (n *Node) WithLeadingTrivia(trivia TriviaList) *Node {
	first := n.FirstToken()
	if first == nil {
		return n
	}
	return n.ReplaceToken(first, first.WithLeadingTrivia(trivia))
}

// WithTrailingTrivia replaces the trailing trivia of the last token.
func (n *Node) WithTrailingTrivia(trivia TriviaList) *Node {
	last := n.LastToken()
	if last == nil {
		return n
	}
	return n.ReplaceToken(last, last.WithTrailingTrivia(trivia))
}

// FindToken finds the token covering position, relative to the start of n.
func (n *Node) FindToken(position int) *PositionedToken {
	return FindToken(n, position)
}

func (n *Node) String() string {
	var sb strings.Builder
	sb.WriteString(n.kind.String())
	sb.WriteByte('(')
	for i, c := range n.slots {
		if i > 0 {
			sb.WriteString(", ")
		}
		if c == nil {
			sb.WriteString("nil")
			continue
		}
		fmt.Fprintf(&sb, "%v", c)
	}
	sb.WriteByte(')')
	return sb.String()
}
