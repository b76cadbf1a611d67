package syntax

import "fmt"

// Rewriter produces a new tree from an old one. Implementations call
// VisitChildren (or Rewrite on individual children) to descend; untouched
// subtrees are returned by reference and therefore shared with the input.
type Rewriter interface {
	VisitToken(t *Token) *Token
	// VisitNode may return a different element kind, e.g. a token.
	VisitNode(n *Node) Element
}

// Rewrite dispatches e to r. A nil element stays nil.
func Rewrite(r Rewriter, e Element) Element {
	switch v := e.(type) {
	case nil:
		return nil
	case *Token:
		if v == nil {
			return nil
		}
		if t := r.VisitToken(v); t != nil {
			return t
		}
		return nil
	case *Node:
		if v == nil {
			return nil
		}
		return r.VisitNode(v)
	case *List:
		return VisitList(r, v)
	case *SeparatedList:
		return VisitSeparatedList(r, v)
	}
	panic(fmt.Sprintf("syntax: cannot rewrite element %T", e))
}

// VisitChildren rewrites every child of n and rebuilds n through Update, so
// n itself comes back when nothing changed.
func VisitChildren(r Rewriter, n *Node) *Node {
	var children []Element
	for i, c := range n.slots {
		visited := Rewrite(r, c)
		if children == nil {
			if visited == c {
				continue
			}
			children = make([]Element, len(n.slots))
			copy(children, n.slots[:i])
		}
		children[i] = visited
	}
	if children == nil {
		return n
	}
	return n.Update(children...)
}

// VisitList rewrites the items of l. A new list is allocated only after the
// first item that changes; the unchanged prefix is copied at that point.
func VisitList(r Rewriter, l *List) *List {
	if l == nil {
		return EmptyList()
	}
	var out []Element
	for i := range l.ChildCount() {
		item := l.ChildAt(i)
		visited := Rewrite(r, item)
		if visited == nil {
			panic(fmt.Sprintf("syntax: rewriter removed list item %d", i))
		}
		if out == nil {
			if visited == item {
				continue
			}
			out = make([]Element, 0, l.ChildCount())
			for j := range i {
				out = append(out, l.ChildAt(j))
			}
		}
		out = append(out, visited)
	}
	if out == nil {
		return l
	}
	return NewList(out...)
}

// VisitSeparatedList is VisitList for separated lists. Separators must stay
// tokens.
func VisitSeparatedList(r Rewriter, l *SeparatedList) *SeparatedList {
	if l == nil {
		return EmptySeparatedList()
	}
	var out []Element
	for i := range l.ChildCount() {
		item := l.ChildAt(i)
		visited := Rewrite(r, item)
		if visited == nil {
			panic(fmt.Sprintf("syntax: rewriter removed separated list child %d", i))
		}
		if out == nil {
			if visited == item {
				continue
			}
			out = make([]Element, 0, l.ChildCount())
			for j := range i {
				out = append(out, l.ChildAt(j))
			}
		}
		out = append(out, visited)
	}
	if out == nil {
		return l
	}
	return NewSeparatedList(out...)
}

// IdentityRewriter visits the whole tree and changes nothing; Rewrite with
// it returns the original root.
type IdentityRewriter struct{}

func (IdentityRewriter) VisitToken(t *Token) *Token { return t }

func (r IdentityRewriter) VisitNode(n *Node) Element { return VisitChildren(r, n) }

// tokenReplacer swaps one token, matched by identity. Once the target has
// been found every further visit returns its input without descending.
type tokenReplacer struct {
	target      *Token
	replacement *Token
}

func (r *tokenReplacer) VisitToken(t *Token) *Token {
	if r.target != nil && t == r.target {
		r.target = nil
		return r.replacement
	}
	return t
}

func (r *tokenReplacer) VisitNode(n *Node) Element {
	if r.target == nil {
		return n
	}
	return VisitChildren(r, n)
}

// ReplaceToken returns root with oldToken replaced by newToken. When
// oldToken does not occur in root, root is returned.
func ReplaceToken(root Element, oldToken, newToken *Token) Element {
	if oldToken == nil {
		return root
	}
	return Rewrite(&tokenReplacer{target: oldToken, replacement: newToken}, root)
}
