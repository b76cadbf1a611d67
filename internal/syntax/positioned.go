package syntax

import "fmt"

// PositionedElement pairs an element with its absolute full start and its
// parent chain. Wrappers are built on demand while walking down from a root
// and are never stored in the tree.
type PositionedElement interface {
	Parent() PositionedElement
	Element() Element
	FullStart() int
	FullEnd() int
	Start() int
	End() int
	Root() PositionedElement
	ContainingNode() *PositionedNode
	GetPositionedChild(i int) PositionedElement
	isPositioned()
}

type positioned struct {
	parent    PositionedElement
	element   Element
	fullStart int
}

func (p positioned) isPositioned() {}

func (p positioned) Parent() PositionedElement { return p.parent }
func (p positioned) Element() Element          { return p.element }
func (p positioned) FullStart() int            { return p.fullStart }
func (p positioned) FullEnd() int              { return p.fullStart + p.element.FullWidth() }
func (p positioned) Start() int                { return p.fullStart + p.element.LeadingTriviaWidth() }
func (p positioned) End() int                  { return p.FullEnd() - p.element.TrailingTriviaWidth() }

// ContainingNode returns the nearest ancestor that is a node.
func (p positioned) ContainingNode() *PositionedNode {
	for cur := p.parent; cur != nil; cur = cur.Parent() {
		if n, ok := cur.(*PositionedNode); ok {
			return n
		}
	}
	return nil
}

func rootOf(p PositionedElement) PositionedElement {
	for p.Parent() != nil {
		p = p.Parent()
	}
	return p
}

func positionedChild(p PositionedElement, i int) PositionedElement {
	e := p.Element()
	offset := p.FullStart()
	for j := range i {
		if c := e.ChildAt(j); c != nil {
			offset += c.FullWidth()
		}
	}
	return CreatePositioned(p, e.ChildAt(i), offset)
}

type PositionedNode struct{ positioned }

func (p *PositionedNode) Node() *Node                                { return p.element.(*Node) }
func (p *PositionedNode) Root() PositionedElement                    { return rootOf(p) }
func (p *PositionedNode) GetPositionedChild(i int) PositionedElement { return positionedChild(p, i) }

type PositionedToken struct{ positioned }

func (p *PositionedToken) Token() *Token                              { return p.element.(*Token) }
func (p *PositionedToken) Root() PositionedElement                    { return rootOf(p) }
func (p *PositionedToken) GetPositionedChild(i int) PositionedElement { return positionedChild(p, i) }

// PreviousToken finds the token ending just before this one by searching
// again from the root.
func (p *PositionedToken) PreviousToken() *PositionedToken {
	if p.fullStart == 0 {
		return nil
	}
	root := p.Root()
	if p.fullStart <= root.FullStart() {
		return nil
	}
	return findToken(root, p.fullStart-1)
}

// NextToken finds the token starting right after this one. End of file has
// no next token.
func (p *PositionedToken) NextToken() *PositionedToken {
	if p.element.Kind() == EndOfFileToken {
		return nil
	}
	root := p.Root()
	end := p.FullEnd()
	if end > root.FullEnd() {
		return nil
	}
	next := findToken(root, end)
	if next == nil || (next.element == p.element && next.fullStart == p.fullStart) {
		return nil
	}
	return next
}

type PositionedList struct{ positioned }

func (p *PositionedList) List() *List                                { return p.element.(*List) }
func (p *PositionedList) Root() PositionedElement                    { return rootOf(p) }
func (p *PositionedList) GetPositionedChild(i int) PositionedElement { return positionedChild(p, i) }

type PositionedSeparatedList struct{ positioned }

func (p *PositionedSeparatedList) SeparatedList() *SeparatedList {
	return p.element.(*SeparatedList)
}
func (p *PositionedSeparatedList) Root() PositionedElement { return rootOf(p) }

func (p *PositionedSeparatedList) GetPositionedChild(i int) PositionedElement {
	return positionedChild(p, i)
}

// CreatePositioned wraps element according to its category. A nil element
// yields nil.
func CreatePositioned(parent PositionedElement, element Element, fullStart int) PositionedElement {
	base := positioned{parent: parent, element: element, fullStart: fullStart}
	switch v := element.(type) {
	case nil:
		return nil
	case *Node:
		if v == nil {
			return nil
		}
		return &PositionedNode{base}
	case *Token:
		if v == nil {
			return nil
		}
		return &PositionedToken{base}
	case *List:
		return &PositionedList{base}
	case *SeparatedList:
		return &PositionedSeparatedList{base}
	}
	panic(fmt.Sprintf("syntax: cannot position element %T", element))
}

// FindToken returns the token whose full span contains position, with its
// parent chain. position may equal root.FullWidth(), which yields the last
// token (end of file for a source unit). Other out-of-range positions panic.
func FindToken(root Element, position int) *PositionedToken {
	return findToken(CreatePositioned(nil, root, 0), position)
}

func findToken(root PositionedElement, position int) *PositionedToken {
	if position < root.FullStart() || position > root.FullEnd() {
		panic(fmt.Sprintf("syntax: position %d outside [%d, %d]", position, root.FullStart(), root.FullEnd()))
	}
	cur := root
	for cur != nil {
		if t, ok := cur.(*PositionedToken); ok {
			return t
		}
		cur = childAtPosition(cur, position)
	}
	return nil
}

func childAtPosition(p PositionedElement, position int) PositionedElement {
	e := p.Element()
	offset := p.FullStart()
	for i := range e.ChildCount() {
		c := e.ChildAt(i)
		if c == nil {
			continue
		}
		w := c.FullWidth()
		if position < offset+w {
			return CreatePositioned(p, c, offset)
		}
		offset += w
	}
	// position is the end: descend into the last child that still has a
	// token; everything after it is zero width.
	for i := e.ChildCount() - 1; i >= 0; i-- {
		c := e.ChildAt(i)
		if c != nil && c.LastToken() != nil {
			return CreatePositioned(p, c, p.FullEnd()-c.FullWidth())
		}
	}
	return nil
}
