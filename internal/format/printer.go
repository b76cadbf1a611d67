package format

import (
	"github.com/palantir/tslint-sub000/internal/syntax"
)

// DefaultIndent is the indentation unit used when none is given.
const DefaultIndent = "    "

type Options struct {
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	return o
}

// Unit returns the indentation string for one level.
func (o Options) Unit() string {
	o = o.withDefaults()
	if o.UseTabs {
		return "\t"
	}
	buf := make([]byte, o.IndentWidth)
	for i := range buf {
		buf[i] = ' '
	}
	return string(buf)
}

type printer struct {
	w *Writer
	// kind of the last token written, None at the start
	last syntax.Kind
	// suppresses the space before the next token
	glue bool
}

// PrettyPrint renders elem with structural formatting. The original trivia
// is ignored: equal trees print equal text no matter how they were built.
func PrettyPrint(elem syntax.Element, indentUnit string) string {
	if indentUnit == "" {
		indentUnit = DefaultIndent
	}
	p := &printer{w: NewWriter(indentUnit)}
	p.element(elem)
	return p.w.String()
}

// Format is PrettyPrint with the indentation taken from opt.
func Format(elem syntax.Element, opt Options) string {
	return PrettyPrint(elem, opt.Unit())
}

func (p *printer) element(e syntax.Element) {
	switch e := e.(type) {
	case nil:
	case *syntax.Token:
		p.token(e)
	case *syntax.Node:
		if e == nil {
			return
		}
		p.node(e)
	case *syntax.List:
		for i := range e.ChildCount() {
			p.element(e.ChildAt(i))
		}
	case *syntax.SeparatedList:
		for i := range e.ChildCount() {
			p.element(e.ChildAt(i))
		}
	}
}

// token writes the token text, preceded by a space when the pair needs one.
func (p *printer) token(t *syntax.Token) {
	if t == nil || t.Kind() == syntax.EndOfFileToken {
		return
	}
	text := t.Text()
	if text == "" {
		return
	}
	if (!p.glue && needsSpace(p.last, t.Kind())) || fuses(p.last, t.Kind()) {
		p.w.EnsureSpace()
	}
	p.glue = false
	p.w.WriteString(text)
	p.last = t.Kind()
}

func (p *printer) slot(n *syntax.Node, name string) {
	p.element(n.Slot(name))
}

// glued writes the slot without a space before it.
func (p *printer) glued(n *syntax.Node, name string) {
	p.glue = true
	p.element(n.Slot(name))
	p.glue = false
}

// spaced writes the slot with a space before it.
func (p *printer) spaced(n *syntax.Node, name string) {
	e := n.Slot(name)
	if e == nil || e.Width() == 0 {
		return
	}
	p.w.EnsureSpace()
	p.glue = true
	p.element(e)
	p.glue = false
}

func (p *printer) newLine() {
	p.w.EnsureNewLine()
	p.last = syntax.None
}

func (p *printer) children(n *syntax.Node) {
	for i := range n.ChildCount() {
		p.element(n.ChildAt(i))
	}
}

func (p *printer) node(n *syntax.Node) {
	switch n.Kind() {
	case syntax.SourceUnit:
		p.declarations(n.Slot("moduleElements"))
		p.newLine()
	case syntax.Block:
		p.block(n, "openBraceToken", "statements", "closeBraceToken")
	case syntax.ModuleDeclaration:
		p.slot(n, "exportKeyword")
		p.slot(n, "declareKeyword")
		p.slot(n, "moduleKeyword")
		p.slot(n, "moduleName")
		p.slot(n, "stringLiteral")
		p.braced(n, "openBraceToken", "closeBraceToken", func() { p.declarations(n.Slot("moduleElements")) })
	case syntax.ClassDeclaration:
		for _, name := range []string{"exportKeyword", "declareKeyword", "classKeyword", "identifier", "extendsClause", "implementsClause"} {
			p.slot(n, name)
		}
		p.braced(n, "openBraceToken", "closeBraceToken", func() { p.declarations(n.Slot("classElements")) })
	case syntax.ObjectType:
		p.braced(n, "openBraceToken", "closeBraceToken", func() { p.lines(n.Slot("typeMembers")) })
	case syntax.EnumDeclaration:
		p.slot(n, "exportKeyword")
		p.slot(n, "enumKeyword")
		p.slot(n, "identifier")
		p.braced(n, "openBraceToken", "closeBraceToken", func() { p.lines(n.Slot("variableDeclarators")) })
	case syntax.IfStatement:
		p.ifStatement(n)
	case syntax.ElseClause:
		p.slot(n, "elseKeyword")
		if st := n.SlotNode("statement"); st != nil && st.Kind() == syntax.IfStatement {
			p.slot(n, "statement")
			return
		}
		p.embedded(n.Slot("statement"))
	case syntax.WhileStatement, syntax.WithStatement:
		p.header(n, 4)
		p.embedded(n.Slot("statement"))
	case syntax.ForStatement, syntax.ForInStatement:
		p.header(n, n.ChildCount()-1)
		p.embedded(n.Slot("statement"))
	case syntax.DoStatement:
		p.doStatement(n)
	case syntax.SwitchStatement:
		p.switchStatement(n)
	case syntax.CaseSwitchClause, syntax.DefaultSwitchClause:
		p.switchClause(n)
	case syntax.TryStatement, syntax.CatchClause, syntax.FinallyClause:
		p.children(n)
	case syntax.LabeledStatement:
		p.slot(n, "identifier")
		p.glued(n, "colonToken")
		p.embedded(n.Slot("statement"))
	case syntax.BinaryExpression:
		p.binary(n)
	case syntax.ConditionalExpression:
		p.slot(n, "condition")
		p.spaced(n, "questionToken")
		p.slot(n, "whenTrue")
		p.spaced(n, "colonToken")
		p.slot(n, "whenFalse")
	case syntax.PrefixUnaryExpression:
		p.slot(n, "operatorToken")
		p.glued(n, "operand")
	case syntax.PostfixUnaryExpression:
		p.slot(n, "operand")
		p.glued(n, "operatorToken")
	case syntax.CastExpression:
		p.slot(n, "lessThanToken")
		p.glued(n, "type")
		p.glued(n, "greaterThanToken")
		p.glued(n, "expression")
	default:
		p.children(n)
	}
}

// declarations writes one element per line. An element ending in '}' is
// followed by a blank line.
func (p *printer) declarations(list syntax.Element) {
	if list == nil {
		return
	}
	var prev syntax.Element
	for i := range list.ChildCount() {
		e := list.ChildAt(i)
		if prev != nil {
			for range newLineCountBetween(prev, e) - 1 {
				p.w.EnsureNewLine()
				p.w.NewLine()
			}
		}
		p.newLine()
		p.element(e)
		prev = e
	}
}

func newLineCountBetween(prev, next syntax.Element) int {
	if last := prev.LastToken(); last != nil && last.Kind() == syntax.CloseBraceToken {
		return 2
	}
	return 1
}

// lines writes each item of a list on its own line; separators stay at the
// end of the line they follow.
func (p *printer) lines(list syntax.Element) {
	if list == nil {
		return
	}
	for i := range list.ChildCount() {
		e := list.ChildAt(i)
		if t, ok := e.(*syntax.Token); ok && (t.Kind() == syntax.CommaToken || t.Kind() == syntax.SemicolonToken) {
			p.element(e)
			continue
		}
		p.newLine()
		p.element(e)
	}
}

// braced writes open, then the body indented, then close on its own line at
// the caller's indentation.
func (p *printer) braced(n *syntax.Node, open, close string, body func()) {
	p.spaced(n, open)
	p.w.IndentPush()
	body()
	p.w.IndentPop()
	p.newLine()
	p.slot(n, close)
}

func (p *printer) block(n *syntax.Node, open, statements, close string) {
	p.braced(n, open, close, func() { p.lines(n.Slot(statements)) })
}

// embedded writes the statement of a control construct: a block stays on
// the current line, anything else goes indented on the next one.
func (p *printer) embedded(st syntax.Element) {
	if st == nil {
		return
	}
	if n, ok := st.(*syntax.Node); ok && n.Kind() == syntax.Block {
		p.element(st)
		return
	}
	p.w.IndentPush()
	p.newLine()
	p.element(st)
	p.w.IndentPop()
}

// header writes the first count children of a control statement.
func (p *printer) header(n *syntax.Node, count int) {
	for i := range count {
		p.element(n.ChildAt(i))
	}
}

func (p *printer) ifStatement(n *syntax.Node) {
	p.header(n, 4)
	p.embedded(n.Slot("statement"))
	els := n.SlotNode("elseClause")
	if els == nil {
		return
	}
	if st := n.SlotNode("statement"); st != nil && st.Kind() == syntax.Block {
		p.w.EnsureSpace()
	} else {
		p.newLine()
	}
	p.element(els)
}

func (p *printer) doStatement(n *syntax.Node) {
	p.slot(n, "doKeyword")
	p.embedded(n.Slot("statement"))
	if st := n.SlotNode("statement"); st == nil || st.Kind() != syntax.Block {
		p.newLine()
	}
	for _, name := range []string{"whileKeyword", "openParenToken", "condition", "closeParenToken", "semicolonToken"} {
		p.slot(n, name)
	}
}

func (p *printer) switchStatement(n *syntax.Node) {
	p.header(n, 4)
	p.braced(n, "openBraceToken", "closeBraceToken", func() { p.lines(n.Slot("switchClauses")) })
}

func (p *printer) switchClause(n *syntax.Node) {
	if n.Kind() == syntax.CaseSwitchClause {
		p.slot(n, "caseKeyword")
		p.slot(n, "expression")
	} else {
		p.slot(n, "defaultKeyword")
	}
	p.glued(n, "colonToken")
	p.w.IndentPush()
	p.lines(n.Slot("statements"))
	p.w.IndentPop()
}

// binary spaces every operator except the comma operator.
func (p *printer) binary(n *syntax.Node) {
	p.slot(n, "left")
	if op := n.SlotToken("operatorToken"); op != nil && op.Kind() == syntax.CommaToken {
		p.glued(n, "operatorToken")
	} else {
		p.spaced(n, "operatorToken")
	}
	p.w.EnsureSpace()
	p.glued(n, "right")
}

// CheckRoundTrip prints tree, reparses the output and prints the result
// again; both renderings must be identical.
func CheckRoundTrip(tree syntax.Element, reparse func(text string) (syntax.Element, error), indentUnit string) (ok bool, msg string) {
	first := PrettyPrint(tree, indentUnit)
	again, err := reparse(first)
	if err != nil {
		return false, "fmt-check: reparse failed: " + err.Error()
	}
	if second := PrettyPrint(again, indentUnit); second != first {
		return false, "fmt-check: output changed after reparse"
	}
	return true, "fmt-check: OK"
}
