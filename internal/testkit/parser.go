package testkit

import (
	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/scanner"
	"github.com/palantir/tslint-sub000/internal/source"
	"github.com/palantir/tslint-sub000/internal/syntax"
)

// Parser is a small recursive-descent parser over a statement and
// expression subset of the language. It builds trees through the node
// factory and never drops a token, so the full text of the result always
// equals the input.
type Parser struct {
	scan    *scanner.Scanner
	sink    diag.Sink
	factory syntax.Factory

	tok *syntax.Token
	pos int // full start of tok

	// trailing trivia of the token before tok; a line break ends up there
	prevTrailing syntax.TriviaInfo
}

// Parse builds a SourceUnit for file. Problems go to sink.
func Parse(file *source.File, opts scanner.Options, sink diag.Sink) *syntax.Node {
	if sink == nil {
		sink = diag.Discard
	}
	p := &Parser{
		scan:    scanner.New(file, opts),
		sink:    sink,
		factory: syntax.NormalModeFactory,
	}
	p.tok = p.scan.Scan(sink, true)
	return p.sourceUnit()
}

// ParseString parses text and collects the diagnostics.
func ParseString(text string) (*syntax.Node, []diag.Diagnostic) {
	var items []diag.Diagnostic
	sink := diag.SinkFunc(func(d diag.Diagnostic) { items = append(items, d) })
	root := Parse(source.NewVirtualFile("input.ts", text), scanner.Options{}, sink)
	return root, items
}

func (p *Parser) kind() syntax.Kind { return p.tok.Kind() }

func (p *Parser) at(k syntax.Kind) bool { return p.tok.Kind() == k }

func (p *Parser) advance() *syntax.Token {
	t := p.tok
	p.pos += t.FullWidth()
	p.prevTrailing = t.TrailingTriviaInfo()
	if t.Kind() != syntax.EndOfFileToken {
		p.tok = p.scan.Scan(p.sink, scanner.RegexAllowedAfter(t.Kind()))
	}
	return t
}

// peek scans one token ahead and puts the scanner back.
func (p *Parser) peek() *syntax.Token {
	index := p.scan.AbsoluteIndex()
	t := p.scan.Scan(diag.Discard, false)
	p.scan.SetAbsoluteIndex(index)
	return t
}

func (p *Parser) eat(k syntax.Kind) *syntax.Token {
	if p.at(k) {
		return p.advance()
	}
	return nil
}

func (p *Parser) expect(k syntax.Kind) *syntax.Token {
	if p.at(k) {
		return p.advance()
	}
	text := syntax.TokenText(k)
	if text == "" {
		text = k.String()
	}
	p.sink.Add(diag.New(p.pos+p.tok.LeadingTriviaWidth(), 0, diag.TokenExpected, text))
	return syntax.NewMissingToken(k)
}

// semicolon accepts an explicit ';' or an inserted one before '}', the end
// of input or a line break.
func (p *Parser) semicolon() *syntax.Token {
	if t := p.eat(syntax.SemicolonToken); t != nil {
		return t
	}
	if p.at(syntax.CloseBraceToken) || p.at(syntax.EndOfFileToken) || p.newLineBefore() {
		return nil
	}
	return p.expect(syntax.SemicolonToken)
}

func (p *Parser) newLineBefore() bool {
	return p.prevTrailing.HasNewLine() || p.tok.HasLeadingNewLine()
}

// skip folds the current token, trivia included, into the leading trivia of
// the next one as skipped text.
func (p *Parser) skip() {
	stray := p.advance()
	p.pos -= stray.FullWidth()
	items := stray.LeadingTrivia().ToArray()
	items = append(items, syntax.SkippedText(stray.Text()))
	items = append(items, stray.TrailingTrivia().ToArray()...)
	skipped := syntax.NewTriviaList(items...)
	p.tok = p.tok.WithLeadingTrivia(skipped.Concat(p.tok.LeadingTrivia()))
}

func (p *Parser) sourceUnit() *syntax.Node {
	var elements []syntax.Element
	for !p.at(syntax.EndOfFileToken) {
		st := p.statement()
		if len(elements) == 0 && isUseStrict(st) {
			p.factory = syntax.StrictModeFactory
			st = p.factory.Create(st.Kind(), childrenOf(st)...)
		}
		elements = append(elements, st)
	}
	return p.factory.SourceUnit(syntax.NewList(elements...), p.advance())
}

func isUseStrict(st *syntax.Node) bool {
	if st.Kind() != syntax.ExpressionStatement {
		return false
	}
	t, ok := st.Slot("expression").(*syntax.Token)
	return ok && t.Kind() == syntax.StringLiteral && t.ValueText() == "use strict"
}

func childrenOf(n *syntax.Node) []syntax.Element {
	out := make([]syntax.Element, n.ChildCount())
	for i := range out {
		out[i] = n.ChildAt(i)
	}
	return out
}

func (p *Parser) statement() *syntax.Node {
	f := p.factory
	switch p.kind() {
	case syntax.OpenBraceToken:
		return p.block()
	case syntax.VarKeyword:
		decl := p.variableDeclaration(false)
		return f.VariableStatement(nil, nil, decl, p.semicolon())
	case syntax.FunctionKeyword:
		kw := p.advance()
		sig := f.FunctionSignature(p.expect(syntax.IdentifierName), nil, p.callSignature())
		return f.FunctionDeclaration(nil, nil, kw, sig, p.block(), nil)
	case syntax.IfKeyword:
		return p.ifStatement()
	case syntax.WhileKeyword:
		kw, open := p.advance(), p.expect(syntax.OpenParenToken)
		cond := p.expression(false)
		return f.WhileStatement(kw, open, cond, p.expect(syntax.CloseParenToken), p.statement())
	case syntax.DoKeyword:
		kw := p.advance()
		body := p.statement()
		while, open := p.expect(syntax.WhileKeyword), p.expect(syntax.OpenParenToken)
		cond := p.expression(false)
		closeParen := p.expect(syntax.CloseParenToken)
		return f.DoStatement(kw, body, while, open, cond, closeParen, p.eat(syntax.SemicolonToken))
	case syntax.ForKeyword:
		return p.forStatement()
	case syntax.SwitchKeyword:
		return p.switchStatement()
	case syntax.TryKeyword:
		return p.tryStatement()
	case syntax.ReturnKeyword:
		kw := p.advance()
		var expr syntax.Element
		if !p.at(syntax.SemicolonToken) && !p.at(syntax.CloseBraceToken) && !p.at(syntax.EndOfFileToken) && !p.newLineBefore() {
			expr = p.expression(false)
		}
		return f.ReturnStatement(kw, expr, p.semicolon())
	case syntax.BreakKeyword, syntax.ContinueKeyword:
		kw := p.advance()
		var label *syntax.Token
		if p.at(syntax.IdentifierName) && !p.newLineBefore() {
			label = p.advance()
		}
		if kw.Kind() == syntax.BreakKeyword {
			return f.BreakStatement(kw, label, p.semicolon())
		}
		return f.ContinueStatement(kw, label, p.semicolon())
	case syntax.ThrowKeyword:
		kw := p.advance()
		return f.ThrowStatement(kw, p.expression(false), p.semicolon())
	case syntax.SemicolonToken:
		return f.EmptyStatement(p.advance())
	case syntax.DebuggerKeyword:
		kw := p.advance()
		return f.DebuggerStatement(kw, p.semicolon())
	case syntax.IdentifierName:
		if p.peek().Kind() == syntax.ColonToken {
			id, colon := p.advance(), p.advance()
			return f.LabeledStatement(id, colon, p.statement())
		}
	}
	expr := p.expression(false)
	return f.ExpressionStatement(expr, p.semicolon())
}

func (p *Parser) block() *syntax.Node {
	open := p.expect(syntax.OpenBraceToken)
	var statements []syntax.Element
	for !p.at(syntax.CloseBraceToken) && !p.at(syntax.EndOfFileToken) {
		statements = append(statements, p.statement())
	}
	return p.factory.Block(open, syntax.NewList(statements...), p.expect(syntax.CloseBraceToken))
}

func (p *Parser) ifStatement() *syntax.Node {
	kw, open := p.advance(), p.expect(syntax.OpenParenToken)
	cond := p.expression(false)
	closeParen := p.expect(syntax.CloseParenToken)
	then := p.statement()
	var els *syntax.Node
	if t := p.eat(syntax.ElseKeyword); t != nil {
		els = p.factory.ElseClause(t, p.statement())
	}
	return p.factory.IfStatement(kw, open, cond, closeParen, then, els)
}

func (p *Parser) forStatement() *syntax.Node {
	f := p.factory
	kw, open := p.advance(), p.expect(syntax.OpenParenToken)
	var decl *syntax.Node
	var init syntax.Element
	if p.at(syntax.VarKeyword) {
		decl = p.variableDeclaration(true)
	} else if !p.at(syntax.SemicolonToken) {
		init = p.expression(true)
	}
	if in := p.eat(syntax.InKeyword); in != nil {
		expr := p.expression(false)
		closeParen := p.expect(syntax.CloseParenToken)
		return f.ForInStatement(kw, open, decl, init, in, expr, closeParen, p.statement())
	}
	first := p.expect(syntax.SemicolonToken)
	var cond, incr syntax.Element
	if !p.at(syntax.SemicolonToken) {
		cond = p.expression(false)
	}
	second := p.expect(syntax.SemicolonToken)
	if !p.at(syntax.CloseParenToken) {
		incr = p.expression(false)
	}
	closeParen := p.expect(syntax.CloseParenToken)
	return f.ForStatement(kw, open, decl, init, first, cond, second, incr, closeParen, p.statement())
}

func (p *Parser) switchStatement() *syntax.Node {
	kw, open := p.advance(), p.expect(syntax.OpenParenToken)
	expr := p.expression(false)
	closeParen, openBrace := p.expect(syntax.CloseParenToken), p.expect(syntax.OpenBraceToken)
	var clauses []syntax.Element
	for p.at(syntax.CaseKeyword) || p.at(syntax.DefaultKeyword) {
		if p.at(syntax.CaseKeyword) {
			ck := p.advance()
			value := p.expression(false)
			colon := p.expect(syntax.ColonToken)
			clauses = append(clauses, p.factory.CaseSwitchClause(ck, value, colon, p.clauseStatements()))
			continue
		}
		dk := p.advance()
		colon := p.expect(syntax.ColonToken)
		clauses = append(clauses, p.factory.DefaultSwitchClause(dk, colon, p.clauseStatements()))
	}
	closeBrace := p.expect(syntax.CloseBraceToken)
	return p.factory.SwitchStatement(kw, open, expr, closeParen, openBrace, syntax.NewList(clauses...), closeBrace)
}

func (p *Parser) clauseStatements() *syntax.List {
	var statements []syntax.Element
	for !p.at(syntax.CaseKeyword) && !p.at(syntax.DefaultKeyword) &&
		!p.at(syntax.CloseBraceToken) && !p.at(syntax.EndOfFileToken) {
		statements = append(statements, p.statement())
	}
	return syntax.NewList(statements...)
}

func (p *Parser) tryStatement() *syntax.Node {
	f := p.factory
	kw := p.advance()
	body := p.block()
	var catch, finally *syntax.Node
	if ck := p.eat(syntax.CatchKeyword); ck != nil {
		open := p.expect(syntax.OpenParenToken)
		id := p.expect(syntax.IdentifierName)
		closeParen := p.expect(syntax.CloseParenToken)
		catch = f.CatchClause(ck, open, id, closeParen, p.block())
	}
	if fk := p.eat(syntax.FinallyKeyword); fk != nil {
		finally = f.FinallyClause(fk, p.block())
	}
	if catch == nil && finally == nil {
		catch = f.CatchClause(p.expect(syntax.CatchKeyword), syntax.NewMissingToken(syntax.OpenParenToken),
			syntax.NewMissingToken(syntax.IdentifierName), syntax.NewMissingToken(syntax.CloseParenToken),
			f.Block(syntax.NewMissingToken(syntax.OpenBraceToken), nil, syntax.NewMissingToken(syntax.CloseBraceToken)))
	}
	return f.TryStatement(kw, body, catch, finally)
}

func (p *Parser) variableDeclaration(noIn bool) *syntax.Node {
	kw := p.advance()
	var items []syntax.Element
	for {
		id := p.expect(syntax.IdentifierName)
		var init *syntax.Node
		if eq := p.eat(syntax.EqualsToken); eq != nil {
			init = p.factory.EqualsValueClause(eq, p.assignment(noIn))
		}
		items = append(items, p.factory.VariableDeclarator(id, nil, init))
		comma := p.eat(syntax.CommaToken)
		if comma == nil {
			break
		}
		items = append(items, comma)
	}
	return p.factory.VariableDeclaration(kw, syntax.NewSeparatedList(items...))
}

func (p *Parser) callSignature() *syntax.Node {
	open := p.expect(syntax.OpenParenToken)
	var params []syntax.Element
	for p.at(syntax.IdentifierName) {
		params = append(params, p.factory.Parameter(nil, nil, p.advance(), nil, nil, nil))
		comma := p.eat(syntax.CommaToken)
		if comma == nil {
			break
		}
		params = append(params, comma)
		if !p.at(syntax.IdentifierName) {
			params = append(params, p.factory.Parameter(nil, nil, p.expect(syntax.IdentifierName), nil, nil, nil))
			break
		}
	}
	list := p.factory.ParameterList(open, syntax.NewSeparatedList(params...), p.expect(syntax.CloseParenToken))
	return p.factory.CallSignature(list, nil)
}
