package testkit

import (
	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/syntax"
)

func (p *Parser) expression(noIn bool) syntax.Element {
	return p.binary(syntax.PrecedenceComma, noIn)
}

func (p *Parser) assignment(noIn bool) syntax.Element {
	return p.binary(syntax.PrecedenceAssignment, noIn)
}

// binary is precedence climbing over BinaryPrecedence. Assignment is right
// associative and the conditional operator binds between assignment and ||.
func (p *Parser) binary(minPrec int, noIn bool) syntax.Element {
	left := p.unary()
	for {
		k := p.kind()
		if k == syntax.QuestionToken && minPrec <= syntax.PrecedenceConditional {
			q := p.advance()
			whenTrue := p.assignment(false)
			colon := p.expect(syntax.ColonToken)
			left = p.factory.ConditionalExpression(left, q, whenTrue, colon, p.assignment(noIn))
			continue
		}
		prec := syntax.BinaryPrecedence(k)
		if prec == 0 || prec < minPrec || (noIn && k == syntax.InKeyword) {
			return left
		}
		op := p.advance()
		next := prec + 1
		if syntax.IsAssignmentOperator(k) {
			next = prec
		}
		left = p.factory.BinaryExpression(left, op, p.binary(next, noIn))
	}
}

func (p *Parser) unary() syntax.Element {
	f := p.factory
	switch k := p.kind(); {
	case syntax.IsPrefixUnaryOperator(k):
		op := p.advance()
		return f.PrefixUnaryExpression(op, p.unary())
	case k == syntax.TypeOfKeyword:
		kw := p.advance()
		return f.TypeOfExpression(kw, p.unary())
	case k == syntax.DeleteKeyword:
		kw := p.advance()
		return f.DeleteExpression(kw, p.unary())
	case k == syntax.VoidKeyword:
		kw := p.advance()
		return f.VoidExpression(kw, p.unary())
	}
	expr := p.leftHandSide()
	if (p.at(syntax.PlusPlusToken) || p.at(syntax.MinusMinusToken)) && !p.newLineBefore() {
		return f.PostfixUnaryExpression(expr, p.advance())
	}
	return expr
}

func (p *Parser) leftHandSide() syntax.Element {
	var expr syntax.Element
	if p.at(syntax.NewKeyword) {
		kw := p.advance()
		callee := p.memberChain(p.primary(), false)
		var args *syntax.Node
		if p.at(syntax.OpenParenToken) {
			args = p.argumentList()
		}
		expr = p.factory.ObjectCreationExpression(kw, callee, args)
	} else {
		expr = p.primary()
	}
	return p.memberChain(expr, true)
}

func (p *Parser) memberChain(expr syntax.Element, calls bool) syntax.Element {
	f := p.factory
	for {
		switch {
		case p.at(syntax.DotToken):
			dot := p.advance()
			expr = f.MemberAccessExpression(expr, dot, p.propertyName())
		case p.at(syntax.OpenBracketToken):
			open := p.advance()
			index := p.expression(false)
			expr = f.ElementAccessExpression(expr, open, index, p.expect(syntax.CloseBracketToken))
		case calls && p.at(syntax.OpenParenToken):
			expr = f.InvocationExpression(expr, p.argumentList())
		default:
			return expr
		}
	}
}

// propertyName accepts any identifier name, keywords included.
func (p *Parser) propertyName() *syntax.Token {
	if p.at(syntax.IdentifierName) || p.kind().IsKeyword() {
		return p.advance()
	}
	return p.expect(syntax.IdentifierName)
}

func (p *Parser) argumentList() *syntax.Node {
	open := p.advance()
	var args []syntax.Element
	if !p.at(syntax.CloseParenToken) {
		for {
			args = append(args, p.assignment(false))
			comma := p.eat(syntax.CommaToken)
			if comma == nil {
				break
			}
			args = append(args, comma)
		}
	}
	return p.factory.ArgumentList(open, syntax.NewSeparatedList(args...), p.expect(syntax.CloseParenToken))
}

func (p *Parser) primary() syntax.Element {
	f := p.factory
	switch p.kind() {
	case syntax.IdentifierName, syntax.NumericLiteral, syntax.StringLiteral, syntax.RegularExpressionLiteral,
		syntax.ThisKeyword, syntax.SuperKeyword, syntax.TrueKeyword, syntax.FalseKeyword, syntax.NullKeyword:
		return p.advance()
	case syntax.OpenParenToken:
		open := p.advance()
		expr := p.expression(false)
		return f.ParenthesizedExpression(open, expr, p.expect(syntax.CloseParenToken))
	case syntax.OpenBracketToken:
		return p.arrayLiteral()
	case syntax.OpenBraceToken:
		return p.objectLiteral()
	case syntax.FunctionKeyword:
		kw := p.advance()
		name := p.eat(syntax.IdentifierName)
		sig := p.callSignature()
		return f.FunctionExpression(kw, name, sig, p.block())
	case syntax.EndOfFileToken:
		return p.expect(syntax.IdentifierName)
	}
	p.sink.Add(diag.New(p.pos+p.tok.LeadingTriviaWidth(), p.tok.Width(), diag.TokenExpected, "expression"))
	// ';' closes the statement, anything else goes to the next token as skipped text
	if !p.at(syntax.SemicolonToken) {
		p.skip()
	}
	return syntax.NewMissingToken(syntax.IdentifierName)
}

// arrayLiteral represents holes and a trailing comma with OmittedExpression.
func (p *Parser) arrayLiteral() *syntax.Node {
	open := p.advance()
	var items []syntax.Element
	expectItem := true
	for !p.at(syntax.CloseBracketToken) && !p.at(syntax.EndOfFileToken) {
		if p.at(syntax.CommaToken) {
			if expectItem {
				items = append(items, p.factory.OmittedExpression())
			}
			items = append(items, p.advance())
			expectItem = true
			continue
		}
		if !expectItem {
			break
		}
		items = append(items, p.assignment(false))
		expectItem = false
	}
	if len(items) > 0 && expectItem {
		items = append(items, p.factory.OmittedExpression())
	}
	return p.factory.ArrayLiteralExpression(open, syntax.NewSeparatedList(items...), p.expect(syntax.CloseBracketToken))
}

func (p *Parser) objectLiteral() *syntax.Node {
	open := p.advance()
	var items []syntax.Element
	for !p.at(syntax.CloseBraceToken) && !p.at(syntax.EndOfFileToken) {
		var name *syntax.Token
		switch {
		case p.at(syntax.StringLiteral), p.at(syntax.NumericLiteral):
			name = p.advance()
		default:
			name = p.propertyName()
		}
		colon := p.expect(syntax.ColonToken)
		items = append(items, p.factory.SimplePropertyAssignment(name, colon, p.assignment(false)))
		comma := p.eat(syntax.CommaToken)
		if comma == nil {
			break
		}
		items = append(items, comma)
		if p.at(syntax.CloseBraceToken) {
			items = append(items, p.factory.OmittedExpression())
		}
	}
	return p.factory.ObjectLiteralExpression(open, syntax.NewSeparatedList(items...), p.expect(syntax.CloseBraceToken))
}
