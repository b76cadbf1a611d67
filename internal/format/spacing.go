package format

import "github.com/palantir/tslint-sub000/internal/syntax"

// needsSpace decides whether two adjacent tokens are written with a space
// between them. Nodes with their own policy override it through glue.
func needsSpace(prev, next syntax.Kind) bool {
	switch prev {
	case syntax.None, syntax.OpenParenToken, syntax.OpenBracketToken, syntax.DotToken,
		syntax.DotDotDotToken, syntax.ExclamationToken, syntax.TildeToken:
		return false
	}
	switch next {
	case syntax.CommaToken, syntax.SemicolonToken, syntax.CloseParenToken, syntax.CloseBracketToken,
		syntax.DotToken, syntax.ColonToken, syntax.QuestionToken:
		return false
	case syntax.OpenParenToken, syntax.OpenBracketToken:
		return !isCallee(prev)
	case syntax.CloseBraceToken:
		return prev != syntax.OpenBraceToken
	}
	return true
}

// isCallee reports whether an opening paren or bracket after prev belongs
// to a call, an index or a parameter list rather than a new expression.
func isCallee(prev syntax.Kind) bool {
	switch prev {
	case syntax.IdentifierName, syntax.StringLiteral, syntax.CloseParenToken, syntax.CloseBracketToken,
		syntax.ThisKeyword, syntax.SuperKeyword, syntax.FunctionKeyword, syntax.ConstructorKeyword,
		syntax.RequireKeyword, syntax.QuestionToken,
		syntax.AnyKeyword, syntax.BoolKeyword, syntax.BooleanKeyword, syntax.NumberKeyword, syntax.StringKeyword:
		return true
	}
	return false
}

// fuses reports whether prev written right before next would scan as a
// different token, as in "- -y" turning into "--y".
func fuses(prev, next syntax.Kind) bool {
	switch prev {
	case syntax.PlusToken, syntax.PlusPlusToken:
		return next == syntax.PlusToken || next == syntax.PlusPlusToken || next == syntax.PlusEqualsToken
	case syntax.MinusToken, syntax.MinusMinusToken:
		return next == syntax.MinusToken || next == syntax.MinusMinusToken || next == syntax.MinusEqualsToken
	}
	return false
}
