package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var space = NewTriviaList(Whitespace(" "))

func ident(name string) *Token {
	return NewRealizedToken(IdentifierName, TriviaList{}, name, space)
}

func punct(kind Kind) *Token {
	return NewRealizedToken(kind, TriviaList{}, TokenText(kind), space)
}

// buildIf builds: if (a) b = 1; else c;
func buildIf(f Factory) (*Node, map[string]*Token) {
	toks := map[string]*Token{
		"if": punct(IfKeyword), "(": punct(OpenParenToken), "a": ident("a"), ")": punct(CloseParenToken),
		"b": ident("b"), "=": punct(EqualsToken), "1": NewToken(NumericLiteral, "1"), ";1": punct(SemicolonToken),
		"else": punct(ElseKeyword), "c": NewToken(IdentifierName, "c"), ";2": NewToken(SemicolonToken, ""),
	}
	assign := f.BinaryExpression(toks["b"], toks["="], toks["1"])
	then := f.ExpressionStatement(assign, toks[";1"])
	elseClause := f.ElseClause(toks["else"], f.ExpressionStatement(toks["c"], toks[";2"]))
	return f.IfStatement(toks["if"], toks["("], toks["a"], toks[")"], then, elseClause), toks
}

func TestTriviaList(t *testing.T) {
	require.Equal(t, 0, TriviaList{}.Count())
	one := NewTriviaList(SingleLineComment("//x"))
	require.Equal(t, 1, one.Count())
	require.True(t, one.HasComment())
	many := NewTriviaList(Whitespace("  "), SingleLineComment("//c"), NewLine("\n"))
	require.Equal(t, 3, many.Count())
	require.Equal(t, 6, many.FullWidth())
	require.Equal(t, "  //c\n", many.FullText())
	require.True(t, many.HasNewLine())
	require.False(t, many.HasSkippedText())
	require.True(t, many.Concat(one).Equals(NewTriviaList(Whitespace("  "), SingleLineComment("//c"), NewLine("\n"), SingleLineComment("//x"))))
	require.Panics(t, func() { many.At(3) })
	require.Panics(t, func() { NewTrivia(IdentifierName, "x") })
}

func TestTriviaInfo(t *testing.T) {
	info := NewTriviaInfo(42, true, false)
	require.Equal(t, 42, info.Width())
	require.True(t, info.HasNewLine())
	require.False(t, info.HasComment())
	require.Equal(t, MaxTriviaWidth, NewTriviaInfo(MaxTriviaWidth, true, true).Width())
	require.Panics(t, func() { NewTriviaInfo(MaxTriviaWidth+1, false, false) })
}

func TestRealizedToken(t *testing.T) {
	tok := NewRealizedToken(IdentifierName, NewTriviaList(Whitespace("\t")), "abc", NewTriviaList(NewLine("\r\n")))
	require.Equal(t, RealizedToken, tok.Shape())
	require.Equal(t, 3, tok.Width())
	require.Equal(t, 1+3+2, tok.FullWidth())
	require.Equal(t, "\tabc\r\n", tok.FullText())
	require.True(t, tok.HasTrailingNewLine())

	moved := tok.WithLeadingTrivia(TriviaList{})
	require.NotSame(t, tok, moved)
	require.Equal(t, 5, moved.FullWidth())
	require.Equal(t, 6, tok.FullWidth(), "original token must not change")

	missing := NewMissingToken(CloseParenToken)
	require.True(t, missing.IsMissing())
	require.Nil(t, missing.FirstToken())
	require.True(t, missing.HasZeroWidthToken())

	require.Panics(t, func() { NewToken(WhitespaceTrivia, " ") })
	require.Panics(t, func() { NewMissingToken(ExpressionStatement) })
}

func TestTokenValues(t *testing.T) {
	tests := []struct {
		kind Kind
		text string
		want any
	}{
		{NumericLiteral, "42", 42.0},
		{NumericLiteral, "0x1F", 31.0},
		{NumericLiteral, "1.5e2", 150.0},
		{NumericLiteral, "017", 15.0},
		{StringLiteral, `'a\tb'`, "a\tb"},
		{StringLiteral, `"A\x42"`, "AB"},
		{StringLiteral, `'unterminated`, "unterminated"},
		{StringLiteral, "'line\\\ncont'", "linecont"},
		{IdentifierName, `abc`, "abc"},
		{TrueKeyword, "true", true},
		{NullKeyword, "null", nil},
	}
	for _, tt := range tests {
		tok := NewToken(tt.kind, tt.text)
		require.Equal(t, tt.want, tok.Value(), "%v %q", tt.kind, tt.text)
		require.Equal(t, tt.want, tok.Value(), "memoized value")
	}
}

// wholeTrivia materializes the slice as a single whitespace trivia.
type wholeTrivia struct{ calls int }

func (w *wholeTrivia) ScanTrivia(text []byte, _ bool) TriviaList {
	w.calls++
	return NewTriviaList(Whitespace(string(text)))
}

func TestScannedTokenShapes(t *testing.T) {
	ts := &wholeTrivia{}
	src := NewSourceText([]byte("  if foo "), ts)
	kw := NewScannedToken(src, IfKeyword, 0, NewTriviaInfo(2, false, false), 2, NewTriviaInfo(1, false, false))
	require.Equal(t, FixedWidthTokenWithLeadingAndTrailingTrivia, kw.Shape())
	require.Equal(t, "if", kw.Text())
	require.Equal(t, "  if ", kw.FullText())

	id := NewScannedToken(src, IdentifierName, 5, 0, 3, NewTriviaInfo(1, false, false))
	require.Equal(t, VariableWidthTokenWithTrailingTrivia, id.Shape())
	require.Equal(t, "foo", id.Text())
	require.Equal(t, "foo", id.ValueText())

	require.Equal(t, 0, ts.calls)
	require.Equal(t, "  ", kw.LeadingTrivia().FullText())
	require.Equal(t, " ", id.TrailingTrivia().FullText())
	require.Equal(t, 0, id.LeadingTrivia().Count())
	require.Equal(t, 2, ts.calls)

	escaped := NewScannedToken(NewSourceText([]byte(`i\u0066`), ts), IfKeyword, 0, 0, 7, 0)
	require.Equal(t, VariableWidthTokenWithNoTrivia, escaped.Shape())
	require.Equal(t, `i\u0066`, escaped.Text())
	require.Equal(t, 7, escaped.Width())
	require.Equal(t, "if", escaped.ValueText())
}

func TestNodeWidthsAndFlags(t *testing.T) {
	n, _ := buildIf(NormalModeFactory)
	sum := 0
	for i := range n.ChildCount() {
		if c := n.ChildAt(i); c != nil {
			sum += c.FullWidth()
		}
	}
	require.Equal(t, sum, n.FullWidth())
	require.Equal(t, "if ( a ) b = 1; else c;", n.FullText())
	require.Equal(t, len("if ( a ) b = 1; else c;"), n.Width())
	require.False(t, n.HasZeroWidthToken())
	require.False(t, n.ParsedInStrictMode())
	require.Equal(t, IfKeyword, n.FirstToken().Kind())
	require.Equal(t, SemicolonToken, n.LastToken().Kind())
	require.Panics(t, func() { n.ChildAt(6) })

	withMissing := NormalModeFactory.ExpressionStatement(ident("x"), NewMissingToken(SemicolonToken))
	require.True(t, withMissing.HasZeroWidthToken())
	require.Equal(t, IdentifierName, withMissing.LastToken().Kind())

	regex := NormalModeFactory.ExpressionStatement(NewToken(RegularExpressionLiteral, "/a/"), nil)
	require.True(t, regex.HasRegularExpressionToken())
	require.Nil(t, regex.Slot("semicolonToken"))

	strict, _ := buildIf(StrictModeFactory)
	require.True(t, strict.ParsedInStrictMode())
	require.True(t, StructuralEquals(n, strict))
}

func TestUpdate(t *testing.T) {
	n, toks := buildIf(NormalModeFactory)
	children := make([]Element, n.ChildCount())
	for i := range children {
		children[i] = n.ChildAt(i)
	}
	require.Same(t, n, n.Update(children...))

	children[2] = ident("z")
	updated := n.Update(children...)
	require.NotSame(t, n, updated)
	require.Same(t, toks["if"], updated.ChildAt(0))
	require.Same(t, n.ChildAt(4), updated.ChildAt(4))
	require.Same(t, n.ChildAt(5), updated.ChildAt(5))
	require.Panics(t, func() { n.Update(children[:3]...) })
}

func TestIdentityRewriter(t *testing.T) {
	n, _ := buildIf(NormalModeFactory)
	unit := NormalModeFactory.SourceUnit(NewList(n, n), NewToken(EndOfFileToken, ""))
	require.Same(t, unit, Rewrite(IdentityRewriter{}, unit))
}

func TestReplaceToken(t *testing.T) {
	n, toks := buildIf(NormalModeFactory)
	replacement := ident("d")
	replaced := n.ReplaceToken(toks["c"], replacement)

	f := NormalModeFactory
	expected := f.IfStatement(punct(IfKeyword), punct(OpenParenToken), ident("a"), punct(CloseParenToken),
		f.ExpressionStatement(f.BinaryExpression(ident("b"), punct(EqualsToken), NewToken(NumericLiteral, "1")), punct(SemicolonToken)),
		f.ElseClause(punct(ElseKeyword), f.ExpressionStatement(replacement, NewToken(SemicolonToken, ""))))
	require.True(t, StructuralEquals(expected, replaced))
	require.False(t, StructuralEquals(n, replaced))

	// everything off the path to the replaced token is shared
	for i := 0; i < 5; i++ {
		require.Same(t, n.ChildAt(i), replaced.ChildAt(i))
	}
	require.Same(t, replacement, replaced.SlotNode("elseClause").SlotNode("statement").ChildAt(0))

	require.Same(t, n, n.ReplaceToken(ident("nowhere"), replacement))
}

func TestWithTrivia(t *testing.T) {
	n, _ := buildIf(NormalModeFactory)
	lead := NewTriviaList(SingleLineComment("// hi"), NewLine("\n"))
	withLead := n.WithLeadingTrivia(lead)
	require.Equal(t, "// hi\nif ( a ) b = 1; else c;", withLead.FullText())
	withTrail := withLead.WithTrailingTrivia(NewTriviaList(NewLine("\n")))
	require.True(t, withTrail.TrailingTrivia().HasNewLine())
	require.Equal(t, n.FullWidth()+6+1, withTrail.FullWidth())
}

func TestLists(t *testing.T) {
	require.Same(t, EmptyList(), NewList())
	require.Same(t, EmptySeparatedList(), NewSeparatedList())
	require.Equal(t, 0, EmptyList().FullWidth())
	require.Nil(t, EmptyList().FirstToken())

	a, b := ident("a"), ident("b")
	single := NewList(a)
	require.Equal(t, 1, single.ChildCount())
	require.Same(t, a, single.ChildAt(0))

	sep := NewSeparatedList(a, punct(CommaToken), b)
	require.Equal(t, 2, sep.NonSeparatorCount())
	require.Equal(t, 1, sep.SeparatorCount())
	require.Equal(t, []Element{a, b}, sep.ToNonSeparatorArray())
	require.Equal(t, CommaToken, sep.SeparatorAt(0).Kind())
	require.Equal(t, a.FullWidth()*2+2, sep.FullWidth())

	require.Panics(t, func() { NewSeparatedList(a, punct(CommaToken)) })
	require.Panics(t, func() { NewSeparatedList(a, NormalModeFactory.OmittedExpression(), b) })
	require.Panics(t, func() { NewList(a, nil) })

	flat := sep.InsertChildrenInto([]Element{b}, 1)
	require.Len(t, flat, 4)
	require.Same(t, a, flat[1])
}

func TestFindTokenAndNavigation(t *testing.T) {
	n, toks := buildIf(NormalModeFactory)
	eof := NewToken(EndOfFileToken, "")
	unit := NormalModeFactory.SourceUnit(NewList(n), eof)
	text := unit.FullText()

	pos := len("if ( ")
	found := FindToken(unit, pos)
	require.Same(t, toks["a"], found.Token())
	require.Equal(t, pos, found.Start())
	require.Equal(t, IfStatement, found.ContainingNode().Node().Kind())

	require.Same(t, toks["("], found.PreviousToken().Token())
	require.Same(t, toks[")"], found.NextToken().Token())

	last := FindToken(unit, len(text))
	require.Same(t, eof, last.Token())
	require.Nil(t, last.NextToken())
	require.Same(t, toks[";2"], last.PreviousToken().Token())

	first := FindToken(unit, 0)
	require.Nil(t, first.PreviousToken())
	require.Equal(t, SourceUnit, first.Root().Element().Kind())

	require.Panics(t, func() { FindToken(unit, len(text)+1) })
	require.Panics(t, func() { FindToken(unit, -1) })

	// every token is reachable by walking forward from the first one
	count := 0
	for tok := first; tok != nil; tok = tok.NextToken() {
		count++
	}
	require.Equal(t, len(toks)+1, count)
}

func TestGetPositionedChild(t *testing.T) {
	n, toks := buildIf(NormalModeFactory)
	p := CreatePositioned(nil, n, 10)
	cond := p.GetPositionedChild(2)
	require.Same(t, toks["a"], cond.Element())
	require.Equal(t, 10+len("if ( "), cond.FullStart())
	require.Nil(t, CreatePositioned(nil, nil, 0))
}

func TestKindFacts(t *testing.T) {
	k, ok := KeywordKind("instanceof")
	require.True(t, ok)
	require.Equal(t, InstanceOfKeyword, k)
	_, ok = KeywordKind("Instanceof")
	require.False(t, ok)
	require.Equal(t, ">>>=", TokenText(GreaterThanGreaterThanGreaterThanEqualsToken))
	require.True(t, IsFixedWidth(CommaToken))
	require.False(t, IsFixedWidth(IdentifierName))
	require.Equal(t, "IfStatement", IfStatement.String())
	require.Equal(t, PrecedenceMultiplicative, BinaryPrecedence(AsteriskToken))
	require.True(t, IsAssignmentOperator(PlusEqualsToken))
	for k := FirstNode; k <= LastNode; k++ {
		require.NotEmpty(t, kindNames[k], "missing name for node kind %d", k)
	}
	require.Equal(t, 2, SlotIndex(IfStatement, "condition"))
	require.Panics(t, func() { SlotIndex(IfStatement, "nope") })
}
