package testkit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/scanner"
	"github.com/palantir/tslint-sub000/internal/source"
	"github.com/palantir/tslint-sub000/internal/syntax"
)

var corpus = []string{
	"",
	"var a = 1, b;\n",
	"// lead\nfunction f(x, y) {\r\n  return x /* mid */ + y\r\n}\n",
	"if (a) b(); else { c = /r[/]e/g.exec(d)[0] }",
	"for (var i = 0; i < 10; i++) { if (i % 2) continue; s += i }",
	"switch (k) { case 1: break; default: k = -k }",
	"try { t() } catch (e) { throw e } finally { done = true }",
	"o = { a: [1, , 2], 'b': function () { return this } };",
	// ошибки: дерево всё равно должно покрывать весь текст
	"if (a b",
	"x = ;",
	"var = 3 @",
	"'open\nfoo(",
}

func TestParseIsLossless(t *testing.T) {
	for _, src := range corpus {
		root, _ := ParseString(src)
		require.Equal(t, src, root.FullText())
		require.Equal(t, len(src), root.FullWidth())
		require.NoError(t, CheckWidths(root), "input %q", src)
	}
}

func TestTokenSpans(t *testing.T) {
	for _, src := range corpus {
		file := source.NewVirtualFile("t.ts", src)
		tokens := scanner.New(file, scanner.Options{}).ScanAll(nil)
		require.NoError(t, CheckTokenSpans(file, tokens), "input %q", src)
	}
}

func TestCheckTokenSpansRejectsGaps(t *testing.T) {
	file := source.NewVirtualFile("t.ts", "a b")
	tokens := scanner.New(file, scanner.Options{}).ScanAll(nil)
	require.Error(t, CheckTokenSpans(file, tokens[1:]))
	require.Error(t, CheckTokenSpans(file, tokens[:len(tokens)-1]))
}

func TestParseShapes(t *testing.T) {
	root, diags := ParseString("x = a ? b : c, d;")
	require.Empty(t, diags)
	st := root.Slot("moduleElements").ChildAt(0).(*syntax.Node)
	require.Equal(t, syntax.ExpressionStatement, st.Kind())

	comma := st.SlotNode("expression")
	require.Equal(t, syntax.BinaryExpression, comma.Kind())
	require.Equal(t, syntax.CommaToken, comma.SlotToken("operatorToken").Kind())

	assign := comma.SlotNode("left")
	require.Equal(t, syntax.EqualsToken, assign.SlotToken("operatorToken").Kind())
	require.Equal(t, syntax.ConditionalExpression, assign.SlotNode("right").Kind())
}

func TestParseRegexVersusDivide(t *testing.T) {
	root, diags := ParseString("a = b / c / d; e = /x/g;")
	require.Empty(t, diags)
	require.True(t, root.HasRegularExpressionToken())

	first := root.Slot("moduleElements").ChildAt(0)
	require.False(t, first.HasRegularExpressionToken())
}

func TestParseReportsMissingTokens(t *testing.T) {
	root, diags := ParseString("if (a b")
	require.NotEmpty(t, diags)
	require.Equal(t, diag.TokenExpected, diags[0].Code)
	require.Equal(t, []string{")"}, diags[0].Args)
	require.Equal(t, 6, diags[0].Position)
	require.True(t, root.HasZeroWidthToken())
}

func TestParseStrictMode(t *testing.T) {
	root, _ := ParseString("'use strict'; x = 1;")
	require.True(t, root.ParsedInStrictMode())
	for i := range root.Slot("moduleElements").ChildCount() {
		require.True(t, root.Slot("moduleElements").ChildAt(i).(*syntax.Node).ParsedInStrictMode())
	}

	root, _ = ParseString("x = 1; 'use strict';")
	require.False(t, root.ParsedInStrictMode())
}

func TestParseLabel(t *testing.T) {
	root, diags := ParseString("outer: for (;;) break outer;")
	require.Empty(t, diags)
	st := root.Slot("moduleElements").ChildAt(0).(*syntax.Node)
	require.Equal(t, syntax.LabeledStatement, st.Kind())
	require.Equal(t, "outer", st.SlotToken("identifier").Text())
}

func TestCheckWidthsCatchesBadLists(t *testing.T) {
	require.Error(t, CheckWidths(nil))
	require.NoError(t, CheckWidths(syntax.Identifier("a")))
}

func statements(root *syntax.Node) []*syntax.Node {
	list := root.Slot("moduleElements")
	out := make([]*syntax.Node, list.ChildCount())
	for i := range out {
		out[i] = list.ChildAt(i).(*syntax.Node)
	}
	return out
}

func TestParseLineBreakEndsStatement(t *testing.T) {
	root, diags := ParseString("a\nb")
	require.Empty(t, diags)
	require.Len(t, statements(root), 2)

	root, diags = ParseString("return\nx")
	require.Empty(t, diags)
	sts := statements(root)
	require.Len(t, sts, 2)
	require.Equal(t, syntax.ReturnStatement, sts[0].Kind())
	require.Nil(t, sts[0].SlotNode("expression"))
	require.Nil(t, sts[0].SlotToken("expression"))

	// "++" после перевода строки относится к следующему выражению
	root, diags = ParseString("i\n++j")
	require.Empty(t, diags)
	sts = statements(root)
	require.Len(t, sts, 2)
	require.Equal(t, syntax.IdentifierName, sts[0].SlotToken("expression").Kind())
	require.Equal(t, syntax.PrefixUnaryExpression, sts[1].SlotNode("expression").Kind())
}

func TestParseStrayTokenBecomesSkippedText(t *testing.T) {
	src := "x = ) + 1;"
	root, diags := ParseString(src)
	require.Len(t, diags, 1)
	require.Equal(t, diag.TokenExpected, diags[0].Code)
	require.Equal(t, []string{"expression"}, diags[0].Args)
	require.Equal(t, 4, diags[0].Position)

	require.Equal(t, src, root.FullText())
	require.True(t, root.HasSkippedText())
	require.NoError(t, CheckWidths(root))

	plus := root.FindToken(6).Token()
	require.Equal(t, syntax.PlusToken, plus.Kind())
	require.True(t, plus.LeadingTrivia().HasSkippedText())
	require.Equal(t, ") ", plus.LeadingTrivia().FullText())
}

func TestParseStraySemicolonEndsStatement(t *testing.T) {
	root, diags := ParseString("x = ;")
	require.Len(t, diags, 1)
	require.False(t, root.HasSkippedText())
	sts := statements(root)
	require.Len(t, sts, 1)
	require.Equal(t, syntax.SemicolonToken, sts[0].SlotToken("semicolonToken").Kind())
}
