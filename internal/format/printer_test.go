package format

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/scanner"
	"github.com/palantir/tslint-sub000/internal/source"
	"github.com/palantir/tslint-sub000/internal/syntax"
	"github.com/palantir/tslint-sub000/internal/testkit"
)

func parse(t *testing.T, text string) *syntax.Node {
	t.Helper()
	root, diags := testkit.ParseString(text)
	require.Empty(t, diags, "parse %q", text)
	return root
}

func TestPrettyPrintStatements(t *testing.T) {
	root := parse(t, "var x=1;if(a){b()}else c=2;")
	require.Equal(t, "var x = 1;\r\nif (a) {\r\n    b()\r\n} else\r\n    c = 2;\r\n", PrettyPrint(root, DefaultIndent))
}

func TestBlankLineAfterBrace(t *testing.T) {
	root := parse(t, "function f(){return 1}var y;y=2")
	require.Equal(t, "function f() {\r\n    return 1\r\n}\r\n\r\nvar y;\r\ny = 2\r\n", PrettyPrint(root, ""))
}

func TestCommaOperatorSpacing(t *testing.T) {
	root := parse(t, "a,b+c;")
	require.Equal(t, "a, b + c;\r\n", PrettyPrint(root, DefaultIndent))
}

func TestIndentUnit(t *testing.T) {
	root := parse(t, "while(a){if(b){c;}}")
	require.Equal(t, "while (a) {\r\n\tif (b) {\r\n\t\tc;\r\n\t}\r\n}\r\n", PrettyPrint(root, "\t"))
	require.Equal(t, PrettyPrint(root, "\t"), Format(root, Options{UseTabs: true}))
	require.Equal(t, PrettyPrint(root, "  "), Format(root, Options{IndentWidth: 2}))
}

func TestIgnoresOriginalTrivia(t *testing.T) {
	parsed := parse(t, "a   +/* c */\n1;")
	expr := parsed.Slot("moduleElements").ChildAt(0).(*syntax.Node).Slot("expression")

	f := syntax.NormalModeFactory
	built := f.BinaryExpression(syntax.Identifier("a"), syntax.NewToken(syntax.PlusToken, ""),
		syntax.NewToken(syntax.NumericLiteral, "1"))

	require.Equal(t, "a + 1", PrettyPrint(expr, DefaultIndent))
	require.Equal(t, PrettyPrint(expr, DefaultIndent), PrettyPrint(built, DefaultIndent))
}

func TestExpressionSpacing(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"x=f(a,b)[0].c;", "x = f(a, b)[0].c;"},
		{"y=!a&&-b;", "y = !a && -b;"},
		{"i++;--j;", "i++;\r\n--j;"},
		{"z=a?b:c;", "z = a ? b : c;"},
		{"o={a:1,'b':[1,,2]};", "o = { a: 1, 'b': [1,, 2] };"},
		{"e={};", "e = {};"},
		{"t=typeof x+new Foo(1);", "t = typeof x + new Foo(1);"},
		{"g=function(a){return a};", "g = function(a) {\r\n    return a\r\n};"},
	}
	for _, tc := range cases {
		root := parse(t, tc.in)
		require.Equal(t, tc.out+"\r\n", PrettyPrint(root, DefaultIndent), "input %q", tc.in)
	}
}

func TestControlStatements(t *testing.T) {
	root := parse(t, "for(var i=0;i<n;i++)s+=i;switch(k){case 1:a();break;default:b()}try{x()}catch(e){}finally{y()}")
	want := "for (var i = 0; i < n; i++)\r\n" +
		"    s += i;\r\n" +
		"switch (k) {\r\n" +
		"    case 1:\r\n" +
		"        a();\r\n" +
		"        break;\r\n" +
		"    default:\r\n" +
		"        b()\r\n" +
		"}\r\n" +
		"\r\n" +
		"try {\r\n" +
		"    x()\r\n" +
		"} catch (e) {\r\n" +
		"} finally {\r\n" +
		"    y()\r\n" +
		"}\r\n"
	require.Equal(t, want, PrettyPrint(root, DefaultIndent))
}

var idempotenceCorpus = []string{
	"var a = 1, b = 'two', c = /re/g;",
	"function add(x, y) { return x + y } add(1, 2);",
	"if (a) b(); else if (c) { d() } else { e = f ? g : h }",
	"do { i++ } while (i < 10); do j--; while (j)",
	"for (k in o) { delete o[k] } for (;;) break;",
	"outer: while (true) { continue outer }",
	"x = [1, , 3,]; y = { p: 1, q: function () { return this.p } };",
	"switch (v) { case 'a': case 'b': w(); default: }",
	"throw new Error('x' + (1 + 2) * 3);",
	"a = b = c, d; void 0; ~x; !y;",
}

func TestPrettyPrintIdempotent(t *testing.T) {
	reparse := func(text string) (syntax.Element, error) {
		root, diags := testkit.ParseString(text)
		if len(diags) > 0 {
			return nil, fmt.Errorf("%d diagnostics, first: %v", len(diags), diags[0])
		}
		return root, nil
	}
	for _, src := range idempotenceCorpus {
		root := parse(t, src)
		ok, msg := CheckRoundTrip(root, reparse, DefaultIndent)
		require.True(t, ok, "%q: %s\n%s", src, msg, PrettyPrint(root, DefaultIndent))
	}
}

func scannedKinds(t *testing.T, text string) []syntax.Kind {
	t.Helper()
	sc := scanner.New(source.NewVirtualFile("kinds.ts", text), scanner.Options{})
	var kinds []syntax.Kind
	for _, tok := range sc.ScanAll(diag.Discard) {
		kinds = append(kinds, tok.Kind())
	}
	return kinds
}

func TestPrefixOperatorsKeepTokens(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"x = - -y;", "x = - -y;"},
		{"x = + +y;", "x = + +y;"},
		{"x = - --y;", "x = - --y;"},
		{"x = + ++y;", "x = + ++y;"},
		{"x = -+y;", "x = -+y;"},
	}
	for _, tc := range cases {
		root := parse(t, tc.in)
		printed := PrettyPrint(root, DefaultIndent)
		require.Equal(t, tc.out+"\r\n", printed, "input %q", tc.in)
		require.Equal(t, scannedKinds(t, tc.in), scannedKinds(t, printed), "input %q", tc.in)
	}
}

func TestWriterHelpers(t *testing.T) {
	w := NewWriter("  ")
	w.EnsureSpace()
	w.EnsureNewLine()
	require.Empty(t, w.String())

	w.WriteString("a")
	w.EnsureSpace()
	w.EnsureSpace()
	w.WriteString("b")
	w.EnsureNewLine()
	w.EnsureNewLine()
	w.IndentPush()
	w.IndentPush()
	w.WriteString("c")
	w.IndentPop()
	w.IndentPop()
	w.IndentPop()
	w.NewLine()
	w.NewLine()
	w.WriteString("d")
	require.Equal(t, "a b\r\n    c\r\n\r\nd", w.String())

	first := w.indentation(3)
	require.Equal(t, "      ", first)
	require.Equal(t, unsafe.StringData(first), unsafe.StringData(w.indentation(3)))
}
