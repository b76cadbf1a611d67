package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/observ"
	"github.com/palantir/tslint-sub000/internal/syntax"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func codes(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func TestTokenizeString(t *testing.T) {
	res := TokenizeString(context.Background(), "a.ts", "var r = /a(/g;\nx = 'ok'", Options{CheckRegex: true, Intern: true})
	require.NotEmpty(t, res.Tokens)
	require.Equal(t, syntax.EndOfFileToken, res.Tokens[len(res.Tokens)-1].Kind())
	require.Equal(t, []diag.Code{diag.InvalidRegularExpression}, codes(res.Bag))
	require.Equal(t, 8, res.Bag.Items()[0].Position)

	res = TokenizeString(context.Background(), "b.ts", "var r = /a(/g;", Options{})
	require.Zero(t, res.Bag.Len(), "regex check is off by default")
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := Tokenize(context.Background(), filepath.Join(t.TempDir(), "nope.js"), Options{})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTokenizeDir(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b.js":                "var b = 2;",
		"a.js":                "var a = 1;",
		"sub/c.mjs":           "export default 3;",
		"node_modules/dep.js": "module.exports = 1;",
		".cache/gen.js":       "x",
		"README.md":           "# readme",
	})
	timer := observ.NewTimer()
	results, err := TokenizeDir(context.Background(), []string{dir}, Options{Jobs: 2, Timer: timer})
	require.NoError(t, err)

	var got []string
	for _, r := range results {
		rel, err := filepath.Rel(dir, r.Path)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
		require.Equal(t, "JavaScript", r.Language)
		require.NoError(t, RoundTrip(r))
	}
	require.Equal(t, []string{"a.js", "b.js", "sub/c.mjs"}, got)

	report := timer.Report()
	var scan observ.PhaseReport
	for _, p := range report.Phases {
		if p.Name == "scan" {
			scan = p
		}
	}
	require.Equal(t, 3, scan.Runs)
}

func TestTokenizeDirEmpty(t *testing.T) {
	dir := writeFiles(t, map[string]string{"notes.txt": "nothing"})
	_, err := TokenizeDir(context.Background(), []string{dir}, Options{})
	require.ErrorIs(t, err, ErrNoSourceFiles)
}

func TestTokenizeDirCanceled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.js": "a"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := TokenizeDir(ctx, []string{dir}, Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRoundTrip(t *testing.T) {
	corpus := []string{
		"",
		"var x = 1;",
		"\uFEFF// bom\r\nif (a) { b() } else c = 2 /* tail */",
		"x = 'unterminated\ny = /re/gi.test(z)",
		"a @ # b",
		"/* open comment",
	}
	for _, text := range corpus {
		res := TokenizeString(context.Background(), "rt.ts", text, Options{})
		require.NoError(t, RoundTrip(res), "input %q", text)
	}

	res := TokenizeString(context.Background(), "rt.ts", "var x = 1;", Options{})
	res.Tokens = res.Tokens[1:]
	err := RoundTrip(res)
	var rt *RoundTripError
	require.ErrorAs(t, err, &rt)
	require.Equal(t, "tokens", rt.Stage)
	require.Equal(t, 0, rt.Offset)
}

func TestTokenAt(t *testing.T) {
	text := "var a = b + c;"
	res := TokenizeString(context.Background(), "at.ts", text, Options{})

	loc, err := TokenAt(res, 8)
	require.NoError(t, err)
	require.Equal(t, "b", loc.Token.Token().Text())
	require.Equal(t, 8, loc.Token.Start())
	require.Equal(t, syntax.EqualsToken, loc.Previous.Token().Kind())
	require.Equal(t, syntax.PlusToken, loc.Next.Token().Kind())
	require.Equal(t, syntax.BinaryExpression, loc.Chain[0])
	require.Contains(t, loc.Chain, syntax.VariableDeclarator)
	require.Equal(t, syntax.SourceUnit, loc.Chain[len(loc.Chain)-1])

	loc, err = TokenAt(res, len(text))
	require.NoError(t, err)
	require.Equal(t, syntax.EndOfFileToken, loc.Token.Token().Kind())
	require.Nil(t, loc.Next)

	loc, err = TokenAt(res, 0)
	require.NoError(t, err)
	require.Nil(t, loc.Previous)

	_, err = TokenAt(res, len(text)+1)
	require.Error(t, err)
	_, err = TokenAt(res, -1)
	require.Error(t, err)
}

func TestCheckCache(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.js": "x = 'open\ny = 1;"})
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	opts := Options{Cache: cache, Memo: NewMemoCache(4)}

	first, err := Check(context.Background(), []string{dir}, opts)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.False(t, first[0].Cached)
	require.Equal(t, []diag.Code{diag.MissingClosingQuote}, codes(first[0].Bag))

	// disk only
	opts.Memo = nil
	second, err := Check(context.Background(), []string{dir}, opts)
	require.NoError(t, err)
	require.True(t, second[0].Cached)
	require.Equal(t, first[0].Tokens, second[0].Tokens)
	require.Equal(t, first[0].Bag.Items(), second[0].Bag.Items())

	// other options, other key
	opts.CheckRegex = true
	third, err := Check(context.Background(), []string{dir}, opts)
	require.NoError(t, err)
	require.False(t, third[0].Cached)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.js"), []byte("y = 2;"), 0o644))
	fourth, err := Check(context.Background(), []string{dir}, opts)
	require.NoError(t, err)
	require.False(t, fourth[0].Cached)
	require.Zero(t, fourth[0].Bag.Len())

	require.NoError(t, cache.DropAll())
	fifth, err := Check(context.Background(), []string{dir}, opts)
	require.NoError(t, err)
	require.False(t, fifth[0].Cached)
}

func TestCacheKey(t *testing.T) {
	var content Digest
	content[0] = 1
	base := cacheKey(content, Options{})
	require.True(t, IsSHA256(base))
	require.Equal(t, base, cacheKey(content, Options{}))
	require.NotEqual(t, base, cacheKey(content, Options{CheckRegex: true}))
	require.NotEqual(t, base, cacheKey(content, Options{MaxDiagnostics: 3}))
	content[0] = 2
	require.NotEqual(t, base, cacheKey(content, Options{}))
	require.False(t, IsSHA256(Digest{}))
}

func TestFormatPaths(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"ok.js":  "var x=1;if(a){b()}else c=2;",
		"bad.js": "var = ;",
	})
	results, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{Stdout: true})
	require.NoError(t, err)
	require.Len(t, results, 2)

	bad, ok := results[0], results[1]
	require.ErrorIs(t, bad.Err, ErrParse)
	require.True(t, bad.Bag.HasErrors())

	require.NoError(t, ok.Err)
	require.True(t, ok.Changed)
	require.Equal(t, "var x = 1;\r\nif (a) {\r\n    b()\r\n} else\r\n    c = 2;\r\n", string(ok.Formatted))

	// write in place, then the check mode sees nothing to do
	_, err = FormatPaths(context.Background(), []string{filepath.Join(dir, "ok.js")}, FormatOptions{})
	require.NoError(t, err)
	results, err = FormatPaths(context.Background(), []string{filepath.Join(dir, "ok.js")}, FormatOptions{Check: true})
	require.NoError(t, err)
	require.False(t, results[0].Changed)
}

func TestRoundTripTestdata(t *testing.T) {
	results, err := TokenizeDir(context.Background(), []string{filepath.Join("..", "..", "testdata", "js")}, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, res := range results {
		require.NoError(t, RoundTrip(res), res.Path)
		require.False(t, res.Bag.HasErrors(), res.Path)
	}
}
