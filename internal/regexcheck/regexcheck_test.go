package regexcheck

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/scanner"
	"github.com/palantir/tslint-sub000/internal/source"
)

func TestValidate(t *testing.T) {
	c := NewChecker(8)
	cases := []struct {
		literal string
		valid   bool
	}{
		{"/a+/g", true},
		{"/[a-z]+\\d*/im", true},
		{"/a(/", false},
		{"/a/x", false},
		{"/a/gg", false},
		{"/(?=a)b/", true},
		{"/(a)\\1/", true},
		{"/\\u0041+/", true},
		{"/[\\u0041-\\u005A]/", true},
		{"/a[^]b/", true},
		{"/a[]b/", true},
		{"/\\cJ\\0\\x41/", true},
		{"/\\p\\e/", true},
		{"/\\u00/", true},
		{"/[\\u0041-/", false},
		{"abc", false},
	}
	for _, tc := range cases {
		msg := c.Validate(tc.literal)
		if tc.valid {
			require.Empty(t, msg, tc.literal)
		} else {
			require.NotEmpty(t, msg, tc.literal)
		}
	}
}

func TestCheckReportsAtTokenStart(t *testing.T) {
	file := source.NewVirtualFile("r.ts", "x = /a(/;\ny = /ok/g;")
	tokens := scanner.New(file, scanner.Options{}).ScanAll(nil)

	bag := diag.NewBag(10)
	n := NewChecker(0).Check(tokens, bag)
	require.Equal(t, 1, n)

	items := bag.Items()
	require.Len(t, items, 1)
	require.Equal(t, diag.InvalidRegularExpression, items[0].Code)
	require.Equal(t, diag.SevWarning, items[0].Severity)
	require.Equal(t, 4, items[0].Position)
	require.Equal(t, 4, items[0].Width)
	require.False(t, bag.HasErrors())
}

func TestCacheEviction(t *testing.T) {
	c := NewChecker(2)
	c.Validate("/a/")
	c.Validate("/b/")
	c.Validate("/c/")
	require.Equal(t, 2, c.Len())
	c.Validate("/c/")
	require.Equal(t, 2, c.Len())
}

func TestTranslate(t *testing.T) {
	cases := map[string]string{
		`\u0041`:  `\x{0041}`,
		`\u00`:    `u00`,
		`a[^]b`:   `a[\s\S]b`,
		`[a[^]]`:  `[a[^]]`,
		`\cJ\0`:   `\x0A\x00`,
		`\x4g`:    `x4g`,
		`\p{L}\d`: `p{L}\d`,
		`[\]]\/`:  `[\]]\/`,
	}
	for in, want := range cases {
		require.Equal(t, want, translate(in), in)
	}
}
