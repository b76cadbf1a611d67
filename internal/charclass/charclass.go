// Package charclass holds the character classification tables used by the
// scanner: ASCII lookup arrays and the ES3/ES5 Unicode identifier tables.
package charclass

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Version selects the Unicode identifier tables.
type Version uint8

const (
	ES5 Version = iota
	ES3
)

func (v Version) String() string {
	switch v {
	case ES3:
		return "es3"
	case ES5:
		return "es5"
	default:
		return fmt.Sprintf("Version(%d)", uint8(v))
	}
}

// ParseVersion accepts "es3" or "es5" in any case.
func ParseVersion(s string) (Version, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "es3":
		return ES3, nil
	case "es5", "":
		return ES5, nil
	}
	return ES5, fmt.Errorf("unknown language version %q", s)
}

var (
	identStartASCII [128]bool
	identPartASCII  [128]bool
	keywordStart    [128]bool
)

// keywords begin only with these letters; everything else skips the fast
// keyword dispatch.
const keywordStartLetters = "abcdefgilmnprstvwy"

func init() {
	for c := 0; c < 128; c++ {
		b := byte(c)
		start := b == '$' || b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
		identStartASCII[c] = start
		identPartASCII[c] = start || (b >= '0' && b <= '9')
	}
	for i := 0; i < len(keywordStartLetters); i++ {
		keywordStart[keywordStartLetters[i]] = true
	}
}

var (
	es5Start = sync.OnceValue(func() *unicode.RangeTable {
		return rangetable.Merge(unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl)
	})
	es5Part = sync.OnceValue(func() *unicode.RangeTable {
		return rangetable.Merge(es5Start(), unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
			rangetable.New(0x200C, 0x200D))
	})
	es3Start = sync.OnceValue(func() *unicode.RangeTable { return bmpOnly(es5Start()) })
	es3Part  = sync.OnceValue(func() *unicode.RangeTable {
		return bmpOnly(rangetable.Merge(es5Start(), unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc))
	})
)

// bmpOnly drops the supplementary planes from t.
func bmpOnly(t *unicode.RangeTable) *unicode.RangeTable {
	return &unicode.RangeTable{R16: t.R16, LatinOffset: t.LatinOffset}
}

// IsIdentifierStartASCII reports whether b can begin an identifier.
func IsIdentifierStartASCII(b byte) bool {
	return b < 128 && identStartASCII[b]
}

// IsIdentifierPartASCII reports whether b can continue an identifier.
func IsIdentifierPartASCII(b byte) bool {
	return b < 128 && identPartASCII[b]
}

// IsKeywordStartASCII reports whether some keyword begins with b.
func IsKeywordStartASCII(b byte) bool {
	return b < 128 && keywordStart[b]
}

// IsIdentifierStart classifies r for the given language version.
func IsIdentifierStart(r rune, v Version) bool {
	if r < 128 {
		return identStartASCII[r]
	}
	if v == ES3 {
		return unicode.Is(es3Start(), r)
	}
	return unicode.Is(es5Start(), r)
}

// IsIdentifierPart classifies r for the given language version.
func IsIdentifierPart(r rune, v Version) bool {
	if r < 128 {
		return identPartASCII[r]
	}
	if v == ES3 {
		return unicode.Is(es3Part(), r)
	}
	return unicode.Is(es5Part(), r)
}

func IsDecimalDigit(b byte) bool { return b >= '0' && b <= '9' }

func IsHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// HexValue returns the value of a hex digit, or -1.
func HexValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}

// IsWhitespace covers TAB, VT, FF, SP, NBSP, BOM and the Zs category.
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', 0x00A0, 0xFEFF:
		return true
	}
	return r > 127 && unicode.Is(unicode.Zs, r)
}

// IsLineTerminator covers LF, CR, LS and PS.
func IsLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == 0x2028 || r == 0x2029
}
