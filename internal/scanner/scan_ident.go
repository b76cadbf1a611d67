package scanner

import (
	"unicode/utf8"

	"github.com/palantir/tslint-sub000/internal/charclass"
	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/syntax"
)

// scanIdentifierOrKeyword is the fast path: a pinned run of ASCII identifier
// characters resolved through keywordKind. A backslash or a non-ASCII
// identifier character in the run sends the whole identifier to the slow
// path.
func (s *Scanner) scanIdentifierOrKeyword() syntax.Kind {
	pin := s.window.GetAndPinAbsoluteIndex()
	defer s.window.ReleaseAndUnpinAbsoluteIndex(pin)

	for !s.eof() && charclass.IsIdentifierPartASCII(s.current()) {
		s.advance(1)
	}
	if !s.eof() {
		c := s.current()
		if c == '\\' && s.peek(1) == 'u' {
			s.window.RewindToPinnedIndex(pin)
			return s.scanIdentifierSlow()
		}
		if c >= utf8.RuneSelf {
			if r, _ := s.currentRune(); charclass.IsIdentifierPart(r, s.opts.Version) {
				s.window.RewindToPinnedIndex(pin)
				return s.scanIdentifierSlow()
			}
		}
	}

	run := s.window.ItemsSince(pin)
	if !charclass.IsKeywordStartASCII(run[0]) {
		return syntax.IdentifierName
	}
	return keywordKind(run)
}

// scanIdentifierSlow scans character by character, resolving \uXXXX
// escapes. An escaped keyword keeps its keyword kind and becomes a variable
// width token.
func (s *Scanner) scanIdentifierSlow() syntax.Kind {
	start := s.window.AbsoluteIndex()
	escaped := false
	first := true
	for !s.eof() {
		c := s.current()
		var r rune
		if c == '\\' {
			if s.peek(1) != 'u' {
				break
			}
			var ok bool
			r, ok = s.scanUnicodeEscape()
			escaped = true
			if !ok {
				first = false
				continue
			}
			if !s.isIdentifierChar(r, first) {
				// the escape is consumed either way; report and go on
				s.report(s.window.AbsoluteIndex()-6, 6, diag.UnrecognizedEscapeSequence)
			}
			first = false
			continue
		}
		size := 1
		r = rune(c)
		if c >= utf8.RuneSelf {
			r, size = s.currentRune()
		}
		if !s.isIdentifierChar(r, first) {
			break
		}
		s.advance(size)
		first = false
	}

	end := s.window.AbsoluteIndex()
	if !escaped {
		return syntax.IdentifierName
	}
	value := syntax.DecodeEscapes(string(s.file.Content[start:end]))
	if kind, ok := syntax.KeywordKind(value); ok {
		return kind
	}
	return syntax.IdentifierName
}

func (s *Scanner) isIdentifierChar(r rune, first bool) bool {
	if first {
		return charclass.IsIdentifierStart(r, s.opts.Version)
	}
	return charclass.IsIdentifierPart(r, s.opts.Version)
}

// scanUnicodeEscape consumes \u and up to four hex digits. Fewer than four
// digits is reported and ok is false.
func (s *Scanner) scanUnicodeEscape() (r rune, ok bool) {
	start := s.window.AbsoluteIndex()
	s.advance(2) // \u
	r, ok = s.scanHexDigits(4)
	if !ok {
		s.report(start, s.window.AbsoluteIndex()-start, diag.UnrecognizedEscapeSequence)
	}
	return r, ok
}

// scanHexDigits consumes at most n hex digits.
func (s *Scanner) scanHexDigits(n int) (rune, bool) {
	var r rune
	for i := 0; i < n; i++ {
		if s.eof() {
			return r, false
		}
		d := charclass.HexValue(s.current())
		if d < 0 {
			return r, false
		}
		r = r<<4 | rune(d)
		s.advance(1)
	}
	return r, true
}
