package scanner

import (
	"unicode/utf8"

	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/syntax"
)

// scanStringLiteral scans up to the matching quote. A line terminator or
// the end of input ends the literal early with a "missing closing quote"
// diagnostic; the line terminator is left for the trivia scanner.
func (s *Scanner) scanStringLiteral() syntax.Kind {
	quote := s.current()
	s.advance(1)
	for {
		if s.eof() {
			s.report(s.window.AbsoluteIndex(), 0, diag.MissingClosingQuote)
			break
		}
		c := s.current()
		if c == quote {
			s.advance(1)
			break
		}
		if c == '\\' {
			s.scanStringEscape()
			continue
		}
		if c == '\r' || c == '\n' {
			s.report(s.window.AbsoluteIndex(), 1, diag.MissingClosingQuote)
			break
		}
		if c >= utf8.RuneSelf {
			r, size := s.currentRune()
			if r == 0x2028 || r == 0x2029 {
				s.report(s.window.AbsoluteIndex(), size, diag.MissingClosingQuote)
				break
			}
			s.advance(size)
			continue
		}
		s.advance(1)
	}
	return syntax.StringLiteral
}

// scanStringEscape consumes one escape sequence. Malformed \x and \u
// escapes are reported; the digits already consumed stay in the literal.
func (s *Scanner) scanStringEscape() {
	start := s.window.AbsoluteIndex()
	s.advance(1) // '\'
	if s.eof() {
		return
	}
	switch c := s.current(); c {
	case 'x', 'u':
		n := 2
		if c == 'u' {
			n = 4
		}
		s.advance(1)
		if _, ok := s.scanHexDigits(n); !ok {
			s.report(start, s.window.AbsoluteIndex()-start, diag.UnrecognizedEscapeSequence)
		}
	case '\r':
		s.advance(1)
		if !s.eof() && s.current() == '\n' {
			s.advance(1)
		}
	default:
		_, size := s.currentRune()
		s.advance(size)
	}
}
