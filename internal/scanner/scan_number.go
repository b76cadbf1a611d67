package scanner

import (
	"github.com/palantir/tslint-sub000/internal/charclass"
	"github.com/palantir/tslint-sub000/internal/syntax"
)

// Supported: 0x1F, 123, 1.5, .5, 1., 1e10, 1.5E-3. An exponent marker is
// consumed only when digits follow it, so "1e" scans as 1 and an identifier.
func (s *Scanner) scanNumericLiteral() syntax.Kind {
	if s.current() == '0' && (s.peek(1) == 'x' || s.peek(1) == 'X') && charclass.IsHexDigit(s.peek(2)) {
		s.advance(2)
		for !s.eof() && charclass.IsHexDigit(s.current()) {
			s.advance(1)
		}
		return syntax.NumericLiteral
	}

	s.skipDecimalDigits()
	if s.current() == '.' && !s.eof() {
		s.advance(1)
		s.skipDecimalDigits()
	}

	if c := s.current(); (c == 'e' || c == 'E') && !s.eof() {
		next := s.peek(1)
		switch {
		case charclass.IsDecimalDigit(next):
			s.advance(1)
			s.skipDecimalDigits()
		case (next == '+' || next == '-') && charclass.IsDecimalDigit(s.peek(2)):
			s.advance(2)
			s.skipDecimalDigits()
		}
	}
	return syntax.NumericLiteral
}

func (s *Scanner) skipDecimalDigits() {
	for !s.eof() && charclass.IsDecimalDigit(s.current()) {
		s.advance(1)
	}
}
