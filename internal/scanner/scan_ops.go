package scanner

import "github.com/palantir/tslint-sub000/internal/syntax"

// scanPunctuation scans operators and punctuators by greedy matching with at
// most three characters of lookahead. '/' and '.' are handled by the caller.
func (s *Scanner) scanPunctuation(c byte) (syntax.Kind, bool) {
	switch c {
	case '{':
		return s.single(syntax.OpenBraceToken), true
	case '}':
		return s.single(syntax.CloseBraceToken), true
	case '(':
		return s.single(syntax.OpenParenToken), true
	case ')':
		return s.single(syntax.CloseParenToken), true
	case '[':
		return s.single(syntax.OpenBracketToken), true
	case ']':
		return s.single(syntax.CloseBracketToken), true
	case ';':
		return s.single(syntax.SemicolonToken), true
	case ',':
		return s.single(syntax.CommaToken), true
	case '?':
		return s.single(syntax.QuestionToken), true
	case ':':
		return s.single(syntax.ColonToken), true
	case '~':
		return s.single(syntax.TildeToken), true
	case '<':
		if s.peek(1) == '<' {
			if s.peek(2) == '=' {
				s.advance(3)
				return syntax.LessThanLessThanEqualsToken, true
			}
			s.advance(2)
			return syntax.LessThanLessThanToken, true
		}
		return s.withEquals(syntax.LessThanToken, syntax.LessThanEqualsToken), true
	case '>':
		return s.scanGreaterThan(), true
	case '=':
		switch s.peek(1) {
		case '=':
			if s.peek(2) == '=' {
				s.advance(3)
				return syntax.EqualsEqualsEqualsToken, true
			}
			s.advance(2)
			return syntax.EqualsEqualsToken, true
		case '>':
			s.advance(2)
			return syntax.EqualsGreaterThanToken, true
		}
		s.advance(1)
		return syntax.EqualsToken, true
	case '!':
		if s.peek(1) == '=' {
			if s.peek(2) == '=' {
				s.advance(3)
				return syntax.ExclamationEqualsEqualsToken, true
			}
			s.advance(2)
			return syntax.ExclamationEqualsToken, true
		}
		s.advance(1)
		return syntax.ExclamationToken, true
	case '+':
		if s.peek(1) == '+' {
			s.advance(2)
			return syntax.PlusPlusToken, true
		}
		return s.withEquals(syntax.PlusToken, syntax.PlusEqualsToken), true
	case '-':
		if s.peek(1) == '-' {
			s.advance(2)
			return syntax.MinusMinusToken, true
		}
		return s.withEquals(syntax.MinusToken, syntax.MinusEqualsToken), true
	case '*':
		return s.withEquals(syntax.AsteriskToken, syntax.AsteriskEqualsToken), true
	case '%':
		return s.withEquals(syntax.PercentToken, syntax.PercentEqualsToken), true
	case '&':
		if s.peek(1) == '&' {
			s.advance(2)
			return syntax.AmpersandAmpersandToken, true
		}
		return s.withEquals(syntax.AmpersandToken, syntax.AmpersandEqualsToken), true
	case '|':
		if s.peek(1) == '|' {
			s.advance(2)
			return syntax.BarBarToken, true
		}
		return s.withEquals(syntax.BarToken, syntax.BarEqualsToken), true
	case '^':
		return s.withEquals(syntax.CaretToken, syntax.CaretEqualsToken), true
	}
	return syntax.None, false
}

func (s *Scanner) single(kind syntax.Kind) syntax.Kind {
	s.advance(1)
	return kind
}

// withEquals scans "op" or "op=".
func (s *Scanner) withEquals(plain, assign syntax.Kind) syntax.Kind {
	if s.peek(1) == '=' {
		s.advance(2)
		return assign
	}
	s.advance(1)
	return plain
}

// > >= >> >>= >>> >>>=
func (s *Scanner) scanGreaterThan() syntax.Kind {
	if s.peek(1) != '>' {
		return s.withEquals(syntax.GreaterThanToken, syntax.GreaterThanEqualsToken)
	}
	if s.peek(2) != '>' {
		if s.peek(2) == '=' {
			s.advance(3)
			return syntax.GreaterThanGreaterThanEqualsToken
		}
		s.advance(2)
		return syntax.GreaterThanGreaterThanToken
	}
	if s.peek(3) == '=' {
		s.advance(4)
		return syntax.GreaterThanGreaterThanGreaterThanEqualsToken
	}
	s.advance(3)
	return syntax.GreaterThanGreaterThanGreaterThanToken
}

func (s *Scanner) scanSlashToken() syntax.Kind {
	return s.withEquals(syntax.SlashToken, syntax.SlashEqualsToken)
}
