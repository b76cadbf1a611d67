package scanner

import (
	"unicode/utf8"

	"github.com/palantir/tslint-sub000/internal/charclass"
)

// tryScanRegularExpression scans /body/flags from the current '/'. A line
// terminator or the end of input before the closing '/' rewinds the window
// and returns false. A '/' inside [...] or after a backslash does not close
// the literal.
func (s *Scanner) tryScanRegularExpression() bool {
	pin := s.window.GetAndPinAbsoluteIndex()
	defer s.window.ReleaseAndUnpinAbsoluteIndex(pin)

	s.advance(1) // opening '/'
	inClass, inEscape := false, false
	for {
		if s.eof() || s.atLineTerminator() {
			s.window.RewindToPinnedIndex(pin)
			return false
		}
		c := s.current()
		s.advance(1)
		if inEscape {
			inEscape = false
			continue
		}
		switch c {
		case '\\':
			inEscape = true
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				s.scanRegexFlags()
				return true
			}
		}
	}
}

func (s *Scanner) scanRegexFlags() {
	for !s.eof() {
		c := s.current()
		if c < utf8.RuneSelf {
			if !charclass.IsIdentifierPartASCII(c) {
				return
			}
			s.advance(1)
			continue
		}
		r, size := s.currentRune()
		if !charclass.IsIdentifierPart(r, s.opts.Version) {
			return
		}
		s.advance(size)
	}
}

func (s *Scanner) atLineTerminator() bool {
	switch c := s.current(); {
	case c == '\n' || c == '\r':
		return true
	case c == 0xE2:
		r, _ := s.currentRune()
		return r == 0x2028 || r == 0x2029
	}
	return false
}
