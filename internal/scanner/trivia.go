package scanner

import (
	"unicode/utf8"

	"github.com/palantir/tslint-sub000/internal/charclass"
	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/syntax"
	"github.com/palantir/tslint-sub000/internal/window"
)

// nextTrivia consumes one trivia item from w and returns its kind, or None
// when the cursor is not at trivia. A whitespace run is one item; "\r\n" is
// one newline. unterminated is set for a /* comment that reaches the end.
//
// Both tiers go through here so they always agree on item boundaries.
func nextTrivia(w *window.SlidingWindow[byte]) (kind syntax.Kind, unterminated bool) {
	if w.IsAtEndOfSource() {
		return syntax.None, false
	}
	switch c := w.CurrentItem(); c {
	case ' ', '\t', '\v', '\f':
		skipWhitespace(w)
		return syntax.WhitespaceTrivia, false
	case '\r':
		w.MoveToNextItem()
		if !w.IsAtEndOfSource() && w.CurrentItem() == '\n' {
			w.MoveToNextItem()
		}
		return syntax.NewLineTrivia, false
	case '\n':
		w.MoveToNextItem()
		return syntax.NewLineTrivia, false
	case '/':
		switch w.PeekItemN(1) {
		case '/':
			skipSingleLineComment(w)
			return syntax.SingleLineCommentTrivia, false
		case '*':
			return syntax.MultiLineCommentTrivia, !skipMultiLineComment(w)
		}
		return syntax.None, false
	default:
		if c < utf8.RuneSelf {
			return syntax.None, false
		}
		r, size := peekRune(w)
		switch {
		case r == utf8.RuneError && size <= 1:
			return syntax.None, false
		case charclass.IsWhitespace(r):
			skipWhitespace(w)
			return syntax.WhitespaceTrivia, false
		case charclass.IsLineTerminator(r):
			advanceBy(w, size)
			return syntax.NewLineTrivia, false
		}
	}
	return syntax.None, false
}

func advanceBy(w *window.SlidingWindow[byte], n int) {
	for range n {
		w.MoveToNextItem()
	}
}

func skipWhitespace(w *window.SlidingWindow[byte]) {
	for !w.IsAtEndOfSource() {
		c := w.CurrentItem()
		if c == ' ' || c == '\t' || c == '\v' || c == '\f' {
			w.MoveToNextItem()
			continue
		}
		if c < utf8.RuneSelf {
			return
		}
		r, size := peekRune(w)
		if !charclass.IsWhitespace(r) {
			return
		}
		advanceBy(w, size)
	}
}

// skipSingleLineComment stops before the line terminator.
func skipSingleLineComment(w *window.SlidingWindow[byte]) {
	advanceBy(w, 2)
	for !w.IsAtEndOfSource() {
		c := w.CurrentItem()
		if c == '\r' || c == '\n' {
			return
		}
		if c < utf8.RuneSelf {
			w.MoveToNextItem()
			continue
		}
		r, size := peekRune(w)
		if charclass.IsLineTerminator(r) {
			return
		}
		advanceBy(w, size)
	}
}

// skipMultiLineComment reports false when the input ends before "*/".
func skipMultiLineComment(w *window.SlidingWindow[byte]) bool {
	advanceBy(w, 2)
	for !w.IsAtEndOfSource() {
		if w.CurrentItem() == '*' && w.PeekItemN(1) == '/' {
			advanceBy(w, 2)
			return true
		}
		w.MoveToNextItem()
	}
	return false
}

// scanTriviaInfo is the fast tier: it skips trivia and records only its
// width and flags. Trailing trivia ends after the first newline, so the
// next line's indentation leads the next token.
func (s *Scanner) scanTriviaInfo(isTrailing bool) syntax.TriviaInfo {
	start := s.window.AbsoluteIndex()
	hasNewLine, hasComment := false, false
	for {
		kind, unterminated := nextTrivia(s.window)
		if kind == syntax.None {
			break
		}
		switch kind {
		case syntax.NewLineTrivia:
			hasNewLine = true
		case syntax.SingleLineCommentTrivia, syntax.MultiLineCommentTrivia:
			hasComment = true
		}
		if unterminated {
			s.report(s.window.AbsoluteIndex(), 0, diag.TokenExpected, "*/")
		}
		if isTrailing && kind == syntax.NewLineTrivia {
			break
		}
	}
	return syntax.NewTriviaInfo(s.window.AbsoluteIndex()-start, hasNewLine, hasComment)
}
