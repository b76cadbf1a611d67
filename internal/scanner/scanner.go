package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/palantir/tslint-sub000/internal/charclass"
	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/source"
	"github.com/palantir/tslint-sub000/internal/syntax"
	"github.com/palantir/tslint-sub000/internal/window"
)

// Scanner produces tokens from one file. It is not safe for concurrent use.
type Scanner struct {
	file   *source.File
	text   *syntax.SourceText
	window *window.SlidingWindow[byte]
	opts   Options
	sink   diag.Sink // valid during Scan
}

func New(file *source.File, opts Options) *Scanner {
	content := file.Content
	return &Scanner{
		file:   file,
		text:   syntax.NewSourceText(content, triviaRescanner{}),
		window: window.New[byte](window.SliceSource[byte](content), defaultWindowSize, 0, len(content)),
		opts:   opts,
	}
}

// File returns the file being scanned.
func (s *Scanner) File() *source.File { return s.file }

// Text returns the buffer shared by every token of this scanner.
func (s *Scanner) Text() *syntax.SourceText { return s.text }

// AbsoluteIndex is the byte offset of the next token's full start.
func (s *Scanner) AbsoluteIndex() int { return s.window.AbsoluteIndex() }

// SetAbsoluteIndex repositions the scanner, e.g. when a parser backtracks.
func (s *Scanner) SetAbsoluteIndex(index int) {
	if index > len(s.file.Content) {
		panic(fmt.Sprintf("scanner: index %d past end of %s (%d bytes)", index, s.file.Path, len(s.file.Content)))
	}
	s.window.SetAbsoluteIndex(index)
}

// Scan returns the next token. allowRegularExpression tells the scanner that
// a '/' here starts a regular expression literal rather than a division.
// Lexical errors go to sink and never stop scanning; at the end of the input
// Scan keeps returning EndOfFileToken.
func (s *Scanner) Scan(sink diag.Sink, allowRegularExpression bool) *syntax.Token {
	if sink == nil {
		sink = diag.Discard
	}
	s.sink = sink
	defer func() { s.sink = nil }()

	fullStart := s.window.AbsoluteIndex()
	leading := s.scanTriviaInfo(false)
	start := s.window.AbsoluteIndex()
	kind := s.scanSyntaxToken(allowRegularExpression)
	end := s.window.AbsoluteIndex()
	trailing := s.scanTriviaInfo(true)

	if kind == syntax.IdentifierName && s.opts.Interner != nil {
		text := s.opts.Interner.InternBytes(s.file.Content[start:end])
		return syntax.NewScannedTokenText(s.text, kind, fullStart, leading, text, trailing)
	}
	return syntax.NewScannedToken(s.text, kind, fullStart, leading, end-start, trailing)
}

// ScanAll scans the whole input, deciding regex-vs-divide from the previous
// token. The result always ends with EndOfFileToken.
func (s *Scanner) ScanAll(sink diag.Sink) []*syntax.Token {
	var out []*syntax.Token
	prev := syntax.None
	for {
		tok := s.Scan(sink, RegexAllowedAfter(prev))
		out = append(out, tok)
		if tok.Kind() == syntax.EndOfFileToken {
			return out
		}
		prev = tok.Kind()
	}
}

// RegexAllowedAfter reports whether a '/' following a token of kind prev
// starts a regular expression. After operands it is a division.
func RegexAllowedAfter(prev syntax.Kind) bool {
	switch prev {
	case syntax.IdentifierName, syntax.NumericLiteral, syntax.StringLiteral, syntax.RegularExpressionLiteral,
		syntax.CloseParenToken, syntax.CloseBracketToken, syntax.CloseBraceToken,
		syntax.ThisKeyword, syntax.SuperKeyword, syntax.TrueKeyword, syntax.FalseKeyword, syntax.NullKeyword,
		syntax.PlusPlusToken, syntax.MinusMinusToken:
		return false
	}
	return true
}

func (s *Scanner) report(position, width int, code diag.Code, args ...string) {
	s.sink.Add(diag.New(position, width, code, args...))
}

func (s *Scanner) current() byte { return s.window.CurrentItem() }

func (s *Scanner) peek(n int) byte { return s.window.PeekItemN(n) }

func (s *Scanner) advance(n int) {
	for range n {
		s.window.MoveToNextItem()
	}
}

func (s *Scanner) eof() bool { return s.window.IsAtEndOfSource() }

// currentRune decodes the character under the cursor from up to four
// peeked bytes.
func (s *Scanner) currentRune() (rune, int) {
	return peekRune(s.window)
}

func peekRune(w *window.SlidingWindow[byte]) (rune, int) {
	b := w.CurrentItem()
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	var buf [utf8.UTFMax]byte
	buf[0] = b
	n := 1
	for n < utf8.UTFMax && !utf8.FullRune(buf[:n]) {
		buf[n] = w.PeekItemN(n)
		n++
	}
	return utf8.DecodeRune(buf[:n])
}

func (s *Scanner) scanSyntaxToken(allowRegularExpression bool) syntax.Kind {
	if s.eof() {
		return syntax.EndOfFileToken
	}
	c := s.current()
	switch c {
	case '"', '\'':
		return s.scanStringLiteral()
	case '/':
		if allowRegularExpression && s.tryScanRegularExpression() {
			return syntax.RegularExpressionLiteral
		}
		return s.scanSlashToken()
	case '.':
		if charclass.IsDecimalDigit(s.peek(1)) {
			return s.scanNumericLiteral()
		}
		if s.peek(1) == '.' && s.peek(2) == '.' {
			s.advance(3)
			return syntax.DotDotDotToken
		}
		s.advance(1)
		return syntax.DotToken
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return s.scanNumericLiteral()
	case '\\':
		if s.peek(1) == 'u' {
			return s.scanIdentifierSlow()
		}
		return s.scanDefaultCharacter()
	}
	if kind, ok := s.scanPunctuation(c); ok {
		return kind
	}
	if charclass.IsIdentifierStartASCII(c) {
		return s.scanIdentifierOrKeyword()
	}
	if c >= utf8.RuneSelf {
		if r, _ := s.currentRune(); charclass.IsIdentifierStart(r, s.opts.Version) {
			return s.scanIdentifierSlow()
		}
	}
	return s.scanDefaultCharacter()
}

// scanDefaultCharacter consumes one unrecognized character.
func (s *Scanner) scanDefaultCharacter() syntax.Kind {
	pos := s.window.AbsoluteIndex()
	r, size := s.currentRune()
	arg := string(r)
	if r == utf8.RuneError && size <= 1 {
		arg = fmt.Sprintf("\\x%02X", s.current())
		size = 1
	}
	s.advance(size)
	s.report(pos, size, diag.UnexpectedCharacter, arg)
	return syntax.ErrorToken
}
