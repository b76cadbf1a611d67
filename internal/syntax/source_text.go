package syntax

// TriviaScanner materializes trivia from a slice of source text. It is the
// slow tier behind Token.LeadingTrivia and Token.TrailingTrivia.
type TriviaScanner interface {
	ScanTrivia(text []byte, isTrailing bool) TriviaList
}

// SourceText is the buffer shared by every token scanned from one file.
type SourceText struct {
	content []byte
	trivia  TriviaScanner
}

func NewSourceText(content []byte, trivia TriviaScanner) *SourceText {
	return &SourceText{content: content, trivia: trivia}
}

func (s *SourceText) Len() int { return len(s.content) }

// Slice returns the text in [start, end) without copying.
func (s *SourceText) Slice(start, end int) []byte {
	return s.content[start:end]
}

func (s *SourceText) String(start, end int) string {
	return string(s.content[start:end])
}
