package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Span is a byte range inside one file.
type Span struct {
	File  FileID
	Start uint32 // inclusive
	End   uint32 // exclusive
}

// SpanOf converts a (position, width) pair as used by diagnostics and tokens.
func SpanOf(file FileID, position, width int) Span {
	start, err := safecast.Conv[uint32](position)
	if err != nil {
		panic(fmt.Errorf("span start overflow: %w", err))
	}
	end, err := safecast.Conv[uint32](position + width)
	if err != nil {
		panic(fmt.Errorf("span end overflow: %w", err))
	}
	return Span{File: file, Start: start, End: end}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Clamp limits the span to [0, limit].
func (s Span) Clamp(limit uint32) Span {
	s.Start = min(s.Start, limit)
	s.End = max(min(s.End, limit), s.Start)
	return s
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	return Span{File: s.File, Start: min(s.Start, other.Start), End: max(s.End, other.End)}
}
