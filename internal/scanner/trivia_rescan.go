package scanner

import (
	"github.com/palantir/tslint-sub000/internal/syntax"
	"github.com/palantir/tslint-sub000/internal/window"
)

// triviaRescanner is the slow tier. Tokens hold only a TriviaInfo; when a
// caller asks for the trivia itself the recorded span is scanned again here.
// Every call gets its own small window, so rescans from several goroutines
// do not share state.
type triviaRescanner struct{}

func (r triviaRescanner) ScanTrivia(text []byte, isTrailing bool) syntax.TriviaList {
	if len(text) == 0 {
		return syntax.NewTriviaList()
	}
	w := window.New[byte](window.SliceSource[byte](text), triviaWindowSize, 0, len(text))
	var items []syntax.Trivia
	for {
		pin := w.GetAndPinAbsoluteIndex()
		kind, _ := nextTrivia(w)
		if kind == syntax.None {
			w.ReleaseAndUnpinAbsoluteIndex(pin)
			break
		}
		items = append(items, syntax.NewTrivia(kind, string(w.ItemsSince(pin))))
		w.ReleaseAndUnpinAbsoluteIndex(pin)
		if isTrailing && kind == syntax.NewLineTrivia {
			break
		}
	}
	return syntax.NewTriviaList(items...)
}
