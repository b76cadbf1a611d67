package diag

// Sink receives diagnostics. Implementations must accept every call; a
// producer never inspects what it already reported.
type Sink interface {
	Add(d Diagnostic)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(d Diagnostic)

func (f SinkFunc) Add(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Sink = SinkFunc(func(Diagnostic) {})

type dedupKey struct {
	code  Code
	sev   Severity
	start int
	end   int
	msg   string
}

func keyOf(d Diagnostic) dedupKey {
	return dedupKey{
		code:  d.Code,
		sev:   d.Severity,
		start: d.Position,
		end:   d.End(),
		msg:   d.Message(),
	}
}

// DedupSink wraps another Sink and suppresses duplicate diagnostics
// with the same code, severity, span and message.
type DedupSink struct {
	next Sink
	seen map[dedupKey]struct{}
}

// NewDedupSink returns a Sink that filters out duplicates while
// forwarding unique diagnostics to next.
func NewDedupSink(next Sink) *DedupSink {
	return &DedupSink{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (s *DedupSink) Add(d Diagnostic) {
	if s == nil {
		return
	}
	key := keyOf(d)
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	if s.next != nil {
		s.next.Add(d)
	}
}
