package scanner

import (
	"github.com/palantir/tslint-sub000/internal/charclass"
	"github.com/palantir/tslint-sub000/internal/source"
)

type Options struct {
	// Version selects the Unicode identifier tables.
	Version charclass.Version
	// Interner, when set, deduplicates identifier text. It is mutated by
	// Scan; share it between scanners only under external locking.
	Interner *source.Interner
}

// window sizes in bytes; both grow on demand
const (
	defaultWindowSize = 2048
	triviaWindowSize  = 32
)
