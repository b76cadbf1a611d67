package driver

import (
	"context"
	"fmt"
	"os"

	"github.com/palantir/tslint-sub000/internal/charclass"
	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/logging"
	"github.com/palantir/tslint-sub000/internal/regexcheck"
	"github.com/palantir/tslint-sub000/internal/scanner"
	"github.com/palantir/tslint-sub000/internal/source"
	"github.com/palantir/tslint-sub000/internal/syntax"
)

// TokenizeResult holds the full token stream of one file. Tokens always end
// with EndOfFileToken unless the file failed to load.
type TokenizeResult struct {
	Path     string
	Language string // JavaScript or TypeScript, "" when unknown
	Version  charclass.Version
	File     *source.File
	Tokens   []*syntax.Token
	Bag      *diag.Bag
}

// Tokenize loads path and scans it.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stop := opts.Timer.Track("read")
	content, err := os.ReadFile(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return nil, fmt.Errorf("tokenize %s: %w", path, err)
	}
	stop(1)
	fs := source.NewFileSet()
	file := fs.Get(fs.Add(path, content, 0))
	return TokenizeSource(ctx, file, opts), nil
}

// TokenizeString scans text held in memory, e.g. a REPL line.
func TokenizeString(ctx context.Context, name, text string, opts Options) *TokenizeResult {
	return TokenizeSource(ctx, source.NewVirtualFile(name, text), opts)
}

// TokenizeSource scans an already loaded file.
func TokenizeSource(ctx context.Context, file *source.File, opts Options) *TokenizeResult {
	res := &TokenizeResult{
		Path:     file.Path,
		Language: detectLanguage(file.Path, file.Content),
		Version:  opts.Version,
		File:     file,
		Bag:      diag.NewBag(opts.maxDiagnostics()),
	}

	sopts := scanner.Options{Version: opts.Version}
	if opts.Intern {
		// один interner на файл: сканер мутирует его без блокировок
		sopts.Interner = source.NewInterner()
	}

	stop := opts.Timer.Track("scan")
	res.Tokens = scanner.New(file, sopts).ScanAll(res.Bag)
	stop(len(res.Tokens))

	if opts.CheckRegex {
		stop = opts.Timer.Track("regex")
		n := regexcheck.Check(res.Tokens, res.Bag)
		stop(n)
	}
	res.Bag.Sort()

	logging.FromContext(ctx).Debug("scanned",
		logging.KeyFile, file.Path,
		logging.KeyTokens, len(res.Tokens),
		logging.KeyDiags, res.Bag.Len())
	return res
}

// loadFailed builds the result for a file that could not be read.
func loadFailed(path string, err error, opts Options) *TokenizeResult {
	bag := diag.NewBag(opts.maxDiagnostics())
	bag.Add(diag.New(0, 0, diag.IOLoadFile, err.Error()))
	return &TokenizeResult{
		Path:    path,
		Version: opts.Version,
		File:    source.NewVirtualFile(path, ""),
		Bag:     bag,
	}
}
