package driver

import (
	"bytes"
	"context"
	"errors"
	"os"

	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/format"
	"github.com/palantir/tslint-sub000/internal/logging"
	"github.com/palantir/tslint-sub000/internal/scanner"
	"github.com/palantir/tslint-sub000/internal/source"
	"github.com/palantir/tslint-sub000/internal/testkit"
)

// FormatOptions configures code formatting.
type FormatOptions struct {
	Options
	Check  bool
	Stdout bool
	Format format.Options
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Bag       *diag.Bag // parse diagnostics when Err is ErrParse
	File      *source.File
	Formatted []byte
}

// ErrParse means the file has syntax errors and was left untouched.
var ErrParse = errors.New("format: parse errors present")

// FormatPaths formats provided files or directories. When opts.Check is
// true, files are not modified; Changed indicates whether formatting would
// update the file contents. When opts.Stdout is true, formatted content is
// returned in the results without touching files on disk.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}

	log := logging.FromContext(ctx)
	results := make([]FormatResult, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := formatSingleFile(path, opts)
		if result.Err != nil || opts.Check || opts.Stdout || !result.Changed {
			results = append(results, result)
			continue
		}

		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, result.Formatted, mode.Perm()); err != nil {
			result.Err = err
		} else {
			log.Info("formatted", logging.KeyFile, path)
		}
		results = append(results, result)
	}
	return results, nil
}

func formatSingleFile(path string, opts FormatOptions) FormatResult {
	result := FormatResult{Path: path}
	stop := opts.Timer.Track("read")
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from collectSourceFiles
	if err != nil {
		result.Err = err
		return result
	}
	stop(1)

	fileSet := source.NewFileSet()
	file := fileSet.Get(fileSet.Add(path, data, 0))
	result.File = file
	bag := diag.NewBag(opts.maxDiagnostics())

	stop = opts.Timer.Track("parse")
	tree := testkit.Parse(file, scanner.Options{Version: opts.Version}, bag)
	stop(1)
	if bag.HasErrors() {
		bag.Sort()
		result.Bag = bag
		result.Err = ErrParse
		return result
	}

	stop = opts.Timer.Track("print")
	formatted := []byte(format.Format(tree, opts.Format))
	stop(1)
	result.Formatted = formatted
	result.Changed = !bytes.Equal(file.Content, formatted)
	return result
}
