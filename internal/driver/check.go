package driver

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/palantir/tslint-sub000/internal/diag"
	"github.com/palantir/tslint-sub000/internal/logging"
	"github.com/palantir/tslint-sub000/internal/source"
)

// CheckResult is the diagnostics-only outcome for one file.
type CheckResult struct {
	Path   string
	File   *source.File
	Tokens int
	Bag    *diag.Bag
	Cached bool
}

// Check scans every file under paths for diagnostics. Results found in
// opts.Memo or opts.Cache under the same content hash and options are
// reused without scanning.
func Check(ctx context.Context, paths []string, opts Options) ([]CheckResult, error) {
	files, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}

	results := make([]CheckResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkFile(ctx context.Context, path string, opts Options) CheckResult {
	log := logging.FromContext(ctx)
	content, err := os.ReadFile(path) // #nosec G304 -- path comes from collectSourceFiles
	if err != nil {
		res := loadFailed(path, err, opts)
		return CheckResult{Path: path, File: res.File, Bag: res.Bag}
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.Add(path, content, 0))
	key := cacheKey(file.Hash, opts)

	if payload, ok := opts.Memo.Get(file.Path, key); ok {
		return fromPayload(file, payload, opts)
	}
	var payload DiskPayload
	if ok, err := opts.Cache.Get(key, &payload); err != nil {
		log.Warn("cache read failed", logging.KeyFile, path, "err", err)
	} else if ok && payload.ContentHash == file.Hash {
		opts.Memo.Put(file.Path, key, &payload)
		return fromPayload(file, &payload, opts)
	}

	res := TokenizeSource(ctx, file, opts)
	fresh := toPayload(res)
	opts.Memo.Put(file.Path, key, fresh)
	if err := opts.Cache.Put(key, fresh); err != nil {
		log.Warn("cache write failed", logging.KeyFile, path, "err", err)
	}
	return CheckResult{Path: res.Path, File: file, Tokens: len(res.Tokens), Bag: res.Bag}
}

func fromPayload(file *source.File, payload *DiskPayload, opts Options) CheckResult {
	opts.Timer.Add("cached", 0, 1)
	return CheckResult{
		Path:   file.Path,
		File:   file,
		Tokens: payload.Tokens,
		Bag:    payload.bag(opts.maxDiagnostics()),
		Cached: true,
	}
}
