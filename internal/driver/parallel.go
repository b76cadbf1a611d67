package driver

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/palantir/tslint-sub000/internal/logging"
)

// ErrNoSourceFiles is returned when the given paths contain nothing to scan.
var ErrNoSourceFiles = errors.New("no JavaScript or TypeScript files found")

// TokenizeDir токенизирует все файлы под paths параллельно, по одному
// сканеру на файл. Результаты идут в порядке отсортированных путей; файл,
// который не удалось прочитать, получает диагностику IOLoadFile.
func TokenizeDir(ctx context.Context, paths []string, opts Options) ([]*TokenizeResult, error) {
	stop := opts.Timer.Track("discover")
	files, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	stop(len(files))
	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}

	log := logging.FromContext(ctx)
	jobs := opts.jobs(len(files))
	log.Info("tokenizing", logging.KeyFiles, len(files), logging.KeyJobs, jobs)
	started := time.Now()

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*TokenizeResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Tokenize(gctx, path, opts)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				log.Warn("load failed", logging.KeyFile, path, "err", err)
				res = loadFailed(path, err, opts)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("done", logging.KeyFiles, len(files), logging.KeyDuration, time.Since(started))
	return results, nil
}
