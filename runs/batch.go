package runs

import (
	"context"
	"errors"
	"sync"

	"github.com/reusee/zom/configs"
	"github.com/reusee/zom/logs"
	"github.com/reusee/zom/syncs"
)

// RunAll runs every file in its own environment, at most Parallel at a time.
// Results are in the order of paths; a failed file leaves a nil result and its error is joined into the returned one.
type RunAll func(ctx context.Context, paths []string) ([]*Result, error)

func (Module) RunAll(
	parallel configs.Parallel,
	readSource ReadSource,
	run Run,
	logger logs.Logger,
) RunAll {
	return func(ctx context.Context, paths []string) ([]*Result, error) {
		results := make([]*Result, len(paths))
		errs := make([]error, len(paths))
		sem := syncs.NewSemaphore(int(parallel))
		var wg sync.WaitGroup
		for i, path := range paths {
			if err := sem.Acquire(ctx); err != nil {
				errs[i] = err
				break
			}
			wg.Go(func() {
				defer sem.Release()
				src, err := readSource(path)
				if err != nil {
					errs[i] = err
					return
				}
				results[i], errs[i] = run(ctx, path, src)
			})
		}
		wg.Wait()
		err := errors.Join(errs...)
		if err != nil {
			logger.DebugContext(ctx, "run all", "files", len(paths), "error", err)
		}
		return results, err
	}
}
