package processor

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ProcessAll processes paths with at most performance.max_concurrent files
// in flight. Per-file failures are recorded on each Result; results keep the
// order of paths. The returned error is non-nil only when ctx is cancelled.
func (p *implProcessor) ProcessAll(ctx context.Context, paths []string) ([]*Result, error) {
	results := make([]*Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.cfg.Performance.MaxConcurrent, 1))

	for i, path := range paths {
		g.Go(func() error {
			res, err := p.Process(gctx, path)
			if err != nil {
				p.logger.Error(gctx, "Failed to process %s: %v", path, err)
				res = &Result{Source: path, Name: meetingName(path), Err: err}
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	success := 0
	for _, r := range results {
		if r.Err == nil {
			success++
		}
	}
	p.logger.Info(ctx, "Batch complete: %d success, %d failed", success, len(results)-success)

	return results, ctx.Err()
}
