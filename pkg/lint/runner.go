package lint

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Run validates the given files and returns their aggregated report. Files
// are independent, so they are processed concurrently up to the jobs bound
// (<= 0 means one worker per CPU); results are slotted by input index so the
// report order always matches the input order.
func Run(ctx context.Context, paths []string, config *Config, jobs int) (*Report, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	analyzer := NewAnalyzer(config)
	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = analyzer.AnalyzeFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{Files: results}, nil
}
