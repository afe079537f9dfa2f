package cli

import (
	"context"
	"fmt"

	"github.com/tsawler/borelog"
	"github.com/tsawler/borelog/internal/logger"
	"github.com/tsawler/borelog/internal/source"
)

// layoutFiles loads and lays out every file with the current settings.
// Per-borehole failures are returned in the results; the error is for
// problems that stop the whole run.
func layoutFiles(ctx context.Context, paths []string, workers int) ([]borelog.Result, error) {
	opts, err := settings.Options()
	if err != nil {
		return nil, err
	}

	boreholes, err := source.LoadAll(paths)
	if err != nil {
		return nil, err
	}
	for _, b := range boreholes {
		logger.Debug("%s: %d intervals", b.ID, len(b.Intervals))
	}

	if workers == 0 {
		workers = settings.Workers
	}
	results, err := borelog.LayoutAll(ctx, boreholes, opts, workers)
	if err != nil {
		return nil, err
	}

	for _, res := range results {
		for _, w := range res.Warnings {
			logger.Warn("%s: %s", res.Borehole, w)
		}
		if res.Err == nil {
			logger.Info("%s: %d pages, %d overflow pages",
				res.Borehole, res.Layout.PageCount(), len(res.Layout.OverflowPages()))
		}
	}
	return results, nil
}

// firstError returns the first per-borehole failure.
func firstError(results []borelog.Result) error {
	for _, res := range results {
		if res.Err != nil {
			return fmt.Errorf("%s: %w", res.Borehole, res.Err)
		}
	}
	return nil
}
