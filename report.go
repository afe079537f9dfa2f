package borelog

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/tsawler/borelog/model"
)

// Result is the outcome of laying out one borehole in a batch.
type Result struct {
	Borehole string
	Layout   *model.Layout
	Warnings []Warning
	Err      error
}

// LayoutAll lays out several boreholes with up to workers goroutines
// (runtime.NumCPU when workers < 1). Results are index-aligned with
// boreholes. A failure is recorded in that borehole's Result and never stops
// the others. Once ctx is done no further boreholes are started; those get
// ctx.Err(). The returned error is non-nil only for an invalid configuration,
// detected before any work starts.
func LayoutAll(ctx context.Context, boreholes []Borehole, opts Options, workers int) ([]Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(boreholes))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = layoutOne(boreholes[i], opts)
			}
		}()
	}

dispatch:
	for i := range boreholes {
		select {
		case <-ctx.Done():
			for j := i; j < len(boreholes); j++ {
				results[j] = Result{Borehole: boreholes[j].ID, Err: ctx.Err()}
			}
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results, nil
}

// layoutOne converts a panic inside the pipeline into a per-borehole error.
func layoutOne(b Borehole, opts Options) (res Result) {
	res.Borehole = b.ID
	defer func() {
		if r := recover(); r != nil {
			res.Layout = nil
			res.Err = fmt.Errorf("borehole %q: layout failed: %v", b.ID, r)
		}
	}()

	res.Layout, res.Warnings, res.Err = LayoutBorehole(b, opts)
	return res
}
