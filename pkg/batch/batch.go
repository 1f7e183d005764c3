// Package batch transpiles many source files concurrently.
package batch

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"ruau/pkg/compiler"
	"ruau/pkg/utils"
)

// Job names one input file and where its translation goes.
// An empty Out selects utils.DefaultOutputPath(In).
type Job struct {
	In  string
	Out string
}

// Result is the outcome of a single Job.
type Result struct {
	In     string
	Out    string // empty when the job was run with DryRun
	Output string
	Tokens []compiler.Token
}

// Options controls a batch run.
type Options struct {
	// Limit caps the number of files processed at once. Zero or less means no limit.
	Limit int
	// DryRun skips writing output files; translations are only returned.
	DryRun bool
}

// Run transpiles every job and returns the results in job order. It stops
// scheduling new work after the first failure and returns that error.
func Run(ctx context.Context, jobs []Job, opts Options) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Limit > 0 {
		g.SetLimit(opts.Limit)
	}

	for i, job := range jobs {
		i, job := i, job // per-iteration copies (go <1.22 loopvar semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runJob(job, opts.DryRun)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runJob(job Job, dryRun bool) (Result, error) {
	src, err := os.ReadFile(job.In)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read input file %q: %w", job.In, err)
	}

	output, tokens := compiler.Transpile(string(src))
	res := Result{In: job.In, Output: output, Tokens: tokens}
	if dryRun {
		return res, nil
	}

	res.Out = job.Out
	if res.Out == "" {
		res.Out = utils.DefaultOutputPath(job.In)
	}
	if err := os.WriteFile(res.Out, []byte(output), 0o644); err != nil {
		return Result{}, fmt.Errorf("failed to write output file %q: %w", res.Out, err)
	}
	return res, nil
}
