package schemaviz

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/schemaviz/schema"
)

// CompileAll compiles independent schemas concurrently and returns the
// diagrams in input order. Compilation itself is pure, so schemas can be
// fanned out without coordination; the worker limit defaults to GOMAXPROCS.
// The first compile error cancels the remaining work.
func CompileAll(ctx context.Context, schemas []*schema.Schema) ([]string, error) {
	out := make([]string, len(schemas))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range schemas {
		i, s := i, s
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			text, err := Compile(s)
			if err != nil {
				return err
			}
			out[i] = text
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
