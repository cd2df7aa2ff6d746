package compute

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultMinChunk is the smallest number of items worth a goroutine.
const DefaultMinChunk = 1024

type CPUBackend struct {
	workers  int
	minChunk uint
}

func NewCPUBackend() *CPUBackend {
	return NewCPUBackendWithWorkers(runtime.NumCPU())
}

func NewCPUBackendWithWorkers(workers int) *CPUBackend {
	if workers < 1 {
		workers = 1
	}
	return &CPUBackend{
		workers:  workers,
		minChunk: DefaultMinChunk,
	}
}

func (c *CPUBackend) Name() string    { return "cpu" }
func (c *CPUBackend) Available() bool { return true }
func (c *CPUBackend) Cleanup()        {}
func (c *CPUBackend) Workers() int    { return c.workers }

// SetMinChunk sets the smallest chunk handed to one goroutine. Ranges
// below it run serially on the calling goroutine.
func (c *CPUBackend) SetMinChunk(n uint) {
	if n < 1 {
		n = 1
	}
	c.minChunk = n
}

func (c *CPUBackend) Dispatch(ctx context.Context, total uint, fn ChunkFunc) error {
	if total == 0 {
		return ctx.Err()
	}

	workers := uint(c.workers)
	if n := total / c.minChunk; n < workers {
		workers = n
	}
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(ctx, 0, total)
	}

	chunkSize := (total + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := uint(0); w < workers; w++ {
		start := w * chunkSize
		if start >= total {
			break
		}
		end := min(start+chunkSize, total)

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, start, end)
		})
	}

	return g.Wait()
}
