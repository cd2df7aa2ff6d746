package compute

import (
	"context"

	"github.com/san-kum/ndspace/internal/logging"
	"github.com/san-kum/ndspace/internal/nd"
)

// cancelCheckInterval is how many items a chunk processes between
// context checks.
const cancelCheckInterval = 256

// ParallelFor calls kernel once for every coordinate of r. A nil backend
// means the active one.
func ParallelFor[R nd.Rank](ctx context.Context, b Backend, r nd.Range[R], kernel func(nd.Item[R]) error) error {
	var zero nd.ID[R]
	return ParallelForOffset(ctx, b, r, zero, kernel)
}

// ParallelForOffset is ParallelFor with every item shifted by offset.
func ParallelForOffset[R nd.Rank](ctx context.Context, b Backend, r nd.Range[R], offset nd.ID[R], kernel func(nd.Item[R]) error) error {
	if b == nil {
		b = GetBackend()
	}
	total := r.Size()
	logging.Logger().Debug("compute: dispatch",
		"backend", b.Name(),
		"range", r.String(),
		"offset", offset.String(),
		"items", total,
	)

	return b.Dispatch(ctx, total, func(ctx context.Context, start, end uint) error {
		for i := start; i < end; i++ {
			if (i-start)%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			it := nd.NewItemWithOffset(nd.Delinearize(r, i), r, offset)
			if err := kernel(it); err != nil {
				return &KernelError{Flat: i, Coord: it.ID().String(), Wrapped: err}
			}
		}
		return nil
	})
}

// Fill evaluates fn at every coordinate of r and returns the results in
// row-major order, so out[nd.Linear(r, id)] == fn(id).
func Fill[R nd.Rank, T any](ctx context.Context, b Backend, r nd.Range[R], fn func(nd.ID[R]) T) ([]T, error) {
	out := make([]T, r.Size())
	err := ParallelFor(ctx, b, r, func(it nd.Item[R]) error {
		out[it.LinearID()] = fn(it.ID())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
