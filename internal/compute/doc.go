// Package compute provides host-side backends for iterating an nd range
// in parallel.
//
// The package automatically selects the best available backend:
//
//   - CPU: chunked fan-out over runtime.NumCPU() goroutines
//   - Serial: a single goroutine in index order
//
// # Iteration
//
// A kernel is called once per coordinate with an [nd.Item] recovered from
// the flat index by delinearization:
//
//	r := nd.NewRange2(1080, 1920)
//	err := compute.ParallelFor(ctx, nil, r, func(it nd.Item[nd.R2]) error {
//	    pix[it.LinearID()] = shade(it.ID())
//	    return nil
//	})
//
// The first kernel error cancels the remaining chunks and is returned as a
// [*KernelError].
package compute
