package nd

import "fmt"

// CurrentID returns the coordinate of the currently executing work-item.
// Host code has no such work-item, so it always fails with
// ErrFeatureNotSupported. Kernels receive their coordinate as an Item.
func CurrentID[R Rank]() (ID[R], error) {
	var id ID[R]
	return id, fmt.Errorf("%w: free function calls are not supported on host", ErrFeatureNotSupported)
}

// ThisID is the older spelling of CurrentID.
//
// Deprecated: use CurrentID, or read the coordinate from the Item passed
// to the kernel.
func ThisID[R Rank]() (ID[R], error) {
	return CurrentID[R]()
}
