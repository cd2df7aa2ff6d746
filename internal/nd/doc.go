// Package nd provides coordinate arithmetic for rectangular iteration
// spaces of rank 1, 2 or 3.
//
// The package defines the core value types and the linearization contract
// between them:
//
//   - [Array]: fixed-length tuple of unsigned components
//   - [ID]: a coordinate in the iteration space
//   - [Range]: the extent of each dimension (exclusive upper bound)
//   - [Item]: a coordinate together with the range and offset it lives in
//   - [FlatOffset] / [Delinearize]: row-major conversion between a
//     coordinate and a flat index
//
// The rank is a type parameter restricted to [R1], [R2] and [R3], so mixing
// ranks or asking for rank 4 fails to compile.
//
// # Example
//
//	r := nd.NewRange2(4, 5)
//	id := nd.NewID2(2, 3)
//	flat := nd.Linear(r, id)          // 13
//	back := nd.Delinearize2(r, flat)  // (2, 3)
//
// # Build Tags
//
// Two tags select alternative capability sets at compile time:
//
//   - ndnoconv: removes the rank-1 integer conversion helpers ([Uint],
//     [EqualUint], [NotEqualUint])
//   - ndassert: enables bounds assertions in [Array.Get], [Array.Set],
//     [FlatOffset] and the Delinearize functions
//
// Without ndassert no index is validated; callers must keep every
// coordinate inside its range.
//
// # Thread Safety
//
// All types are plain values. Functions never retain or share their
// arguments and are safe for concurrent use.
package nd
