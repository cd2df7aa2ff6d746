package nd

import (
	"fmt"
	"math/bits"
)

// Range declares the extent (exclusive upper bound) of every dimension.
type Range[R Rank] struct {
	Array[R]
}

func NewRange1(e0 uint) Range[R1] {
	var r Range[R1]
	r.v[0] = e0
	return r
}

func NewRange2(e0, e1 uint) Range[R2] {
	var r Range[R2]
	r.v[0], r.v[1] = e0, e1
	return r
}

func NewRange3(e0, e1, e2 uint) Range[R3] {
	var r Range[R3]
	r.v[0], r.v[1], r.v[2] = e0, e1, e2
	return r
}

// RangeOf builds a range from exactly Dims() extents.
func RangeOf[R Rank](vals []uint) (Range[R], error) {
	var r Range[R]
	if n := dims[R](); len(vals) != n {
		return r, fmt.Errorf("%w: got %d extents for rank %d", ErrDimensionMismatch, len(vals), n)
	}
	copy(r.v[:], vals)
	return r, nil
}

// Size returns the number of coordinates in the range.
func (r Range[R]) Size() uint {
	n := uint(1)
	for i := 0; i < dims[R](); i++ {
		n *= r.v[i]
	}
	return n
}

// SizeChecked is Size with overflow detection. ok is false when the
// product of the extents does not fit in a uint.
func (r Range[R]) SizeChecked() (n uint, ok bool) {
	for i := 0; i < dims[R](); i++ {
		if r.v[i] == 0 {
			return 0, true
		}
	}
	n = 1
	for i := 0; i < dims[R](); i++ {
		hi, lo := bits.Mul(n, r.v[i])
		if hi != 0 {
			return 0, false
		}
		n = lo
	}
	return n, true
}

// Contains reports whether every component of id is below its extent.
func (r Range[R]) Contains(id ID[R]) bool {
	for i := 0; i < dims[R](); i++ {
		if id.v[i] >= r.v[i] {
			return false
		}
	}
	return true
}
