package nd

import (
	"strconv"
	"strings"
)

// Array is a fixed-length tuple of Dims() unsigned components stored inline.
// Storage past Dims() is kept zero so == compares only live components.
type Array[R Rank] struct {
	v [MaxDims]uint
}

func (a Array[R]) Dims() int { return dims[R]() }

// Get returns component i. i must be in [0, Dims()).
func (a Array[R]) Get(i int) uint {
	if checkBounds {
		checkDim[R](i)
	}
	return a.v[i]
}

// Set stores component i. i must be in [0, Dims()).
func (a *Array[R]) Set(i int, x uint) {
	if checkBounds {
		checkDim[R](i)
	}
	a.v[i] = x
}

func (a Array[R]) Equal(b Array[R]) bool { return a == b }

// Slice returns a copy of the live components.
func (a Array[R]) Slice() []uint {
	out := make([]uint, dims[R]())
	copy(out, a.v[:])
	return out
}

func (a Array[R]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < dims[R](); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(uint64(a.v[i]), 10))
	}
	sb.WriteByte(')')
	return sb.String()
}
