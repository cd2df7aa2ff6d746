package nd

// MaxDims is the highest supported rank.
const MaxDims = 3

// R1, R2 and R3 select the rank of a coordinate type.
type (
	R1 struct{}
	R2 struct{}
	R3 struct{}
)

func (R1) Dims() int { return 1 }
func (R2) Dims() int { return 2 }
func (R3) Dims() int { return 3 }

// Rank is satisfied by exactly R1, R2 and R3.
type Rank interface {
	R1 | R2 | R3
	Dims() int
}

func dims[R Rank]() int {
	var r R
	return r.Dims()
}
