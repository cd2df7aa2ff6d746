package nd

import "fmt"

// ID is a coordinate in an iteration space of rank R.
type ID[R Rank] struct {
	Array[R]
}

func NewID1(x0 uint) ID[R1] {
	var id ID[R1]
	id.v[0] = x0
	return id
}

func NewID2(x0, x1 uint) ID[R2] {
	var id ID[R2]
	id.v[0], id.v[1] = x0, x1
	return id
}

func NewID3(x0, x1, x2 uint) ID[R3] {
	var id ID[R3]
	id.v[0], id.v[1], id.v[2] = x0, x1, x2
	return id
}

// IDFromRange returns the coordinate whose components are the extents of r.
func IDFromRange[R Rank](r Range[R]) ID[R] {
	return ID[R]{Array: r.Array}
}

// IDFromItem returns the positional part of it, offset included.
func IDFromItem[R Rank](it Item[R]) ID[R] {
	return it.ID()
}

// IDOf builds a coordinate from exactly Dims() components.
func IDOf[R Rank](vals []uint) (ID[R], error) {
	var id ID[R]
	if n := dims[R](); len(vals) != n {
		return id, fmt.Errorf("%w: got %d components for rank %d", ErrDimensionMismatch, len(vals), n)
	}
	copy(id.v[:], vals)
	return id, nil
}

// ToRange reinterprets the coordinate as a range.
//
// Deprecated: build the range explicitly with NewRange1/2/3 or RangeOf.
func (a ID[R]) ToRange() Range[R] {
	return Range[R]{Array: a.Array}
}

func (a ID[R]) Add(b ID[R]) ID[R] { return zip(a, b, add) }
func (a ID[R]) Sub(b ID[R]) ID[R] { return zip(a, b, sub) }
func (a ID[R]) Mul(b ID[R]) ID[R] { return zip(a, b, mul) }
func (a ID[R]) Div(b ID[R]) ID[R] { return zip(a, b, div) }
func (a ID[R]) Mod(b ID[R]) ID[R] { return zip(a, b, mod) }

func (a ID[R]) AddN(s uint) ID[R] { return broadcast(a, s, add) }
func (a ID[R]) SubN(s uint) ID[R] { return broadcast(a, s, sub) }
func (a ID[R]) MulN(s uint) ID[R] { return broadcast(a, s, mul) }
func (a ID[R]) DivN(s uint) ID[R] { return broadcast(a, s, div) }
func (a ID[R]) ModN(s uint) ID[R] { return broadcast(a, s, mod) }

// Relational operators yield 1 in each component where the relation holds.
func (a ID[R]) Less(b ID[R]) ID[R]      { return zip(a, b, lt) }
func (a ID[R]) Greater(b ID[R]) ID[R]   { return zip(a, b, gt) }
func (a ID[R]) LessEq(b ID[R]) ID[R]    { return zip(a, b, le) }
func (a ID[R]) GreaterEq(b ID[R]) ID[R] { return zip(a, b, ge) }

// Assign applies a compound assignment (a op= b). op must be Compound.
func (a *ID[R]) Assign(op Op, b ID[R]) {
	*a = zip(*a, b, op.compound())
}

// AssignN applies a compound assignment with a broadcast scalar (a op= s).
func (a *ID[R]) AssignN(op Op, s uint) {
	*a = broadcast(*a, s, op.compound())
}

func (a ID[R]) Pos() ID[R] { return a }

// Neg negates every component with unsigned wraparound.
func (a ID[R]) Neg() ID[R] {
	var out ID[R]
	for i := 0; i < dims[R](); i++ {
		out.v[i] = -a.v[i]
	}
	return out
}

// Inc increments every component and returns the new value.
func (a *ID[R]) Inc() ID[R] {
	*a = a.AddN(1)
	return *a
}

// Dec decrements every component and returns the new value.
func (a *ID[R]) Dec() ID[R] {
	*a = a.SubN(1)
	return *a
}

// PostInc increments every component and returns the previous value.
func (a *ID[R]) PostInc() ID[R] {
	old := *a
	*a = old.AddN(1)
	return old
}

// PostDec decrements every component and returns the previous value.
func (a *ID[R]) PostDec() ID[R] {
	old := *a
	*a = old.SubN(1)
	return old
}
