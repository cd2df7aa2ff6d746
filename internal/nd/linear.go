package nd

// FlatOffset maps id, shifted by offset, to its row-major position in r.
// The last dimension varies fastest. id[i]+offset[i] < r[i] must hold for
// every i; it is not checked.
func FlatOffset[R Rank](r Range[R], id, offset ID[R]) uint {
	if checkBounds {
		checkCoord(r, id, offset)
	}
	var acc uint
	for i := 0; i < dims[R](); i++ {
		acc = acc*r.v[i] + offset.v[i] + id.v[i]
	}
	return acc
}

// Linear is FlatOffset with a zero offset.
func Linear[R Rank](r Range[R], id ID[R]) uint {
	var zero ID[R]
	return FlatOffset(r, id, zero)
}

func Delinearize1(r Range[R1], idx uint) ID[R1] {
	if checkBounds {
		checkFlat(r, idx)
	}
	return NewID1(idx)
}

func Delinearize2(r Range[R2], idx uint) ID[R2] {
	if checkBounds {
		checkFlat(r, idx)
	}
	x := idx % r.v[1]
	y := idx / r.v[1]
	return NewID2(y, x)
}

func Delinearize3(r Range[R3], idx uint) ID[R3] {
	if checkBounds {
		checkFlat(r, idx)
	}
	d12 := r.v[1] * r.v[2]
	z := idx / d12
	rest := idx % d12
	y := rest / r.v[2]
	x := rest % r.v[2]
	return NewID3(z, y, x)
}

// Delinearize is the inverse of Linear: it recovers the coordinate at flat
// position idx of r. idx must be below r.Size().
func Delinearize[R Rank](r Range[R], idx uint) ID[R] {
	switch rr := any(r).(type) {
	case Range[R1]:
		return any(Delinearize1(rr, idx)).(ID[R])
	case Range[R2]:
		return any(Delinearize2(rr, idx)).(ID[R])
	case Range[R3]:
		return any(Delinearize3(rr, idx)).(ID[R])
	}
	panic("nd: unreachable rank")
}
