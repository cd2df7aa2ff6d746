package nd

func checkDim[R Rank](i int) {
	if n := dims[R](); i < 0 || i >= n {
		panic(&BoundsError{What: "dimension", Dim: -1, Value: uint(i), Limit: uint(n)})
	}
}

func checkCoord[R Rank](r Range[R], id, offset ID[R]) {
	for i := 0; i < dims[R](); i++ {
		if v := id.v[i] + offset.v[i]; v >= r.v[i] {
			panic(&BoundsError{What: "coordinate", Dim: i, Value: v, Limit: r.v[i]})
		}
	}
}

func checkFlat[R Rank](r Range[R], idx uint) {
	if n := r.Size(); idx >= n {
		panic(&BoundsError{What: "flat index", Dim: -1, Value: idx, Limit: n})
	}
}
