package nd

// Item is the position of one work-item inside a range, optionally shifted
// by an offset. It is what iteration backends hand to a kernel.
type Item[R Rank] struct {
	pos    ID[R]
	rng    Range[R]
	offset ID[R]
}

func NewItem[R Rank](pos ID[R], r Range[R]) Item[R] {
	return Item[R]{pos: pos, rng: r}
}

func NewItemWithOffset[R Rank](pos ID[R], r Range[R], offset ID[R]) Item[R] {
	return Item[R]{pos: pos, rng: r, offset: offset}
}

// ID returns the global coordinate: position plus offset.
func (it Item[R]) ID() ID[R] { return it.pos.Add(it.offset) }

func (it Item[R]) Get(i int) uint { return it.pos.Get(i) + it.offset.Get(i) }

func (it Item[R]) Range() Range[R] { return it.rng }

func (it Item[R]) Offset() ID[R] { return it.offset }

// LinearID returns the row-major position of the item inside its range,
// ignoring the offset.
func (it Item[R]) LinearID() uint { return Linear(it.rng, it.pos) }
