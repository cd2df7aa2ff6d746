package nd

import "fmt"

// Op names a component-wise binary operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpShl
	OpShr
	OpAnd
	OpOr
	OpXor
	OpLogicalAnd
	OpLogicalOr
	OpLess
	OpGreater
	OpLessEq
	OpGreaterEq
	numOps
)

var opSymbols = [numOps]string{
	"+", "-", "*", "/", "%", "<<", ">>", "&", "|", "^",
	"&&", "||", "<", ">", "<=", ">=",
}

var opFuncs = [numOps]func(x, y uint) uint{
	add, sub, mul, div, mod, shl, shr, and, or, xor,
	land, lor, lt, gt, le, ge,
}

func add(x, y uint) uint { return x + y }
func sub(x, y uint) uint { return x - y }
func mul(x, y uint) uint { return x * y }
func div(x, y uint) uint { return x / y }
func mod(x, y uint) uint { return x % y }
func shl(x, y uint) uint { return x << y }
func shr(x, y uint) uint { return x >> y }
func and(x, y uint) uint { return x & y }
func or(x, y uint) uint  { return x | y }
func xor(x, y uint) uint { return x ^ y }

func land(x, y uint) uint { return b2u(x != 0 && y != 0) }
func lor(x, y uint) uint  { return b2u(x != 0 || y != 0) }
func lt(x, y uint) uint   { return b2u(x < y) }
func gt(x, y uint) uint   { return b2u(x > y) }
func le(x, y uint) uint   { return b2u(x <= y) }
func ge(x, y uint) uint   { return b2u(x >= y) }

func b2u(b bool) uint {
	if b {
		return 1
	}
	return 0
}

func (op Op) String() string {
	if op < 0 || op >= numOps {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opSymbols[op]
}

// Compound reports whether op has a compound-assignment form (op=).
func (op Op) Compound() bool {
	return op >= OpAdd && op <= OpXor
}

// ParseOp maps an operator symbol such as "<<" to its Op. A trailing "="
// on a compound-capable symbol ("+=") is accepted.
func ParseOp(sym string) (Op, error) {
	for i, s := range opSymbols {
		if s == sym {
			return Op(i), nil
		}
	}
	if n := len(sym); n > 1 && sym[n-1] == '=' {
		if op, err := ParseOp(sym[:n-1]); err == nil && op.Compound() {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, sym)
}

func (op Op) fn() func(x, y uint) uint {
	if op < 0 || op >= numOps {
		panic(fmt.Sprintf("nd: invalid operator %d", int(op)))
	}
	return opFuncs[op]
}

func (op Op) compound() func(x, y uint) uint {
	if !op.Compound() {
		panic(fmt.Sprintf("nd: operator %s has no compound form", op))
	}
	return opFuncs[op]
}

// Apply combines a and b component-wise.
func Apply[R Rank](op Op, a, b ID[R]) ID[R] {
	return zip(a, b, op.fn())
}

// ApplyScalar combines every component of a with s on the right.
func ApplyScalar[R Rank](op Op, a ID[R], s uint) ID[R] {
	return broadcast(a, s, op.fn())
}

// ApplyScalarLeft combines s on the left with every component of a.
func ApplyScalarLeft[R Rank](op Op, s uint, a ID[R]) ID[R] {
	f := op.fn()
	var out ID[R]
	for i := 0; i < dims[R](); i++ {
		out.v[i] = f(s, a.v[i])
	}
	return out
}

func zip[R Rank](a, b ID[R], f func(x, y uint) uint) ID[R] {
	var out ID[R]
	for i := 0; i < dims[R](); i++ {
		out.v[i] = f(a.v[i], b.v[i])
	}
	return out
}

func broadcast[R Rank](a ID[R], s uint, f func(x, y uint) uint) ID[R] {
	var out ID[R]
	for i := 0; i < dims[R](); i++ {
		out.v[i] = f(a.v[i], s)
	}
	return out
}
