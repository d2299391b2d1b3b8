package propgraph

import (
	"github.com/hupe1980/propgraph/internal/sparse"
	"github.com/hupe1980/propgraph/value"
)

// Number is every value type except bool.
type Number = sparse.Number

type (
	// BinaryOp combines two values.
	BinaryOp[T value.Type] = sparse.BinaryOp[T]
	// UnaryOp maps one value.
	UnaryOp[T value.Type] = sparse.UnaryOp[T]
	// IndexUnaryOp decides whether the element x at (row, col) is kept by a
	// select. For edges, row is the tail and col the head; for vertices, row
	// is the vertex and col is 0.
	IndexUnaryOp[T value.Type] = sparse.IndexUnaryOp[T]
	// Monoid is an associative BinaryOp with an identity.
	Monoid[T value.Type] = sparse.Monoid[T]
	// Semiring pairs an additive monoid with a multiplicative operator.
	Semiring[T value.Type] = sparse.Semiring[T]
)

// Plus returns a + b.
func Plus[T Number]() BinaryOp[T] { return sparse.Plus[T]() }

// Minus returns a - b.
func Minus[T Number]() BinaryOp[T] { return sparse.Minus[T]() }

// Times returns a * b.
func Times[T Number]() BinaryOp[T] { return sparse.Times[T]() }

// Div returns a / b; integer division by zero yields 0.
func Div[T Number]() BinaryOp[T] { return sparse.Div[T]() }

// Min returns the smaller operand.
func Min[T Number]() BinaryOp[T] { return sparse.Min[T]() }

// Max returns the larger operand.
func Max[T Number]() BinaryOp[T] { return sparse.Max[T]() }

// First returns the first operand.
func First[T value.Type]() BinaryOp[T] { return sparse.First[T]() }

// Second returns the second operand.
func Second[T value.Type]() BinaryOp[T] { return sparse.Second[T]() }

// Pair returns 1.
func Pair[T Number]() BinaryOp[T] { return sparse.Pair[T]() }

// LOr returns a || b.
func LOr() BinaryOp[bool] { return sparse.LOr() }

// LAnd returns a && b.
func LAnd() BinaryOp[bool] { return sparse.LAnd() }

// LXor returns a != b.
func LXor() BinaryOp[bool] { return sparse.LXor() }

// PlusMonoid is Plus with identity 0.
func PlusMonoid[T Number]() Monoid[T] { return sparse.PlusMonoid[T]() }

// TimesMonoid is Times with identity 1.
func TimesMonoid[T Number]() Monoid[T] { return sparse.TimesMonoid[T]() }

// MinMonoid is Min with the largest value of T as identity.
func MinMonoid[T Number]() Monoid[T] { return sparse.MinMonoid[T]() }

// MaxMonoid is Max with the smallest value of T as identity.
func MaxMonoid[T Number]() Monoid[T] { return sparse.MaxMonoid[T]() }

// PlusTimes is the arithmetic semiring.
func PlusTimes[T Number]() Semiring[T] { return sparse.PlusTimes[T]() }

// MinPlus is the tropical semiring used for shortest paths.
func MinPlus[T Number]() Semiring[T] { return sparse.MinPlus[T]() }

// MaxPlus is the semiring used for longest paths.
func MaxPlus[T Number]() Semiring[T] { return sparse.MaxPlus[T]() }

// MinTimes multiplies along paths and keeps the minimum.
func MinTimes[T Number]() Semiring[T] { return sparse.MinTimes[T]() }

// MaxMin is the bottleneck semiring.
func MaxMin[T Number]() Semiring[T] { return sparse.MaxMin[T]() }

// PlusPair counts paths.
func PlusPair[T Number]() Semiring[T] { return sparse.PlusPair[T]() }

// AnyPair yields 1 wherever a path exists.
func AnyPair[T Number]() Semiring[T] { return sparse.AnyPair[T]() }

// LorLand is the boolean reachability semiring.
func LorLand() Semiring[bool] { return sparse.LorLand() }

// Identity returns its operand.
func Identity[T value.Type]() UnaryOp[T] { return sparse.Identity[T]() }

// AdditiveInverse returns -a.
func AdditiveInverse[T Number]() UnaryOp[T] { return sparse.AdditiveInverse[T]() }

// Abs returns |a|.
func Abs[T Number]() UnaryOp[T] { return sparse.Abs[T]() }

// One returns 1.
func One[T Number]() UnaryOp[T] { return sparse.One[T]() }

// LNot returns !a.
func LNot() UnaryOp[bool] { return sparse.LNot() }

// BindFirst returns x -> op(s, x).
func BindFirst[T value.Type](op BinaryOp[T], s T) UnaryOp[T] { return sparse.BindFirst(op, s) }

// BindSecond returns x -> op(x, s).
func BindSecond[T value.Type](op BinaryOp[T], s T) UnaryOp[T] { return sparse.BindSecond(op, s) }

// ValueEQ keeps elements equal to thunk.
func ValueEQ[T value.Type](thunk T) IndexUnaryOp[T] { return sparse.ValueEQ(thunk) }

// ValueNE keeps elements not equal to thunk.
func ValueNE[T value.Type](thunk T) IndexUnaryOp[T] { return sparse.ValueNE(thunk) }

// ValueGT keeps elements greater than thunk.
func ValueGT[T Number](thunk T) IndexUnaryOp[T] { return sparse.ValueGT(thunk) }

// ValueGE keeps elements greater than or equal to thunk.
func ValueGE[T Number](thunk T) IndexUnaryOp[T] { return sparse.ValueGE(thunk) }

// ValueLT keeps elements less than thunk.
func ValueLT[T Number](thunk T) IndexUnaryOp[T] { return sparse.ValueLT(thunk) }

// ValueLE keeps elements less than or equal to thunk.
func ValueLE[T Number](thunk T) IndexUnaryOp[T] { return sparse.ValueLE(thunk) }

// RowLE keeps elements whose row is at most k.
func RowLE[T value.Type](k uint32) IndexUnaryOp[T] { return sparse.RowLE[T](k) }

// RowGT keeps elements whose row is greater than k.
func RowGT[T value.Type](k uint32) IndexUnaryOp[T] { return sparse.RowGT[T](k) }

// ColLE keeps elements whose column is at most k.
func ColLE[T value.Type](k uint32) IndexUnaryOp[T] { return sparse.ColLE[T](k) }

// ColGT keeps elements whose column is greater than k.
func ColGT[T value.Type](k uint32) IndexUnaryOp[T] { return sparse.ColGT[T](k) }

// Diag keeps self-loops.
func Diag[T value.Type]() IndexUnaryOp[T] { return sparse.Diag[T]() }

// OffDiag drops self-loops.
func OffDiag[T value.Type]() IndexUnaryOp[T] { return sparse.OffDiag[T]() }

// Tril keeps edges with head <= tail.
func Tril[T value.Type]() IndexUnaryOp[T] { return sparse.Tril[T]() }

// Triu keeps edges with head >= tail.
func Triu[T value.Type]() IndexUnaryOp[T] { return sparse.Triu[T]() }
