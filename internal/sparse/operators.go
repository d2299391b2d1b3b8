package sparse

import (
	"math"

	"github.com/hupe1980/propgraph/value"
)

// Number is every supported value type except bool.
type Number interface {
	int8 | int16 | int32 | int64 | int |
		uint8 | uint16 | uint32 | uint64 | uint |
		float32 | float64
}

// BinaryOp combines two values.
type BinaryOp[T value.Type] func(a, b T) T

// UnaryOp maps one value.
type UnaryOp[T value.Type] func(a T) T

// IndexUnaryOp decides whether the element x at (row, col) is kept by a
// select. Vector selects pass col = 0.
type IndexUnaryOp[T value.Type] func(x T, row, col uint32) bool

// Monoid is an associative BinaryOp with an identity.
type Monoid[T value.Type] struct {
	Op       BinaryOp[T]
	Identity T
}

// Semiring pairs an additive monoid with a multiplicative operator.
type Semiring[T value.Type] struct {
	Add      Monoid[T]
	Multiply BinaryOp[T]
}

func maxValue[T value.Type]() T { return value.As[T](value.Of(math.Inf(1))) }
func minValue[T value.Type]() T { return value.As[T](value.Of(math.Inf(-1))) }

// Plus returns a + b.
func Plus[T Number]() BinaryOp[T] { return func(a, b T) T { return a + b } }

// Minus returns a - b.
func Minus[T Number]() BinaryOp[T] { return func(a, b T) T { return a - b } }

// Times returns a * b.
func Times[T Number]() BinaryOp[T] { return func(a, b T) T { return a * b } }

// Div returns a / b. Integer division by zero yields zero.
func Div[T Number]() BinaryOp[T] {
	isFloat := value.TypeOf[T]().IsFloat()
	return func(a, b T) T {
		if b == 0 && !isFloat {
			return 0
		}
		return a / b
	}
}

// Min returns the smaller operand.
func Min[T Number]() BinaryOp[T] { return func(a, b T) T { return min(a, b) } }

// Max returns the larger operand.
func Max[T Number]() BinaryOp[T] { return func(a, b T) T { return max(a, b) } }

// First returns a.
func First[T value.Type]() BinaryOp[T] { return func(a, _ T) T { return a } }

// Second returns b.
func Second[T value.Type]() BinaryOp[T] { return func(_, b T) T { return b } }

// Pair returns one regardless of the operands.
func Pair[T Number]() BinaryOp[T] { return func(_, _ T) T { return 1 } }

// LOr returns a || b.
func LOr() BinaryOp[bool] { return func(a, b bool) bool { return a || b } }

// LAnd returns a && b.
func LAnd() BinaryOp[bool] { return func(a, b bool) bool { return a && b } }

// LXor returns a != b.
func LXor() BinaryOp[bool] { return func(a, b bool) bool { return a != b } }

// PlusMonoid is (+, 0).
func PlusMonoid[T Number]() Monoid[T] { return Monoid[T]{Op: Plus[T]()} }

// TimesMonoid is (*, 1).
func TimesMonoid[T Number]() Monoid[T] { return Monoid[T]{Op: Times[T](), Identity: 1} }

// MinMonoid is (min, +max). Floats use +Inf as identity.
func MinMonoid[T Number]() Monoid[T] { return Monoid[T]{Op: Min[T](), Identity: maxValue[T]()} }

// MaxMonoid is (max, -max). Floats use -Inf as identity.
func MaxMonoid[T Number]() Monoid[T] { return Monoid[T]{Op: Max[T](), Identity: minValue[T]()} }

// AnyMonoid keeps whichever operand it sees first.
func AnyMonoid[T value.Type]() Monoid[T] { return Monoid[T]{Op: First[T]()} }

// LOrMonoid is (||, false).
func LOrMonoid() Monoid[bool] { return Monoid[bool]{Op: LOr()} }

// LAndMonoid is (&&, true).
func LAndMonoid() Monoid[bool] { return Monoid[bool]{Op: LAnd(), Identity: true} }

// PlusTimes is the conventional arithmetic semiring.
func PlusTimes[T Number]() Semiring[T] {
	return Semiring[T]{Add: PlusMonoid[T](), Multiply: Times[T]()}
}

// MinPlus is the tropical semiring used for shortest paths.
func MinPlus[T Number]() Semiring[T] {
	return Semiring[T]{Add: MinMonoid[T](), Multiply: Plus[T]()}
}

// MaxPlus is the semiring used for longest / critical paths.
func MaxPlus[T Number]() Semiring[T] {
	return Semiring[T]{Add: MaxMonoid[T](), Multiply: Plus[T]()}
}

// MinTimes multiplies along paths and keeps the minimum.
func MinTimes[T Number]() Semiring[T] {
	return Semiring[T]{Add: MinMonoid[T](), Multiply: Times[T]()}
}

// MaxMin is the bottleneck (widest path) semiring.
func MaxMin[T Number]() Semiring[T] {
	return Semiring[T]{Add: MaxMonoid[T](), Multiply: Min[T]()}
}

// PlusPair counts the paths contributing to each output element.
func PlusPair[T Number]() Semiring[T] {
	return Semiring[T]{Add: PlusMonoid[T](), Multiply: Pair[T]()}
}

// AnyPair marks reachability with the value one.
func AnyPair[T Number]() Semiring[T] {
	return Semiring[T]{Add: AnyMonoid[T](), Multiply: Pair[T]()}
}

// LorLand is the boolean reachability semiring.
func LorLand() Semiring[bool] {
	return Semiring[bool]{Add: LOrMonoid(), Multiply: LAnd()}
}

// Identity returns its operand.
func Identity[T value.Type]() UnaryOp[T] { return func(a T) T { return a } }

// AdditiveInverse returns -a. Unsigned values wrap.
func AdditiveInverse[T Number]() UnaryOp[T] { return func(a T) T { return -a } }

// Abs returns |a|.
func Abs[T Number]() UnaryOp[T] {
	return func(a T) T {
		if a < 0 {
			return -a
		}
		return a
	}
}

// One returns one regardless of the operand.
func One[T Number]() UnaryOp[T] { return func(T) T { return 1 } }

// LNot returns !a.
func LNot() UnaryOp[bool] { return func(a bool) bool { return !a } }

// BindFirst fixes the first operand of op to s.
func BindFirst[T value.Type](op BinaryOp[T], s T) UnaryOp[T] {
	return func(a T) T { return op(s, a) }
}

// BindSecond fixes the second operand of op to s.
func BindSecond[T value.Type](op BinaryOp[T], s T) UnaryOp[T] {
	return func(a T) T { return op(a, s) }
}

// ValueEQ keeps elements equal to thunk.
func ValueEQ[T value.Type](thunk T) IndexUnaryOp[T] {
	return func(x T, _, _ uint32) bool { return x == thunk }
}

// ValueNE keeps elements not equal to thunk.
func ValueNE[T value.Type](thunk T) IndexUnaryOp[T] {
	return func(x T, _, _ uint32) bool { return x != thunk }
}

// ValueGT keeps elements greater than thunk.
func ValueGT[T Number](thunk T) IndexUnaryOp[T] {
	return func(x T, _, _ uint32) bool { return x > thunk }
}

// ValueGE keeps elements greater than or equal to thunk.
func ValueGE[T Number](thunk T) IndexUnaryOp[T] {
	return func(x T, _, _ uint32) bool { return x >= thunk }
}

// ValueLT keeps elements less than thunk.
func ValueLT[T Number](thunk T) IndexUnaryOp[T] {
	return func(x T, _, _ uint32) bool { return x < thunk }
}

// ValueLE keeps elements less than or equal to thunk.
func ValueLE[T Number](thunk T) IndexUnaryOp[T] {
	return func(x T, _, _ uint32) bool { return x <= thunk }
}

// RowLE keeps elements whose row index is <= k.
func RowLE[T value.Type](k uint32) IndexUnaryOp[T] {
	return func(_ T, row, _ uint32) bool { return row <= k }
}

// RowGT keeps elements whose row index is > k.
func RowGT[T value.Type](k uint32) IndexUnaryOp[T] {
	return func(_ T, row, _ uint32) bool { return row > k }
}

// ColLE keeps elements whose column index is <= k.
func ColLE[T value.Type](k uint32) IndexUnaryOp[T] {
	return func(_ T, _, col uint32) bool { return col <= k }
}

// ColGT keeps elements whose column index is > k.
func ColGT[T value.Type](k uint32) IndexUnaryOp[T] {
	return func(_ T, _, col uint32) bool { return col > k }
}

// Diag keeps elements on the main diagonal (self loops).
func Diag[T value.Type]() IndexUnaryOp[T] {
	return func(_ T, row, col uint32) bool { return row == col }
}

// OffDiag keeps elements off the main diagonal.
func OffDiag[T value.Type]() IndexUnaryOp[T] {
	return func(_ T, row, col uint32) bool { return row != col }
}

// Tril keeps the lower triangle including the diagonal.
func Tril[T value.Type]() IndexUnaryOp[T] {
	return func(_ T, row, col uint32) bool { return col <= row }
}

// Triu keeps the upper triangle including the diagonal.
func Triu[T value.Type]() IndexUnaryOp[T] {
	return func(_ T, row, col uint32) bool { return col >= row }
}
