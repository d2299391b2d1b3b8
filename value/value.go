package value

import (
	"math"
	"strconv"

	"github.com/hupe1980/propgraph/internal/conv"
)

// Value is a dynamically typed scalar: a TypeID plus its payload.
//
// The payload is kept in 64 bits: signed integers as two's complement,
// unsigned integers as is, floats as IEEE-754 float64 bits and bools as 0/1.
// Values are comparable with ==, which compares type and payload bits.
type Value struct {
	id   TypeID
	bits uint64
}

// Of wraps v into a Value.
func Of[T Type](v T) Value {
	switch x := any(v).(type) {
	case bool:
		if x {
			return Value{id: Bool, bits: 1}
		}
		return Value{id: Bool}
	case int8:
		return Value{id: Int8, bits: uint64(int64(x))}
	case int16:
		return Value{id: Int16, bits: uint64(int64(x))}
	case int32:
		return Value{id: Int32, bits: uint64(int64(x))}
	case int64:
		return Value{id: Int64, bits: uint64(x)}
	case int:
		return Value{id: Int, bits: uint64(int64(x))}
	case uint8:
		return Value{id: Uint8, bits: uint64(x)}
	case uint16:
		return Value{id: Uint16, bits: uint64(x)}
	case uint32:
		return Value{id: Uint32, bits: uint64(x)}
	case uint64:
		return Value{id: Uint64, bits: x}
	case uint:
		return Value{id: Uint, bits: uint64(x)}
	case float32:
		return Value{id: Float32, bits: math.Float64bits(float64(x))}
	case float64:
		return Value{id: Float64, bits: math.Float64bits(x)}
	}
	panic("unreachable")
}

// Zero returns the zero value of the given type.
func Zero(id TypeID) Value {
	return Value{id: id}
}

// Type returns the value's TypeID.
func (v Value) Type() TypeID { return v.id }

// IsZero reports whether the payload equals the zero value of its type.
func (v Value) IsZero() bool {
	if v.id.IsFloat() {
		return v.floating() == 0
	}
	return v.bits == 0
}

func (v Value) signed() int64     { return int64(v.bits) }
func (v Value) unsigned() uint64  { return v.bits }
func (v Value) floating() float64 { return math.Float64frombits(v.bits) }

func (v Value) truthy() bool {
	if v.id.IsFloat() {
		return v.floating() != 0
	}
	return v.bits != 0
}

// Float64 returns the value read as float64.
func (v Value) Float64() float64 { return As[float64](v) }

// Int64 returns the value read as int64.
func (v Value) Int64() int64 { return As[int64](v) }

// Bool returns the value read as bool.
func (v Value) Bool() bool { return v.truthy() }

// String implements fmt.Stringer.
func (v Value) String() string {
	switch {
	case v.id == Bool:
		return strconv.FormatBool(v.truthy())
	case v.id.IsSigned():
		return strconv.FormatInt(v.signed(), 10)
	case v.id.IsUnsigned():
		return strconv.FormatUint(v.unsigned(), 10)
	case v.id == Float32:
		return strconv.FormatFloat(v.floating(), 'g', -1, 32)
	case v.id == Float64:
		return strconv.FormatFloat(v.floating(), 'g', -1, 64)
	}
	return "<invalid>"
}

// As reads v as T following the package coercion rules.
func As[T Type](v Value) T {
	var out T
	switch p := any(&out).(type) {
	case *bool:
		*p = v.truthy()
	case *int8:
		*p = toInteger[int8](v)
	case *int16:
		*p = toInteger[int16](v)
	case *int32:
		*p = toInteger[int32](v)
	case *int64:
		*p = toInteger[int64](v)
	case *int:
		*p = toInteger[int](v)
	case *uint8:
		*p = toInteger[uint8](v)
	case *uint16:
		*p = toInteger[uint16](v)
	case *uint32:
		*p = toInteger[uint32](v)
	case *uint64:
		*p = toInteger[uint64](v)
	case *uint:
		*p = toInteger[uint](v)
	case *float32:
		*p = toFloat32(v)
	case *float64:
		*p = toFloat64(v)
	}
	return out
}

func toInteger[T conv.Integer](v Value) T {
	switch {
	case v.id == Bool:
		if v.bits != 0 {
			return 1
		}
		return 0
	case v.id.IsSigned():
		return conv.SaturateInt64[T](v.signed())
	case v.id.IsUnsigned():
		return conv.SaturateUint64[T](v.unsigned())
	default:
		return conv.SaturateFloat64[T](v.floating())
	}
}

func toFloat64(v Value) float64 {
	switch {
	case v.id == Bool:
		if v.bits != 0 {
			return 1
		}
		return 0
	case v.id.IsSigned():
		return float64(v.signed())
	case v.id.IsUnsigned():
		return float64(v.unsigned())
	default:
		return v.floating()
	}
}

func toFloat32(v Value) float32 {
	switch {
	case v.id == Bool:
		if v.bits != 0 {
			return 1
		}
		return 0
	case v.id.IsSigned():
		return float32(v.signed())
	case v.id.IsUnsigned():
		return float32(v.unsigned())
	default:
		return conv.NarrowFloat64(v.floating())
	}
}

// Coerce reads a From value as To.
func Coerce[To, From Type](v From) To {
	return As[To](Of(v))
}

// Convert returns v coerced to the type identified by id.
func (v Value) Convert(id TypeID) Value {
	if v.id == id {
		return v
	}
	switch id {
	case Bool:
		return Of(As[bool](v))
	case Int8:
		return Of(As[int8](v))
	case Int16:
		return Of(As[int16](v))
	case Int32:
		return Of(As[int32](v))
	case Int64:
		return Of(As[int64](v))
	case Int:
		return Of(As[int](v))
	case Uint8:
		return Of(As[uint8](v))
	case Uint16:
		return Of(As[uint16](v))
	case Uint32:
		return Of(As[uint32](v))
	case Uint64:
		return Of(As[uint64](v))
	case Uint:
		return Of(As[uint](v))
	case Float32:
		return Of(As[float32](v))
	case Float64:
		return Of(As[float64](v))
	}
	return Value{id: id}
}
