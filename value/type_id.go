package value

import "fmt"

// TypeID identifies one of the supported native value types at runtime.
type TypeID uint8

const (
	Bool TypeID = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Int
	Uint
	Float32
	Float64

	numTypes
)

// Type is the set of native scalar types a container can hold.
type Type interface {
	bool |
		int8 | int16 | int32 | int64 | int |
		uint8 | uint16 | uint32 | uint64 | uint |
		float32 | float64
}

// AllTypes returns every supported TypeID in declaration order.
func AllTypes() []TypeID {
	ids := make([]TypeID, 0, numTypes)
	for id := Bool; id < numTypes; id++ {
		ids = append(ids, id)
	}
	return ids
}

var typeNames = [numTypes]string{
	Bool:    "bool",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Int:     "int",
	Uint:    "uint",
	Float32: "float32",
	Float64: "float64",
}

var typeSizes = [numTypes]int{
	Bool:    1,
	Int8:    1,
	Int16:   2,
	Int32:   4,
	Int64:   8,
	Uint8:   1,
	Uint16:  2,
	Uint32:  4,
	Uint64:  8,
	Int:     8,
	Uint:    8,
	Float32: 4,
	Float64: 8,
}

// IsValid reports whether id names a supported type.
func (id TypeID) IsValid() bool { return id < numTypes }

// String implements fmt.Stringer.
func (id TypeID) String() string {
	if !id.IsValid() {
		return fmt.Sprintf("TypeID(%d)", uint8(id))
	}
	return typeNames[id]
}

// Size returns the in-memory size of one element in bytes.
func (id TypeID) Size() int {
	if !id.IsValid() {
		return 0
	}
	return typeSizes[id]
}

// IsFloat reports whether id is a floating point type.
func (id TypeID) IsFloat() bool { return id == Float32 || id == Float64 }

// IsSigned reports whether id is a signed integer type.
func (id TypeID) IsSigned() bool {
	switch id {
	case Int8, Int16, Int32, Int64, Int:
		return true
	}
	return false
}

// IsUnsigned reports whether id is an unsigned integer type.
func (id TypeID) IsUnsigned() bool {
	switch id {
	case Uint8, Uint16, Uint32, Uint64, Uint:
		return true
	}
	return false
}

// ParseTypeID maps a type name as returned by TypeID.String back to its id.
func ParseTypeID(name string) (TypeID, error) {
	for id, n := range typeNames {
		if n == name {
			return TypeID(id), nil
		}
	}
	return 0, fmt.Errorf("unknown value type %q", name)
}

// TypeOf returns the TypeID of T.
func TypeOf[T Type]() TypeID {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case int:
		return Int
	case uint:
		return Uint
	case float32:
		return Float32
	case float64:
		return Float64
	}
	panic("unreachable")
}
