// Package value defines the native scalar types a vertex or edge type can
// hold and the rules for reading a stored value as a different type.
//
// Thirteen Go types are supported:
//
//	bool
//	int8  int16  int32  int64  int
//	uint8 uint16 uint32 uint64 uint
//	float32 float64
//
// Statically typed code uses the Type constraint directly. Code that only
// learns the concrete type at runtime (for example "what is the value type of
// edge type 3?") works with TypeID and the Value sum type.
//
// # Coercion
//
// Reading a stored value as another type never fails. The rules are:
//
//   - to bool: any non-zero value is true (NaN is true)
//   - from bool: true is 1, false is 0
//   - integer to integer: clamp to the target's range (no wrap around)
//   - float to integer: truncate toward zero, clamp to the target's range,
//     NaN becomes 0
//   - to float32: finite values beyond ±MaxFloat32 clamp, infinities stay
//
// For example a uint8 255 read as bool is true and a float32 1000.0 read as
// uint8 is 255.
package value
