package conv

import (
	"fmt"
	"math"
	"unsafe"
)

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is the set of all integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating point types.
type Float interface {
	~float32 | ~float64
}

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Integer]() bool {
	var z T
	z--
	return z < 0
}

// Bounds returns the inclusive value range of T.
// The lower bound is returned as int64, the upper bound as uint64 so that
// both int64 and uint64 limits are representable.
func Bounds[T Integer]() (lo int64, hi uint64) {
	var zero T
	size := uint64(unsafe.Sizeof(zero)) * 8
	if IsSigned[T]() {
		return int64(-1) << (size - 1), uint64(1)<<(size-1) - 1
	}
	return 0, uint64(1)<<size - 1
}

// SaturateInt64 converts v to T, clamping at T's minimum and maximum.
func SaturateInt64[T Integer](v int64) T {
	lo, hi := Bounds[T]()
	if v < lo {
		return T(lo)
	}
	if v > 0 && uint64(v) > hi {
		return T(hi)
	}
	return T(v)
}

// SaturateUint64 converts v to T, clamping at T's maximum.
func SaturateUint64[T Integer](v uint64) T {
	_, hi := Bounds[T]()
	if v > hi {
		return T(hi)
	}
	return T(v)
}

// SaturateFloat64 converts v to T, truncating toward zero.
// Out of range values and infinities clamp to T's range, NaN becomes zero.
func SaturateFloat64[T Integer](v float64) T {
	if math.IsNaN(v) {
		return 0
	}
	lo, hi := Bounds[T]()
	if v <= float64(lo) {
		return T(lo)
	}
	// float64(hi) may round up to the next power of two, so >= is required.
	if v >= float64(hi) {
		return T(hi)
	}
	if v < 0 {
		return T(int64(v))
	}
	return T(uint64(v))
}

// NarrowFloat64 converts v to float32, clamping finite values to
// ±math.MaxFloat32. Infinities and NaN are preserved.
func NarrowFloat64(v float64) float32 {
	switch {
	case math.IsNaN(v), math.IsInf(v, 0):
		return float32(v)
	case v > math.MaxFloat32:
		return math.MaxFloat32
	case v < -math.MaxFloat32:
		return -math.MaxFloat32
	}
	return float32(v)
}
