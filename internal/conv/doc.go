// Package conv provides checked and saturating numeric conversions.
//
// Checked conversions (IntToUint32, Uint64ToInt) return an error instead of
// silently wrapping and are used where capacities cross between Go's int and
// the fixed-width index type.
//
// Saturating conversions (SaturateInt64, SaturateUint64, SaturateFloat64,
// NarrowFloat64) never fail: values outside the target range clamp to the
// target's minimum or maximum. They implement the read-coercion rules of the
// value package.
package conv
