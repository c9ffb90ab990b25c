// Package safe provides checked numeric conversions for values arriving from
// the wire or from storage.
package safe

import "fmt"

// Uint64 converts a signed integer to uint64, rejecting negative values.
func Uint64[T ~int | ~int8 | ~int16 | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}
