// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Int converts an unsigned integer decoded from untrusted input to int with range validation.
func Int[T ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint](v T) (int, error) {
	if uint64(v) > math.MaxInt {
		return 0, fmt.Errorf("value %d out of int range", v)
	}
	return int(v), nil
}

// MulInt returns a*b for non-negative operands, failing instead of wrapping around.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("negative operand in %d * %d", a, b)
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, fmt.Errorf("%d * %d overflows int", a, b)
	}
	return a * b, nil
}
