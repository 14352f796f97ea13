package contract

import (
	"fmt"
	"math"
	"math/big"
)

// mulDiv returns floor(a*b/c) without overflowing the intermediate product.
// Negative inputs and a zero divisor are programming errors and reported as such.
func mulDiv(a, b, c Amount) (Amount, error) {
	if a < 0 || b < 0 || c <= 0 {
		return 0, fmt.Errorf("%w: mulDiv(%d, %d, %d)", ErrCorruptState, a, b, c)
	}
	num := new(big.Int).Mul(big.NewInt(int64(a)), big.NewInt(int64(b)))
	num.Quo(num, big.NewInt(int64(c)))
	if !num.IsInt64() {
		return 0, fmt.Errorf("%w: %s does not fit", ErrCapViolation, num)
	}
	return Amount(num.Int64()), nil
}

// addAmount sums two non-negative amounts and fails instead of wrapping.
func addAmount(a, b Amount) (Amount, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, fmt.Errorf("%w: %d + %d overflows", ErrCapViolation, a, b)
	}
	return a + b, nil
}
