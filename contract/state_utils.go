package contract

import (
	"fmt"
	"strconv"

	"rico_contracts/sdk"
)

// stateSetIfChanged skips writes that wouldn't change anything, so a no-op
// doesn't show up in the tx write set.
func stateSetIfChanged(h sdk.Host, key, value string) {
	if existing := h.StateGet(key); existing != nil && *existing == value {
		return
	}
	h.StateSet(key, value)
}

// readAmount parses a decimal amount, missing keys read as zero.
func readAmount(r sdk.Reader, key string) (Amount, error) {
	ptr := r.StateGet(key)
	if ptr == nil || *ptr == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q: %w", ErrCorruptState, *ptr, err)
	}
	return Amount(n), nil
}

// writeAmount stores amounts as decimal strings and drops zero entries so
// storage doesn't fill up with dead keys.
func writeAmount(h sdk.Host, key string, amount Amount) {
	if amount == 0 {
		h.StateDelete(key)
		return
	}
	stateSetIfChanged(h, key, amount.String())
}
