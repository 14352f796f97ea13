package contract

import (
	"sort"
	"time"

	"rico_contracts/sdk"
)

// -----------------------------------------------------------------------------
// Ordering Helpers
// -----------------------------------------------------------------------------

// sortedHolders walks a genesis map in stable order so every node writes the
// same events in the same sequence.
func sortedHolders(m map[sdk.Address]Amount) []sdk.Address {
	out := make([]sdk.Address, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// -----------------------------------------------------------------------------
// Timestamp Helpers
// -----------------------------------------------------------------------------

// nowUnix returns the block timestamp the host handed us for this call.
func nowUnix(v sdk.View) int64 {
	return v.Env().Timestamp
}

// durationSeconds truncates d to whole seconds, the resolution of block time.
func durationSeconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

// unixToTime renders stored seconds for views.
func unixToTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
