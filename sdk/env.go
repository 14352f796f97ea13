package sdk

import "time"

// Env is the execution snapshot handed to a contract body. It stays fixed for
// the whole call, so every helper in a tx sees the same sender and timestamp.
type Env struct {
	ContractID  Address
	TxID        string
	BlockHeight uint64
	// Timestamp is unix seconds taken from the chain clock when the tx started.
	Timestamp int64
	// Sender is the direct caller. For nested calls this is the calling contract.
	Sender Address
	// Origin is the account that signed the outer tx.
	Origin Address
	// Value is the amount moved from Sender to ContractID before the body runs.
	Value int64
}

// Time converts Timestamp back to a time.Time in UTC.
func (e Env) Time() time.Time {
	return time.Unix(e.Timestamp, 0).UTC()
}
