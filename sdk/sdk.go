package sdk

// Reader is the smallest slice of the host api: one contract's storage.
type Reader interface {
	// StateGet fetches a key and returns nil when missing.
	// Example payload: r.StateGet("count")
	StateGet(key string) *string
}

// View is the read-only host. Queries get one directly, contract bodies get
// it as part of Host.
type View interface {
	Reader

	// Env returns the fixed execution snapshot. Queries see a zero Sender.
	Env() Env

	// Balance is the native coin balance currently held by this contract.
	Balance() int64

	// Read gives fn a view on another contract's storage. Inside a tx it
	// also sees writes made earlier in the same tx.
	Read(contract Address, fn func(Reader) error) error
}

// Host is everything a contract body may touch while a tx is running. All
// writes, transfers and logs stay buffered until the outermost call returns
// nil; any error or panic throws the whole lot away.
type Host interface {
	View

	// StateSet stores a key/value string pair into contract kv storage.
	// Example payload: h.StateSet("count", "5")
	StateSet(key, value string)

	// StateDelete removes the key entirely, handy for cleanup.
	StateDelete(key string)

	// Transfer pays amount from this contract's account to `to`.
	// Example payload: h.Transfer(sdk.Address("hive:foo"), 500)
	Transfer(to Address, amount int64) error

	// Log writes an event line. Lines are only published when the tx commits.
	// Example payload: h.Log("cc|by:hive:foo|am:10000")
	Log(msg string)

	// Invoke runs fn against another contract with this contract as sender. If
	// fn fails, the nested writes are rolled back before the error bubbles up.
	Invoke(contract Address, fn func(Host) error) error
}
