package sdk

import (
	"fmt"
	"maps"
	"strconv"
)

// tx is the write overlay of one running transaction. Reads fall through to
// the committed state, writes stay here until Chain.finish flushes them.
type tx struct {
	state  State
	id     string
	height uint64
	now    int64
	origin Address
	writes map[string]*string
	events []Event
}

func (t *tx) get(key string) *string {
	if v, ok := t.writes[key]; ok {
		return v
	}
	v, err := t.state.Get(key)
	if err != nil {
		panic(fmt.Errorf("state read: %w", err))
	}
	return v
}

func (t *tx) set(key, value string) {
	t.writes[key] = &value
}

func (t *tx) del(key string) {
	t.writes[key] = nil
}

func (t *tx) deployed(c Address) bool {
	return t.get(deployKey(c)) != nil
}

// checkpoint captures the overlay so a failed nested call can be undone.
func (t *tx) checkpoint() (map[string]*string, int) {
	return maps.Clone(t.writes), len(t.events)
}

func (t *tx) revert(writes map[string]*string, events int) {
	t.writes = writes
	t.events = t.events[:events]
}

// -----------------------------------------------------------------------------
// Accounts
// -----------------------------------------------------------------------------

func (t *tx) balance(a Address) int64 {
	ptr := t.get(accountKey(a))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		panic(fmt.Errorf("invalid balance for %s: %w", a, err))
	}
	return n
}

func (t *tx) setBalance(a Address, n int64) {
	if n == 0 {
		t.del(accountKey(a))
		return
	}
	t.set(accountKey(a), strconv.FormatInt(n, 10))
}

// move debits from and credits to, all or nothing.
func (t *tx) move(from, to Address, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	if to.IsZero() {
		return ErrInvalidRecipient
	}
	have := t.balance(from)
	if have < amount {
		return fmt.Errorf("%w: %s holds %d, needs %d", ErrInsufficientFunds, from, have, amount)
	}
	t.setBalance(from, have-amount)
	t.setBalance(to, t.balance(to)+amount)
	return nil
}

// -----------------------------------------------------------------------------
// Host implementations
// -----------------------------------------------------------------------------

type hostCtx struct {
	tx       *tx
	contract Address
	sender   Address
	value    int64
}

func (h *hostCtx) Env() Env {
	return Env{
		ContractID:  h.contract,
		TxID:        h.tx.id,
		BlockHeight: h.tx.height,
		Timestamp:   h.tx.now,
		Sender:      h.sender,
		Origin:      h.tx.origin,
		Value:       h.value,
	}
}

func (h *hostCtx) StateGet(key string) *string {
	return h.tx.get(contractKey(h.contract, key))
}

func (h *hostCtx) StateSet(key, value string) {
	h.tx.set(contractKey(h.contract, key), value)
}

func (h *hostCtx) StateDelete(key string) {
	h.tx.del(contractKey(h.contract, key))
}

func (h *hostCtx) Balance() int64 {
	return h.tx.balance(h.contract)
}

func (h *hostCtx) Transfer(to Address, amount int64) error {
	return h.tx.move(h.contract, to, amount)
}

func (h *hostCtx) Log(msg string) {
	h.tx.events = append(h.tx.events, Event{Contract: h.contract, Msg: msg})
}

func (h *hostCtx) Read(contract Address, fn func(Reader) error) error {
	if !h.tx.deployed(contract) {
		return fmt.Errorf("%w: %s", ErrUnknownContract, contract)
	}
	return fn(&reader{tx: h.tx, contract: contract})
}

func (h *hostCtx) Invoke(contract Address, fn func(Host) error) error {
	if !h.tx.deployed(contract) {
		return fmt.Errorf("%w: %s", ErrUnknownContract, contract)
	}
	writes, events := h.tx.checkpoint()
	if err := fn(&hostCtx{tx: h.tx, contract: contract, sender: h.contract}); err != nil {
		h.tx.revert(writes, events)
		return err
	}
	return nil
}

type reader struct {
	tx       *tx
	contract Address
}

func (r *reader) StateGet(key string) *string {
	return r.tx.get(contractKey(r.contract, key))
}

// viewCtx serves queries outside of a tx.
type viewCtx struct {
	reader
}

func (v *viewCtx) Env() Env {
	return Env{
		ContractID:  v.contract,
		BlockHeight: v.tx.height - 1,
		Timestamp:   v.tx.now,
	}
}

func (v *viewCtx) Balance() int64 {
	return v.tx.balance(v.contract)
}

func (v *viewCtx) Read(contract Address, fn func(Reader) error) error {
	if !v.tx.deployed(contract) {
		return fmt.Errorf("%w: %s", ErrUnknownContract, contract)
	}
	return fn(&reader{tx: v.tx, contract: contract})
}
