package sdk

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SystemAddress signs genesis funding.
const SystemAddress Address = "system:genesis"

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kAccount holds native coin balances as decimal strings.
	kAccount byte = 0x01
	// kContract namespaces contract kv storage: prefix | contract | 0x00 | key.
	kContract byte = 0x02
	// kChain holds chain meta like the height and the deployment registry.
	kChain byte = 0x03
)

const metaHeight = "height"

func accountKey(a Address) string {
	buf := make([]byte, 0, 1+len(a))
	buf = append(buf, kAccount)
	buf = append(buf, a...)
	return string(buf)
}

func contractKey(c Address, key string) string {
	buf := make([]byte, 0, 2+len(c)+len(key))
	buf = append(buf, kContract)
	buf = append(buf, c...)
	buf = append(buf, 0x00)
	buf = append(buf, key...)
	return string(buf)
}

func metaKey(name string) string {
	buf := make([]byte, 0, 1+len(name))
	buf = append(buf, kChain)
	buf = append(buf, name...)
	return string(buf)
}

func deployKey(c Address) string {
	return metaKey("deploy|" + c.String())
}

// -----------------------------------------------------------------------------
// Chain
// -----------------------------------------------------------------------------

// Call addresses one top level tx.
type Call struct {
	Contract Address
	Sender   Address
	// Value is moved from Sender to Contract before the body runs.
	Value int64
}

// Event is a log line emitted by a contract during a committed tx.
type Event struct {
	Contract Address
	Msg      string
}

// TxResult describes a finished tx. Events is empty for rejected ones.
type TxResult struct {
	TxID   string
	Height uint64
	Events []Event
}

// Chain is a single-node, in-process contract runtime. Txs run one at a time
// in arrival order and either commit completely or leave no trace.
type Chain struct {
	mu    sync.Mutex
	state State
	clock Clock
	log   *zap.Logger
}

// NewChain wires state, clock and logger. Nil clock means wall time, nil
// logger means no logs.
func NewChain(state State, clock Clock, log *zap.Logger) *Chain {
	if clock == nil {
		clock = SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Chain{state: state, clock: clock, log: log}
}

// Now is the timestamp the next tx would see.
func (c *Chain) Now() time.Time {
	return time.Unix(c.clock.Now().Unix(), 0).UTC()
}

// Height returns the number of committed txs.
func (c *Chain) Height() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.begin(SystemAddress).height - 1
}

// Close releases the underlying state.
func (c *Chain) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Close()
}

// Deploy registers a contract under name and runs init inside the same tx, so
// a contract whose init rejects its parameters never comes into existence.
// Example payload: chain.Deploy("escrow", "hive:owner", initFn)
func (c *Chain) Deploy(name string, deployer Address, init func(Host) error) (Address, error) {
	addr := ContractAddress(name)
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.begin(deployer)
	err := guard(func() error {
		if name == "" {
			return fmt.Errorf("%w: empty name", ErrUnknownContract)
		}
		if t.deployed(addr) {
			return fmt.Errorf("%w: %s", ErrAlreadyDeployed, addr)
		}
		t.set(deployKey(addr), strconv.FormatInt(t.now, 10))
		if init == nil {
			return nil
		}
		return init(&hostCtx{tx: t, contract: addr, sender: deployer})
	})
	if _, err := c.finish(t, addr, err); err != nil {
		return ZeroAddress, err
	}
	return addr, nil
}

// Deployed reports whether addr is a registered contract.
func (c *Chain) Deployed(addr Address) bool {
	var ok bool
	_ = c.read(func(t *tx) error {
		ok = t.deployed(addr)
		return nil
	})
	return ok
}

// Fund credits genesis coins to an account.
// Example payload: chain.Fund("hive:alice", 5_000)
func (c *Chain) Fund(to Address, amount int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.begin(SystemAddress)
	err := guard(func() error {
		if amount <= 0 {
			return ErrInvalidAmount
		}
		if to.IsZero() {
			return ErrInvalidRecipient
		}
		t.setBalance(to, t.balance(to)+amount)
		return nil
	})
	_, err = c.finish(t, SystemAddress, err)
	return err
}

// BalanceOf returns the committed coin balance of any account or contract.
func (c *Chain) BalanceOf(a Address) int64 {
	var bal int64
	if err := c.read(func(t *tx) error {
		bal = t.balance(a)
		return nil
	}); err != nil {
		panic(err)
	}
	return bal
}

// Exec runs fn as one tx against call.Contract.
func (c *Chain) Exec(call Call, fn func(Host) error) (TxResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.begin(call.Sender)
	err := guard(func() error {
		if !t.deployed(call.Contract) {
			return fmt.Errorf("%w: %s", ErrUnknownContract, call.Contract)
		}
		if call.Value < 0 {
			return ErrInvalidAmount
		}
		if call.Value > 0 {
			if call.Sender.IsZero() {
				return ErrInvalidSender
			}
			if err := t.move(call.Sender, call.Contract, call.Value); err != nil {
				return err
			}
		}
		return fn(&hostCtx{tx: t, contract: call.Contract, sender: call.Sender, value: call.Value})
	})
	return c.finish(t, call.Contract, err)
}

// View runs fn against the committed state of contract at the current clock
// time. Nothing fn can reach through a View changes state.
func (c *Chain) View(contract Address, fn func(View) error) error {
	return c.read(func(t *tx) error {
		if !t.deployed(contract) {
			return fmt.Errorf("%w: %s", ErrUnknownContract, contract)
		}
		return fn(&viewCtx{reader{tx: t, contract: contract}})
	})
}

func (c *Chain) read(fn func(t *tx) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.begin(SystemAddress)
	return guard(func() error { return fn(t) })
}

// begin opens a write overlay for the next height. Caller holds c.mu.
func (c *Chain) begin(origin Address) *tx {
	t := &tx{
		state:  c.state,
		id:     uuid.NewString(),
		now:    c.clock.Now().Unix(),
		origin: origin,
		writes: make(map[string]*string),
	}
	var height uint64
	if ptr, err := c.state.Get(metaKey(metaHeight)); err == nil && ptr != nil {
		height, _ = strconv.ParseUint(*ptr, 10, 64)
	}
	t.height = height + 1
	return t
}

// finish commits t when err is nil and logs the outcome either way.
func (c *Chain) finish(t *tx, contract Address, err error) (TxResult, error) {
	res := TxResult{TxID: t.id, Height: t.height}
	if err != nil {
		c.log.Warn("tx rejected",
			zap.String("tx", t.id),
			zap.String("contract", contract.String()),
			zap.String("origin", t.origin.String()),
			zap.Error(err),
		)
		return res, err
	}
	t.set(metaKey(metaHeight), strconv.FormatUint(t.height, 10))
	if err := c.state.Write(t.writes); err != nil {
		c.log.Error("commit failed", zap.String("tx", t.id), zap.Error(err))
		return res, fmt.Errorf("commit: %w", err)
	}
	res.Events = t.events
	for _, ev := range t.events {
		c.log.Info(ev.Msg,
			zap.String("contract", ev.Contract.String()),
			zap.String("tx", t.id),
			zap.Uint64("height", t.height),
		)
	}
	c.log.Debug("tx committed",
		zap.String("tx", t.id),
		zap.String("contract", contract.String()),
		zap.Uint64("height", t.height),
		zap.Int("writes", len(t.writes)),
	)
	return res, nil
}

// guard turns a panic in fn into ErrAborted.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("%w: %w", ErrAborted, e)
				return
			}
			err = fmt.Errorf("%w: %v", ErrAborted, r)
		}
	}()
	return fn()
}
