package contract

import (
	"fmt"
	"time"

	"rico_contracts/sdk"
)

// EscrowParams bounds deposit delays. Zero values pick the defaults.
type EscrowParams struct {
	// MaxDelay is exclusive, a delay of MaxDelay units is already rejected.
	MaxDelay  int64
	DelayUnit time.Duration
}

// DelayedPaymentEscrow locks one deposit per depositor until the delay the
// depositor picked has passed.
type DelayedPaymentEscrow struct {
	chain *sdk.Chain
	addr  sdk.Address
}

// DeployEscrow registers a new escrow.
// Example payload: DeployEscrow(chain, "escrow", "hive:owner", EscrowParams{})
func DeployEscrow(chain *sdk.Chain, name string, deployer sdk.Address, p EscrowParams) (*DelayedPaymentEscrow, error) {
	if p.MaxDelay == 0 {
		p.MaxDelay = DefaultEscrowMaxDelay
	}
	if p.DelayUnit == 0 {
		p.DelayUnit = DefaultEscrowDelayUnit
	}
	cfg := &EscrowConfig{MaxDelay: p.MaxDelay, DelayUnit: durationSeconds(p.DelayUnit)}
	if cfg.MaxDelay < 0 || cfg.DelayUnit <= 0 {
		return nil, fmt.Errorf("%w: max delay %d, unit %s", ErrInvalidConfiguration, p.MaxDelay, p.DelayUnit)
	}
	// the longest lock has to be expressible in block seconds
	if _, err := mulDiv(Amount(cfg.MaxDelay), Amount(cfg.DelayUnit), 1); err != nil {
		return nil, fmt.Errorf("%w: max delay %d x %s: %w", ErrInvalidConfiguration, p.MaxDelay, p.DelayUnit, err)
	}
	addr, err := chain.Deploy(name, deployer, func(h sdk.Host) error {
		setEscrowConfig(h, cfg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &DelayedPaymentEscrow{chain: chain, addr: addr}, nil
}

// AttachEscrow wraps an already deployed escrow.
func AttachEscrow(chain *sdk.Chain, addr sdk.Address) *DelayedPaymentEscrow {
	return &DelayedPaymentEscrow{chain: chain, addr: addr}
}

func (e *DelayedPaymentEscrow) Address() sdk.Address { return e.addr }

// Deposit locks amount for delayUnits units of the configured delay unit.
// Example payload: escrow.Deposit("hive:alice", 1, 1_000_000_000)
func (e *DelayedPaymentEscrow) Deposit(sender sdk.Address, delayUnits int64, amount Amount) error {
	_, err := e.chain.Exec(sdk.Call{Contract: e.addr, Sender: sender, Value: int64(amount)}, func(h sdk.Host) error {
		return e.deposit(h, delayUnits)
	})
	return err
}

func (e *DelayedPaymentEscrow) deposit(h sdk.Host, delayUnits int64) error {
	env := h.Env()
	if env.Sender.IsZero() {
		return sdk.ErrInvalidSender
	}
	amount := Amount(env.Value)
	if amount <= 0 {
		return fmt.Errorf("%w: deposit of %d", sdk.ErrInvalidAmount, amount)
	}
	cfg, err := getEscrowConfig(h)
	if err != nil {
		return err
	}
	if delayUnits < 0 || delayUnits >= cfg.MaxDelay {
		return fmt.Errorf("%w: delay %d outside 0..%d", ErrCapViolation, delayUnits, cfg.MaxDelay-1)
	}
	existing, err := getDeposit(h, env.Sender)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: %s already has %d locked until %d", ErrPreconditionUnmet, env.Sender, existing.Amount, existing.UnlockAt)
	}

	now := nowUnix(h)
	span, err := mulDiv(Amount(delayUnits), Amount(cfg.DelayUnit), 1)
	if err != nil {
		return err
	}
	unlockAt, err := addAmount(Amount(now), span)
	if err != nil {
		return fmt.Errorf("unlock time: %w", err)
	}
	d := &Deposit{
		Amount:      amount,
		DepositedAt: now,
		UnlockAt:    int64(unlockAt),
	}
	setDeposit(h, env.Sender, d)
	emitDepositEvent(h, env.Sender, amount, d.UnlockAt)
	return nil
}

// Withdraw releases sender's deposit once it unlocked.
func (e *DelayedPaymentEscrow) Withdraw(sender sdk.Address) error {
	_, err := e.chain.Exec(sdk.Call{Contract: e.addr, Sender: sender}, e.withdraw)
	return err
}

func (e *DelayedPaymentEscrow) withdraw(h sdk.Host) error {
	sender := h.Env().Sender
	if sender.IsZero() {
		return sdk.ErrInvalidSender
	}
	d, err := getDeposit(h, sender)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("%w: no deposit for %s", ErrPreconditionUnmet, sender)
	}
	if now := nowUnix(h); now < d.UnlockAt {
		return fmt.Errorf("%w: locked for another %ds", ErrPreconditionUnmet, d.UnlockAt-now)
	}
	deleteDeposit(h, sender)
	if err := h.Transfer(sender, int64(d.Amount)); err != nil {
		return err
	}
	emitWithdrawEvent(h, sender, d.Amount)
	return nil
}

// DepositOf returns the outstanding record of addr, or nil.
func (e *DelayedPaymentEscrow) DepositOf(addr sdk.Address) (*DepositInfo, error) {
	var info *DepositInfo
	err := e.chain.View(e.addr, func(v sdk.View) error {
		d, err := getDeposit(v, addr)
		if err != nil || d == nil {
			return err
		}
		info = &DepositInfo{
			Depositor:   addr.String(),
			Amount:      int64(d.Amount),
			DepositedAt: d.DepositedAt,
			UnlockAt:    d.UnlockAt,
			Unlocked:    nowUnix(v) >= d.UnlockAt,
		}
		return nil
	})
	return info, err
}
