package contract

import (
	"fmt"

	"rico_contracts/sdk"
)

// DividendDistributor pools incoming value and pays it out pro rata to the
// holders of a ledger. Entitlement is computed from the balance at claim time,
// there is no record date.
type DividendDistributor struct {
	chain  *sdk.Chain
	addr   sdk.Address
	oracle BalanceOracle
}

// DeployDividendDistributor binds a new distributor to oracle.
// Example payload: DeployDividendDistributor(chain, "dividends", "hive:owner", token)
func DeployDividendDistributor(chain *sdk.Chain, name string, deployer sdk.Address, oracle BalanceOracle) (*DividendDistributor, error) {
	if oracle == nil || oracle.Address().IsZero() {
		return nil, fmt.Errorf("%w: ledger reference missing", ErrInvalidConfiguration)
	}
	addr, err := chain.Deploy(name, deployer, func(h sdk.Host) error {
		if err := h.Read(oracle.Address(), func(sdk.Reader) error { return nil }); err != nil {
			return fmt.Errorf("%w: ledger: %w", ErrInvalidConfiguration, err)
		}
		setDividendOracle(h, oracle.Address())
		setDividendTotals(h, &DividendTotals{})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &DividendDistributor{chain: chain, addr: addr, oracle: oracle}, nil
}

// AttachDividendDistributor wraps an already deployed distributor.
func AttachDividendDistributor(chain *sdk.Chain, addr sdk.Address, oracle BalanceOracle) *DividendDistributor {
	return &DividendDistributor{chain: chain, addr: addr, oracle: oracle}
}

func (d *DividendDistributor) Address() sdk.Address { return d.addr }

// entitlement is floor(pool*balance/supply) minus what holder already took,
// capped by what the pool still has so claims never sum past it.
func (d *DividendDistributor) entitlement(v sdk.View, holder sdk.Address) (balance, payable Amount, err error) {
	oracleAddr, err := getDividendOracle(v)
	if err != nil {
		return 0, 0, err
	}
	var supply Amount
	err = v.Read(oracleAddr, func(r sdk.Reader) error {
		if balance, err = d.oracle.BalanceAt(r, holder); err != nil {
			return err
		}
		supply, err = d.oracle.SupplyAt(r)
		return err
	})
	if err != nil {
		return 0, 0, fmt.Errorf("read ledger: %w", err)
	}
	if balance <= 0 || supply <= 0 {
		return balance, 0, nil
	}
	totals, err := getDividendTotals(v)
	if err != nil {
		return 0, 0, err
	}
	claimed, err := getClaimed(v, holder)
	if err != nil {
		return 0, 0, err
	}
	share, err := mulDiv(totals.Pool, balance, supply)
	if err != nil {
		return 0, 0, err
	}
	payable = min(max(share-claimed, 0), totals.Unclaimed())
	return balance, payable, nil
}

// Receive adds amount from sender to the pool.
func (d *DividendDistributor) Receive(sender sdk.Address, amount Amount) error {
	_, err := d.chain.Exec(sdk.Call{Contract: d.addr, Sender: sender, Value: int64(amount)}, d.receive)
	return err
}

func (d *DividendDistributor) receive(h sdk.Host) error {
	env := h.Env()
	amount := Amount(env.Value)
	if amount <= 0 {
		return fmt.Errorf("%w: dividend of %d", sdk.ErrInvalidAmount, amount)
	}
	totals, err := getDividendTotals(h)
	if err != nil {
		return err
	}
	if totals.Pool, err = addAmount(totals.Pool, amount); err != nil {
		return err
	}
	setDividendTotals(h, totals)
	emitDividendReceivedEvent(h, env.Sender, amount, totals.Pool)
	return nil
}

// HasDividend is the probe mode: would a claim by caller pay anything right now.
func (d *DividendDistributor) HasDividend(caller sdk.Address) (bool, error) {
	var ok bool
	err := d.chain.View(d.addr, func(v sdk.View) error {
		balance, payable, err := d.entitlement(v, caller)
		ok = balance > 0 && payable > 0
		return err
	})
	return ok, err
}

// Entitlement returns what GetDividend would pay caller right now.
func (d *DividendDistributor) Entitlement(caller sdk.Address) (Amount, error) {
	var payable Amount
	err := d.chain.View(d.addr, func(v sdk.View) error {
		var err error
		_, payable, err = d.entitlement(v, caller)
		return err
	})
	return payable, err
}

// GetDividend pays caller their current entitlement. Paying zero is fine and
// still commits.
func (d *DividendDistributor) GetDividend(caller sdk.Address) (Amount, error) {
	var paid Amount
	_, err := d.chain.Exec(sdk.Call{Contract: d.addr, Sender: caller}, func(h sdk.Host) error {
		var err error
		paid, err = d.getDividend(h)
		return err
	})
	if err != nil {
		return 0, err
	}
	return paid, nil
}

func (d *DividendDistributor) getDividend(h sdk.Host) (Amount, error) {
	caller := h.Env().Sender
	if caller.IsZero() {
		return 0, sdk.ErrInvalidSender
	}
	_, payable, err := d.entitlement(h, caller)
	if err != nil || payable == 0 {
		return 0, err
	}
	claimed, err := getClaimed(h, caller)
	if err != nil {
		return 0, err
	}
	totals, err := getDividendTotals(h)
	if err != nil {
		return 0, err
	}
	setClaimed(h, caller, claimed+payable)
	totals.TotalClaimed += payable
	setDividendTotals(h, totals)
	if err := h.Transfer(caller, int64(payable)); err != nil {
		return 0, err
	}
	emitDividendClaimedEvent(h, caller, payable)
	return payable, nil
}

// ClaimedBy is the running total already paid to addr.
func (d *DividendDistributor) ClaimedBy(addr sdk.Address) (Amount, error) {
	var claimed Amount
	err := d.chain.View(d.addr, func(v sdk.View) error {
		var err error
		claimed, err = getClaimed(v, addr)
		return err
	})
	return claimed, err
}

func (d *DividendDistributor) Info() (DividendInfo, error) {
	var info DividendInfo
	err := d.chain.View(d.addr, func(v sdk.View) error {
		oracle, err := getDividendOracle(v)
		if err != nil {
			return err
		}
		totals, err := getDividendTotals(v)
		if err != nil {
			return err
		}
		info = DividendInfo{
			Address:      d.addr.String(),
			Oracle:       oracle.String(),
			Pool:         int64(totals.Pool),
			TotalClaimed: int64(totals.TotalClaimed),
			Held:         v.Balance(),
		}
		return nil
	})
	return info, err
}
