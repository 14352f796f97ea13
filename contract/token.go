package contract

import (
	"fmt"

	"rico_contracts/sdk"
)

// TokenParams configures the stake ledger. Genesis balances are issued at
// deploy, later issuance only happens through contracts (the campaigns).
type TokenParams struct {
	Name    string
	Symbol  string
	Genesis map[sdk.Address]Amount
}

// Token is the stake ledger the campaigns issue into and the distributor
// reads from. It implements both Issuer and BalanceOracle.
type Token struct {
	chain *sdk.Chain
	addr  sdk.Address
}

var (
	_ Issuer        = (*Token)(nil)
	_ BalanceOracle = (*Token)(nil)
)

// DeployToken registers a new ledger under name.
// Example payload: DeployToken(chain, "rico", "hive:owner", TokenParams{Name: "rICO", Symbol: "RICO"})
func DeployToken(chain *sdk.Chain, name string, deployer sdk.Address, p TokenParams) (*Token, error) {
	if p.Symbol == "" {
		return nil, fmt.Errorf("%w: token symbol required", ErrInvalidConfiguration)
	}
	addr, err := chain.Deploy(name, deployer, func(h sdk.Host) error {
		setTokenConfig(h, &TokenConfig{Name: p.Name, Symbol: p.Symbol})
		for _, holder := range sortedHolders(p.Genesis) {
			amount := p.Genesis[holder]
			if holder.IsZero() || amount <= 0 {
				return fmt.Errorf("%w: genesis %q=%d", ErrInvalidConfiguration, holder, amount)
			}
			if err := addTokenBalance(h, holder, amount); err != nil {
				return err
			}
			emitTokenIssuedEvent(h, h.Env().Sender, holder, amount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Token{chain: chain, addr: addr}, nil
}

// AttachToken wraps an already deployed ledger, e.g. after reopening a chain.
func AttachToken(chain *sdk.Chain, addr sdk.Address) *Token {
	return &Token{chain: chain, addr: addr}
}

func (t *Token) Address() sdk.Address { return t.addr }

// Issue credits amount to `to`. Only contracts may issue, user accounts can't
// mint themselves a stake.
func (t *Token) Issue(h sdk.Host, to sdk.Address, amount Amount) error {
	sender := h.Env().Sender
	if sender.Domain() != sdk.AddressDomainContract {
		return fmt.Errorf("%w: %s may not issue", ErrUnauthorized, sender)
	}
	if to.IsZero() {
		return sdk.ErrInvalidRecipient
	}
	if amount <= 0 {
		return fmt.Errorf("%w: issue %d", sdk.ErrInvalidAmount, amount)
	}
	if err := addTokenBalance(h, to, amount); err != nil {
		return err
	}
	emitTokenIssuedEvent(h, sender, to, amount)
	return nil
}

func (t *Token) BalanceAt(r sdk.Reader, holder sdk.Address) (Amount, error) {
	return getTokenBalance(r, holder)
}

func (t *Token) SupplyAt(r sdk.Reader) (Amount, error) {
	return getTokenSupply(r)
}

// Transfer moves tokens between holders in its own tx.
// Example payload: token.Transfer("hive:alice", "hive:bob", 500)
func (t *Token) Transfer(from, to sdk.Address, amount Amount) error {
	_, err := t.chain.Exec(sdk.Call{Contract: t.addr, Sender: from}, func(h sdk.Host) error {
		if from.IsZero() {
			return sdk.ErrInvalidSender
		}
		if to.IsZero() {
			return sdk.ErrInvalidRecipient
		}
		if amount <= 0 {
			return fmt.Errorf("%w: transfer %d", sdk.ErrInvalidAmount, amount)
		}
		if err := moveTokens(h, from, to, amount); err != nil {
			return err
		}
		emitTokenTransferEvent(h, from, to, amount)
		return nil
	})
	return err
}

// BalanceOf reads the committed balance of holder.
func (t *Token) BalanceOf(holder sdk.Address) (Amount, error) {
	var bal Amount
	err := t.chain.View(t.addr, func(v sdk.View) error {
		var err error
		bal, err = getTokenBalance(v, holder)
		return err
	})
	return bal, err
}

func (t *Token) TotalSupply() (Amount, error) {
	var supply Amount
	err := t.chain.View(t.addr, func(v sdk.View) error {
		var err error
		supply, err = getTokenSupply(v)
		return err
	})
	return supply, err
}

// Info renders the ledger summary view.
func (t *Token) Info() (TokenInfo, error) {
	var info TokenInfo
	err := t.chain.View(t.addr, func(v sdk.View) error {
		cfg, err := getTokenConfig(v)
		if err != nil {
			return err
		}
		supply, err := getTokenSupply(v)
		if err != nil {
			return err
		}
		info = TokenInfo{
			Address:     t.addr.String(),
			Name:        cfg.Name,
			Symbol:      cfg.Symbol,
			TotalSupply: int64(supply),
		}
		return nil
	})
	return info, err
}
