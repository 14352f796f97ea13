package contract

import (
	"fmt"

	"rico_contracts/sdk"
)

// TokenConfig carries the display metadata of the ledger.
type TokenConfig struct {
	Name   string
	Symbol string
}

func getTokenConfig(r sdk.Reader) (*TokenConfig, error) {
	ptr := r.StateGet(configKey())
	if ptr == nil {
		return nil, fmt.Errorf("%w: token config missing", ErrCorruptState)
	}
	return DecodeTokenConfig(*ptr)
}

func setTokenConfig(h sdk.Host, cfg *TokenConfig) {
	h.StateSet(configKey(), EncodeTokenConfig(cfg))
}

func getTokenBalance(r sdk.Reader, holder sdk.Address) (Amount, error) {
	return readAmount(r, tokenBalanceKey(holder))
}

func setTokenBalance(h sdk.Host, holder sdk.Address, amount Amount) {
	writeAmount(h, tokenBalanceKey(holder), amount)
}

func getTokenSupply(r sdk.Reader) (Amount, error) {
	return readAmount(r, tokenSupplyKey())
}

func setTokenSupply(h sdk.Host, amount Amount) {
	writeAmount(h, tokenSupplyKey(), amount)
}

// addTokenBalance credits holder and bumps supply, used by issuance.
func addTokenBalance(h sdk.Host, holder sdk.Address, amount Amount) error {
	bal, err := getTokenBalance(h, holder)
	if err != nil {
		return err
	}
	supply, err := getTokenSupply(h)
	if err != nil {
		return err
	}
	if bal, err = addAmount(bal, amount); err != nil {
		return err
	}
	if supply, err = addAmount(supply, amount); err != nil {
		return err
	}
	setTokenBalance(h, holder, bal)
	setTokenSupply(h, supply)
	return nil
}

// moveTokens shifts amount between holders, supply stays put.
func moveTokens(h sdk.Host, from, to sdk.Address, amount Amount) error {
	fromBal, err := getTokenBalance(h, from)
	if err != nil {
		return err
	}
	if fromBal < amount {
		return fmt.Errorf("%w: %s holds %d, needs %d", ErrInsufficientBalance, from, fromBal, amount)
	}
	setTokenBalance(h, from, fromBal-amount)
	toBal, err := getTokenBalance(h, to)
	if err != nil {
		return err
	}
	if toBal, err = addAmount(toBal, amount); err != nil {
		return err
	}
	setTokenBalance(h, to, toBal)
	return nil
}
