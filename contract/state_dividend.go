package contract

import (
	"fmt"

	"rico_contracts/sdk"
)

// DividendTotals tracks everything ever received and everything paid out.
type DividendTotals struct {
	Pool         Amount
	TotalClaimed Amount
}

// Unclaimed is what the distributor still owes in aggregate.
func (t *DividendTotals) Unclaimed() Amount { return t.Pool - t.TotalClaimed }

// getDividendOracle returns the ledger the distributor was deployed against.
func getDividendOracle(r sdk.Reader) (sdk.Address, error) {
	ptr := r.StateGet(configKey())
	if ptr == nil || *ptr == "" {
		return sdk.ZeroAddress, fmt.Errorf("%w: dividend oracle missing", ErrCorruptState)
	}
	return sdk.Address(*ptr), nil
}

func setDividendOracle(h sdk.Host, oracle sdk.Address) {
	h.StateSet(configKey(), oracle.String())
}

func getDividendTotals(r sdk.Reader) (*DividendTotals, error) {
	ptr := r.StateGet(dividendPoolKey())
	if ptr == nil {
		return &DividendTotals{}, nil
	}
	return DecodeDividendTotals(*ptr)
}

func setDividendTotals(h sdk.Host, t *DividendTotals) {
	stateSetIfChanged(h, dividendPoolKey(), EncodeDividendTotals(t))
}

// getClaimed is what addr already took out of the pool.
func getClaimed(r sdk.Reader, addr sdk.Address) (Amount, error) {
	return readAmount(r, dividendClaimedKey(addr))
}

func setClaimed(h sdk.Host, addr sdk.Address, amount Amount) {
	writeAmount(h, dividendClaimedKey(addr), amount)
}
