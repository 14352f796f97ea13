package contract

import (
	"fmt"

	"rico_contracts/sdk"
)

// EscrowConfig bounds the delay a depositor may pick. DelayUnit is seconds.
type EscrowConfig struct {
	MaxDelay  int64
	DelayUnit int64
}

// Deposit is one outstanding escrow record.
type Deposit struct {
	Amount      Amount
	DepositedAt int64
	UnlockAt    int64
}

func getEscrowConfig(r sdk.Reader) (*EscrowConfig, error) {
	ptr := r.StateGet(configKey())
	if ptr == nil {
		return nil, fmt.Errorf("%w: escrow config missing", ErrCorruptState)
	}
	return DecodeEscrowConfig(*ptr)
}

func setEscrowConfig(h sdk.Host, cfg *EscrowConfig) {
	h.StateSet(configKey(), EncodeEscrowConfig(cfg))
}

// getDeposit returns nil when addr has nothing locked.
func getDeposit(r sdk.Reader, addr sdk.Address) (*Deposit, error) {
	ptr := r.StateGet(depositKey(addr))
	if ptr == nil {
		return nil, nil
	}
	return DecodeDeposit(*ptr)
}

func setDeposit(h sdk.Host, addr sdk.Address, d *Deposit) {
	h.StateSet(depositKey(addr), EncodeDeposit(d))
}

func deleteDeposit(h sdk.Host, addr sdk.Address) {
	h.StateDelete(depositKey(addr))
}
