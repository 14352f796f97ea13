package contract

import (
	"strconv"

	"rico_contracts/sdk"
)

// Amount is a count of base units, coins or tokens. No floats anywhere near
// custody math.
type Amount int64

// String prints the raw base units, used in event lines.
func (a Amount) String() string {
	return strconv.FormatInt(int64(a), 10)
}

// Phase is the derived lifecycle position of a campaign. Only PhaseFinalized
// is stored; every other phase follows from the clock and the totals.
type Phase uint8

const (
	PhasePending    Phase = 0
	PhaseOpen       Phase = 1
	PhaseClosed     Phase = 2
	PhaseRefundable Phase = 3
	PhaseLocked     Phase = 4
	PhaseFinalized  Phase = 5
)

// String serializes the Phase enum for views and logs.
func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseOpen:
		return "open"
	case PhaseClosed:
		return "closed"
	case PhaseRefundable:
		return "refundable"
	case PhaseLocked:
		return "locked"
	case PhaseFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Stage tells the two campaign flavours apart.
type Stage uint8

const (
	StagePresale Stage = 1
	StagePrimary Stage = 2
)

func (s Stage) String() string {
	switch s {
	case StagePresale:
		return "presale"
	case StagePrimary:
		return "primary"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Collaborators
// -----------------------------------------------------------------------------

// BalanceOracle answers holder balance questions from inside a running tx or
// query. The distributor only ever reads through it.
type BalanceOracle interface {
	Address() sdk.Address
	BalanceAt(r sdk.Reader, holder sdk.Address) (Amount, error)
	SupplyAt(r sdk.Reader) (Amount, error)
}

// Issuer credits freshly issued tokens to contributors. Campaigns call it via
// Host.Invoke so the issuer sees the campaign as sender.
type Issuer interface {
	Address() sdk.Address
	Issue(h sdk.Host, to sdk.Address, amount Amount) error
}

// StageTotals is the read-only capability a primary sale holds on the
// presale that came before it.
type StageTotals interface {
	Address() sdk.Address
	RaisedAt(r sdk.Reader) (Amount, error)
}
