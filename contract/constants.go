package contract

import "time"

// -----------------------------------------------------------------------------
// Amount Scaling
// -----------------------------------------------------------------------------

// BpsDenominator is 100% in basis points.
const BpsDenominator = 10_000

// -----------------------------------------------------------------------------
// Campaign Defaults
// -----------------------------------------------------------------------------

const (
	DefaultMinimumInvestment Amount = 10_000
	// DefaultReserveBps keeps 62.5% of an over-subscribed raise, which is the
	// soft cap over the hard cap with the default caps.
	DefaultReserveBps = 6_250

	DefaultPresalePeriod       = 100 * 24 * time.Hour
	DefaultPresaleRefundDelay  = time.Duration(0)
	DefaultPresaleRefundPeriod = 30 * 24 * time.Hour

	DefaultPrimaryPeriod       = 7 * 24 * time.Hour
	DefaultPrimaryRefundDelay  = 90 * 24 * time.Hour
	DefaultPrimaryRefundPeriod = 45 * 24 * time.Hour
)

// -----------------------------------------------------------------------------
// Escrow Defaults
// -----------------------------------------------------------------------------

const (
	// DefaultEscrowMaxDelay is the exclusive upper bound on delay units.
	DefaultEscrowMaxDelay int64 = 87_600
	DefaultEscrowDelayUnit      = time.Hour
)
