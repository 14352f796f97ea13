package contract

import (
	"fmt"

	"rico_contracts/sdk"
)

// CampaignConfig is written once at deploy and never touched again. Times and
// durations are unix seconds.
type CampaignConfig struct {
	Stage             Stage
	StartTime         int64
	Period            int64
	Wallet            sdk.Address
	Token             sdk.Address
	Presale           sdk.Address
	MinimumInvestment Amount
	SoftCap           Amount
	HardCap           Amount
	Rate              Amount
	RefundDelay       int64
	RefundPeriod      int64
	ReserveBps        Amount
}

// EndTime is StartTime + Period.
func (c *CampaignConfig) EndTime() int64 { return c.StartTime + c.Period }

// RefundOpensAt is the first second of the refundable window.
func (c *CampaignConfig) RefundOpensAt() int64 { return c.EndTime() + c.RefundDelay }

// RefundClosesAt is the first second after the refundable window.
func (c *CampaignConfig) RefundClosesAt() int64 { return c.RefundOpensAt() + c.RefundPeriod }

// CampaignTotals are the mutable counters of a campaign.
type CampaignTotals struct {
	// WeiRaised is what the campaign still holds on behalf of contributors.
	WeiRaised Amount
	// ReservedWei is the non-refundable part once the hard cap was hit.
	ReservedWei Amount
	// SettledWei sums the contributions already cut down to their reserved share.
	SettledWei Amount
	// PresaleCredit is the presale raise recorded by the primary sale at finalize.
	PresaleCredit Amount
	// CapReached sticks once WeiRaised touched HardCap, partial refunds don't clear it.
	CapReached   bool
	Finalized    bool
	Contributors uint64
}

// getCampaignConfig loads the construction parameters, a missing record means
// the contract at this address is not a campaign.
func getCampaignConfig(r sdk.Reader) (*CampaignConfig, error) {
	ptr := r.StateGet(configKey())
	if ptr == nil {
		return nil, fmt.Errorf("%w: campaign config missing", ErrCorruptState)
	}
	return DecodeCampaignConfig(*ptr)
}

func setCampaignConfig(h sdk.Host, cfg *CampaignConfig) {
	h.StateSet(configKey(), EncodeCampaignConfig(cfg))
}

// getCampaignTotals returns zero totals before the first contribution.
func getCampaignTotals(r sdk.Reader) (*CampaignTotals, error) {
	ptr := r.StateGet(campaignTotalsKey())
	if ptr == nil {
		return &CampaignTotals{}, nil
	}
	return DecodeCampaignTotals(*ptr)
}

func setCampaignTotals(h sdk.Host, t *CampaignTotals) {
	stateSetIfChanged(h, campaignTotalsKey(), EncodeCampaignTotals(t))
}

// getContribution reads the refundable amount still held for addr.
func getContribution(r sdk.Reader, addr sdk.Address) (Amount, error) {
	return readAmount(r, contributionKey(addr))
}

// setContribution stores the amount and deletes the key when it reaches zero.
func setContribution(h sdk.Host, addr sdk.Address, amount Amount) {
	writeAmount(h, contributionKey(addr), amount)
}

func isSettled(r sdk.Reader, addr sdk.Address) bool {
	return r.StateGet(settledKey(addr)) != nil
}

func markSettled(h sdk.Host, addr sdk.Address) {
	h.StateSet(settledKey(addr), "1")
}
