package contract

import "rico_contracts/sdk"

// PrimarySale is the main stage. On finalize it records the presale raise as
// a credit so the combined total can be read from one place.
type PrimarySale struct {
	*Campaign
}

// DeployPrimarySale creates the primary sale linked to presale.
func DeployPrimarySale(chain *sdk.Chain, name string, deployer sdk.Address, p CampaignParams, token Issuer, presale StageTotals) (*PrimarySale, error) {
	c, err := deployCampaign(chain, name, deployer, StagePrimary, p, token, presale)
	if err != nil {
		return nil, err
	}
	return &PrimarySale{Campaign: c}, nil
}

// AttachPrimarySale wraps an already deployed primary sale.
func AttachPrimarySale(chain *sdk.Chain, addr sdk.Address, token Issuer, presale StageTotals) *PrimarySale {
	return &PrimarySale{Campaign: &Campaign{chain: chain, addr: addr, issuer: token, presale: presale}}
}

// Withdrawal is the primary sale name for FinishStage.
func (s *PrimarySale) Withdrawal(caller sdk.Address) error {
	return s.FinishStage(caller)
}

// TotalRaised is the presale credit plus this stage's own raise. The credit
// is zero until the primary sale is finalized.
func (s *PrimarySale) TotalRaised() (Amount, error) {
	var total Amount
	err := s.view(func(_ sdk.View, _ *CampaignConfig, t *CampaignTotals) error {
		var err error
		total, err = addAmount(t.PresaleCredit, t.WeiRaised)
		return err
	})
	return total, err
}

// DefaultPrimaryParams fills in the primary sale timings and caps, opening at deploy.
func DefaultPrimaryParams(wallet sdk.Address, softCap, hardCap Amount) CampaignParams {
	return CampaignParams{
		Period:            DefaultPrimaryPeriod,
		Wallet:            wallet,
		MinimumInvestment: DefaultMinimumInvestment,
		SoftCap:           softCap,
		HardCap:           hardCap,
		Rate:              1,
		RefundDelay:       DefaultPrimaryRefundDelay,
		RefundPeriod:      DefaultPrimaryRefundPeriod,
		ReserveBps:        DefaultReserveBps,
	}
}
