package contract

import "rico_contracts/sdk"

// Presale is the first stage. Its raise is credited to the primary sale.
type Presale struct {
	*Campaign
}

var _ StageTotals = (*Presale)(nil)

// DeployPresale creates the presale campaign issuing into token.
// Example payload: DeployPresale(chain, "presale", "hive:owner", DefaultPresaleParams("hive:wallet", 1000, 1600), token)
func DeployPresale(chain *sdk.Chain, name string, deployer sdk.Address, p CampaignParams, token Issuer) (*Presale, error) {
	c, err := deployCampaign(chain, name, deployer, StagePresale, p, token, nil)
	if err != nil {
		return nil, err
	}
	return &Presale{Campaign: c}, nil
}

// AttachPresale wraps an already deployed presale.
func AttachPresale(chain *sdk.Chain, addr sdk.Address, token Issuer) *Presale {
	return &Presale{Campaign: &Campaign{chain: chain, addr: addr, issuer: token}}
}

// DefaultPresaleParams fills in the presale timings and caps, opening at deploy.
func DefaultPresaleParams(wallet sdk.Address, softCap, hardCap Amount) CampaignParams {
	return CampaignParams{
		Period:            DefaultPresalePeriod,
		Wallet:            wallet,
		MinimumInvestment: DefaultMinimumInvestment,
		SoftCap:           softCap,
		HardCap:           hardCap,
		Rate:              1,
		RefundDelay:       DefaultPresaleRefundDelay,
		RefundPeriod:      DefaultPresaleRefundPeriod,
		ReserveBps:        DefaultReserveBps,
	}
}
