package contract

import (
	"fmt"

	"rico_contracts/sdk"
)

// SuiteParams holds everything DeploySuite needs. Suffix is appended to every
// deployment name so several suites can share one chain.
type SuiteParams struct {
	Suffix  string
	Token   TokenParams
	Presale CampaignParams
	Primary CampaignParams
	Escrow  EscrowParams
}

// Suite is a full deployment: the ledger, both sale stages, the distributor
// reading the ledger and an escrow.
type Suite struct {
	Token     *Token
	Presale   *Presale
	Primary   *PrimarySale
	Dividends *DividendDistributor
	Escrow    *DelayedPaymentEscrow
}

// DeploySuite deploys the contracts in dependency order. It stops at the first
// failure, contracts deployed before that stay on chain.
// Example payload: DeploySuite(chain, "hive:owner", SuiteParams{Suffix: "-1", ...})
func DeploySuite(chain *sdk.Chain, deployer sdk.Address, p SuiteParams) (*Suite, error) {
	name := func(base string) string { return base + p.Suffix }
	s := &Suite{}
	var err error
	if s.Token, err = DeployToken(chain, name("token"), deployer, p.Token); err != nil {
		return nil, fmt.Errorf("deploy token: %w", err)
	}
	if s.Presale, err = DeployPresale(chain, name("presale"), deployer, p.Presale, s.Token); err != nil {
		return nil, fmt.Errorf("deploy presale: %w", err)
	}
	if s.Primary, err = DeployPrimarySale(chain, name("primary"), deployer, p.Primary, s.Token, s.Presale); err != nil {
		return nil, fmt.Errorf("deploy primary sale: %w", err)
	}
	if s.Dividends, err = DeployDividendDistributor(chain, name("dividends"), deployer, s.Token); err != nil {
		return nil, fmt.Errorf("deploy dividends: %w", err)
	}
	if s.Escrow, err = DeployEscrow(chain, name("escrow"), deployer, p.Escrow); err != nil {
		return nil, fmt.Errorf("deploy escrow: %w", err)
	}
	return s, nil
}

// AttachSuite picks up a suite deployed earlier under suffix, e.g. after
// reopening a persistent store.
func AttachSuite(chain *sdk.Chain, suffix string) (*Suite, error) {
	addr := func(base string) (sdk.Address, error) {
		a := sdk.ContractAddress(base + suffix)
		if !chain.Deployed(a) {
			return sdk.ZeroAddress, fmt.Errorf("attach %s: %w: %s", base, sdk.ErrUnknownContract, a)
		}
		return a, nil
	}
	var addrs [5]sdk.Address
	for i, base := range []string{"token", "presale", "primary", "dividends", "escrow"} {
		a, err := addr(base)
		if err != nil {
			return nil, err
		}
		addrs[i] = a
	}
	s := &Suite{Token: AttachToken(chain, addrs[0])}
	s.Presale = AttachPresale(chain, addrs[1], s.Token)
	s.Primary = AttachPrimarySale(chain, addrs[2], s.Token, s.Presale)
	s.Dividends = AttachDividendDistributor(chain, addrs[3], s.Token)
	s.Escrow = AttachEscrow(chain, addrs[4])
	return s, nil
}

// Info collects the views of every contract in the suite.
func (s *Suite) Info() (SuiteInfo, error) {
	var (
		info SuiteInfo
		err  error
	)
	if info.Token, err = s.Token.Info(); err != nil {
		return info, err
	}
	if info.Presale, err = s.Presale.Info(); err != nil {
		return info, err
	}
	if info.Primary, err = s.Primary.Info(); err != nil {
		return info, err
	}
	if info.Dividends, err = s.Dividends.Info(); err != nil {
		return info, err
	}
	info.Escrow = s.Escrow.Address().String()
	return info, nil
}
