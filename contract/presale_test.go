package contract_test

import (
	"testing"
	"time"

	"rico_contracts/contract"
	"rico_contracts/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Presale construction
// =============================================================================

// TestPresaleRejectsBadConfiguration walks every construction check and makes
// sure a rejected deploy leaves nothing behind.
func TestPresaleRejectsBadConfiguration(t *testing.T) {
	cases := map[string]func(p *contract.CampaignParams){
		"zero soft cap":       func(p *contract.CampaignParams) { p.SoftCap = 0 },
		"hard below soft":     func(p *contract.CampaignParams) { p.HardCap = p.SoftCap - 1 },
		"zero period":         func(p *contract.CampaignParams) { p.Period = 0 },
		"sub second period":   func(p *contract.CampaignParams) { p.Period = time.Millisecond },
		"zero wallet":         func(p *contract.CampaignParams) { p.Wallet = sdk.ZeroAddress },
		"zero minimum":        func(p *contract.CampaignParams) { p.MinimumInvestment = 0 },
		"zero rate":           func(p *contract.CampaignParams) { p.Rate = 0 },
		"negative delay":      func(p *contract.CampaignParams) { p.RefundDelay = -time.Second },
		"zero refund period":  func(p *contract.CampaignParams) { p.RefundPeriod = 0 },
		"reserve above 100%":  func(p *contract.CampaignParams) { p.ReserveBps = contract.BpsDenominator + 1 },
		"reserve of zero bps": func(p *contract.CampaignParams) { p.ReserveBps = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := setup(t)
			p := contract.DefaultPresaleParams(wallet, coins(1000), coins(1600))
			mutate(&p)
			_, err := contract.DeployPresale(f.chain, "presale", owner, p, f.token)
			require.ErrorIs(t, err, contract.ErrInvalidConfiguration)
			assert.False(t, f.chain.Deployed(sdk.ContractAddress("presale")))
		})
	}
}

// TestPresaleNeedsExistingToken covers a ledger reference that points nowhere.
func TestPresaleNeedsExistingToken(t *testing.T) {
	f := setup(t)
	ghost := contract.AttachToken(f.chain, sdk.ContractAddress("ghost"))
	_, err := contract.DeployPresale(f.chain, "presale", owner, contract.DefaultPresaleParams(wallet, coins(1000), coins(1600)), ghost)
	require.ErrorIs(t, err, contract.ErrInvalidConfiguration)
	require.ErrorIs(t, err, sdk.ErrUnknownContract)

	_, err = contract.DeployPresale(f.chain, "presale", owner, contract.DefaultPresaleParams(wallet, coins(1000), coins(1600)), nil)
	require.ErrorIs(t, err, contract.ErrInvalidConfiguration)
}

// =============================================================================
// Contributions
// =============================================================================

// TestPresaleMinimumInvestment rejects anything below the floor and keeps the
// contributor's coins where they were.
func TestPresaleMinimumInvestment(t *testing.T) {
	f := setup(t)
	presale := f.presale(t, coins(1000), coins(1600))
	before := f.balance(alice)

	err := presale.Contribute(alice, contract.DefaultMinimumInvestment-1)
	require.ErrorIs(t, err, contract.ErrCapViolation)
	assert.Equal(t, before, f.balance(alice))

	require.NoError(t, presale.Contribute(alice, contract.DefaultMinimumInvestment))
	assert.Equal(t, before-contract.DefaultMinimumInvestment, f.balance(alice))
}

// TestPresaleContributionIssuesTokens checks the ledger side of a contribution.
func TestPresaleContributionIssuesTokens(t *testing.T) {
	f := setup(t)
	presale := f.presale(t, coins(1000), coins(1600))

	require.NoError(t, presale.Contribute(alice, coins(600)))
	require.NoError(t, presale.Contribute(alice, coins(100)))

	bal, err := f.token.BalanceOf(alice)
	require.NoError(t, err)
	assert.Equal(t, coins(700), bal)
	paid, err := presale.ContributionOf(alice)
	require.NoError(t, err)
	assert.Equal(t, coins(700), paid)

	info, err := presale.Info()
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.Contributors)
	assert.Equal(t, int64(coins(700)), info.Held)
	assert.Equal(t, "open", info.Phase)
	assert.Equal(t, 2, f.countLogs("cc|by:hive:alice"))
}

// TestPresaleRejectsContributionPastHardCap leaves the raise untouched.
func TestPresaleRejectsContributionPastHardCap(t *testing.T) {
	f := setup(t)
	presale := f.presale(t, coins(1000), coins(1600))
	require.NoError(t, presale.Contribute(alice, coins(600)))

	before := f.balance(bob)
	err := presale.Contribute(bob, coins(1001))
	require.ErrorIs(t, err, contract.ErrCapViolation)
	assert.Equal(t, before, f.balance(bob))

	raised, err := presale.WeiRaised()
	require.NoError(t, err)
	assert.Equal(t, coins(600), raised)
	supply, err := f.token.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, coins(600), supply)
}

// TestPresaleClosedOnceCapReached ends the window as soon as the cap fills.
func TestPresaleClosedOnceCapReached(t *testing.T) {
	f := setup(t)
	presale := f.presale(t, coins(1000), coins(1600))
	require.NoError(t, presale.Contribute(alice, coins(1600)))

	before := f.balance(bob)
	err := presale.Contribute(bob, coins(1))
	require.ErrorIs(t, err, contract.ErrWindowClosed)
	assert.Equal(t, before, f.balance(bob))

	ended, err := presale.HasEnded()
	require.NoError(t, err)
	assert.True(t, ended)
}

// TestPresaleClosedWindow rejects contributions before the start and after the end.
func TestPresaleClosedWindow(t *testing.T) {
	f := setup(t)
	p := contract.DefaultPresaleParams(wallet, coins(1000), coins(1600))
	p.StartTime = genesisTime.Add(day)
	presale, err := contract.DeployPresale(f.chain, "presale", owner, p, f.token)
	require.NoError(t, err)

	phase, err := presale.Phase()
	require.NoError(t, err)
	assert.Equal(t, contract.PhasePending, phase)
	require.ErrorIs(t, presale.Contribute(alice, coins(1)), contract.ErrWindowClosed)

	f.at(2 * day)
	require.NoError(t, presale.Contribute(alice, coins(1)))

	f.at(day + contract.DefaultPresalePeriod)
	require.ErrorIs(t, presale.Contribute(alice, coins(1)), contract.ErrWindowClosed)
}

// =============================================================================
// Finishing
// =============================================================================

// TestPresaleFinishAtHardCap finalizes straight away once the cap is hit and
// forwards everything to the wallet exactly once.
func TestPresaleFinishAtHardCap(t *testing.T) {
	f := setup(t)
	presale := f.presale(t, coins(1000), coins(1600))
	require.NoError(t, presale.Contribute(alice, coins(600)))
	require.NoError(t, presale.Contribute(bob, coins(1000)))

	ended, err := presale.HasEnded()
	require.NoError(t, err)
	assert.True(t, ended)
	assert.Equal(t, 1, f.countLogs("ch|"))

	require.NoError(t, presale.FinishStage(owner))
	assert.Equal(t, coins(1600), f.balance(wallet))
	assert.Equal(t, contract.Amount(0), f.balance(presale.Address()))

	require.ErrorIs(t, presale.FinishStage(owner), contract.ErrAlreadyFinalized)
	assert.Equal(t, coins(1600), f.balance(wallet))

	info, err := presale.Info()
	require.NoError(t, err)
	assert.Equal(t, "finalized", info.Phase)
	assert.True(t, info.CapReached)
	assert.Equal(t, int64(coins(1000)), info.ReservedWei)
}

// TestPresaleFinishAfterWindow needs the window to elapse when only the soft
// cap was reached.
func TestPresaleFinishAfterWindow(t *testing.T) {
	f := setup(t)
	presale := f.presale(t, coins(1000), coins(1600))
	require.NoError(t, presale.Contribute(alice, coins(500)))
	require.NoError(t, presale.Contribute(bob, coins(500)))

	f.at(50 * day)
	require.ErrorIs(t, presale.FinishStage(owner), contract.ErrWindowClosed)

	f.at(120 * day)
	require.NoError(t, presale.FinishStage(owner))
	assert.Equal(t, coins(1000), f.balance(wallet))
	require.ErrorIs(t, presale.FinishStage(owner), contract.ErrAlreadyFinalized)
}

// TestPresaleFinishBelowSoftCap never forwards funds of a failed raise.
func TestPresaleFinishBelowSoftCap(t *testing.T) {
	f := setup(t)
	presale := f.presale(t, coins(1000), coins(1600))
	require.NoError(t, presale.Contribute(alice, coins(999)))

	f.at(120 * day)
	require.ErrorIs(t, presale.FinishStage(owner), contract.ErrPreconditionUnmet)
	assert.Equal(t, contract.Amount(0), f.balance(wallet))
}

// =============================================================================
// Refunds
// =============================================================================

// TestPresaleRefund covers the full refund path of a failed raise.
func TestPresaleRefund(t *testing.T) {
	f := setup(t)
	presale := f.presale(t, coins(1000), coins(1600))
	before := f.balance(alice)
	require.NoError(t, presale.Contribute(alice, coins(1)))

	require.ErrorIs(t, presale.Refund(alice), contract.ErrWindowClosed)

	f.at(120 * day)
	phase, err := presale.Phase()
	require.NoError(t, err)
	assert.Equal(t, contract.PhaseRefundable, phase)

	require.NoError(t, presale.Refund(alice))
	assert.Equal(t, before, f.balance(alice))
	require.ErrorIs(t, presale.Refund(alice), contract.ErrPreconditionUnmet)
	require.ErrorIs(t, presale.Refund(bob), contract.ErrPreconditionUnmet)

	raised, err := presale.WeiRaised()
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(0), raised)
	// tokens stay with the contributor
	tokens, err := f.token.BalanceOf(alice)
	require.NoError(t, err)
	assert.Equal(t, coins(1), tokens)
}

// TestPresaleRefundWindowCloses locks refunds once the refund period is over.
func TestPresaleRefundWindowCloses(t *testing.T) {
	f := setup(t)
	presale := f.presale(t, coins(1000), coins(1600))
	require.NoError(t, presale.Contribute(alice, coins(1)))

	f.at(contract.DefaultPresalePeriod + contract.DefaultPresaleRefundPeriod)
	phase, err := presale.Phase()
	require.NoError(t, err)
	assert.Equal(t, contract.PhaseLocked, phase)
	require.ErrorIs(t, presale.Refund(alice), contract.ErrWindowClosed)
}

// TestPresaleNoRefundAfterSoftCap keeps a successful raise intact.
func TestPresaleNoRefundAfterSoftCap(t *testing.T) {
	f := setup(t)
	presale := f.presale(t, coins(1000), coins(1600))
	require.NoError(t, presale.Contribute(alice, coins(1000)))

	f.at(120 * day)
	require.ErrorIs(t, presale.Refund(alice), contract.ErrPreconditionUnmet)

	require.NoError(t, presale.FinishStage(owner))
	require.ErrorIs(t, presale.Refund(alice), contract.ErrAlreadyFinalized)
}

// TestRejectedContributionLeavesNoTrace checks that a failed tx rolls back
// the value move and publishes no contract events.
func TestRejectedContributionLeavesNoTrace(t *testing.T) {
	f := setup(t)
	presale := f.presale(t, coins(1000), coins(1600))
	height := f.chain.Height()
	before := f.balance(alice)

	require.Error(t, presale.Contribute(alice, coins(1601)))
	assert.Equal(t, height, f.chain.Height())
	assert.Equal(t, before, f.balance(alice))
	assert.Equal(t, 0, f.countLogs("cc|"))
	assert.Equal(t, 1, f.logs.FilterMessage("tx rejected").Len())
}
