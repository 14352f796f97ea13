package contract_test

import (
	"testing"
	"time"

	"rico_contracts/contract"
	"rico_contracts/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stageRef points a primary sale at an arbitrary contract.
type stageRef sdk.Address

func (s stageRef) Address() sdk.Address { return sdk.Address(s) }

func (s stageRef) RaisedAt(sdk.Reader) (contract.Amount, error) { return 0, nil }

func setupStages(t *testing.T) (*fixture, *contract.Presale, *contract.PrimarySale) {
	t.Helper()
	f := setup(t)
	presale := f.presale(t, coins(1000), coins(1600))
	return f, presale, f.primary(t, presale, coins(1000), coins(1600))
}

// =============================================================================
// Construction
// =============================================================================

// TestPrimaryNeedsPresale rejects a missing or bogus presale link.
func TestPrimaryNeedsPresale(t *testing.T) {
	f := setup(t)
	p := contract.DefaultPrimaryParams(wallet, coins(1000), coins(1600))

	_, err := contract.DeployPrimarySale(f.chain, "primary", owner, p, f.token, nil)
	require.ErrorIs(t, err, contract.ErrInvalidConfiguration)

	// the ledger is a contract but not a campaign
	_, err = contract.DeployPrimarySale(f.chain, "primary", owner, p, f.token, stageRef(f.token.Address()))
	require.ErrorIs(t, err, contract.ErrInvalidConfiguration)

	presale := f.presale(t, coins(1000), coins(1600))
	primary := f.primary(t, presale, coins(1000), coins(1600))

	// a primary sale is not a presale either
	_, err = contract.DeployPrimarySale(f.chain, "primary2", owner, p, f.token, stageRef(primary.Address()))
	require.ErrorIs(t, err, contract.ErrInvalidConfiguration)
	assert.False(t, f.chain.Deployed(sdk.ContractAddress("primary2")))
}

// =============================================================================
// Withdrawal
// =============================================================================

// TestPrimaryWithdrawalBelowSoftCap keeps the funds in the contract.
func TestPrimaryWithdrawalBelowSoftCap(t *testing.T) {
	f, _, primary := setupStages(t)
	require.NoError(t, primary.Contribute(alice, coins(500)))

	f.at(8 * day)
	require.ErrorIs(t, primary.Withdrawal(owner), contract.ErrPreconditionUnmet)
	assert.Equal(t, coins(500), f.balance(primary.Address()))
}

// TestPrimaryWithdrawalCreditsPresale records the presale raise next to the
// primary raise when the primary sale is finalized.
func TestPrimaryWithdrawalCreditsPresale(t *testing.T) {
	f, presale, primary := setupStages(t)
	require.NoError(t, presale.Contribute(alice, coins(1000)))
	require.NoError(t, primary.Contribute(bob, coins(600)))
	require.NoError(t, primary.Contribute(carol, coins(1000)))

	total, err := primary.TotalRaised()
	require.NoError(t, err)
	assert.Equal(t, coins(1600), total)

	require.NoError(t, primary.Withdrawal(owner))
	assert.Equal(t, coins(1600), f.balance(wallet))

	total, err = primary.TotalRaised()
	require.NoError(t, err)
	assert.Equal(t, coins(2600), total)
	info, err := primary.Info()
	require.NoError(t, err)
	assert.Equal(t, int64(coins(1000)), info.PresaleCredit)
	assert.Equal(t, presale.Address().String(), info.Presale)
	assert.Equal(t, "primary", info.Stage)

	require.ErrorIs(t, primary.Withdrawal(owner), contract.ErrAlreadyFinalized)
}

// =============================================================================
// Lifecycle
// =============================================================================

// TestPrimaryPhases walks the derived phase through the default windows.
func TestPrimaryPhases(t *testing.T) {
	f, _, primary := setupStages(t)
	steps := []struct {
		at    int
		phase contract.Phase
		ended bool
	}{
		{at: 0, phase: contract.PhaseOpen},
		{at: 1, phase: contract.PhaseOpen},
		{at: 8, phase: contract.PhaseClosed, ended: true},
		{at: 100, phase: contract.PhaseRefundable, ended: true},
		{at: 155, phase: contract.PhaseLocked, ended: true},
		{at: 207, phase: contract.PhaseLocked, ended: true},
	}
	for _, s := range steps {
		f.at(time.Duration(s.at) * day)
		phase, err := primary.Phase()
		require.NoError(t, err)
		assert.Equal(t, s.phase, phase, "day %d", s.at)
		ended, err := primary.HasEnded()
		require.NoError(t, err)
		assert.Equal(t, s.ended, ended, "day %d", s.at)
	}
}

// =============================================================================
// Refunds
// =============================================================================

// TestPrimaryRefundWindow only allows the full refund between day 97 and day 142.
func TestPrimaryRefundWindow(t *testing.T) {
	f, _, primary := setupStages(t)
	before := f.balance(alice)
	require.NoError(t, primary.Contribute(alice, coins(1)))
	require.NoError(t, primary.Contribute(bob, coins(1)))

	f.at(10 * day)
	require.ErrorIs(t, primary.Refund(alice), contract.ErrWindowClosed)

	f.at(100 * day)
	require.NoError(t, primary.Refund(alice))
	assert.Equal(t, before, f.balance(alice))

	f.at(155 * day)
	require.ErrorIs(t, primary.Refund(bob), contract.ErrWindowClosed)
	assert.Equal(t, coins(1), f.balance(primary.Address()))
}

// TestPrimaryRefundPartWindow mirrors the refund window for partial refunds.
func TestPrimaryRefundPartWindow(t *testing.T) {
	f, _, primary := setupStages(t)
	require.NoError(t, primary.Contribute(alice, coins(1600)))

	f.at(10 * day)
	require.ErrorIs(t, primary.RefundPart(alice), contract.ErrWindowClosed)
	f.at(155 * day)
	require.ErrorIs(t, primary.RefundPart(alice), contract.ErrWindowClosed)

	f.at(100 * day)
	before := f.balance(alice)
	require.NoError(t, primary.RefundPart(alice))
	assert.Equal(t, before+coins(600), f.balance(alice))
	assert.Equal(t, coins(1000), f.balance(primary.Address()))

	require.ErrorIs(t, primary.RefundPart(alice), contract.ErrPreconditionUnmet)
}

// TestPrimaryRefundPartBelowHardCap has nothing to give back while the cap
// was never reached.
func TestPrimaryRefundPartBelowHardCap(t *testing.T) {
	f, _, primary := setupStages(t)
	require.NoError(t, primary.Contribute(alice, coins(1000)))

	f.at(100 * day)
	require.ErrorIs(t, primary.RefundPart(alice), contract.ErrPreconditionUnmet)
	require.ErrorIs(t, primary.UpdateReservedWei(alice), contract.ErrPreconditionUnmet)
}

// TestPrimaryRefundPartLeavesReserve refunds every contributor and ends up
// holding exactly the reserve.
func TestPrimaryRefundPartLeavesReserve(t *testing.T) {
	f, _, primary := setupStages(t)
	require.NoError(t, primary.Contribute(alice, coins(600)))
	require.NoError(t, primary.Contribute(bob, coins(1000)))

	f.at(100 * day)
	aliceBefore, bobBefore := f.balance(alice), f.balance(bob)
	require.NoError(t, primary.RefundPart(alice))
	require.NoError(t, primary.RefundPart(bob))

	assert.Equal(t, aliceBefore+coins(225), f.balance(alice))
	assert.Equal(t, bobBefore+coins(375), f.balance(bob))

	info, err := primary.Info()
	require.NoError(t, err)
	assert.Equal(t, info.ReservedWei, info.Held)
	assert.Equal(t, int64(coins(1000)), info.Held)
	assert.Equal(t, int64(coins(1000)), info.WeiRaised)
	assert.True(t, info.CapReached)
	assert.True(t, info.HasEnded)

	kept, err := primary.ContributionOf(alice)
	require.NoError(t, err)
	assert.Equal(t, coins(375), kept)
	assert.Equal(t, 2, f.countLogs("cp|"))
}

// TestPrimaryUpdateReservedWei keeps the reserve stable across partial refunds.
func TestPrimaryUpdateReservedWei(t *testing.T) {
	f, _, primary := setupStages(t)
	require.NoError(t, primary.Contribute(alice, coins(600)))
	require.NoError(t, primary.Contribute(bob, coins(1000)))

	f.at(10 * day)
	require.ErrorIs(t, primary.UpdateReservedWei(alice), contract.ErrWindowClosed)

	f.at(100 * day)
	require.NoError(t, primary.UpdateReservedWei(alice))
	info, err := primary.Info()
	require.NoError(t, err)
	assert.Equal(t, int64(coins(1000)), info.ReservedWei)

	require.NoError(t, primary.RefundPart(alice))
	require.NoError(t, primary.UpdateReservedWei(carol))
	info, err = primary.Info()
	require.NoError(t, err)
	assert.Equal(t, int64(coins(1000)), info.ReservedWei)
	assert.Equal(t, 2, f.countLogs("cu|"))

	require.ErrorIs(t, primary.UpdateReservedWei(sdk.ZeroAddress), sdk.ErrInvalidSender)
}

// TestPrimaryRefundsStopAfterFinalize blocks refunds of a finalized sale.
func TestPrimaryRefundsStopAfterFinalize(t *testing.T) {
	f, _, primary := setupStages(t)
	require.NoError(t, primary.Contribute(alice, coins(1600)))
	require.NoError(t, primary.Withdrawal(owner))

	f.at(100 * day)
	require.ErrorIs(t, primary.RefundPart(alice), contract.ErrAlreadyFinalized)
	require.ErrorIs(t, primary.Refund(alice), contract.ErrAlreadyFinalized)
}
