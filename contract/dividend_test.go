package contract_test

import (
	"testing"

	"rico_contracts/contract"
	"rico_contracts/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payer sdk.Address = "hive:payer"

// setupDividends deploys a ledger with the given genesis holders and a
// distributor on top of it, then pays 6 coins into the pool.
func setupDividends(t *testing.T, genesis map[sdk.Address]contract.Amount) (*fixture, *contract.Token, *contract.DividendDistributor) {
	t.Helper()
	f := setup(t)
	require.NoError(t, f.chain.Fund(payer, int64(coins(100))))
	token, err := contract.DeployToken(f.chain, "stake", owner, contract.TokenParams{Name: "stake", Symbol: "STK", Genesis: genesis})
	require.NoError(t, err)
	dist, err := contract.DeployDividendDistributor(f.chain, "dividends", owner, token)
	require.NoError(t, err)
	require.NoError(t, dist.Receive(payer, coins(6)))
	return f, token, dist
}

// =============================================================================
// Construction and pool
// =============================================================================

// TestDividendRejectsMissingLedger covers the zero and the unknown ledger.
func TestDividendRejectsMissingLedger(t *testing.T) {
	f := setup(t)
	_, err := contract.DeployDividendDistributor(f.chain, "dividends", owner, nil)
	require.ErrorIs(t, err, contract.ErrInvalidConfiguration)

	zero := contract.AttachToken(f.chain, sdk.ZeroAddress)
	_, err = contract.DeployDividendDistributor(f.chain, "dividends", owner, zero)
	require.ErrorIs(t, err, contract.ErrInvalidConfiguration)

	ghost := contract.AttachToken(f.chain, sdk.ContractAddress("ghost"))
	_, err = contract.DeployDividendDistributor(f.chain, "dividends", owner, ghost)
	require.ErrorIs(t, err, contract.ErrInvalidConfiguration)
	assert.False(t, f.chain.Deployed(sdk.ContractAddress("dividends")))
}

// TestDividendReceive grows the pool with every payment.
func TestDividendReceive(t *testing.T) {
	f, token, dist := setupDividends(t, map[sdk.Address]contract.Amount{alice: 100})
	require.NoError(t, dist.Receive(payer, coins(1)))
	require.ErrorIs(t, dist.Receive(payer, 0), sdk.ErrInvalidAmount)

	info, err := dist.Info()
	require.NoError(t, err)
	assert.Equal(t, int64(coins(7)), info.Pool)
	assert.Equal(t, int64(coins(7)), info.Held)
	assert.Equal(t, token.Address().String(), info.Oracle)
	assert.Equal(t, 2, f.countLogs("dr|"))
}

// =============================================================================
// Claims
// =============================================================================

// TestDividendClaimThenTransfer leaves nothing for the transferee once the
// only holder claimed the whole pool.
func TestDividendClaimThenTransfer(t *testing.T) {
	f, token, dist := setupDividends(t, map[sdk.Address]contract.Amount{alice: 100})

	ok, err := dist.HasDividend(alice)
	require.NoError(t, err)
	assert.True(t, ok)

	before := f.balance(alice)
	paid, err := dist.GetDividend(alice)
	require.NoError(t, err)
	assert.Equal(t, coins(6), paid)
	assert.Equal(t, before+coins(6), f.balance(alice))

	require.NoError(t, token.Transfer(alice, dave, 100))
	ok, err = dist.HasDividend(dave)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = dist.HasDividend(alice)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestDividendTransferBeforeClaim moves the entitlement along with the balance.
func TestDividendTransferBeforeClaim(t *testing.T) {
	_, token, dist := setupDividends(t, map[sdk.Address]contract.Amount{alice: 100})

	require.NoError(t, token.Transfer(alice, carol, 100))
	ok, err := dist.HasDividend(carol)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = dist.HasDividend(alice)
	require.NoError(t, err)
	assert.False(t, ok)

	owed, err := dist.Entitlement(carol)
	require.NoError(t, err)
	assert.Equal(t, coins(6), owed)
}

// TestDividendZeroBalanceClaimSucceeds pays nothing but doesn't fail.
func TestDividendZeroBalanceClaimSucceeds(t *testing.T) {
	f, _, dist := setupDividends(t, map[sdk.Address]contract.Amount{alice: 100})
	before := f.balance(bob)
	paid, err := dist.GetDividend(bob)
	require.NoError(t, err)
	assert.Equal(t, contract.Amount(0), paid)
	assert.Equal(t, before, f.balance(bob))
	assert.Equal(t, 0, f.countLogs("dc|"))
}

// TestDividendInvestorsGain pays both presale contributors something.
func TestDividendInvestorsGain(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.chain.Fund(payer, int64(coins(100))))
	presale := f.presale(t, coins(1000), coins(1600))
	dist, err := contract.DeployDividendDistributor(f.chain, "dividends", owner, f.token)
	require.NoError(t, err)

	require.NoError(t, presale.Contribute(alice, coins(1)))
	require.NoError(t, presale.Contribute(bob, coins(1)))
	require.NoError(t, presale.Contribute(carol, coins(1)))
	require.NoError(t, dist.Receive(payer, coins(6)))

	for _, investor := range []sdk.Address{bob, carol} {
		before := f.balance(investor)
		paid, err := dist.GetDividend(investor)
		require.NoError(t, err)
		assert.Equal(t, coins(2), paid)
		assert.Greater(t, f.balance(investor), before)
	}
}

// TestDividendLateTransferLoses compares a holder who claimed before
// transferring with one who transferred first, and checks the pool is never
// overdrawn.
func TestDividendLateTransferLoses(t *testing.T) {
	f, token, dist := setupDividends(t, map[sdk.Address]contract.Amount{alice: 100, bob: 100, carol: 100})

	aliceGot, err := dist.GetDividend(alice)
	require.NoError(t, err)
	require.NoError(t, token.Transfer(alice, dave, 100))
	require.NoError(t, token.Transfer(bob, dave, 100))
	bobGot, err := dist.GetDividend(bob)
	require.NoError(t, err)
	assert.Greater(t, aliceGot, bobGot)

	daveGot, err := dist.GetDividend(dave)
	require.NoError(t, err)
	carolGot, err := dist.GetDividend(carol)
	require.NoError(t, err)

	assert.Equal(t, coins(2), aliceGot)
	assert.Equal(t, contract.Amount(0), bobGot)
	assert.Equal(t, coins(4), daveGot)
	assert.Equal(t, contract.Amount(0), carolGot)

	info, err := dist.Info()
	require.NoError(t, err)
	assert.LessOrEqual(t, info.TotalClaimed, info.Pool)
	assert.Equal(t, int64(0), info.Held)
	assert.Equal(t, int64(0), f.chain.BalanceOf(dist.Address()))

	claimed, err := dist.ClaimedBy(dave)
	require.NoError(t, err)
	assert.Equal(t, coins(4), claimed)
}
