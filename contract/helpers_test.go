package contract_test

import (
	"strings"
	"testing"
	"time"

	"rico_contracts/contract"
	"rico_contracts/sdk"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// =============================================================================
// Shared fixture
// =============================================================================

const (
	owner  sdk.Address = "hive:owner"
	wallet sdk.Address = "hive:wallet"
	alice  sdk.Address = "hive:alice"
	bob    sdk.Address = "hive:bob"
	carol  sdk.Address = "hive:carol"
	dave   sdk.Address = "hive:dave"

	day = 24 * time.Hour
)

// genesisTime is the block time every fixture starts at.
var genesisTime = time.Unix(1_700_000_000, 0).UTC()

// coins scales whole coins into base units (9 decimals).
func coins(n int64) contract.Amount {
	return contract.Amount(n * 1_000_000_000)
}

type fixture struct {
	chain *sdk.Chain
	clock *sdk.ManualClock
	logs  *observer.ObservedLogs
	token *contract.Token
}

// setup opens an in-memory chain at genesisTime, funds the test accounts with
// 10k coins each and deploys an empty ledger.
func setup(t *testing.T) *fixture {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	clock := sdk.NewManualClock(genesisTime)
	chain := sdk.NewChain(sdk.NewMemoryState(), clock, zap.New(core))
	for _, a := range []sdk.Address{alice, bob, carol, dave} {
		require.NoError(t, chain.Fund(a, int64(coins(10_000))))
	}
	token, err := contract.DeployToken(chain, "token", owner, contract.TokenParams{Name: "rICO", Symbol: "RICO"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = chain.Close() })
	return &fixture{chain: chain, clock: clock, logs: logs, token: token}
}

// at moves the clock to genesisTime + d.
func (f *fixture) at(d time.Duration) {
	f.clock.Set(genesisTime.Add(d))
}

func (f *fixture) balance(a sdk.Address) contract.Amount {
	return contract.Amount(f.chain.BalanceOf(a))
}

func (f *fixture) presale(t *testing.T, softCap, hardCap contract.Amount) *contract.Presale {
	t.Helper()
	p, err := contract.DeployPresale(f.chain, "presale", owner, contract.DefaultPresaleParams(wallet, softCap, hardCap), f.token)
	require.NoError(t, err)
	return p
}

func (f *fixture) primary(t *testing.T, presale *contract.Presale, softCap, hardCap contract.Amount) *contract.PrimarySale {
	t.Helper()
	p, err := contract.DeployPrimarySale(f.chain, "primary", owner, contract.DefaultPrimaryParams(wallet, softCap, hardCap), f.token, presale)
	require.NoError(t, err)
	return p
}

// countLogs counts committed event lines starting with prefix.
func (f *fixture) countLogs(prefix string) int {
	n := 0
	for _, e := range f.logs.All() {
		if strings.HasPrefix(e.Message, prefix) {
			n++
		}
	}
	return n
}
