////////////////////////////////////////////////////////////////////////////////
// rICO devnet: deploys the fundraising suite (ledger, presale, primary sale,
// dividend distributor, escrow) onto a local chain and prints its state.
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"fmt"
	"os"

	"rico_contracts/config"
	"rico_contracts/contract"
	"rico_contracts/sdk"

	"github.com/CosmWasm/tinyjson"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	path := os.Getenv("RICO_CONFIG")
	if path == "" {
		path = "rico.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	state, err := openState(cfg)
	if err != nil {
		return err
	}
	chain := sdk.NewChain(state, nil, logger)
	defer func() {
		if err := chain.Close(); err != nil {
			logger.Error("close chain", zap.Error(err))
		}
	}()

	// genesis funding only happens on a fresh store
	if chain.Height() == 0 {
		for _, addr := range cfg.GenesisAccounts() {
			if err := chain.Fund(addr, cfg.Genesis[addr]); err != nil {
				return fmt.Errorf("fund %s: %w", addr, err)
			}
		}
	}

	suite, err := openSuite(chain, cfg, logger)
	if err != nil {
		return err
	}

	info, err := suite.Info()
	if err != nil {
		return err
	}
	raw, err := tinyjson.Marshal(info)
	if err != nil {
		return fmt.Errorf("render suite: %w", err)
	}
	fmt.Println(string(raw))
	return nil
}

// openSuite reattaches to cfg.Suite when the store already holds it and
// deploys otherwise. Without a configured suffix every run gets a fresh one.
func openSuite(chain *sdk.Chain, cfg config.Config, logger *zap.Logger) (*contract.Suite, error) {
	suffix := cfg.Suite
	if suffix == "" {
		suffix = "-" + uuid.NewString()[:8]
	}
	fields := []zap.Field{
		zap.String("suffix", suffix),
		zap.String("store", string(cfg.Store)),
	}
	if chain.Deployed(sdk.ContractAddress("token" + suffix)) {
		suite, err := contract.AttachSuite(chain, suffix)
		if err != nil {
			return nil, err
		}
		logger.Info("suite attached", append(fields, zap.Uint64("height", chain.Height()))...)
		return suite, nil
	}
	suite, err := contract.DeploySuite(chain, cfg.Deployer, cfg.SuiteParams(suffix))
	if err != nil {
		return nil, err
	}
	logger.Info("suite deployed", append(fields, zap.Uint64("height", chain.Height()))...)
	return suite, nil
}

func openState(cfg config.Config) (sdk.State, error) {
	switch cfg.Store {
	case config.StoreFile:
		return sdk.OpenFileState(cfg.StorePath)
	case config.StoreLevelDB:
		return sdk.OpenLevelState(cfg.StorePath)
	default:
		return sdk.NewMemoryState(), nil
	}
}
