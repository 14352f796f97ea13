package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"rico_contracts/contract"
	"rico_contracts/sdk"

	"gopkg.in/yaml.v3"
)

// StoreKind selects the state backend of the devnet chain.
type StoreKind string

const (
	StoreMemory  StoreKind = "memory"
	StoreFile    StoreKind = "file"
	StoreLevelDB StoreKind = "leveldb"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Store     StoreKind
	StorePath string
	Debug     bool

	Deployer sdk.Address
	// Suite is the deployment suffix to reattach to on a persistent store.
	// Empty deploys a fresh suite under a random suffix.
	Suite string
	// Genesis funds native coin accounts before anything is deployed.
	Genesis map[sdk.Address]int64

	TokenName   string
	TokenSymbol string

	Presale Campaign
	Primary Campaign

	EscrowMaxDelay  int64
	EscrowDelayUnit time.Duration
}

// Campaign is one sale stage. A zero Start opens the stage at deployment.
type Campaign struct {
	Start             time.Time
	Period            time.Duration
	Wallet            sdk.Address
	MinimumInvestment int64
	SoftCap           int64
	HardCap           int64
	Rate              int64
	RefundDelay       time.Duration
	RefundPeriod      time.Duration
	ReserveBps        int64
}

type campaignFile struct {
	Start             string `yaml:"start"`
	Period            string `yaml:"period"`
	Wallet            string `yaml:"wallet"`
	MinimumInvestment int64  `yaml:"minimum_investment"`
	SoftCap           int64  `yaml:"soft_cap"`
	HardCap           int64  `yaml:"hard_cap"`
	Rate              int64  `yaml:"rate"`
	RefundDelay       string `yaml:"refund_delay"`
	RefundPeriod      string `yaml:"refund_period"`
	ReserveBps        int64  `yaml:"reserve_bps"`
}

type configFile struct {
	Chain struct {
		Store     string           `yaml:"store"`
		StorePath string           `yaml:"store_path"`
		Debug     *bool            `yaml:"debug"`
		Deployer  string           `yaml:"deployer"`
		Suite     string           `yaml:"suite"`
		Genesis   map[string]int64 `yaml:"genesis"`
	} `yaml:"chain"`
	Token struct {
		Name   string `yaml:"name"`
		Symbol string `yaml:"symbol"`
	} `yaml:"token"`
	Presale campaignFile `yaml:"presale"`
	Primary campaignFile `yaml:"primary"`
	Escrow  struct {
		MaxDelay  int64  `yaml:"max_delay"`
		DelayUnit string `yaml:"delay_unit"`
	} `yaml:"escrow"`
}

const coin = 1_000_000_000

// Default is the devnet setup: both stages with a 1000 coin soft cap and a
// 1600 coin hard cap, the stock timings and an in-memory chain.
func Default() Config {
	return Config{
		Store:       StoreMemory,
		StorePath:   "rico.db",
		Deployer:    "hive:rico-owner",
		Genesis:     map[sdk.Address]int64{},
		TokenName:   "rICO",
		TokenSymbol: "RICO",
		Presale: Campaign{
			Period:            contract.DefaultPresalePeriod,
			Wallet:            "hive:rico-wallet",
			MinimumInvestment: int64(contract.DefaultMinimumInvestment),
			SoftCap:           1_000 * coin,
			HardCap:           1_600 * coin,
			Rate:              1,
			RefundDelay:       contract.DefaultPresaleRefundDelay,
			RefundPeriod:      contract.DefaultPresaleRefundPeriod,
			ReserveBps:        contract.DefaultReserveBps,
		},
		Primary: Campaign{
			Period:            contract.DefaultPrimaryPeriod,
			Wallet:            "hive:rico-wallet",
			MinimumInvestment: int64(contract.DefaultMinimumInvestment),
			SoftCap:           1_000 * coin,
			HardCap:           1_600 * coin,
			Rate:              1,
			RefundDelay:       contract.DefaultPrimaryRefundDelay,
			RefundPeriod:      contract.DefaultPrimaryRefundPeriod,
			ReserveBps:        contract.DefaultReserveBps,
		},
		EscrowMaxDelay:  contract.DefaultEscrowMaxDelay,
		EscrowDelayUnit: contract.DefaultEscrowDelayUnit,
	}
}

// Load reads path over the defaults and applies env overrides. A missing file
// is not an error, the defaults plus env are used.
// Example payload: config.Load("rico.yaml")
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if err := cfg.apply(&f); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg.Store = StoreKind(strings.ToLower(envOrDefault("RICO_STORE", string(cfg.Store))))
	cfg.StorePath = envOrDefault("RICO_STORE_PATH", cfg.StorePath)
	cfg.Debug = envBool("RICO_DEBUG", cfg.Debug)
	cfg.Deployer = sdk.Address(envOrDefault("RICO_DEPLOYER", cfg.Deployer.String()))
	cfg.Suite = envOrDefault("RICO_SUITE", cfg.Suite)

	return cfg, cfg.Validate()
}

func (c *Config) apply(f *configFile) error {
	if f.Chain.Store != "" {
		c.Store = StoreKind(strings.ToLower(f.Chain.Store))
	}
	if f.Chain.StorePath != "" {
		c.StorePath = f.Chain.StorePath
	}
	if f.Chain.Debug != nil {
		c.Debug = *f.Chain.Debug
	}
	if f.Chain.Deployer != "" {
		c.Deployer = sdk.Address(f.Chain.Deployer)
	}
	if f.Chain.Suite != "" {
		c.Suite = f.Chain.Suite
	}
	for addr, amount := range f.Chain.Genesis {
		c.Genesis[sdk.Address(addr)] = amount
	}
	if f.Token.Name != "" {
		c.TokenName = f.Token.Name
	}
	if f.Token.Symbol != "" {
		c.TokenSymbol = f.Token.Symbol
	}
	if err := c.Presale.apply(&f.Presale); err != nil {
		return fmt.Errorf("presale: %w", err)
	}
	if err := c.Primary.apply(&f.Primary); err != nil {
		return fmt.Errorf("primary: %w", err)
	}
	if f.Escrow.MaxDelay > 0 {
		c.EscrowMaxDelay = f.Escrow.MaxDelay
	}
	if f.Escrow.DelayUnit != "" {
		d, err := parseDuration(f.Escrow.DelayUnit)
		if err != nil {
			return fmt.Errorf("escrow delay_unit: %w", err)
		}
		c.EscrowDelayUnit = d
	}
	return nil
}

func (c *Campaign) apply(f *campaignFile) error {
	if f.Start != "" {
		t, err := time.Parse(time.RFC3339, f.Start)
		if err != nil {
			return fmt.Errorf("start: %w", err)
		}
		c.Start = t
	}
	durations := []struct {
		raw string
		dst *time.Duration
	}{
		{f.Period, &c.Period},
		{f.RefundDelay, &c.RefundDelay},
		{f.RefundPeriod, &c.RefundPeriod},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := parseDuration(d.raw)
		if err != nil {
			return err
		}
		*d.dst = v
	}
	if f.Wallet != "" {
		c.Wallet = sdk.Address(f.Wallet)
	}
	if f.MinimumInvestment > 0 {
		c.MinimumInvestment = f.MinimumInvestment
	}
	if f.SoftCap > 0 {
		c.SoftCap = f.SoftCap
	}
	if f.HardCap > 0 {
		c.HardCap = f.HardCap
	}
	if f.Rate > 0 {
		c.Rate = f.Rate
	}
	if f.ReserveBps > 0 {
		c.ReserveBps = f.ReserveBps
	}
	return nil
}

// Validate checks the chain section. Campaign parameters are checked by the
// contracts themselves at deployment.
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory:
	case StoreFile, StoreLevelDB:
		if c.StorePath == "" {
			return fmt.Errorf("%w: store %q needs a path", ErrInvalidConfig, c.Store)
		}
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidConfig, c.Store)
	}
	if c.Deployer.IsZero() {
		return fmt.Errorf("%w: deployer missing", ErrInvalidConfig)
	}
	for addr, amount := range c.Genesis {
		if addr.IsZero() || amount <= 0 {
			return fmt.Errorf("%w: genesis %q=%d", ErrInvalidConfig, addr, amount)
		}
	}
	return nil
}

// GenesisAccounts lists the funded accounts in a stable order.
func (c Config) GenesisAccounts() []sdk.Address {
	out := make([]sdk.Address, 0, len(c.Genesis))
	for addr := range c.Genesis {
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SuiteParams turns the config into deployment parameters.
func (c Config) SuiteParams(suffix string) contract.SuiteParams {
	return contract.SuiteParams{
		Suffix:  suffix,
		Token:   contract.TokenParams{Name: c.TokenName, Symbol: c.TokenSymbol},
		Presale: c.Presale.params(),
		Primary: c.Primary.params(),
		Escrow:  contract.EscrowParams{MaxDelay: c.EscrowMaxDelay, DelayUnit: c.EscrowDelayUnit},
	}
}

func (c Campaign) params() contract.CampaignParams {
	return contract.CampaignParams{
		StartTime:         c.Start,
		Period:            c.Period,
		Wallet:            c.Wallet,
		MinimumInvestment: contract.Amount(c.MinimumInvestment),
		SoftCap:           contract.Amount(c.SoftCap),
		HardCap:           contract.Amount(c.HardCap),
		Rate:              contract.Amount(c.Rate),
		RefundDelay:       c.RefundDelay,
		RefundPeriod:      c.RefundPeriod,
		ReserveBps:        c.ReserveBps,
	}
}

// parseDuration accepts Go durations plus a whole-day form like "100d".
func parseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if days, ok := strings.CutSuffix(raw, "d"); ok {
		n, err := strconv.ParseInt(days, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("duration %q: %w", raw, err)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("duration %q: %w", raw, err)
	}
	return d, nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
