package contract

import (
	"fmt"
	"time"

	"rico_contracts/sdk"
)

// CampaignParams are the construction parameters shared by both stages. A
// zero StartTime means "opens at the deployment block".
type CampaignParams struct {
	StartTime         time.Time
	Period            time.Duration
	Wallet            sdk.Address
	MinimumInvestment Amount
	SoftCap           Amount
	HardCap           Amount
	// Rate is the number of tokens issued per contributed base unit.
	Rate         Amount
	RefundDelay  time.Duration
	RefundPeriod time.Duration
	// ReserveBps is the share of an over-subscribed raise that stays in the
	// campaign when contributors take their partial refund.
	ReserveBps int64
}

// Campaign is the phased fund-collection state machine behind both the
// presale and the primary sale.
type Campaign struct {
	chain   *sdk.Chain
	addr    sdk.Address
	issuer  Issuer
	presale StageTotals
}

// validate checks everything that can be checked without touching state.
func (p CampaignParams) validate(stage Stage, issuer Issuer, presale StageTotals) error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfiguration}, args...)...)
	}
	switch {
	case issuer == nil || issuer.Address().IsZero():
		return bad("token reference missing")
	case p.Wallet.IsZero():
		return bad("wallet missing")
	case durationSeconds(p.Period) <= 0:
		return bad("period must be positive, got %s", p.Period)
	case p.MinimumInvestment <= 0:
		return bad("minimum investment must be positive, got %d", p.MinimumInvestment)
	case p.SoftCap <= 0:
		return bad("soft cap must be positive, got %d", p.SoftCap)
	case p.HardCap < p.SoftCap:
		return bad("hard cap %d below soft cap %d", p.HardCap, p.SoftCap)
	case p.Rate <= 0:
		return bad("rate must be positive, got %d", p.Rate)
	case p.RefundDelay < 0:
		return bad("refund delay must not be negative, got %s", p.RefundDelay)
	case durationSeconds(p.RefundPeriod) <= 0:
		return bad("refund period must be positive, got %s", p.RefundPeriod)
	case p.ReserveBps <= 0 || p.ReserveBps > BpsDenominator:
		return bad("reserve bps must be in 1..%d, got %d", BpsDenominator, p.ReserveBps)
	case stage == StagePrimary && (presale == nil || presale.Address().IsZero()):
		return bad("primary sale needs a presale reference")
	}
	return nil
}

func deployCampaign(chain *sdk.Chain, name string, deployer sdk.Address, stage Stage, p CampaignParams, issuer Issuer, presale StageTotals) (*Campaign, error) {
	if err := p.validate(stage, issuer, presale); err != nil {
		return nil, err
	}
	cfg := &CampaignConfig{
		Stage:             stage,
		Period:            durationSeconds(p.Period),
		Wallet:            p.Wallet,
		Token:             issuer.Address(),
		MinimumInvestment: p.MinimumInvestment,
		SoftCap:           p.SoftCap,
		HardCap:           p.HardCap,
		Rate:              p.Rate,
		RefundDelay:       durationSeconds(p.RefundDelay),
		RefundPeriod:      durationSeconds(p.RefundPeriod),
		ReserveBps:        Amount(p.ReserveBps),
	}
	if presale != nil {
		cfg.Presale = presale.Address()
	}
	addr, err := chain.Deploy(name, deployer, func(h sdk.Host) error {
		if p.StartTime.IsZero() {
			cfg.StartTime = nowUnix(h)
		} else {
			cfg.StartTime = p.StartTime.Unix()
		}
		if err := h.Read(cfg.Token, func(sdk.Reader) error { return nil }); err != nil {
			return fmt.Errorf("%w: token: %w", ErrInvalidConfiguration, err)
		}
		if stage == StagePrimary {
			if err := h.Read(cfg.Presale, checkIsPresale); err != nil {
				return fmt.Errorf("%w: presale: %w", ErrInvalidConfiguration, err)
			}
		}
		setCampaignConfig(h, cfg)
		setCampaignTotals(h, &CampaignTotals{})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Campaign{chain: chain, addr: addr, issuer: issuer, presale: presale}, nil
}

// checkIsPresale makes sure the primary sale isn't linked to some random contract.
func checkIsPresale(r sdk.Reader) error {
	cfg, err := getCampaignConfig(r)
	if err != nil {
		return err
	}
	if cfg.Stage != StagePresale {
		return fmt.Errorf("stage is %s", cfg.Stage)
	}
	return nil
}

func (c *Campaign) Address() sdk.Address { return c.addr }

// -----------------------------------------------------------------------------
// State machine
// -----------------------------------------------------------------------------

// hasEnded is true once the window elapsed or the hard cap got hit. CapReached
// keeps it true after partial refunds lowered WeiRaised again.
func hasEnded(cfg *CampaignConfig, t *CampaignTotals, now int64) bool {
	return now >= cfg.EndTime() || t.CapReached || t.WeiRaised >= cfg.HardCap
}

// phaseAt derives the lifecycle position from config, totals and block time.
func phaseAt(cfg *CampaignConfig, t *CampaignTotals, now int64) Phase {
	switch {
	case t.Finalized:
		return PhaseFinalized
	case now < cfg.StartTime:
		return PhasePending
	case !hasEnded(cfg, t, now):
		return PhaseOpen
	case now < cfg.RefundOpensAt():
		return PhaseClosed
	case now < cfg.RefundClosesAt():
		return PhaseRefundable
	default:
		return PhaseLocked
	}
}

func loadCampaign(r sdk.Reader) (*CampaignConfig, *CampaignTotals, error) {
	cfg, err := getCampaignConfig(r)
	if err != nil {
		return nil, nil, err
	}
	t, err := getCampaignTotals(r)
	if err != nil {
		return nil, nil, err
	}
	return cfg, t, nil
}

// requireRefundable is the shared gate of refund, refundPart and updateReservedWei.
func requireRefundable(cfg *CampaignConfig, t *CampaignTotals, now int64) error {
	if t.Finalized {
		return ErrAlreadyFinalized
	}
	if phase := phaseAt(cfg, t, now); phase != PhaseRefundable {
		return fmt.Errorf("%w: campaign is %s, refunds run from %d to %d", ErrWindowClosed, phase, cfg.RefundOpensAt(), cfg.RefundClosesAt())
	}
	return nil
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// Contribute sends amount from sender into the campaign and issues tokens
// at the configured rate.
// Example payload: presale.Contribute("hive:alice", 600_000_000_000)
func (c *Campaign) Contribute(sender sdk.Address, amount Amount) error {
	_, err := c.chain.Exec(sdk.Call{Contract: c.addr, Sender: sender, Value: int64(amount)}, c.contribute)
	return err
}

func (c *Campaign) contribute(h sdk.Host) error {
	env := h.Env()
	if env.Sender.IsZero() {
		return sdk.ErrInvalidSender
	}
	cfg, t, err := loadCampaign(h)
	if err != nil {
		return err
	}
	now := nowUnix(h)
	if now < cfg.StartTime {
		return fmt.Errorf("%w: opens at %d", ErrWindowClosed, cfg.StartTime)
	}
	if now >= cfg.EndTime() {
		return fmt.Errorf("%w: closed at %d", ErrWindowClosed, cfg.EndTime())
	}
	if t.CapReached {
		return fmt.Errorf("%w: hard cap %d already reached", ErrWindowClosed, cfg.HardCap)
	}
	amount := Amount(env.Value)
	if amount < cfg.MinimumInvestment {
		return fmt.Errorf("%w: %d below minimum investment %d", ErrCapViolation, amount, cfg.MinimumInvestment)
	}
	if amount > cfg.HardCap-t.WeiRaised {
		return fmt.Errorf("%w: %d would push raise %d past hard cap %d", ErrCapViolation, amount, t.WeiRaised, cfg.HardCap)
	}

	prev, err := getContribution(h, env.Sender)
	if err != nil {
		return err
	}
	if prev == 0 {
		t.Contributors++
	}
	setContribution(h, env.Sender, prev+amount)
	t.WeiRaised += amount
	if t.WeiRaised == cfg.HardCap {
		t.CapReached = true
		if t.ReservedWei, err = mulDiv(cfg.HardCap, cfg.ReserveBps, BpsDenominator); err != nil {
			return err
		}
	}
	setCampaignTotals(h, t)

	tokens, err := mulDiv(amount, cfg.Rate, 1)
	if err != nil {
		return err
	}
	if err := h.Invoke(cfg.Token, func(n sdk.Host) error {
		return c.issuer.Issue(n, env.Sender, tokens)
	}); err != nil {
		return fmt.Errorf("issue tokens: %w", err)
	}

	emitContributedEvent(h, env.Sender, amount, tokens, t.WeiRaised)
	if t.CapReached {
		emitCapReachedEvent(h, t.WeiRaised, t.ReservedWei)
	}
	return nil
}

// FinishStage closes a successful campaign and forwards everything it holds
// to the wallet. It runs exactly once.
func (c *Campaign) FinishStage(caller sdk.Address) error {
	_, err := c.chain.Exec(sdk.Call{Contract: c.addr, Sender: caller}, c.finishStage)
	return err
}

func (c *Campaign) finishStage(h sdk.Host) error {
	cfg, t, err := loadCampaign(h)
	if err != nil {
		return err
	}
	if t.Finalized {
		return ErrAlreadyFinalized
	}
	if !t.CapReached && t.WeiRaised < cfg.SoftCap {
		return fmt.Errorf("%w: raised %d below soft cap %d", ErrPreconditionUnmet, t.WeiRaised, cfg.SoftCap)
	}
	now := nowUnix(h)
	if !hasEnded(cfg, t, now) {
		return fmt.Errorf("%w: still open until %d", ErrWindowClosed, cfg.EndTime())
	}
	if cfg.Stage == StagePrimary {
		if t.PresaleCredit, err = c.presaleRaised(h, cfg); err != nil {
			return err
		}
	}
	t.Finalized = true
	setCampaignTotals(h, t)

	held := Amount(h.Balance())
	if held > 0 {
		if err := h.Transfer(cfg.Wallet, int64(held)); err != nil {
			return err
		}
	}
	emitFinalizedEvent(h, cfg.Stage, cfg.Wallet, held, t.PresaleCredit)
	return nil
}

// presaleRaised reads the presale total once, at finalize time.
func (c *Campaign) presaleRaised(h sdk.Host, cfg *CampaignConfig) (Amount, error) {
	var raised Amount
	err := h.Read(cfg.Presale, func(r sdk.Reader) error {
		var err error
		if c.presale != nil {
			raised, err = c.presale.RaisedAt(r)
			return err
		}
		t, err := getCampaignTotals(r)
		if err != nil {
			return err
		}
		raised = t.WeiRaised
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("read presale: %w", err)
	}
	return raised, nil
}

// Refund pays a contributor back in full when the soft cap was missed.
func (c *Campaign) Refund(sender sdk.Address) error {
	_, err := c.chain.Exec(sdk.Call{Contract: c.addr, Sender: sender}, c.refund)
	return err
}

func (c *Campaign) refund(h sdk.Host) error {
	sender := h.Env().Sender
	if sender.IsZero() {
		return sdk.ErrInvalidSender
	}
	cfg, t, err := loadCampaign(h)
	if err != nil {
		return err
	}
	if err := requireRefundable(cfg, t, nowUnix(h)); err != nil {
		return err
	}
	if t.CapReached || t.WeiRaised >= cfg.SoftCap {
		return fmt.Errorf("%w: soft cap reached, no full refunds", ErrPreconditionUnmet)
	}
	paid, err := getContribution(h, sender)
	if err != nil {
		return err
	}
	if paid <= 0 {
		return fmt.Errorf("%w: nothing to refund for %s", ErrPreconditionUnmet, sender)
	}

	setContribution(h, sender, 0)
	t.WeiRaised -= paid
	setCampaignTotals(h, t)
	if err := h.Transfer(sender, int64(paid)); err != nil {
		return err
	}
	emitRefundedEvent(h, sender, paid, t.WeiRaised)
	return nil
}

// RefundPart returns the part of sender's contribution above their pro-rata
// share of the reserve. Each contributor can do this once.
func (c *Campaign) RefundPart(sender sdk.Address) error {
	_, err := c.chain.Exec(sdk.Call{Contract: c.addr, Sender: sender}, c.refundPart)
	return err
}

func (c *Campaign) refundPart(h sdk.Host) error {
	sender := h.Env().Sender
	if sender.IsZero() {
		return sdk.ErrInvalidSender
	}
	cfg, t, err := loadCampaign(h)
	if err != nil {
		return err
	}
	if err := requireRefundable(cfg, t, nowUnix(h)); err != nil {
		return err
	}
	if !t.CapReached {
		return fmt.Errorf("%w: hard cap not reached", ErrPreconditionUnmet)
	}
	if isSettled(h, sender) {
		return fmt.Errorf("%w: %s already took a partial refund", ErrPreconditionUnmet, sender)
	}
	paid, err := getContribution(h, sender)
	if err != nil {
		return err
	}
	if paid <= 0 {
		return fmt.Errorf("%w: nothing to refund for %s", ErrPreconditionUnmet, sender)
	}

	// unsettled contributions share what is left of the reserve
	outstanding := t.WeiRaised - t.SettledWei
	reserve := max(t.ReservedWei-t.SettledWei, 0)
	kept, err := mulDiv(reserve, paid, outstanding)
	if err != nil {
		return err
	}
	back := paid - kept
	if back <= 0 {
		return fmt.Errorf("%w: contribution is fully reserved", ErrPreconditionUnmet)
	}

	setContribution(h, sender, kept)
	markSettled(h, sender)
	t.SettledWei += kept
	t.WeiRaised -= back
	setCampaignTotals(h, t)
	if err := h.Transfer(sender, int64(back)); err != nil {
		return err
	}
	emitPartialRefundEvent(h, sender, back, kept)
	return nil
}

// UpdateReservedWei re-derives the reserve from current participation.
func (c *Campaign) UpdateReservedWei(sender sdk.Address) error {
	_, err := c.chain.Exec(sdk.Call{Contract: c.addr, Sender: sender}, c.updateReservedWei)
	return err
}

func (c *Campaign) updateReservedWei(h sdk.Host) error {
	sender := h.Env().Sender
	if sender.IsZero() {
		return sdk.ErrInvalidSender
	}
	cfg, t, err := loadCampaign(h)
	if err != nil {
		return err
	}
	if err := requireRefundable(cfg, t, nowUnix(h)); err != nil {
		return err
	}
	if !t.CapReached {
		return fmt.Errorf("%w: hard cap not reached", ErrPreconditionUnmet)
	}
	share, err := mulDiv(t.WeiRaised-t.SettledWei, cfg.ReserveBps, BpsDenominator)
	if err != nil {
		return err
	}
	old := t.ReservedWei
	t.ReservedWei = t.SettledWei + share
	setCampaignTotals(h, t)
	emitReserveUpdatedEvent(h, sender, old, t.ReservedWei)
	return nil
}

// -----------------------------------------------------------------------------
// Queries
// -----------------------------------------------------------------------------

func (c *Campaign) view(fn func(v sdk.View, cfg *CampaignConfig, t *CampaignTotals) error) error {
	return c.chain.View(c.addr, func(v sdk.View) error {
		cfg, t, err := loadCampaign(v)
		if err != nil {
			return err
		}
		return fn(v, cfg, t)
	})
}

// HasEnded never mutates anything.
func (c *Campaign) HasEnded() (bool, error) {
	var ended bool
	err := c.view(func(v sdk.View, cfg *CampaignConfig, t *CampaignTotals) error {
		ended = hasEnded(cfg, t, nowUnix(v))
		return nil
	})
	return ended, err
}

func (c *Campaign) Phase() (Phase, error) {
	var phase Phase
	err := c.view(func(v sdk.View, cfg *CampaignConfig, t *CampaignTotals) error {
		phase = phaseAt(cfg, t, nowUnix(v))
		return nil
	})
	return phase, err
}

func (c *Campaign) WeiRaised() (Amount, error) {
	var raised Amount
	err := c.view(func(_ sdk.View, _ *CampaignConfig, t *CampaignTotals) error {
		raised = t.WeiRaised
		return nil
	})
	return raised, err
}

// ContributionOf is what addr could still get back.
func (c *Campaign) ContributionOf(addr sdk.Address) (Amount, error) {
	var paid Amount
	err := c.chain.View(c.addr, func(v sdk.View) error {
		var err error
		paid, err = getContribution(v, addr)
		return err
	})
	return paid, err
}

// RaisedAt implements StageTotals so a later stage can credit this raise.
func (c *Campaign) RaisedAt(r sdk.Reader) (Amount, error) {
	t, err := getCampaignTotals(r)
	if err != nil {
		return 0, err
	}
	return t.WeiRaised, nil
}

// Info renders the campaign summary view.
func (c *Campaign) Info() (CampaignInfo, error) {
	var info CampaignInfo
	err := c.view(func(v sdk.View, cfg *CampaignConfig, t *CampaignTotals) error {
		now := nowUnix(v)
		info = CampaignInfo{
			Address:           c.addr.String(),
			Stage:             cfg.Stage.String(),
			Phase:             phaseAt(cfg, t, now).String(),
			StartTime:         cfg.StartTime,
			EndTime:           cfg.EndTime(),
			RefundOpensAt:     cfg.RefundOpensAt(),
			RefundClosesAt:    cfg.RefundClosesAt(),
			Wallet:            cfg.Wallet.String(),
			Token:             cfg.Token.String(),
			Presale:           cfg.Presale.String(),
			MinimumInvestment: int64(cfg.MinimumInvestment),
			SoftCap:           int64(cfg.SoftCap),
			HardCap:           int64(cfg.HardCap),
			Rate:              int64(cfg.Rate),
			WeiRaised:         int64(t.WeiRaised),
			ReservedWei:       int64(t.ReservedWei),
			PresaleCredit:     int64(t.PresaleCredit),
			Contributors:      int64(t.Contributors),
			Held:              v.Balance(),
			HasEnded:          hasEnded(cfg, t, now),
			CapReached:        t.CapReached,
			Finalized:         t.Finalized,
		}
		return nil
	})
	return info, err
}
