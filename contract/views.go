package contract

import "time"

//go:generate tinyjson -all views.go

// CampaignInfo is the read-only summary of a presale or primary sale.
// Amounts are base units, times are unix seconds.
//
//tinyjson:json
type CampaignInfo struct {
	Address           string `json:"address"`
	Stage             string `json:"stage"`
	Phase             string `json:"phase"`
	StartTime         int64  `json:"start_time"`
	EndTime           int64  `json:"end_time"`
	RefundOpensAt     int64  `json:"refund_opens_at"`
	RefundClosesAt    int64  `json:"refund_closes_at"`
	Wallet            string `json:"wallet"`
	Token             string `json:"token"`
	Presale           string `json:"presale,omitempty"`
	MinimumInvestment int64  `json:"minimum_investment"`
	SoftCap           int64  `json:"soft_cap"`
	HardCap           int64  `json:"hard_cap"`
	Rate              int64  `json:"rate"`
	WeiRaised         int64  `json:"wei_raised"`
	ReservedWei       int64  `json:"reserved_wei"`
	PresaleCredit     int64  `json:"presale_credit"`
	Contributors      int64  `json:"contributors"`
	Held              int64  `json:"held"`
	HasEnded          bool   `json:"has_ended"`
	CapReached        bool   `json:"cap_reached"`
	Finalized         bool   `json:"finalized"`
}

//tinyjson:json
type DividendInfo struct {
	Address      string `json:"address"`
	Oracle       string `json:"oracle"`
	Pool         int64  `json:"pool"`
	TotalClaimed int64  `json:"total_claimed"`
	Held         int64  `json:"held"`
}

// DepositInfo is one outstanding escrow deposit.
//
//tinyjson:json
type DepositInfo struct {
	Depositor   string `json:"depositor"`
	Amount      int64  `json:"amount"`
	DepositedAt int64  `json:"deposited_at"`
	UnlockAt    int64  `json:"unlock_at"`
	Unlocked    bool   `json:"unlocked"`
}

// UnlockTime is UnlockAt as a UTC time.
func (d DepositInfo) UnlockTime() time.Time {
	return unixToTime(d.UnlockAt)
}

//tinyjson:json
type TokenInfo struct {
	Address     string `json:"address"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	TotalSupply int64  `json:"total_supply"`
}

// SuiteInfo bundles the views of a whole deployment.
//
//tinyjson:json
type SuiteInfo struct {
	Token     TokenInfo    `json:"token"`
	Presale   CampaignInfo `json:"presale"`
	Primary   CampaignInfo `json:"primary"`
	Dividends DividendInfo `json:"dividends"`
	Escrow    string       `json:"escrow"`
}
