package contract

import "rico_contracts/sdk"

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

// Each contract lives in its own namespace on the chain, so prefixes only need
// to be unique per contract kind.
const (
	// kConfig stores the encoded construction parameters, written once at deploy.
	kConfig byte = 0x01
	// kCampaignTotals holds raised/reserved/settled counters and the finalize flag.
	kCampaignTotals byte = 0x02
	// kContribution is the refundable amount per contributor.
	kContribution byte = 0x03
	// kSettled marks contributors that already took their partial refund.
	kSettled byte = 0x04
	// kDividendPool holds pool and total claimed.
	kDividendPool byte = 0x10
	// kDividendClaimed is the amount already paid per participant.
	kDividendClaimed byte = 0x11
	// kDeposit stores one encoded escrow deposit per depositor.
	kDeposit byte = 0x20
	// kTokenBalance is a holder's token balance.
	kTokenBalance byte = 0x30
	// kTokenSupply is the outstanding token supply.
	kTokenSupply byte = 0x31
)

// singleKey is for records a contract keeps exactly one of.
func singleKey(prefix byte) string {
	return string([]byte{prefix})
}

// addrKey mixes prefix plus address bytes to avoid nested maps in host storage.
func addrKey(prefix byte, addr sdk.Address) string {
	buf := make([]byte, 0, 1+len(addr))
	buf = append(buf, prefix)
	buf = append(buf, addr...)
	return string(buf)
}

func configKey() string { return singleKey(kConfig) }
func campaignTotalsKey() string { return singleKey(kCampaignTotals) }
func contributionKey(addr sdk.Address) string { return addrKey(kContribution, addr) }
func settledKey(addr sdk.Address) string { return addrKey(kSettled, addr) }
func dividendPoolKey() string { return singleKey(kDividendPool) }
func dividendClaimedKey(addr sdk.Address) string { return addrKey(kDividendClaimed, addr) }
func depositKey(addr sdk.Address) string { return addrKey(kDeposit, addr) }
func tokenBalanceKey(addr sdk.Address) string { return addrKey(kTokenBalance, addr) }
func tokenSupplyKey() string { return singleKey(kTokenSupply) }
