package contract

import (
	"fmt"
	"strconv"

	"rico_contracts/sdk"
)

// emitContributedEvent writes a tiny "cc" log per accepted contribution, with
// the running raise so indexers don't have to sum it up themselves.
func emitContributedEvent(h sdk.Host, by sdk.Address, amount, tokens, raised Amount) {
	h.Log(fmt.Sprintf(
		"cc|by:%s|am:%d|tk:%d|raised:%d",
		by,
		amount,
		tokens,
		raised,
	))
}

// emitCapReachedEvent fires once, when the contribution that fills the hard cap lands.
func emitCapReachedEvent(h sdk.Host, raised, reserved Amount) {
	h.Log(fmt.Sprintf(
		"ch|raised:%d|reserved:%d",
		raised,
		reserved,
	))
}

// emitFinalizedEvent tells explorers where the held funds went.
func emitFinalizedEvent(h sdk.Host, stage Stage, wallet sdk.Address, forwarded, credit Amount) {
	h.Log(fmt.Sprintf(
		"cf|st:%s|to:%s|am:%d|credit:%d",
		stage,
		wallet,
		forwarded,
		credit,
	))
}

func emitRefundedEvent(h sdk.Host, to sdk.Address, amount, raised Amount) {
	h.Log(fmt.Sprintf(
		"cr|to:%s|am:%d|raised:%d",
		to,
		amount,
		raised,
	))
}

// emitPartialRefundEvent lists both sides of the cut so the reserve can be replayed from logs.
func emitPartialRefundEvent(h sdk.Host, to sdk.Address, refunded, kept Amount) {
	h.Log(fmt.Sprintf(
		"cp|to:%s|am:%d|kept:%d",
		to,
		refunded,
		kept,
	))
}

func emitReserveUpdatedEvent(h sdk.Host, by sdk.Address, old, updated Amount) {
	h.Log(fmt.Sprintf(
		"cu|by:%s|old:%d|new:%d",
		by,
		old,
		updated,
	))
}

func emitDividendReceivedEvent(h sdk.Host, by sdk.Address, amount, pool Amount) {
	h.Log(fmt.Sprintf(
		"dr|by:%s|am:%d|pool:%d",
		by,
		amount,
		pool,
	))
}

func emitDividendClaimedEvent(h sdk.Host, to sdk.Address, amount Amount) {
	h.Log(fmt.Sprintf(
		"dc|to:%s|am:%d",
		to,
		amount,
	))
}

// emitDepositEvent keeps the unlock time in the line so a watcher can schedule the withdraw.
func emitDepositEvent(h sdk.Host, by sdk.Address, amount Amount, unlockAt int64) {
	h.Log(fmt.Sprintf(
		"ed|by:%s|am:%d|unlock:%s",
		by,
		amount,
		strconv.FormatInt(unlockAt, 10),
	))
}

func emitWithdrawEvent(h sdk.Host, to sdk.Address, amount Amount) {
	h.Log(fmt.Sprintf(
		"ew|to:%s|am:%d",
		to,
		amount,
	))
}

func emitTokenIssuedEvent(h sdk.Host, by, to sdk.Address, amount Amount) {
	h.Log(fmt.Sprintf(
		"tm|by:%s|to:%s|am:%d",
		by,
		to,
		amount,
	))
}

func emitTokenTransferEvent(h sdk.Host, from, to sdk.Address, amount Amount) {
	h.Log(fmt.Sprintf(
		"tt|from:%s|to:%s|am:%d",
		from,
		to,
		amount,
	))
}
