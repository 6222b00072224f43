package contract

import (
	"fmt"

	"taskmesh/sdk"
)

// Every mutation leaves one terse tag|k:v line in the host log; replaying the
// log alone is enough to audit balances.

// emitMint logs curve purchases with the wei actually consumed.
func emitMint(c *ctx, by sdk.Address, amount, cost Amount) {
	c.host.Log(fmt.Sprintf("cm|by:%s|n:%d|wei:%d", by, amount, cost))
}

// emitSell mirrors the mint ping for redemptions.
func emitSell(c *ctx, by sdk.Address, amount, refund Amount) {
	c.host.Log(fmt.Sprintf("cs|by:%s|n:%d|wei:%d", by, amount, refund))
}

// emitBurn marks supply leaving for good so auditors can track totals.
func emitBurn(c *ctx, from sdk.Address, amount Amount) {
	c.host.Log(fmt.Sprintf("cb|from:%s|n:%d", from, amount))
}

// emitRegister notes the one-time reputation grant.
func emitRegister(c *ctx, by sdk.Address, grant Amount) {
	c.host.Log(fmt.Sprintf("rr|by:%s|n:%d", by, grant))
}

// emitProjectProposed gives explorers a neat ping without scanning full storage diffs.
func emitProjectProposed(c *ctx, id uint64, by sdk.Address, cost, stake Amount, kind StakeKind) {
	c.host.Log(fmt.Sprintf("pp|id:%d|by:%s|cost:%d|stake:%d|k:%s", id, by, cost, stake, kind))
}

// emitStaked logs both the tokens locked and the wei that moved into the project.
func emitStaked(c *ctx, id uint64, by sdk.Address, amount, weiMoved Amount, kind StakeKind) {
	c.host.Log(fmt.Sprintf("st|id:%d|by:%s|n:%d|wei:%d|k:%s", id, by, amount, weiMoved, kind))
}

// emitUnstaked mirrors the stake line for early exits.
func emitUnstaked(c *ctx, id uint64, by sdk.Address, amount, weiBack Amount, kind StakeKind) {
	c.host.Log(fmt.Sprintf("us|id:%d|by:%s|n:%d|wei:%d|k:%s", id, by, amount, weiBack, kind))
}

// emitHashSubmitted includes the running conflict count so disputes show up in the log.
func emitHashSubmitted(c *ctx, id uint64, by sdk.Address, hash string, conflicts uint32) {
	c.host.Log(fmt.Sprintf("sh|id:%d|by:%s|h:%s|cf:%d", id, by, hash, conflicts))
}

// emitStateChanged is the swiss army knife log entry for any lifecycle flip.
func emitStateChanged(c *ctx, id uint64, from, to ProjectState) {
	c.host.Log(fmt.Sprintf("ps|id:%d|from:%s|to:%s", id, from, to))
}

// emitRevealed confirms the task list matched its commitment.
func emitRevealed(c *ctx, id uint64, tasks int) {
	c.host.Log(fmt.Sprintf("rv|id:%d|n:%d", id, tasks))
}

// emitTaskClaimed records worker assignment plus the reputation it cost.
func emitTaskClaimed(c *ctx, id uint64, idx uint32, by sdk.Address, repPrice Amount) {
	c.host.Log(fmt.Sprintf("tc|id:%d|t:%d|by:%s|rep:%d", id, idx, by, repPrice))
}

// emitValidated logs attestation direction via one bool char.
func emitValidated(c *ctx, id uint64, idx uint32, by sdk.Address, affirm bool, fee Amount) {
	a := "0"
	if affirm {
		a = "1"
	}
	c.host.Log(fmt.Sprintf("tv|id:%d|t:%d|by:%s|a:%s|fee:%d", id, idx, by, a, fee))
}

// emitPollOpened links a contested task to its poll plus the pooled fee sum.
func emitPollOpened(c *ctx, pollID, projectID uint64, idx uint32, pooled Amount) {
	c.host.Log(fmt.Sprintf("po|id:%d|pId:%d|t:%d|pool:%d", pollID, projectID, idx, pooled))
}

// emitVoteCommitted logs the weight so quorum math can be replayed from logs only.
func emitVoteCommitted(c *ctx, pollID uint64, by sdk.Address, votes Amount) {
	c.host.Log(fmt.Sprintf("vc|id:%d|by:%s|n:%d", pollID, by, votes))
}

// emitVoteRevealed includes the plaintext choice once the seal is off.
func emitVoteRevealed(c *ctx, pollID uint64, by sdk.Address, choice bool, votes Amount) {
	ch := "0"
	if choice {
		ch = "1"
	}
	c.host.Log(fmt.Sprintf("vr|id:%d|by:%s|c:%s|n:%d", pollID, by, ch, votes))
}

// emitVoteUnlocked records the quadratic refund actually paid out.
func emitVoteUnlocked(c *ctx, by sdk.Address, votes, refund Amount, kind StakeKind) {
	c.host.Log(fmt.Sprintf("vu|by:%s|n:%d|u:%d|k:%s", by, votes, refund, kind))
}

// emitPollResolved leaves the final tallies next to the verdict.
func emitPollResolved(c *ctx, pollID uint64, passed bool, yes, no Amount) {
	p := "0"
	if passed {
		p = "1"
	}
	c.host.Log(fmt.Sprintf("pr|id:%d|p:%s|y:%d|n:%d", pollID, p, yes, no))
}

// emitRefund traces every settlement payout in a single terse line.
func emitRefund(c *ctx, tag string, id uint64, to sdk.Address, amount Amount) {
	c.host.Log(fmt.Sprintf("%s|id:%d|to:%s|n:%d", tag, id, to, amount))
}
