package contract

import (
	"errors"

	"taskmesh/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// CommitRevealPoll: sealed two-phase voting with quadratic vote credits
////////////////////////////////////////////////////////////////////////////////

// openPoll creates the poll for one contested task. Commit and reveal windows
// start at the moment the project enters Voting.
func openPoll(c *ctx, pro *Project, taskIndex uint32, pooled Amount) *Poll {
	id := getCount(c.host, PollsCount) + 1
	setCount(c.host, PollsCount, id)
	p := &Poll{
		ID:             id,
		ProjectID:      pro.ID,
		TaskIndex:      taskIndex,
		CommitDeadline: c.now + c.cfg.CommitPeriod,
		RevealDeadline: c.now + c.cfg.CommitPeriod + c.cfg.RevealPeriod,
		Quorum:         c.cfg.PollQuorum,
	}
	savePoll(c.host, p)
	pro.OpenPolls++
	emitPollOpened(c, id, pro.ID, taskIndex, pooled)
	return p
}

// acquireVotes tops an identity's outstanding vote budget up to want votes.
// The marginal quadratic cost (m+a)^2 - m^2 is locked from the free balance
// of the chosen ledger.
func acquireVotes(c *ctx, caller sdk.Address, kind StakeKind, vc *VoteCredit, want Amount) error {
	if want <= vc.Outstanding {
		return nil
	}
	add := want - vc.Outstanding
	cost := (vc.Outstanding+add)*(vc.Outstanding+add) - vc.Outstanding*vc.Outstanding
	var err error
	if kind == StakeKindToken {
		err = lockFreeTokens(c, c.cfg.Registry, caller, cost)
	} else {
		err = lockRep(c, c.cfg.Registry, caller, cost)
	}
	if err != nil {
		if errors.Is(err, ErrInsufficientBalance) || errors.Is(err, ErrInsufficientReputation) {
			return failf(ErrInsufficientUnlockedBalance, "need %d units to lock %d votes", cost, add)
		}
		return err
	}
	vc.Outstanding += add
	vc.LockedUnits += cost
	return nil
}

// commitVote seals a ballot and locks its weight. Re-committing before the
// deadline overwrites the previous hash and weight for that voter; weight
// already committed to other unresolved polls stays unavailable.
func commitVote(c *ctx, args *PollCommitArgs) (string, error) {
	if args.Votes <= 0 {
		return "", failf(ErrInvalidInput, "vote weight must be positive")
	}
	kind, err := parseStakeKind(args.Kind)
	if err != nil {
		return "", err
	}
	p, err := loadPoll(c.host, args.PollID)
	if err != nil {
		return "", err
	}
	if p.Resolved {
		return "", failf(ErrInvalidState, "poll %d already resolved", p.ID)
	}
	if c.now > p.CommitDeadline {
		return "", failf(ErrDeadlinePassed, "commit window of poll %d closed", p.ID)
	}
	caller := c.sender()
	prior := Amount(0)
	cm := loadCommit(c.host, p.ID, caller)
	if cm != nil {
		if cm.Kind != kind {
			return "", failf(ErrInvalidInput, "poll %d already committed with %s weight", p.ID, cm.Kind)
		}
		prior = cm.Votes
	}
	vc := loadVoteCredit(c.host, kind, caller)
	needed := vc.Committed - prior + args.Votes
	if err := acquireVotes(c, caller, kind, vc, needed); err != nil {
		return "", err
	}
	vc.Committed = needed
	saveVoteCredit(c.host, kind, caller, vc)
	saveCommit(c.host, p.ID, caller, &Commit{Hash: args.Hash, Votes: args.Votes, Kind: kind})
	emitVoteCommitted(c, p.ID, caller, args.Votes)
	return "committed", nil
}

// revealVote opens a sealed ballot during the reveal window and tallies its
// weight. The committed votes become releasable immediately.
func revealVote(c *ctx, args *PollRevealArgs) (string, error) {
	p, err := loadPoll(c.host, args.PollID)
	if err != nil {
		return "", err
	}
	if p.Resolved {
		return "", failf(ErrInvalidState, "poll %d already resolved", p.ID)
	}
	if c.now <= p.CommitDeadline {
		return "", failf(ErrDeadlineNotReached, "poll %d still committing", p.ID)
	}
	if c.now > p.RevealDeadline {
		return "", failf(ErrDeadlinePassed, "reveal window of poll %d closed", p.ID)
	}
	caller := c.sender()
	cm := loadCommit(c.host, p.ID, caller)
	if cm == nil {
		return "", failf(ErrNotFound, "no commitment of %s in poll %d", caller, p.ID)
	}
	if cm.Revealed {
		return "", failf(ErrAlreadyDone, "ballot already revealed")
	}
	if VoteHash(args.Choice, args.Secret) != cm.Hash {
		return "", failf(ErrMismatch, "reveal does not match commitment")
	}
	if args.Choice {
		p.Yes += cm.Votes
	} else {
		p.No += cm.Votes
	}
	cm.Revealed = true
	cm.Released = true
	vc := loadVoteCredit(c.host, cm.Kind, caller)
	vc.Committed -= cm.Votes
	saveVoteCredit(c.host, cm.Kind, caller, vc)
	saveCommit(c.host, p.ID, caller, cm)
	savePoll(c.host, p)
	emitVoteRevealed(c, p.ID, caller, args.Choice, cm.Votes)
	return "revealed", nil
}

// unlockVotes refunds k outstanding votes that are not committed to any
// unresolved poll. The refund follows the quadratic schedule exactly:
// m^2 - (m-k)^2 units for k of m outstanding votes.
func unlockVotes(c *ctx, args *PollUnlockArgs) (string, error) {
	if args.Votes <= 0 {
		return "", failf(ErrInvalidInput, "unlock amount must be positive")
	}
	kind, err := parseStakeKind(args.Kind)
	if err != nil {
		return "", err
	}
	caller := c.sender()
	vc := loadVoteCredit(c.host, kind, caller)
	if args.Votes > vc.Outstanding-vc.Committed {
		return "", failf(ErrInsufficientUnlockedBalance,
			"unlock %d votes with %d outstanding and %d committed", args.Votes, vc.Outstanding, vc.Committed)
	}
	rest := vc.Outstanding - args.Votes
	refund := vc.Outstanding*vc.Outstanding - rest*rest
	vc.Outstanding = rest
	vc.LockedUnits -= refund
	if kind == StakeKindToken {
		err = releaseTokens(c, c.cfg.Registry, caller, refund)
	} else {
		err = releaseRep(c, c.cfg.Registry, caller, refund)
	}
	if err != nil {
		return "", err
	}
	saveVoteCredit(c.host, kind, caller, vc)
	emitVoteUnlocked(c, caller, args.Votes, refund, kind)
	return UInt64ToString(uint64(refund)), nil
}

// resolvePoll tallies a poll whose reveal window closed. The yes side must
// clear the quorum fraction of all revealed weight.
func resolvePoll(c *ctx, p *Poll) {
	p.Resolved = true
	p.Passed = 100*p.Yes > p.Quorum*(p.Yes+p.No)
	savePoll(c.host, p)
	emitPollResolved(c, p.ID, p.Passed, p.Yes, p.No)
}

// refundVoter releases the committed weight of an unrevealed ballot once its
// poll resolved. Revealed ballots were released at reveal time.
func refundVoter(c *ctx, args *PollRefArgs) (string, error) {
	p, err := loadPoll(c.host, args.PollID)
	if err != nil {
		return "", err
	}
	if !p.Resolved {
		return "", failf(ErrInvalidState, "poll %d not resolved yet", p.ID)
	}
	caller := c.sender()
	cm := loadCommit(c.host, p.ID, caller)
	if cm == nil {
		return "", failf(ErrNotFound, "no commitment of %s in poll %d", caller, p.ID)
	}
	if cm.Released {
		return "", failf(ErrAlreadyDone, "ballot weight already released")
	}
	cm.Released = true
	vc := loadVoteCredit(c.host, cm.Kind, caller)
	vc.Committed -= cm.Votes
	saveVoteCredit(c.host, cm.Kind, caller, vc)
	saveCommit(c.host, p.ID, caller, cm)
	emitRefund(c, "fv", p.ID, caller, cm.Votes)
	return UInt64ToString(uint64(cm.Votes)), nil
}
