package contract

import (
	tinyjson "github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"

	"taskmesh/sdk"
)

// Apply executes one operation against the host. All effects are buffered on
// an overlay and reach the host only when the operation succeeds as a whole;
// a rejected operation mutates nothing. Outbound transfers dispatch strictly
// after the state writes commit.
func Apply(host sdk.Host, op string, payload string) (string, error) {
	ov := sdk.NewOverlay(host)
	c, err := newCtx(ov)
	if err != nil {
		return "", err
	}
	res, err := dispatch(c, op, payload)
	if err != nil {
		return "", err
	}
	ov.Commit()
	return res, nil
}

// dispatch decodes the payload for the named operation and runs it.
func dispatch(c *ctx, op string, payload string) (string, error) {
	switch op {
	case OpCurrencyMint:
		var args MintArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return mintTokens(c, &args)
	case OpCurrencySell:
		var args SellArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return sellTokens(c, &args)
	case OpReputationRegister:
		return registerReputation(c)
	case OpProjectPropose:
		var args ProposeArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return proposeProject(c, &args)
	case OpProjectStake:
		var args StakeArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return stakeProject(c, &args)
	case OpProjectUnstake:
		var args StakeArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return unstakeProject(c, &args)
	case OpProjectSubmitHash:
		var args SubmitHashArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return submitTaskHash(c, &args)
	case OpProjectReveal:
		var args RevealArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return revealTaskList(c, &args)
	case OpProjectAdvance:
		var args ProjectRefArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return advanceState(c, &args)
	case OpTaskClaim:
		var args ClaimArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return claimTask(c, &args)
	case OpTaskValidate:
		var args ValidateArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return validateTask(c, &args)
	case OpPollCommit:
		var args PollCommitArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return commitVote(c, &args)
	case OpPollReveal:
		var args PollRevealArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return revealVote(c, &args)
	case OpPollUnlock:
		var args PollUnlockArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return unlockVotes(c, &args)
	case OpRefundProposer:
		var args ProjectRefArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return refundProposer(c, &args)
	case OpRefundStaker:
		var args ProjectRefArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return refundStaker(c, &args)
	case OpRewardTask:
		var args TaskRefArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return rewardTask(c, &args)
	case OpRewardValidator:
		var args TaskRefArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return rewardValidator(c, &args)
	case OpRefundVoter:
		var args PollRefArgs
		if err := decode(payload, &args); err != nil {
			return "", err
		}
		return refundVoter(c, &args)
	default:
		return "", failf(ErrInvalidInput, "unknown operation %q", op)
	}
}

// decode runs a generated tinyjson codec over the raw payload.
func decode(payload string, v tinyjson.Unmarshaler) error {
	l := jlexer.Lexer{Data: []byte(payload)}
	v.UnmarshalTinyJSON(&l)
	if err := l.Error(); err != nil {
		return failf(ErrInvalidInput, "bad payload: %v", err)
	}
	return nil
}
