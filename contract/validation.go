package contract

import "taskmesh/sdk"

////////////////////////////////////////////////////////////////////////////////
// ValidationLedger: entry fees, ordered attester lists, positional rewards
////////////////////////////////////////////////////////////////////////////////

// attesterIndex finds an address in an ordered side list, -1 when absent.
func attesterIndex(side []sdk.Address, addr sdk.Address) int {
	for i, a := range side {
		if a == addr {
			return i
		}
	}
	return -1
}

// validateTask records one attestation. Each attester joins exactly one side
// of a task, pays the entry fee into escrow, and keeps the list position the
// reward weighting later depends on.
func validateTask(c *ctx, args *ValidateArgs) (string, error) {
	pro, err := loadProject(c.host, args.ProjectID)
	if err != nil {
		return "", err
	}
	if pro.State != ProjectValidating {
		return "", failf(ErrInvalidState, "project %d is %s, not validating", pro.ID, pro.State)
	}
	task, err := loadTask(c.host, pro.ID, args.Index)
	if err != nil {
		return "", err
	}
	if !task.Claimed {
		return "", failf(ErrInvalidState, "task %d was never claimed", args.Index)
	}
	caller := c.sender()
	vr := loadValidation(c.host, pro.ID, args.Index)
	if vr == nil {
		vr = &ValidationRecord{EntryFee: c.cfg.ValidationEntryFee, Refunded: map[string]bool{}}
	}
	if attesterIndex(vr.Aff, caller) >= 0 || attesterIndex(vr.Neg, caller) >= 0 {
		return "", failf(ErrAlreadyDone, "%s already attested task %d", caller, args.Index)
	}
	if len(vr.Aff)+len(vr.Neg) >= MaxAttestersPerSide {
		return "", failf(ErrInvalidInput, "attester list of task %d is full", args.Index)
	}
	if err := escrowTokens(c, c.cfg.Registry, caller, vr.EntryFee); err != nil {
		return "", err
	}
	if args.Affirm {
		vr.Aff = append(vr.Aff, caller)
	} else {
		vr.Neg = append(vr.Neg, caller)
	}
	saveValidation(c.host, pro.ID, args.Index, vr)
	emitValidated(c, pro.ID, args.Index, caller, args.Affirm, vr.EntryFee)
	return "validated", nil
}

// settleUncontested resolves a task that never reached a poll: unanimous
// affirmation (or no attesters at all) leaves it claimable, unanimous denial
// forfeits the reward into the project fund.
func settleUncontested(c *ctx, pro *Project, task *Task, vr *ValidationRecord) {
	if vr == nil || len(vr.Neg) == 0 {
		task.Claimable = true
		if vr != nil {
			vr.Settled = true
			vr.AffWon = true
			saveValidation(c.host, pro.ID, task.Index, vr)
		}
	} else {
		task.Forfeited = true
		vr.Settled = true
		vr.AffWon = false
		saveValidation(c.host, pro.ID, task.Index, vr)
	}
	saveTask(c.host, pro.ID, task)
}

// settleContested applies a resolved poll verdict to its task.
func settleContested(c *ctx, pro *Project, task *Task, p *Poll) {
	vr := loadValidation(c.host, pro.ID, task.Index)
	if p.Passed {
		task.Claimable = true
	} else {
		task.Forfeited = true
	}
	vr.Settled = true
	vr.AffWon = p.Passed
	saveValidation(c.host, pro.ID, task.Index, vr)
	saveTask(c.host, pro.ID, task)
}

// rewardValidator settles one attester once the project completed. Winners
// recover the full entry fee plus their positional share of the forfeited
// reward; losers recover half the fee, the other half burns out of supply.
func rewardValidator(c *ctx, args *TaskRefArgs) (string, error) {
	pro, err := loadProject(c.host, args.ProjectID)
	if err != nil {
		return "", err
	}
	if pro.State != ProjectComplete {
		return "", failf(ErrInvalidState, "project %d is %s, not complete", pro.ID, pro.State)
	}
	task, err := loadTask(c.host, pro.ID, args.Index)
	if err != nil {
		return "", err
	}
	vr := loadValidation(c.host, pro.ID, args.Index)
	if vr == nil || !vr.Settled {
		return "", failf(ErrNotFound, "no settled validation for task %d", args.Index)
	}
	caller := c.sender()
	if vr.Refunded == nil {
		vr.Refunded = map[string]bool{}
	}
	if vr.Refunded[caller.String()] {
		return "", failf(ErrAlreadyDone, "attester %s already settled", caller)
	}
	winners, losers := vr.Aff, vr.Neg
	if !vr.AffWon {
		winners, losers = vr.Neg, vr.Aff
	}
	if i := attesterIndex(winners, caller); i >= 0 {
		if err := unescrowTokens(c, c.cfg.Registry, caller, vr.EntryFee); err != nil {
			return "", err
		}
		payout := vr.EntryFee
		// the forfeited fund reward is split over the winning deniers
		if !vr.AffWon && task.Forfeited {
			weights := positionalWeights(len(winners))
			share := flooredShare(task.FundReward, weights[i], PositionalWeightTotal)
			if share > 0 {
				if err := payWeiFromProject(c, c.cfg.Registry, pro, caller, share); err != nil {
					return "", err
				}
				saveProject(c.host, pro)
			}
			payout += share
		}
		vr.Refunded[caller.String()] = true
		saveValidation(c.host, pro.ID, args.Index, vr)
		emitRefund(c, "fa", pro.ID, caller, payout)
		return UInt64ToString(uint64(payout)), nil
	}
	if attesterIndex(losers, caller) < 0 {
		return "", failf(ErrNotFound, "%s never attested task %d", caller, args.Index)
	}
	half := vr.EntryFee / 2
	if err := unescrowTokens(c, c.cfg.Registry, caller, half); err != nil {
		return "", err
	}
	if err := burnEscrowed(c, c.cfg.Registry, caller, vr.EntryFee-half); err != nil {
		return "", err
	}
	vr.Refunded[caller.String()] = true
	saveValidation(c.host, pro.ID, args.Index, vr)
	emitRefund(c, "fa", pro.ID, caller, half)
	return UInt64ToString(uint64(half)), nil
}
