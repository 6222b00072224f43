package contract

////////////////////////////////////////////////////////////////////////////////
// ProjectStateMachine: proposal, staking, task hashes, lifecycle, settlement
////////////////////////////////////////////////////////////////////////////////

// proposeProject creates a project and locks the proposer's stake, priced off
// the curve: the token-denominated target cost divided by the stake
// proportion. A reputation proposer locks the same number of rep units.
func proposeProject(c *ctx, args *ProposeArgs) (string, error) {
	if args.Cost <= 0 {
		return "", failf(ErrInvalidInput, "target cost must be positive")
	}
	if args.StakingDeadline <= c.now {
		return "", failf(ErrDeadlinePassed, "staking deadline must be in the future")
	}
	kind, err := parseStakeKind(args.Kind)
	if err != nil {
		return "", err
	}
	price := priceFor(loadLedger(c.host), c.cfg)
	stake := args.Cost / price / c.cfg.StakeProportion
	if stake <= 0 {
		return "", failf(ErrInvalidInput, "target cost %d too small to price a stake", args.Cost)
	}
	proposer := c.sender()
	if kind == StakeKindToken {
		err = escrowTokens(c, c.cfg.Registry, proposer, stake)
	} else {
		err = lockRep(c, c.cfg.Registry, proposer, stake)
	}
	if err != nil {
		return "", err
	}
	id := getCount(c.host, ProjectsCount) + 1
	setCount(c.host, ProjectsCount, id)
	pro := &Project{
		ID:              id,
		Proposer:        proposer,
		ProposerKind:    kind,
		ProposerStake:   stake,
		TargetCost:      args.Cost,
		RepCost:         stake,
		DocHash:         args.DocHash,
		StakingDeadline: args.StakingDeadline,
		NextDeadline:    args.StakingDeadline,
		State:           ProjectProposed,
		CreatedAt:       c.now,
		Tx:              c.env.TxId,
	}
	saveProject(c.host, pro)
	addProjectToIndex(c.host, id)
	emitProjectProposed(c, id, proposer, args.Cost, stake, kind)
	return UInt64ToString(id), nil
}

// stakeProject locks currency or reputation onto a Proposed project. Token
// stakes move their wei value from the pool into the project fund until the
// target cost is covered; the instant it is, the project flips to Staked.
// Over-staked tokens stay locked, only the missing wei remainder moves.
func stakeProject(c *ctx, args *StakeArgs) (string, error) {
	if args.Amount <= 0 {
		return "", failf(ErrInvalidInput, "stake amount must be positive")
	}
	kind, err := parseStakeKind(args.Kind)
	if err != nil {
		return "", err
	}
	pro, err := loadProject(c.host, args.ProjectID)
	if err != nil {
		return "", err
	}
	if pro.State != ProjectProposed {
		return "", failf(ErrInvalidState, "project %d is %s, staking closed", pro.ID, pro.State)
	}
	if c.now > pro.StakingDeadline {
		return "", failf(ErrDeadlinePassed, "staking deadline of project %d passed", pro.ID)
	}
	caller := c.sender()
	st := loadStake(c.host, pro.ID, caller)
	weiMoved := Amount(0)
	if kind == StakeKindToken {
		if err := lockFreeTokens(c, c.cfg.Registry, caller, args.Amount); err != nil {
			return "", err
		}
		price := priceFor(loadLedger(c.host), c.cfg)
		weiVal := args.Amount * price
		if remaining := pro.TargetCost - pro.WeiBal; weiVal > remaining {
			weiVal = remaining
		}
		if weiVal > 0 {
			if err := transferWeiTo(c, c.cfg.Registry, pro, weiVal); err != nil {
				return "", err
			}
			weiMoved = weiVal
		}
		st.Tokens += args.Amount
		st.WeiValue += weiMoved
		pro.TokensStaked += args.Amount
	} else {
		if err := lockRep(c, c.cfg.Registry, caller, args.Amount); err != nil {
			return "", err
		}
		st.Rep += args.Amount
		pro.RepStaked += args.Amount
	}
	saveStake(c.host, pro.ID, caller, st)
	if pro.State == ProjectProposed && pro.WeiBal >= pro.TargetCost {
		pro.State = ProjectStaked
		emitStateChanged(c, pro.ID, ProjectProposed, ProjectStaked)
	}
	saveProject(c.host, pro)
	emitStaked(c, pro.ID, caller, args.Amount, weiMoved, kind)
	return pro.State.String(), nil
}

// unstakeProject returns stake while the project is still Proposed. Token
// exits hand their recorded wei value back to the pool pro rata.
func unstakeProject(c *ctx, args *StakeArgs) (string, error) {
	if args.Amount <= 0 {
		return "", failf(ErrInvalidInput, "unstake amount must be positive")
	}
	kind, err := parseStakeKind(args.Kind)
	if err != nil {
		return "", err
	}
	pro, err := loadProject(c.host, args.ProjectID)
	if err != nil {
		return "", err
	}
	if pro.State != ProjectProposed {
		return "", failf(ErrInvalidState, "project %d is %s, unstaking closed", pro.ID, pro.State)
	}
	caller := c.sender()
	st := loadStake(c.host, pro.ID, caller)
	weiBack := Amount(0)
	if kind == StakeKindToken {
		if st.Tokens == 0 {
			return "", failf(ErrNotFound, "%s holds no token stake on project %d", caller, pro.ID)
		}
		if st.Tokens < args.Amount {
			return "", failf(ErrInsufficientBalance, "unstake %d with only %d staked", args.Amount, st.Tokens)
		}
		weiBack = flooredShare(st.WeiValue, args.Amount, st.Tokens)
		if weiBack > 0 {
			if err := returnWei(c, c.cfg.Registry, pro, weiBack); err != nil {
				return "", err
			}
		}
		if err := releaseTokens(c, c.cfg.Registry, caller, args.Amount); err != nil {
			return "", err
		}
		st.Tokens -= args.Amount
		st.WeiValue -= weiBack
		pro.TokensStaked -= args.Amount
	} else {
		if st.Rep == 0 {
			return "", failf(ErrNotFound, "%s holds no rep stake on project %d", caller, pro.ID)
		}
		if st.Rep < args.Amount {
			return "", failf(ErrInsufficientReputation, "unstake %d with only %d staked", args.Amount, st.Rep)
		}
		if err := releaseRep(c, c.cfg.Registry, caller, args.Amount); err != nil {
			return "", err
		}
		st.Rep -= args.Amount
		pro.RepStaked -= args.Amount
	}
	saveStake(c.host, pro.ID, caller, st)
	saveProject(c.host, pro)
	emitUnstaked(c, pro.ID, caller, args.Amount, weiBack, kind)
	return pro.State.String(), nil
}

// submitTaskHash records a task-list commitment during the staked window.
// The first hash is stored verbatim and never overwritten here; every later
// distinct non-matching hash bumps the conflict counter instead.
func submitTaskHash(c *ctx, args *SubmitHashArgs) (string, error) {
	if args.Hash == "" {
		return "", failf(ErrInvalidInput, "empty task hash")
	}
	pro, err := loadProject(c.host, args.ProjectID)
	if err != nil {
		return "", err
	}
	if pro.State != ProjectStaked {
		return "", failf(ErrInvalidState, "project %d is %s, not staked", pro.ID, pro.State)
	}
	caller := c.sender()
	st := loadStake(c.host, pro.ID, caller)
	if st.Tokens == 0 && st.Rep == 0 && caller != pro.Proposer {
		return "", failf(ErrUnauthorized, "%s holds no stake on project %d", caller, pro.ID)
	}
	if pro.SubmissionCount == 0 {
		pro.TaskHash = args.Hash
	} else if args.Hash != pro.TaskHash {
		seen := false
		for seq := uint32(0); seq < pro.SubmissionCount; seq++ {
			if sub := loadSubmission(c.host, pro.ID, seq); sub != nil && sub.Hash == args.Hash {
				seen = true
				break
			}
		}
		if !seen {
			pro.ConflictCount++
		}
	}
	saveSubmission(c.host, pro.ID, pro.SubmissionCount, &Submission{
		Hash:      args.Hash,
		Submitter: caller,
		At:        c.now,
	})
	pro.SubmissionCount++
	saveProject(c.host, pro)
	emitHashSubmitted(c, pro.ID, caller, args.Hash, pro.ConflictCount)
	return UInt64ToString(uint64(pro.SubmissionCount)), nil
}

// revealTaskList opens the committed task list once the project is Active.
// The ordered specs must re-hash to the stored commitment exactly.
func revealTaskList(c *ctx, args *RevealArgs) (string, error) {
	pro, err := loadProject(c.host, args.ProjectID)
	if err != nil {
		return "", err
	}
	if pro.State != ProjectActive {
		return "", failf(ErrInvalidState, "project %d is %s, not active", pro.ID, pro.State)
	}
	if pro.TasksRevealed {
		return "", failf(ErrAlreadyDone, "task list of project %d already revealed", pro.ID)
	}
	if len(args.Tasks) == 0 || len(args.Tasks) > MaxTasksPerProject {
		return "", failf(ErrInvalidInput, "task list must hold 1..%d entries", MaxTasksPerProject)
	}
	total := uint32(0)
	for _, spec := range args.Tasks {
		if len(spec.Description) == 0 || len(spec.Description) > MaxDescriptionLength {
			return "", failf(ErrInvalidInput, "task description out of bounds")
		}
		// per-item bound keeps the 32-bit total from wrapping
		if spec.Weighting == 0 || spec.Weighting > WeightingTotal {
			return "", failf(ErrInvalidInput, "task weighting %d out of bounds", spec.Weighting)
		}
		total += spec.Weighting
	}
	if total > WeightingTotal {
		return "", failf(ErrInvalidInput, "task weightings sum to %d, cap is %d", total, WeightingTotal)
	}
	if taskListHash(args.Tasks) != pro.TaskHash {
		return "", failf(ErrMismatch, "task list does not match commitment of project %d", pro.ID)
	}
	for i, spec := range args.Tasks {
		saveTask(c.host, pro.ID, &Task{
			Index:      uint32(i),
			Digest:     taskDigest(spec.Description, spec.Weighting),
			Desc:       spec.Description,
			Weighting:  spec.Weighting,
			RepPrice:   flooredShare(pro.RepCost, Amount(spec.Weighting), WeightingTotal),
			FundReward: flooredShare(pro.TargetCost, Amount(spec.Weighting), WeightingTotal),
		})
	}
	pro.TasksRevealed = true
	pro.TaskCount = uint32(len(args.Tasks))
	saveProject(c.host, pro)
	emitRevealed(c, pro.ID, len(args.Tasks))
	return UInt64ToString(uint64(pro.TaskCount)), nil
}

// claimTask assigns a revealed task to the caller against its reputation
// price. The presented description and weighting must re-hash to the stored
// per-task digest.
func claimTask(c *ctx, args *ClaimArgs) (string, error) {
	pro, err := loadProject(c.host, args.ProjectID)
	if err != nil {
		return "", err
	}
	if pro.State != ProjectActive {
		return "", failf(ErrInvalidState, "project %d is %s, not active", pro.ID, pro.State)
	}
	if !pro.TasksRevealed {
		return "", failf(ErrInvalidState, "task list of project %d not revealed yet", pro.ID)
	}
	task, err := loadTask(c.host, pro.ID, args.Index)
	if err != nil {
		return "", err
	}
	if task.Claimed {
		return "", failf(ErrAlreadyDone, "task %d already claimed by %s", args.Index, task.Worker)
	}
	if taskDigest(args.Description, args.Weighting) != task.Digest {
		return "", failf(ErrMismatch, "description or weighting does not match task %d", args.Index)
	}
	caller := c.sender()
	if err := lockRep(c, c.cfg.Registry, caller, task.RepPrice); err != nil {
		return "", err
	}
	task.Claimed = true
	task.Worker = caller
	saveTask(c.host, pro.ID, task)
	emitTaskClaimed(c, pro.ID, args.Index, caller, task.RepPrice)
	return "claimed", nil
}

// advanceState checks the relevant deadline and moves the project along its
// lifecycle. Before the deadline it is an idempotent no-op returning the
// current state.
func advanceState(c *ctx, args *ProjectRefArgs) (string, error) {
	pro, err := loadProject(c.host, args.ProjectID)
	if err != nil {
		return "", err
	}
	from := pro.State
	switch pro.State {
	case ProjectProposed:
		if c.now > pro.StakingDeadline {
			if err := failProject(c, pro, ProjectExpired); err != nil {
				return "", err
			}
		}
	case ProjectStaked:
		if c.now > pro.StakingDeadline {
			switch {
			case pro.SubmissionCount == 0:
				if err := failProject(c, pro, ProjectFailed); err != nil {
					return "", err
				}
			case pro.ConflictCount > 0:
				pro.State = ProjectDisputed
			default:
				pro.State = ProjectActive
				pro.NextDeadline = c.now + c.cfg.ActivePeriod
			}
		}
	case ProjectDisputed:
		pro.TaskHash = resolveDispute(c, pro)
		pro.State = ProjectActive
		pro.NextDeadline = c.now + c.cfg.ActivePeriod
	case ProjectActive:
		if c.now > pro.NextDeadline {
			pro.State = ProjectValidating
			pro.NextDeadline = c.now + c.cfg.ValidatePeriod
		}
	case ProjectValidating:
		if c.now > pro.NextDeadline {
			enterVoting(c, pro)
		}
	case ProjectVoting:
		resolveDuePolls(c, pro)
		if pro.OpenPolls == 0 {
			if err := completeProject(c, pro); err != nil {
				return "", err
			}
		}
	}
	if pro.State != from {
		emitStateChanged(c, pro.ID, from, pro.State)
	}
	saveProject(c.host, pro)
	return pro.State.String(), nil
}

// completeProject flips a project to Complete. Wei not reserved for a
// settleable task — claimable rewards for workers, forfeited rewards for the
// winning attester side — drains back into the pool, so unclaimed tasks and
// never-revealed lists leave nothing stranded in the fund.
func completeProject(c *ctx, pro *Project) error {
	reserved := Amount(0)
	for idx := uint32(0); idx < pro.TaskCount; idx++ {
		task, err := loadTask(c.host, pro.ID, idx)
		if err != nil || !task.Claimed {
			continue
		}
		if task.Claimable || task.Forfeited {
			reserved += task.FundReward
		}
	}
	if pro.WeiBal > reserved {
		if err := returnWei(c, c.cfg.Registry, pro, pro.WeiBal-reserved); err != nil {
			return err
		}
	}
	pro.State = ProjectComplete
	return nil
}

// failProject moves a project onto a terminal failure path and hands its
// fund wei back to the pool; stakes stay refundable individually.
func failProject(c *ctx, pro *Project, to ProjectState) error {
	if pro.WeiBal > 0 {
		if err := returnWei(c, c.cfg.Registry, pro, pro.WeiBal); err != nil {
			return err
		}
	}
	pro.State = to
	return nil
}

// resolveDispute picks the winning task hash by cumulative submitter stake
// weight (wei value of token stakes plus rep), earliest submission breaking
// ties.
func resolveDispute(c *ctx, pro *Project) string {
	type cand struct {
		hash   string
		weight Amount
	}
	var cands []*cand
	byHash := map[string]*cand{}
	for seq := uint32(0); seq < pro.SubmissionCount; seq++ {
		sub := loadSubmission(c.host, pro.ID, seq)
		if sub == nil {
			continue
		}
		st := loadStake(c.host, pro.ID, sub.Submitter)
		w := st.WeiValue + st.Rep
		if sub.Submitter == pro.Proposer {
			w += pro.ProposerStake
		}
		if cd, ok := byHash[sub.Hash]; ok {
			cd.weight += w
		} else {
			cd = &cand{hash: sub.Hash, weight: w}
			byHash[sub.Hash] = cd
			cands = append(cands, cd)
		}
	}
	// cands is ordered by first submission, so a strict > keeps the earliest on ties
	winner := pro.TaskHash
	best := Amount(-1)
	for _, cd := range cands {
		if cd.weight > best {
			best = cd.weight
			winner = cd.hash
		}
	}
	return winner
}

// enterVoting settles every uncontested task and opens one poll per
// contested one, pooling the contested entry fees.
func enterVoting(c *ctx, pro *Project) {
	pro.State = ProjectVoting
	pro.NextDeadline = c.now + c.cfg.CommitPeriod + c.cfg.RevealPeriod
	for idx := uint32(0); idx < pro.TaskCount; idx++ {
		task, err := loadTask(c.host, pro.ID, idx)
		if err != nil || !task.Claimed {
			continue
		}
		vr := loadValidation(c.host, pro.ID, idx)
		if vr != nil && len(vr.Aff) > 0 && len(vr.Neg) > 0 {
			task.Contested = true
			pooled := vr.EntryFee * Amount(len(vr.Aff)+len(vr.Neg))
			p := openPoll(c, pro, idx, pooled)
			task.PollID = p.ID
			saveTask(c.host, pro.ID, task)
			continue
		}
		settleUncontested(c, pro, task, vr)
	}
}

// resolveDuePolls tallies every contested task whose reveal window closed.
func resolveDuePolls(c *ctx, pro *Project) {
	for idx := uint32(0); idx < pro.TaskCount; idx++ {
		task, err := loadTask(c.host, pro.ID, idx)
		if err != nil || !task.Contested {
			continue
		}
		p, err := loadPoll(c.host, task.PollID)
		if err != nil || p.Resolved {
			continue
		}
		if c.now > p.RevealDeadline {
			resolvePoll(c, p)
			settleContested(c, pro, task, p)
			pro.OpenPolls--
		}
	}
}

// -----------------------------------------------------------------------------
// Terminal settlement
// -----------------------------------------------------------------------------

// refundProposer returns the proposer stake once the project is terminal; the
// Complete path adds the wei fee refund out of the pool.
func refundProposer(c *ctx, args *ProjectRefArgs) (string, error) {
	pro, err := loadProject(c.host, args.ProjectID)
	if err != nil {
		return "", err
	}
	if !pro.State.terminal() {
		return "", failf(ErrInvalidState, "project %d is %s, not terminal", pro.ID, pro.State)
	}
	caller := c.sender()
	if caller != pro.Proposer {
		return "", failf(ErrUnauthorized, "%s is not the proposer of project %d", caller, pro.ID)
	}
	if pro.ProposerRefunded {
		return "", failf(ErrAlreadyDone, "proposer of project %d already refunded", pro.ID)
	}
	if pro.ProposerKind == StakeKindToken {
		err = unescrowTokens(c, c.cfg.Registry, caller, pro.ProposerStake)
	} else {
		err = releaseRep(c, c.cfg.Registry, caller, pro.ProposerStake)
	}
	if err != nil {
		return "", err
	}
	fee := Amount(0)
	if pro.State == ProjectComplete {
		fee = pro.TargetCost / c.cfg.StakeProportion
		if err := payWeiFromPool(c, c.cfg.Registry, caller, fee); err != nil {
			return "", err
		}
	}
	pro.ProposerRefunded = true
	saveProject(c.host, pro)
	emitRefund(c, "fp", pro.ID, caller, pro.ProposerStake+fee)
	return UInt64ToString(uint64(pro.ProposerStake + fee)), nil
}

// refundStaker settles one staker. Complete returns the pass fraction plus a
// freshly minted 1% reward and burns the slashed remainder; the failure
// paths return stakes in full with no reward.
func refundStaker(c *ctx, args *ProjectRefArgs) (string, error) {
	pro, err := loadProject(c.host, args.ProjectID)
	if err != nil {
		return "", err
	}
	if !pro.State.terminal() {
		return "", failf(ErrInvalidState, "project %d is %s, not terminal", pro.ID, pro.State)
	}
	caller := c.sender()
	st := loadStake(c.host, pro.ID, caller)
	if st.Tokens == 0 && st.Rep == 0 {
		return "", failf(ErrNotFound, "%s holds no stake on project %d", caller, pro.ID)
	}
	if st.Refunded {
		return "", failf(ErrAlreadyDone, "staker %s already settled on project %d", caller, pro.ID)
	}
	total := Amount(0)
	if pro.State == ProjectComplete {
		tokensBack := flooredShare(st.Tokens, c.cfg.PassPercent, 100)
		if err := releaseTokens(c, c.cfg.Registry, caller, tokensBack); err != nil {
			return "", err
		}
		if err := burnStaked(c, c.cfg.Registry, st.Tokens-tokensBack); err != nil {
			return "", err
		}
		if err := mintReward(c, c.cfg.Registry, caller, st.Tokens/100); err != nil {
			return "", err
		}
		repBack := flooredShare(st.Rep, c.cfg.PassPercent, 100)
		if err := releaseRep(c, c.cfg.Registry, caller, repBack); err != nil {
			return "", err
		}
		if err := burnRep(c, c.cfg.Registry, st.Rep-repBack); err != nil {
			return "", err
		}
		if err := mintRepReward(c, c.cfg.Registry, caller, st.Rep/100); err != nil {
			return "", err
		}
		total = tokensBack + st.Tokens/100 + repBack + st.Rep/100
	} else {
		if err := releaseTokens(c, c.cfg.Registry, caller, st.Tokens); err != nil {
			return "", err
		}
		if err := releaseRep(c, c.cfg.Registry, caller, st.Rep); err != nil {
			return "", err
		}
		total = st.Tokens + st.Rep
	}
	st.Refunded = true
	saveStake(c.host, pro.ID, caller, st)
	emitRefund(c, "fs", pro.ID, caller, total)
	return UInt64ToString(uint64(total)), nil
}

// rewardTask pays a claimable task's worker: the locked reputation comes
// back and the fund reward leaves the project balance as wei.
func rewardTask(c *ctx, args *TaskRefArgs) (string, error) {
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
	caller := c.sender()
	if !task.Claimed || task.Worker != caller {
		return "", failf(ErrUnauthorized, "%s is not the worker of task %d", caller, args.Index)
	}
	if !task.Claimable {
		return "", failf(ErrInvalidState, "task %d is not claimable", args.Index)
	}
	if task.Rewarded {
		return "", failf(ErrAlreadyDone, "task %d already rewarded", args.Index)
	}
	if err := releaseRep(c, c.cfg.Registry, caller, task.RepPrice); err != nil {
		return "", err
	}
	if err := payWeiFromProject(c, c.cfg.Registry, pro, caller, task.FundReward); err != nil {
		return "", err
	}
	task.Rewarded = true
	saveTask(c.host, pro.ID, task)
	saveProject(c.host, pro)
	emitRefund(c, "fw", pro.ID, caller, task.FundReward)
	return UInt64ToString(uint64(task.FundReward)), nil
}
