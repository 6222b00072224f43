package contract

import "taskmesh/sdk"

////////////////////////////////////////////////////////////////////////////////
// ProjectRegistry: initialization, op routing, read-side queries
////////////////////////////////////////////////////////////////////////////////

// Init wires the deployment config exactly once. Zero-valued fields fall back
// to the deployment defaults; the registry address that guards privileged
// ledger movements derives from the contract id so no external sender can
// ever match it.
func Init(host sdk.Host, payload string) (string, error) {
	ov := sdk.NewOverlay(host)
	if ov.Get(configKey) != nil {
		return "", failf(ErrAlreadyDone, "contract already initialized")
	}
	var args InitArgs
	if payload != "" {
		if err := decode(payload, &args); err != nil {
			return "", err
		}
	}
	env := host.GetEnv()
	contractId := env.ContractId
	if contractId == "" {
		contractId = "taskmesh"
	}
	cfg := &Config{
		Registry:           sdk.Address("registry:" + contractId),
		BasePrice:          fallback(args.BasePrice, FallbackBasePrice),
		StakeProportion:    fallback(args.StakeProportion, FallbackStakeProportion),
		PassPercent:        fallback(args.PassPercent, FallbackPassPercent),
		ValidationEntryFee: fallback(args.ValidationEntryFee, FallbackValidationEntryFee),
		RegistrationGrant:  fallback(args.RegistrationGrant, FallbackRegistrationGrant),
		PollQuorum:         fallback(args.PollQuorum, FallbackPollQuorum),
		StakedPeriod:       fallbackInt64(args.PeriodSeconds, FallbackPeriodSeconds),
		ActivePeriod:       fallbackInt64(args.PeriodSeconds, FallbackPeriodSeconds),
		ValidatePeriod:     fallbackInt64(args.PeriodSeconds, FallbackPeriodSeconds),
		CommitPeriod:       fallbackInt64(args.PeriodSeconds, FallbackPeriodSeconds),
		RevealPeriod:       fallbackInt64(args.PeriodSeconds, FallbackPeriodSeconds),
	}
	saveConfig(ov, cfg)
	saveLedger(ov, &Ledger{})
	ov.Commit()
	host.Log("init|reg:" + cfg.Registry.String())
	return "initialized", nil
}

func fallback(v, def Amount) Amount {
	if v > 0 {
		return v
	}
	return def
}

func fallbackInt64(v, def int64) int64 {
	if v > 0 {
		return v
	}
	return def
}

// ListProjects returns every project id ever created, in creation order.
// Example payload: ListProjects(host)
func ListProjects(s sdk.State) []uint64 {
	return listAllProjectIDs(s)
}

// GetProject is the read-side project lookup.
// Example payload: GetProject(host, 1)
func GetProject(s sdk.State, id uint64) (*Project, error) {
	return loadProject(s, id)
}

// GetLedger exposes the supply totals for auditing.
// Example payload: GetLedger(host)
func GetLedger(s sdk.State) *Ledger {
	return loadLedger(s)
}

// GetAccount exposes one currency account.
// Example payload: GetAccount(host, sdk.Address("user:alice"))
func GetAccount(s sdk.State, addr sdk.Address) *Account {
	return loadAccount(s, addr)
}

// GetRepAccount exposes one reputation account.
// Example payload: GetRepAccount(host, sdk.Address("user:alice"))
func GetRepAccount(s sdk.State, addr sdk.Address) *RepAccount {
	return loadRepAccount(s, addr)
}

// GetPoll is the read-side poll lookup.
// Example payload: GetPoll(host, 1)
func GetPoll(s sdk.State, id uint64) (*Poll, error) {
	return loadPoll(s, id)
}

// GetTask is the read-side task lookup.
// Example payload: GetTask(host, 1, 0)
func GetTask(s sdk.State, projectID uint64, idx uint32) (*Task, error) {
	return loadTask(s, projectID, idx)
}

// GetStake exposes one staker's record on a project.
// Example payload: GetStake(host, 1, sdk.Address("user:bob"))
func GetStake(s sdk.State, projectID uint64, addr sdk.Address) *Stake {
	return loadStake(s, projectID, addr)
}

// GetVoteCredit exposes one identity's quadratic vote budget.
// Example payload: GetVoteCredit(host, StakeKindToken, sdk.Address("user:bob"))
func GetVoteCredit(s sdk.State, kind StakeKind, addr sdk.Address) *VoteCredit {
	return loadVoteCredit(s, kind, addr)
}
