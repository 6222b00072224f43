package contract

// -----------------------------------------------------------------------------
// Amount Scaling
// -----------------------------------------------------------------------------

// All balances are raw integer units; division is truncating throughout so
// settlement amounts replay bit-exact.

// -----------------------------------------------------------------------------
// Default/Fallback Values
// -----------------------------------------------------------------------------

const (
	// FallbackBasePrice prices the first token when the pool is empty (wei per token).
	FallbackBasePrice Amount = 100_000_000_000_000
	// FallbackStakeProportion divides the token-denominated target cost into the proposer stake.
	FallbackStakeProportion Amount = 20
	// FallbackPassPercent is the staked fraction returned on the Complete path.
	FallbackPassPercent Amount = 100
	// FallbackValidationEntryFee is the token fee locked per task attestation.
	FallbackValidationEntryFee Amount = 20
	// FallbackRegistrationGrant is the one-time reputation credit.
	FallbackRegistrationGrant Amount = 10_000
	// FallbackPollQuorum is the percentage of revealed weight the yes side must clear.
	FallbackPollQuorum Amount = 50
	// FallbackPeriodSeconds is one week, the window used for every lifecycle phase.
	FallbackPeriodSeconds int64 = 7 * 24 * 60 * 60
)

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxTasksPerProject caps the revealed task list.
	MaxTasksPerProject = 256
	// MaxDescriptionLength limits task description text.
	MaxDescriptionLength = 500
	// WeightingTotal is what all task weightings of one project sum up to at most.
	WeightingTotal = 100
	// MaxAttestersPerSide keeps the positional weight schedule injective.
	MaxAttestersPerSide = 100
	// MaxMintAmount bounds a single mint so the curve's growth-percent
	// intermediate (n * 10^4) stays inside int64.
	MaxMintAmount Amount = 922_337_203_685_477
	// PositionalWeightTotal is the basis-point total one validation side splits.
	PositionalWeightTotal Amount = 10_000
)

// -----------------------------------------------------------------------------
// Counter / Singleton Keys
// -----------------------------------------------------------------------------

const (
	// ProjectsCount holds an integer counter for projects (used for generating IDs).
	ProjectsCount = "count:proj"
	// PollsCount holds an integer counter for polls (used for generating IDs).
	PollsCount = "count:poll"
	// configKey stores the deployment Config blob.
	configKey = "cfg"
	// ledgerKey stores the Ledger supply totals blob.
	ledgerKey = "ledger"
	// projectsIndexKey lists all project IDs for iteration.
	projectsIndexKey = "index:projects"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kAccount stores serialized currency Account blobs per address.
	kAccount byte = 0x01
	// kReputation stores RepAccount blobs per address.
	kReputation byte = 0x02
	// kProject contains encoded Project records.
	kProject byte = 0x10
	// kStake houses per-project per-staker Stake records.
	kStake byte = 0x11
	// kSubmission stores task-hash Submission records indexed by project+sequence.
	kSubmission byte = 0x12
	// kTask stores Task entries indexed by project+task index.
	kTask byte = 0x13
	// kValidation tracks ValidationRecord blobs per project+task.
	kValidation byte = 0x14
	// kPoll contains encoded Poll records.
	kPoll byte = 0x20
	// kPollCommit stores per-voter Commit records per poll.
	kPollCommit byte = 0x21
	// kVoteCredit stores quadratic VoteCredit blobs per kind+address.
	kVoteCredit byte = 0x22
)

// -----------------------------------------------------------------------------
// Operation Names
// -----------------------------------------------------------------------------

const (
	OpCurrencyMint       = "currency_mint"
	OpCurrencySell       = "currency_sell"
	OpReputationRegister = "reputation_register"
	OpProjectPropose     = "project_propose"
	OpProjectStake       = "project_stake"
	OpProjectUnstake     = "project_unstake"
	OpProjectSubmitHash  = "project_submit_hash"
	OpProjectReveal      = "project_reveal"
	OpProjectAdvance     = "project_advance"
	OpTaskClaim          = "task_claim"
	OpTaskValidate       = "task_validate"
	OpPollCommit         = "poll_commit"
	OpPollReveal         = "poll_reveal"
	OpPollUnlock         = "poll_unlock"
	OpRefundProposer     = "refund_proposer"
	OpRefundStaker       = "refund_staker"
	OpRewardTask         = "reward_task"
	OpRewardValidator    = "reward_validator"
	OpRefundVoter        = "refund_voter"
)
