package contract

import "taskmesh/sdk"

// Amount is a raw integer balance unit. Wei, tokens, reputation and vote
// credits all use it; the asset is implied by context.
type Amount int64

// StakeKind selects which ledger a stake or vote weight draws from.
type StakeKind uint8

const (
	StakeKindToken      StakeKind = 0
	StakeKindReputation StakeKind = 1
)

// String serializes the kind into the short log-friendly codes.
// Example payload: StakeKindReputation.String()
func (k StakeKind) String() string {
	if k == StakeKindReputation {
		return "rep"
	}
	return "token"
}

// ProjectState captures a project's lifecycle position.
type ProjectState uint8

const (
	ProjectStateUnspecified ProjectState = 0
	ProjectProposed         ProjectState = 1
	ProjectStaked           ProjectState = 2
	ProjectDisputed         ProjectState = 3
	ProjectActive           ProjectState = 4
	ProjectValidating       ProjectState = 5
	ProjectVoting           ProjectState = 6
	ProjectComplete         ProjectState = 7
	ProjectFailed           ProjectState = 8
	ProjectExpired          ProjectState = 9
)

// String prints the project state as lower-case text for events and logs.
// Example payload: ProjectActive.String()
func (s ProjectState) String() string {
	switch s {
	case ProjectProposed:
		return "proposed"
	case ProjectStaked:
		return "staked"
	case ProjectDisputed:
		return "disputed"
	case ProjectActive:
		return "active"
	case ProjectValidating:
		return "validating"
	case ProjectVoting:
		return "voting"
	case ProjectComplete:
		return "complete"
	case ProjectFailed:
		return "failed"
	case ProjectExpired:
		return "expired"
	default:
		return "unspecified"
	}
}

// terminal reports whether no further transition can leave the state.
func (s ProjectState) terminal() bool {
	return s == ProjectComplete || s == ProjectFailed || s == ProjectExpired
}

// Config holds the deployment-wide economic parameters. Zero fields are
// replaced by the Fallback* constants at init.
type Config struct {
	Registry           sdk.Address
	BasePrice          Amount
	StakeProportion    Amount
	PassPercent        Amount
	ValidationEntryFee Amount
	RegistrationGrant  Amount
	PollQuorum         Amount
	StakedPeriod       int64
	ActivePeriod       int64
	ValidatePeriod     int64
	CommitPeriod       int64
	RevealPeriod       int64
}

// Ledger keeps the global supply totals both ledgers are audited against.
type Ledger struct {
	TokenSupply Amount
	TokenFree   Amount
	WeiPool     Amount
	RepSupply   Amount
	RepFree     Amount
}

// Account is a currency account: free balance plus the escrow sub-ledger.
type Account struct {
	Free     Amount
	Escrowed Amount
}

// RepAccount is a reputation account. Registration happens at most once.
type RepAccount struct {
	Balance    Amount
	Registered bool
}

type Project struct {
	ID               uint64
	Proposer         sdk.Address
	ProposerKind     StakeKind
	ProposerStake    Amount
	ProposerRefunded bool
	TargetCost       Amount
	RepCost          Amount
	DocHash          string
	StakingDeadline  int64
	NextDeadline     int64
	TaskHash         string
	State            ProjectState
	WeiBal           Amount
	TokensStaked     Amount
	RepStaked        Amount
	SubmissionCount  uint32
	ConflictCount    uint32
	TasksRevealed    bool
	TaskCount        uint32
	OpenPolls        uint32
	CreatedAt        int64
	Tx               string
}

// Stake is a per-project per-staker balance. WeiValue records the wei moved
// from the pool into the project on this staker's behalf.
type Stake struct {
	Tokens   Amount
	WeiValue Amount
	Rep      Amount
	Refunded bool
}

// Submission records one task-hash submission during the staked window.
type Submission struct {
	Hash      string
	Submitter sdk.Address
	At        int64
}

// Task is one revealed work item. Digest commits description+weighting.
type Task struct {
	Index      uint32
	Digest     string
	Desc       string
	Weighting  uint32
	RepPrice   Amount
	FundReward Amount
	Claimed    bool
	Worker     sdk.Address
	Claimable  bool
	Forfeited  bool
	Rewarded   bool
	Contested  bool
	PollID     uint64
}

// ValidationRecord keeps the ordered attester lists of one task. Position in
// the list drives reward weighting, so order is append-only.
type ValidationRecord struct {
	EntryFee Amount
	Aff      []sdk.Address
	Neg      []sdk.Address
	Refunded map[string]bool
	Settled  bool
	// AffWon is meaningful only once Settled.
	AffWon bool
}

type Poll struct {
	ID             uint64
	ProjectID      uint64
	TaskIndex      uint32
	CommitDeadline int64
	RevealDeadline int64
	Quorum         Amount
	Yes            Amount
	No             Amount
	Resolved       bool
	Passed         bool
}

// Commit is one voter's sealed ballot plus the vote weight it carries.
type Commit struct {
	Hash     string
	Votes    Amount
	Kind     StakeKind
	Revealed bool
	Released bool
}

// VoteCredit tracks one identity's quadratic vote budget per ledger kind.
// LockedUnits always equals Outstanding squared.
type VoteCredit struct {
	Outstanding Amount
	Committed   Amount
	LockedUnits Amount
}

// -----------------------------------------------------------------------------
// Operation argument structs (tinyjson codecs in payload_tinyjson.go)
// -----------------------------------------------------------------------------

//tinyjson:json
type MintArgs struct {
	Amount  Amount `json:"amount"`
	Payment Amount `json:"payment"`
}

//tinyjson:json
type SellArgs struct {
	Amount Amount `json:"amount"`
}

//tinyjson:json
type ProposeArgs struct {
	Cost            Amount `json:"cost"`
	StakingDeadline int64  `json:"staking_deadline"`
	DocHash         string `json:"doc_hash"`
	Kind            string `json:"kind"`
}

//tinyjson:json
type StakeArgs struct {
	ProjectID uint64 `json:"project_id"`
	Amount    Amount `json:"amount"`
	Kind      string `json:"kind"`
}

//tinyjson:json
type SubmitHashArgs struct {
	ProjectID uint64 `json:"project_id"`
	Hash      string `json:"hash"`
}

//tinyjson:json
type TaskSpec struct {
	Description string `json:"description"`
	Weighting   uint32 `json:"weighting"`
}

//tinyjson:json
type RevealArgs struct {
	ProjectID uint64     `json:"project_id"`
	Tasks     []TaskSpec `json:"tasks"`
}

//tinyjson:json
type ClaimArgs struct {
	ProjectID   uint64 `json:"project_id"`
	Index       uint32 `json:"index"`
	Description string `json:"description"`
	Weighting   uint32 `json:"weighting"`
}

//tinyjson:json
type ValidateArgs struct {
	ProjectID uint64 `json:"project_id"`
	Index     uint32 `json:"index"`
	Affirm    bool   `json:"affirm"`
}

//tinyjson:json
type PollCommitArgs struct {
	PollID uint64 `json:"poll_id"`
	Hash   string `json:"hash"`
	Votes  Amount `json:"votes"`
	Kind   string `json:"kind"`
}

//tinyjson:json
type PollRevealArgs struct {
	PollID uint64 `json:"poll_id"`
	Choice bool   `json:"choice"`
	Secret string `json:"secret"`
}

//tinyjson:json
type PollUnlockArgs struct {
	Votes Amount `json:"votes"`
	Kind  string `json:"kind"`
}

//tinyjson:json
type ProjectRefArgs struct {
	ProjectID uint64 `json:"project_id"`
}

//tinyjson:json
type TaskRefArgs struct {
	ProjectID uint64 `json:"project_id"`
	Index     uint32 `json:"index"`
}

//tinyjson:json
type PollRefArgs struct {
	PollID uint64 `json:"poll_id"`
}

//tinyjson:json
type InitArgs struct {
	BasePrice          Amount `json:"base_price"`
	StakeProportion    Amount `json:"stake_proportion"`
	PassPercent        Amount `json:"pass_percent"`
	ValidationEntryFee Amount `json:"validation_entry_fee"`
	RegistrationGrant  Amount `json:"registration_grant"`
	PollQuorum         Amount `json:"poll_quorum"`
	PeriodSeconds      int64  `json:"period_seconds"`
}

// parseStakeKind maps the wire string onto the enum, defaulting to token.
func parseStakeKind(s string) (StakeKind, error) {
	switch s {
	case "", "token":
		return StakeKindToken, nil
	case "rep", "reputation":
		return StakeKindReputation, nil
	default:
		return StakeKindToken, failf(ErrInvalidInput, "unknown stake kind %q", s)
	}
}
