// Package sdk is the boundary between the deterministic contract core and
// whatever host executes it. The host supplies an ordered stream of calls,
// each carrying a sender identity and a block timestamp, plus a key/value
// state namespace scoped to the contract. Production hosts back State with a
// durable store; tests use the in-memory host from mock.go.
package sdk

type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

// Env is the per-call execution environment handed down by the ordering
// layer. Timestamp stays a string here; the contract parses it once per call.
type Env struct {
	ContractId  string `json:"contract_id"`
	TxId        string `json:"tx_id"`
	Index       int64  `json:"tx_index"`
	OpIndex     int64  `json:"tx_op_index"`
	BlockId     string `json:"block_id"`
	BlockHeight uint64 `json:"block_height"`
	Timestamp   string `json:"timestamp"`
	Sender      Sender `json:"sender"`
}

// State is the host kv namespace. Get returns nil when the key is missing.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// TransferRecord captures an outbound value transfer requested by the
// contract. The host performs it after the call's state mutations commit, so
// a callee can never observe half-updated ledgers.
type TransferRecord struct {
	To     Address
	Amount int64
	Asset  Asset
}

// Host is everything a contract call may touch.
type Host interface {
	State
	// GetEnv returns the environment of the call in flight.
	GetEnv() Env
	// Log appends a line to the replayable event log.
	Log(msg string)
	// Transfer queues an outbound transfer for post-commit dispatch.
	Transfer(to Address, amount int64, asset Asset)
}
