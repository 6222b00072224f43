package contract

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskmesh/sdk"
)

const (
	alice = sdk.Address("user:alice")
	bob   = sdk.Address("user:bob")
	carol = sdk.Address("user:carol")
	dave  = sdk.Address("user:dave")
	eve   = sdk.Address("user:eve")
	frank = sdk.Address("user:frank")
)

// genesis is the block time every test starts from.
var genesis = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// week returns the genesis timestamp shifted by w weeks plus extra seconds,
// formatted the way the ordering layer stamps blocks.
func week(w int, extra int64) string {
	return genesis.Add(time.Duration(w)*7*24*time.Hour + time.Duration(extra)*time.Second).Format(time.RFC3339)
}

// unix is week as a raw second count, for deadline fields.
func unix(w int, extra int64) int64 {
	return genesis.Add(time.Duration(w)*7*24*time.Hour + time.Duration(extra)*time.Second).Unix()
}

// chain drives the contract the way the ordering layer would: one call at a
// time, with a controllable caller identity and block timestamp.
type chain struct {
	t    *testing.T
	host *sdk.InMemoryHost
	seq  int
}

func newChain(t *testing.T) *chain {
	t.Helper()
	c := &chain{t: t, host: sdk.NewInMemoryHost()}
	c.setEnv(alice, week(0, 0))
	_, err := Init(c.host, "")
	require.NoError(t, err)
	return c
}

// newChainCfg initializes with explicit config overrides.
func newChainCfg(t *testing.T, args InitArgs) *chain {
	t.Helper()
	c := &chain{t: t, host: sdk.NewInMemoryHost()}
	c.setEnv(alice, week(0, 0))
	b, err := json.Marshal(args)
	require.NoError(t, err)
	_, err = Init(c.host, string(b))
	require.NoError(t, err)
	return c
}

func (c *chain) setEnv(caller sdk.Address, ts string) {
	c.seq++
	c.host.Env = sdk.Env{
		ContractId:  "taskmesh",
		TxId:        fmt.Sprintf("tx-%04d", c.seq),
		BlockHeight: uint64(c.seq),
		Timestamp:   ts,
		Sender:      sdk.Sender{Address: caller},
	}
}

// call applies one operation as caller at the given block time. A nil args
// value sends an empty payload.
func (c *chain) call(caller sdk.Address, ts, op string, args interface{}) (string, error) {
	c.t.Helper()
	payload := ""
	if args != nil {
		b, err := json.Marshal(args)
		require.NoError(c.t, err)
		payload = string(b)
	}
	c.setEnv(caller, ts)
	return Apply(c.host, op, payload)
}

// must is call plus a NoError assertion.
func (c *chain) must(caller sdk.Address, ts, op string, args interface{}) string {
	c.t.Helper()
	res, err := c.call(caller, ts, op, args)
	require.NoError(c.t, err)
	return res
}

// mintFor buys exactly n tokens for addr at the current curve price.
func (c *chain) mintFor(addr sdk.Address, ts string, n Amount) {
	c.t.Helper()
	cost, err := WeiRequired(c.host, n)
	require.NoError(c.t, err)
	c.must(addr, ts, OpCurrencyMint, MintArgs{Amount: n, Payment: cost})
}

// price reads the spot price.
func (c *chain) price() Amount {
	c.t.Helper()
	p, err := CurrentPrice(c.host)
	require.NoError(c.t, err)
	return p
}

// auditSupply checks the cross-entity conservation invariant over the given
// addresses: total supply splits exactly into free, escrowed, staked and
// vote-locked units, for both ledgers.
func (c *chain) auditSupply(addrs ...sdk.Address) {
	c.t.Helper()
	l := GetLedger(c.host)
	var free, escrowed, staked, locked Amount
	var repFree, repLocked, repStaked Amount
	for _, a := range addrs {
		acc := GetAccount(c.host, a)
		free += acc.Free
		escrowed += acc.Escrowed
		locked += GetVoteCredit(c.host, StakeKindToken, a).LockedUnits
		repFree += GetRepAccount(c.host, a).Balance
		repLocked += GetVoteCredit(c.host, StakeKindReputation, a).LockedUnits
	}
	for _, id := range ListProjects(c.host) {
		pro, err := GetProject(c.host, id)
		require.NoError(c.t, err)
		if !pro.ProposerRefunded && pro.ProposerKind == StakeKindReputation {
			repStaked += pro.ProposerStake
		}
		for _, a := range addrs {
			st := GetStake(c.host, id, a)
			if st.Refunded {
				continue
			}
			staked += st.Tokens
			repStaked += st.Rep
		}
		// claimed tasks hold their workers' reputation until rewarded
		for idx := uint32(0); idx < pro.TaskCount; idx++ {
			task, err := GetTask(c.host, id, idx)
			require.NoError(c.t, err)
			if task.Claimed && !task.Rewarded {
				repStaked += task.RepPrice
			}
		}
	}
	require.Equal(c.t, l.TokenFree, free, "free supply drifted")
	require.Equal(c.t, l.TokenSupply, free+escrowed+staked+locked, "token supply drifted")
	require.Equal(c.t, l.RepFree, repFree, "free rep supply drifted")
	require.Equal(c.t, l.RepSupply, repFree+repStaked+repLocked, "rep supply drifted")
}
