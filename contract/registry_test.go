package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmesh/sdk"
)

func TestInitAppliesFallbacks(t *testing.T) {
	c := newChain(t)
	cfg, err := loadConfig(c.host)
	require.NoError(t, err)
	assert.Equal(t, sdk.Address("registry:taskmesh"), cfg.Registry)
	assert.Equal(t, FallbackBasePrice, cfg.BasePrice)
	assert.Equal(t, FallbackStakeProportion, cfg.StakeProportion)
	assert.Equal(t, FallbackPassPercent, cfg.PassPercent)
	assert.Equal(t, FallbackValidationEntryFee, cfg.ValidationEntryFee)
	assert.Equal(t, FallbackRegistrationGrant, cfg.RegistrationGrant)
	assert.Equal(t, FallbackPollQuorum, cfg.PollQuorum)
	assert.Equal(t, FallbackPeriodSeconds, cfg.CommitPeriod)
}

func TestInitHonorsOverrides(t *testing.T) {
	c := newChainCfg(t, InitArgs{
		BasePrice:       5,
		StakeProportion: 10,
		PollQuorum:      66,
		PeriodSeconds:   3600,
	})
	cfg, err := loadConfig(c.host)
	require.NoError(t, err)
	assert.Equal(t, Amount(5), cfg.BasePrice)
	assert.Equal(t, Amount(10), cfg.StakeProportion)
	assert.Equal(t, Amount(66), cfg.PollQuorum)
	assert.Equal(t, int64(3600), cfg.CommitPeriod)
	// untouched fields still fall back
	assert.Equal(t, FallbackPassPercent, cfg.PassPercent)
}

func TestInitRunsOnce(t *testing.T) {
	c := newChain(t)
	c.setEnv(alice, week(0, 1))
	_, err := Init(c.host, "")
	require.ErrorIs(t, err, ErrAlreadyDone)
}

func TestApplyRequiresInit(t *testing.T) {
	host := sdk.NewInMemoryHost()
	host.Env = sdk.Env{ContractId: "taskmesh", Sender: sdk.Sender{Address: alice}, Timestamp: week(0, 1)}
	_, err := Apply(host, OpReputationRegister, "")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestApplyRejectsUnknownOp(t *testing.T) {
	c := newChain(t)
	c.setEnv(alice, week(0, 1))
	_, err := Apply(c.host, "currency_teleport", "{}")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestApplyRejectsMalformedPayload(t *testing.T) {
	c := newChain(t)
	c.setEnv(alice, week(0, 1))
	_, err := Apply(c.host, OpCurrencyMint, `{"amount": "not a number"`)
	require.ErrorIs(t, err, ErrInvalidInput)
}

// TestApplyIsAtomic drives an operation that fails halfway through its state
// writes and checks that nothing leaks out of the overlay.
func TestApplyIsAtomic(t *testing.T) {
	c := newChainCfg(t, InitArgs{BasePrice: 1})
	c.mintFor(bob, week(0, 1), 1000)
	before := c.host.Snapshot()
	logsBefore := len(c.host.Logs)

	// stake on a project that does not exist
	_, err := c.call(bob, week(0, 2), OpProjectStake, StakeArgs{ProjectID: 42, Amount: 100})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, c.host.Snapshot())
	assert.Equal(t, logsBefore, len(c.host.Logs))
	assert.Empty(t, c.host.Transfers)
}

func TestQueriesOnFreshState(t *testing.T) {
	c := newChain(t)
	assert.Empty(t, ListProjects(c.host))
	assert.Equal(t, Amount(0), GetLedger(c.host).TokenSupply)
	assert.Equal(t, Amount(0), GetAccount(c.host, alice).Free)
	assert.False(t, GetRepAccount(c.host, alice).Registered)
	_, err := GetProject(c.host, 1)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = GetPoll(c.host, 1)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = GetTask(c.host, 1, 0)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestProjectIndexKeepsCreationOrder(t *testing.T) {
	c := newChainCfg(t, InitArgs{BasePrice: 1})
	c.mintFor(alice, week(0, 1), 1000)
	c.must(alice, week(0, 2), OpProjectPropose, ProposeArgs{Cost: 2000, StakingDeadline: unix(1, 0)})
	c.must(alice, week(0, 3), OpProjectPropose, ProposeArgs{Cost: 2400, StakingDeadline: unix(1, 0)})
	assert.Equal(t, []uint64{1, 2}, ListProjects(c.host))
}
