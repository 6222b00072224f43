package contract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmesh/sdk"
)

func TestPositionalWeightsSchedule(t *testing.T) {
	for n := 1; n <= MaxAttestersPerSide; n++ {
		ws := positionalWeights(n)
		require.Len(t, ws, n)
		sum := Amount(0)
		for i, w := range ws {
			require.Positive(t, w, "n=%d i=%d", n, i)
			if i > 0 {
				require.Greater(t, ws[i-1], w, "n=%d i=%d", n, i)
			}
			sum += w
		}
		require.Equal(t, PositionalWeightTotal, sum, "n=%d", n)
	}
	assert.Nil(t, positionalWeights(0))
}

func TestPositionalWeightsRemainderLandsOnFirst(t *testing.T) {
	// n=3: den 6, raw shares 5000/3333/1666 sum 9999, first absorbs the 1
	assert.Equal(t, []Amount{5001, 3333, 1666}, positionalWeights(3))
}

// seedValidating plants a project in Validating with one claimed task,
// sidestepping the staking phases.
func seedValidating(c *chain) {
	pro := &Project{
		ID:           1,
		Proposer:     alice,
		TargetCost:   4000,
		State:        ProjectValidating,
		NextDeadline: unix(2, 0),
		TaskCount:    1,
	}
	saveProject(c.host, pro)
	addProjectToIndex(c.host, pro.ID)
	setCount(c.host, ProjectsCount, 1)
	saveTask(c.host, 1, &Task{
		Index:      0,
		Digest:     taskDigest("carve the totem", 100),
		Desc:       "carve the totem",
		Weighting:  100,
		FundReward: 4000,
		Claimed:    true,
		Worker:     dave,
	})
}

func TestValidateCollectsEntryFees(t *testing.T) {
	c := newChainCfg(t, InitArgs{BasePrice: 1})
	seedValidating(c)
	c.mintFor(eve, week(0, 1), 100)
	c.mintFor(frank, week(0, 2), 100)

	c.must(eve, week(0, 3), OpTaskValidate, ValidateArgs{ProjectID: 1, Index: 0, Affirm: true})
	c.must(frank, week(0, 4), OpTaskValidate, ValidateArgs{ProjectID: 1, Index: 0, Affirm: false})
	assert.Equal(t, FallbackValidationEntryFee, GetAccount(c.host, eve).Escrowed)
	assert.Equal(t, FallbackValidationEntryFee, GetAccount(c.host, frank).Escrowed)

	vr := loadValidation(c.host, 1, 0)
	require.NotNil(t, vr)
	assert.Equal(t, []sdk.Address{eve}, vr.Aff)
	assert.Equal(t, []sdk.Address{frank}, vr.Neg)

	// one side per attester, ever
	_, err := c.call(eve, week(0, 5), OpTaskValidate, ValidateArgs{ProjectID: 1, Index: 0, Affirm: false})
	require.ErrorIs(t, err, ErrAlreadyDone)
	c.auditSupply(eve, frank)
}

func TestValidateRequiresFunds(t *testing.T) {
	c := newChainCfg(t, InitArgs{BasePrice: 1})
	seedValidating(c)
	// bob holds no tokens for the fee
	_, err := c.call(bob, week(0, 1), OpTaskValidate, ValidateArgs{ProjectID: 1, Index: 0, Affirm: true})
	require.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestValidateRejectsUnclaimedTask(t *testing.T) {
	c := newChainCfg(t, InitArgs{BasePrice: 1})
	seedValidating(c)
	saveTask(c.host, 1, &Task{Index: 0, Claimed: false})
	c.mintFor(eve, week(0, 1), 100)
	_, err := c.call(eve, week(0, 2), OpTaskValidate, ValidateArgs{ProjectID: 1, Index: 0, Affirm: true})
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestValidateRejectsWrongState(t *testing.T) {
	c := newChainCfg(t, InitArgs{BasePrice: 1})
	seedValidating(c)
	pro, err := GetProject(c.host, 1)
	require.NoError(t, err)
	pro.State = ProjectActive
	saveProject(c.host, pro)
	c.mintFor(eve, week(0, 1), 100)
	_, err = c.call(eve, week(0, 2), OpTaskValidate, ValidateArgs{ProjectID: 1, Index: 0, Affirm: true})
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestValidateCapsAttesterList(t *testing.T) {
	c := newChainCfg(t, InitArgs{BasePrice: 1})
	seedValidating(c)
	vr := &ValidationRecord{EntryFee: FallbackValidationEntryFee, Refunded: map[string]bool{}}
	for i := 0; i < MaxAttestersPerSide; i++ {
		vr.Aff = append(vr.Aff, sdk.Address(fmt.Sprintf("user:att-%03d", i)))
	}
	saveValidation(c.host, 1, 0, vr)
	c.mintFor(eve, week(0, 1), 100)
	_, err := c.call(eve, week(0, 2), OpTaskValidate, ValidateArgs{ProjectID: 1, Index: 0, Affirm: false})
	require.ErrorIs(t, err, ErrInvalidInput)
}

// TestForfeitedRewardSplitsPositionally runs three deniers against one
// affirmer and checks the forfeited fund reward lands by list position.
func TestForfeitedRewardSplitsPositionally(t *testing.T) {
	c := newChainCfg(t, InitArgs{BasePrice: 1})
	seedValidating(c)
	pro, err := GetProject(c.host, 1)
	require.NoError(t, err)
	pro.State = ProjectComplete
	pro.WeiBal = 4000
	saveProject(c.host, pro)
	saveValidation(c.host, 1, 0, &ValidationRecord{
		EntryFee: FallbackValidationEntryFee,
		Aff:      []sdk.Address{eve},
		Neg:      []sdk.Address{bob, carol, frank},
		Refunded: map[string]bool{},
		Settled:  true,
		AffWon:   false,
	})
	task, err := GetTask(c.host, 1, 0)
	require.NoError(t, err)
	task.Forfeited = true
	saveTask(c.host, 1, task)
	for _, a := range []sdk.Address{eve, bob, carol, frank} {
		seedEscrow(c, a, FallbackValidationEntryFee)
	}

	// weights for 3 positions: 5001 / 3333 / 1666 basis points of 4000 wei
	res := c.must(bob, week(0, 3), OpRewardValidator, TaskRefArgs{ProjectID: 1, Index: 0})
	assert.Equal(t, UInt64ToString(uint64(FallbackValidationEntryFee+2000)), res)
	res = c.must(carol, week(0, 4), OpRewardValidator, TaskRefArgs{ProjectID: 1, Index: 0})
	assert.Equal(t, UInt64ToString(uint64(FallbackValidationEntryFee+1333)), res)
	res = c.must(frank, week(0, 5), OpRewardValidator, TaskRefArgs{ProjectID: 1, Index: 0})
	assert.Equal(t, UInt64ToString(uint64(FallbackValidationEntryFee+666)), res)

	// eve lost: half the fee back, half burned
	res = c.must(eve, week(0, 6), OpRewardValidator, TaskRefArgs{ProjectID: 1, Index: 0})
	assert.Equal(t, "10", res)

	pro, _ = GetProject(c.host, 1)
	assert.Equal(t, Amount(4000-2000-1333-666), pro.WeiBal)
	_, err = c.call(dave, week(0, 7), OpRewardValidator, TaskRefArgs{ProjectID: 1, Index: 0})
	require.ErrorIs(t, err, ErrNotFound)
}

// seedEscrow mints the fee straight into escrow for fixtures that skip the
// validate call.
func seedEscrow(c *chain, addr sdk.Address, fee Amount) {
	acc := loadAccount(c.host, addr)
	acc.Escrowed += fee
	saveAccount(c.host, addr, acc)
	l := loadLedger(c.host)
	l.TokenSupply += fee
	saveLedger(c.host, l)
}
