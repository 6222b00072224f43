package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmesh/sdk"
)

func TestMintChargesCurveCost(t *testing.T) {
	c := newChain(t)

	// empty pool: first mint prices at double base (supply growth pct is 100%)
	cost, err := WeiRequired(c.host, 1000)
	require.NoError(t, err)
	assert.Equal(t, 2*FallbackBasePrice*1000, cost)

	res := c.must(alice, week(0, 1), OpCurrencyMint, MintArgs{Amount: 1000, Payment: cost})
	assert.Equal(t, UInt64ToString(uint64(cost)), res)

	acc := GetAccount(c.host, alice)
	assert.Equal(t, Amount(1000), acc.Free)
	l := GetLedger(c.host)
	assert.Equal(t, Amount(1000), l.TokenSupply)
	assert.Equal(t, cost, l.WeiPool)
	c.auditSupply(alice)
}

func TestMintRejectsShortPayment(t *testing.T) {
	c := newChain(t)
	cost, err := WeiRequired(c.host, 100)
	require.NoError(t, err)

	before := c.host.Snapshot()
	_, err = c.call(alice, week(0, 1), OpCurrencyMint, MintArgs{Amount: 100, Payment: cost - 1})
	require.ErrorIs(t, err, ErrInsufficientBalance)
	// a rejected operation leaves no trace
	assert.Equal(t, before, c.host.Snapshot())
}

func TestMintConsumesOnlyCost(t *testing.T) {
	c := newChain(t)
	cost, err := WeiRequired(c.host, 100)
	require.NoError(t, err)

	res := c.must(alice, week(0, 1), OpCurrencyMint, MintArgs{Amount: 100, Payment: cost * 3})
	assert.Equal(t, UInt64ToString(uint64(cost)), res)
	assert.Equal(t, cost, GetLedger(c.host).WeiPool)
}

// TestMintNeverQuotesBelowSpot drains pooled wei into a project so the curve
// formula alone would quote a negative cost, then checks minting still prices
// at spot and a zero-payment mint bounces.
func TestMintNeverQuotesBelowSpot(t *testing.T) {
	c := newChainCfg(t, InitArgs{BasePrice: 1})
	c.mintFor(alice, week(0, 1), 1000)
	c.must(alice, week(0, 2), OpProjectPropose, ProposeArgs{Cost: 4000, StakingDeadline: unix(1, 0)})
	c.mintFor(bob, week(0, 3), 1000)
	c.must(bob, week(0, 4), OpProjectStake, StakeArgs{ProjectID: 1, Amount: 1000})
	// pool 3000 against supply 2000: spot floors to 1, raw curve cost < 0
	require.Equal(t, Amount(1), c.price())

	cost, err := WeiRequired(c.host, 1)
	require.NoError(t, err)
	assert.Equal(t, Amount(1), cost)

	poolBefore := GetLedger(c.host).WeiPool
	_, err = c.call(carol, week(0, 5), OpCurrencyMint, MintArgs{Amount: 1, Payment: 0})
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, poolBefore, GetLedger(c.host).WeiPool)
	assert.Equal(t, Amount(0), GetAccount(c.host, carol).Free)

	c.must(carol, week(0, 6), OpCurrencyMint, MintArgs{Amount: 1, Payment: cost})
	assert.Equal(t, poolBefore+1, GetLedger(c.host).WeiPool)
	c.auditSupply(alice, bob, carol)
}

func TestMintRejectsOversizedAmount(t *testing.T) {
	c := newChain(t)
	_, err := c.call(alice, week(0, 1), OpCurrencyMint, MintArgs{Amount: MaxMintAmount + 1, Payment: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = WeiRequired(c.host, MaxMintAmount+1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSellRoundTripRestoresBalanceNotPrice(t *testing.T) {
	c := newChain(t)
	c.mintFor(alice, week(0, 1), 1000)
	c.mintFor(bob, week(0, 2), 500)

	priceBefore := c.price()
	c.must(bob, week(0, 3), OpCurrencySell, SellArgs{Amount: 500})

	// balance round-trips, price does not drop below the pre-sell spot
	assert.Equal(t, Amount(0), GetAccount(c.host, bob).Free)
	assert.GreaterOrEqual(t, c.price(), priceBefore)

	refund := 500 * priceBefore
	require.Len(t, c.host.Transfers, 1)
	assert.Equal(t, sdk.TransferRecord{To: bob, Amount: int64(refund), Asset: sdk.AssetWei}, c.host.Transfers[0])
	c.auditSupply(alice, bob)
}

func TestSellRejectsOverdraw(t *testing.T) {
	c := newChain(t)
	c.mintFor(alice, week(0, 1), 100)
	_, err := c.call(alice, week(0, 2), OpCurrencySell, SellArgs{Amount: 101})
	require.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestPriceOnlyRisesAcrossMints(t *testing.T) {
	c := newChain(t)
	last := c.price()
	for i := 1; i <= 5; i++ {
		c.mintFor(alice, week(0, int64(i)), 200)
		p := c.price()
		assert.GreaterOrEqual(t, p, last)
		last = p
	}
}

func TestLedgerPrivilegesRejectDirectCallers(t *testing.T) {
	c := newChain(t)
	c.mintFor(alice, week(0, 1), 100)

	c.setEnv(alice, week(0, 2))
	cc, err := newCtx(c.host)
	require.NoError(t, err)

	// alice is not the registry, every privileged movement must bounce
	require.ErrorIs(t, escrowTokens(cc, alice, alice, 10), ErrUnauthorized)
	require.ErrorIs(t, unescrowTokens(cc, alice, alice, 10), ErrUnauthorized)
	require.ErrorIs(t, burnEscrowed(cc, alice, alice, 10), ErrUnauthorized)
	require.ErrorIs(t, mintReward(cc, alice, alice, 10), ErrUnauthorized)
	require.ErrorIs(t, payWeiFromPool(cc, alice, alice, 10), ErrUnauthorized)
	pro := &Project{ID: 1, WeiBal: 100}
	require.ErrorIs(t, transferWeiTo(cc, alice, pro, 10), ErrUnauthorized)
	require.ErrorIs(t, returnWei(cc, alice, pro, 10), ErrUnauthorized)
}
