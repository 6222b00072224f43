package contract

import "taskmesh/sdk"

////////////////////////////////////////////////////////////////////////////////
// CurrencyLedger: bonding curve mint/sell, escrow sub-ledger, pooled wei
////////////////////////////////////////////////////////////////////////////////

// priceFor derives the spot price from the pool/supply ratio, falling back to
// the base price while the quotient truncates to zero.
func priceFor(l *Ledger, cfg *Config) Amount {
	if l.TokenSupply > 0 {
		if p := l.WeiPool / l.TokenSupply; p > 0 {
			return p
		}
	}
	return cfg.BasePrice
}

// costFor prices minting n fresh tokens: the target price lifts the current
// price by the supply growth in tenths of a percent, and the cost is whatever
// wei the pool is missing to back the new supply at that price, but never
// less than the spot value of n.
func costFor(l *Ledger, cfg *Config, n Amount) Amount {
	newSupply := l.TokenSupply + n
	cp := priceFor(l, cfg)
	pct := (n*10_000/newSupply + 5) / 10
	targetPrice := (cp*1000 + cp*pct) / 1000
	cost := targetPrice*newSupply - l.WeiPool
	// staking drains pooled wei while spot floors low, which can push the
	// curve quote to zero or below; minting stays priced at spot minimum
	if floor := cp * n; cost < floor {
		cost = floor
	}
	return cost
}

// CurrentPrice is the read-side spot price query.
// Example payload: CurrentPrice(host)
func CurrentPrice(s sdk.State) (Amount, error) {
	cfg, err := loadConfig(s)
	if err != nil {
		return 0, err
	}
	return priceFor(loadLedger(s), cfg), nil
}

// WeiRequired quotes the wei cost of minting n tokens right now.
// Example payload: WeiRequired(host, 1000)
func WeiRequired(s sdk.State, n Amount) (Amount, error) {
	if n <= 0 || n > MaxMintAmount {
		return 0, failf(ErrInvalidInput, "amount must be 1..%d", MaxMintAmount)
	}
	cfg, err := loadConfig(s)
	if err != nil {
		return 0, err
	}
	return costFor(loadLedger(s), cfg, n), nil
}

// mintTokens credits the caller with n tokens against a declared wei budget.
// Only the curve cost is consumed; surplus budget is never retained.
func mintTokens(c *ctx, args *MintArgs) (string, error) {
	if args.Amount <= 0 || args.Amount > MaxMintAmount {
		return "", failf(ErrInvalidInput, "mint amount must be 1..%d", MaxMintAmount)
	}
	l := loadLedger(c.host)
	cost := costFor(l, c.cfg, args.Amount)
	if args.Payment < cost {
		return "", failf(ErrInsufficientBalance, "mint needs %d wei, offered %d", cost, args.Payment)
	}
	l.WeiPool += cost
	l.TokenSupply += args.Amount
	l.TokenFree += args.Amount
	acc := loadAccount(c.host, c.sender())
	acc.Free += args.Amount
	saveAccount(c.host, c.sender(), acc)
	saveLedger(c.host, l)
	emitMint(c, c.sender(), args.Amount, cost)
	return UInt64ToString(uint64(cost)), nil
}

// sellTokens redeems n free tokens at the spot price. The price never moves
// down on a sell; the pool just shrinks by the refunded wei.
func sellTokens(c *ctx, args *SellArgs) (string, error) {
	if args.Amount <= 0 {
		return "", failf(ErrInvalidInput, "sell amount must be positive")
	}
	caller := c.sender()
	acc := loadAccount(c.host, caller)
	if acc.Free < args.Amount {
		return "", failf(ErrInsufficientBalance, "sell %d with only %d free", args.Amount, acc.Free)
	}
	l := loadLedger(c.host)
	refund := args.Amount * priceFor(l, c.cfg)
	if refund > l.WeiPool {
		refund = l.WeiPool
	}
	acc.Free -= args.Amount
	l.TokenSupply -= args.Amount
	l.TokenFree -= args.Amount
	l.WeiPool -= refund
	saveAccount(c.host, caller, acc)
	saveLedger(c.host, l)
	emitSell(c, caller, args.Amount, refund)
	c.host.Transfer(caller, int64(refund), sdk.AssetWei)
	return UInt64ToString(uint64(refund)), nil
}

// -----------------------------------------------------------------------------
// Registry-privileged ledger movements
// -----------------------------------------------------------------------------

// escrowTokens moves tokens from an account's free balance into its escrow
// sub-ledger. Escrowed units stay in total supply but leave free supply.
func escrowTokens(c *ctx, caller, addr sdk.Address, amount Amount) error {
	if !c.isRegistry(caller) {
		return failf(ErrUnauthorized, "escrow is registry-only")
	}
	acc := loadAccount(c.host, addr)
	if acc.Free < amount {
		return failf(ErrInsufficientBalance, "escrow %d with only %d free", amount, acc.Free)
	}
	acc.Free -= amount
	acc.Escrowed += amount
	l := loadLedger(c.host)
	l.TokenFree -= amount
	saveAccount(c.host, addr, acc)
	saveLedger(c.host, l)
	return nil
}

// unescrowTokens reverses escrowTokens.
func unescrowTokens(c *ctx, caller, addr sdk.Address, amount Amount) error {
	if !c.isRegistry(caller) {
		return failf(ErrUnauthorized, "unescrow is registry-only")
	}
	acc := loadAccount(c.host, addr)
	if acc.Escrowed < amount {
		return failf(ErrInsufficientBalance, "unescrow %d with only %d escrowed", amount, acc.Escrowed)
	}
	acc.Escrowed -= amount
	acc.Free += amount
	l := loadLedger(c.host)
	l.TokenFree += amount
	saveAccount(c.host, addr, acc)
	saveLedger(c.host, l)
	return nil
}

// burnEscrowed destroys escrowed tokens for penalty settlement; the units
// leave total supply permanently.
func burnEscrowed(c *ctx, caller, addr sdk.Address, amount Amount) error {
	if !c.isRegistry(caller) {
		return failf(ErrUnauthorized, "burn is registry-only")
	}
	acc := loadAccount(c.host, addr)
	if acc.Escrowed < amount {
		return failf(ErrInsufficientBalance, "burn %d with only %d escrowed", amount, acc.Escrowed)
	}
	acc.Escrowed -= amount
	l := loadLedger(c.host)
	l.TokenSupply -= amount
	saveAccount(c.host, addr, acc)
	saveLedger(c.host, l)
	emitBurn(c, addr, amount)
	return nil
}

// lockFreeTokens pulls free tokens out of circulation for stakes and vote
// credits. The caller-side record keeps track of where they went.
func lockFreeTokens(c *ctx, caller, addr sdk.Address, amount Amount) error {
	if !c.isRegistry(caller) {
		return failf(ErrUnauthorized, "lock is registry-only")
	}
	acc := loadAccount(c.host, addr)
	if acc.Free < amount {
		return failf(ErrInsufficientBalance, "lock %d with only %d free", amount, acc.Free)
	}
	acc.Free -= amount
	l := loadLedger(c.host)
	l.TokenFree -= amount
	saveAccount(c.host, addr, acc)
	saveLedger(c.host, l)
	return nil
}

// releaseTokens returns previously locked tokens to an account's free balance.
func releaseTokens(c *ctx, caller, addr sdk.Address, amount Amount) error {
	if !c.isRegistry(caller) {
		return failf(ErrUnauthorized, "release is registry-only")
	}
	acc := loadAccount(c.host, addr)
	acc.Free += amount
	l := loadLedger(c.host)
	l.TokenFree += amount
	saveAccount(c.host, addr, acc)
	saveLedger(c.host, l)
	return nil
}

// mintReward creates fresh tokens outside the curve, used for the staker
// settlement bonus. Supply grows without touching the pool.
func mintReward(c *ctx, caller, addr sdk.Address, amount Amount) error {
	if !c.isRegistry(caller) {
		return failf(ErrUnauthorized, "reward mint is registry-only")
	}
	if amount == 0 {
		return nil
	}
	acc := loadAccount(c.host, addr)
	acc.Free += amount
	l := loadLedger(c.host)
	l.TokenSupply += amount
	l.TokenFree += amount
	saveAccount(c.host, addr, acc)
	saveLedger(c.host, l)
	return nil
}

// burnStaked destroys tokens that were locked outside any account, the
// slashed remainder of a partially returned stake.
func burnStaked(c *ctx, caller sdk.Address, amount Amount) error {
	if !c.isRegistry(caller) {
		return failf(ErrUnauthorized, "burn is registry-only")
	}
	if amount == 0 {
		return nil
	}
	l := loadLedger(c.host)
	l.TokenSupply -= amount
	saveLedger(c.host, l)
	return nil
}

// transferWeiTo moves pooled wei into a project's fund balance.
func transferWeiTo(c *ctx, caller sdk.Address, pro *Project, amount Amount) error {
	if !c.isRegistry(caller) {
		return failf(ErrUnauthorized, "pool transfer is registry-only")
	}
	l := loadLedger(c.host)
	if l.WeiPool < amount {
		return failf(ErrInsufficientBalance, "pool holds %d wei, need %d", l.WeiPool, amount)
	}
	l.WeiPool -= amount
	pro.WeiBal += amount
	saveLedger(c.host, l)
	return nil
}

// returnWei gives unused project wei back to the pool.
func returnWei(c *ctx, caller sdk.Address, pro *Project, amount Amount) error {
	if !c.isRegistry(caller) {
		return failf(ErrUnauthorized, "pool return is registry-only")
	}
	if pro.WeiBal < amount {
		return failf(ErrInsufficientBalance, "project holds %d wei, need %d", pro.WeiBal, amount)
	}
	pro.WeiBal -= amount
	l := loadLedger(c.host)
	l.WeiPool += amount
	saveLedger(c.host, l)
	return nil
}

// payWeiFromPool settles a wei payout (like the proposer fee refund) straight
// out of the pool via a host transfer, dispatched post-commit.
func payWeiFromPool(c *ctx, caller, to sdk.Address, amount Amount) error {
	if !c.isRegistry(caller) {
		return failf(ErrUnauthorized, "pool payout is registry-only")
	}
	l := loadLedger(c.host)
	if l.WeiPool < amount {
		return failf(ErrInsufficientBalance, "pool holds %d wei, need %d", l.WeiPool, amount)
	}
	l.WeiPool -= amount
	saveLedger(c.host, l)
	c.host.Transfer(to, int64(amount), sdk.AssetWei)
	return nil
}

// payWeiFromProject pays wei out of a project's fund balance.
func payWeiFromProject(c *ctx, caller sdk.Address, pro *Project, to sdk.Address, amount Amount) error {
	if !c.isRegistry(caller) {
		return failf(ErrUnauthorized, "project payout is registry-only")
	}
	if pro.WeiBal < amount {
		return failf(ErrInsufficientBalance, "project holds %d wei, need %d", pro.WeiBal, amount)
	}
	pro.WeiBal -= amount
	c.host.Transfer(to, int64(amount), sdk.AssetWei)
	return nil
}
