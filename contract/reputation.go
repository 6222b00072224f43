package contract

import "taskmesh/sdk"

////////////////////////////////////////////////////////////////////////////////
// ReputationLedger: one-time grant, non-transferable staking credit
////////////////////////////////////////////////////////////////////////////////

// registerReputation grants the fixed credit exactly once per identity.
func registerReputation(c *ctx) (string, error) {
	caller := c.sender()
	acc := loadRepAccount(c.host, caller)
	if acc.Registered {
		return "", failf(ErrAlreadyDone, "%s already registered", caller)
	}
	acc.Registered = true
	acc.Balance += c.cfg.RegistrationGrant
	l := loadLedger(c.host)
	l.RepSupply += c.cfg.RegistrationGrant
	l.RepFree += c.cfg.RegistrationGrant
	saveRepAccount(c.host, caller, acc)
	saveLedger(c.host, l)
	emitRegister(c, caller, c.cfg.RegistrationGrant)
	return UInt64ToString(uint64(c.cfg.RegistrationGrant)), nil
}

// lockRep pulls free reputation out of circulation for stakes, task claims
// and vote credits.
func lockRep(c *ctx, caller, addr sdk.Address, amount Amount) error {
	if !c.isRegistry(caller) {
		return failf(ErrUnauthorized, "rep lock is registry-only")
	}
	acc := loadRepAccount(c.host, addr)
	if !acc.Registered {
		return failf(ErrInsufficientReputation, "%s is not registered", addr)
	}
	if acc.Balance < amount {
		return failf(ErrInsufficientReputation, "lock %d with only %d free", amount, acc.Balance)
	}
	acc.Balance -= amount
	l := loadLedger(c.host)
	l.RepFree -= amount
	saveRepAccount(c.host, addr, acc)
	saveLedger(c.host, l)
	return nil
}

// releaseRep returns previously locked reputation.
func releaseRep(c *ctx, caller, addr sdk.Address, amount Amount) error {
	if !c.isRegistry(caller) {
		return failf(ErrUnauthorized, "rep release is registry-only")
	}
	acc := loadRepAccount(c.host, addr)
	acc.Balance += amount
	l := loadLedger(c.host)
	l.RepFree += amount
	saveRepAccount(c.host, addr, acc)
	saveLedger(c.host, l)
	return nil
}

// mintRepReward creates fresh reputation for the staker settlement bonus.
func mintRepReward(c *ctx, caller, addr sdk.Address, amount Amount) error {
	if !c.isRegistry(caller) {
		return failf(ErrUnauthorized, "rep reward mint is registry-only")
	}
	if amount == 0 {
		return nil
	}
	acc := loadRepAccount(c.host, addr)
	acc.Balance += amount
	l := loadLedger(c.host)
	l.RepSupply += amount
	l.RepFree += amount
	saveRepAccount(c.host, addr, acc)
	saveLedger(c.host, l)
	return nil
}

// burnRep destroys locked reputation, mirroring the currency penalty path.
func burnRep(c *ctx, caller sdk.Address, amount Amount) error {
	if !c.isRegistry(caller) {
		return failf(ErrUnauthorized, "rep burn is registry-only")
	}
	l := loadLedger(c.host)
	l.RepSupply -= amount
	saveLedger(c.host, l)
	return nil
}
