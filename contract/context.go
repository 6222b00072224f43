package contract

import (
	"time"

	"taskmesh/sdk"
)

// ctx bundles everything one operation touches: the (overlay) host, the env
// snapshot, the parsed block time and the deployment config. It lives for a
// single call, so helper functions never re-poke the host for env data.
type ctx struct {
	host sdk.Host
	env  sdk.Env
	now  int64
	cfg  *Config
}

func newCtx(host sdk.Host) (*ctx, error) {
	env := host.GetEnv()
	now, err := parseTimestamp(env.Timestamp)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(host)
	if err != nil {
		return nil, err
	}
	return &ctx{host: host, env: env, now: now, cfg: cfg}, nil
}

// sender returns the address of the current transaction sender.
func (c *ctx) sender() sdk.Address {
	return c.env.Sender.Address
}

// isRegistry reports whether the caller holds the ledger privileges. Only the
// registry itself may escrow, burn or move pooled wei.
func (c *ctx) isRegistry(caller sdk.Address) bool {
	return caller == c.cfg.Registry
}

// parseTimestamp accepts the RFC3339 chain timestamp, with the second-less
// variant some hosts emit as a fallback.
func parseTimestamp(ts string) (int64, error) {
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.Unix(), nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", ts)
	if err != nil {
		return 0, failf(ErrInvalidInput, "bad timestamp %q", ts)
	}
	return t.Unix(), nil
}
