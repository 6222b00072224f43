package sdk

import "sort"

// InMemoryHost is the test/debug host: a plain map for state, captured logs
// and transfers, and a settable Env so tests control caller and timestamp per
// call.
type InMemoryHost struct {
	db        map[string]string
	Env       Env
	Logs      []string
	Transfers []TransferRecord
}

func NewInMemoryHost() *InMemoryHost {
	return &InMemoryHost{db: map[string]string{}}
}

func (h *InMemoryHost) Set(key, value string) { h.db[key] = value }

func (h *InMemoryHost) Get(key string) *string {
	v, ok := h.db[key]
	if !ok {
		return nil
	}
	return &v
}

func (h *InMemoryHost) Delete(key string) { delete(h.db, key) }

func (h *InMemoryHost) GetEnv() Env { return h.Env }

func (h *InMemoryHost) Log(msg string) { h.Logs = append(h.Logs, msg) }

func (h *InMemoryHost) Transfer(to Address, amount int64, asset Asset) {
	h.Transfers = append(h.Transfers, TransferRecord{To: to, Amount: amount, Asset: asset})
}

// Keys returns all stored keys sorted, used by determinism tests comparing
// two replays of the same op sequence.
func (h *InMemoryHost) Keys() []string {
	keys := make([]string, 0, len(h.db))
	for k := range h.db {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot copies the raw state map.
func (h *InMemoryHost) Snapshot() map[string]string {
	cp := make(map[string]string, len(h.db))
	for k, v := range h.db {
		cp[k] = v
	}
	return cp
}
