// Package store persists contract state in a badger database and keeps an
// append-only journal of every applied operation, so a fresh node can replay
// the sequence and land on byte-identical state.
package store

import (
	"encoding/binary"
	"encoding/json"

	badger "github.com/dgraph-io/badger/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"taskmesh/contract"
	"taskmesh/sdk"
)

const (
	statePrefix   = "s:"
	journalPrefix = "j:"
	journalNext   = "jn"
)

// Store owns the database handle. One Apply call maps onto exactly one badger
// transaction: either the operation's full effect plus its journal entry
// commit together, or nothing does.
type Store struct {
	db  *badger.DB
	log zerolog.Logger
}

// Entry is one journal line, enough to re-run the operation verbatim.
type Entry struct {
	Seq     uint64  `json:"seq"`
	Env     sdk.Env `json:"env"`
	Op      string  `json:"op"`
	Payload string  `json:"payload"`
	Result  string  `json:"result"`
}

// Open creates or reopens the database under dir.
func Open(dir string, log zerolog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open badger db at %s", dir)
	}
	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "close badger db")
}

// txnHost adapts a badger transaction to the contract host interface. Events
// and transfers are buffered so they surface only if the transaction commits.
type txnHost struct {
	txn       *badger.Txn
	env       sdk.Env
	logs      []string
	transfers []sdk.TransferRecord
}

func (h *txnHost) Set(key, value string) {
	_ = h.txn.Set([]byte(statePrefix+key), []byte(value))
}

func (h *txnHost) Get(key string) *string {
	item, err := h.txn.Get([]byte(statePrefix + key))
	if err != nil {
		return nil
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil
	}
	v := string(val)
	return &v
}

func (h *txnHost) Delete(key string) {
	_ = h.txn.Delete([]byte(statePrefix + key))
}

func (h *txnHost) GetEnv() sdk.Env { return h.env }

func (h *txnHost) Log(msg string) { h.logs = append(h.logs, msg) }

func (h *txnHost) Transfer(to sdk.Address, amount int64, asset sdk.Asset) {
	h.transfers = append(h.transfers, sdk.TransferRecord{To: to, Amount: amount, Asset: asset})
}

// Init runs the one-time contract initialization inside a transaction.
func (s *Store) Init(env sdk.Env, payload string) (string, error) {
	var res string
	err := s.db.Update(func(txn *badger.Txn) error {
		host := &txnHost{txn: txn, env: env}
		r, err := contract.Init(host, payload)
		if err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "contract init")
	}
	s.log.Info().Str("result", res).Msg("contract initialized")
	return res, nil
}

// Apply executes one operation and journals it atomically. Rejected
// operations leave neither state changes nor a journal entry behind.
func (s *Store) Apply(env sdk.Env, op, payload string) (string, error) {
	var res string
	var logs []string
	var transfers []sdk.TransferRecord
	err := s.db.Update(func(txn *badger.Txn) error {
		host := &txnHost{txn: txn, env: env}
		r, err := contract.Apply(host, op, payload)
		if err != nil {
			return err
		}
		seq, err := nextSeq(txn)
		if err != nil {
			return err
		}
		if err := appendEntry(txn, &Entry{Seq: seq, Env: env, Op: op, Payload: payload, Result: r}); err != nil {
			return err
		}
		res = r
		logs = host.logs
		transfers = host.transfers
		return nil
	})
	if err != nil {
		s.log.Debug().Err(err).Str("op", op).Msg("operation rejected")
		return "", err
	}
	for _, l := range logs {
		s.log.Info().Str("op", op).Str("tx", env.TxId).Msg(l)
	}
	for _, t := range transfers {
		s.log.Info().
			Str("to", t.To.String()).
			Int64("amount", t.Amount).
			Str("asset", t.Asset.String()).
			Msg("outbound transfer")
	}
	return res, nil
}

func nextSeq(txn *badger.Txn) (uint64, error) {
	seq := uint64(0)
	item, err := txn.Get([]byte(journalNext))
	if err == nil {
		val, err := item.ValueCopy(nil)
		if err != nil {
			return 0, errors.Wrap(err, "read journal cursor")
		}
		seq = binary.BigEndian.Uint64(val)
	} else if err != badger.ErrKeyNotFound {
		return 0, errors.Wrap(err, "read journal cursor")
	}
	var next [8]byte
	binary.BigEndian.PutUint64(next[:], seq+1)
	if err := txn.Set([]byte(journalNext), next[:]); err != nil {
		return 0, errors.Wrap(err, "bump journal cursor")
	}
	return seq, nil
}

func appendEntry(txn *badger.Txn, e *Entry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return errors.Wrap(err, "marshal journal entry")
	}
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], e.Seq)
	return errors.Wrap(txn.Set(append([]byte(journalPrefix), key[:]...), b), "append journal entry")
}

// Journal streams every journal entry in sequence order.
func (s *Store) Journal(fn func(*Entry) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(journalPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return errors.Wrap(err, "read journal entry")
			}
			var e Entry
			if err := json.Unmarshal(val, &e); err != nil {
				return errors.Wrap(err, "decode journal entry")
			}
			if err := fn(&e); err != nil {
				return err
			}
		}
		return nil
	})
}

// Dump snapshots the full contract state namespace, used by the replay
// determinism check.
func (s *Store) Dump() (map[string]string, error) {
	out := map[string]string{}
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(statePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			val, err := item.ValueCopy(nil)
			if err != nil {
				return errors.Wrap(err, "read state entry")
			}
			out[string(item.Key()[len(prefix):])] = string(val)
		}
		return nil
	})
	return out, err
}

// View runs a read-only function against a host snapshot, for queries like
// contract.CurrentPrice.
func (s *Store) View(fn func(host sdk.Host) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		return fn(&txnHost{txn: txn})
	})
}
