package contract

import (
	"encoding/json"

	"taskmesh/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Contract State Persistence helpers
////////////////////////////////////////////////////////////////////////////////

func saveConfig(s sdk.State, cfg *Config) {
	b, _ := json.Marshal(cfg)
	s.Set(configKey, string(b))
}

func loadConfig(s sdk.State) (*Config, error) {
	ptr := s.Get(configKey)
	if ptr == nil {
		return nil, failf(ErrInvalidState, "contract not initialized")
	}
	var cfg Config
	if err := json.Unmarshal([]byte(*ptr), &cfg); err != nil {
		return nil, failf(ErrInvalidState, "corrupt config: %v", err)
	}
	return &cfg, nil
}

func saveLedger(s sdk.State, l *Ledger) {
	b, _ := json.Marshal(l)
	s.Set(ledgerKey, string(b))
}

func loadLedger(s sdk.State) *Ledger {
	ptr := s.Get(ledgerKey)
	if ptr == nil {
		return &Ledger{}
	}
	var l Ledger
	if err := json.Unmarshal([]byte(*ptr), &l); err != nil {
		return &Ledger{}
	}
	return &l
}

func saveAccount(s sdk.State, addr sdk.Address, acc *Account) {
	b, _ := json.Marshal(acc)
	s.Set(accountKey(addr), string(b))
}

// loadAccount creates accounts implicitly on first touch; they are never deleted.
func loadAccount(s sdk.State, addr sdk.Address) *Account {
	ptr := s.Get(accountKey(addr))
	if ptr == nil {
		return &Account{}
	}
	var acc Account
	if err := json.Unmarshal([]byte(*ptr), &acc); err != nil {
		return &Account{}
	}
	return &acc
}

func saveRepAccount(s sdk.State, addr sdk.Address, acc *RepAccount) {
	b, _ := json.Marshal(acc)
	s.Set(repAccountKey(addr), string(b))
}

func loadRepAccount(s sdk.State, addr sdk.Address) *RepAccount {
	ptr := s.Get(repAccountKey(addr))
	if ptr == nil {
		return &RepAccount{}
	}
	var acc RepAccount
	if err := json.Unmarshal([]byte(*ptr), &acc); err != nil {
		return &RepAccount{}
	}
	return &acc
}

func saveProject(s sdk.State, pro *Project) {
	b, _ := json.Marshal(pro)
	s.Set(projectKey(pro.ID), string(b))
}

func loadProject(s sdk.State, id uint64) (*Project, error) {
	ptr := s.Get(projectKey(id))
	if ptr == nil {
		return nil, failf(ErrNotFound, "project %d", id)
	}
	var pro Project
	if err := json.Unmarshal([]byte(*ptr), &pro); err != nil {
		return nil, failf(ErrNotFound, "corrupt project %d: %v", id, err)
	}
	return &pro, nil
}

func saveStake(s sdk.State, projectID uint64, addr sdk.Address, st *Stake) {
	b, _ := json.Marshal(st)
	s.Set(stakeKey(projectID, addr), string(b))
}

func loadStake(s sdk.State, projectID uint64, addr sdk.Address) *Stake {
	ptr := s.Get(stakeKey(projectID, addr))
	if ptr == nil {
		return &Stake{}
	}
	var st Stake
	if err := json.Unmarshal([]byte(*ptr), &st); err != nil {
		return &Stake{}
	}
	return &st
}

func saveSubmission(s sdk.State, projectID uint64, seq uint32, sub *Submission) {
	b, _ := json.Marshal(sub)
	s.Set(submissionKey(projectID, seq), string(b))
}

func loadSubmission(s sdk.State, projectID uint64, seq uint32) *Submission {
	ptr := s.Get(submissionKey(projectID, seq))
	if ptr == nil {
		return nil
	}
	var sub Submission
	if err := json.Unmarshal([]byte(*ptr), &sub); err != nil {
		return nil
	}
	return &sub
}

func saveTask(s sdk.State, projectID uint64, t *Task) {
	b, _ := json.Marshal(t)
	s.Set(taskKey(projectID, t.Index), string(b))
}

func loadTask(s sdk.State, projectID uint64, idx uint32) (*Task, error) {
	ptr := s.Get(taskKey(projectID, idx))
	if ptr == nil {
		return nil, failf(ErrNotFound, "task %d of project %d", idx, projectID)
	}
	var t Task
	if err := json.Unmarshal([]byte(*ptr), &t); err != nil {
		return nil, failf(ErrNotFound, "corrupt task %d of project %d: %v", idx, projectID, err)
	}
	return &t, nil
}

func saveValidation(s sdk.State, projectID uint64, idx uint32, v *ValidationRecord) {
	b, _ := json.Marshal(v)
	s.Set(validationKey(projectID, idx), string(b))
}

// loadValidation returns nil when no attestation touched the task yet;
// records are created lazily on the first one.
func loadValidation(s sdk.State, projectID uint64, idx uint32) *ValidationRecord {
	ptr := s.Get(validationKey(projectID, idx))
	if ptr == nil {
		return nil
	}
	var v ValidationRecord
	if err := json.Unmarshal([]byte(*ptr), &v); err != nil {
		return nil
	}
	return &v
}

func savePoll(s sdk.State, p *Poll) {
	b, _ := json.Marshal(p)
	s.Set(pollKey(p.ID), string(b))
}

func loadPoll(s sdk.State, id uint64) (*Poll, error) {
	ptr := s.Get(pollKey(id))
	if ptr == nil {
		return nil, failf(ErrNotFound, "poll %d", id)
	}
	var p Poll
	if err := json.Unmarshal([]byte(*ptr), &p); err != nil {
		return nil, failf(ErrNotFound, "corrupt poll %d: %v", id, err)
	}
	return &p, nil
}

func saveCommit(s sdk.State, pollID uint64, addr sdk.Address, cm *Commit) {
	b, _ := json.Marshal(cm)
	s.Set(pollCommitKey(pollID, addr), string(b))
}

func loadCommit(s sdk.State, pollID uint64, addr sdk.Address) *Commit {
	ptr := s.Get(pollCommitKey(pollID, addr))
	if ptr == nil {
		return nil
	}
	var cm Commit
	if err := json.Unmarshal([]byte(*ptr), &cm); err != nil {
		return nil
	}
	return &cm
}

func saveVoteCredit(s sdk.State, kind StakeKind, addr sdk.Address, vc *VoteCredit) {
	b, _ := json.Marshal(vc)
	s.Set(voteCreditKey(kind, addr), string(b))
}

func loadVoteCredit(s sdk.State, kind StakeKind, addr sdk.Address) *VoteCredit {
	ptr := s.Get(voteCreditKey(kind, addr))
	if ptr == nil {
		return &VoteCredit{}
	}
	var vc VoteCredit
	if err := json.Unmarshal([]byte(*ptr), &vc); err != nil {
		return &VoteCredit{}
	}
	return &vc
}

func addProjectToIndex(s sdk.State, id uint64) {
	ptr := s.Get(projectsIndexKey)
	var ids []uint64
	if ptr != nil {
		json.Unmarshal([]byte(*ptr), &ids)
	}
	// prevent duplicates
	for _, v := range ids {
		if v == id {
			return
		}
	}
	ids = append(ids, id)
	b, _ := json.Marshal(ids)
	s.Set(projectsIndexKey, string(b))
}

func listAllProjectIDs(s sdk.State) []uint64 {
	ptr := s.Get(projectsIndexKey)
	if ptr == nil {
		return []uint64{}
	}
	var ids []uint64
	if err := json.Unmarshal([]byte(*ptr), &ids); err != nil {
		return []uint64{}
	}
	return ids
}
