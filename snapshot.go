package finplan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when an id does not match anything.
	ErrNotFound = errors.New("not found")
	// ErrSyncedEntry is returned on an attempt to edit a synced transaction.
	ErrSyncedEntry = errors.New("synced entries cannot be edited")
	// ErrInvalidContribution is returned for a contribution without account or date.
	ErrInvalidContribution = errors.New("invalid contribution")
)

// Snapshot is the state the engine computes from: accounts, synced
// transactions, manual contributions and goals.
//
// The engine never keeps a Snapshot: callers load it, invoke the engine and
// save it back after a change.
type Snapshot struct {
	Accounts      []Account            `json:"accounts"`
	Transactions  []SyncedTransaction  `json:"transactions"`
	Contributions []ManualContribution `json:"contributions"`
	Goals         []Goal               `json:"goals"`
}

// DecodeSnapshot reads a JSON snapshot.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	s := new(Snapshot)
	if err := json.NewDecoder(r).Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			// an empty file is an empty snapshot.
			return s, nil
		}
		return nil, fmt.Errorf("could not decode snapshot: %w", err)
	}
	return s, nil
}

// EncodeSnapshot writes s as indented JSON.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// LoadSnapshot loads the snapshot file at path. A missing file is reported
// with an error wrapping fs.ErrNotExist.
func LoadSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot file %q: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("could not load %q: %w", path, err)
	}
	return s, nil
}

// Save writes the snapshot to path, replacing it atomically.
func (s *Snapshot) Save(path string) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("could not create snapshot file: %w", err)
	}
	defer os.Remove(f.Name())

	if err := EncodeSnapshot(f, s); err != nil {
		f.Close()
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not write snapshot file: %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("could not save snapshot to %q: %w", path, err)
	}
	return nil
}

// Account returns the account with this id.
func (s *Snapshot) Account(id string) (Account, error) {
	if i := slices.IndexFunc(s.Accounts, func(a Account) bool { return a.ID == id }); i >= 0 {
		return s.Accounts[i], nil
	}
	return Account{}, fmt.Errorf("account %q: %w", id, ErrNotFound)
}

// Goal returns the goal with this id, explicit or synthetic.
func (s *Snapshot) Goal(id string) (Goal, error) {
	for _, g := range s.AllGoals() {
		if g.ID == id {
			return g, nil
		}
	}
	return Goal{}, fmt.Errorf("goal %q: %w", id, ErrNotFound)
}

// AllGoals returns the explicit goals followed by the synthetic ones.
func (s *Snapshot) AllGoals() []Goal { return AllGoals(s.Accounts, s.Goals) }

// Activity is the ledger of all accounts, most recent first.
func (s *Snapshot) Activity() []ActivityEntry {
	return MergeActivity(s.Transactions, s.Contributions, s.Accounts)
}

// AccountActivity is the ledger of one account, with running balances.
func (s *Snapshot) AccountActivity(id string) ([]ActivityEntry, error) {
	a, err := s.Account(id)
	if err != nil {
		return nil, err
	}
	return AccountActivity(a, s.Transactions, s.Contributions), nil
}

// Progress computes the progress of goal against the snapshot.
func (s *Snapshot) Progress(goal Goal) GoalProgress {
	return ComputeGoalProgress(goal, s.Accounts, s.Contributions, s.Transactions)
}

// AddContribution records a new manual contribution. It is given a fresh id
// unless it has one, and is stamped with now.
func (s *Snapshot) AddContribution(c ManualContribution, now time.Time) (ManualContribution, error) {
	if err := s.checkContribution(c); err != nil {
		return c, err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if slices.ContainsFunc(s.Contributions, func(x ManualContribution) bool { return x.ID == c.ID }) {
		return c, fmt.Errorf("contribution %q already exists", c.ID)
	}
	c.CreatedAt = now
	s.Contributions = append(s.Contributions, c)
	return c, nil
}

// UpdateContribution replaces the manual contribution with the same id. Its
// creation time is kept.
func (s *Snapshot) UpdateContribution(c ManualContribution) error {
	i, err := s.contributionIndex(c.ID)
	if err != nil {
		return err
	}
	c.ID = s.Contributions[i].ID
	if err := s.checkContribution(c); err != nil {
		return err
	}
	c.CreatedAt = s.Contributions[i].CreatedAt
	s.Contributions[i] = c
	return nil
}

// DeleteContribution removes a manual contribution.
func (s *Snapshot) DeleteContribution(id string) error {
	i, err := s.contributionIndex(id)
	if err != nil {
		return err
	}
	s.Contributions = slices.Delete(s.Contributions, i, i+1)
	return nil
}

// Contribution returns the manual contribution with this id. Activity entry
// ids are accepted too.
func (s *Snapshot) Contribution(id string) (ManualContribution, error) {
	i, err := s.contributionIndex(id)
	if err != nil {
		return ManualContribution{}, err
	}
	return s.Contributions[i], nil
}

// contributionIndex finds a contribution by its id or its activity entry id.
// Synced transactions are reported as ErrSyncedEntry.
func (s *Snapshot) contributionIndex(id string) (int, error) {
	if txID, ok := strings.CutPrefix(id, string(Linked)+"-"); ok && s.hasTransaction(txID) {
		return -1, fmt.Errorf("entry %q: %w", id, ErrSyncedEntry)
	}
	for _, candidate := range []string{id, strings.TrimPrefix(id, string(Manual)+"-")} {
		if i := slices.IndexFunc(s.Contributions, func(c ManualContribution) bool { return c.ID == candidate }); i >= 0 {
			return i, nil
		}
	}
	if s.hasTransaction(id) {
		return -1, fmt.Errorf("entry %q: %w", id, ErrSyncedEntry)
	}
	return -1, fmt.Errorf("contribution %q: %w", id, ErrNotFound)
}

func (s *Snapshot) hasTransaction(id string) bool {
	return slices.ContainsFunc(s.Transactions, func(tx SyncedTransaction) bool { return tx.ID == id })
}

func (s *Snapshot) checkContribution(c ManualContribution) error {
	if c.AccountID == "" {
		return fmt.Errorf("%w: missing account", ErrInvalidContribution)
	}
	if c.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidContribution)
	}
	if _, err := s.Account(c.AccountID); err != nil {
		return err
	}
	return nil
}

// AddGoal records a new goal. It is given a fresh id unless it has one, and
// is stamped with now.
func (s *Snapshot) AddGoal(g Goal, now time.Time) (Goal, error) {
	if strings.TrimSpace(g.Name) == "" {
		return g, errors.New("a goal needs a name")
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if slices.ContainsFunc(s.Goals, func(x Goal) bool { return x.ID == g.ID }) {
		return g, fmt.Errorf("goal %q already exists", g.ID)
	}
	g.Synthetic = false
	g.CreatedAt = now
	s.Goals = append(s.Goals, g)
	return g, nil
}

// MergeSynced upserts accounts and transactions coming from the aggregator.
// Manual contributions are left untouched, and so is the goal target of a
// known account. It returns the number of new accounts and new transactions.
func (s *Snapshot) MergeSynced(accounts []Account, txs []SyncedTransaction) (newAccounts, newTransactions int) {
	for _, a := range accounts {
		i := slices.IndexFunc(s.Accounts, func(x Account) bool { return x.ID == a.ID })
		if i < 0 {
			s.Accounts = append(s.Accounts, a)
			newAccounts++
			continue
		}
		if a.GoalTarget == nil {
			a.GoalTarget = s.Accounts[i].GoalTarget
		}
		s.Accounts[i] = a
	}
	for _, tx := range txs {
		i := slices.IndexFunc(s.Transactions, func(x SyncedTransaction) bool { return x.ID == tx.ID })
		if i < 0 {
			s.Transactions = append(s.Transactions, tx)
			newTransactions++
			continue
		}
		s.Transactions[i] = tx
	}
	return newAccounts, newTransactions
}

// Validate checks the consistency of the snapshot: unique ids, and complete
// transactions and contributions. All problems are reported at once.
func (s *Snapshot) Validate() error {
	var errs []error
	dup := func(kind string) func(id string) {
		seen := make(map[string]bool)
		return func(id string) {
			if id == "" {
				errs = append(errs, fmt.Errorf("%s without id", kind))
			} else if seen[id] {
				errs = append(errs, fmt.Errorf("duplicate %s id %q", kind, id))
			}
			seen[id] = true
		}
	}

	checkAccount := dup("account")
	for _, a := range s.Accounts {
		checkAccount(a.ID)
	}
	checkTx := dup("transaction")
	for _, tx := range s.Transactions {
		checkTx(tx.ID)
		if tx.Date.IsZero() {
			errs = append(errs, fmt.Errorf("transaction %q has no date", tx.ID))
		}
	}
	checkContrib := dup("contribution")
	for _, c := range s.Contributions {
		checkContrib(c.ID)
		if err := s.checkContribution(c); err != nil {
			errs = append(errs, fmt.Errorf("contribution %q: %w", c.ID, err))
		}
	}
	checkGoal := dup("goal")
	for _, g := range s.Goals {
		checkGoal(g.ID)
	}
	return errors.Join(errs...)
}
