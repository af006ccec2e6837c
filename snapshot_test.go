package finplan

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/etnz/finplan/date"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func newTestSnapshot() *Snapshot {
	return &Snapshot{
		Accounts: []Account{
			{ID: "A", Name: "Checking", Type: Checking, Balance: 1000, Linked: true},
			{ID: "S", Name: "Savings", Type: Savings, Balance: 250, GoalTarget: ptr(1000.0)},
		},
		Transactions: []SyncedTransaction{
			{ID: "t1", AccountID: "A", Amount: -50, Date: date.MustParse("2024-01-10"), Description: "COFFEE SHOP", Categories: []string{"Food and Drink"}},
		},
		Contributions: []ManualContribution{
			{ID: "c1", AccountID: "A", Amount: 200, Date: date.MustParse("2024-01-05"), Description: "bonus"},
		},
		Goals: []Goal{
			{ID: "g1", Name: "Vacation", Type: SavingsGoal, Target: 3000},
		},
	}
}

func TestSnapshot_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finplan.json")
	s := newTestSnapshot()
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	if diff := cmp.Diff(s, got, cmp.AllowUnexported(date.Date{})); diff != "" {
		t.Errorf("LoadSnapshot() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSnapshot_Missing(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadSnapshot(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestDecodeSnapshot(t *testing.T) {
	s, err := DecodeSnapshot(strings.NewReader(""))
	if err != nil || len(s.Accounts) != 0 {
		t.Errorf("DecodeSnapshot(empty) = %v, %v, want an empty snapshot", s, err)
	}
	in := `{"accounts":[{"id":"A","name":"Checking","type":"checking","balance":12.5}],
	"transactions":[{"id":"t","accountId":"A","amount":-1,"date":"2024-02-03T10:00:00Z"}]}`
	s, err = DecodeSnapshot(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	if s.Transactions[0].Date != date.New(2024, 2, 3) {
		t.Errorf("DecodeSnapshot() transaction date = %s, want 2024-02-03", s.Transactions[0].Date)
	}
	if _, err := DecodeSnapshot(strings.NewReader("{")); err == nil {
		t.Errorf("DecodeSnapshot(truncated) returned no error")
	}
}

func TestSnapshot_AddContribution(t *testing.T) {
	s := newTestSnapshot()
	now := time.Date(2024, 1, 20, 8, 0, 0, 0, time.UTC)

	c, err := s.AddContribution(ManualContribution{AccountID: "S", Amount: 100, Date: date.MustParse("2024-01-20"), GoalID: "g1"}, now)
	if err != nil {
		t.Fatalf("AddContribution() error = %v", err)
	}
	if c.ID == "" || !c.CreatedAt.Equal(now) {
		t.Errorf("AddContribution() = %+v, want an id and a creation time", c)
	}
	if len(s.Contributions) != 2 {
		t.Errorf("len(Contributions) = %d, want 2", len(s.Contributions))
	}

	testCases := []struct {
		name string
		c    ManualContribution
		want error
	}{
		{name: "no account", c: ManualContribution{Date: date.MustParse("2024-01-20")}, want: ErrInvalidContribution},
		{name: "no date", c: ManualContribution{AccountID: "A"}, want: ErrInvalidContribution},
		{name: "unknown account", c: ManualContribution{AccountID: "Z", Date: date.MustParse("2024-01-20")}, want: ErrNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.AddContribution(tc.c, now); !errors.Is(err, tc.want) {
				t.Errorf("AddContribution() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSnapshot_UpdateDeleteContribution(t *testing.T) {
	s := newTestSnapshot()
	created := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	s.Contributions[0].CreatedAt = created

	err := s.UpdateContribution(ManualContribution{ID: "manual-c1", AccountID: "A", Amount: 250, Date: date.MustParse("2024-01-06"), Description: "bigger bonus"})
	if err != nil {
		t.Fatalf("UpdateContribution() error = %v", err)
	}
	got := s.Contributions[0]
	if got.ID != "c1" || got.Amount != 250 || !got.CreatedAt.Equal(created) {
		t.Errorf("UpdateContribution() stored %+v, want id c1, amount 250 and the original creation time", got)
	}

	for _, id := range []string{"t1", "linked-t1"} {
		if err := s.UpdateContribution(ManualContribution{ID: id, AccountID: "A", Date: date.MustParse("2024-01-06")}); !errors.Is(err, ErrSyncedEntry) {
			t.Errorf("UpdateContribution(%q) error = %v, want ErrSyncedEntry", id, err)
		}
		if err := s.DeleteContribution(id); !errors.Is(err, ErrSyncedEntry) {
			t.Errorf("DeleteContribution(%q) error = %v, want ErrSyncedEntry", id, err)
		}
	}
	if err := s.DeleteContribution("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteContribution(nope) error = %v, want ErrNotFound", err)
	}
	if err := s.DeleteContribution("c1"); err != nil {
		t.Fatalf("DeleteContribution(c1) error = %v", err)
	}
	if len(s.Contributions) != 0 || len(s.Transactions) != 1 {
		t.Errorf("after delete: %d contributions, %d transactions, want 0 and 1", len(s.Contributions), len(s.Transactions))
	}
}

func TestSnapshot_Goals(t *testing.T) {
	s := newTestSnapshot()
	if _, err := s.Goal("account-S"); err != nil {
		t.Errorf("Goal(account-S) error = %v, want the synthetic goal", err)
	}
	if _, err := s.Goal("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Goal(nope) error = %v, want ErrNotFound", err)
	}

	g, err := s.AddGoal(Goal{Name: "House", Type: SavingsGoal, Target: 50000}, time.Now())
	if err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}
	if _, err := s.AddGoal(Goal{ID: g.ID, Name: "Again"}, time.Now()); err == nil {
		t.Errorf("AddGoal(duplicate id) returned no error")
	}
	if _, err := s.AddGoal(Goal{Type: SavingsGoal}, time.Now()); err == nil {
		t.Errorf("AddGoal(no name) returned no error")
	}
	if got := len(s.AllGoals()); got != 3 {
		t.Errorf("len(AllGoals()) = %d, want 3", got)
	}
}

func TestSnapshot_MergeSynced(t *testing.T) {
	s := newTestSnapshot()
	accounts := []Account{
		{ID: "S", Name: "Savings", Type: Savings, Balance: 300, Linked: true},
		{ID: "C", Name: "Visa", Type: CreditCard, Balance: 120, Linked: true},
	}
	txs := []SyncedTransaction{
		{ID: "t1", AccountID: "A", Amount: -55, Date: date.MustParse("2024-01-10")},
		{ID: "t2", AccountID: "C", Amount: -120, Date: date.MustParse("2024-01-11")},
	}
	newAccounts, newTxs := s.MergeSynced(accounts, txs)
	if newAccounts != 1 || newTxs != 1 {
		t.Errorf("MergeSynced() = %d, %d, want 1, 1", newAccounts, newTxs)
	}
	sav, _ := s.Account("S")
	if sav.Balance != 300 || sav.GoalTarget == nil || *sav.GoalTarget != 1000 {
		t.Errorf("MergeSynced() account S = %+v, want balance 300 and the goal target kept", sav)
	}
	if s.Transactions[0].Amount != -55 {
		t.Errorf("MergeSynced() did not update transaction t1")
	}
	if len(s.Contributions) != 1 {
		t.Errorf("MergeSynced() touched manual contributions")
	}
}

func TestSnapshot_Validate(t *testing.T) {
	if err := newTestSnapshot().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	s := newTestSnapshot()
	s.Accounts = append(s.Accounts, Account{ID: "A"})
	s.Transactions = append(s.Transactions, SyncedTransaction{ID: "t2"})
	s.Contributions = append(s.Contributions, ManualContribution{ID: "c2", AccountID: "ghost", Date: date.MustParse("2024-01-01")})
	err := s.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want errors")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Validate() = %v, want it to wrap ErrNotFound", err)
	}
	for _, want := range []string{`duplicate account id "A"`, `transaction "t2" has no date`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %v, want it to mention %s", err, want)
		}
	}
}

func TestSnapshot_AccountActivity(t *testing.T) {
	s := newTestSnapshot()
	got, err := s.AccountActivity("A")
	if err != nil {
		t.Fatalf("AccountActivity() error = %v", err)
	}
	var balances []float64
	for _, e := range got {
		balances = append(balances, *e.RunningBalance)
	}
	if diff := cmp.Diff([]float64{1000, 1050}, balances, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("AccountActivity() running balances mismatch (-want +got):\n%s", diff)
	}
	if _, err := s.AccountActivity("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("AccountActivity(nope) error = %v, want ErrNotFound", err)
	}
}

func TestSnapshot_GoalReports(t *testing.T) {
	s := newTestSnapshot()
	s.Goals = append(s.Goals,
		Goal{ID: "g2", Name: "Car", Type: SavingsGoal, Target: 100, Priority: 2},
		Goal{ID: "g3", Name: "Roof", Type: SavingsGoal, Target: 100, Priority: 1},
	)
	reports := s.GoalReports(date.MustParse("2024-02-01"))
	var ids []string
	for _, r := range reports {
		ids = append(ids, r.Goal.ID)
	}
	if diff := cmp.Diff([]string{"g3", "g2", "g1", "account-S"}, ids); diff != "" {
		t.Errorf("GoalReports() order mismatch (-want +got):\n%s", diff)
	}
	last := reports[3]
	if len(last.Accounts) != 1 || last.Progress.Current != 250 || last.Progress.Percentage != 25 {
		t.Errorf("GoalReports()[3] = %+v, want savings account progress 250 of 1000", last)
	}
}

func TestSnapshot_GoalActivity(t *testing.T) {
	s := newTestSnapshot()
	s.Contributions[0].GoalID = "g1"

	ids := func(entries []ActivityEntry) []string {
		var res []string
		for _, e := range entries {
			res = append(res, e.ID)
		}
		return res
	}
	testCases := []struct {
		goal Goal
		want []string
	}{
		{s.Goals[0], []string{"manual-c1"}},
		{Goal{ID: "checking", AccountID: "A"}, []string{"linked-t1", "manual-c1"}},
		{Goal{ID: "savings", AccountIDs: []string{"S", "nope"}}, nil},
	}
	for _, tc := range testCases {
		if diff := cmp.Diff(tc.want, ids(s.GoalActivity(tc.goal))); diff != "" {
			t.Errorf("GoalActivity(%s) mismatch (-want +got):\n%s", tc.goal.ID, diff)
		}
	}
}
