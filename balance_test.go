package finplan

import (
	"testing"

	"github.com/etnz/finplan/date"
)

func TestAccountBalance(t *testing.T) {
	txs := []SyncedTransaction{{Amount: -50.25}, {Amount: 20.1}}
	contribs := []ManualContribution{{Amount: 0.05}}

	if got := AccountBalance(nil, nil, 123.45); got != 123.45 {
		t.Errorf("AccountBalance(nil, nil, 123.45) = %v, want 123.45", got)
	}
	got := AccountBalance(txs, contribs, 100)
	if got != 69.9 {
		t.Errorf("AccountBalance() = %v, want 69.9", got)
	}
	if again := AccountBalance(txs, contribs, 100); again != got {
		t.Errorf("AccountBalance() = %v, then %v", got, again)
	}
}

func TestRunningBalances(t *testing.T) {
	day := date.MustParse("2024-06-01")
	entries := []ActivityEntry{
		{ID: "4", Date: day, Amount: -20},
		{ID: "3", Date: day.Add(-1), Amount: 0.1},
		{ID: "2", Date: day.Add(-2), Amount: 0.2},
		{ID: "1", Date: day.Add(-3), Amount: 3.5},
	}

	got := RunningBalances(entries, 100)
	want := []float64{100, 120, 119.9, 119.7}
	if len(got) != len(want) {
		t.Fatalf("len(RunningBalances()) = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].RunningBalance == nil {
			t.Fatalf("RunningBalances()[%d].RunningBalance is nil", i)
		}
		if *got[i].RunningBalance != w {
			t.Errorf("RunningBalances()[%d].RunningBalance = %v, want %v", i, *got[i].RunningBalance, w)
		}
		if got[i].ID != entries[i].ID {
			t.Errorf("RunningBalances()[%d].ID = %q, want %q", i, got[i].ID, entries[i].ID)
		}
	}
	for i, e := range entries {
		if e.RunningBalance != nil {
			t.Errorf("RunningBalances() modified its input at %d", i)
		}
	}
}

func TestRunningBalances_Closure(t *testing.T) {
	testCases := []struct {
		name    string
		amounts []float64
		current float64
	}{
		{name: "single", amounts: []float64{42}, current: 0},
		{name: "mixed signs", amounts: []float64{-0.1, 0.2, -0.3, 1e6, -999.99}, current: 1234.56},
		{name: "negative balance", amounts: []float64{10, 20, 30}, current: -60.01},
		{name: "thirds", amounts: []float64{0.33, 0.33, 0.34}, current: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var entries []ActivityEntry
			for _, a := range tc.amounts {
				entries = append(entries, ActivityEntry{Amount: a})
			}
			got := RunningBalances(entries, tc.current)
			if first := *got[0].RunningBalance; first != tc.current {
				t.Errorf("newest running balance = %v, want %v", first, tc.current)
			}

			// oldest = current - sum + oldest amount, computed exactly.
			oldest := dec(tc.current)
			for _, a := range tc.amounts {
				oldest = oldest.Sub(dec(a))
			}
			want := fl(oldest.Add(dec(tc.amounts[len(tc.amounts)-1])))
			if last := *got[len(got)-1].RunningBalance; last != want {
				t.Errorf("oldest running balance = %v, want %v", last, want)
			}
		})
	}
}

func TestRunningBalances_Empty(t *testing.T) {
	if got := RunningBalances(nil, 10); len(got) != 0 {
		t.Errorf("RunningBalances(nil) = %v, want empty", got)
	}
}

func TestAccountActivity(t *testing.T) {
	account := Account{ID: "A", Name: "Checking", Type: Checking, Balance: 1000}
	txs := []SyncedTransaction{
		{ID: "t1", AccountID: "A", Amount: -50, Date: date.MustParse("2024-01-10"), Description: "COFFEE SHOP"},
	}
	contribs := []ManualContribution{
		{ID: "c1", AccountID: "A", Amount: 200, Date: date.MustParse("2024-01-05"), Description: "bonus"},
	}

	got := AccountActivity(account, txs, contribs)
	if len(got) != 2 {
		t.Fatalf("len(AccountActivity()) = %d, want 2", len(got))
	}
	if got[0].Date != date.MustParse("2024-01-10") || got[1].Date != date.MustParse("2024-01-05") {
		t.Errorf("AccountActivity() dates = [%s %s], want [2024-01-10 2024-01-05]", got[0].Date, got[1].Date)
	}
	if *got[0].RunningBalance != 1000 || *got[1].RunningBalance != 1050 {
		t.Errorf("AccountActivity() running balances = [%v %v], want [1000 1050]", *got[0].RunningBalance, *got[1].RunningBalance)
	}
	if start := StartingBalance(account, txs, contribs); start != 850 {
		t.Errorf("StartingBalance() = %v, want 850", start)
	}
}

func TestReconcile(t *testing.T) {
	a := Account{ID: "A", Name: "Savings", Type: Savings, Balance: 1500.3}
	txs := []SyncedTransaction{
		{ID: "t1", AccountID: "A", Amount: 200.1},
		{ID: "t2", AccountID: "A", Amount: -0.2},
		{ID: "t3", AccountID: "B", Amount: 999},
	}
	contribs := []ManualContribution{
		{ID: "c1", AccountID: "A", Amount: 300},
		{ID: "c2", AccountID: "B", Amount: 10},
	}

	got := Reconcile(a, txs, contribs)
	if got.Synced != 199.9 || got.Manual != 300 || got.Starting != 1000.4 {
		t.Errorf("Reconcile() = %+v, want starting 1000.4, synced 199.9, manual 300", got)
	}
	if total := dec(got.Starting).Add(dec(got.Synced)).Add(dec(got.Manual)); !total.Equal(dec(a.Balance)) {
		t.Errorf("Reconcile() does not add up: %v, want %v", total, a.Balance)
	}
}
