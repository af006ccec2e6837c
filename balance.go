package finplan

import "github.com/shopspring/decimal"

// AccountBalance returns the starting balance plus every transaction and
// contribution amount. Nothing is filtered: callers pass the movements of
// the account they reconcile.
func AccountBalance(txs []SyncedTransaction, contribs []ManualContribution, starting float64) float64 {
	total := dec(starting)
	for _, tx := range txs {
		total = total.Add(dec(tx.Amount))
	}
	for _, c := range contribs {
		total = total.Add(dec(c.Amount))
	}
	return fl(total)
}

// RunningBalances annotates a newest-first ledger with the balance as of
// each entry, anchored on the current balance of the account.
//
// The balance before the oldest entry is current minus the sum of all
// amounts. Entries are then replayed from the oldest to the newest, so that
// the newest entry always carries exactly current. The input is not
// modified.
func RunningBalances(entries []ActivityEntry, current float64) []ActivityEntry {
	res := make([]ActivityEntry, len(entries))
	copy(res, entries)

	total := decimal.Zero
	for _, e := range res {
		total = total.Add(dec(e.Amount))
	}
	balance := dec(current).Sub(total)
	for i := len(res) - 1; i >= 0; i-- {
		balance = balance.Add(dec(res[i].Amount))
		v := fl(balance)
		res[i].RunningBalance = &v
	}
	return res
}

// AccountActivity is the single-account ledger of an account, most recent
// first, with running balances anchored on the account balance.
func AccountActivity(account Account, txs []SyncedTransaction, contribs []ManualContribution) []ActivityEntry {
	entries := MergeAccountActivity(txs, contribs, account.ID, account.Name)
	return RunningBalances(entries, account.Balance)
}

// StartingBalance is the balance of the account before any known movement.
func StartingBalance(account Account, txs []SyncedTransaction, contribs []ManualContribution) float64 {
	moved := dec(AccountBalance(accountTransactions(txs, account.ID), accountContributions(contribs, account.ID), 0))
	return fl(dec(account.Balance).Sub(moved))
}

// Reconciliation explains the current balance of an account: Starting plus
// Synced plus Manual is the account balance.
type Reconciliation struct {
	Account  Account
	Starting float64 // balance before any known movement
	Synced   float64 // net amount of the synced transactions
	Manual   float64 // net amount of the manual contributions
}

// Reconcile breaks down the balance of account into its movements.
func Reconcile(account Account, txs []SyncedTransaction, contribs []ManualContribution) Reconciliation {
	synced := AccountBalance(accountTransactions(txs, account.ID), nil, 0)
	manual := AccountBalance(nil, accountContributions(contribs, account.ID), 0)
	return Reconciliation{
		Account:  account,
		Starting: StartingBalance(account, txs, contribs),
		Synced:   synced,
		Manual:   manual,
	}
}
