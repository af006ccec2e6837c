package finplan

import (
	"time"

	"github.com/etnz/finplan/date"
)

// SyncedTransaction is a money movement reported by the bank-data aggregator.
//
// Its amount sign depends on the account type, see DebtKind. Synced
// transactions are read-only: the engine never edits them.
type SyncedTransaction struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	Amount      float64   `json:"amount"`
	Date        date.Date `json:"date"`
	Description string    `json:"description,omitempty"`
	Categories  []string  `json:"categories,omitempty"`
}

// ManualContribution is a money movement entered by the user.
type ManualContribution struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	Amount      float64   `json:"amount"`
	Date        date.Date `json:"date"`
	Description string    `json:"description,omitempty"`
	GoalID      string    `json:"goalId,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// accountTransactions returns the transactions of one account, in input order.
func accountTransactions(txs []SyncedTransaction, accountID string) []SyncedTransaction {
	var res []SyncedTransaction
	for _, tx := range txs {
		if tx.AccountID == accountID {
			res = append(res, tx)
		}
	}
	return res
}

// accountContributions returns the contributions of one account, in input order.
func accountContributions(contribs []ManualContribution, accountID string) []ManualContribution {
	var res []ManualContribution
	for _, c := range contribs {
		if c.AccountID == accountID {
			res = append(res, c)
		}
	}
	return res
}
