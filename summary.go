package finplan

import (
	"sort"

	"github.com/etnz/finplan/date"
	"github.com/shopspring/decimal"
)

// NetWorth summarizes accounts: what is owned, what is owed, and how much of
// the available credit is used.
type NetWorth struct {
	Assets      float64 `json:"assets"`
	Liabilities float64 `json:"liabilities"`
	Net         float64 `json:"net"`
	CreditUsed  float64 `json:"creditUsed"`
	CreditLimit float64 `json:"creditLimit"`
	// Utilization is CreditUsed over CreditLimit, zero without any limit.
	Utilization Percent `json:"utilization"`
}

// Summarize computes the net worth of accounts. Debt balances count as
// liabilities; revolving accounts with a credit limit count towards credit
// utilization.
func Summarize(accounts []Account) NetWorth {
	assets, liabilities := decimal.Zero, decimal.Zero
	used, limit := decimal.Zero, decimal.Zero
	for _, a := range accounts {
		balance := dec(a.Balance)
		if !a.Type.IsDebt() {
			assets = assets.Add(balance)
			continue
		}
		liabilities = liabilities.Add(balance)
		if a.Type.DebtKind() == RevolvingDebt && a.CreditLimit != nil && *a.CreditLimit > 0 {
			used = used.Add(balance)
			limit = limit.Add(dec(*a.CreditLimit))
		}
	}
	nw := NetWorth{
		Assets:      fl(assets),
		Liabilities: fl(liabilities),
		Net:         fl(assets.Sub(liabilities)),
		CreditUsed:  fl(used),
		CreditLimit: fl(limit),
	}
	if limit.IsPositive() {
		nw.Utilization = Percent(used.Div(limit).Mul(decimal.NewFromInt(100)).InexactFloat64())
	}
	return nw
}

// CategoryTotal is the amount spent in a category.
type CategoryTotal struct {
	Category Category `json:"category"`
	Amount   float64  `json:"amount"` // positive
	Count    int      `json:"count"`
}

// SpendingByCategory totals the outflows of entries within r by category,
// largest first. Transfers between accounts are not spending. A zero range
// means all dates.
//
// A loan payment shows up both on the paying account and on the loan
// account, only the former is counted: outflows of installment debt accounts
// are skipped.
func SpendingByCategory(entries []ActivityEntry, accounts []Account, r date.Range) []CategoryTotal {
	index := accountIndex(accounts)
	totals := make(map[Category]decimal.Decimal)
	counts := make(map[Category]int)
	for _, e := range entries {
		if e.Amount >= 0 || e.Category == Transfer {
			continue
		}
		if a, ok := index[e.AccountID]; ok && a.Type.DebtKind() == InstallmentDebt {
			continue
		}
		if !r.IsZero() && !r.Contains(e.Date) {
			continue
		}
		totals[e.Category] = totals[e.Category].Add(dec(e.Amount).Neg())
		counts[e.Category]++
	}

	res := make([]CategoryTotal, 0, len(totals))
	for c, total := range totals {
		res = append(res, CategoryTotal{Category: c, Amount: fl(total), Count: counts[c]})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Amount != res[j].Amount {
			return res[i].Amount > res[j].Amount
		}
		return res[i].Category < res[j].Category
	})
	return res
}
