package finplan

import "github.com/shopspring/decimal"

// GoalProgress is the progress of a goal.
//
// For accumulation goals Current is the amount saved so far. For debt payoff
// goals Current is the amount already paid down, and Remaining is the
// balance still owed.
type GoalProgress struct {
	Current    float64 `json:"current"`
	Target     float64 `json:"target"`
	Remaining  float64 `json:"remaining"`
	Percentage Percent `json:"percentage"` // in [0, 100]
	IsComplete bool    `json:"isComplete"`

	// Inferred is true when Target is the original debt inferred from the
	// balance and the payment history, rather than the goal target.
	Inferred bool `json:"inferred,omitempty"`
	// Linked is the number of linked accounts that were found.
	Linked int `json:"linked"`
}

// progress accumulates a goal progress in exact arithmetic.
type progress struct {
	current, target, remaining decimal.Decimal
	inferred                   bool
	linked                     int
}

// ComputeGoalProgress computes the progress of a goal.
//
// The goal links are resolved against accounts, unknown account ids are
// ignored. Debt payoff goals measure the balance paid down, accumulation goals
// the balance saved. Goals without any resolved account fall back to manual
// contributions.
func ComputeGoalProgress(goal Goal, accounts []Account, contribs []ManualContribution, txs []SyncedTransaction) GoalProgress {
	index := accountIndex(accounts)
	var linked []Account
	for _, id := range goal.LinkedAccountIDs() {
		if a, ok := index[id]; ok {
			linked = append(linked, a)
		}
	}

	var p progress
	switch goal.Type.Class() {
	case DebtPayoff:
		p = debtProgress(goal, linked, contribs, txs)
	default:
		p = accumulationProgress(goal, linked, contribs, txs)
	}
	p.linked = len(linked)
	return p.result()
}

func (p progress) result() GoalProgress {
	var pct Percent
	if p.target.IsPositive() {
		pct = clampPercent(p.current.Div(p.target).Mul(decimal.NewFromInt(100)).InexactFloat64())
	}
	return GoalProgress{
		Current:    fl(p.current),
		Target:     fl(p.target),
		Remaining:  fl(p.remaining),
		Percentage: pct,
		IsComplete: p.current.GreaterThanOrEqual(p.target),
		Inferred:   p.inferred,
		Linked:     p.linked,
	}
}

// debtProgress measures how much of a debt has been paid down.
//
// A zero target means the original debt is unknown: it is inferred as the
// balance owed plus the payments found in the account history.
func debtProgress(goal Goal, linked []Account, contribs []ManualContribution, txs []SyncedTransaction) progress {
	target := dec(goal.Target)
	if len(linked) == 0 {
		ids := goal.LinkedAccountIDs()
		paid := decimal.Zero
		for _, c := range contribs {
			if c.Amount >= 0 {
				continue
			}
			if (goal.ID != "" && c.GoalID == goal.ID) || contains(ids, c.AccountID) {
				paid = paid.Add(dec(c.Amount).Abs())
			}
		}
		return progress{current: paid, target: target, remaining: maxZero(target.Sub(paid))}
	}

	owed := decimal.Zero
	for _, a := range linked {
		owed = owed.Add(dec(a.Balance))
	}
	if !target.IsZero() {
		return progress{current: maxZero(target.Sub(owed)), target: target, remaining: owed}
	}

	paid := decimal.Zero
	for _, a := range linked {
		paid = paid.Add(paymentsMade(a, txs))
	}
	return progress{
		current:   paid,
		target:    owed.Add(paid),
		remaining: owed,
		inferred:  true,
	}
}

// paymentsMade sums the payments found in the transactions of a debt account.
// The sign of a payment depends on the kind of debt.
func paymentsMade(a Account, txs []SyncedTransaction) decimal.Decimal {
	kind := a.Type.DebtKind()
	paid := decimal.Zero
	for _, tx := range txs {
		if tx.AccountID == a.ID && kind.IsPayment(tx.Amount) {
			paid = paid.Add(dec(tx.Amount).Abs())
		}
	}
	return paid
}

// accumulationProgress measures how much has been saved towards a target.
//
// The balance of the linked accounts is compared to the sum of their positive
// transactions, and the larger wins: the transaction history may be partial.
func accumulationProgress(goal Goal, linked []Account, contribs []ManualContribution, txs []SyncedTransaction) progress {
	target := dec(goal.Target)
	current := decimal.Zero
	if len(linked) == 0 {
		for _, c := range contribs {
			if goal.ID != "" && c.GoalID == goal.ID {
				current = current.Add(dec(c.Amount))
			}
		}
	} else {
		balance, deposits := decimal.Zero, decimal.Zero
		for _, a := range linked {
			balance = balance.Add(dec(a.Balance))
			for _, tx := range txs {
				if tx.AccountID == a.ID && tx.Amount > 0 {
					deposits = deposits.Add(dec(tx.Amount))
				}
			}
		}
		current = decimal.Max(balance, deposits)
	}
	return progress{current: current, target: target, remaining: maxZero(target.Sub(current))}
}

func maxZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func contains(ids []string, id string) bool {
	if id == "" {
		return false
	}
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
