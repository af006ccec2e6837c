package finplan

import "slices"

// SyntheticGoals derives goals from accounts that have none.
//
// An account carrying a GoalTarget gets a goal "account-<id>" with that
// target. A debt account with a balance owed gets a debt payoff goal
// "debt-<id>" with a zero target, so that the original debt is inferred.
// Accounts already linked to one of goals are skipped. Goals are returned
// in account order.
func SyntheticGoals(accounts []Account, goals []Goal) []Goal {
	linked := make(map[string]bool)
	ids := make(map[string]bool)
	for _, g := range goals {
		ids[g.ID] = true
		for _, id := range g.LinkedAccountIDs() {
			linked[id] = true
		}
	}

	var res []Goal
	add := func(g Goal) {
		if ids[g.ID] {
			return
		}
		ids[g.ID] = true
		linked[g.AccountID] = true
		res = append(res, g)
	}
	for _, a := range accounts {
		if a.ID == "" || linked[a.ID] {
			continue
		}
		if a.GoalTarget != nil && *a.GoalTarget > 0 {
			add(Goal{
				ID:        "account-" + a.ID,
				Name:      a.Name,
				Type:      accountGoalType(a.Type),
				AccountID: a.ID,
				Target:    *a.GoalTarget,
				Synthetic: true,
			})
			continue
		}
		if a.Type.IsDebt() && a.Balance > 0 {
			add(Goal{
				ID:                  "debt-" + a.ID,
				Name:                "Pay off " + a.Name,
				Type:                DebtPayoffGoal,
				AccountID:           a.ID,
				MonthlyContribution: a.MinimumPayment,
				Synthetic:           true,
			})
		}
	}
	return res
}

// AllGoals returns the explicit goals followed by the synthetic ones.
func AllGoals(accounts []Account, goals []Goal) []Goal {
	return append(slices.Clone(goals), SyntheticGoals(accounts, goals)...)
}

// accountGoalType is the goal type that best describes saving on an account
// of type t.
func accountGoalType(t AccountType) GoalType {
	switch {
	case t.IsDebt():
		return DebtPayoffGoal
	case t == Retirement || t == Plan401k || t == IRA:
		return RetirementGoal
	case t == Investment || t == Brokerage:
		return InvestmentGoal
	default:
		return SavingsGoal
	}
}
