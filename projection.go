package finplan

import (
	"github.com/etnz/finplan/date"
	"github.com/shopspring/decimal"
)

// Projection tells when a goal will be reached at its monthly contribution
// plan, and what it takes to reach it by its target date.
type Projection struct {
	// MonthsToGo is the number of monthly contributions still needed, -1
	// when the goal has no monthly plan.
	MonthsToGo int
	// CompletionDate is the projected completion date, zero when unknown.
	CompletionDate date.Date
	// RequiredMonthly is the monthly amount needed to complete the goal by
	// its target date, zero without a target date.
	RequiredMonthly float64
	// OnTrack is true when the plan completes the goal by its target date,
	// or when there is a plan and no target date.
	OnTrack bool
}

// Project projects the progress p of goal from today.
func Project(goal Goal, p GoalProgress, today date.Date) Projection {
	remaining := dec(p.Remaining)
	if p.IsComplete || !remaining.IsPositive() {
		return Projection{CompletionDate: today, OnTrack: true}
	}

	proj := Projection{MonthsToGo: -1}
	if m := goal.MonthlyContribution; m != nil && *m > 0 {
		proj.MonthsToGo = int(remaining.Div(dec(*m)).Ceil().IntPart())
		proj.CompletionDate = today.AddMonth(proj.MonthsToGo)
	}

	if goal.TargetDate == nil || goal.TargetDate.IsZero() {
		proj.OnTrack = proj.MonthsToGo >= 0
		return proj
	}
	months := today.MonthsUntil(*goal.TargetDate)
	if months <= 0 {
		// overdue: everything is due now.
		proj.RequiredMonthly = fl(remaining)
	} else {
		proj.RequiredMonthly = fl(remaining.Div(decimal.NewFromInt(int64(months))).RoundCeil(2))
	}
	proj.OnTrack = proj.MonthsToGo >= 0 && !proj.CompletionDate.After(*goal.TargetDate)
	return proj
}

// maxPayoffMonths bounds the payoff simulation to a hundred years.
const maxPayoffMonths = 1200

// PayoffMonths simulates the monthly repayment of a debt at an annual
// percentage rate. It returns the number of payments and the total interest
// paid. ok is false when the payment never repays the debt.
func PayoffMonths(balance, aprPercent, payment float64) (months int, interest float64, ok bool) {
	owed := dec(balance)
	if !owed.IsPositive() {
		return 0, 0, true
	}
	pay := dec(payment)
	if !pay.IsPositive() {
		return 0, 0, false
	}
	rate := dec(aprPercent).Div(decimal.NewFromInt(1200))
	total := decimal.Zero
	for owed.IsPositive() {
		if months >= maxPayoffMonths {
			return months, fl(total), false
		}
		charge := owed.Mul(rate).Round(2)
		if months == 0 && pay.LessThanOrEqual(charge) {
			return 0, 0, false
		}
		total = total.Add(charge)
		owed = owed.Add(charge).Sub(decimal.Min(pay, owed.Add(charge)))
		months++
	}
	return months, fl(total), true
}
