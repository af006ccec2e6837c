package finplan

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/finplan/date"
)

// GoalType is the kind of a goal, as entered by the user.
type GoalType string

const (
	SavingsGoal       GoalType = "savings"
	DebtGoal          GoalType = "debt"
	InvestingGoal     GoalType = "investing"
	DebtPayoffGoal    GoalType = "debt_payoff"
	EmergencyFundGoal GoalType = "emergency_fund"
	RetirementGoal    GoalType = "retirement"
	InvestmentGoal    GoalType = "investment"
	CustomGoal        GoalType = "custom"
)

// Class is the family of formulas used to compute a goal progress.
type Class int

const (
	// Accumulation goals progress as money is saved or invested.
	Accumulation Class = iota
	// DebtPayoff goals progress as the balance owed goes down.
	DebtPayoff
)

func (c Class) String() string {
	if c == DebtPayoff {
		return "debt payoff"
	}
	return "accumulation"
}

// Class returns the class of the goal type. "debt" and "debt_payoff" are
// synonyms, every other type accumulates.
func (t GoalType) Class() Class {
	switch t {
	case DebtGoal, DebtPayoffGoal:
		return DebtPayoff
	default:
		return Accumulation
	}
}

// Canonical folds synonyms: "debt" into "debt_payoff" and "investing" into
// "investment".
func (t GoalType) Canonical() GoalType {
	switch t {
	case DebtGoal:
		return DebtPayoffGoal
	case InvestingGoal:
		return InvestmentGoal
	default:
		return t
	}
}

// ParseGoalType parses a goal type.
func ParseGoalType(s string) (GoalType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	switch t := GoalType(s); t {
	case SavingsGoal, DebtGoal, InvestingGoal, DebtPayoffGoal, EmergencyFundGoal,
		RetirementGoal, InvestmentGoal, CustomGoal:
		return t, nil
	case "emergency":
		return EmergencyFundGoal, nil
	}
	return CustomGoal, fmt.Errorf("unknown goal type %q", s)
}

// Goal is a target to track.
//
// A goal links to accounts through AccountID, AccountIDs or both. A debt goal
// with a zero Target asks the engine to infer the original debt from the
// current balance and the payment history.
type Goal struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Type                GoalType   `json:"type"`
	AccountID           string     `json:"accountId,omitempty"`
	AccountIDs          []string   `json:"accountIds,omitempty"`
	Target              float64    `json:"target"`
	TargetDate          *date.Date `json:"targetDate,omitempty"`
	MonthlyContribution *float64   `json:"monthlyContribution,omitempty"`
	Priority            int        `json:"priority,omitempty"`
	Note                string     `json:"note,omitempty"`
	CreatedAt           time.Time  `json:"createdAt,omitzero"`
	Synthetic           bool       `json:"-"`
}

// LinkedAccountIDs returns the ids of the accounts linked to the goal: the
// single account id first, then the set, without duplicates or empty ids.
func (g Goal) LinkedAccountIDs() []string {
	var ids []string
	seen := make(map[string]bool)
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	}
	add(g.AccountID)
	for _, id := range g.AccountIDs {
		add(id)
	}
	return ids
}

// IsLinkedTo reports whether the goal links to the account.
func (g Goal) IsLinkedTo(accountID string) bool {
	if accountID == "" {
		return false
	}
	if g.AccountID == accountID {
		return true
	}
	for _, id := range g.AccountIDs {
		if id == accountID {
			return true
		}
	}
	return false
}
