package finplan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGoal_LinkedAccountIDs(t *testing.T) {
	testCases := []struct {
		name string
		goal Goal
		want []string
	}{
		{name: "none", goal: Goal{}, want: nil},
		{name: "single", goal: Goal{AccountID: "a"}, want: []string{"a"}},
		{name: "set", goal: Goal{AccountIDs: []string{"b", "c"}}, want: []string{"b", "c"}},
		{name: "both, deduped", goal: Goal{AccountID: "a", AccountIDs: []string{"b", "a", "", "c", "b"}}, want: []string{"a", "b", "c"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.goal.LinkedAccountIDs()); diff != "" {
				t.Errorf("LinkedAccountIDs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGoalType_Class(t *testing.T) {
	testCases := []struct {
		typ  GoalType
		want Class
	}{
		{DebtGoal, DebtPayoff},
		{DebtPayoffGoal, DebtPayoff},
		{SavingsGoal, Accumulation},
		{InvestingGoal, Accumulation},
		{InvestmentGoal, Accumulation},
		{EmergencyFundGoal, Accumulation},
		{RetirementGoal, Accumulation},
		{CustomGoal, Accumulation},
		{"", Accumulation},
	}
	for _, tc := range testCases {
		if got := tc.typ.Class(); got != tc.want {
			t.Errorf("GoalType(%q).Class() = %v, want %v", tc.typ, got, tc.want)
		}
	}
	if got := DebtGoal.Canonical(); got != DebtPayoffGoal {
		t.Errorf("DebtGoal.Canonical() = %q, want %q", got, DebtPayoffGoal)
	}
	if got := InvestingGoal.Canonical(); got != InvestmentGoal {
		t.Errorf("InvestingGoal.Canonical() = %q, want %q", got, InvestmentGoal)
	}
}

func TestParseGoalType(t *testing.T) {
	if got, err := ParseGoalType("Emergency Fund"); err != nil || got != EmergencyFundGoal {
		t.Errorf("ParseGoalType(Emergency Fund) = %q, %v, want %q", got, err, EmergencyFundGoal)
	}
	if _, err := ParseGoalType("lottery"); err == nil {
		t.Errorf("ParseGoalType(lottery) returned no error")
	}
}

func TestGoal_IsLinkedTo(t *testing.T) {
	g := Goal{AccountID: "a", AccountIDs: []string{"b"}}
	for id, want := range map[string]bool{"a": true, "b": true, "c": false, "": false} {
		if got := g.IsLinkedTo(id); got != want {
			t.Errorf("IsLinkedTo(%q) = %v, want %v", id, got, want)
		}
	}
}
