package finplan

import (
	"sort"

	"github.com/etnz/finplan/date"
)

// GoalReport gathers what is known about a goal on a given day.
type GoalReport struct {
	Goal       Goal
	Progress   GoalProgress
	Projection Projection
	Accounts   []Account // the linked accounts that were found
}

// GoalReports reports on every goal of the snapshot, explicit and
// synthetic. Goals with a priority come first, lowest first, the others keep
// their order.
func (s *Snapshot) GoalReports(today date.Date) []GoalReport {
	goals := s.AllGoals()
	sort.SliceStable(goals, func(i, j int) bool {
		pi, pj := goals[i].Priority, goals[j].Priority
		if pi == 0 || pj == 0 {
			return pi != 0 && pj == 0
		}
		return pi < pj
	})

	reports := make([]GoalReport, 0, len(goals))
	for _, g := range goals {
		reports = append(reports, s.GoalReport(g, today))
	}
	return reports
}

// GoalReport reports on a single goal.
func (s *Snapshot) GoalReport(g Goal, today date.Date) GoalReport {
	p := s.Progress(g)
	r := GoalReport{Goal: g, Progress: p, Projection: Project(g, p, today)}
	index := accountIndex(s.Accounts)
	for _, id := range g.LinkedAccountIDs() {
		if a, ok := index[id]; ok {
			r.Accounts = append(r.Accounts, a)
		}
	}
	return r
}

// GoalActivity is the activity of a goal, most recent first: the entries of
// its linked accounts and the contributions made towards it.
func (s *Snapshot) GoalActivity(g Goal) []ActivityEntry {
	towards := make(map[string]bool)
	for _, c := range s.Contributions {
		if g.ID != "" && c.GoalID == g.ID {
			towards[c.ID] = true
		}
	}
	var res []ActivityEntry
	for _, e := range s.Activity() {
		if g.IsLinkedTo(e.AccountID) || (e.IsManual() && towards[e.SourceID()]) {
			res = append(res, e)
		}
	}
	return res
}
