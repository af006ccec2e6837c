package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/finplan"
	"github.com/etnz/finplan/date"
	"github.com/etnz/finplan/renderer"
	"github.com/google/subcommands"
)

type goalsCmd struct {
	date     string
	explicit bool
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "show the progress of every goal" }
func (*goalsCmd) Usage() string {
	return `fp goals [-d <date>] [-explicit]

  Shows the progress and projection of every goal, including the goals suggested
  from accounts with a goal target and from debt accounts.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the projections. Defaults to today.")
	f.BoolVar(&c.explicit, "explicit", false, "Hide the goals suggested from accounts.")
}

func (c *goalsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDate(c.date)
	if err != nil {
		return usageError("Error parsing date: %v", err)
	}
	s, err := loadSnapshot(ctx)
	if err != nil {
		return failure("Error loading snapshot: %v", err)
	}

	var reports []finplan.GoalReport
	for _, r := range s.GoalReports(on) {
		if c.explicit && r.Goal.Synthetic {
			continue
		}
		reports = append(reports, r)
	}
	printMarkdown(renderer.RenderGoals(reports))
	return subcommands.ExitSuccess
}

type goalCmd struct {
	date string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "show a goal and its activity" }
func (*goalCmd) Usage() string {
	return `fp goal [-d <date>] <goal_id>

  Shows the progress and projection of a goal, followed by the activity of its
  accounts and the contributions made towards it.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the projection. Defaults to today.")
}

func (c *goalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError("Error: exactly one goal id is required.")
	}
	on, err := parseDate(c.date)
	if err != nil {
		return usageError("Error parsing date: %v", err)
	}
	s, err := loadSnapshot(ctx)
	if err != nil {
		return failure("Error loading snapshot: %v", err)
	}

	g, err := s.Goal(f.Arg(0))
	if err != nil {
		return failure("Error: %v", err)
	}
	printMarkdown(renderer.RenderGoal(s.GoalReport(g, on), s.GoalActivity(g)))
	return subcommands.ExitSuccess
}

type addGoalCmd struct {
	id       string
	name     string
	typ      string
	target   float64
	accounts string
	monthly  float64
	by       string
	priority int
	note     string
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "add a savings, investing or debt payoff goal" }
func (*addGoalCmd) Usage() string {
	return `fp add-goal -name <name> [-type <type>] [-target <amount>] [-accounts <id,id>] [-monthly <amount>] [-by <date>] [-priority <n>]

  Adds a goal to the snapshot. A debt payoff goal with no target infers the
  original debt from the balance and the payment history of its accounts.
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Goal id. Defaults to a generated one.")
	f.StringVar(&c.name, "name", "", "Goal name.")
	f.StringVar(&c.typ, "type", string(finplan.SavingsGoal), "Goal type: savings, investment, retirement, emergency_fund, debt_payoff or custom.")
	f.Float64Var(&c.target, "target", 0, "Target amount. For debts, the original amount owed.")
	f.StringVar(&c.accounts, "accounts", "", "Comma separated ids of the linked accounts.")
	f.Float64Var(&c.monthly, "monthly", 0, "Planned monthly contribution.")
	f.StringVar(&c.by, "by", "", "Target date.")
	f.IntVar(&c.priority, "priority", 0, "Priority, 1 is the highest.")
	f.StringVar(&c.note, "note", "", "Free note.")
}

func (c *addGoalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := finplan.ParseGoalType(c.typ)
	if err != nil {
		return usageError("Error: %v", err)
	}
	g := finplan.Goal{
		ID:       c.id,
		Name:     strings.TrimSpace(c.name),
		Type:     typ,
		Target:   c.target,
		Priority: c.priority,
		Note:     c.note,
	}
	for _, id := range strings.Split(c.accounts, ",") {
		if id = strings.TrimSpace(id); id != "" {
			g.AccountIDs = append(g.AccountIDs, id)
		}
	}
	if len(g.AccountIDs) == 1 {
		g.AccountID, g.AccountIDs = g.AccountIDs[0], nil
	}
	if c.monthly > 0 {
		g.MonthlyContribution = &c.monthly
	}
	if c.by != "" {
		by, err := date.Parse(c.by)
		if err != nil {
			return usageError("Error parsing target date: %v", err)
		}
		g.TargetDate = &by
	}

	s, err := loadSnapshot(ctx)
	if err != nil {
		return failure("Error loading snapshot: %v", err)
	}
	for _, id := range g.LinkedAccountIDs() {
		if _, err := s.Account(id); err != nil {
			return failure("Error: %v", err)
		}
	}
	g, err = s.AddGoal(g, time.Now())
	if err != nil {
		return failure("Error: %v", err)
	}
	if err := saveSnapshot(ctx, s); err != nil {
		return failure("Error saving snapshot: %v", err)
	}
	fmt.Fprintf(stdout, "Added goal %q (%s)\n", g.Name, g.ID)
	return subcommands.ExitSuccess
}
