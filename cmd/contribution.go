package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/etnz/finplan"
	"github.com/etnz/finplan/date"
	"github.com/google/subcommands"
)

// contributionFlags are the fields of a manual contribution.
type contributionFlags struct {
	account     string
	goal        string
	amount      float64
	date        string
	description string
}

func (c *contributionFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account id.")
	f.StringVar(&c.goal, "goal", "", "Id of the goal the contribution is made towards.")
	f.Float64Var(&c.amount, "amount", 0, "Amount, negative when money leaves the account.")
	f.StringVar(&c.date, "d", "", "Date of the contribution. Defaults to today.")
	f.StringVar(&c.description, "m", "", "Description.")
}

type contributeCmd struct {
	contributionFlags
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "record a manual contribution" }
func (*contributeCmd) Usage() string {
	return `fp contribute -account <id> -amount <amount> [-goal <id>] [-d <date>] [-m <description>]

  Records money moved by hand, for accounts the aggregator does not see or for
  money set aside towards a goal.
`
}

func (c *contributeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.amount == 0 {
		return usageError("Error: -account and a non zero -amount are required.")
	}
	on, err := parseDate(c.date)
	if err != nil {
		return usageError("Error parsing date: %v", err)
	}

	s, err := loadSnapshot(ctx)
	if err != nil {
		return failure("Error loading snapshot: %v", err)
	}
	if c.goal != "" {
		if _, err := s.Goal(c.goal); err != nil {
			return failure("Error: %v", err)
		}
	}
	contrib, err := s.AddContribution(finplan.ManualContribution{
		AccountID:   c.account,
		GoalID:      c.goal,
		Amount:      c.amount,
		Date:        on,
		Description: c.description,
	}, time.Now())
	if err != nil {
		return failure("Error: %v", err)
	}
	if err := saveSnapshot(ctx, s); err != nil {
		return failure("Error saving snapshot: %v", err)
	}
	fmt.Fprintf(stdout, "Recorded %s on %s (%s)\n", finplan.FormatSignedAmount(contrib.Amount, ""), accountName(s, contrib.AccountID), contrib.ID)
	return subcommands.ExitSuccess
}

type editContributionCmd struct {
	contributionFlags
}

func (*editContributionCmd) Name() string     { return "edit-contribution" }
func (*editContributionCmd) Synopsis() string { return "edit a manual contribution" }
func (*editContributionCmd) Usage() string {
	return `fp edit-contribution [-account <id>] [-amount <amount>] [-goal <id>] [-d <date>] [-m <description>] <id>

  Changes the fields given as flags of a manual contribution. Synced
  transactions cannot be edited.
`
}

func (c *editContributionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError("Error: exactly one contribution id is required.")
	}
	s, err := loadSnapshot(ctx)
	if err != nil {
		return failure("Error loading snapshot: %v", err)
	}
	contrib, err := s.Contribution(f.Arg(0))
	if err != nil {
		return failure("Error: %v", err)
	}

	var errParse error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "account":
			contrib.AccountID = c.account
		case "goal":
			contrib.GoalID = c.goal
		case "amount":
			contrib.Amount = c.amount
		case "d":
			contrib.Date, errParse = date.Parse(c.date)
		case "m":
			contrib.Description = c.description
		}
	})
	if errParse != nil {
		return usageError("Error parsing date: %v", errParse)
	}
	if contrib.GoalID != "" {
		if _, err := s.Goal(contrib.GoalID); err != nil {
			return failure("Error: %v", err)
		}
	}

	if err := s.UpdateContribution(contrib); err != nil {
		return failure("Error: %v", err)
	}
	if err := saveSnapshot(ctx, s); err != nil {
		return failure("Error saving snapshot: %v", err)
	}
	fmt.Fprintf(stdout, "Updated contribution %s\n", contrib.ID)
	return subcommands.ExitSuccess
}

type deleteContributionCmd struct{}

func (*deleteContributionCmd) Name() string     { return "delete-contribution" }
func (*deleteContributionCmd) Synopsis() string { return "delete a manual contribution" }
func (*deleteContributionCmd) Usage() string {
	return `fp delete-contribution <id>...

  Deletes manual contributions. Synced transactions cannot be deleted.
`
}

func (*deleteContributionCmd) SetFlags(f *flag.FlagSet) {}

func (*deleteContributionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return usageError("Error: a contribution id is required.")
	}
	s, err := loadSnapshot(ctx)
	if err != nil {
		return failure("Error loading snapshot: %v", err)
	}
	for _, id := range f.Args() {
		if err := s.DeleteContribution(id); err != nil {
			return failure("Error: %v", err)
		}
	}
	if err := saveSnapshot(ctx, s); err != nil {
		return failure("Error saving snapshot: %v", err)
	}
	fmt.Fprintf(stdout, "Deleted %d contribution(s)\n", f.NArg())
	return subcommands.ExitSuccess
}
