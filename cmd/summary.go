package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finplan"
	"github.com/etnz/finplan/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	period string
	start  string
	date   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the net worth and the spending by category" }
func (*summaryCmd) Usage() string {
	return `fp summary [-p <period> | -s <start_date>] [-d <date>]

  Displays the net worth, the accounts and the spending by category over a period,
  the current month by default.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Predefined period of the spending breakdown (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "", "The end date for the range. Defaults to today.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.period, c.start, c.date)
	if err != nil {
		return usageError("Error parsing range: %v", err)
	}
	s, err := loadSnapshot(ctx)
	if err != nil {
		return failure("Error loading snapshot: %v", err)
	}

	printMarkdown(renderer.RenderSummary(&renderer.Summary{
		NetWorth: finplan.Summarize(s.Accounts),
		Accounts: s.Accounts,
		Spending: finplan.SpendingByCategory(s.Activity(), s.Accounts, r),
		Range:    r,
	}))
	return subcommands.ExitSuccess
}
