package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/finplan"
	"github.com/etnz/finplan/date"
	"github.com/etnz/finplan/renderer"
	"github.com/google/subcommands"
)

type activityCmd struct {
	account  string
	period   string
	start    string
	date     string
	category string
	head     int
}

func (*activityCmd) Name() string     { return "activity" }
func (*activityCmd) Synopsis() string { return "list synced transactions and manual contributions" }
func (*activityCmd) Usage() string {
	return `fp activity [-account <id>] [-p <period> | -s <start_date>] [-d <end_date>] [-c <category>] [-head <n>]

  Lists the activity of all accounts, or of a single account with its running
  balance, most recent first.
`
}

func (c *activityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account id. The ledger of a single account shows the balance after each entry.")
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "", "The end date for the range.")
	f.StringVar(&c.category, "c", "", "Show only the entries of this category.")
	f.IntVar(&c.head, "head", 0, "Show only the N most recent entries.")
}

func (c *activityCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := parseRange(c.period, c.start, c.date)
	if err != nil {
		return usageError("Error parsing range: %v", err)
	}

	s, err := loadSnapshot(ctx)
	if err != nil {
		return failure("Error loading snapshot: %v", err)
	}

	title := "Activity"
	var entries []finplan.ActivityEntry
	if c.account != "" {
		entries, err = s.AccountActivity(c.account)
		if err != nil {
			return failure("Error: %v", err)
		}
		title = accountName(s, c.account)
	} else {
		entries = s.Activity()
	}

	var category finplan.Category
	if c.category != "" {
		category = finplan.ParseCategory(c.category)
	}
	var selected []finplan.ActivityEntry
	for _, e := range entries {
		if !r.IsZero() && !r.Contains(e.Date) {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		selected = append(selected, e)
	}
	if c.head > 0 && len(selected) > c.head {
		selected = selected[:c.head]
	}
	if !r.IsZero() {
		title = fmt.Sprintf("%s, %s", title, r)
	}

	printMarkdown(renderer.RenderActivity(title, selected))
	return subcommands.ExitSuccess
}

// parseRange parses the range flags. No flag at all is the zero range: no
// filtering.
func parseRange(period, start, end string) (date.Range, error) {
	if period == "" && start == "" && end == "" {
		return date.Range{}, nil
	}
	// Default end date to today if not provided
	to, err := parseDate(end)
	if err != nil {
		return date.Range{}, fmt.Errorf("end date: %w", err)
	}
	if start != "" {
		from, err := date.Parse(start)
		if err != nil {
			return date.Range{}, fmt.Errorf("start date: %w", err)
		}
		return date.Between(from, to), nil
	}
	if period == "" {
		period = "month"
	}
	p, err := date.ParsePeriod(period)
	if err != nil {
		return date.Range{}, err
	}
	return date.NewRange(to, p), nil
}
