// Package coach asks a language model for educational, narrative coaching
// about the progress of goals.
//
// The narrative is free text: it is shown to the user as is, never parsed.
package coach

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/finplan"
	"github.com/etnz/finplan/date"
	"github.com/etnz/finplan/logger"
)

// Narrator turns a prompt into free text.
type Narrator interface {
	Narrate(ctx context.Context, prompt string) (string, error)
}

// NarratorFunc adapts a function to a Narrator.
type NarratorFunc func(ctx context.Context, prompt string) (string, error)

func (f NarratorFunc) Narrate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Context is what the coach knows about the user.
type Context struct {
	Today    date.Date
	Goals    []finplan.GoalReport
	NetWorth finplan.NetWorth
	Spending []finplan.CategoryTotal // over the last month
}

// NewContext gathers the coach context from a snapshot.
func NewContext(s *finplan.Snapshot, today date.Date) *Context {
	last := date.Between(today.AddMonth(-1).Add(1), today)
	return &Context{
		Today:    today,
		Goals:    s.GoalReports(today),
		NetWorth: finplan.Summarize(s.Accounts),
		Spending: finplan.SpendingByCategory(s.Activity(), s.Accounts, last),
	}
}

// Prompt writes the prompt for a question. An empty question asks for a
// general review of the goals.
func Prompt(c *Context, question string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Today is %s.\n\n", c.Today)

	b.WriteString("## Goals\n\n")
	if len(c.Goals) == 0 {
		b.WriteString("The user has no goal yet.\n")
	}
	for _, r := range c.Goals {
		g, p := r.Goal, r.Progress
		fmt.Fprintf(&b, "- %s (%s goal", g.Name, g.Type.Canonical())
		if g.Synthetic {
			b.WriteString(", suggested from an account")
		}
		b.WriteString("): ")
		if g.Type.Class() == finplan.DebtPayoff {
			fmt.Fprintf(&b, "paid down %s of %s", finplan.FormatAmount(p.Current, ""), finplan.FormatAmount(p.Target, ""))
			if p.Inferred {
				b.WriteString(" (original debt estimated from payments)")
			}
			fmt.Fprintf(&b, ", %s still owed", finplan.FormatAmount(p.Remaining, ""))
		} else {
			fmt.Fprintf(&b, "saved %s of %s, %s remaining", finplan.FormatAmount(p.Current, ""), finplan.FormatAmount(p.Target, ""), finplan.FormatAmount(p.Remaining, ""))
		}
		fmt.Fprintf(&b, ", %s complete", p.Percentage.Rounded())
		if g.TargetDate != nil {
			fmt.Fprintf(&b, ", target date %s", g.TargetDate)
		}
		if pr := r.Projection; pr.MonthsToGo > 0 {
			fmt.Fprintf(&b, ", %d months to go at the current plan", pr.MonthsToGo)
			if g.TargetDate != nil && !pr.OnTrack {
				fmt.Fprintf(&b, " (behind schedule, %s per month needed)", finplan.FormatAmount(pr.RequiredMonthly, ""))
			}
		}
		b.WriteString(".\n")
	}

	nw := c.NetWorth
	fmt.Fprintf(&b, "\n## Balance sheet\n\nAssets %s, liabilities %s, net worth %s.",
		finplan.FormatAmount(nw.Assets, ""), finplan.FormatAmount(nw.Liabilities, ""), finplan.FormatAmount(nw.Net, ""))
	if nw.CreditLimit > 0 {
		fmt.Fprintf(&b, " Credit utilization %s.", nw.Utilization.Rounded())
	}
	b.WriteString("\n")

	if len(c.Spending) > 0 {
		b.WriteString("\n## Spending over the last month\n\n")
		for _, t := range c.Spending {
			fmt.Fprintf(&b, "- %s: %s\n", t.Category, finplan.FormatAmount(t.Amount, ""))
		}
	}

	b.WriteString("\n## Request\n\n")
	if q := strings.TrimSpace(question); q != "" {
		b.WriteString(q)
	} else {
		b.WriteString("Review the progress of my goals and suggest what I could focus on next.")
	}
	b.WriteString("\n")
	return b.String()
}

// Advise asks the narrator about a question, in the context c.
func Advise(ctx context.Context, n Narrator, c *Context, question string) (string, error) {
	log := logger.FromContext(ctx)
	prompt := Prompt(c, question)
	log.Debug().Int("goals", len(c.Goals)).Int("prompt_bytes", len(prompt)).Msg("asking the coach")

	start := time.Now()
	text, err := n.Narrate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("coach did not answer: %w", err)
	}
	log.Debug().Dur("latency", time.Since(start)).Int("answer_bytes", len(text)).Msg("coach answered")
	return strings.TrimSpace(text), nil
}
