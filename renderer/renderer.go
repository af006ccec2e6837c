// Package renderer renders ledgers, goals and dashboards as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/etnz/finplan"
	"github.com/etnz/finplan/date"
)

//go:embed templates/*.md
var templates embed.FS

// Activity is a ledger to render.
type Activity struct {
	Title       string
	Entries     []finplan.ActivityEntry
	ShowBalance bool // add the running balance column
}

// Goals are goal reports to render.
type Goals struct {
	Reports []finplan.GoalReport
}

// Summary is a dashboard to render.
type Summary struct {
	NetWorth finplan.NetWorth
	Accounts []finplan.Account
	Spending []finplan.CategoryTotal
	Range    date.Range // period of the spending breakdown, zero for all time
}

// RenderActivity renders a ledger as a markdown table. The balance column is
// shown when the entries carry running balances.
func RenderActivity(title string, entries []finplan.ActivityEntry) string {
	a := &Activity{Title: title, Entries: entries}
	for _, e := range entries {
		if e.RunningBalance != nil {
			a.ShowBalance = true
			break
		}
	}
	partials := map[string]string{
		"activity_table": "activity_table.md",
	}
	return renderTemplate("activity", "activity.md", partials, a)
}

// RenderGoals renders a card for each goal report.
func RenderGoals(reports []finplan.GoalReport) string {
	partials := map[string]string{
		"goal_card": "goal_card.md",
	}
	return renderTemplate("goals", "goals.md", partials, &Goals{Reports: reports})
}

// RenderGoal renders a single goal card followed by its activity.
func RenderGoal(report finplan.GoalReport, entries []finplan.ActivityEntry) string {
	var b strings.Builder
	b.WriteString(renderTemplate("goal_card", "goal_card.md", nil, report))
	if len(entries) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderActivity("Activity", entries))
	}
	return b.String()
}

// RenderAccounts renders the accounts table.
func RenderAccounts(accounts []finplan.Account) string {
	partials := map[string]string{
		"accounts_table": "accounts_table.md",
	}
	return renderTemplate("accounts", "accounts.md", partials, accounts)
}

// RenderBalances renders how the balance of each account is made of.
func RenderBalances(rows []finplan.Reconciliation) string {
	return renderTemplate("balances", "balances.md", nil, rows)
}

// RenderSummary renders the dashboard.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_networth": "summary_networth.md",
		"accounts_table":   "accounts_table.md",
		"summary_spending": "summary_spending.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, path.Join("templates", mainFile))
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, path.Join("templates", file))
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
