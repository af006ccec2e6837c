package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/finplan"
)

// barWidth is the number of cells of a progress bar.
const barWidth = 20

var funcs = template.FuncMap{
	"money":        Money,
	"signed":       func(v float64) string { return finplan.FormatSignedAmount(v, "") },
	"percent":      func(p finplan.Percent) string { return p.Rounded() },
	"balance":      balance,
	"bar":          Bar,
	"cell":         cell,
	"debt":         func(g finplan.Goal) bool { return g.Type.Class() == finplan.DebtPayoff },
	"goalType":     func(g finplan.Goal) string { return strings.ReplaceAll(string(g.Type.Canonical()), "_", " ") },
	"accountNames": accountNames,
}

// Money formats an amount in the default currency.
func Money(v float64) string { return finplan.FormatAmount(v, "") }

// Bar draws a progress bar for a percentage.
func Bar(p finplan.Percent) string {
	n := int(float64(p) * barWidth / 100)
	n = max(0, min(barWidth, n))
	return "`" + strings.Repeat("█", n) + strings.Repeat("░", barWidth-n) + "`"
}

func balance(v *float64) string {
	if v == nil {
		return ""
	}
	return Money(*v)
}

// cell makes v safe to print in a markdown table cell.
func cell(v any) string {
	s := strings.TrimSpace(fmt.Sprint(v))
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func accountNames(accounts []finplan.Account) string {
	names := make([]string, 0, len(accounts))
	for _, a := range accounts {
		names = append(names, cell(a.Name))
	}
	return strings.Join(names, ", ")
}
