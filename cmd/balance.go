package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finplan"
	"github.com/etnz/finplan/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "explain account balances from their activity" }
func (*balanceCmd) Usage() string {
	return `fp balance [<account_id>...]

  Breaks down the current balance of accounts into the balance before any
  known movement, the synced transactions and the manual contributions.
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (*balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSnapshot(ctx)
	if err != nil {
		return failure("Error loading snapshot: %v", err)
	}

	accounts := s.Accounts
	if f.NArg() > 0 {
		accounts = nil
		for _, id := range f.Args() {
			a, err := s.Account(id)
			if err != nil {
				return failure("Error: %v", err)
			}
			accounts = append(accounts, a)
		}
	}

	rows := make([]finplan.Reconciliation, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, finplan.Reconcile(a, s.Transactions, s.Contributions))
	}
	printMarkdown(renderer.RenderBalances(rows))
	return subcommands.ExitSuccess
}
