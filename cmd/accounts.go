package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finplan"
	"github.com/etnz/finplan/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct {
	debts bool
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts and their balance" }
func (*accountsCmd) Usage() string {
	return `fp accounts [-debts]

  Lists the accounts of the snapshot, synced and manual, with their current balance.
  Debt balances are amounts owed.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.debts, "debts", false, "List only debt accounts.")
}

func (c *accountsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadSnapshot(ctx)
	if err != nil {
		return failure("Error loading snapshot: %v", err)
	}

	accounts := s.Accounts
	if c.debts {
		accounts = nil
		for _, a := range s.Accounts {
			if a.Type.IsDebt() {
				accounts = append(accounts, a)
			}
		}
	}
	printMarkdown(renderer.RenderAccounts(accounts))
	return subcommands.ExitSuccess
}

// accountName returns the display name of an account id.
func accountName(s *finplan.Snapshot, id string) string {
	a, err := s.Account(id)
	if err != nil {
		return finplan.UnknownAccountName
	}
	return a.DisplayName()
}
