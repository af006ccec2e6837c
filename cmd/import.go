package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/finplan/aggregator"
	"github.com/etnz/finplan/logger"
	"github.com/google/subcommands"
)

type importCmd struct {
	dryRun bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import accounts and transactions from an aggregator payload" }
func (*importCmd) Usage() string {
	return `fp import [-n] [<payload.json> | -]

  Imports an aggregator payload (accounts, transactions and liabilities) into the
  snapshot. Known accounts and transactions are updated, manual contributions are
  left untouched. Reads standard input when no file is given.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "n", false, "Dry run: report what would be imported without saving.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		return usageError("Error: at most one payload file is accepted.")
	}
	var r io.Reader = os.Stdin
	if name := f.Arg(0); name != "" && name != "-" {
		file, err := os.Open(name)
		if err != nil {
			return failure("Error opening payload: %v", err)
		}
		defer file.Close()
		r = file
	}

	res, err := aggregator.Decode(ctx, r)
	if err != nil {
		return failure("Error: %v", err)
	}
	s, err := loadSnapshot(ctx)
	if err != nil {
		return failure("Error loading snapshot: %v", err)
	}

	newAccounts, newTransactions := s.MergeSynced(res.Accounts, res.Transactions)
	if err := s.Validate(); err != nil {
		return failure("Error: the imported snapshot is not valid:\n%v", err)
	}
	logger.FromContext(ctx).Info().
		Int("new_accounts", newAccounts).
		Int("new_transactions", newTransactions).
		Int("skipped", res.Skipped).
		Bool("dry_run", c.dryRun).
		Msg("aggregator payload imported")

	if !c.dryRun {
		if err := saveSnapshot(ctx, s); err != nil {
			return failure("Error saving snapshot: %v", err)
		}
	}
	fmt.Fprintf(stdout, "Imported %d accounts (%d new) and %d transactions (%d new), skipped %d records.\n",
		len(res.Accounts), newAccounts, len(res.Transactions), newTransactions, res.Skipped)
	return subcommands.ExitSuccess
}
