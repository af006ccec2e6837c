// Package cmd implements the CLI application to track accounts, activity and
// goals.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finplan"
	"github.com/etnz/finplan/date"
	"github.com/etnz/finplan/logger"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("snapshot", "", "Path to the snapshot file. Defaults to $"+EnvSnapshotFile+" or "+DefaultSnapshotFile+".")
var Verbose = flag.Bool("v", false, "Print debug logs.")
var plain = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal.")

// DefaultSnapshotFile is the snapshot used when neither the flag nor the
// environment name one.
const DefaultSnapshotFile = "finplan.json"

// stdout receives the output of the commands.
var stdout io.Writer = os.Stdout

type group struct {
	name     string
	commands []subcommands.Command
}

// commands are the subcommands of the application, by group.
var commands = []group{
	{"ledger", []subcommands.Command{&accountsCmd{}, &activityCmd{}, &balanceCmd{}, &categorizeCmd{}}},
	{"goals", []subcommands.Command{&goalsCmd{}, &goalCmd{}, &addGoalCmd{}}},
	{"contributions", []subcommands.Command{&contributeCmd{}, &editContributionCmd{}, &deleteContributionCmd{}}},
	{"sync", []subcommands.Command{&importCmd{}}},
	{"insights", []subcommands.Command{&summaryCmd{}, &coachCmd{}}},
	{"help", []subcommands.Command{&topicCmd{}}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range commands {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// snapshotPath is the path of the snapshot file.
func snapshotPath() string {
	if *snapshotFile != "" {
		return *snapshotFile
	}
	if env := os.Getenv(EnvSnapshotFile); env != "" {
		return env
	}
	return DefaultSnapshotFile
}

// loadSnapshot loads the snapshot of the application. A missing file is an
// empty snapshot.
func loadSnapshot(ctx context.Context) (*finplan.Snapshot, error) {
	path := snapshotPath()
	s, err := finplan.LoadSnapshot(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Warn().Str("path", path).Msg("snapshot does not exist, starting from an empty one")
		return &finplan.Snapshot{}, nil
	}
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug().Str("path", path).
		Int("accounts", len(s.Accounts)).
		Int("transactions", len(s.Transactions)).
		Int("contributions", len(s.Contributions)).
		Int("goals", len(s.Goals)).
		Msg("snapshot loaded")
	return s, nil
}

// saveSnapshot saves the snapshot of the application.
func saveSnapshot(ctx context.Context, s *finplan.Snapshot) error {
	path := snapshotPath()
	if err := s.Save(path); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug().Str("path", path).Msg("snapshot saved")
	return nil
}

// parseDate parses a date flag, an empty value is today.
func parseDate(s string) (date.Date, error) {
	if strings.TrimSpace(s) == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// renderMarkdown renders markdown for the terminal. It returns md itself if
// it cannot.
func renderMarkdown(md string) string {
	if *plain {
		return md
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func printMarkdown(md string) {
	fmt.Fprint(stdout, renderMarkdown(md))
}

// failure prints an error and returns the matching exit status.
func failure(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}

// usageError prints an error and returns the usage exit status.
func usageError(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitUsageError
}
