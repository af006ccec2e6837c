// Command fp tracks accounts, their activity and the progress of financial
// goals.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"path"

	"github.com/etnz/finplan/cmd"
	"github.com/etnz/finplan/logger"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// exits when invoked by the shell for completion.
	cmd.Completion().Complete("fp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	log := logger.New(os.Stderr, *cmd.Verbose)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("could not load .env")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	ctx = logger.WithContext(ctx, log)

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(ctx, name, flag.Args()[1:]); found {
			stop()
			os.Exit(code)
		}
	}

	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}

// registered reports whether name is a subcommand of commander.
func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
