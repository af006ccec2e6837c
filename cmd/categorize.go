package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/finplan"
	"github.com/google/subcommands"
)

type categorizeCmd struct {
	tags string
}

func (*categorizeCmd) Name() string     { return "categorize" }
func (*categorizeCmd) Synopsis() string { return "show the category of a transaction" }
func (*categorizeCmd) Usage() string {
	return `fp categorize [-tags <tag,tag>] <description>

  Prints the canonical category, and its icon, of a transaction given its raw
  aggregator tags and its description.
`
}

func (c *categorizeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tags, "tags", "", "Comma separated raw tags, most general first.")
}

func (c *categorizeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var tags []string
	for _, t := range strings.Split(c.tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	text := strings.Join(f.Args(), " ")
	if len(tags) == 0 && strings.TrimSpace(text) == "" {
		return usageError("Error: a description or tags are required.")
	}

	category := finplan.CategoryOf(tags, text)
	fmt.Fprintf(stdout, "%s (%s)\n", category, category.Icon())
	return subcommands.ExitSuccess
}
