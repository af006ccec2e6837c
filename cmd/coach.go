package cmd

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/etnz/finplan/coach"
	"github.com/etnz/finplan/logger"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// coachCmd is the subcommand for the AI coach.
type coachCmd struct {
	date        string
	model       string
	interactive bool
}

func (*coachCmd) Name() string     { return "coach" }
func (*coachCmd) Synopsis() string { return "ask an AI coach about your goals" }
func (*coachCmd) Usage() string {
	return `fp coach [-i] [-model <model>] [<question>...]

  Asks a Gemini model for a narrative review of the progress of the goals, or to
  answer a question. The API key is read from GEMINI_API_KEY or GOOGLE_API_KEY.
  The coach explains, it does not give financial advice.
`
}

func (c *coachCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the review. Defaults to today.")
	f.StringVar(&c.model, "model", "", "Gemini model. Defaults to $"+EnvModel+" or "+coach.DefaultModel+".")
	f.BoolVar(&c.interactive, "i", false, "Keep the conversation going with follow-up questions.")
}

func (c *coachCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDate(c.date)
	if err != nil {
		return usageError("Error parsing date: %v", err)
	}
	s, err := loadSnapshot(ctx)
	if err != nil {
		return failure("Error loading snapshot: %v", err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return failure("Error initializing Gemini's client: %v", err)
	}
	model := c.model
	if model == "" {
		model = os.Getenv(EnvModel)
	}
	narrator := coach.NewGemini(client, model, coach.SnapshotFunctions(s, on)...)
	if err := narrator.Start(ctx); err != nil {
		return failure("Error: %v", err)
	}
	logger.FromContext(ctx).Debug().Str("model", narrator.Model).Msg("coach session started")

	cc := coach.NewContext(s, on)
	question := strings.Join(f.Args(), " ")
	if c.interactive {
		if err := coach.Chat(ctx, stdout, os.Stdin, narrator, cc, question, renderMarkdown); err != nil {
			return failure("Coach failed: %v", err)
		}
		return subcommands.ExitSuccess
	}

	answer, err := coach.Advise(ctx, narrator, cc, question)
	if err != nil {
		return failure("Error: %v", err)
	}
	printMarkdown(answer)
	return subcommands.ExitSuccess
}
