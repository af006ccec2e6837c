package coach

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/finplan/logger"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// maxCallRounds bounds the function calls the model can chain for one answer.
const maxCallRounds = 8

const instruction = `
You are a personal finance coach. You explain, you do not sell: never recommend
a specific financial product, security or institution.

The user tracks savings, investing and debt payoff goals. You receive a summary
of their goals, balance sheet and recent spending, and a request.

- Be encouraging and concrete: refer to the actual amounts and dates.
- For debt payoff goals, progress is the amount already paid down.
- When a goal is behind schedule, explain the trade-offs to catch up.
- Use the available tools to look at accounts, activity or a goal in detail.
- Answer in short markdown: a few paragraphs or a list, no tables.
`

// Gemini is a Narrator backed by a Gemini chat session. The session keeps the
// context of previous prompts.
type Gemini struct {
	Model     string
	Functions Tools
	client    *genai.Client
	chat      *genai.Chat
}

// NewGemini creates a Gemini narrator. The functions are offered to the model
// as tools.
func NewGemini(client *genai.Client, model string, functions ...Function) *Gemini {
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{Model: model, Functions: functions, client: client}
}

// Start creates the chat session.
func (g *Gemini) Start(ctx context.Context) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
	}
	if len(g.Functions) > 0 {
		config.Tools = []*genai.Tool{
			{FunctionDeclarations: g.Functions.Declarations()},
		}
	}
	chat, err := g.client.Chats.Create(ctx, g.Model, config, nil)
	if err != nil {
		return fmt.Errorf("could not start a chat with %s: %w", g.Model, err)
	}
	g.chat = chat
	return nil
}

// Narrate sends the prompt to the chat session, answering the function calls
// of the model until it responds with text.
func (g *Gemini) Narrate(ctx context.Context, prompt string) (string, error) {
	if g.chat == nil {
		if err := g.Start(ctx); err != nil {
			return "", err
		}
	}
	parts := []*genai.Part{{Text: prompt}}
	for round := 0; round < maxCallRounds; round++ {
		resp, err := g.chat.Send(ctx, parts...)
		if err != nil {
			return "", err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return "", errors.New("empty response from the model")
		}

		var text strings.Builder
		parts = nil
		for _, p := range resp.Candidates[0].Content.Parts {
			if p.FunctionCall != nil {
				logger.FromContext(ctx).Debug().Str("function", p.FunctionCall.Name).Any("args", p.FunctionCall.Args).Msg("model function call")
				parts = append(parts, &genai.Part{FunctionResponse: g.Functions.Call(ctx, p.FunctionCall)})
				continue
			}
			text.WriteString(p.Text)
		}
		if len(parts) == 0 {
			return text.String(), nil
		}
	}
	return "", fmt.Errorf("no answer after %d rounds of function calls", maxCallRounds)
}
