package coach

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const prompt = "coach> "

// Chat runs an interactive session: the first answer is the one about
// question, then each line read from r is sent to the narrator until "bye"
// or the end of input. Answers are written to w through render.
func Chat(ctx context.Context, w io.Writer, r io.Reader, n Narrator, c *Context, question string, render func(string) string) error {
	answer, err := Advise(ctx, n, c, question)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, render(answer))

	fmt.Fprintln(w, "Ask a follow-up question. Type 'bye' to exit.")
	in := bufio.NewReader(r)
	for {
		fmt.Fprint(w, prompt)
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			if err == io.EOF {
				return nil // Clean exit on Ctrl+D
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "bye" {
			return nil
		}
		// follow-ups rely on the narrator session for context.
		answer, err := n.Narrate(ctx, line)
		if err != nil {
			return fmt.Errorf("coach did not answer: %w", err)
		}
		fmt.Fprintln(w, render(strings.TrimSpace(answer)))
	}
}
