package pipeline

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/orgbrain-labs/orgbrain/internal/llm"
)

func buildFollowupPrompt(answer, question string) string {
	var b strings.Builder
	b.WriteString("You are helping generate follow-up questions for a Q&A agent.\n\n")
	b.WriteString("Original question: ")
	b.WriteString(question)
	b.WriteString("\nAnswer: ")
	b.WriteString(answer)
	b.WriteString("\n\nSuggest 3 short follow-up questions the user might ask next.\n")
	b.WriteString("Return them as a numbered list.\n")
	return b.String()
}

// generateFollowups asks the model for suggested next questions and parses
// its free-text list into discrete strings.
func (p *Pipeline) generateFollowups(ctx context.Context, answer, question string) ([]string, error) {
	text, err := p.llm.Complete(ctx, llm.UserMessage(buildFollowupPrompt(answer, question)))
	if err != nil {
		return nil, fmt.Errorf("generate followups: %w", err)
	}
	return cleanFollowups(text), nil
}

// cleanFollowups is a lenient, best-effort parser for the model's numbered
// list: it strips leading "N." prefixes and bullet markers, drops lines that
// become empty, and preserves the remaining order. It does not enforce a
// count; malformed output degrades to fewer (possibly zero) suggestions.
// Already-clean input passes through unchanged.
func cleanFollowups(raw string) []string {
	var cleaned []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if unicode.IsDigit(rune(line[0])) && strings.Contains(line, ".") {
			line = strings.TrimSpace(strings.SplitN(line, ".", 2)[1])
		}
		line = strings.TrimSpace(strings.TrimLeft(line, "-• "))
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return cleaned
}
