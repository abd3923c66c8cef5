package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgbrain-labs/orgbrain/internal/llm"
)

// buildAnswerPrompt composes the system prompt, both question forms and the
// retrieved excerpts into a single grounding prompt. The grounding contract
// is enforced through the instructions: answer only from the excerpts,
// declare uncertainty when they are insufficient, end with a Sources section.
func buildAnswerPrompt(systemPrompt, question, rewritten string, chunks []RetrievedChunk) string {
	segments := make([]string, 0, len(chunks))
	for _, c := range chunks {
		score := "N/A"
		if c.Score != nil {
			score = fmt.Sprintf("%.2f", *c.Score)
		}
		segments = append(segments, fmt.Sprintf("[%s, score=%s] %s", c.DocID, score, c.Text))
	}

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nUser question:\n")
	b.WriteString(question)
	b.WriteString("\n\nRewritten query:\n")
	b.WriteString(rewritten)
	b.WriteString("\n\nRelevant document excerpts:\n")
	b.WriteString(strings.Join(segments, "\n\n---\n\n"))
	b.WriteString("\n\nInstructions:\n")
	b.WriteString("- Answer the user's question using ONLY the excerpts above.\n")
	b.WriteString("- If the answer is unclear or missing, say you are unsure and suggest contacting a human.\n")
	b.WriteString("- End with a \"Sources:\" section listing the document names you used.\n")
	return b.String()
}

// generateAnswer calls the model once with the composed grounding prompt.
func (p *Pipeline) generateAnswer(ctx context.Context, systemPrompt, question, rewritten string, chunks []RetrievedChunk) (string, error) {
	prompt := buildAnswerPrompt(systemPrompt, question, rewritten, chunks)
	text, err := p.llm.Complete(ctx, llm.UserMessage(prompt))
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}
	return strings.TrimSpace(text), nil
}
