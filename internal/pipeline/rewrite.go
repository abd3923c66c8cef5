package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgbrain-labs/orgbrain/internal/llm"
)

func buildRewritePrompt(question string) string {
	var b strings.Builder
	b.WriteString("Rewrite the following user query to be clearer and more specific for document search.\n")
	b.WriteString("Return only the rewritten query text.\n\n")
	b.WriteString("Original query:\n")
	b.WriteString(question)
	return b.String()
}

// rewriteQuery transforms a raw question into a retrieval-optimized query.
func (p *Pipeline) rewriteQuery(ctx context.Context, question string) (string, error) {
	text, err := p.llm.Complete(ctx, llm.UserMessage(buildRewritePrompt(question)))
	if err != nil {
		return "", fmt.Errorf("rewrite query: %w", err)
	}
	return strings.TrimSpace(text), nil
}
