// Package insight implements the single-shot document analysis path:
// it asks the model for a summary, key bullet points and recommended
// reader roles for one document at a time. It is independent of the
// question-answering pipeline.
package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgbrain-labs/orgbrain/internal/llm"
)

// NoReadableText is the fixed insight stored for documents whose
// extraction yielded no text. Produced without any model call.
const NoReadableText = "No readable text extracted from this document."

// maxPromptChars bounds the document prefix sent to the model.
const maxPromptChars = 6000

// Summarizer produces per-document insights using the hosted model.
type Summarizer struct {
	llm llm.LLM
}

// NewSummarizer creates a summarizer backed by the given model.
func NewSummarizer(model llm.LLM) *Summarizer {
	return &Summarizer{llm: model}
}

// Summarize returns a structured summary of the document text.
// Empty or whitespace-only text short-circuits to NoReadableText.
// The result is opaque formatted text, stored verbatim.
func (s *Summarizer) Summarize(ctx context.Context, text, filename string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return NoReadableText, nil
	}

	out, err := s.llm.Complete(ctx, llm.UserMessage(buildSummaryPrompt(truncate(text, maxPromptChars), filename)))
	if err != nil {
		return "", fmt.Errorf("summarize %s: %w", filename, err)
	}
	return strings.TrimSpace(out), nil
}

func buildSummaryPrompt(text, filename string) string {
	var b strings.Builder
	b.WriteString("You are summarizing an internal company document.\n\n")
	b.WriteString("File name: ")
	b.WriteString(filename)
	b.WriteString("\n\n1. Give a 5-7 line summary.\n")
	b.WriteString("2. List 5 key bullet points.\n")
	b.WriteString("3. Suggest which roles should read this document (e.g., HR, Support, Managers, Engineers).\n\n")
	b.WriteString("Document text:\n")
	b.WriteString(text)
	return b.String()
}

// truncate bounds text to limit characters without splitting a rune.
func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
