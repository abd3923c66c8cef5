package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/orgbrain-labs/orgbrain/internal/llm"
)

func TestSummarize_EmptyTextShortCircuits(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockLLM("should never be returned")
			s := NewSummarizer(mock)

			got, err := s.Summarize(context.Background(), tt.text, "empty.pdf")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != NoReadableText {
				t.Errorf("Expected fixed no-readable-text message, got %q", got)
			}
			if mock.CallCount() != 0 {
				t.Errorf("Expected zero model calls, got %d", mock.CallCount())
			}
		})
	}
}

func TestSummarize_UsesModelOutputVerbatim(t *testing.T) {
	mock := llm.NewMockLLM("  Summary text with bullets.  ")
	s := NewSummarizer(mock)

	got, err := s.Summarize(context.Background(), "Document body text.", "handbook.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Summary text with bullets." {
		t.Errorf("Expected trimmed model output, got %q", got)
	}

	prompt := mock.LastPrompt()
	if !strings.Contains(prompt, "handbook.pdf") {
		t.Error("Summary prompt must include the file name")
	}
	if !strings.Contains(prompt, "Document body text.") {
		t.Error("Summary prompt must include the document text")
	}
	if !strings.Contains(prompt, "5 key bullet points") {
		t.Error("Summary prompt must request bullet points")
	}
	if !strings.Contains(prompt, "roles") {
		t.Error("Summary prompt must request reader roles")
	}
}

func TestSummarize_TruncatesLongText(t *testing.T) {
	mock := llm.NewMockLLM("summary")
	s := NewSummarizer(mock)

	long := strings.Repeat("a", 10000)
	if _, err := s.Summarize(context.Background(), long, "long.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.LastPrompt()
	if strings.Contains(prompt, strings.Repeat("a", maxPromptChars+1)) {
		t.Error("Document text not truncated to the prompt-size bound")
	}
	if !strings.Contains(prompt, strings.Repeat("a", maxPromptChars)) {
		t.Error("Truncated prompt must keep the full document prefix")
	}
}

func TestSummarize_ModelFailure(t *testing.T) {
	modelErr := errors.New("boom")
	s := NewSummarizer(llm.NewMockLLMWithError(modelErr))

	_, err := s.Summarize(context.Background(), "text", "doc.pdf")
	if !errors.Is(err, modelErr) {
		t.Errorf("Expected wrapped model error, got %v", err)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"short text unchanged", "hello", 10, "hello"},
		{"exact limit unchanged", "hello", 5, "hello"},
		{"long text truncated", "hello world", 5, "hello"},
		{"multibyte runes kept whole", "héllo wörld", 7, "héllo w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.text, tt.limit); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
