package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/orgbrain-labs/orgbrain/internal/index"
)

// fakeSource is a deterministic ChunkSource for tests.
type fakeSource struct {
	hits      []index.Hit
	err       error
	lastQuery string
	lastTopK  int
}

func (f *fakeSource) Query(ctx context.Context, text string, topK int) ([]index.Hit, error) {
	f.lastQuery = text
	f.lastTopK = topK
	if f.err != nil {
		return nil, f.err
	}
	return f.hits, nil
}

func TestRetrieveChunks_SourceIDFallback(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]string
		expected string
	}{
		{
			name:     "file_name preferred",
			metadata: map[string]string{"file_name": "handbook.pdf", "source": "/tmp/handbook.pdf"},
			expected: "handbook.pdf",
		},
		{
			name:     "source fallback",
			metadata: map[string]string{"source": "/tmp/handbook.pdf"},
			expected: "/tmp/handbook.pdf",
		},
		{
			name:     "sentinel when both missing",
			metadata: map[string]string{},
			expected: "Unknown document",
		},
		{
			name:     "empty file_name falls through",
			metadata: map[string]string{"file_name": "", "source": "backup.txt"},
			expected: "backup.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{hits: []index.Hit{{Text: "text", Score: floatPtr(0.9), Metadata: tt.metadata}}}
			chunks := retrieveChunks(context.Background(), src, "query")
			if len(chunks) != 1 {
				t.Fatalf("Expected 1 chunk, got %d", len(chunks))
			}
			if chunks[0].DocID != tt.expected {
				t.Errorf("Expected doc ID %q, got %q", tt.expected, chunks[0].DocID)
			}
		})
	}
}

func TestRetrieveChunks_RequestsFixedTopK(t *testing.T) {
	src := &fakeSource{}
	retrieveChunks(context.Background(), src, "rewritten query")

	if src.lastTopK != 4 {
		t.Errorf("Expected top-K 4, got %d", src.lastTopK)
	}
	if src.lastQuery != "rewritten query" {
		t.Errorf("Expected query passed through, got %q", src.lastQuery)
	}
}

func TestRetrieveChunks_ZeroHits(t *testing.T) {
	src := &fakeSource{}
	chunks := retrieveChunks(context.Background(), src, "query")
	if len(chunks) != 0 {
		t.Errorf("Expected no chunks, got %d", len(chunks))
	}
}

func TestRetrieveChunks_ErrorDegradesToEmpty(t *testing.T) {
	src := &fakeSource{err: errors.New("search backend down")}
	chunks := retrieveChunks(context.Background(), src, "query")
	if chunks != nil {
		t.Errorf("Expected nil chunks on retrieval error, got %#v", chunks)
	}
}

func TestRetrieveChunks_PreservesOrderAndScores(t *testing.T) {
	src := &fakeSource{hits: []index.Hit{
		{Text: "first", Score: floatPtr(0.95), Metadata: map[string]string{"file_name": "a.pdf"}},
		{Text: "second", Score: nil, Metadata: map[string]string{"file_name": "b.pdf"}},
		{Text: "third", Score: floatPtr(0.4), Metadata: map[string]string{"file_name": "c.pdf"}},
	}}

	chunks := retrieveChunks(context.Background(), src, "query")
	if len(chunks) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(chunks))
	}
	if chunks[0].Text != "first" || chunks[1].Text != "second" || chunks[2].Text != "third" {
		t.Error("Relevance order not preserved")
	}
	if chunks[1].Score != nil {
		t.Error("Expected nil score to be preserved")
	}
	if chunks[0].Score == nil || *chunks[0].Score != 0.95 {
		t.Error("Expected first score 0.95")
	}
}
