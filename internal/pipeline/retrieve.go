package pipeline

import (
	"context"
	"log"

	"github.com/orgbrain-labs/orgbrain/internal/index"
)

// topK is the fixed number of candidate chunks requested per retrieval.
const topK = 4

// retrieveChunks queries the index with the rewritten query and normalizes
// hits into RetrievedChunk records, preserving the index's relevance order.
// The source id prefers file_name metadata, then source, then a sentinel.
// Retrieval failures never abort a question cycle: they degrade to zero
// chunks, which is a valid (Low-confidence) state.
func retrieveChunks(ctx context.Context, src ChunkSource, query string) []RetrievedChunk {
	hits, err := src.Query(ctx, query, topK)
	if err != nil {
		log.Printf("[pipeline] retrieval failed, continuing without context: %v", err)
		return nil
	}

	chunks := make([]RetrievedChunk, 0, len(hits))
	for _, hit := range hits {
		chunks = append(chunks, RetrievedChunk{
			Text:  hit.Text,
			Score: hit.Score,
			DocID: sourceID(hit),
		})
	}
	return chunks
}

func sourceID(hit index.Hit) string {
	if name := hit.Metadata["file_name"]; name != "" {
		return name
	}
	if src := hit.Metadata["source"]; src != "" {
		return src
	}
	return "Unknown document"
}
