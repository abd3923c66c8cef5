// Package pipeline implements the retrieval-augmented answer pipeline:
// query rewriting, top-K chunk retrieval, confidence scoring, grounded
// answer generation and follow-up suggestions, sequenced into one
// request/response cycle per question.
package pipeline

import (
	"context"

	"github.com/orgbrain-labs/orgbrain/internal/index"
)

// RetrievedChunk is one retrieved passage normalized into a uniform shape.
// Score is nil when the index backend reports none.
type RetrievedChunk struct {
	Text  string   `json:"text"`
	Score *float64 `json:"score"`
	DocID string   `json:"doc_id"`
}

// Confidence is a coarse tier summarizing retrieval quality.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// AnswerResult is the structured outcome of one answered question.
// DebugChunks is nil unless debug was requested, in which case it equals
// Sources exactly. Never mutated after creation.
type AnswerResult struct {
	Answer         string           `json:"answer"`
	RewrittenQuery string           `json:"rewritten_query"`
	Sources        []RetrievedChunk `json:"sources"`
	Confidence     Confidence       `json:"confidence"`
	Followups      []string         `json:"followups"`
	DebugChunks    []RetrievedChunk `json:"debug_chunks,omitempty"`
}

// ChunkSource is the narrow retrieval contract the pipeline depends on.
// *index.Index satisfies it, including as a typed nil (Query then errors
// and retrieval degrades to zero chunks); tests use deterministic fakes.
type ChunkSource interface {
	Query(ctx context.Context, text string, topK int) ([]index.Hit, error)
}
