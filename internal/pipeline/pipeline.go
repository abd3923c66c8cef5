package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/orgbrain-labs/orgbrain/internal/llm"
	"github.com/orgbrain-labs/orgbrain/internal/prompt"
)

// ErrNoIndex is returned when a question is asked before any documents
// have been indexed. Callers should prompt for uploads instead of retrying.
var ErrNoIndex = errors.New("no document index available")

// Pipeline sequences one question through rewrite, retrieval, confidence
// scoring, grounded answering and follow-up generation. The three model
// calls per question are issued strictly sequentially.
type Pipeline struct {
	llm llm.LLM
}

// New creates a pipeline backed by the given language model.
func New(model llm.LLM) *Pipeline {
	return &Pipeline{llm: model}
}

// AnswerQuestion runs one full request/response cycle and assembles the
// structured result. Any model-call failure aborts the cycle with a typed
// error; retrieval returning zero chunks does not.
func (p *Pipeline) AnswerQuestion(ctx context.Context, src ChunkSource, question string, mode prompt.Mode, debug bool) (*AnswerResult, error) {
	if src == nil {
		return nil, ErrNoIndex
	}
	if question == "" {
		return nil, fmt.Errorf("question cannot be empty")
	}

	systemPrompt := prompt.Compose(mode)

	rewritten, err := p.rewriteQuery(ctx, question)
	if err != nil {
		return nil, err
	}
	log.Printf("[pipeline] rewrote query to %q", rewritten)

	chunks := retrieveChunks(ctx, src, rewritten)
	log.Printf("[pipeline] retrieved %d chunks", len(chunks))

	confidence := confidenceFor(collectScores(chunks))

	answer, err := p.generateAnswer(ctx, systemPrompt, question, rewritten, chunks)
	if err != nil {
		return nil, err
	}

	followups, err := p.generateFollowups(ctx, answer, question)
	if err != nil {
		return nil, err
	}

	result := &AnswerResult{
		Answer:         answer,
		RewrittenQuery: rewritten,
		Sources:        chunks,
		Confidence:     confidence,
		Followups:      followups,
	}
	if debug {
		result.DebugChunks = chunks
	}
	return result, nil
}
