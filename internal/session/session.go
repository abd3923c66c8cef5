// Package session holds the state owned by one user session: the chat
// history, the current document index reference and the per-file insight
// cache. Explicit state object rather than package globals so init and
// teardown are well defined; a single writer is assumed.
package session

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/orgbrain-labs/orgbrain/internal/extract"
	"github.com/orgbrain-labs/orgbrain/internal/index"
	"github.com/orgbrain-labs/orgbrain/internal/insight"
	"github.com/orgbrain-labs/orgbrain/internal/pipeline"
)

// HistoryEntry pairs an asked question with its structured result.
type HistoryEntry struct {
	Question string
	Result   *pipeline.AnswerResult
}

// Session is the per-user state: empty history, nil index and empty
// insight cache at init; everything is discarded at session end.
type Session struct {
	ID       string
	History  []HistoryEntry
	Index    *index.Index
	Insights map[string]string // filename -> summary text
}

// New creates an empty session.
func New() *Session {
	return &Session{
		ID:       uuid.NewString(),
		Insights: make(map[string]string),
	}
}

// Append records an answered question. The history is append-only;
// display order (most recent first) is the display layer's concern.
func (s *Session) Append(question string, result *pipeline.AnswerResult) {
	s.History = append(s.History, HistoryEntry{Question: question, Result: result})
}

// ReplaceIndex swaps the session's index reference wholesale. An in-flight
// question keeps the reference it started with.
func (s *Session) ReplaceIndex(idx *index.Index) {
	s.Index = idx
}

// InsightFor returns the cached insight for the file at path, generating
// and caching it on first request. Once present for a filename, the
// insight is never recomputed within the session.
func (s *Session) InsightFor(ctx context.Context, summarizer *insight.Summarizer, path string) (string, error) {
	filename := filepath.Base(path)
	if cached, ok := s.Insights[filename]; ok {
		return cached, nil
	}

	text := extract.FromFile(path)
	summary, err := summarizer.Summarize(ctx, text, filename)
	if err != nil {
		return "", err
	}
	s.Insights[filename] = summary
	return summary, nil
}
