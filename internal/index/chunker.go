package index

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Chunker splits document text into overlapping sentence-based chunks.
type Chunker struct {
	sentencesPerChunk int
	overlapSentences  int
	splitter          *regexp.Regexp
}

// NewChunker creates a sentence chunker. Non-positive sizes fall back to
// the defaults (5 sentences per chunk, 1 sentence of overlap); overlap is
// clamped below the chunk size so the window always advances.
func NewChunker(sentencesPerChunk, overlapSentences int) *Chunker {
	if sentencesPerChunk <= 0 {
		sentencesPerChunk = 5
	}
	if overlapSentences < 0 {
		overlapSentences = 1
	}
	// The window must advance by at least one sentence per chunk.
	if overlapSentences >= sentencesPerChunk {
		overlapSentences = sentencesPerChunk - 1
	}
	return &Chunker{
		sentencesPerChunk: sentencesPerChunk,
		overlapSentences:  overlapSentences,
		splitter:          regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`),
	}
}

// Chunk splits content into chunks tagged with the source file name.
// Whitespace-only content yields no chunks.
func (c *Chunker) Chunk(docID, fileName, content string) []Chunk {
	sentences := c.splitter.FindAllString(content, -1)
	if len(sentences) == 0 {
		trimmed := strings.TrimSpace(content)
		if trimmed == "" {
			return nil
		}
		sentences = []string{trimmed}
	}
	for i := range sentences {
		sentences[i] = strings.TrimSpace(sentences[i])
	}

	var chunks []Chunk
	i, idx := 0, 0
	for i < len(sentences) {
		end := i + c.sentencesPerChunk
		if end > len(sentences) {
			end = len(sentences)
		}
		chunks = append(chunks, Chunk{
			ID:       uuid.NewString(),
			DocID:    docID,
			FileName: fileName,
			Text:     strings.Join(sentences[i:end], " "),
			Index:    idx,
		})
		if end == len(sentences) {
			break
		}
		i = end - c.overlapSentences
		if i < 0 {
			i = 0
		}
		idx++
	}
	return chunks
}
