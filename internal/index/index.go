package index

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/orgbrain-labs/orgbrain/internal/extract"
)

const embedBatchSize = 32

// Index is a semantic search structure over chunked document text.
// One instance exists per session; rebuilding replaces the session's
// reference wholesale.
type Index struct {
	embedder Embedder
	store    VectorStore
}

// Build indexes every readable document directly inside dir.
// Returns (nil, nil) when the directory is missing, empty, or yields no
// extractable text: a nil index signals "no documents" to the caller.
func Build(ctx context.Context, dir string, embedder Embedder, store VectorStore, chunker *Chunker) (*Index, error) {
	if embedder == nil || store == nil {
		return nil, fmt.Errorf("embedder and store are required")
	}
	if chunker == nil {
		chunker = NewChunker(0, -1)
	}

	paths := extract.ListDocuments(dir)
	if len(paths) == 0 {
		return nil, nil
	}

	var chunks []Chunk
	for _, path := range paths {
		text := extract.FromFile(path)
		fileName := filepath.Base(path)
		docChunks := chunker.Chunk(path, fileName, text)
		if len(docChunks) == 0 {
			log.Printf("[index] skipping %s: no extractable text", fileName)
			continue
		}
		chunks = append(chunks, docChunks...)
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	if err := store.Reset(ctx, embedder.Dimension()); err != nil {
		return nil, fmt.Errorf("failed to reset vector store: %w", err)
	}

	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.Text
		}
		vectors, err := embedder.Embed(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("failed to embed chunks: %w", err)
		}
		if err := store.Upsert(ctx, batch, vectors); err != nil {
			return nil, fmt.Errorf("failed to store chunks: %w", err)
		}
	}

	log.Printf("[index] indexed %d chunks from %d documents", len(chunks), len(paths))
	return &Index{embedder: embedder, store: store}, nil
}

// Query performs raw top-K retrieval for the given text: it returns ranked
// chunks with similarity scores and source metadata, never a synthesized
// answer. Zero hits yield an empty slice.
func (idx *Index) Query(ctx context.Context, text string, topK int) ([]Hit, error) {
	if idx == nil {
		return nil, fmt.Errorf("no index built")
	}
	if topK <= 0 {
		return nil, fmt.Errorf("topK must be positive, got %d", topK)
	}

	vectors, err := idx.embedder.Embed(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no embedding generated for query")
	}

	results, err := idx.store.Search(ctx, vectors[0], topK)
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}

	hits := make([]Hit, 0, len(results))
	for _, r := range results {
		score := r.Score
		hits = append(hits, Hit{
			Text:  r.Chunk.Text,
			Score: &score,
			Metadata: map[string]string{
				"file_name": r.Chunk.FileName,
				"source":    r.Chunk.DocID,
			},
		})
	}
	return hits, nil
}

// Close releases the underlying vector store.
func (idx *Index) Close() error {
	if idx == nil || idx.store == nil {
		return nil
	}
	return idx.store.Close()
}
