// Package index builds a semantic search structure over chunked document
// text and answers top-K similarity queries. The embedder and vector store
// sit behind narrow interfaces so the pipeline can be tested with
// deterministic fakes and the store backend can be swapped (in-memory by
// default, Milvus optionally).
package index

import "context"

// Chunk is a bounded span of text extracted from a source document,
// the unit of semantic retrieval.
type Chunk struct {
	ID       string `json:"id"`
	DocID    string `json:"doc_id"`
	FileName string `json:"file_name"`
	Text     string `json:"text"`
	Index    int    `json:"index"`
}

// Hit is one ranked result of a similarity query. Score may be nil for
// backends that do not report one; Metadata carries source identifiers
// under "file_name" and "source".
type Hit struct {
	Text     string
	Score    *float64
	Metadata map[string]string
}

// SearchResult pairs a stored chunk with its similarity score.
type SearchResult struct {
	Chunk Chunk
	Score float64
}

// Embedder converts text into numeric vector representations.
type Embedder interface {
	// Embed generates one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Model returns the embedding model identifier.
	Model() string

	// Dimension returns the embedding vector dimension.
	Dimension() int
}

// VectorStore persists chunk vectors and supports top-K similarity search.
// Reset discards all stored vectors; a rebuild replaces the store contents
// wholesale rather than updating incrementally.
type VectorStore interface {
	Reset(ctx context.Context, dimension int) error
	Upsert(ctx context.Context, chunks []Chunk, vectors [][]float32) error
	Search(ctx context.Context, vector []float32, topK int) ([]SearchResult, error)
	Close() error
}
