package cmd

import (
	"context"
	"fmt"

	"github.com/orgbrain-labs/orgbrain/internal/config"
	"github.com/orgbrain-labs/orgbrain/internal/index"
	"github.com/orgbrain-labs/orgbrain/internal/llm"
)

// loadConfig resolves the application config and applies flag overrides.
func loadConfig() (*config.AppConfig, error) {
	var cfg *config.AppConfig
	var err error
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if docsDir != "" {
		cfg.DocsDir = docsDir
	}
	return cfg, nil
}

// newChatModel constructs the hosted chat model client from the config.
func newChatModel(cfg *config.AppConfig) (llm.LLM, error) {
	model, err := llm.NewOpenAILLM(llm.Config{
		Model:       cfg.Chat.Model,
		BaseURL:     cfg.Chat.BaseURL,
		Temperature: cfg.Chat.Temperature,
		MaxTokens:   cfg.Chat.MaxTokens,
		MaxRetries:  cfg.Chat.MaxRetries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	return model, nil
}

// buildIndex assembles embedder, store and chunker per the config and
// indexes the documents directory. A nil index means no documents.
func buildIndex(ctx context.Context, cfg *config.AppConfig) (*index.Index, error) {
	embedder, err := index.NewOpenAIEmbedder(cfg.Embedding.Model, cfg.Embedding.Dimension)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	var store index.VectorStore
	switch cfg.Store.Type {
	case "memory", "":
		store = index.NewMemoryStore()
	case "milvus":
		milvusCfg := index.DefaultMilvusConfig()
		milvusCfg.Dimension = cfg.Embedding.Dimension
		if cfg.Store.Milvus != nil {
			if cfg.Store.Milvus.Address != "" {
				milvusCfg.Address = cfg.Store.Milvus.Address
			}
			if cfg.Store.Milvus.Collection != "" {
				milvusCfg.CollectionName = cfg.Store.Milvus.Collection
			}
		}
		store, err = index.NewMilvusStore(ctx, milvusCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create vector store: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown vector store type: %s", cfg.Store.Type)
	}

	chunker := index.NewChunker(cfg.Chunker.SentencesPerChunk, cfg.Chunker.OverlapSentences)
	idx, err := index.Build(ctx, cfg.DocsDir, embedder, store, chunker)
	if err != nil {
		return nil, fmt.Errorf("failed to build index: %w", err)
	}
	return idx, nil
}
