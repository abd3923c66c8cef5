// Package config loads the YAML application configuration with embedded
// defaults. Pipeline policy constants (top-K, confidence thresholds) are
// deliberately not configurable; only service endpoints, model identifiers
// and the store backend are.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ChatConfig configures the hosted chat model used for rewriting,
// answering, follow-ups and summarization.
type ChatConfig struct {
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	MaxRetries  int     `yaml:"max_retries"`
}

// EmbeddingConfig configures the embedding model behind the index.
type EmbeddingConfig struct {
	Model     string `yaml:"model"`
	Dimension int    `yaml:"dimension"`
}

// MilvusConfig contains connection details for the Milvus backend.
type MilvusConfig struct {
	Address    string `yaml:"address"`
	Collection string `yaml:"collection"`
}

// StoreConfig selects the vector store backend: "memory" or "milvus".
type StoreConfig struct {
	Type   string        `yaml:"type"`
	Milvus *MilvusConfig `yaml:"milvus,omitempty"`
}

// ChunkerConfig configures how documents are split into chunks.
type ChunkerConfig struct {
	SentencesPerChunk int `yaml:"sentences_per_chunk"`
	OverlapSentences  int `yaml:"overlap_sentences"`
}

// AppConfig is the root application configuration.
type AppConfig struct {
	DocsDir   string          `yaml:"docs_dir"`
	Chat      ChatConfig      `yaml:"chat"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Store     StoreConfig     `yaml:"store"`
	Chunker   ChunkerConfig   `yaml:"chunker"`
}

// Load reads a config from path. A missing file yields the defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./orgbrain.yaml, then ~/.config/orgbrain/config.yaml,
// falling back to the embedded defaults when neither exists.
func LoadDefault() (*AppConfig, error) {
	if _, err := os.Stat("orgbrain.yaml"); err == nil {
		return Load("orgbrain.yaml")
	}
	home, err := os.UserHomeDir()
	if err == nil {
		userPath := filepath.Join(home, ".config", "orgbrain", "config.yaml")
		if _, err := os.Stat(userPath); err == nil {
			return Load(userPath)
		}
	}
	return Default(), nil
}

// Default returns the embedded defaults: Groq-hosted Llama chat model,
// OpenAI small embeddings, in-memory vector store.
func Default() *AppConfig {
	return &AppConfig{
		DocsDir: filepath.Join("data", "uploaded"),
		Chat: ChatConfig{
			Model:      "llama-3.3-70b-versatile",
			BaseURL:    "https://api.groq.com/openai/v1",
			MaxRetries: 3,
		},
		Embedding: EmbeddingConfig{
			Model:     "text-embedding-3-small",
			Dimension: 1536,
		},
		Store: StoreConfig{Type: "memory"},
		Chunker: ChunkerConfig{
			SentencesPerChunk: 5,
			OverlapSentences:  1,
		},
	}
}

// applyDefaults fills unset fields with the embedded defaults. YAML zero
// values are indistinguishable from unset here, so an explicit 0 for
// max_retries or overlap_sentences is also rewritten to the default.
func applyDefaults(cfg *AppConfig) {
	def := Default()
	if cfg.DocsDir == "" {
		cfg.DocsDir = def.DocsDir
	}
	if cfg.Chat.Model == "" {
		cfg.Chat.Model = def.Chat.Model
	}
	if cfg.Chat.BaseURL == "" {
		cfg.Chat.BaseURL = def.Chat.BaseURL
	}
	if cfg.Chat.MaxRetries == 0 {
		cfg.Chat.MaxRetries = def.Chat.MaxRetries
	}
	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = def.Embedding.Model
	}
	if cfg.Embedding.Dimension == 0 {
		cfg.Embedding.Dimension = def.Embedding.Dimension
	}
	if cfg.Store.Type == "" {
		cfg.Store.Type = def.Store.Type
	}
	if cfg.Chunker.SentencesPerChunk == 0 {
		cfg.Chunker.SentencesPerChunk = def.Chunker.SentencesPerChunk
	}
	if cfg.Chunker.OverlapSentences == 0 {
		cfg.Chunker.OverlapSentences = def.Chunker.OverlapSentences
	}
}
