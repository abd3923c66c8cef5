package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Chat.Model != "llama-3.3-70b-versatile" {
		t.Errorf("unexpected chat model: %q", cfg.Chat.Model)
	}
	if cfg.Chat.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("unexpected base URL: %q", cfg.Chat.BaseURL)
	}
	if cfg.Chat.MaxRetries != 3 {
		t.Errorf("unexpected max retries: %d", cfg.Chat.MaxRetries)
	}
	if cfg.Embedding.Model != "text-embedding-3-small" || cfg.Embedding.Dimension != 1536 {
		t.Errorf("unexpected embedding config: %+v", cfg.Embedding)
	}
	if cfg.Store.Type != "memory" {
		t.Errorf("unexpected store type: %q", cfg.Store.Type)
	}
	if cfg.Chunker.SentencesPerChunk != 5 || cfg.Chunker.OverlapSentences != 1 {
		t.Errorf("unexpected chunker config: %+v", cfg.Chunker)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Chat.Model != Default().Chat.Model {
		t.Errorf("Expected defaults for a missing file, got %+v", cfg)
	}
}

func TestLoad_PartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orgbrain.yaml")
	data := []byte("docs_dir: /srv/docs\nchat:\n  model: llama-3.1-8b-instant\nstore:\n  type: milvus\n  milvus:\n    address: localhost:19530\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DocsDir != "/srv/docs" {
		t.Errorf("unexpected docs dir: %q", cfg.DocsDir)
	}
	if cfg.Chat.Model != "llama-3.1-8b-instant" {
		t.Errorf("unexpected chat model: %q", cfg.Chat.Model)
	}
	if cfg.Store.Type != "milvus" {
		t.Errorf("unexpected store type: %q", cfg.Store.Type)
	}
	if cfg.Store.Milvus == nil || cfg.Store.Milvus.Address != "localhost:19530" {
		t.Errorf("unexpected milvus config: %+v", cfg.Store.Milvus)
	}

	// Unset fields fall back to the embedded defaults.
	if cfg.Chat.BaseURL != Default().Chat.BaseURL {
		t.Errorf("Expected default base URL, got %q", cfg.Chat.BaseURL)
	}
	if cfg.Embedding.Dimension != 1536 {
		t.Errorf("Expected default embedding dimension, got %d", cfg.Embedding.Dimension)
	}
	if cfg.Chunker.SentencesPerChunk != 5 {
		t.Errorf("Expected default chunker size, got %d", cfg.Chunker.SentencesPerChunk)
	}
}

func TestLoad_ChunkerOverlapDefaulted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orgbrain.yaml")
	data := []byte("chunker:\n  sentences_per_chunk: 8\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Chunker.SentencesPerChunk != 8 {
		t.Errorf("unexpected chunker size: %d", cfg.Chunker.SentencesPerChunk)
	}
	if cfg.Chunker.OverlapSentences != 1 {
		t.Errorf("Expected default overlap 1, got %d", cfg.Chunker.OverlapSentences)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orgbrain.yaml")
	if err := os.WriteFile(path, []byte("chat: [unclosed"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
