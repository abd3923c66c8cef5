package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/orgbrain-labs/orgbrain/internal/pipeline"
	"github.com/orgbrain-labs/orgbrain/internal/prompt"
	"github.com/orgbrain-labs/orgbrain/internal/session"
	"github.com/orgbrain-labs/orgbrain/internal/tui"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a one-shot question about your documents",
	Long: `Ask a natural-language question grounded in the uploaded documents.

This command:
1. Indexes the documents directory into the vector store
2. Rewrites your question into a retrieval-optimized query
3. Retrieves the most relevant chunks and scores confidence
4. Generates a grounded answer with source attributions

Required environment variables:
  GROQ_API_KEY       - API key for the hosted chat model
  OPENAI_API_KEY     - API key for embeddings

Examples:
  orgbrain ask "How many vacation days do I get?"
  orgbrain ask "What is the escalation process?" --mode Support --debug`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

var (
	askHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F780FF")).Bold(true)
	askInfoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")).Italic(true)
)

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	model, err := newChatModel(cfg)
	if err != nil {
		return err
	}

	fmt.Println(askInfoStyle.Render("Building index from " + cfg.DocsDir + "..."))
	idx, err := buildIndex(ctx, cfg)
	if err != nil {
		return err
	}
	if idx == nil {
		fmt.Println("No valid documents found. Please add PDF or TXT files to " + cfg.DocsDir + ".")
		return nil
	}
	defer idx.Close()

	pipe := pipeline.New(model)
	mode := prompt.ParseMode(modeStr)

	result, err := pipe.AnswerQuestion(ctx, idx, question, mode, debug)
	if err != nil {
		return fmt.Errorf("failed to answer question: %w", err)
	}

	fmt.Println()
	fmt.Println(askHeaderStyle.Render("Answer:"))
	fmt.Println()
	fmt.Println(tui.RenderEntry(session.HistoryEntry{Question: question, Result: result}, debug))
	return nil
}
