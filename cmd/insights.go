package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/orgbrain-labs/orgbrain/internal/extract"
	"github.com/orgbrain-labs/orgbrain/internal/insight"
	"github.com/orgbrain-labs/orgbrain/internal/session"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Summarize each uploaded document",
	Long: `Generate a concise summary, key bullet points and recommended reader
roles for every document in the documents directory. Documents without
readable text are reported without calling the model.

Examples:
  orgbrain insights
  orgbrain insights --docs ./policies`,
	Args: cobra.NoArgs,
	RunE: runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

var (
	insightNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD")).Bold(true)
	insightBodyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E9E9F4"))
)

func runInsights(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	model, err := newChatModel(cfg)
	if err != nil {
		return err
	}

	paths := extract.ListDocuments(cfg.DocsDir)
	if len(paths) == 0 {
		fmt.Println("No documents found in " + cfg.DocsDir + ". Add PDF or TXT files first.")
		return nil
	}

	sess := session.New()
	summarizer := insight.NewSummarizer(model)

	for _, path := range paths {
		summary, err := sess.InsightFor(ctx, summarizer, path)
		if err != nil {
			return fmt.Errorf("failed to analyze %s: %w", filepath.Base(path), err)
		}
		fmt.Println(insightNameStyle.Render(filepath.Base(path)))
		fmt.Println(insightBodyStyle.Render(summary))
		fmt.Println()
	}
	return nil
}
