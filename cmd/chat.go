package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/orgbrain-labs/orgbrain/internal/pipeline"
	"github.com/orgbrain-labs/orgbrain/internal/prompt"
	"github.com/orgbrain-labs/orgbrain/internal/session"
	"github.com/orgbrain-labs/orgbrain/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session over your documents",
	Long: `Start an interactive terminal chat session. Each question runs the full
answer pipeline; the session keeps the chat history (most recent first)
until you quit with Ctrl+C.

Examples:
  orgbrain chat
  orgbrain chat --mode HR --docs ./policies --debug`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	model, err := newChatModel(cfg)
	if err != nil {
		return err
	}

	idx, err := buildIndex(ctx, cfg)
	if err != nil {
		return err
	}

	sess := session.New()
	sess.ReplaceIndex(idx)
	defer idx.Close()

	pipe := pipeline.New(model)
	mode := prompt.ParseMode(modeStr)

	m := tui.New(sess, pipe, mode, debug)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("chat session failed: %w", err)
	}
	return nil
}
