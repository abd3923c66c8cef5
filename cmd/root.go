package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	docsDir string
	modeStr string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "orgbrain",
	Short: "OrgBrain - Adaptive knowledge base agent",
	Long: `OrgBrain answers natural-language questions grounded in your uploaded
organizational documents (PDF or TXT).

It indexes documents into a vector store, rewrites each question for
retrieval, generates an answer grounded in the retrieved excerpts, and
reports a confidence level plus source attributions.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config file (optional)")
	rootCmd.PersistentFlags().StringVar(&docsDir, "docs", "", "Directory of uploaded documents (overrides config)")
	rootCmd.PersistentFlags().StringVar(&modeStr, "mode", "General", "Agent mode: General, HR, Support or Operations")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show retrieved chunks and similarity scores")
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
