package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pdfqa",
	Short: "Question answering over uploaded PDF documents",
	Long: `pdfqa extracts text from PDF documents, indexes it in a local
vector store and answers natural-language questions about the content
through a hosted LLM, constrained to the retrieved document context.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// A missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	settingDefaultConfig()
}
